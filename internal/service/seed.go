package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/utafrali/paintstore/internal/domain"
	apperrors "github.com/utafrali/paintstore/pkg/errors"
)

// DemoCatalog is the starter catalog loaded when seeding is enabled.
func DemoCatalog() []CreateItemInput {
	return []CreateItemInput{
		{
			Type: domain.ItemTypePaint,
			Info: domain.ItemInfo{
				Code:        "LATEX-BLANCO-4L",
				Description: "Pintura Latex Blanco 4L",
				UnitPrice:   decimal.RequireFromString("12999.90"),
				Stock:       10,
			},
			PaintType: "latex",
			Color:     "blanco",
			Liters:    4,
		},
		{
			Type: domain.ItemTypePaint,
			Info: domain.ItemInfo{
				Code:        "ESMALTE-NEGRO-1L",
				Description: "Esmalte Sintético Negro 1L",
				UnitPrice:   decimal.RequireFromString("8999.50"),
				Stock:       5,
			},
			PaintType: "esmalte",
			Color:     "negro",
			Liters:    1,
		},
		{
			Type: domain.ItemTypeTool,
			Info: domain.ItemInfo{
				Code:        "BROCHA-4P",
				Description: "Brocha de 4 pulgadas",
				UnitPrice:   decimal.RequireFromString("2500.00"),
				Stock:       20,
			},
			Category: "brocha",
			Material: "cerda natural",
			Reusable: true,
		},
		{
			Type: domain.ItemTypeAccessory,
			Info: domain.ItemInfo{
				Code:        "CINTA-48MM",
				Description: "Cinta de enmascarar 48mm",
				UnitPrice:   decimal.RequireFromString("800.00"),
				Stock:       50,
			},
			AccessoryType: "cinta",
			Unit:          "metros",
			Measure:       50,
		},
	}
}

// Seed creates every item in inputs. Items that already exist are skipped.
func (s *CatalogService) Seed(ctx context.Context, inputs []CreateItemInput) error {
	created := 0
	for _, in := range inputs {
		_, err := s.CreateItem(ctx, in)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrAlreadyExists):
		default:
			return fmt.Errorf("seed item %s: %w", in.Info.Code, err)
		}
	}
	s.logger.InfoContext(ctx, "catalog seeded", slog.Int("created", created), slog.Int("total", len(inputs)))
	return nil
}
