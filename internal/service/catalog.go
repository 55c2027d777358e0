package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/utafrali/paintstore/internal/domain"
	"github.com/utafrali/paintstore/internal/repository"
	apperrors "github.com/utafrali/paintstore/pkg/errors"
	"github.com/utafrali/paintstore/pkg/logger"
	"github.com/utafrali/paintstore/pkg/tracing"
)

// CreateItemInput carries the shared item attributes plus the attributes of
// the variant named by Type. Attributes of other variants are ignored.
type CreateItemInput struct {
	Type domain.ItemType
	Info domain.ItemInfo

	// Paint
	PaintType string
	Color     string
	Liters    float64

	// Tool
	Category string
	Material string
	Reusable bool

	// Accessory
	AccessoryType string
	Unit          string
	Measure       float64
}

// UpdateItemInput replaces the non-nil attributes.
type UpdateItemInput struct {
	Description *string
	UnitPrice   *decimal.Decimal
	Stock       *int
}

// CatalogService manages catalog items.
type CatalogService struct {
	mu     *sync.RWMutex
	items  repository.ItemRepository
	logger *slog.Logger
}

// CreateItem builds and stores a new catalog item.
func (s *CatalogService) CreateItem(ctx context.Context, input CreateItemInput) (view ItemView, err error) {
	ctx, span := tracer().Start(ctx, "CatalogService.CreateItem")
	span.SetAttributes(attribute.String("item.code", input.Info.Code), attribute.String("item.type", string(input.Type)))
	defer func() { tracing.End(span, err) }()

	item, err := buildItem(input)
	if err != nil {
		return ItemView{}, translate(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.items.Create(ctx, item); err != nil {
		return ItemView{}, fmt.Errorf("create item: %w", err)
	}

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "catalog item created",
		slog.String("code", item.Code()),
		slog.String("type", string(item.Type())),
		slog.Int("stock", item.Stock()),
	)
	return newItemView(item), nil
}

func buildItem(input CreateItemInput) (domain.CatalogItem, error) {
	switch input.Type {
	case domain.ItemTypePaint:
		return domain.NewPaint(input.Info, input.PaintType, input.Color, input.Liters)
	case domain.ItemTypeTool:
		return domain.NewTool(input.Info, input.Category, input.Material, input.Reusable)
	case domain.ItemTypeAccessory:
		return domain.NewAccessory(input.Info, input.AccessoryType, input.Unit, input.Measure)
	default:
		return nil, apperrors.Validation("type", "must be one of: paint, tool, accessory", nil)
	}
}

// GetItem returns the item with the given code.
func (s *CatalogService) GetItem(ctx context.Context, code string) (ItemView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, err := s.items.GetByCode(ctx, code)
	if err != nil {
		return ItemView{}, fmt.Errorf("get item: %w", err)
	}
	return newItemView(item), nil
}

// ListItems returns one page of items and the total match count.
func (s *CatalogService) ListItems(ctx context.Context, filter repository.ItemFilter) ([]ItemView, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, total, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, newItemView(it))
	}
	return views, total, nil
}

// UpdateItem applies input to the item. Either every change is applied or
// none is.
func (s *CatalogService) UpdateItem(ctx context.Context, code string, input UpdateItemInput) (view ItemView, err error) {
	ctx, span := tracer().Start(ctx, "CatalogService.UpdateItem")
	span.SetAttributes(attribute.String("item.code", code))
	defer func() { tracing.End(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.items.GetByCode(ctx, code)
	if err != nil {
		return ItemView{}, fmt.Errorf("update item: %w", err)
	}

	prevDescription, prevPrice, prevStock := item.Description(), item.UnitPrice(), item.Stock()
	if err := applyItemUpdate(item, input); err != nil {
		// Previous values were valid, so restoring them cannot fail.
		_ = item.SetDescription(prevDescription)
		_ = item.SetUnitPrice(prevPrice)
		_ = item.SetStock(prevStock)
		return ItemView{}, translate(err)
	}

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "catalog item updated",
		slog.String("code", code),
		slog.String("unit_price", item.UnitPrice().String()),
		slog.Int("stock", item.Stock()),
	)
	return newItemView(item), nil
}

func applyItemUpdate(item domain.CatalogItem, input UpdateItemInput) error {
	if input.Description != nil {
		if err := item.SetDescription(*input.Description); err != nil {
			return err
		}
	}
	if input.UnitPrice != nil {
		if err := item.SetUnitPrice(*input.UnitPrice); err != nil {
			return err
		}
	}
	if input.Stock != nil {
		if err := item.SetStock(*input.Stock); err != nil {
			return err
		}
	}
	return nil
}
