package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Paint is a can of paint sold by volume.
type Paint struct {
	item
	paintType string
	color     string
	liters    float64
}

// NewPaint validates the shared fields, then type, color and liters.
func NewPaint(info ItemInfo, paintType, color string, liters float64) (*Paint, error) {
	base, err := newItem(info)
	if err != nil {
		return nil, err
	}
	if err := firstError(
		check("paint_type", paintType, paintTypeRules...),
		check("color", color, notBlank),
		check("liters", liters, litersRules...),
	); err != nil {
		return nil, err
	}
	return &Paint{item: base, paintType: paintType, color: color, liters: liters}, nil
}

func (p *Paint) Type() ItemType { return ItemTypePaint }
func (p *Paint) PaintType() string { return p.paintType }
func (p *Paint) Color() string { return p.color }
func (p *Paint) Liters() float64 { return p.liters }

// Discount gives 5% from three units, otherwise 3% for two units of latex.
func (p *Paint) Discount(quantity int) decimal.Decimal {
	switch {
	case quantity >= 3:
		return p.Subtotal(quantity).Mul(percent(5))
	case quantity >= 2 && strings.EqualFold(p.paintType, "latex"):
		return p.Subtotal(quantity).Mul(percent(3))
	default:
		return decimal.Zero
	}
}

func (p *Paint) Details() string {
	return fmt.Sprintf("type: %s, color: %s, %.1fL", p.paintType, p.color, p.liters)
}

// IsExterior reports whether the paint is suited for outdoor use.
func (p *Paint) IsExterior() bool {
	return strings.EqualFold(p.paintType, "esmalte") || strings.EqualFold(p.paintType, "acrílico")
}

func (p *Paint) String() string { return formatItem(p) }
