package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tool is an application tool such as a brush or roller.
type Tool struct {
	item
	category string
	material string
	reusable bool
}

// NewTool validates the shared fields, then category and material.
func NewTool(info ItemInfo, category, material string, reusable bool) (*Tool, error) {
	base, err := newItem(info)
	if err != nil {
		return nil, err
	}
	if err := firstError(
		check("category", category, toolCategoryRules...),
		check("material", material, notBlank),
	); err != nil {
		return nil, err
	}
	return &Tool{item: base, category: category, material: material, reusable: reusable}, nil
}

func (t *Tool) Type() ItemType { return ItemTypeTool }
func (t *Tool) Category() string { return t.category }
func (t *Tool) Material() string { return t.material }
func (t *Tool) Reusable() bool { return t.reusable }

// Discount gives 10% from five units, otherwise 5% for three reusable units.
func (t *Tool) Discount(quantity int) decimal.Decimal {
	switch {
	case quantity >= 5:
		return t.Subtotal(quantity).Mul(percent(10))
	case quantity >= 3 && t.reusable:
		return t.Subtotal(quantity).Mul(percent(5))
	default:
		return decimal.Zero
	}
}

func (t *Tool) Details() string {
	kind := "disposable"
	if t.reusable {
		kind = "reusable"
	}
	return fmt.Sprintf("category: %s, material: %s, %s", t.category, t.material, kind)
}

// NeedsMaintenance reports whether the tool must be cleaned after use.
func (t *Tool) NeedsMaintenance() bool {
	return t.reusable && (strings.EqualFold(t.category, "brocha") || strings.EqualFold(t.category, "rodillo"))
}

func (t *Tool) String() string { return formatItem(t) }
