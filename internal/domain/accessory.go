package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Accessory is a painting supply sold by a unit of measure.
type Accessory struct {
	item
	accessoryType string
	unit          string
	measure       float64
}

// NewAccessory validates the shared fields, then type, unit and measure.
func NewAccessory(info ItemInfo, accessoryType, unit string, measure float64) (*Accessory, error) {
	base, err := newItem(info)
	if err != nil {
		return nil, err
	}
	if err := firstError(
		check("accessory_type", accessoryType, accessoryTypeRules...),
		check("unit", unit, unitRules...),
		check("measure", measure, measureRules...),
	); err != nil {
		return nil, err
	}
	return &Accessory{item: base, accessoryType: accessoryType, unit: unit, measure: measure}, nil
}

func (a *Accessory) Type() ItemType { return ItemTypeAccessory }
func (a *Accessory) AccessoryType() string { return a.accessoryType }
func (a *Accessory) Unit() string { return a.unit }
func (a *Accessory) Measure() float64 { return a.measure }

// Discount always gives 2%, plus 3% from ten units.
func (a *Accessory) Discount(quantity int) decimal.Decimal {
	subtotal := a.Subtotal(quantity)
	discount := subtotal.Mul(percent(2))
	if quantity >= 10 {
		discount = discount.Add(subtotal.Mul(percent(3)))
	}
	return discount
}

func (a *Accessory) Details() string {
	return fmt.Sprintf("type: %s, %.1f %s", a.accessoryType, a.measure, a.unit)
}

// IsConsumable reports whether the accessory is used up in a single job.
func (a *Accessory) IsConsumable() bool {
	return strings.EqualFold(a.accessoryType, "cinta") || strings.EqualFold(a.accessoryType, "papel")
}

func (a *Accessory) String() string { return formatItem(a) }
