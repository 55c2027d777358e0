package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemType identifies the variant of a catalog item.
type ItemType string

// Catalog item types.
const (
	ItemTypePaint     ItemType = "paint"
	ItemTypeTool      ItemType = "tool"
	ItemTypeAccessory ItemType = "accessory"
)

// ValidItemTypes returns the set of catalog item types.
func ValidItemTypes() []ItemType {
	return []ItemType{ItemTypePaint, ItemTypeTool, ItemTypeAccessory}
}

// CatalogItem is the capability shared by every product sold in the store.
// The set of implementations is closed: only *Paint, *Tool and *Accessory
// satisfy it.
type CatalogItem interface {
	Code() string
	Description() string
	UnitPrice() decimal.Decimal
	Stock() int
	Type() ItemType

	SetDescription(description string) error
	SetUnitPrice(price decimal.Decimal) error
	SetStock(stock int) error
	DecrementStock(quantity int) error

	// Subtotal is the undiscounted price of quantity units.
	Subtotal(quantity int) decimal.Decimal
	// Discount is the variant-specific product discount for quantity units.
	Discount(quantity int) decimal.Decimal
	// Details describes the variant-specific attributes.
	Details() string

	base() *item
}

// ItemInfo holds the attributes shared by all catalog item variants.
type ItemInfo struct {
	Code        string
	Description string
	UnitPrice   decimal.Decimal
	Stock       int
}

// item is embedded by every catalog item variant.
type item struct {
	code        string
	description string
	unitPrice   decimal.Decimal
	stock       int
}

// newItem validates code, price, stock and description, in that order.
func newItem(info ItemInfo) (item, error) {
	if err := firstError(
		check("code", info.Code, codeRules...),
		checkPrice(info.UnitPrice),
		check("stock", info.Stock, stockRules...),
		check("description", info.Description, descriptionRules...),
	); err != nil {
		return item{}, err
	}
	return item{
		code:        info.Code,
		description: info.Description,
		unitPrice:   info.UnitPrice,
		stock:       info.Stock,
	}, nil
}

func (i *item) base() *item { return i }

// Code returns the immutable item code.
func (i *item) Code() string { return i.code }

// Description returns the item description.
func (i *item) Description() string { return i.description }

// UnitPrice returns the price of a single unit.
func (i *item) UnitPrice() decimal.Decimal { return i.unitPrice }

// Stock returns the units currently on hand.
func (i *item) Stock() int { return i.stock }

// SetDescription replaces the description if it is valid.
func (i *item) SetDescription(description string) error {
	if err := check("description", description, descriptionRules...); err != nil {
		return err
	}
	i.description = description
	return nil
}

// SetUnitPrice replaces the unit price if it is valid.
func (i *item) SetUnitPrice(price decimal.Decimal) error {
	if err := checkPrice(price); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

// SetStock replaces the stock level if it is valid.
func (i *item) SetStock(stock int) error {
	if err := check("stock", stock, stockRules...); err != nil {
		return err
	}
	i.stock = stock
	return nil
}

// DecrementStock removes quantity units from stock. Nothing changes on error.
func (i *item) DecrementStock(quantity int) error {
	if err := i.ensureAvailable(quantity); err != nil {
		return err
	}
	i.stock -= quantity
	return nil
}

// ensureAvailable reports whether quantity units could be taken from stock.
func (i *item) ensureAvailable(quantity int) error {
	if quantity <= 0 {
		return newValidationError("quantity", quantity, "must be greater than zero")
	}
	if quantity > i.stock {
		return newInsufficientStockError(i.code, i.stock, quantity)
	}
	return nil
}

// Subtotal returns unit price × quantity.
func (i *item) Subtotal(quantity int) decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// formatItem renders the shared attributes followed by the variant details.
func formatItem(it CatalogItem) string {
	return fmt.Sprintf("Item{code=%s, type=%s, description=%s, unit_price=%s, stock=%d, details=%s}",
		it.Code(), it.Type(), it.Description(), it.UnitPrice().String(), it.Stock(), it.Details())
}
