package domain

import "github.com/shopspring/decimal"

// LineItem pairs a catalog item with a quantity. The item is shared, not
// copied, so derived amounts follow the item's current price.
type LineItem struct {
	item     CatalogItem
	quantity int
}

// NewLineItem validates the item, then the quantity.
func NewLineItem(item CatalogItem, quantity int) (*LineItem, error) {
	if item == nil {
		return nil, newValidationError("item", nil, "must not be nil")
	}
	if err := check("quantity", quantity, quantityRules...); err != nil {
		return nil, err
	}
	return &LineItem{item: item, quantity: quantity}, nil
}

func (l *LineItem) Item() CatalogItem { return l.item }
func (l *LineItem) Quantity() int { return l.quantity }

// Subtotal returns the undiscounted amount of the line.
func (l *LineItem) Subtotal() decimal.Decimal {
	return l.item.Subtotal(l.quantity)
}

// Discount returns the product discount of the line.
func (l *LineItem) Discount() decimal.Decimal {
	return l.item.Discount(l.quantity)
}

// Total returns the subtotal minus the product discount.
func (l *LineItem) Total() decimal.Decimal {
	return l.Subtotal().Sub(l.Discount())
}
