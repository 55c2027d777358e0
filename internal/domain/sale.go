package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale.
type SaleStatus string

// Sale statuses. Confirmed is terminal.
const (
	SaleStatusOpen      SaleStatus = "open"
	SaleStatusConfirmed SaleStatus = "confirmed"
)

// now is swapped in tests.
var now = time.Now

// Sale is an ordered set of line items sold to one customer. It starts open
// and can be confirmed exactly once, after which its lines are frozen.
type Sale struct {
	number    string
	customer  Customer
	createdAt time.Time
	items     []*LineItem
	confirmed bool
}

// Totals is a snapshot of every amount derived from a non-empty sale.
type Totals struct {
	Subtotal              decimal.Decimal
	ProductDiscount       decimal.Decimal
	AfterProductDiscounts decimal.Decimal
	CustomerDiscount      decimal.Decimal
	Total                 decimal.Decimal
}

// ValidateSaleNumber reports whether number has the V-XXXX format.
func ValidateSaleNumber(number string) error {
	return check("number", number, saleNumberRules...)
}

// NewSale validates the number, then the customer.
func NewSale(number string, customer Customer) (*Sale, error) {
	if err := ValidateSaleNumber(number); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, newValidationError("customer", nil, "must not be nil")
	}
	return &Sale{
		number:    number,
		customer:  customer,
		createdAt: now(),
	}, nil
}

func (s *Sale) Number() string { return s.number }
func (s *Sale) Customer() Customer { return s.customer }
func (s *Sale) CreatedAt() time.Time { return s.createdAt }
func (s *Sale) IsConfirmed() bool { return s.confirmed }
func (s *Sale) ItemCount() int { return len(s.items) }

// Items returns the line items in insertion order.
func (s *Sale) Items() []*LineItem {
	out := make([]*LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Status returns the lifecycle state.
func (s *Sale) Status() SaleStatus {
	if s.confirmed {
		return SaleStatusConfirmed
	}
	return SaleStatusOpen
}

// AddItem appends line while the sale is open.
func (s *Sale) AddItem(line *LineItem) error {
	if s.confirmed {
		return newAlreadyConfirmedError(s.number)
	}
	if line == nil {
		return newValidationError("item", nil, "must not be nil")
	}
	s.items = append(s.items, line)
	return nil
}

func (s *Sale) sum(amount func(*LineItem) decimal.Decimal) (decimal.Decimal, error) {
	if len(s.items) == 0 {
		return decimal.Zero, newEmptySaleError(s.number)
	}
	total := decimal.Zero
	for _, l := range s.items {
		total = total.Add(amount(l))
	}
	return total, nil
}

// Subtotal is the sum of the line subtotals.
func (s *Sale) Subtotal() (decimal.Decimal, error) {
	return s.sum((*LineItem).Subtotal)
}

// ProductDiscountTotal is the sum of the line product discounts.
func (s *Sale) ProductDiscountTotal() (decimal.Decimal, error) {
	return s.sum((*LineItem).Discount)
}

// TotalAfterProductDiscounts is the sum of the line totals.
func (s *Sale) TotalAfterProductDiscounts() (decimal.Decimal, error) {
	return s.sum((*LineItem).Total)
}

// CustomerDiscount is the customer discount on the product-discounted total.
func (s *Sale) CustomerDiscount() (decimal.Decimal, error) {
	amount, err := s.TotalAfterProductDiscounts()
	if err != nil {
		return decimal.Zero, err
	}
	return s.customer.Discount(amount), nil
}

// Total is the amount owed after product and customer discounts.
func (s *Sale) Total() (decimal.Decimal, error) {
	amount, err := s.TotalAfterProductDiscounts()
	if err != nil {
		return decimal.Zero, err
	}
	return s.customer.AmountDue(amount), nil
}

// Totals computes every derived amount at once.
func (s *Sale) Totals() (Totals, error) {
	var t Totals
	var err error
	if t.Subtotal, err = s.Subtotal(); err != nil {
		return Totals{}, err
	}
	if t.ProductDiscount, err = s.ProductDiscountTotal(); err != nil {
		return Totals{}, err
	}
	if t.AfterProductDiscounts, err = s.TotalAfterProductDiscounts(); err != nil {
		return Totals{}, err
	}
	t.CustomerDiscount = s.customer.Discount(t.AfterProductDiscounts)
	t.Total = t.AfterProductDiscounts.Sub(t.CustomerDiscount)
	return t, nil
}

// Confirm decrements stock for every line and freezes the sale. Quantities
// are summed per catalog item and checked against stock, in line order,
// before anything is decremented; on failure no stock changes and the sale
// stays open.
func (s *Sale) Confirm() error {
	if s.confirmed {
		return newAlreadyConfirmedError(s.number)
	}
	if len(s.items) == 0 {
		return newEmptySaleError(s.number)
	}

	requested := make(map[*item]int, len(s.items))
	for _, l := range s.items {
		it := l.item.base()
		requested[it] += l.quantity
		if err := it.ensureAvailable(requested[it]); err != nil {
			return err
		}
	}

	for _, l := range s.items {
		if err := l.item.DecrementStock(l.quantity); err != nil {
			return fmt.Errorf("decrement stock for %s: %w", l.item.Code(), err)
		}
	}
	s.confirmed = true
	return nil
}

func (s *Sale) String() string {
	head := fmt.Sprintf("Sale{number=%s, customer=%s, created_at=%s, confirmed=%t",
		s.number, Summary(s.customer), s.createdAt.Format(time.RFC3339), s.confirmed)
	t, err := s.Totals()
	if err != nil {
		return fmt.Sprintf("%s, items=%d}", head, len(s.items))
	}
	return fmt.Sprintf("%s, subtotal=%s, product_discount=%s, customer_discount=%s, total=%s}",
		head, t.Subtotal.String(), t.ProductDiscount.String(), t.CustomerDiscount.String(), t.Total.String())
}
