package domain

import "github.com/shopspring/decimal"

// Retail is an individual customer.
type Retail struct {
	customer
	frequent          bool
	purchasesLastYear int
}

// NewRetail validates the shared fields, then the purchase count.
func NewRetail(info CustomerInfo, frequent bool, purchasesLastYear int) (*Retail, error) {
	base, err := newCustomer(info)
	if err != nil {
		return nil, err
	}
	if err := check("purchases_last_year", purchasesLastYear, purchasesRules...); err != nil {
		return nil, err
	}
	return &Retail{customer: base, frequent: frequent, purchasesLastYear: purchasesLastYear}, nil
}

func (r *Retail) Type() CustomerType { return CustomerTypeRetail }
func (r *Retail) Label() string { return "Minorista" }
func (r *Retail) Frequent() bool { return r.frequent }
func (r *Retail) PurchasesLastYear() int { return r.purchasesLastYear }

// DiscountPercent is 2, plus 3 for frequent buyers, plus 2 from ten purchases
// or 1 from five.
func (r *Retail) DiscountPercent() int64 {
	points := int64(2)
	if r.frequent {
		points += 3
	}
	switch {
	case r.purchasesLastYear >= 10:
		points += 2
	case r.purchasesLastYear >= 5:
		points++
	}
	return points
}

func (r *Retail) Discount(amount decimal.Decimal) decimal.Decimal {
	return discountOn(amount, r.DiscountPercent())
}

func (r *Retail) AmountDue(amount decimal.Decimal) decimal.Decimal {
	return amountDue(r, amount)
}

// HasFrequentDiscount reports whether the customer is a frequent buyer with
// at least five purchases in the last year.
func (r *Retail) HasFrequentDiscount() bool {
	return r.frequent && r.purchasesLastYear >= 5
}

func (r *Retail) String() string { return Summary(r) }
