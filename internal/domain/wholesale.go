package domain

import "github.com/shopspring/decimal"

// Wholesale is a business customer buying in volume.
type Wholesale struct {
	customer
	legalName    string
	taxID        string
	annualVolume int
}

// NewWholesale validates the shared fields, then legal name, tax ID and annual volume.
func NewWholesale(info CustomerInfo, legalName, taxID string, annualVolume int) (*Wholesale, error) {
	base, err := newCustomer(info)
	if err != nil {
		return nil, err
	}
	if err := firstError(
		check("legal_name", legalName, legalNameRules...),
		check("tax_id", taxID, taxIDRules...),
		check("annual_volume", annualVolume, annualVolumeRules...),
	); err != nil {
		return nil, err
	}
	return &Wholesale{
		customer:     base,
		legalName:    legalName,
		taxID:        taxID,
		annualVolume: annualVolume,
	}, nil
}

func (w *Wholesale) Type() CustomerType { return CustomerTypeWholesale }
func (w *Wholesale) Label() string { return "Mayorista" }
func (w *Wholesale) LegalName() string { return w.legalName }
func (w *Wholesale) TaxID() string { return w.taxID }
func (w *Wholesale) AnnualVolume() int { return w.annualVolume }

// DiscountPercent is 8, plus 5 from a volume of 1000 or 3 from 500.
func (w *Wholesale) DiscountPercent() int64 {
	points := int64(8)
	switch {
	case w.annualVolume >= 1000:
		points += 5
	case w.annualVolume >= 500:
		points += 3
	}
	return points
}

func (w *Wholesale) Discount(amount decimal.Decimal) decimal.Decimal {
	return discountOn(amount, w.DiscountPercent())
}

func (w *Wholesale) AmountDue(amount decimal.Decimal) decimal.Decimal {
	return amountDue(w, amount)
}

// HasSpecialDiscount reports whether the top volume tier applies.
func (w *Wholesale) HasSpecialDiscount() bool {
	return w.annualVolume >= 1000
}

func (w *Wholesale) String() string { return Summary(w) }
