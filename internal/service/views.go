package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/utafrali/paintstore/internal/domain"
)

// ItemView is a read-only snapshot of a catalog item.
type ItemView struct {
	Code        string          `json:"code"`
	Type        domain.ItemType `json:"type"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Stock       int             `json:"stock"`
	Details     string          `json:"details"`

	Paint     *PaintView     `json:"paint,omitempty"`
	Tool      *ToolView      `json:"tool,omitempty"`
	Accessory *AccessoryView `json:"accessory,omitempty"`
}

type PaintView struct {
	PaintType string  `json:"paint_type"`
	Color     string  `json:"color"`
	Liters    float64 `json:"liters"`
	Exterior  bool    `json:"exterior"`
}

type ToolView struct {
	Category         string `json:"category"`
	Material         string `json:"material"`
	Reusable         bool   `json:"reusable"`
	NeedsMaintenance bool   `json:"needs_maintenance"`
}

type AccessoryView struct {
	AccessoryType string  `json:"accessory_type"`
	Unit          string  `json:"unit"`
	Measure       float64 `json:"measure"`
	Consumable    bool    `json:"consumable"`
}

// CustomerView is a read-only snapshot of a customer.
type CustomerView struct {
	NationalID      string              `json:"national_id"`
	Name            string              `json:"name"`
	Phone           string              `json:"phone"`
	Type            domain.CustomerType `json:"type"`
	Label           string              `json:"label"`
	DiscountPercent int64               `json:"discount_percent"`

	Wholesale *WholesaleView `json:"wholesale,omitempty"`
	Retail    *RetailView    `json:"retail,omitempty"`
}

type WholesaleView struct {
	LegalName       string `json:"legal_name"`
	TaxID           string `json:"tax_id"`
	AnnualVolume    int    `json:"annual_volume"`
	SpecialDiscount bool   `json:"special_discount"`
}

type RetailView struct {
	Frequent          bool `json:"frequent"`
	PurchasesLastYear int  `json:"purchases_last_year"`
	FrequentDiscount  bool `json:"frequent_discount"`
}

// LineView is one line of a sale.
type LineView struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	ItemType    domain.ItemType `json:"item_type"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

// TotalsView holds the derived amounts of a non-empty sale.
type TotalsView struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	ProductDiscount       decimal.Decimal `json:"product_discount"`
	AfterProductDiscounts decimal.Decimal `json:"after_product_discounts"`
	CustomerDiscount      decimal.Decimal `json:"customer_discount"`
	Total                 decimal.Decimal `json:"total"`
}

// SaleView is a read-only snapshot of a sale. Totals is nil while the sale
// has no lines.
type SaleView struct {
	Number    string            `json:"number"`
	Status    domain.SaleStatus `json:"status"`
	Customer  CustomerView      `json:"customer"`
	CreatedAt time.Time         `json:"created_at"`
	Lines     []LineView        `json:"lines"`
	Totals    *TotalsView       `json:"totals,omitempty"`
	Summary   string            `json:"summary"`
}

func newItemView(it domain.CatalogItem) ItemView {
	v := ItemView{
		Code:        it.Code(),
		Type:        it.Type(),
		Description: it.Description(),
		UnitPrice:   it.UnitPrice(),
		Stock:       it.Stock(),
		Details:     it.Details(),
	}
	switch it := it.(type) {
	case *domain.Paint:
		v.Paint = &PaintView{
			PaintType: it.PaintType(),
			Color:     it.Color(),
			Liters:    it.Liters(),
			Exterior:  it.IsExterior(),
		}
	case *domain.Tool:
		v.Tool = &ToolView{
			Category:         it.Category(),
			Material:         it.Material(),
			Reusable:         it.Reusable(),
			NeedsMaintenance: it.NeedsMaintenance(),
		}
	case *domain.Accessory:
		v.Accessory = &AccessoryView{
			AccessoryType: it.AccessoryType(),
			Unit:          it.Unit(),
			Measure:       it.Measure(),
			Consumable:    it.IsConsumable(),
		}
	}
	return v
}

func newCustomerView(c domain.Customer) CustomerView {
	v := CustomerView{
		NationalID:      c.NationalID(),
		Name:            c.Name(),
		Phone:           c.Phone(),
		Type:            c.Type(),
		Label:           c.Label(),
		DiscountPercent: c.DiscountPercent(),
	}
	switch c := c.(type) {
	case *domain.Wholesale:
		v.Wholesale = &WholesaleView{
			LegalName:       c.LegalName(),
			TaxID:           c.TaxID(),
			AnnualVolume:    c.AnnualVolume(),
			SpecialDiscount: c.HasSpecialDiscount(),
		}
	case *domain.Retail:
		v.Retail = &RetailView{
			Frequent:          c.Frequent(),
			PurchasesLastYear: c.PurchasesLastYear(),
			FrequentDiscount:  c.HasFrequentDiscount(),
		}
	}
	return v
}

func newSaleView(s *domain.Sale) SaleView {
	lines := make([]LineView, 0, s.ItemCount())
	for _, l := range s.Items() {
		lines = append(lines, LineView{
			Code:        l.Item().Code(),
			Description: l.Item().Description(),
			ItemType:    l.Item().Type(),
			Quantity:    l.Quantity(),
			UnitPrice:   l.Item().UnitPrice(),
			Subtotal:    l.Subtotal(),
			Discount:    l.Discount(),
			Total:       l.Total(),
		})
	}

	v := SaleView{
		Number:    s.Number(),
		Status:    s.Status(),
		Customer:  newCustomerView(s.Customer()),
		CreatedAt: s.CreatedAt(),
		Lines:     lines,
		Summary:   s.String(),
	}
	if t, err := s.Totals(); err == nil {
		v.Totals = &TotalsView{
			Subtotal:              t.Subtotal,
			ProductDiscount:       t.ProductDiscount,
			AfterProductDiscounts: t.AfterProductDiscounts,
			CustomerDiscount:      t.CustomerDiscount,
			Total:                 t.Total,
		}
	}
	return v
}
