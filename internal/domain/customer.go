package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CustomerType identifies the variant of a customer.
type CustomerType string

// Customer types.
const (
	CustomerTypeWholesale CustomerType = "wholesale"
	CustomerTypeRetail    CustomerType = "retail"
)

// Customer is a buyer whose classification drives a discount applied once to
// the product-discounted total of a sale. Only *Wholesale and *Retail
// implement it.
type Customer interface {
	NationalID() string
	Name() string
	Phone() string
	Type() CustomerType
	// Label is the display name of the customer classification.
	Label() string

	SetName(name string) error
	SetPhone(phone string) error

	// DiscountPercent is the total customer discount in percentage points.
	DiscountPercent() int64
	// Discount returns the customer discount on amount.
	Discount(amount decimal.Decimal) decimal.Decimal
	// AmountDue returns amount minus the customer discount.
	AmountDue(amount decimal.Decimal) decimal.Decimal

	contact() *customer
}

// CustomerInfo holds the attributes shared by all customer variants.
type CustomerInfo struct {
	NationalID string
	Name       string
	Phone      string
}

type customer struct {
	nationalID string
	name       string
	phone      string
}

func newCustomer(info CustomerInfo) (customer, error) {
	if err := firstError(
		check("national_id", info.NationalID, nationalIDRules...),
		check("name", info.Name, nameRules...),
		check("phone", info.Phone, phoneRules...),
	); err != nil {
		return customer{}, err
	}
	return customer{nationalID: info.NationalID, name: info.Name, phone: info.Phone}, nil
}

func (c *customer) contact() *customer { return c }

func (c *customer) NationalID() string { return c.nationalID }
func (c *customer) Name() string { return c.name }
func (c *customer) Phone() string { return c.phone }

// SetName replaces the name if it is valid.
func (c *customer) SetName(name string) error {
	if err := check("name", name, nameRules...); err != nil {
		return err
	}
	c.name = name
	return nil
}

// SetPhone replaces the phone number if it is valid.
func (c *customer) SetPhone(phone string) error {
	if err := check("phone", phone, phoneRules...); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func discountOn(amount decimal.Decimal, points int64) decimal.Decimal {
	return amount.Mul(percent(points))
}

func amountDue(c Customer, amount decimal.Decimal) decimal.Decimal {
	return amount.Sub(c.Discount(amount))
}

// Summary renders the identity of c on one line.
func Summary(c Customer) string {
	if c == nil {
		return "Customer{<nil>}"
	}
	return fmt.Sprintf("Customer{national_id=%s, name=%s, phone=%s, type=%s}",
		c.NationalID(), c.Name(), c.Phone(), c.Label())
}
