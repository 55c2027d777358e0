package domain

import (
	"github.com/shopspring/decimal"

	"github.com/utafrali/paintstore/pkg/validator"
)

// rule pairs a validator tag with the reason reported when it fails.
type rule struct {
	tag    string
	reason string
}

// check runs rules in order against value and stops at the first failure.
func check(field string, value any, rules ...rule) error {
	for _, r := range rules {
		if err := validator.Var(value, r.tag); err != nil {
			return newValidationError(field, value, r.reason)
		}
	}
	return nil
}

// firstError returns the first non-nil error in declaration order.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

var notBlank = rule{"notblank", "must not be blank"}

// Catalog item rules.
var (
	codeRules        = []rule{notBlank, {"min=3", "must be at least 3 characters"}}
	descriptionRules = []rule{notBlank, {"min=5", "must be at least 5 characters"}}
	stockRules       = []rule{{"gte=0", "must not be negative"}}

	paintTypeRules = []rule{notBlank, {"oneofci=latex esmalte acrílico", "must be one of: latex, esmalte, acrílico"}}
	litersRules    = []rule{{"gt=0", "must be greater than zero"}, {"lte=20", "must not exceed 20"}}

	toolCategoryRules = []rule{notBlank, {"oneofci=brocha rodillo espátula", "must be one of: brocha, rodillo, espátula"}}

	accessoryTypeRules = []rule{notBlank, {"oneofci=cinta papel plástico", "must be one of: cinta, papel, plástico"}}
	unitRules          = []rule{notBlank, {"oneofci=metros rollos unidades", "must be one of: metros, rollos, unidades"}}
	measureRules       = []rule{{"gt=0", "must be greater than zero"}, {"lte=1000", "must not exceed 1000"}}
)

// Customer rules.
var (
	nationalIDRules = []rule{notBlank, {"min=7,max=8", "must be 7 to 8 characters long"}, {"digits", "must contain only digits"}}
	nameRules       = []rule{notBlank, {"min=2", "must be at least 2 characters"}, {"max=50", "must be at most 50 characters"}}
	phoneRules      = []rule{notBlank, {"phone", "must be a valid phone number (e.g. 011 4444-0000)"}}

	legalNameRules    = []rule{notBlank, {"min=5", "must be at least 5 characters"}}
	taxIDRules        = []rule{notBlank, {"cuit", "must have 11 digits, with or without hyphens"}}
	annualVolumeRules = []rule{{"gte=0", "must not be negative"}, {"lte=100000", "must not exceed 100000"}}

	purchasesRules = []rule{{"gte=0", "must not be negative"}, {"lte=365", "must not exceed 365"}}
)

// Sale rules.
var (
	quantityRules   = []rule{{"gt=0", "must be greater than zero"}, {"lte=1000", "must not exceed 1000"}}
	saleNumberRules = []rule{notBlank, {"salenumber", "must match the format V-XXXX"}}
)

// checkPrice rejects negative and zero prices. decimal.Decimal is a struct, so
// it cannot go through validator tags.
func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return newValidationError("price", price.String(), "must not be negative")
	}
	if price.IsZero() {
		return newValidationError("price", price.String(), "must be greater than zero")
	}
	return nil
}

// percent returns n hundredths as an exact decimal.
func percent(n int64) decimal.Decimal {
	return decimal.New(n, -2)
}
