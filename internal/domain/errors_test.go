package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "insufficient_stock", KindInsufficientStock.String())
	assert.Equal(t, "empty_sale", KindEmptySale.String())
	assert.Equal(t, "already_confirmed", KindAlreadyConfirmed.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{newValidationError("code", "AB", "must be at least 3 characters"),
			`validation failed on field "code" with value "AB": must be at least 3 characters`},
		{newInsufficientStockError("LAT-001", 2, 5),
			"insufficient stock for item LAT-001: available 2, requested 5"},
		{newEmptySaleError("V-0001"), "sale V-0001 has no items"},
		{newAlreadyConfirmedError("V-0001"), "sale V-0001 is already confirmed and cannot be modified"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestError_IsMatchesKindOnly(t *testing.T) {
	err := fmt.Errorf("confirm: %w", newEmptySaleError("V-0003"))

	assert.True(t, errors.Is(err, ErrEmptySale))
	assert.False(t, errors.Is(err, ErrAlreadyConfirmed))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, errors.New("sale V-0003 has no items")))
}
