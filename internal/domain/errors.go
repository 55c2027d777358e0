package domain

import "fmt"

// ErrorKind classifies a business error raised by the domain model.
type ErrorKind int

// Error kinds.
const (
	KindValidation ErrorKind = iota + 1
	KindInsufficientStock
	KindEmptySale
	KindAlreadyConfirmed
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindEmptySale:
		return "empty_sale"
	case KindAlreadyConfirmed:
		return "already_confirmed"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching. Any *Error matches the sentinel of its kind.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrInsufficientStock = &Error{Kind: KindInsufficientStock}
	ErrEmptySale         = &Error{Kind: KindEmptySale}
	ErrAlreadyConfirmed  = &Error{Kind: KindAlreadyConfirmed}
)

// Error is the single error type returned by the domain model. Only the
// payload fields that belong to Kind are populated.
type Error struct {
	Kind ErrorKind

	// Validation
	Field  string
	Value  string
	Reason string

	// InsufficientStock
	Code      string
	Available int
	Requested int

	// EmptySale, AlreadyConfirmed
	SaleNumber string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		return fmt.Sprintf("validation failed on field %q with value %q: %s", e.Field, e.Value, e.Reason)
	case KindInsufficientStock:
		return fmt.Sprintf("insufficient stock for item %s: available %d, requested %d", e.Code, e.Available, e.Requested)
	case KindEmptySale:
		return fmt.Sprintf("sale %s has no items", e.SaleNumber)
	case KindAlreadyConfirmed:
		return fmt.Sprintf("sale %s is already confirmed and cannot be modified", e.SaleNumber)
	default:
		return "domain error"
	}
}

// Is reports whether target is a domain error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newValidationError(field string, value any, reason string) *Error {
	v := "<nil>"
	if value != nil {
		v = fmt.Sprint(value)
	}
	return &Error{Kind: KindValidation, Field: field, Value: v, Reason: reason}
}

func newInsufficientStockError(code string, available, requested int) *Error {
	return &Error{Kind: KindInsufficientStock, Code: code, Available: available, Requested: requested}
}

func newEmptySaleError(number string) *Error {
	return &Error{Kind: KindEmptySale, SaleNumber: number}
}

func newAlreadyConfirmedError(number string) *Error {
	return &Error{Kind: KindAlreadyConfirmed, SaleNumber: number}
}
