package repository

import (
	"context"

	"github.com/utafrali/paintstore/internal/domain"
)

// ItemFilter defines filter criteria for listing catalog items.
type ItemFilter struct {
	Type    *domain.ItemType
	Page    int
	PerPage int
}

// ItemRepository defines persistence for catalog items. Stored items are
// shared pointers; callers serialize mutation.
type ItemRepository interface {
	// Create stores a new item. Item codes are unique.
	Create(ctx context.Context, item domain.CatalogItem) error

	// GetByCode retrieves an item by its code.
	GetByCode(ctx context.Context, code string) (domain.CatalogItem, error)

	// List returns items ordered by code along with the total match count.
	List(ctx context.Context, filter ItemFilter) ([]domain.CatalogItem, int, error)
}

// CustomerRepository defines persistence for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer domain.Customer) error
	GetByNationalID(ctx context.Context, nationalID string) (domain.Customer, error)
}

// SaleRepository defines persistence for sales.
type SaleRepository interface {
	// NextNumber reserves the next unused sale number in the V-XXXX format.
	NextNumber(ctx context.Context) (string, error)

	Create(ctx context.Context, sale *domain.Sale) error
	GetByNumber(ctx context.Context, number string) (*domain.Sale, error)
}
