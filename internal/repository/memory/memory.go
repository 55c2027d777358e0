package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/utafrali/paintstore/internal/domain"
	"github.com/utafrali/paintstore/internal/repository"
	apperrors "github.com/utafrali/paintstore/pkg/errors"
	"github.com/utafrali/paintstore/pkg/pagination"
)

// maxSaleNumber is the last number the V-XXXX format can hold.
const maxSaleNumber = 9999

// ItemStore implements repository.ItemRepository using an in-memory map.
type ItemStore struct {
	mu    sync.RWMutex
	items map[string]domain.CatalogItem
}

// NewItemStore creates an empty item store.
func NewItemStore() *ItemStore {
	return &ItemStore{items: make(map[string]domain.CatalogItem)}
}

// Create stores item under its code.
func (s *ItemStore) Create(_ context.Context, item domain.CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.Code()]; exists {
		return apperrors.AlreadyExists("catalog item", "code", item.Code())
	}
	s.items[item.Code()] = item
	return nil
}

// GetByCode returns the item stored under code.
func (s *ItemStore) GetByCode(_ context.Context, code string) (domain.CatalogItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[code]
	if !ok {
		return nil, apperrors.NotFound("catalog item", code)
	}
	return item, nil
}

// List returns one page of items ordered by code.
func (s *ItemStore) List(_ context.Context, filter repository.ItemFilter) ([]domain.CatalogItem, int, error) {
	s.mu.RLock()
	matched := make([]domain.CatalogItem, 0, len(s.items))
	for _, item := range s.items {
		if filter.Type != nil && item.Type() != *filter.Type {
			continue
		}
		matched = append(matched, item)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].Code() < matched[j].Code() })

	params := pagination.NewParams(filter.Page, filter.PerPage)
	return pagination.Slice(matched, params), len(matched), nil
}

// CustomerStore implements repository.CustomerRepository using an in-memory map.
type CustomerStore struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
}

// NewCustomerStore creates an empty customer store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{customers: make(map[string]domain.Customer)}
}

// Create stores customer under its national ID.
func (s *CustomerStore) Create(_ context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customers[customer.NationalID()]; exists {
		return apperrors.AlreadyExists("customer", "national_id", customer.NationalID())
	}
	s.customers[customer.NationalID()] = customer
	return nil
}

// GetByNationalID returns the customer stored under nationalID.
func (s *CustomerStore) GetByNationalID(_ context.Context, nationalID string) (domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[nationalID]
	if !ok {
		return nil, apperrors.NotFound("customer", nationalID)
	}
	return customer, nil
}

// SaleStore implements repository.SaleRepository using an in-memory map.
// Numbers are handed out sequentially, skipping any already taken by a sale
// created with an explicit number.
type SaleStore struct {
	mu    sync.RWMutex
	sales map[string]*domain.Sale
	last  int
}

// NewSaleStore creates an empty sale store.
func NewSaleStore() *SaleStore {
	return &SaleStore{sales: make(map[string]*domain.Sale)}
}

// NextNumber returns the next free sale number.
func (s *SaleStore) NextNumber(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.last < maxSaleNumber {
		s.last++
		number := fmt.Sprintf("V-%04d", s.last)
		if _, taken := s.sales[number]; !taken {
			return number, nil
		}
	}
	return "", apperrors.Exhausted("no sale numbers left")
}

// Create stores sale under its number.
func (s *SaleStore) Create(_ context.Context, sale *domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sales[sale.Number()]; exists {
		return apperrors.AlreadyExists("sale", "number", sale.Number())
	}
	s.sales[sale.Number()] = sale
	return nil
}

// GetByNumber returns the sale stored under number.
func (s *SaleStore) GetByNumber(_ context.Context, number string) (*domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sale, ok := s.sales[number]
	if !ok {
		return nil, apperrors.NotFound("sale", number)
	}
	return sale, nil
}

var (
	_ repository.ItemRepository     = (*ItemStore)(nil)
	_ repository.CustomerRepository = (*CustomerStore)(nil)
	_ repository.SaleRepository     = (*SaleStore)(nil)
)
