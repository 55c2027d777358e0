package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/utafrali/paintstore/internal/domain"
	"github.com/utafrali/paintstore/internal/repository"
	apperrors "github.com/utafrali/paintstore/pkg/errors"
	"github.com/utafrali/paintstore/pkg/logger"
	"github.com/utafrali/paintstore/pkg/tracing"
)

// CreateCustomerInput carries the shared customer attributes plus those of
// the variant named by Type.
type CreateCustomerInput struct {
	Type domain.CustomerType
	Info domain.CustomerInfo

	// Wholesale
	LegalName    string
	TaxID        string
	AnnualVolume int

	// Retail
	Frequent          bool
	PurchasesLastYear int
}

// UpdateCustomerInput replaces the non-nil attributes.
type UpdateCustomerInput struct {
	Name  *string
	Phone *string
}

// CustomerService manages customers.
type CustomerService struct {
	mu        *sync.RWMutex
	customers repository.CustomerRepository
	logger    *slog.Logger
}

// CreateCustomer builds and stores a new customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (view CustomerView, err error) {
	ctx, span := tracer().Start(ctx, "CustomerService.CreateCustomer")
	span.SetAttributes(attribute.String("customer.type", string(input.Type)))
	defer func() { tracing.End(span, err) }()

	customer, err := buildCustomer(input)
	if err != nil {
		return CustomerView{}, translate(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.customers.Create(ctx, customer); err != nil {
		return CustomerView{}, fmt.Errorf("create customer: %w", err)
	}

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "customer created",
		slog.String("national_id", customer.NationalID()),
		slog.String("type", string(customer.Type())),
	)
	return newCustomerView(customer), nil
}

func buildCustomer(input CreateCustomerInput) (domain.Customer, error) {
	switch input.Type {
	case domain.CustomerTypeWholesale:
		return domain.NewWholesale(input.Info, input.LegalName, input.TaxID, input.AnnualVolume)
	case domain.CustomerTypeRetail:
		return domain.NewRetail(input.Info, input.Frequent, input.PurchasesLastYear)
	default:
		return nil, apperrors.Validation("type", "must be one of: wholesale, retail", nil)
	}
}

// GetCustomer returns the customer with the given national ID.
func (s *CustomerService) GetCustomer(ctx context.Context, nationalID string) (CustomerView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, err := s.customers.GetByNationalID(ctx, nationalID)
	if err != nil {
		return CustomerView{}, fmt.Errorf("get customer: %w", err)
	}
	return newCustomerView(customer), nil
}

// UpdateCustomer applies input to the customer. Either every change is
// applied or none is.
func (s *CustomerService) UpdateCustomer(ctx context.Context, nationalID string, input UpdateCustomerInput) (view CustomerView, err error) {
	ctx, span := tracer().Start(ctx, "CustomerService.UpdateCustomer")
	defer func() { tracing.End(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customers.GetByNationalID(ctx, nationalID)
	if err != nil {
		return CustomerView{}, fmt.Errorf("update customer: %w", err)
	}

	prevName, prevPhone := customer.Name(), customer.Phone()
	if err := applyCustomerUpdate(customer, input); err != nil {
		_ = customer.SetName(prevName)
		_ = customer.SetPhone(prevPhone)
		return CustomerView{}, translate(err)
	}

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "customer updated", slog.String("national_id", nationalID))
	return newCustomerView(customer), nil
}

func applyCustomerUpdate(customer domain.Customer, input UpdateCustomerInput) error {
	if input.Name != nil {
		if err := customer.SetName(*input.Name); err != nil {
			return err
		}
	}
	if input.Phone != nil {
		if err := customer.SetPhone(*input.Phone); err != nil {
			return err
		}
	}
	return nil
}
