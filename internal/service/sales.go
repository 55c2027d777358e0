package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/utafrali/paintstore/internal/domain"
	"github.com/utafrali/paintstore/internal/event"
	"github.com/utafrali/paintstore/internal/repository"
	"github.com/utafrali/paintstore/pkg/logger"
	"github.com/utafrali/paintstore/pkg/tracing"
)

// OpenSaleInput identifies the customer and, optionally, the sale number.
// An empty Number is replaced by the next free one.
type OpenSaleInput struct {
	Number             string
	CustomerNationalID string
}

// AddItemInput names a catalog item and the quantity to sell.
type AddItemInput struct {
	Code     string
	Quantity int
}

// SaleService implements the sale workflow: open, add lines, confirm.
type SaleService struct {
	mu        *sync.RWMutex
	items     repository.ItemRepository
	customers repository.CustomerRepository
	sales     repository.SaleRepository
	producer  *event.Producer
	logger    *slog.Logger
}

// OpenSale creates an open sale for an existing customer.
func (s *SaleService) OpenSale(ctx context.Context, input OpenSaleInput) (view SaleView, err error) {
	ctx, span := tracer().Start(ctx, "SaleService.OpenSale")
	defer func() { tracing.End(span, err) }()

	if input.Number != "" {
		if err := domain.ValidateSaleNumber(input.Number); err != nil {
			return SaleView{}, translate(err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customers.GetByNationalID(ctx, input.CustomerNationalID)
	if err != nil {
		return SaleView{}, fmt.Errorf("open sale: %w", err)
	}

	number := input.Number
	if number == "" {
		if number, err = s.sales.NextNumber(ctx); err != nil {
			return SaleView{}, fmt.Errorf("open sale: %w", err)
		}
	}
	span.SetAttributes(attribute.String("sale.number", number))
	ctx = logger.WithSaleNumber(ctx, number)

	sale, err := domain.NewSale(number, customer)
	if err != nil {
		return SaleView{}, translate(err)
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return SaleView{}, fmt.Errorf("open sale: %w", err)
	}
	salesOpened.WithLabelValues(string(customer.Type())).Inc()

	log := logger.WithContext(ctx, s.logger)
	if err := s.producer.PublishSaleOpened(ctx, sale); err != nil {
		log.ErrorContext(ctx, "failed to publish sale.opened event", slog.String("error", err.Error()))
	}

	log.InfoContext(ctx, "sale opened",
		slog.String("customer_national_id", customer.NationalID()),
		slog.String("customer_type", string(customer.Type())),
	)
	return newSaleView(sale), nil
}

// GetSale returns the sale with the given number.
func (s *SaleService) GetSale(ctx context.Context, number string) (SaleView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sale, err := s.sales.GetByNumber(ctx, number)
	if err != nil {
		return SaleView{}, fmt.Errorf("get sale: %w", err)
	}
	return newSaleView(sale), nil
}

// AddItem appends a line for quantity units of the catalog item to an open
// sale. Stock is only checked on confirm.
func (s *SaleService) AddItem(ctx context.Context, number string, input AddItemInput) (view SaleView, err error) {
	ctx, span := tracer().Start(ctx, "SaleService.AddItem")
	span.SetAttributes(
		attribute.String("sale.number", number),
		attribute.String("item.code", input.Code),
		attribute.Int("item.quantity", input.Quantity),
	)
	defer func() { tracing.End(span, err) }()
	ctx = logger.WithSaleNumber(ctx, number)

	s.mu.Lock()
	defer s.mu.Unlock()

	sale, err := s.sales.GetByNumber(ctx, number)
	if err != nil {
		return SaleView{}, fmt.Errorf("add item: %w", err)
	}
	item, err := s.items.GetByCode(ctx, input.Code)
	if err != nil {
		return SaleView{}, fmt.Errorf("add item: %w", err)
	}

	line, err := domain.NewLineItem(item, input.Quantity)
	if err != nil {
		return SaleView{}, translate(err)
	}
	if err := sale.AddItem(line); err != nil {
		return SaleView{}, translate(err)
	}

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "item added to sale",
		slog.String("code", item.Code()),
		slog.Int("quantity", input.Quantity),
		slog.Int("lines", sale.ItemCount()),
	)
	return newSaleView(sale), nil
}

// ConfirmSale decrements stock for every line and freezes the sale. On
// failure no stock changes and the sale stays open.
func (s *SaleService) ConfirmSale(ctx context.Context, number string) (view SaleView, err error) {
	ctx, span := tracer().Start(ctx, "SaleService.ConfirmSale")
	span.SetAttributes(attribute.String("sale.number", number))
	defer func() {
		if err != nil {
			saleConfirmFailures.WithLabelValues(failureReason(err)).Inc()
		}
		tracing.End(span, err)
	}()
	ctx = logger.WithSaleNumber(ctx, number)
	log := logger.WithContext(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	sale, err := s.sales.GetByNumber(ctx, number)
	if err != nil {
		return SaleView{}, fmt.Errorf("confirm sale: %w", err)
	}
	if err := sale.Confirm(); err != nil {
		log.WarnContext(ctx, "sale confirmation rejected", slog.String("error", err.Error()))
		return SaleView{}, translate(err)
	}

	view = newSaleView(sale)
	salesConfirmed.WithLabelValues(string(sale.Customer().Type())).Inc()
	if view.Totals != nil {
		saleConfirmedAmount.Observe(view.Totals.Total.InexactFloat64())
	}

	if err := s.producer.PublishSaleConfirmed(ctx, sale); err != nil {
		log.ErrorContext(ctx, "failed to publish sale.confirmed event", slog.String("error", err.Error()))
	}

	log.InfoContext(ctx, "sale confirmed",
		slog.Int("lines", sale.ItemCount()),
		slog.String("total", view.Totals.Total.String()),
	)
	return view, nil
}
