package service

import (
	"errors"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/utafrali/paintstore/internal/domain"
	"github.com/utafrali/paintstore/internal/event"
	"github.com/utafrali/paintstore/internal/repository"
	apperrors "github.com/utafrali/paintstore/pkg/errors"
	"github.com/utafrali/paintstore/pkg/tracing"
)

const tracerName = "github.com/utafrali/paintstore/internal/service"

func tracer() trace.Tracer { return tracing.Tracer(tracerName) }

// Services bundles the catalog, customer and sale services. All three share
// one lock: domain objects are mutable and shared between sales, so every
// mutation and every view is taken under it.
type Services struct {
	Catalog   *CatalogService
	Customers *CustomerService
	Sales     *SaleService
}

// New wires the services around a single lock.
func New(
	items repository.ItemRepository,
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *Services {
	mu := &sync.RWMutex{}
	return &Services{
		Catalog:   &CatalogService{mu: mu, items: items, logger: logger},
		Customers: &CustomerService{mu: mu, customers: customers, logger: logger},
		Sales: &SaleService{
			mu:        mu,
			items:     items,
			customers: customers,
			sales:     sales,
			producer:  producer,
			logger:    logger,
		},
	}
}

// translate maps a domain error to the matching application error. The
// domain error stays in the chain for errors.Is/As.
func translate(err error) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		return err
	}
	switch de.Kind {
	case domain.KindValidation:
		return apperrors.Validation(de.Field, de.Reason, err)
	case domain.KindInsufficientStock:
		return apperrors.Conflict("INSUFFICIENT_STOCK", de.Error(), err)
	case domain.KindEmptySale:
		return apperrors.Unprocessable("EMPTY_SALE", de.Error(), err)
	case domain.KindAlreadyConfirmed:
		return apperrors.Conflict("SALE_ALREADY_CONFIRMED", de.Error(), err)
	default:
		return err
	}
}

// failureReason labels err for the confirm failure counter.
func failureReason(err error) string {
	var de *domain.Error
	switch {
	case errors.As(err, &de):
		return de.Kind.String()
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
