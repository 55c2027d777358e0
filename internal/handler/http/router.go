package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/paintstore/internal/service"
	"github.com/utafrali/paintstore/pkg/health"
	"github.com/utafrali/paintstore/pkg/middleware"
)

// NewRouter creates a chi router with all paint store routes registered.
func NewRouter(
	services *service.Services,
	healthHandler *health.Handler,
	serviceName string,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics(serviceName))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	items := NewItemHandler(services.Catalog, logger)
	customers := NewCustomerHandler(services.Customers, logger)
	sales := NewSaleHandler(services.Sales, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/items", func(r chi.Router) {
			r.Post("/", items.CreateItem)
			r.Get("/", items.ListItems)
			r.Get("/{code}", items.GetItem)
			r.Patch("/{code}", items.UpdateItem)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customers.CreateCustomer)
			r.Get("/{nationalId}", customers.GetCustomer)
			r.Patch("/{nationalId}", customers.UpdateCustomer)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", sales.OpenSale)
			r.Get("/{number}", sales.GetSale)
			r.Post("/{number}/items", sales.AddItem)
			r.Post("/{number}/confirm", sales.ConfirmSale)
		})
	})

	return r
}
