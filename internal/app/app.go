package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/utafrali/paintstore/internal/config"
	"github.com/utafrali/paintstore/internal/event"
	handler "github.com/utafrali/paintstore/internal/handler/http"
	"github.com/utafrali/paintstore/internal/repository/memory"
	"github.com/utafrali/paintstore/internal/service"
	"github.com/utafrali/paintstore/pkg/health"
	pkgkafka "github.com/utafrali/paintstore/pkg/kafka"
	"github.com/utafrali/paintstore/pkg/tracing"
)

// pingBackoff is the first retry delay; it doubles on each attempt.
var pingBackoff = time.Second

const pingAttempts = 3

// App wires together all dependencies and runs the paint store service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	publisher      pkgkafka.Publisher
	services       *service.Services
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	healthHandler := health.NewHandler()

	// Initialize the event publisher. Without Kafka, events are dropped.
	var next pkgkafka.Publisher
	if cfg.KafkaEnabled {
		producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		if err := pingKafkaWithRetry(ctx, producer, logger); err != nil {
			logger.Warn("kafka producer ping failed after retries, continuing in degraded mode",
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
		}
		healthHandler.RegisterNonCritical("kafka", producer.Ping)
		next = producer
	} else {
		logger.Info("kafka disabled, sale events will not be published")
		next = pkgkafka.NewNoopPublisher(logger)
	}

	breakerCfg := pkgkafka.DefaultBreakerConfig("sale-events")
	breakerCfg.MaxRequests = cfg.BreakerMaxRequests
	breakerCfg.Interval = cfg.BreakerInterval
	breakerCfg.Timeout = cfg.BreakerTimeout
	breakerCfg.FailureRatio = cfg.BreakerFailureRatio
	breakerCfg.MinRequests = cfg.BreakerMinRequests
	publisher := pkgkafka.NewBreakerPublisher(next, breakerCfg, logger)

	// Build the dependency graph.
	services := service.New(
		memory.NewItemStore(),
		memory.NewCustomerStore(),
		memory.NewSaleStore(),
		event.NewProducer(publisher, logger),
		logger,
	)

	if cfg.SeedCatalog {
		if err := services.Catalog.Seed(ctx, service.DemoCatalog()); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	// HTTP router.
	router := handler.NewRouter(services, healthHandler, cfg.ServiceName, logger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		publisher:      publisher,
		services:       services,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components in order:
// 1. HTTP server (drain in-flight requests)
// 2. Tracer (flush pending spans from drained requests)
// 3. Event publisher
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if err := a.publisher.Close(); err != nil {
		a.logger.Error("event publisher close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// pingKafkaWithRetry attempts to ping Kafka with exponential backoff
// (3 attempts, 1s/2s with ±25% jitter between them).
func pingKafkaWithRetry(ctx context.Context, p pinger, logger *slog.Logger) error {
	var lastErr error
	for attempt := 0; attempt < pingAttempts; attempt++ {
		if lastErr = p.Ping(ctx); lastErr == nil {
			return nil
		}
		if attempt < pingAttempts-1 {
			base := pingBackoff << uint(attempt)
			jitter := time.Duration(float64(base) * 0.25 * (2*rand.Float64() - 1)) // #nosec G404 -- non-cryptographic jitter for retry backoff
			wait := base + jitter
			logger.Warn("kafka producer ping failed, retrying",
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", pingAttempts),
				slog.Duration("backoff", wait),
				slog.String("error", lastErr.Error()),
			)
			select {
			case <-ctx.Done():
				return fmt.Errorf("kafka ping: context canceled during retry: %w", ctx.Err())
			case <-time.After(wait):
			}
		}
	}
	return fmt.Errorf("kafka producer ping failed after %d attempts: %w", pingAttempts, lastErr)
}
