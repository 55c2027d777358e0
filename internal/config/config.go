package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/utafrali/paintstore/pkg/config"
)

// Config holds all configuration for the paint store service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"paintstore"`

	// HTTP server
	HTTPPort        int           `env:"PAINTSTORE_HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Kafka
	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Event publish circuit breaker
	BreakerMaxRequests  uint32        `env:"PUBLISH_BREAKER_MAX_REQUESTS" envDefault:"1"`
	BreakerInterval     time.Duration `env:"PUBLISH_BREAKER_INTERVAL" envDefault:"60s"`
	BreakerTimeout      time.Duration `env:"PUBLISH_BREAKER_TIMEOUT" envDefault:"30s"`
	BreakerFailureRatio float64       `env:"PUBLISH_BREAKER_FAILURE_RATIO" envDefault:"0.5"`
	BreakerMinRequests  uint32        `env:"PUBLISH_BREAKER_MIN_REQUESTS" envDefault:"5"`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`

	// Load the demo catalog at startup.
	SeedCatalog bool `env:"SEED_CATALOG" envDefault:"true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges env tags cannot express.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1 {
		return fmt.Errorf("invalid OTEL sample rate: %v", c.OTELSampleRate)
	}
	if c.BreakerFailureRatio <= 0 || c.BreakerFailureRatio > 1 {
		return fmt.Errorf("invalid publish breaker failure ratio: %v", c.BreakerFailureRatio)
	}
	if c.KafkaEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("kafka enabled but no brokers configured")
	}
	return nil
}
