package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
)

var (
	// ProducerMessagesPublished counts messages accepted by the brokers.
	ProducerMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_producer_messages_published_total",
			Help: "Total number of Kafka messages published",
		},
		[]string{"topic"},
	)

	// ProducerPublishErrors counts failed writes.
	ProducerPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_producer_publish_errors_total",
			Help: "Total number of Kafka publish errors",
		},
		[]string{"topic"},
	)

	// ProducerPublishDuration observes the duration of publish operations.
	ProducerPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kafka_producer_publish_duration_seconds",
			Help:    "Duration of Kafka publish operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic"},
	)

	// PublisherBreakerState tracks the publish circuit breaker (0=closed, 1=half-open, 2=open).
	PublisherBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kafka_publisher_circuit_breaker_state",
			Help: "Current state of the publish circuit breaker (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// PublisherRejected counts publishes refused while the breaker was open.
	PublisherRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_publisher_rejected_total",
			Help: "Total number of publishes rejected by an open circuit breaker",
		},
		[]string{"name", "topic"},
	)
)

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
