package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	salesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paintstore_sales_opened_total",
			Help: "Total number of sales opened.",
		},
		[]string{"customer_type"},
	)

	salesConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paintstore_sales_confirmed_total",
			Help: "Total number of sales confirmed.",
		},
		[]string{"customer_type"},
	)

	saleConfirmFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paintstore_sale_confirm_failures_total",
			Help: "Total number of rejected sale confirmations.",
		},
		[]string{"reason"},
	)

	saleConfirmedAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "paintstore_sale_confirmed_amount",
			Help:    "Amount due of confirmed sales.",
			Buckets: prometheus.ExponentialBuckets(1000, 2, 12),
		},
	)
)
