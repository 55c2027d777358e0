package event

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/paintstore/internal/domain"
	pkgkafka "github.com/utafrali/paintstore/pkg/kafka"
	"github.com/utafrali/paintstore/pkg/logger"
)

// ============================================================================
// Mock Publisher
// ============================================================================

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, event *pkgkafka.Event) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

// ============================================================================
// Helpers
// ============================================================================

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestSale(t *testing.T) *domain.Sale {
	t.Helper()
	customer, err := domain.NewRetail(domain.CustomerInfo{
		NationalID: "30123456",
		Name:       "Ana Gómez",
		Phone:      "011 4444-0000",
	}, true, 12)
	require.NoError(t, err)

	sale, err := domain.NewSale("V-0007", customer)
	require.NoError(t, err)
	return sale
}

func addPaint(t *testing.T, sale *domain.Sale, quantity int) {
	t.Helper()
	paint, err := domain.NewPaint(domain.ItemInfo{
		Code:        "LAT-001",
		Description: "Latex interior blanco",
		UnitPrice:   decimal.NewFromInt(100),
		Stock:       50,
	}, "latex", "blanco", 4)
	require.NoError(t, err)
	line, err := domain.NewLineItem(paint, quantity)
	require.NoError(t, err)
	require.NoError(t, sale.AddItem(line))
}

func capturedEvent(t *testing.T, pub *mockPublisher) *pkgkafka.Event {
	t.Helper()
	require.Len(t, pub.Calls, 1)
	event, ok := pub.Calls[0].Arguments.Get(2).(*pkgkafka.Event)
	require.True(t, ok)
	return event
}

// ============================================================================
// Tests
// ============================================================================

func TestTopics(t *testing.T) {
	assert.Equal(t, "paintstore.sale.opened", TopicSaleOpened)
	assert.Equal(t, "paintstore.sale.confirmed", TopicSaleConfirmed)
}

func TestPublishSaleOpened(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, TopicSaleOpened, mock.Anything).Return(nil)
	producer := NewProducer(pub, newTestLogger())
	sale := newTestSale(t)

	ctx := logger.WithCorrelationID(context.Background(), "corr-123")
	require.NoError(t, producer.PublishSaleOpened(ctx, sale))

	event := capturedEvent(t, pub)
	assert.Equal(t, TopicSaleOpened, event.EventType)
	assert.Equal(t, "V-0007", event.AggregateID)
	assert.Equal(t, AggregateTypeSale, event.AggregateType)
	assert.Equal(t, SourcePaintStore, event.Source)
	assert.Equal(t, "corr-123", event.CorrelationID)
	assert.Equal(t, "retail", event.Metadata[MetadataCustomerType])

	var data SaleOpenedData
	require.NoError(t, event.UnmarshalData(&data))
	assert.Equal(t, "V-0007", data.Number)
	assert.Equal(t, "30123456", data.CustomerNationalID)
	assert.Equal(t, "retail", data.CustomerType)
}

func TestPublishSaleConfirmed(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, TopicSaleConfirmed, mock.Anything).Return(nil)
	producer := NewProducer(pub, newTestLogger())
	sale := newTestSale(t)
	addPaint(t, sale, 3)

	require.NoError(t, producer.PublishSaleConfirmed(context.Background(), sale))

	event := capturedEvent(t, pub)
	assert.Empty(t, event.CorrelationID)

	var data SaleConfirmedData
	require.NoError(t, event.UnmarshalData(&data))
	require.Len(t, data.Lines, 1)
	assert.Equal(t, "LAT-001", data.Lines[0].Code)
	assert.Equal(t, "paint", data.Lines[0].ItemType)
	assert.Equal(t, 3, data.Lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(300).Equal(data.Subtotal))
	assert.True(t, decimal.NewFromInt(15).Equal(data.ProductDiscount))
	// 285 less 7% for a frequent retail customer with 12 purchases.
	assert.True(t, decimal.RequireFromString("19.95").Equal(data.CustomerDiscount))
	assert.True(t, decimal.RequireFromString("265.05").Equal(data.Total))
}

func TestPublishSaleConfirmed_EmptySale(t *testing.T) {
	pub := new(mockPublisher)
	producer := NewProducer(pub, newTestLogger())

	err := producer.PublishSaleConfirmed(context.Background(), newTestSale(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptySale))
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_PublisherError(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, TopicSaleOpened, mock.Anything).Return(pkgkafka.ErrBreakerOpen)
	producer := NewProducer(pub, newTestLogger())

	err := producer.PublishSaleOpened(context.Background(), newTestSale(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgkafka.ErrBreakerOpen))
	assert.Contains(t, err.Error(), "publish paintstore.sale.opened event")
}
