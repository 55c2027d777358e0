package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/utafrali/paintstore/internal/domain"
	pkgkafka "github.com/utafrali/paintstore/pkg/kafka"
	"github.com/utafrali/paintstore/pkg/logger"
)

// Kafka topics for sale events.
var (
	TopicSaleOpened    = pkgkafka.Topic("sale", "opened")
	TopicSaleConfirmed = pkgkafka.Topic("sale", "confirmed")
)

// AggregateTypeSale is the aggregate type of every sale event.
const AggregateTypeSale = "sale"

// SourcePaintStore identifies events published by this service.
const SourcePaintStore = "paintstore"

// MetadataCustomerType is the envelope metadata key consumers can route on
// without decoding the payload.
const MetadataCustomerType = "customer_type"

// SaleOpenedData is the payload for a sale.opened event.
type SaleOpenedData struct {
	Number             string    `json:"number"`
	CustomerNationalID string    `json:"customer_national_id"`
	CustomerType       string    `json:"customer_type"`
	CreatedAt          time.Time `json:"created_at"`
}

// SaleLineData is one line of a confirmed sale.
type SaleLineData struct {
	Code     string          `json:"code"`
	ItemType string          `json:"item_type"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// SaleConfirmedData is the payload for a sale.confirmed event.
type SaleConfirmedData struct {
	Number             string          `json:"number"`
	CustomerNationalID string          `json:"customer_national_id"`
	CustomerType       string          `json:"customer_type"`
	Lines              []SaleLineData  `json:"lines"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	ProductDiscount    decimal.Decimal `json:"product_discount"`
	CustomerDiscount   decimal.Decimal `json:"customer_discount"`
	Total              decimal.Decimal `json:"total"`
}

// Producer publishes sale events.
type Producer struct {
	publisher pkgkafka.Publisher
	logger    *slog.Logger
}

// NewProducer creates a new sale event producer.
func NewProducer(publisher pkgkafka.Publisher, logger *slog.Logger) *Producer {
	return &Producer{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishSaleOpened publishes a sale.opened event.
func (p *Producer) PublishSaleOpened(ctx context.Context, sale *domain.Sale) error {
	data := SaleOpenedData{
		Number:             sale.Number(),
		CustomerNationalID: sale.Customer().NationalID(),
		CustomerType:       string(sale.Customer().Type()),
		CreatedAt:          sale.CreatedAt().UTC(),
	}
	return p.publish(ctx, TopicSaleOpened, sale, data)
}

// PublishSaleConfirmed publishes a sale.confirmed event. The sale must not be empty.
func (p *Producer) PublishSaleConfirmed(ctx context.Context, sale *domain.Sale) error {
	totals, err := sale.Totals()
	if err != nil {
		return fmt.Errorf("compute totals for sale %s: %w", sale.Number(), err)
	}

	lines := make([]SaleLineData, 0, sale.ItemCount())
	for _, l := range sale.Items() {
		lines = append(lines, SaleLineData{
			Code:     l.Item().Code(),
			ItemType: string(l.Item().Type()),
			Quantity: l.Quantity(),
			Subtotal: l.Subtotal(),
			Discount: l.Discount(),
			Total:    l.Total(),
		})
	}

	data := SaleConfirmedData{
		Number:             sale.Number(),
		CustomerNationalID: sale.Customer().NationalID(),
		CustomerType:       string(sale.Customer().Type()),
		Lines:              lines,
		Subtotal:           totals.Subtotal,
		ProductDiscount:    totals.ProductDiscount,
		CustomerDiscount:   totals.CustomerDiscount,
		Total:              totals.Total,
	}
	return p.publish(ctx, TopicSaleConfirmed, sale, data)
}

func (p *Producer) publish(ctx context.Context, topic string, sale *domain.Sale, data any) error {
	saleNumber := sale.Number()
	event, err := pkgkafka.NewEvent(topic, saleNumber, AggregateTypeSale, SourcePaintStore, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	event.WithMetadata(MetadataCustomerType, string(sale.Customer().Type()))
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		event.WithCorrelationID(id)
	}

	if err := p.publisher.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published sale event",
		slog.String("topic", topic),
		slog.String("event_id", event.EventID),
		slog.String("sale_number", saleNumber),
	)
	return nil
}
