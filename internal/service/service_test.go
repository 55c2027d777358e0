package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/paintstore/internal/domain"
	"github.com/utafrali/paintstore/internal/event"
	"github.com/utafrali/paintstore/internal/repository"
	"github.com/utafrali/paintstore/internal/repository/memory"
	apperrors "github.com/utafrali/paintstore/pkg/errors"
	pkgkafka "github.com/utafrali/paintstore/pkg/kafka"
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

type fixture struct {
	svc       *Services
	publisher *mockPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return newFixtureWithPublisher(t, pub)
}

func newFixtureWithPublisher(t *testing.T, pub *mockPublisher) *fixture {
	t.Helper()
	log := newTestLogger()
	svc := New(
		memory.NewItemStore(),
		memory.NewCustomerStore(),
		memory.NewSaleStore(),
		event.NewProducer(pub, log),
		log,
	)
	return &fixture{svc: svc, publisher: pub}
}

func paintInput(code string, price int64, stock int) CreateItemInput {
	return CreateItemInput{
		Type: domain.ItemTypePaint,
		Info: domain.ItemInfo{
			Code:        code,
			Description: "Latex interior blanco",
			UnitPrice:   decimal.NewFromInt(price),
			Stock:       stock,
		},
		PaintType: "latex",
		Color:     "blanco",
		Liters:    4,
	}
}

func toolInput(code string, price int64, stock int) CreateItemInput {
	return CreateItemInput{
		Type: domain.ItemTypeTool,
		Info: domain.ItemInfo{
			Code:        code,
			Description: "Rodillo antigota",
			UnitPrice:   decimal.NewFromInt(price),
			Stock:       stock,
		},
		Category: "rodillo",
		Material: "lana",
		Reusable: true,
	}
}

func wholesaleInput(nationalID string, volume int) CreateCustomerInput {
	return CreateCustomerInput{
		Type: domain.CustomerTypeWholesale,
		Info: domain.CustomerInfo{
			NationalID: nationalID,
			Name:       "Ana Gómez",
			Phone:      "011 4444-0000",
		},
		LegalName:    "Pinturerías del Sur SA",
		TaxID:        "30-12345678-9",
		AnnualVolume: volume,
	}
}

func retailInput(nationalID string) CreateCustomerInput {
	return CreateCustomerInput{
		Type: domain.CustomerTypeRetail,
		Info: domain.CustomerInfo{
			NationalID: nationalID,
			Name:       "Juan Pérez",
			Phone:      "011 5555-1111",
		},
	}
}

func (f *fixture) mustItem(t *testing.T, in CreateItemInput) ItemView {
	t.Helper()
	v, err := f.svc.Catalog.CreateItem(context.Background(), in)
	require.NoError(t, err)
	return v
}

func (f *fixture) mustCustomer(t *testing.T, in CreateCustomerInput) CustomerView {
	t.Helper()
	v, err := f.svc.Customers.CreateCustomer(context.Background(), in)
	require.NoError(t, err)
	return v
}

func (f *fixture) mustSale(t *testing.T, nationalID string) SaleView {
	t.Helper()
	v, err := f.svc.Sales.OpenSale(context.Background(), OpenSaleInput{CustomerNationalID: nationalID})
	require.NoError(t, err)
	return v
}

func (f *fixture) mustAdd(t *testing.T, number, code string, quantity int) SaleView {
	t.Helper()
	v, err := f.svc.Sales.AddItem(context.Background(), number, AddItemInput{Code: code, Quantity: quantity})
	require.NoError(t, err)
	return v
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func requireAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

// ============================================================================
// Error translation
// ============================================================================

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		sentinel error
	}{
		{"validation", &domain.Error{Kind: domain.KindValidation, Field: "price", Reason: "must be greater than zero"}, "VALIDATION_ERROR", domain.ErrValidation},
		{"insufficient stock", &domain.Error{Kind: domain.KindInsufficientStock, Code: "LAT-001", Available: 1, Requested: 2}, "INSUFFICIENT_STOCK", domain.ErrInsufficientStock},
		{"empty sale", &domain.Error{Kind: domain.KindEmptySale, SaleNumber: "V-0001"}, "EMPTY_SALE", domain.ErrEmptySale},
		{"already confirmed", &domain.Error{Kind: domain.KindAlreadyConfirmed, SaleNumber: "V-0001"}, "SALE_ALREADY_CONFIRMED", domain.ErrAlreadyConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translate(tt.err)
			requireAppError(t, err, tt.code)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}

	t.Run("validation carries field", func(t *testing.T) {
		appErr := requireAppError(t, translate(tests[0].err), "VALIDATION_ERROR")
		assert.Equal(t, map[string]string{"price": "must be greater than zero"}, appErr.Fields)
	})

	t.Run("non-domain error passes through", func(t *testing.T) {
		err := errors.New("boom")
		assert.Same(t, err, translate(err))
	})
}

func TestFailureReason(t *testing.T) {
	assert.Equal(t, "insufficient_stock", failureReason(translate(&domain.Error{Kind: domain.KindInsufficientStock})))
	assert.Equal(t, "not_found", failureReason(apperrors.NotFound("sale", "V-0001")))
	assert.Equal(t, "internal", failureReason(errors.New("boom")))
}

// ============================================================================
// CatalogService
// ============================================================================

func TestCatalog_CreateItem(t *testing.T) {
	f := newFixture(t)

	v := f.mustItem(t, paintInput("LAT-001", 100, 10))

	assert.Equal(t, "LAT-001", v.Code)
	assert.Equal(t, domain.ItemTypePaint, v.Type)
	require.NotNil(t, v.Paint)
	assert.Equal(t, "latex", v.Paint.PaintType)
	assert.False(t, v.Paint.Exterior)
	assert.Nil(t, v.Tool)
	assert.Nil(t, v.Accessory)
}

func TestCatalog_CreateItem_Variants(t *testing.T) {
	f := newFixture(t)

	tool := f.mustItem(t, toolInput("ROD-001", 20, 5))
	require.NotNil(t, tool.Tool)
	assert.True(t, tool.Tool.NeedsMaintenance)

	acc := f.mustItem(t, CreateItemInput{
		Type: domain.ItemTypeAccessory,
		Info: domain.ItemInfo{
			Code:        "CIN-024",
			Description: "Cinta de papel 24mm",
			UnitPrice:   decimal.NewFromInt(10),
			Stock:       100,
		},
		AccessoryType: "cinta",
		Unit:          "metros",
		Measure:       50,
	})
	require.NotNil(t, acc.Accessory)
	assert.True(t, acc.Accessory.Consumable)
}

func TestCatalog_CreateItem_Invalid(t *testing.T) {
	f := newFixture(t)

	in := paintInput("LAT-001", 0, 10)
	_, err := f.svc.Catalog.CreateItem(context.Background(), in)
	appErr := requireAppError(t, err, "VALIDATION_ERROR")
	assert.Contains(t, appErr.Fields, "price")
	assert.True(t, errors.Is(err, domain.ErrValidation))

	in = paintInput("LAT-001", 10, 10)
	in.Type = "brush"
	_, err = f.svc.Catalog.CreateItem(context.Background(), in)
	appErr = requireAppError(t, err, "VALIDATION_ERROR")
	assert.Contains(t, appErr.Fields, "type")
}

func TestCatalog_CreateItem_Duplicate(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-001", 100, 10))

	_, err := f.svc.Catalog.CreateItem(context.Background(), paintInput("LAT-001", 100, 10))
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))
}

func TestCatalog_GetItem_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Catalog.GetItem(context.Background(), "NOPE-1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, 404, apperrors.HTTPStatus(err))
}

func TestCatalog_ListItems(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-002", 100, 10))
	f.mustItem(t, toolInput("ROD-001", 20, 5))
	f.mustItem(t, paintInput("LAT-001", 100, 10))

	views, total, err := f.svc.Catalog.ListItems(context.Background(), repository.ItemFilter{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, views, 2)
	assert.Equal(t, "LAT-001", views[0].Code)
	assert.Equal(t, "LAT-002", views[1].Code)
}

func TestCatalog_UpdateItem(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-001", 100, 10))

	desc := "Latex exterior gris"
	price := decimal.NewFromInt(120)
	stock := 25
	v, err := f.svc.Catalog.UpdateItem(context.Background(), "LAT-001", UpdateItemInput{
		Description: &desc,
		UnitPrice:   &price,
		Stock:       &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, desc, v.Description)
	assertDecimal(t, "120", v.UnitPrice)
	assert.Equal(t, 25, v.Stock)
}

func TestCatalog_UpdateItem_AllOrNothing(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-001", 100, 10))

	desc := "Latex exterior gris"
	price := decimal.NewFromInt(120)
	stock := -1
	_, err := f.svc.Catalog.UpdateItem(context.Background(), "LAT-001", UpdateItemInput{
		Description: &desc,
		UnitPrice:   &price,
		Stock:       &stock,
	})
	appErr := requireAppError(t, err, "VALIDATION_ERROR")
	assert.Contains(t, appErr.Fields, "stock")

	v, err := f.svc.Catalog.GetItem(context.Background(), "LAT-001")
	require.NoError(t, err)
	assert.Equal(t, "Latex interior blanco", v.Description)
	assertDecimal(t, "100", v.UnitPrice)
	assert.Equal(t, 10, v.Stock)
}

func TestCatalog_Seed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Catalog.Seed(ctx, DemoCatalog()))
	// A second run skips existing items.
	require.NoError(t, f.svc.Catalog.Seed(ctx, DemoCatalog()))

	_, total, err := f.svc.Catalog.ListItems(ctx, repository.ItemFilter{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, len(DemoCatalog()), total)

	v, err := f.svc.Catalog.GetItem(ctx, "ESMALTE-NEGRO-1L")
	require.NoError(t, err)
	assert.True(t, v.Paint.Exterior)
}

func TestCatalog_Seed_Invalid(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Catalog.Seed(context.Background(), []CreateItemInput{paintInput("X", 100, 1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed item X")
}

// ============================================================================
// CustomerService
// ============================================================================

func TestCustomers_Create(t *testing.T) {
	f := newFixture(t)

	w := f.mustCustomer(t, wholesaleInput("30123456", 1200))
	assert.Equal(t, "Mayorista", w.Label)
	assert.Equal(t, int64(13), w.DiscountPercent)
	require.NotNil(t, w.Wholesale)
	assert.True(t, w.Wholesale.SpecialDiscount)
	assert.Equal(t, "30-12345678-9", w.Wholesale.TaxID)

	r := f.mustCustomer(t, retailInput("20111222"))
	assert.Equal(t, "Minorista", r.Label)
	assert.Equal(t, int64(2), r.DiscountPercent)
	require.NotNil(t, r.Retail)
	assert.False(t, r.Retail.FrequentDiscount)
}

func TestCustomers_Create_Invalid(t *testing.T) {
	f := newFixture(t)

	in := retailInput("12AB")
	_, err := f.svc.Customers.CreateCustomer(context.Background(), in)
	appErr := requireAppError(t, err, "VALIDATION_ERROR")
	assert.Contains(t, appErr.Fields, "national_id")

	in = retailInput("20111222")
	in.Type = "vip"
	_, err = f.svc.Customers.CreateCustomer(context.Background(), in)
	requireAppError(t, err, "VALIDATION_ERROR")
}

func TestCustomers_Get_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Customers.GetCustomer(context.Background(), "9999999")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCustomers_Update_AllOrNothing(t *testing.T) {
	f := newFixture(t)
	f.mustCustomer(t, retailInput("20111222"))

	name := "Juana Pérez"
	phone := "not a phone"
	_, err := f.svc.Customers.UpdateCustomer(context.Background(), "20111222", UpdateCustomerInput{Name: &name, Phone: &phone})
	appErr := requireAppError(t, err, "VALIDATION_ERROR")
	assert.Contains(t, appErr.Fields, "phone")

	v, err := f.svc.Customers.GetCustomer(context.Background(), "20111222")
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", v.Name)

	v, err = f.svc.Customers.UpdateCustomer(context.Background(), "20111222", UpdateCustomerInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, v.Name)
	assert.Equal(t, "011 5555-1111", v.Phone)
}

// ============================================================================
// SaleService
// ============================================================================

func TestSales_OpenSale_GeneratesNumber(t *testing.T) {
	f := newFixture(t)
	f.mustCustomer(t, retailInput("20111222"))
	opened := testutil.ToFloat64(salesOpened.WithLabelValues("retail"))

	first := f.mustSale(t, "20111222")
	second := f.mustSale(t, "20111222")

	assert.Equal(t, "V-0001", first.Number)
	assert.Equal(t, "V-0002", second.Number)
	assert.Equal(t, domain.SaleStatusOpen, first.Status)
	assert.Empty(t, first.Lines)
	assert.Nil(t, first.Totals)
	assert.Contains(t, first.Summary, "items=0")
	assert.Equal(t, opened+2, testutil.ToFloat64(salesOpened.WithLabelValues("retail")))
	f.publisher.AssertNumberOfCalls(t, "Publish", 2)
}

func TestSales_OpenSale_ExplicitNumber(t *testing.T) {
	f := newFixture(t)
	f.mustCustomer(t, retailInput("20111222"))

	v, err := f.svc.Sales.OpenSale(context.Background(), OpenSaleInput{Number: "V-0100", CustomerNationalID: "20111222"})
	require.NoError(t, err)
	assert.Equal(t, "V-0100", v.Number)

	_, err = f.svc.Sales.OpenSale(context.Background(), OpenSaleInput{Number: "V-0100", CustomerNationalID: "20111222"})
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))

	_, err = f.svc.Sales.OpenSale(context.Background(), OpenSaleInput{Number: "0100", CustomerNationalID: "20111222"})
	appErr := requireAppError(t, err, "VALIDATION_ERROR")
	assert.Contains(t, appErr.Fields, "number")
}

func TestSales_OpenSale_UnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Sales.OpenSale(context.Background(), OpenSaleInput{CustomerNationalID: "9999999"})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "customer 9999999 not found")
}

func TestSales_OpenSale_NumberCheckedBeforeCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Sales.OpenSale(context.Background(), OpenSaleInput{Number: "X-1", CustomerNationalID: "9999999"})
	appErr := requireAppError(t, err, "VALIDATION_ERROR")
	assert.Equal(t, map[string]string{"number": "must match the format V-XXXX"}, appErr.Fields)
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestSales_OpenSale_PublishFailureIsLoggedOnly(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, event.TopicSaleOpened, mock.Anything).Return(errors.New("broker down"))
	f := newFixtureWithPublisher(t, pub)
	f.mustCustomer(t, retailInput("20111222"))

	v, err := f.svc.Sales.OpenSale(context.Background(), OpenSaleInput{CustomerNationalID: "20111222"})
	require.NoError(t, err)
	assert.Equal(t, "V-0001", v.Number)
	pub.AssertExpectations(t)
}

func TestSales_AddItem(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-001", 100, 10))
	f.mustCustomer(t, retailInput("20111222"))
	sale := f.mustSale(t, "20111222")

	v := f.mustAdd(t, sale.Number, "LAT-001", 3)

	require.Len(t, v.Lines, 1)
	assert.Equal(t, 3, v.Lines[0].Quantity)
	assertDecimal(t, "300", v.Lines[0].Subtotal)
	assertDecimal(t, "15", v.Lines[0].Discount)
	require.NotNil(t, v.Totals)
	assertDecimal(t, "285", v.Totals.AfterProductDiscounts)
}

func TestSales_AddItem_Errors(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-001", 100, 10))
	f.mustCustomer(t, retailInput("20111222"))
	sale := f.mustSale(t, "20111222")
	ctx := context.Background()

	_, err := f.svc.Sales.AddItem(ctx, "V-9999", AddItemInput{Code: "LAT-001", Quantity: 1})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = f.svc.Sales.AddItem(ctx, sale.Number, AddItemInput{Code: "NOPE-1", Quantity: 1})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "catalog item NOPE-1 not found")

	_, err = f.svc.Sales.AddItem(ctx, sale.Number, AddItemInput{Code: "LAT-001", Quantity: 0})
	appErr := requireAppError(t, err, "VALIDATION_ERROR")
	assert.Contains(t, appErr.Fields, "quantity")

	// Quantity above stock is accepted until confirm.
	_, err = f.svc.Sales.AddItem(ctx, sale.Number, AddItemInput{Code: "LAT-001", Quantity: 50})
	assert.NoError(t, err)
}

func TestSales_ConfirmSale(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-001", 100, 10))
	f.mustItem(t, toolInput("ROD-001", 200, 10))
	f.mustCustomer(t, wholesaleInput("30123456", 1200))
	sale := f.mustSale(t, "30123456")
	f.mustAdd(t, sale.Number, "LAT-001", 3)
	f.mustAdd(t, sale.Number, "ROD-001", 6)
	confirmed := testutil.ToFloat64(salesConfirmed.WithLabelValues("wholesale"))

	v, err := f.svc.Sales.ConfirmSale(context.Background(), sale.Number)
	require.NoError(t, err)

	assert.Equal(t, domain.SaleStatusConfirmed, v.Status)
	require.NotNil(t, v.Totals)
	assertDecimal(t, "1500", v.Totals.Subtotal)
	assertDecimal(t, "135", v.Totals.ProductDiscount)
	assertDecimal(t, "1365", v.Totals.AfterProductDiscounts)
	assertDecimal(t, "177.45", v.Totals.CustomerDiscount)
	assertDecimal(t, "1187.55", v.Totals.Total)
	assert.Equal(t, confirmed+1, testutil.ToFloat64(salesConfirmed.WithLabelValues("wholesale")))

	paint, err := f.svc.Catalog.GetItem(context.Background(), "LAT-001")
	require.NoError(t, err)
	assert.Equal(t, 7, paint.Stock)
	tool, err := f.svc.Catalog.GetItem(context.Background(), "ROD-001")
	require.NoError(t, err)
	assert.Equal(t, 4, tool.Stock)

	f.publisher.AssertCalled(t, "Publish", mock.Anything, event.TopicSaleConfirmed, mock.Anything)
}

func TestSales_ConfirmSale_InsufficientStockIsAtomic(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-001", 100, 10))
	f.mustItem(t, toolInput("ROD-001", 20, 2))
	f.mustCustomer(t, retailInput("20111222"))
	sale := f.mustSale(t, "20111222")
	f.mustAdd(t, sale.Number, "LAT-001", 4)
	f.mustAdd(t, sale.Number, "ROD-001", 3)
	failures := testutil.ToFloat64(saleConfirmFailures.WithLabelValues("insufficient_stock"))

	_, err := f.svc.Sales.ConfirmSale(context.Background(), sale.Number)

	requireAppError(t, err, "INSUFFICIENT_STOCK")
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 409, apperrors.HTTPStatus(err))
	assert.Equal(t, failures+1, testutil.ToFloat64(saleConfirmFailures.WithLabelValues("insufficient_stock")))

	paint, err := f.svc.Catalog.GetItem(context.Background(), "LAT-001")
	require.NoError(t, err)
	assert.Equal(t, 10, paint.Stock)

	v, err := f.svc.Sales.GetSale(context.Background(), sale.Number)
	require.NoError(t, err)
	assert.Equal(t, domain.SaleStatusOpen, v.Status)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, event.TopicSaleConfirmed, mock.Anything)
}

func TestSales_ConfirmSale_Empty(t *testing.T) {
	f := newFixture(t)
	f.mustCustomer(t, retailInput("20111222"))
	sale := f.mustSale(t, "20111222")

	_, err := f.svc.Sales.ConfirmSale(context.Background(), sale.Number)

	requireAppError(t, err, "EMPTY_SALE")
	assert.Equal(t, 422, apperrors.HTTPStatus(err))
}

func TestSales_ConfirmSale_Twice(t *testing.T) {
	f := newFixture(t)
	f.mustItem(t, paintInput("LAT-001", 100, 10))
	f.mustCustomer(t, retailInput("20111222"))
	sale := f.mustSale(t, "20111222")
	f.mustAdd(t, sale.Number, "LAT-001", 1)
	ctx := context.Background()

	_, err := f.svc.Sales.ConfirmSale(ctx, sale.Number)
	require.NoError(t, err)

	_, err = f.svc.Sales.ConfirmSale(ctx, sale.Number)
	requireAppError(t, err, "SALE_ALREADY_CONFIRMED")

	_, err = f.svc.Sales.AddItem(ctx, sale.Number, AddItemInput{Code: "LAT-001", Quantity: 1})
	requireAppError(t, err, "SALE_ALREADY_CONFIRMED")

	paint, err := f.svc.Catalog.GetItem(ctx, "LAT-001")
	require.NoError(t, err)
	assert.Equal(t, 9, paint.Stock)
}

func TestSales_ConfirmSale_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Sales.ConfirmSale(context.Background(), "V-0404")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
