package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/retailbill/backend/internal/domain/inventory"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/retailbill/backend/internal/infrastructure/cache"
	"github.com/retailbill/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

// MockBillRepository is a mock implementation of billing.BillRepository
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Bill, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Bill), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, businessEmail, name string) (*catalog.Product, error) {
	args := m.Called(ctx, businessEmail, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByNames(ctx context.Context, businessEmail string, names []string) (map[string]*catalog.Product, error) {
	args := m.Called(ctx, businessEmail, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsByName(ctx context.Context, businessEmail, name string) (bool, error) {
	args := m.Called(ctx, businessEmail, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) SaveWithLock(ctx context.Context, product *catalog.Product, expectedVersion int) error {
	return m.Called(ctx, product, expectedVersion).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockInventoryApplier is a mock implementation of InventoryApplier
type MockInventoryApplier struct {
	mock.Mock
}

func (m *MockInventoryApplier) ApplyBillToInventory(ctx context.Context, bill *billing.Bill) *inventory.ApplyResult {
	args := m.Called(ctx, bill)
	if fn, ok := args.Get(0).(func(context.Context, *billing.Bill) *inventory.ApplyResult); ok {
		return fn(ctx, bill)
	}
	return args.Get(0).(*inventory.ApplyResult)
}

type fixture struct {
	bills    *MockBillRepository
	products *MockProductRepository
	applier  *MockInventoryApplier
	store    *cache.MemoryIdempotencyStore
	svc      *BillingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	metrics, err := telemetry.NewBillingMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	f := &fixture{
		bills:    new(MockBillRepository),
		products: new(MockProductRepository),
		applier:  new(MockInventoryApplier),
		store:    cache.NewMemoryIdempotencyStore(),
	}
	t.Cleanup(func() { _ = f.store.Close() })

	f.svc = NewBillingService(f.bills, f.products, f.applier,
		WithIdempotency(f.store, time.Hour),
		WithMetrics(metrics),
	)
	return f
}

func saleRequest() RecordSaleRequest {
	return RecordSaleRequest{
		BusinessEmail: "Shop@Example.com",
		Customer:      CustomerRequest{Name: "Ann", Mobile: "555"},
		BillDate:      "01/05/2024",
		Order: []OrderLineRequest{
			{ProductName: "Soap", Price: decimal.NewFromInt(2), Quantity: 3, TotalPrice: decimal.NewFromInt(6)},
			{ProductName: "Unknown", Price: decimal.NewFromInt(1), Quantity: 1},
		},
		Total: decimal.NewFromInt(7),
	}
}

func appliedResult(bill *billing.Bill) *inventory.ApplyResult {
	r := inventory.NewApplyResult(bill.ID, len(bill.Lines))
	for i, l := range bill.Lines {
		r.Add(inventory.LineOutcome{LineIndex: i, ProductName: l.ProductName, Status: inventory.LineApplied})
	}
	return r
}

func TestBillingService_RecordSale(t *testing.T) {
	ctx := context.Background()

	t.Run("stores bill, links products and applies inventory", func(t *testing.T) {
		f := newFixture(t)
		soap, err := catalog.NewProduct("shop@example.com", "Soap", 10, decimal.NewFromInt(2))
		require.NoError(t, err)

		f.products.On("FindByNames", mock.Anything, "shop@example.com", []string{"Soap", "Unknown"}).
			Return(map[string]*catalog.Product{"Soap": soap}, nil)
		f.bills.On("Create", mock.Anything, mock.AnythingOfType("*billing.Bill")).Return(nil)
		f.applier.On("ApplyBillToInventory", mock.Anything, mock.AnythingOfType("*billing.Bill")).
			Return(func(_ context.Context, b *billing.Bill) *inventory.ApplyResult { return appliedResult(b) })

		result, err := f.svc.RecordSale(ctx, saleRequest(), "")

		require.NoError(t, err)
		assert.Equal(t, "shop@example.com", result.Bill.BusinessEmail)
		require.Len(t, result.Bill.Order, 2)
		require.NotNil(t, result.Bill.Order[0].ProductID)
		assert.Equal(t, soap.ID, *result.Bill.Order[0].ProductID)
		assert.Nil(t, result.Bill.Order[1].ProductID)
		assert.Equal(t, "shop@example.com", result.Bill.Order[1].BusinessEmail)
		assert.True(t, result.Bill.Total.Equal(decimal.NewFromInt(7)))
		assert.Equal(t, result.Bill.ID, result.Inventory.BillID)

		f.bills.AssertExpectations(t)
		f.applier.AssertExpectations(t)
	})

	t.Run("validation error touches nothing", func(t *testing.T) {
		f := newFixture(t)
		req := saleRequest()
		req.Order = nil

		_, err := f.svc.RecordSale(ctx, req, "key-1")

		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		f.products.AssertNotCalled(t, "FindByNames", mock.Anything, mock.Anything, mock.Anything)
		f.bills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.store.Len())
	})

	t.Run("storage failure skips inventory and releases key", func(t *testing.T) {
		f := newFixture(t)
		f.products.On("FindByNames", mock.Anything, mock.Anything, mock.Anything).
			Return(map[string]*catalog.Product{}, nil)
		f.bills.On("Create", mock.Anything, mock.Anything).
			Return(shared.NewStorageError("create bill", errors.New("disk full"))).Once()

		_, err := f.svc.RecordSale(ctx, saleRequest(), "key-2")

		assert.ErrorIs(t, err, shared.ErrStorage)
		f.applier.AssertNotCalled(t, "ApplyBillToInventory", mock.Anything, mock.Anything)

		seen, err := f.store.IsProcessed(ctx, "shop@example.com:key-2")
		require.NoError(t, err)
		assert.False(t, seen)
	})

	t.Run("catalog lookup failure aborts the sale", func(t *testing.T) {
		f := newFixture(t)
		f.products.On("FindByNames", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, shared.NewStorageError("find products", errors.New("timeout")))

		_, err := f.svc.RecordSale(ctx, saleRequest(), "")

		assert.ErrorIs(t, err, shared.ErrStorage)
		f.bills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repeated idempotency key is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.products.On("FindByNames", mock.Anything, mock.Anything, mock.Anything).
			Return(map[string]*catalog.Product{}, nil)
		f.bills.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.applier.On("ApplyBillToInventory", mock.Anything, mock.Anything).
			Return(func(_ context.Context, b *billing.Bill) *inventory.ApplyResult { return appliedResult(b) })

		_, err := f.svc.RecordSale(ctx, saleRequest(), "same")
		require.NoError(t, err)

		_, err = f.svc.RecordSale(ctx, saleRequest(), "same")
		assert.ErrorIs(t, err, shared.ErrDuplicateRequest)
		f.bills.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("keys are scoped per business", func(t *testing.T) {
		f := newFixture(t)
		f.products.On("FindByNames", mock.Anything, mock.Anything, mock.Anything).
			Return(map[string]*catalog.Product{}, nil)
		f.bills.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.applier.On("ApplyBillToInventory", mock.Anything, mock.Anything).
			Return(func(_ context.Context, b *billing.Bill) *inventory.ApplyResult { return appliedResult(b) })

		_, err := f.svc.RecordSale(ctx, saleRequest(), "k")
		require.NoError(t, err)

		other := saleRequest()
		other.BusinessEmail = "other@example.com"
		_, err = f.svc.RecordSale(ctx, other, "k")
		assert.NoError(t, err)
	})
}

func TestBillingService_ListBills(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	bill, err := billing.NewBill("shop@example.com", billing.Customer{}, "d", []billing.LineInput{
		{ProductName: "Soap", Price: decimal.NewFromInt(1), Quantity: 1},
	}, decimal.Zero)
	require.NoError(t, err)

	f.bills.On("FindAll", ctx, shared.Filter{BusinessEmail: "shop@example.com"}).Return([]billing.Bill{*bill}, nil)
	f.bills.On("FindAll", ctx, shared.Filter{}).Return([]billing.Bill{}, nil)

	scoped, err := f.svc.ListBills(ctx, " SHOP@example.com")
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, bill.ID, scoped[0].ID)

	all, err := f.svc.ListBills(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBillingService_GetBill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	bill, err := billing.NewBill("shop@example.com", billing.Customer{Name: "Ann"}, "d", []billing.LineInput{
		{ProductName: "Soap", Price: decimal.NewFromInt(2), Quantity: 3},
	}, decimal.Zero)
	require.NoError(t, err)
	missing := uuid.New()

	f.bills.On("FindByID", ctx, bill.ID).Return(bill, nil)
	f.bills.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

	got, err := f.svc.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, got.ID)
	require.Len(t, got.Order, 1)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(6)))

	_, err = f.svc.GetBill(ctx, missing)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
