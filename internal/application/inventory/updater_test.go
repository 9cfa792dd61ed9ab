package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/retailbill/backend/internal/domain/inventory"
	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStockWriter is a mock implementation of catalog.StockWriter
type MockStockWriter struct {
	mock.Mock
}

func (m *MockStockWriter) DecrementStockClamped(ctx context.Context, productID uuid.UUID, qty int64) (int64, error) {
	args := m.Called(ctx, productID, qty)
	return args.Get(0).(int64), args.Error(1)
}

func newBill(t *testing.T, lines ...billing.LineInput) *billing.Bill {
	t.Helper()
	bill, err := billing.NewBill("shop@example.com", billing.Customer{Name: "Ann"}, "2024-05-01", lines, decimal.Zero)
	require.NoError(t, err)
	return bill
}

func line(name string, qty int64) billing.LineInput {
	return billing.LineInput{ProductName: name, Price: decimal.NewFromInt(1), Quantity: qty}
}

func TestUpdater_ApplyBillToInventory(t *testing.T) {
	ctx := context.Background()
	soapID := uuid.New()
	teaID := uuid.New()
	jamID := uuid.New()

	stock := new(MockStockWriter)
	stock.On("DecrementStockClamped", mock.Anything, soapID, int64(2)).Return(int64(3), nil)
	stock.On("DecrementStockClamped", mock.Anything, teaID, int64(10)).Return(int64(0), nil)
	stock.On("DecrementStockClamped", mock.Anything, jamID, int64(1)).Return(int64(0), shared.ErrNotFound)

	bill := newBill(t, line("Soap", 2), line("Tea", 10), line("Ghost", 1), line("Jam", 1))
	bill.LinkProducts(map[string]uuid.UUID{"Soap": soapID, "Tea": teaID, "Jam": jamID})

	result := NewUpdater(stock).ApplyBillToInventory(ctx, bill)

	require.Len(t, result.Lines, 4)
	assert.Equal(t, bill.ID, result.BillID)

	assert.Equal(t, inventory.LineApplied, result.Lines[0].Status)
	assert.Equal(t, int64(3), result.Lines[0].Remaining)
	assert.False(t, result.Lines[0].OutOfStock)

	assert.Equal(t, inventory.LineApplied, result.Lines[1].Status)
	assert.True(t, result.Lines[1].OutOfStock)

	assert.Equal(t, inventory.LineSkipped, result.Lines[2].Status)
	assert.Equal(t, inventory.ReasonProductNotFound, result.Lines[2].Reason)
	assert.Nil(t, result.Lines[2].ProductID)

	assert.Equal(t, inventory.LineSkipped, result.Lines[3].Status)
	assert.Equal(t, inventory.ReasonProductDeleted, result.Lines[3].Reason)

	assert.Equal(t, 2, result.Applied())
	assert.Equal(t, 2, result.Skipped())
	assert.Equal(t, 0, result.Failed())
	assert.False(t, result.Complete())
	stock.AssertExpectations(t)
}

func TestUpdater_FailedLineDoesNotStopOthers(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	stock := new(MockStockWriter)
	stock.On("DecrementStockClamped", mock.Anything, a, int64(1)).
		Return(int64(0), shared.NewStorageError("decrement stock", errors.New("connection reset")))
	stock.On("DecrementStockClamped", mock.Anything, b, int64(1)).Return(int64(7), nil)

	bill := newBill(t, line("A", 1), line("B", 1))
	bill.LinkProducts(map[string]uuid.UUID{"A": a, "B": b})

	result := NewUpdater(stock).ApplyBillToInventory(ctx, bill)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, inventory.LineFailed, result.Lines[0].Status)
	assert.Contains(t, result.Lines[0].Reason, "decrement stock")
	assert.Equal(t, inventory.LineApplied, result.Lines[1].Status)
	assert.Equal(t, int64(7), result.Lines[1].Remaining)
	assert.Equal(t, 1, result.Failed())
}

func TestUpdater_DuplicateProductLinesAppliedInOrder(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	stock := new(MockStockWriter)
	stock.On("DecrementStockClamped", mock.Anything, id, int64(3)).Return(int64(2), nil).Once()
	stock.On("DecrementStockClamped", mock.Anything, id, int64(4)).Return(int64(0), nil).Once()

	bill := newBill(t, line("Soap", 3), line("Soap", 4))
	bill.LinkProducts(map[string]uuid.UUID{"Soap": id})

	result := NewUpdater(stock).ApplyBillToInventory(ctx, bill)

	assert.True(t, result.Complete())
	assert.Equal(t, int64(2), result.Lines[0].Remaining)
	assert.True(t, result.Lines[1].OutOfStock)
	stock.AssertExpectations(t)
}
