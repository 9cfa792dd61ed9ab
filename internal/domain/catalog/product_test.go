package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/retailbill/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct(" Shop@Example.com ", "  Pen ", 10, decimal.NewFromInt(5))
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "shop@example.com", product.BusinessEmail)
		assert.Equal(t, "Pen", product.Name)
		assert.Equal(t, int64(10), product.Quantity)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(5)))
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
		assert.False(t, product.IsOutOfStock())
	})

	t.Run("allows zero stock", func(t *testing.T) {
		product, err := NewProduct("", "Pen", 0, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, product.IsOutOfStock())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("shop@example.com", "   ", 1, decimal.Zero)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewProduct("shop@example.com", strings.Repeat("a", 201), 1, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 200 characters")
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := NewProduct("shop@example.com", "Pen", -1, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity cannot be negative")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("shop@example.com", "Pen", 1, decimal.NewFromInt(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})
}

func TestProduct_Mutators(t *testing.T) {
	product, err := NewProduct("shop@example.com", "Pen", 10, decimal.NewFromInt(5))
	require.NoError(t, err)

	require.NoError(t, product.Rename("Blue Pen"))
	assert.Equal(t, "Blue Pen", product.Name)
	assert.Equal(t, 2, product.GetVersion())

	require.NoError(t, product.SetQuantity(0))
	assert.True(t, product.IsOutOfStock())

	require.NoError(t, product.SetPrice(decimal.RequireFromString("7.25")))
	assert.Equal(t, "7.25", product.Price.String())

	assert.Error(t, product.Rename(""))
	assert.Error(t, product.SetQuantity(-3))
	assert.Error(t, product.SetPrice(decimal.NewFromInt(-2)))
	assert.Equal(t, 4, product.GetVersion())
}

func TestClampedDecrement(t *testing.T) {
	tests := []struct {
		name          string
		current, qty  int64
		wantRemaining int64
		wantClamped   bool
	}{
		{"partial sale", 10, 3, 7, false},
		{"exact sale", 10, 10, 0, false},
		{"oversell clamps to zero", 10, 15, 0, true},
		{"already empty", 0, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, clamped := ClampedDecrement(tt.current, tt.qty)
			assert.Equal(t, tt.wantRemaining, remaining)
			assert.Equal(t, tt.wantClamped, clamped)
			assert.GreaterOrEqual(t, remaining, int64(0))
		})
	}
}
