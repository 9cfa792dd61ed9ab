package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductModel_RoundTrip(t *testing.T) {
	p, err := catalog.NewProduct("shop@example.com", "Pen", 10, decimal.NewFromInt(5))
	require.NoError(t, err)

	m := ProductModelFromDomain(p)
	assert.Equal(t, p.ID, m.ID)
	assert.Equal(t, 1, m.Version)

	back := m.ToDomain()
	assert.Equal(t, p.ID, back.ID)
	assert.Equal(t, p.Name, back.Name)
	assert.Equal(t, p.Quantity, back.Quantity)
	assert.Equal(t, p.BusinessEmail, back.BusinessEmail)
	assert.True(t, p.Price.Equal(back.Price))
}

func TestBillModelFromDomain(t *testing.T) {
	bill, err := billing.NewBill("shop@example.com", billing.Customer{Name: "Asha"}, "2024-03-01", []billing.LineInput{
		{ProductName: "Pen", Price: decimal.NewFromInt(5), Quantity: 3},
		{ProductName: "Ghost", Price: decimal.NewFromInt(1), Quantity: 1},
	}, decimal.Zero)
	require.NoError(t, err)
	penID := uuid.New()
	bill.LinkProducts(map[string]uuid.UUID{"Pen": penID})

	m := BillModelFromDomain(bill)
	require.Len(t, m.Lines, 2)
	assert.Equal(t, 1, m.Lines[0].LineNo)
	assert.Equal(t, 2, m.Lines[1].LineNo)
	assert.Equal(t, bill.ID, m.Lines[1].BillID)
	assert.Equal(t, &penID, m.Lines[0].ProductID)
	assert.Nil(t, m.Lines[1].ProductID)
	assert.Equal(t, "Asha", m.CustomerName)

	back := m.ToDomain()
	assert.Equal(t, bill.ID, back.ID)
	assert.Equal(t, bill.Customer, back.Customer)
	require.Len(t, back.Lines, 2)
	assert.Equal(t, "shop@example.com", back.Lines[1].BusinessEmail)
	assert.True(t, back.Total.Equal(decimal.NewFromInt(16)))
}
