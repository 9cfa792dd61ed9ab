package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/billing"
	"github.com/retailbill/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// CustomerRequest holds buyer details as typed at the till. None are validated.
type CustomerRequest struct {
	Name   string `json:"name" binding:"max=200"`
	Mobile string `json:"mobile" binding:"max=50"`
	Email  string `json:"email" binding:"max=320"`
}

// OrderLineRequest is one line of a sale
type OrderLineRequest struct {
	ProductName string          `json:"productName" binding:"required,max=200"`
	Price       decimal.Decimal `json:"price" binding:"gte=0"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	TotalPrice  decimal.Decimal `json:"totalPrice" binding:"gte=0"`
}

// RecordSaleRequest is the body of a sale submission
type RecordSaleRequest struct {
	BusinessEmail string             `json:"businessEmail" binding:"required,email,max=320"`
	Customer      CustomerRequest    `json:"customer"`
	BillDate      string             `json:"billDate" binding:"max=64"`
	Order         []OrderLineRequest `json:"order" binding:"required,min=1,dive"`
	Total         decimal.Decimal    `json:"total" binding:"gte=0"`
}

func (r RecordSaleRequest) lineInputs() []billing.LineInput {
	lines := make([]billing.LineInput, len(r.Order))
	for i, l := range r.Order {
		lines[i] = billing.LineInput{
			ProductName: l.ProductName,
			Price:       l.Price,
			Quantity:    l.Quantity,
			TotalPrice:  l.TotalPrice,
		}
	}
	return lines
}

// CustomerResponse mirrors CustomerRequest
type CustomerResponse struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// OrderLineResponse is a stored bill line
type OrderLineResponse struct {
	ProductID     *uuid.UUID      `json:"productId,omitempty"`
	ProductName   string          `json:"productName"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int64           `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	BusinessEmail string          `json:"businessEmail"`
}

// BillResponse is a stored bill
type BillResponse struct {
	ID            uuid.UUID           `json:"id"`
	BusinessEmail string              `json:"businessEmail"`
	Customer      CustomerResponse    `json:"customer"`
	BillDate      string              `json:"billDate"`
	Order         []OrderLineResponse `json:"order"`
	Total         decimal.Decimal     `json:"total"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// RecordSaleResult is returned after a sale was stored
type RecordSaleResult struct {
	Bill      BillResponse           `json:"bill"`
	Inventory *inventory.ApplyResult `json:"inventory"`
}

// ToBillResponse converts a domain bill to its response form
func ToBillResponse(b *billing.Bill) BillResponse {
	lines := make([]OrderLineResponse, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = OrderLineResponse{
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			Price:         l.Price,
			Quantity:      l.Quantity,
			TotalPrice:    l.TotalPrice,
			BusinessEmail: l.BusinessEmail,
		}
	}
	return BillResponse{
		ID:            b.ID,
		BusinessEmail: b.BusinessEmail,
		Customer: CustomerResponse{
			Name:   b.Customer.Name,
			Mobile: b.Customer.Mobile,
			Email:  b.Customer.Email,
		},
		BillDate:  b.BillDate,
		Order:     lines,
		Total:     b.Total,
		CreatedAt: b.CreatedAt,
	}
}

// ToBillResponses converts a slice of bills
func ToBillResponses(bills []billing.Bill) []BillResponse {
	out := make([]BillResponse, len(bills))
	for i := range bills {
		out[i] = ToBillResponse(&bills[i])
	}
	return out
}
