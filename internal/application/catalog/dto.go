package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	BusinessEmail string          `json:"businessEmail" binding:"required,email,max=320"`
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Quantity      int64           `json:"quantity" binding:"min=0"`
	Price         decimal.Decimal `json:"price" binding:"gte=0"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Quantity *int64           `json:"quantity" binding:"omitempty,min=0"`
	Price    *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	BusinessEmail string          `json:"businessEmail"`
	Name          string          `json:"name"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	IsOutOfStock  bool            `json:"isOutOfStock"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Version       int             `json:"version"`
}

// ToProductResponse converts a domain product to its response form
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		BusinessEmail: p.BusinessEmail,
		Name:          p.Name,
		Quantity:      p.Quantity,
		Price:         p.Price,
		IsOutOfStock:  p.IsOutOfStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}
