package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByName finds a product by exact name within a business
	FindByName(ctx context.Context, businessEmail, name string) (*Product, error)

	// FindByNames resolves several names at once within a business.
	// Names without a match are absent from the returned map.
	FindByNames(ctx context.Context, businessEmail string, names []string) (map[string]*Product, error)

	// FindAll finds all products matching the filter, ordered by name
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// ExistsByName checks if a business already has a product with the name
	ExistsByName(ctx context.Context, businessEmail, name string) (bool, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveWithLock writes the editable fields of a product loaded at
	// expectedVersion. It returns shared.ErrConcurrency when the stored row
	// has moved past that version, as it does after every sale.
	SaveWithLock(ctx context.Context, product *Product, expectedVersion int) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error
}

// StockWriter applies stock changes caused by sales
type StockWriter interface {
	// DecrementStockClamped subtracts qty from the product's stock as one atomic
	// write, flooring the stored value at zero. It returns the stock left, or
	// shared.ErrNotFound when the product no longer exists.
	DecrementStockClamped(ctx context.Context, productID uuid.UUID, qty int64) (int64, error)
}
