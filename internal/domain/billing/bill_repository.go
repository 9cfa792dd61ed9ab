package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailbill/backend/internal/domain/shared"
)

// BillRepository is the append-only bill ledger
type BillRepository interface {
	// Create persists a new bill together with its lines
	Create(ctx context.Context, bill *Bill) error

	// FindByID finds a bill by its ID, with lines
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)

	// FindAll returns bills newest first, scoped by filter.BusinessEmail when set
	FindAll(ctx context.Context, filter shared.Filter) ([]Bill, error)
}
