package shared

import (
	"context"
	"time"
)

// DefaultIdempotencyTTL is how long a sale's Idempotency-Key is remembered
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers client request keys so a sale submitted twice
// is recorded once. Keys are opaque; callers scope them per business.
type IdempotencyStore interface {
	// MarkProcessed claims key for ttl. It returns false when the key is
	// already claimed, which means the request is a duplicate.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	IsProcessed(ctx context.Context, key string) (bool, error)

	// Release drops a claim so a failed request can be retried with the same key
	Release(ctx context.Context, key string) error

	Close() error
}
