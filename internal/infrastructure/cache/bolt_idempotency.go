package cache

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/retailbill/backend/internal/domain/shared"
	bolt "go.etcd.io/bbolt"
)

var idempotencyBucket = []byte("idempotency_keys")

// BoltIdempotencyStore keeps idempotency keys in a local bbolt file, so a
// single instance remembers them across restarts without Redis.
// Each value is the key's expiry as big-endian unix nanoseconds.
type BoltIdempotencyStore struct {
	db  *bolt.DB
	now func() time.Time
}

// NewBoltIdempotencyStore opens (or creates) the store at path and drops
// keys that expired while the process was down.
func NewBoltIdempotencyStore(path string) (*BoltIdempotencyStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create idempotency dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open idempotency db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(idempotencyBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create idempotency bucket: %w", err)
	}

	s := &BoltIdempotencyStore{db: db, now: time.Now}
	if _, err := s.Purge(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *BoltIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	claimed := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(idempotencyBucket)
		now := s.now()
		if v := b.Get([]byte(key)); v != nil && now.Before(decodeExpiry(v)) {
			return nil
		}
		claimed = true
		return b.Put([]byte(key), encodeExpiry(now.Add(ttl)))
	})
	if err != nil {
		return false, fmt.Errorf("mark idempotency key: %w", err)
	}
	return claimed, nil
}

func (s *BoltIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	held := false
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(idempotencyBucket).Get([]byte(key)); v != nil {
			held = s.now().Before(decodeExpiry(v))
		}
		return nil
	})
	return held, err
}

func (s *BoltIdempotencyStore) Release(_ context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(idempotencyBucket).Delete([]byte(key))
	})
}

// Purge deletes expired keys and returns how many were removed
func (s *BoltIdempotencyStore) Purge() (int, error) {
	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(idempotencyBucket)
		now := s.now()
		var expired [][]byte
		if err := b.ForEach(func(k, v []byte) error {
			if !now.Before(decodeExpiry(v)) {
				expired = append(expired, append([]byte(nil), k...))
			}
			return nil
		}); err != nil {
			return err
		}
		for _, k := range expired {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(expired)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("purge idempotency keys: %w", err)
	}
	return removed, nil
}

func (s *BoltIdempotencyStore) Close() error {
	return s.db.Close()
}

func encodeExpiry(t time.Time) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))
	return buf
}

func decodeExpiry(v []byte) time.Time {
	if len(v) != 8 {
		return time.Time{}
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(v)))
}

var _ shared.IdempotencyStore = (*BoltIdempotencyStore)(nil)
