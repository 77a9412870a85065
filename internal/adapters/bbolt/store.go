// Package bbolt implements the ports.Store interface using bbolt (embedded
// B+ tree). Generated IDL documents live in a single bucket keyed by source
// file path, each entry carrying the source hash that produced it. Writes are
// transactional — a crash mid-write cannot corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/hoffmabc/arch-idl/internal/ports"
)

var bucketIdl = []byte("idl")

// Store implements ports.Store backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveIdl persists an extraction result, overwriting any prior entry for the
// same source path.
func (s *Store) SaveIdl(entry *ports.CachedIdl) error {
	if entry == nil || entry.Path == "" {
		return fmt.Errorf("bbolt: nil or unkeyed cache entry")
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("bbolt: marshal entry: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketIdl)
		if err != nil {
			return err
		}
		return b.Put([]byte(entry.Path), data)
	})
}

// LoadIdl retrieves the cached result for a source path.
// Returns nil, nil if no entry exists.
func (s *Store) LoadIdl(path string) (*ports.CachedIdl, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketIdl)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(path)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var entry ports.CachedIdl
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("bbolt: unmarshal entry %q: %w", path, err)
	}
	return &entry, nil
}

// List returns all cached entries in key order.
func (s *Store) List() ([]*ports.CachedIdl, error) {
	var out []*ports.CachedIdl
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketIdl)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var entry ports.CachedIdl
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("bbolt: unmarshal entry %q: %w", string(k), err)
			}
			out = append(out, &entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Wipe removes every cached entry. Idempotent: wiping an empty store is not
// an error.
func (s *Store) Wipe() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketIdl) == nil {
			return nil
		}
		return tx.DeleteBucket(bucketIdl)
	})
}
