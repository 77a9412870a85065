package ports

import "github.com/hoffmabc/arch-idl/internal/domain/idl"

// CachedIdl is one persisted extraction result. SourceHash is the hex SHA-256
// of the source text the document was generated from; a matching hash means
// regeneration would produce a byte-identical document (extraction is
// deterministic), so the cached copy can be served instead.
type CachedIdl struct {
	Path        string        `json:"path"`
	SourceHash  string        `json:"source_hash"`
	GeneratedAt int64         `json:"generated_at"` // unix seconds
	Document    *idl.Document `json:"document"`
}

// Store persists generated IDL documents keyed by source file path.
// The backing store (bbolt) is transactional: a crash mid-write cannot
// corrupt previously committed entries.
type Store interface {
	// SaveIdl persists an extraction result, overwriting any prior entry
	// for the same path.
	SaveIdl(entry *CachedIdl) error

	// LoadIdl retrieves the cached result for a source path.
	// Returns nil, nil if no entry exists.
	LoadIdl(path string) (*CachedIdl, error)

	// List returns all cached entries in key order.
	List() ([]*CachedIdl, error)

	// Wipe removes every cached entry. Idempotent.
	Wipe() error

	// Close releases the underlying database.
	Close() error
}
