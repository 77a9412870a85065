// Package app wires together the adapters and domain logic. It provides the
// use cases behind the CLI: generate an IDL for a file (with content-hash
// caching), and watch a directory for regeneration on save.
package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hoffmabc/arch-idl/internal/domain/idl"
	"github.com/hoffmabc/arch-idl/internal/ports"
)

// Service orchestrates generation, caching, and watching. The store and
// watcher are optional — a nil store disables caching, a nil watcher
// disables Watch.
type Service struct {
	gen     ports.Generator
	store   ports.Store
	watcher ports.Watcher
}

// NewService creates a service around the given generator.
func NewService(gen ports.Generator, store ports.Store, watcher ports.Watcher) *Service {
	return &Service{gen: gen, store: store, watcher: watcher}
}

// Result is the outcome of generating an IDL for one file.
type Result struct {
	Path      string
	Document  *idl.Document
	FromCache bool
}

// GenerateFile reads a Rust source file and produces its IDL document.
// When a store is configured and the cached entry's source hash matches the
// current content, the cached document is returned without re-extraction —
// generation is deterministic, so the documents are identical.
func (s *Service) GenerateFile(path string) (*Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	source, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	hash := hashSource(source)
	if s.store != nil {
		entry, err := s.store.LoadIdl(abs)
		if err == nil && entry != nil && entry.SourceHash == hash && entry.Document != nil {
			return &Result{Path: abs, Document: entry.Document, FromCache: true}, nil
		}
	}

	doc, err := s.gen.Generate(source)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		// Cache write failures don't fail generation; the document is already
		// in hand and the next run simply regenerates.
		_ = s.store.SaveIdl(&ports.CachedIdl{
			Path:        abs,
			SourceHash:  hash,
			GeneratedAt: time.Now().Unix(),
			Document:    doc,
		})
	}
	return &Result{Path: abs, Document: doc}, nil
}

// Watch monitors dir for .rs changes and regenerates on each save. report is
// called with every outcome, including generation errors — a broken save
// should be visible, not silent. Blocks until Stop is called on the watcher
// or the process exits.
func (s *Service) Watch(dir string, report func(path string, res *Result, err error)) error {
	if s.watcher == nil {
		return fmt.Errorf("no watcher configured")
	}
	return s.watcher.Watch(dir, func(path string) {
		res, err := s.GenerateFile(path)
		report(path, res, err)
	})
}

// Stop ends an active watch.
func (s *Service) Stop() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Stop()
}

// hashSource returns the hex SHA-256 of source text.
func hashSource(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}
