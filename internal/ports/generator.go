// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic and the
// app layer depend only on these interfaces, never on concrete implementations.
package ports

import "github.com/hoffmabc/arch-idl/internal/domain/idl"

// Generator derives an IDL document from a single Rust translation unit.
// The concrete implementation (tree-sitter) lives in internal/adapters/treesitter.
//
// Generate is a pure function of the source text: deterministic, stateless
// across calls, safe for concurrent use. It fails only when the source cannot
// be parsed at all; heuristic extractors that find nothing degrade to empty
// catalogs, so a valid result may be almost entirely empty. Callers must treat
// "parse failed" and "parsed but empty" as different outcomes.
type Generator interface {
	Generate(source []byte) (*idl.Document, error)
}
