// Package treesitter implements IDL extraction from Rust program source using
// the tree-sitter Rust grammar. It parses one translation unit into an
// immutable syntax tree and derives the program's externally observable
// contract: instructions, account layouts, custom types, and error codes.
//
// Extraction is heuristic, not semantic. Handlers are found by name, derive
// markers by substring, account flags by scanning assertion macros. The point
// is a typed view of a program without executing or type-checking it, so every
// extractor degrades to an empty result rather than failing.
package treesitter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	ts_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// ErrParse is the single opaque failure of IDL generation: the grammar could
// not parse the input at all. Partial syntax errors inside the tree are not
// this — extractors simply find no matches in malformed regions. Callers must
// distinguish this error from a successfully generated but empty document.
var ErrParse = errors.New("source cannot be parsed")

// RustParser turns Rust source text into a syntax tree. The grammar is loaded
// once and shared; each Parse call owns its own tree-sitter parser instance,
// so concurrent calls are safe.
type RustParser struct {
	lang *tree_sitter.Language
}

// NewRustParser creates a parser backed by the compiled-in Rust grammar.
func NewRustParser() *RustParser {
	return &RustParser{lang: tree_sitter.NewLanguage(ts_rust.Language())}
}

// NewRustParserFromLibrary creates a parser whose grammar is loaded from a
// shared library instead of the compiled-in binding. Used to try alternative
// grammar builds without recompiling.
func NewRustParserFromLibrary(soPath string) (*RustParser, error) {
	lang, err := LoadGrammar(soPath)
	if err != nil {
		return nil, err
	}
	return &RustParser{lang: lang}, nil
}

// ParseResult is an immutable parse tree plus the source it was built from.
// Nodes handed out by the matcher reference this tree; Close releases it.
type ParseResult struct {
	tree   *tree_sitter.Tree
	source []byte
}

// Parse builds a syntax tree from one Rust translation unit. It fails only
// when the input cannot be tokenized at all (invalid UTF-8) or the grammar
// rejects it catastrophically; recoverable syntax errors yield a usable tree.
func (p *RustParser) Parse(source []byte) (*ParseResult, error) {
	if !utf8.Valid(source) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrParse)
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(p.lang); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil || tree.RootNode() == nil {
		return nil, ErrParse
	}
	return &ParseResult{tree: tree, source: source}, nil
}

// Root returns the root node of the parse tree.
func (r *ParseResult) Root() *tree_sitter.Node {
	return r.tree.RootNode()
}

// Source returns the source text the tree was parsed from.
func (r *ParseResult) Source() []byte {
	return r.source
}

// Close releases the underlying tree. Nodes from this result are invalid
// afterwards.
func (r *ParseResult) Close() {
	r.tree.Close()
}
