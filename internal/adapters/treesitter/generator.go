package treesitter

import (
	"github.com/hoffmabc/arch-idl/internal/domain/idl"
)

// Generator assembles an IDL document from Rust source. It holds the parser
// and the compiled query set; both are immutable after construction, so one
// Generator serves concurrent Generate calls. Each call owns its own syntax
// tree for its duration and leaves no state behind.
type Generator struct {
	parser  *RustParser
	matcher *Matcher
}

// NewGenerator creates a generator backed by the compiled-in Rust grammar.
func NewGenerator() *Generator {
	return NewGeneratorWith(NewRustParser())
}

// NewGeneratorWith creates a generator using the given parser (e.g. one
// loaded from an alternative grammar library).
func NewGeneratorWith(parser *RustParser) *Generator {
	return &Generator{parser: parser, matcher: NewMatcher()}
}

// Generate derives the IDL for one Rust translation unit. The only failure is
// the parser's (ErrParse); once a tree exists, assembly always succeeds — the
// sub-extractors are total and return possibly-empty catalogs. An almost
// entirely empty document is a valid result, not an error.
func (g *Generator) Generate(source []byte) (*idl.Document, error) {
	res, err := g.parser.Parse(source)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	root := res.Root()
	defs := g.matcher.TypeDefs(root, source)

	return &idl.Document{
		Version:      idl.Version,
		Name:         resolveProgramName(g.matcher, root, source),
		Instructions: extractInstructions(g.matcher, root, source, defs),
		Accounts:     extractAccounts(g.matcher, source, defs),
		Types:        extractTypes(g.matcher, source, defs),
		Errors:       extractErrors(g.matcher, root, source),
	}, nil
}
