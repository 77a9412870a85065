package treesitter

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/hoffmabc/arch-idl/internal/domain/idl"
)

// NormalizeMode gates how much of the type grammar is decomposed: the type
// catalog and instruction args unwrap Vec<...>, account layouts do not.
type NormalizeMode int

const (
	// NormalizeFull unwraps Vec<...> into a vector shape. Other generic
	// containers (Option<T>, tuples) pass through as opaque named text.
	NormalizeFull NormalizeMode = iota

	// NormalizeFlat resolves everything to primitive or named text — the
	// narrower representation account layouts use.
	NormalizeFlat
)

// normalizeType converts a syntax-tree type node into a TypeShape.
//
// Full mode: a primitive token maps to Primitive; a node whose text contains
// "Vec<" maps to Vector over its first primitive/named type argument, falling
// back to Primitive("u8") when no such argument exists; everything else
// passes through as Named raw text.
func normalizeType(n *tree_sitter.Node, source []byte, mode NormalizeMode) idl.TypeShape {
	text := nodeText(n, source)
	if n.Kind() == "primitive_type" {
		return idl.Primitive(text)
	}
	if mode == NormalizeFull && strings.Contains(text, "Vec<") {
		if arg := firstTypeArgument(n); arg != nil {
			return idl.Vector(normalizeType(arg, source, mode))
		}
		return idl.Vector(idl.Primitive("u8"))
	}
	return idl.Named(text)
}

// firstTypeArgument returns the first primitive or named type among a generic
// type's arguments, or nil. Nested containers (Vec<Vec<u8>>, Vec<(u8, u8)>)
// are not extractable and trigger the caller's u8 fallback.
func firstTypeArgument(n *tree_sitter.Node) *tree_sitter.Node {
	args := childByKind(n, "type_arguments")
	if args == nil {
		return nil
	}
	for i := uint(0); i < uint(args.ChildCount()); i++ {
		c := args.Child(i)
		switch c.Kind() {
		case "primitive_type", "type_identifier", "scoped_type_identifier":
			return c
		}
	}
	return nil
}
