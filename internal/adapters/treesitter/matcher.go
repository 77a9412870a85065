package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Matcher evaluates the fixed set of structural queries the extractors need.
// It is built once and shared across Generate calls; every method is a pure
// function of (node, source) and walks the tree depth-first, left-to-right,
// so identical source always yields identical match order.
//
// Captures are typed struct fields rather than name-keyed lookups: a missing
// capture is a nil field the compiler forces callers to consider.
type Matcher struct {
	typeNodeKinds map[string]bool
}

// NewMatcher compiles the query set.
func NewMatcher() *Matcher {
	return &Matcher{
		// Node kinds the extractors accept as a field's type. Anything else
		// (references, lifetimes, function pointers) has no IDL representation
		// and the field carrying it is dropped.
		typeNodeKinds: map[string]bool{
			"primitive_type":         true,
			"type_identifier":        true,
			"scoped_type_identifier": true,
			"generic_type":           true,
			"tuple_type":             true,
			"array_type":             true,
		},
	}
}

// FunctionMatch captures one function_item: its name and body block.
type FunctionMatch struct {
	Name string
	Node *tree_sitter.Node
	Body *tree_sitter.Node // nil for bodyless declarations
}

// ModuleMatch captures one mod_item.
type ModuleMatch struct {
	Name string
	Node *tree_sitter.Node
}

// StructMatch captures one struct_item together with the attribute text of
// any #[...] items immediately preceding it.
type StructMatch struct {
	Name      string
	Node      *tree_sitter.Node
	FieldList *tree_sitter.Node // field_declaration_list, nil for unit/tuple structs
	AttrText  string            // concatenated preceding attribute_item text
}

// EnumMatch captures one enum_item and its variant list.
type EnumMatch struct {
	Name        string
	Node        *tree_sitter.Node
	VariantList *tree_sitter.Node // enum_variant_list, nil for empty enums
	AttrText    string
}

// TypeDefMatch is one entry in the combined struct+enum stream, in source
// order. Exactly one of Struct and Enum is set.
type TypeDefMatch struct {
	Struct *StructMatch
	Enum   *EnumMatch
}

// VariantMatch captures one enum variant and whichever field list shape it
// carries. Both lists nil means a unit variant.
type VariantMatch struct {
	Name        string
	NamedFields *tree_sitter.Node // field_declaration_list ({ name: T })
	TupleFields *tree_sitter.Node // ordered_field_declaration_list ((T, U))
}

// FieldMatch captures one struct field: its declared name and type node.
type FieldMatch struct {
	Name     string
	TypeNode *tree_sitter.Node
}

// MacroMatch captures one macro invocation as raw text.
type MacroMatch struct {
	Node *tree_sitter.Node
	Text string
}

// LiteralMatch captures one integer literal as raw text.
type LiteralMatch struct {
	Node *tree_sitter.Node
	Text string
}

// Functions returns every function_item in the tree in source order.
func (m *Matcher) Functions(root *tree_sitter.Node, source []byte) []FunctionMatch {
	var out []FunctionMatch
	walk(root, func(n *tree_sitter.Node) {
		if n.Kind() != "function_item" {
			return
		}
		name := ""
		if id := childByKind(n, "identifier"); id != nil {
			name = nodeText(id, source)
		}
		out = append(out, FunctionMatch{
			Name: name,
			Node: n,
			Body: childByKind(n, "block"),
		})
	})
	return out
}

// Modules returns every mod_item in the tree in source order.
func (m *Matcher) Modules(root *tree_sitter.Node, source []byte) []ModuleMatch {
	var out []ModuleMatch
	walk(root, func(n *tree_sitter.Node) {
		if n.Kind() != "mod_item" {
			return
		}
		name := ""
		if id := childByKind(n, "identifier"); id != nil {
			name = nodeText(id, source)
		}
		out = append(out, ModuleMatch{Name: name, Node: n})
	})
	return out
}

// TypeDefs returns every struct and enum definition in the tree, interleaved
// in source order, each with the attribute text of the #[...] items directly
// above it. The stream carries attribute text without interpreting it —
// filtering (e.g. for
// Borsh derives) is the caller's concern.
func (m *Matcher) TypeDefs(root *tree_sitter.Node, source []byte) []TypeDefMatch {
	var out []TypeDefMatch
	m.collectTypeDefs(root, source, &out)
	return out
}

// collectTypeDefs walks one nesting level at a time so attribute_item
// siblings can be associated with the item they annotate. Attributes bind to
// the next non-comment sibling; anything else clears the pending run.
func (m *Matcher) collectTypeDefs(n *tree_sitter.Node, source []byte, out *[]TypeDefMatch) {
	attrText := ""
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "attribute_item":
			attrText += nodeText(child, source)
			continue
		case "line_comment", "block_comment":
			continue
		case "struct_item":
			name := ""
			if id := childByKind(child, "type_identifier"); id != nil {
				name = nodeText(id, source)
			}
			*out = append(*out, TypeDefMatch{Struct: &StructMatch{
				Name:      name,
				Node:      child,
				FieldList: childByKind(child, "field_declaration_list"),
				AttrText:  attrText,
			}})
		case "enum_item":
			name := ""
			if id := childByKind(child, "type_identifier"); id != nil {
				name = nodeText(id, source)
			}
			*out = append(*out, TypeDefMatch{Enum: &EnumMatch{
				Name:        name,
				Node:        child,
				VariantList: childByKind(child, "enum_variant_list"),
				AttrText:    attrText,
			}})
		default:
			m.collectTypeDefs(child, source, out)
		}
		attrText = ""
	}
}

// Fields returns the declared fields of a field_declaration_list in source
// order. Fields whose type node is not in the recognized set are dropped.
func (m *Matcher) Fields(fieldList *tree_sitter.Node, source []byte) []FieldMatch {
	if fieldList == nil {
		return nil
	}
	var out []FieldMatch
	for i := uint(0); i < uint(fieldList.ChildCount()); i++ {
		decl := fieldList.Child(i)
		if decl.Kind() != "field_declaration" {
			continue
		}
		nameNode := childByKind(decl, "field_identifier")
		if nameNode == nil {
			continue
		}
		typeNode := m.firstTypeNode(decl)
		if typeNode == nil {
			continue // exotic type syntax, silently dropped
		}
		out = append(out, FieldMatch{Name: nodeText(nameNode, source), TypeNode: typeNode})
	}
	return out
}

// Variants returns the variants of an enum_variant_list in source order.
func (m *Matcher) Variants(variantList *tree_sitter.Node, source []byte) []VariantMatch {
	if variantList == nil {
		return nil
	}
	var out []VariantMatch
	for i := uint(0); i < uint(variantList.ChildCount()); i++ {
		v := variantList.Child(i)
		if v.Kind() != "enum_variant" {
			continue
		}
		name := ""
		if id := childByKind(v, "identifier"); id != nil {
			name = nodeText(id, source)
		}
		out = append(out, VariantMatch{
			Name:        name,
			NamedFields: childByKind(v, "field_declaration_list"),
			TupleFields: childByKind(v, "ordered_field_declaration_list"),
		})
	}
	return out
}

// TupleElements returns the type nodes of an ordered_field_declaration_list
// in declaration order.
func (m *Matcher) TupleElements(tupleFields *tree_sitter.Node) []*tree_sitter.Node {
	if tupleFields == nil {
		return nil
	}
	var out []*tree_sitter.Node
	for i := uint(0); i < uint(tupleFields.ChildCount()); i++ {
		c := tupleFields.Child(i)
		if m.typeNodeKinds[c.Kind()] {
			out = append(out, c)
		}
	}
	return out
}

// Macros returns every macro_invocation under node in source order.
func (m *Matcher) Macros(node *tree_sitter.Node, source []byte) []MacroMatch {
	var out []MacroMatch
	walk(node, func(n *tree_sitter.Node) {
		if n.Kind() != "macro_invocation" {
			return
		}
		out = append(out, MacroMatch{Node: n, Text: nodeText(n, source)})
	})
	return out
}

// IntegerLiterals returns every integer_literal in the tree in source order.
func (m *Matcher) IntegerLiterals(root *tree_sitter.Node, source []byte) []LiteralMatch {
	var out []LiteralMatch
	walk(root, func(n *tree_sitter.Node) {
		if n.Kind() != "integer_literal" {
			return
		}
		out = append(out, LiteralMatch{Node: n, Text: nodeText(n, source)})
	})
	return out
}

// firstTypeNode finds the first recognized type node among a declaration's
// children.
func (m *Matcher) firstTypeNode(decl *tree_sitter.Node) *tree_sitter.Node {
	for i := uint(0); i < uint(decl.ChildCount()); i++ {
		c := decl.Child(i)
		if m.typeNodeKinds[c.Kind()] {
			return c
		}
	}
	return nil
}

// walk visits node and all descendants depth-first, left-to-right.
func walk(n *tree_sitter.Node, visit func(*tree_sitter.Node)) {
	visit(n)
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		walk(n.Child(i), visit)
	}
}

// childByKind finds the first child with the given kind.
func childByKind(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// nodeText returns the source text for a node.
func nodeText(n *tree_sitter.Node, source []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if int(start) >= len(source) || int(end) > len(source) {
		return ""
	}
	return string(source[start:end])
}
