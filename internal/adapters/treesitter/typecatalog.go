package treesitter

import (
	"fmt"

	"github.com/hoffmabc/arch-idl/internal/domain/idl"
)

// extractTypes emits the full type catalog: every struct and enum in the
// tree, attributes ignored. The catalog overlaps with accounts and
// instruction-arg structs — it is a superset. Deduplication by name is
// first-wins across the combined struct+enum stream in source order.
func extractTypes(m *Matcher, source []byte, defs []TypeDefMatch) []idl.TypeDef {
	out := []idl.TypeDef{}
	seen := map[string]bool{}
	for _, def := range defs {
		switch {
		case def.Struct != nil:
			s := def.Struct
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			out = append(out, idl.TypeDef{
				Name: s.Name,
				Type: idl.TypeDefBody{Kind: "struct", Fields: structFields(m, s, source)},
			})
		case def.Enum != nil:
			e := def.Enum
			if seen[e.Name] {
				continue
			}
			seen[e.Name] = true
			out = append(out, idl.TypeDef{
				Name: e.Name,
				Type: idl.TypeDefBody{Kind: "enum", Variants: enumVariants(m, e, source)},
			})
		}
	}
	return out
}

// structFields converts a struct's fields with full type normalization, so
// Vec<T> is unwrapped here unlike in account layouts.
func structFields(m *Matcher, s *StructMatch, source []byte) []idl.Field {
	fields := []idl.Field{}
	for _, f := range m.Fields(s.FieldList, source) {
		fields = append(fields, idl.Field{
			Name: idl.LowerFirst(f.Name),
			Type: normalizeType(f.TypeNode, source, NormalizeFull),
		})
	}
	return fields
}

// enumVariants converts each variant by shape: brace-delimited lists become
// named fields, parenthesized lists synthesize field0..fieldN in declaration
// order, and variants with no associated data stay unit (nil fields).
func enumVariants(m *Matcher, e *EnumMatch, source []byte) []idl.EnumVariant {
	variants := []idl.EnumVariant{}
	for _, v := range m.Variants(e.VariantList, source) {
		variant := idl.EnumVariant{Name: v.Name}
		switch {
		case v.NamedFields != nil:
			fields := []idl.Field{}
			for _, f := range m.Fields(v.NamedFields, source) {
				fields = append(fields, idl.Field{
					Name: idl.LowerFirst(f.Name),
					Type: normalizeType(f.TypeNode, source, NormalizeFull),
				})
			}
			variant.Fields = fields
		case v.TupleFields != nil:
			fields := []idl.Field{}
			for i, tn := range m.TupleElements(v.TupleFields) {
				fields = append(fields, idl.Field{
					Name: fmt.Sprintf("field%d", i),
					Type: normalizeType(tn, source, NormalizeFull),
				})
			}
			variant.Fields = fields
		}
		variants = append(variants, variant)
	}
	return variants
}
