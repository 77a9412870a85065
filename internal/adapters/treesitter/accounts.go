package treesitter

import "github.com/hoffmabc/arch-idl/internal/domain/idl"

// extractAccounts converts every struct definition — regardless of
// attributes — into an account layout. Account fields use the flat
// primitive/named resolution, never Vec unwrapping. Duplicate struct names
// keep the first occurrence in source order.
func extractAccounts(m *Matcher, source []byte, defs []TypeDefMatch) []idl.AccountDef {
	out := []idl.AccountDef{}
	seen := map[string]bool{}
	for _, def := range defs {
		s := def.Struct
		if s == nil || seen[s.Name] {
			continue
		}
		seen[s.Name] = true

		fields := []idl.Field{}
		for _, f := range m.Fields(s.FieldList, source) {
			fields = append(fields, idl.Field{
				Name: idl.LowerFirst(f.Name),
				Type: normalizeType(f.TypeNode, source, NormalizeFlat),
			})
		}
		out = append(out, idl.AccountDef{
			Name: s.Name,
			Type: idl.StructShape{Kind: "struct", Fields: fields},
		})
	}
	return out
}
