package treesitter

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/hoffmabc/arch-idl/internal/domain/idl"
)

// Derive markers: a struct is an instruction-argument struct when its
// attribute text mentions both. This is a textual substring check over the
// attribute token tree, not macro expansion.
const (
	borshSerialize   = "BorshSerialize"
	borshDeserialize = "BorshDeserialize"
)

// extractInstructions produces one instruction per Borsh-derive-tagged struct.
// Never raises; a source without an entrypoint function yields an empty list.
func extractInstructions(m *Matcher, root *tree_sitter.Node, source []byte, defs []TypeDefMatch) []idl.Instruction {
	out := []idl.Instruction{}

	entry := findFunction(m, root, source, "entrypoint")
	if entry == nil {
		return out
	}
	account := deriveAccountMeta(m, entry.Body, source)

	for _, def := range defs {
		s := def.Struct
		if s == nil || !hasBorshDerives(s.AttrText) {
			continue
		}
		args := []idl.Field{}
		for _, f := range m.Fields(s.FieldList, source) {
			args = append(args, idl.Field{
				Name: idl.LowerFirst(f.Name),
				Type: normalizeType(f.TypeNode, source, NormalizeFull),
			})
		}
		out = append(out, idl.Instruction{
			Name:     instructionName(s.Name),
			Accounts: []idl.AccountMeta{account},
			Args:     args,
		})
	}
	return out
}

// deriveAccountMeta scans the entrypoint body for assertion macros mentioning
// writability or signer checks and synthesizes the single shared account
// descriptor. The heuristic is global: every instruction receives the
// identical account, and a matching assertion anywhere in the body sets the
// respective flag.
func deriveAccountMeta(m *Matcher, body *tree_sitter.Node, source []byte) idl.AccountMeta {
	meta := idl.AccountMeta{Name: "account"}
	if body == nil {
		return meta
	}
	for _, mac := range m.Macros(body, source) {
		if !strings.Contains(mac.Text, "assert!") {
			continue
		}
		if strings.Contains(mac.Text, "is_writable") {
			meta.IsMut = true
		}
		if strings.Contains(mac.Text, "is_signer") {
			meta.IsSigner = true
		}
	}
	return meta
}

// instructionName strips a trailing Params suffix and lower-cases the first
// character: TransferParams -> transfer.
func instructionName(structName string) string {
	return idl.LowerFirst(strings.TrimSuffix(structName, "Params"))
}

// hasBorshDerives reports whether attribute text carries both serialization
// markers.
func hasBorshDerives(attrText string) bool {
	return strings.Contains(attrText, borshSerialize) && strings.Contains(attrText, borshDeserialize)
}

// findFunction returns the first function with the given exact name, or nil.
func findFunction(m *Matcher, root *tree_sitter.Node, source []byte, name string) *FunctionMatch {
	for _, fn := range m.Functions(root, source) {
		if fn.Name == name {
			return &fn
		}
	}
	return nil
}
