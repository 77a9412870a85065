package treesitter

import tree_sitter "github.com/tree-sitter/go-tree-sitter"

// fallbackName is emitted when the source has no recognizable entry point or
// no enclosing module to derive a name from.
const fallbackName = "solana_program"

// resolveProgramName derives a program name from the tree. This is a naming
// heuristic, not a guarantee: a source with a process_instruction function
// inside mod foo is named "foo_program"; anything else falls back to the
// fixed default. Absence of the entry point never fails generation.
func resolveProgramName(m *Matcher, root *tree_sitter.Node, source []byte) string {
	found := false
	for _, fn := range m.Functions(root, source) {
		if fn.Name == "process_instruction" {
			found = true
			break
		}
	}
	if !found {
		return fallbackName
	}
	mods := m.Modules(root, source)
	if len(mods) == 0 {
		return fallbackName
	}
	return mods[0].Name + "_program"
}
