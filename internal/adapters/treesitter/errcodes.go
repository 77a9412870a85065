package treesitter

import (
	"strconv"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/hoffmabc/arch-idl/internal/domain/idl"
)

// errorCodeThreshold: integer literals strictly above this value are treated
// as custom error codes. 500 itself is not an error code.
const errorCodeThreshold = 500

// extractErrors scans every integer literal in the tree and emits a synthetic
// error descriptor for each value above the threshold. No deduplication:
// repeated literals produce repeated entries. This is a coarse heuristic with
// no semantic understanding of whether a literal is actually an error code.
func extractErrors(m *Matcher, root *tree_sitter.Node, source []byte) []idl.ErrorDef {
	out := []idl.ErrorDef{}
	for _, lit := range m.IntegerLiterals(root, source) {
		code, ok := parseIntegerLiteral(lit.Text)
		if !ok || code <= errorCodeThreshold {
			continue
		}
		out = append(out, idl.NewError(code))
	}
	return out
}

// parseIntegerLiteral reads a Rust integer literal leniently: underscores are
// ignored, 0x hex is honored, and trailing type suffixes (500u64) are cut at
// the first non-digit. Unparseable literals are skipped, not errors.
func parseIntegerLiteral(text string) (int64, bool) {
	t := strings.ReplaceAll(text, "_", "")
	if len(t) == 0 {
		return 0, false
	}

	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		digits := leadingDigits(t[2:], isHexDigit)
		if digits == "" {
			return 0, false
		}
		v, err := strconv.ParseInt(digits, 16, 64)
		return v, err == nil
	}

	digits := leadingDigits(t, isDecDigit)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	return v, err == nil
}

func leadingDigits(s string, valid func(byte) bool) string {
	i := 0
	for i < len(s) && valid(s[i]) {
		i++
	}
	return s[:i]
}

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}
