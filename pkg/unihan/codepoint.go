package unihan

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCodepoint converts a "U+4E00" style identifier to the rune it names.
// Trailing source annotations ("U+50B3<kMeyerWempe") are ignored.
func ParseCodepoint(cp string) (rune, error) {
	if !strings.HasPrefix(cp, "U+") {
		return 0, fmt.Errorf("codepoint %q: missing U+ prefix", cp)
	}
	hex := cp[2:]
	if i := strings.IndexByte(hex, '<'); i >= 0 {
		hex = hex[:i]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("codepoint %q: %w", cp, err)
	}
	return rune(v), nil
}

// FormatCodepoint converts a rune to its "U+XXXX" identifier.
func FormatCodepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
