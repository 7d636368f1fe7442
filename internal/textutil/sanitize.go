package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText makes a file name or path safe to draw. Control
// characters become '?' so names cannot inject escape sequences, and
// invisible formatting runes (bidi overrides, zero-width joiners, BOM) are
// spelled out as ⟪U+XXXX⟫ so a name cannot masquerade as another.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, needsSanitizing) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case unicode.IsControl(r):
			b.WriteByte('?')
		case unicode.Is(unicode.Cf, r):
			fmt.Fprintf(&b, "⟪U+%04X⟫", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(r rune) bool {
	return unicode.IsControl(r) || unicode.Is(unicode.Cf, r)
}
