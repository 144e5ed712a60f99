package pattern

import "strings"

// metachars are the characters [Escape] prefixes with a backslash.
const metachars = `.+*?^$()[]{}|\`

// Escape returns text with every regex metacharacter in the set
// . + * ? ^ $ ( ) [ ] { } | \ prefixed by a backslash. All other bytes,
// including '-' and multi-byte UTF-8 sequences, are copied unchanged.
func Escape(text string) string {
	if !strings.ContainsAny(text, metachars) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) * 2)
	// Every metacharacter is ASCII, so a byte walk never splits a rune.
	for i := 0; i < len(text); i++ {
		c := text[i]
		if strings.IndexByte(metachars, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}

	return b.String()
}
