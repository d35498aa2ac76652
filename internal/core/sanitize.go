package core

import "strings"

// SanitizePackageName trims raw and keeps only ASCII letters, digits, '-'
// and '_'. An empty result means no package name was provided.
func SanitizePackageName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	var b strings.Builder
	b.Grow(len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if isNameChar(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	default:
		return false
	}
}
