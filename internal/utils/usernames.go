package utils

import (
	"strings"
	"unicode"
)

// DeriveUsername builds a login username from a free-text display name:
// lowercased, non-alphanumeric runes dropped. Falls back to "staff" when
// nothing survives (e.g. names written entirely in punctuation).
func DeriveUsername(displayName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(displayName)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "staff"
	}
	return b.String()
}
