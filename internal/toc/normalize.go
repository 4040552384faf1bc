package toc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and strips its diacritical marks, so that
// "Éléphant" and "elephant" compare equal. Both combining marks and
// standalone diacritics such as '^' and '´' are removed. It is total and
// idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)

	// Transformers carry state, so each call gets its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isDiacritic)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}

func isDiacritic(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Diacritic)
}
