package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a subject or teacher name for fuzzy comparison:
// lowercase, letters and digits only.
//
// Examples:
//   - "Англ. яз" -> "англяз"
//   - "1:Smith J. K." -> "1smithjk"
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
