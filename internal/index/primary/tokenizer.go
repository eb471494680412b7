package primary

import (
	"strings"
	"unicode"
)

// tokenize lower-cases the input and splits it into alphanumeric terms.
// Single-character terms are dropped; they index nothing useful.
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			terms = append(terms, f)
		}
	}
	return terms
}
