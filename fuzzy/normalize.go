package fuzzy

import (
	"strings"
	"unicode"
)

// Normalize prepares a string for fuzzy matching by:
//  1. Unifying case (lowercase)
//  2. Removing all characters that are not letters, digits or whitespace
//  3. Compressing runs of whitespace into a single space
//  4. Trimming leading and trailing spaces
//
// A string containing only punctuation normalizes to the empty string.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	// Fields splits on any run of whitespace, which both collapses
	// internal runs and trims the ends.
	return strings.Join(strings.Fields(b.String()), " ")
}
