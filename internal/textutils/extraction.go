// Package textutils provides text extraction and manipulation utilities.
package textutils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// leadingNoise are the characters stripped from the start of a description.
const leadingNoise = ",.;:-–—"

// CollapseWhitespace replaces every run of whitespace with a single space and
// trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TrimLeadingPunctuation removes leading commas, dots, colons, dashes and spaces.
func TrimLeadingPunctuation(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(leadingNoise, r)
	})
}

// CapitalizeFirst upper-cases the first rune of s and leaves the rest alone.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// RuneLen returns the number of characters in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
