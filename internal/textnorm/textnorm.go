// Package textnorm folds free text into the ASCII form the extractors match against.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s,./$-]`)
	spaces     = regexp.MustCompile(`\s+`)
)

// Normalize lowercases s, strips diacritics, blanks characters outside
// [a-z0-9 ,./$-] and collapses whitespace.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(folded)
	folded = disallowed.ReplaceAllString(folded, " ")
	folded = spaces.ReplaceAllString(folded, " ")

	return strings.TrimSpace(folded)
}

// TitleCase capitalizes the first letter of every word and lowercases the rest.
func TitleCase(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	// A Caser keeps state, so one is built per call.
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// Words splits normalized text on whitespace.
func Words(s string) []string {
	return strings.Fields(s)
}
