// Package slug builds URL path segments from free-form titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars = regexp.MustCompile(`[^\w-]+`)
	repeatedDash = regexp.MustCompile(`--+`)
)

// Generate lowercases text, strips diacritics, turns spaces into hyphens,
// drops everything outside [A-Za-z0-9_-] and collapses runs of hyphens.
//
// Leading and trailing hyphens produced by the replacements are kept.
func Generate(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = stripMarks(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidChars.ReplaceAllString(s, "")
	return repeatedDash.ReplaceAllString(s, "-")
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
