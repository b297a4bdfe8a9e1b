package itn

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// isAllUpper reports whether every letter in word is uppercase.
func isAllUpper(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// matchCase adjusts replacement to follow the case pattern of original: if
// original's first letter is uppercase, replacement's first letter is
// capitalized via [golang.org/x/text/cases]; otherwise replacement is
// returned unchanged. Used by the whitelist tagger, whose substitutions
// must track the case of the text they replace.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	firstRune, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(firstRune) {
		return replacement
	}
	return titleCaser.String(replacement[:1]) + replacement[1:]
}

// splitTokens splits s on whitespace runs, discarding empty fields.
func splitTokens(s string) []string {
	return strings.Fields(s)
}

// trimLower trims surrounding whitespace and lowercases s.
func trimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
