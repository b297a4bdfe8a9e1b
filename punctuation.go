package itn

import "strings"

// punctuationEntries is the fixed spoken-punctuation-to-symbol table from
// spec.md section 4.11, longest-phrase-first. Unlike the whitelist
// tagger, a punctuation phrase only matches when it is the entire input;
// it never rewrites a substring, which is what keeps "periodic" from
// becoming "period.ic". Ported from
// _examples/original_source/src/taggers/punctuation.rs's PUNCTUATION
// table.
var punctuationEntries = []struct {
	phrase string
	symbol string
}{
	// Multi-word patterns.
	{"exclamation point", "!"},
	{"exclamation mark", "!"},
	{"question mark", "?"},
	{"open parenthesis", "("},
	{"close parenthesis", ")"},
	{"left parenthesis", "("},
	{"right parenthesis", ")"},
	{"open bracket", "["},
	{"close bracket", "]"},
	{"left bracket", "["},
	{"right bracket", "]"},
	{"open brace", "{"},
	{"close brace", "}"},
	{"left brace", "{"},
	{"right brace", "}"},
	{"double quote", "\""},
	{"single quote", "'"},
	{"forward slash", "/"},
	{"back slash", "\\"},

	// Single-word patterns.
	{"period", "."},
	{"dot", "."},
	{"comma", ","},
	{"colon", ":"},
	{"semicolon", ";"},
	{"hyphen", "-"},
	{"dash", "-"},
	{"ellipsis", "..."},
	{"ampersand", "&"},
	{"asterisk", "*"},
	{"at sign", "@"},
	{"hash", "#"},
	{"percent", "%"},
	{"plus", "+"},
	{"equals", "="},
	{"tilde", "~"},
	{"underscore", "_"},
	{"pipe", "|"},
	{"slash", "/"},
}

func init() {
	for i := 1; i < len(punctuationEntries); i++ {
		for j := i; j > 0 && len(punctuationEntries[j-1].phrase) < len(punctuationEntries[j].phrase); j-- {
			punctuationEntries[j-1], punctuationEntries[j] = punctuationEntries[j], punctuationEntries[j-1]
		}
	}
}

// ParsePunctuation matches input against the punctuation table only when
// the entire trimmed, lowercased input equals a phrase.
func ParsePunctuation(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, e := range punctuationEntries {
		if lower == e.phrase {
			return e.symbol, true
		}
	}
	return "", false
}
