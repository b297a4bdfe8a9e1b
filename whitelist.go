package itn

import "strings"

// whitelistKind distinguishes whether a whitelist entry must match the
// entire input or may replace a substring anywhere in it.
type whitelistKind int

const (
	whitelistSubstring whitelistKind = iota
	whitelistExact
)

// whitelistEntries is the fixed substitution table from spec.md section
// 4.10, scanned longest-pattern-first. Ported from
// _examples/original_source/src/taggers/whitelist.rs's REPLACEMENTS: the
// spelled-out tech-term compounds are marked exact-only (per
// whitelist.rs's is_exact_match_only) so they don't fire as a substring
// of some larger alphanumeric code; the phrase and title entries replace
// anywhere in the input, case-adjusted by matchCase.
var whitelistEntries = []struct {
	pattern     string
	replacement string
	kind        whitelistKind
}{
	{"l g a eleven fifty", "LGA 1150", whitelistSubstring},
	{"p c i e x eight", "PCIe x8", whitelistExact},
	{"s and p five hundred", "S&P 500", whitelistSubstring},
	{"seven eleven", "7-eleven", whitelistSubstring},
	{"cat five e", "CAT5e", whitelistExact},
	{"c u d n n", "cuDNN", whitelistExact},
	{"r t x", "RTX", whitelistExact},
	{"for example", "e.g.", whitelistSubstring},
	{"doctor", "dr.", whitelistSubstring},
	{"misses", "mrs.", whitelistSubstring},
	{"mister", "mr.", whitelistSubstring},
	{"saint", "st.", whitelistSubstring},
}

func init() {
	// Longest pattern first so a longer phrase is never shadowed by a
	// shorter one it contains.
	for i := 1; i < len(whitelistEntries); i++ {
		for j := i; j > 0 && len(whitelistEntries[j-1].pattern) < len(whitelistEntries[j].pattern); j-- {
			whitelistEntries[j-1], whitelistEntries[j] = whitelistEntries[j], whitelistEntries[j-1]
		}
	}
}

// ParseWhitelist applies the fixed substitution table, case-insensitively,
// returning false if no pattern was found. Substring entries preserve the
// case of the first matched character; exact entries only match the
// entire trimmed input.
func ParseWhitelist(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	for _, e := range whitelistEntries {
		if e.kind == whitelistExact {
			if lower == e.pattern {
				return e.replacement, true
			}
			continue
		}
		if idx := strings.Index(lower, e.pattern); idx != -1 {
			matched := trimmed[idx : idx+len(e.pattern)]
			replacement := matchCase(matched, e.replacement)
			return trimmed[:idx] + replacement + trimmed[idx+len(e.pattern):], true
		}
	}
	return "", false
}
