package itn

import "strings"

// Normalize applies single-expression inverse text normalization to input
// using the default engine's custom rules. See [Engine.Normalize].
func Normalize(input string) string {
	return defaultEngine.Normalize(input)
}

// Normalize converts a single spoken-form expression to written form. It
// tries, in order, the custom rules table, the whitelist, punctuation,
// word, time, date, money, measure, and decimal taggers, then telephone,
// electronic, decimal again, ordinal, and finally cardinal. The first
// tagger to recognize the input wins; if none do, the trimmed input is
// returned unchanged.
//
// The decimal tagger is deliberately tried twice: once before telephone,
// to claim shapes like "sixty point two" ahead of the telephone tagger's
// broad digit-sequence grammar, and again after electronic, to catch any
// decimal shape those taggers declined.
//
// Example:
//
//	Normalize("two hundred thirty two")       // "232"
//	Normalize("five dollars and fifty cents") // "$5.50"
func (e *Engine) Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	if out, ok := e.parseCustom(trimmed); ok {
		return out
	}
	if out, ok := ParseWhitelist(trimmed); ok {
		return out
	}
	if out, ok := ParsePunctuation(trimmed); ok {
		return out
	}
	if out, ok := ParseWord(trimmed); ok {
		return out
	}
	if out, ok := ParseTime(trimmed); ok {
		return out
	}
	if out, ok := ParseDate(trimmed); ok {
		return out
	}
	if out, ok := ParseMoney(trimmed); ok {
		return out
	}
	if out, ok := ParseMeasure(trimmed); ok {
		return out
	}
	if out, ok := ParseDecimal(trimmed); ok {
		return out
	}
	if out, ok := ParseTelephone(trimmed); ok {
		return out
	}
	if out, ok := ParseElectronic(trimmed); ok {
		return out
	}
	if out, ok := ParseDecimal(trimmed); ok {
		return out
	}
	if out, ok := ParseOrdinal(trimmed); ok {
		return out
	}
	if out, ok := ParseCardinal(trimmed); ok {
		return out
	}
	return trimmed
}
