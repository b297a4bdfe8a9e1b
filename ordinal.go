package itn

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ordinalOnes maps "zeroth".."nineteenth" to their integer value.
var ordinalOnes = map[string]int64{
	"zeroth": 0, "first": 1, "second": 2, "third": 3, "fourth": 4,
	"fifth": 5, "sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9,
	"tenth": 10, "eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18, "nineteenth": 19,
}

// ordinalTens maps "twentieth".."ninetieth" to their integer value.
var ordinalTens = map[string]int64{
	"twentieth": 20, "thirtieth": 30, "fortieth": 40, "fiftieth": 50,
	"sixtieth": 60, "seventieth": 70, "eightieth": 80, "ninetieth": 90,
}

// ordinalScales maps ordinal scale words to their multiplier.
var ordinalScales = map[string]decimal.Decimal{
	"hundredth":  decimal.NewFromInt(100),
	"thousandth": decimal.NewFromInt(1_000),
	"millionth":  decimal.NewFromInt(1_000_000),
	"billionth":  decimal.NewFromInt(1_000_000_000),
}

func isOrdinalWord(w string) bool {
	if _, ok := ordinalOnes[w]; ok {
		return true
	}
	if _, ok := ordinalTens[w]; ok {
		return true
	}
	if _, ok := ordinalScales[w]; ok {
		return true
	}
	return false
}

// formatOrdinal appends the English ordinal suffix to n: "th" whenever
// n%100 is 11, 12, or 13, otherwise by the last digit (1->st, 2->nd,
// 3->rd, else th).
func formatOrdinal(n decimal.Decimal) string {
	mod100 := n.Mod(decimal.NewFromInt(100)).Abs().IntPart()
	mod10 := n.Mod(decimal.NewFromInt(10)).Abs().IntPart()
	suffix := "th"
	if mod100 != 11 && mod100 != 12 && mod100 != 13 {
		switch mod10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return n.StringFixed(0) + suffix
}

// ParseOrdinal converts a lowercased spoken ordinal into its written form
// ("first" -> "1st", "twenty first" -> "21st", "two hundredth" -> "200th").
// It reports false if the last token is not an ordinal word.
func ParseOrdinal(input string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	tokens := splitTokens(trimmed)
	if len(tokens) == 0 {
		return "", false
	}
	last := tokens[len(tokens)-1]

	if one, ok := ordinalOnes[last]; ok && len(tokens) == 1 {
		return formatOrdinal(decimal.NewFromInt(one)), true
	}
	if ten, ok := ordinalTens[last]; ok && len(tokens) == 1 {
		return formatOrdinal(decimal.NewFromInt(ten)), true
	}
	if _, ok := ordinalScales[last]; ok && len(tokens) == 1 {
		// A bare scale ordinal with no prefix, e.g. "hundredth" alone,
		// is its own value (100th).
		return formatOrdinal(ordinalScales[last]), true
	}
	if len(tokens) < 2 || !isOrdinalWord(last) {
		return "", false
	}

	prefix := tokens[:len(tokens)-1]
	prefixValue, ok := wordsToNumber(prefix)
	if !ok {
		return "", false
	}

	if scale, ok := ordinalScales[last]; ok {
		return formatOrdinal(prefixValue.Mul(scale)), true
	}
	if one, ok := ordinalOnes[last]; ok {
		return formatOrdinal(prefixValue.Add(decimal.NewFromInt(one))), true
	}
	ten := ordinalTens[last]
	return formatOrdinal(prefixValue.Add(decimal.NewFromInt(ten))), true
}
