package itn

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// cardinalOnes maps "zero".."nineteen" to their integer value.
var cardinalOnes = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

// cardinalTens maps "twenty".."ninety" to their integer value.
var cardinalTens = map[string]int64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// cardinalScales maps scale words to their multiplier. Values run up to
// 10^21 ("sextillion"), well past int64's range, which is why the
// accumulator below works in decimal.Decimal rather than int64.
var cardinalScales = map[string]decimal.Decimal{
	"hundred":     decimal.NewFromInt(100),
	"thousand":    decimal.NewFromInt(1_000),
	"million":     decimal.NewFromInt(1_000_000),
	"billion":     decimal.NewFromInt(1_000_000_000),
	"trillion":    decimal.RequireFromString("1000000000000"),
	"quadrillion": decimal.RequireFromString("1000000000000000"),
	"quintillion": decimal.RequireFromString("1000000000000000000"),
	"sextillion":  decimal.RequireFromString("1000000000000000000000"),
	"lakh":        decimal.NewFromInt(100_000),
	"crore":       decimal.NewFromInt(10_000_000),
}

// scaleWords is the set of tokens that make an input ineligible for the
// telephone tagger (which must leave plain cardinals alone).
var scaleWords = map[string]bool{
	"hundred": true, "thousand": true, "million": true, "billion": true,
	"trillion": true, "quadrillion": true, "quintillion": true, "sextillion": true,
	"lakh": true, "crore": true,
}

func isScaleWord(w string) bool { return scaleWords[w] }

// wordsToNumber converts a lowercased token sequence into an integer,
// reporting false if any token is not part of the cardinal vocabulary.
// "and" and "a" are dropped as conjunctions before parsing.
func wordsToNumber(tokens []string) (decimal.Decimal, bool) {
	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "and" || t == "a" {
			continue
		}
		filtered = append(filtered, t)
	}
	if len(filtered) == 0 {
		return decimal.Zero, false
	}

	// Eleven-hundred pattern: "<X> hundred [<remainder>]" where X is a
	// single ones (11-19) or tens word. Handles "eleven hundred",
	// "twenty one hundred" (no: "twenty one" is two words, see below),
	// "eleven hundred twenty one".
	if len(filtered) >= 2 && filtered[1] == "hundred" {
		var x int64
		var ok bool
		if v, found := cardinalOnes[filtered[0]]; found && v >= 11 && v <= 19 {
			x, ok = v, true
		} else if v, found := cardinalTens[filtered[0]]; found {
			x, ok = v, true
		}
		if ok {
			base := decimal.NewFromInt(x).Mul(decimal.NewFromInt(100))
			if len(filtered) == 2 {
				return base, true
			}
			remainder, rok := wordsToNumber(filtered[2:])
			if !rok {
				return decimal.Zero, false
			}
			return base.Add(remainder), true
		}
	}

	result := decimal.Zero
	current := decimal.Zero
	seen := false
	for _, tok := range filtered {
		if one, ok := cardinalOnes[tok]; ok {
			current = current.Add(decimal.NewFromInt(one))
			seen = true
			continue
		}
		if ten, ok := cardinalTens[tok]; ok {
			current = current.Add(decimal.NewFromInt(ten))
			seen = true
			continue
		}
		if tok == "hundred" {
			if current.IsZero() {
				current = decimal.NewFromInt(1)
			}
			current = current.Mul(decimal.NewFromInt(100))
			seen = true
			continue
		}
		scale, ok := cardinalScales[tok]
		if !ok {
			return decimal.Zero, false
		}
		if current.IsZero() {
			current = decimal.NewFromInt(1)
		}
		result = result.Add(current.Mul(scale))
		current = decimal.Zero
		seen = true
	}
	if !seen {
		return decimal.Zero, false
	}
	return result.Add(current), true
}

// ParseCardinal converts a lowercased spoken cardinal number into its
// written decimal string form, or reports false if input is not a
// recognizable cardinal. "zero" is a deliberate compatibility exception: it
// returns the literal string "zero", not "0".
func ParseCardinal(input string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return "", false
	}
	if trimmed == "zero" {
		return "zero", true
	}

	negative := false
	for _, prefix := range []string{"minus ", "negative "} {
		if strings.HasPrefix(trimmed, prefix) {
			negative = true
			trimmed = trimmed[len(prefix):]
			break
		}
	}

	tokens := splitTokens(trimmed)
	n, ok := wordsToNumber(tokens)
	if !ok {
		return "", false
	}
	s := n.StringFixed(0)
	if negative && s != "0" {
		s = "-" + s
	}
	return s, true
}

// cardinalStringToDecimal parses a plain base-10 integer string (as
// produced by ParseCardinal) back into a decimal.Decimal. Used by taggers
// that need to do further arithmetic on a cardinal-parsed prefix.
func cardinalStringToDecimal(s string) (decimal.Decimal, bool) {
	if s == "zero" {
		return decimal.Zero, true
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return decimal.RequireFromString(s), true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
