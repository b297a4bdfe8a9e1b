package itn

import "strings"

// currencySymbols maps a currency word to its prefix symbol. Currencies
// not in this map (e.g. "yuan") are rendered with a trailing unit word
// instead of a symbol; see parseScaleCurrency below.
var currencySymbols = map[string]string{
	"dollar":  "$",
	"dollars": "$",
	"won":     "₩",
	"yen":     "¥",
}

// ParseMoney recognizes the money shapes from spec.md section 4.6.
func ParseMoney(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	origTokens := splitTokens(strings.TrimSpace(input))
	tokens := splitTokens(lower)
	if len(tokens) < 2 {
		return "", false
	}

	if out, ok := parseCentsOnly(tokens); ok {
		return out, true
	}
	// Scale ("two million dollars") and decimal ("sixty point two
	// dollars") shapes are tried before the plain dollars-and-cents
	// parser, which would otherwise treat "million"/"point" as an
	// (invalid) amount word and still produce a match.
	if out, ok := parseScaleCurrency(tokens, origTokens); ok {
		return out, true
	}
	if out, ok := parseDecimalCurrency(tokens, origTokens); ok {
		return out, true
	}
	if out, ok := parseDollarsAndCents(tokens); ok {
		return out, true
	}
	return "", false
}

// parseCentsOnly handles "<n> cent(s)" with no dollars part.
func parseCentsOnly(tokens []string) (string, bool) {
	n := len(tokens)
	if n < 2 || (tokens[n-1] != "cent" && tokens[n-1] != "cents") {
		return "", false
	}
	// Not a "dollars and X cents" phrase, which is handled elsewhere.
	for _, t := range tokens {
		if t == "dollar" || t == "dollars" {
			return "", false
		}
	}
	cents, ok := moneyNumber(tokens[:n-1])
	if !ok || cents < 0 || cents > 99 {
		return "", false
	}
	return "$0." + padCents(cents), true
}

// parseDollarsAndCents handles "X dollars and Y cents" and the implied-
// cents shorthand "X dollars Y".
func parseDollarsAndCents(tokens []string) (string, bool) {
	dollarIdx := indexOf(tokens, "dollar")
	if dollarIdx == -1 {
		dollarIdx = indexOf(tokens, "dollars")
	}
	if dollarIdx == -1 {
		return "", false
	}
	dollarWord := tokens[dollarIdx]
	dollarTokens := tokens[:dollarIdx]
	dollars, ok := moneyNumber(dollarTokens)
	if !ok {
		return "", false
	}
	rest := tokens[dollarIdx+1:]

	if len(rest) == 0 {
		if dollars == 1 && dollarWord == "dollars" {
			// "one dollars" is ungrammatical, reject.
			return "", false
		}
		return "$" + itoa(dollars), true
	}

	if rest[0] == "and" {
		rest = rest[1:]
	}

	n := len(rest)
	if n >= 1 && (rest[n-1] == "cent" || rest[n-1] == "cents") {
		cents, ok := moneyNumber(rest[:n-1])
		if !ok || cents < 0 || cents > 99 {
			return "", false
		}
		return "$" + itoa(dollars) + "." + padCents(cents), true
	}

	// Implied cents shorthand: "five dollars fifty" -> $5.50.
	cents, ok := moneyNumber(rest)
	if !ok || cents < 1 || cents > 99 {
		return "", false
	}
	return "$" + itoa(dollars) + "." + padCents(cents), true
}

// parseDecimalCurrency handles "X point D dollars"/"point D dollars".
// It requires an explicit "point": scale-only shapes like "one hundred
// dollars" are parseScaleCurrency/parseDollarsAndCents's responsibility.
func parseDecimalCurrency(tokens, orig []string) (string, bool) {
	n := len(tokens)
	if n < 2 {
		return "", false
	}
	last := tokens[n-1]
	symbol, isCurrency := currencySymbols[last]
	if !isCurrency {
		return "", false
	}
	prefix := tokens[:n-1]
	if !containsToken(prefix, "point") {
		return "", false
	}
	dec, ok := ParseDecimal(strings.Join(prefix, " "))
	if !ok {
		return "", false
	}
	return symbol + dec, true
}

// isLargeScaleWord reports whether w is a scale word at or above
// "thousand". "hundred" is excluded: a trailing "hundred" is folded into
// a plain value by moneyNumber, the same way "one hundred dollars"
// renders as "$100" rather than "$1 hundred".
func isLargeScaleWord(w string) bool {
	return isScaleWord(w) && w != "hundred"
}

// parseScaleCurrency handles "X {million|billion|trillion} dollars" (the
// scale word preserved verbatim), the non-symbol currency "X yuan", and
// the symbol currencies "X won"/"X yen", in both their scaled and plain
// forms. Plain dollar
// amounts are left to parseDollarsAndCents, which carries the
// singular/plural grammar check ("one dollars" is rejected there).
func parseScaleCurrency(tokens, orig []string) (string, bool) {
	n := len(tokens)
	if n < 2 {
		return "", false
	}
	last := tokens[n-1]
	numTokens := tokens[:n-1]
	origScale := numTokens[len(numTokens)-1]
	if len(orig) == n {
		origScale = orig[n-2]
	}

	if last == "yuan" {
		if isLargeScaleWord(numTokens[len(numTokens)-1]) {
			numStr, ok := parseScaledAmount(numTokens, origScale)
			if !ok {
				return "", false
			}
			return numStr + " yuan", true
		}
		n, ok := moneyNumber(numTokens)
		if !ok {
			return "", false
		}
		return itoa(n) + " yuan", true
	}

	symbol, isCurrency := currencySymbols[last]
	if !isCurrency {
		return "", false
	}
	if isLargeScaleWord(numTokens[len(numTokens)-1]) {
		numStr, ok := parseScaledAmount(numTokens, origScale)
		if !ok {
			return "", false
		}
		return symbol + numStr, true
	}
	if last == "dollar" || last == "dollars" {
		// Plain and "hundred" dollar amounts, and any dollars-and-cents
		// suffix, are parseDollarsAndCents's responsibility.
		return "", false
	}
	amount, ok := moneyNumber(numTokens)
	if !ok {
		return "", false
	}
	return symbol + itoa(amount), true
}

// parseScaledAmount parses "<number> <scale>" or "<number> point <digits>
// <scale>" into "<amount> <scale>", writing the scale word as origScale
// (its original-case spelling).
func parseScaledAmount(tokens []string, origScale string) (string, bool) {
	scaleWord := tokens[len(tokens)-1]
	if !isScaleWord(scaleWord) {
		return "", false
	}
	prefix := tokens[:len(tokens)-1]
	if containsToken(prefix, "point") {
		dec, ok := ParseDecimal(strings.Join(prefix, " "))
		if !ok {
			return "", false
		}
		return dec + " " + origScale, true
	}
	n, ok := moneyNumber(prefix)
	if !ok {
		return "", false
	}
	return itoa(n) + " " + origScale, true
}

// moneyNumber parses the shorthand money-number grammar: "<n> hundred"
// -> n*100; a single-digit word followed by a 10..99 compound, e.g. "one
// fifty five" -> 155; otherwise a standard cardinal.
func moneyNumber(tokens []string) (int64, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	if len(tokens) == 2 && tokens[1] == "hundred" {
		if v, ok := cardinalOnes[tokens[0]]; ok {
			return v * 100, true
		}
	}
	if len(tokens) >= 2 {
		if first, ok := cardinalOnes[tokens[0]]; ok && first >= 1 && first <= 9 {
			rest, ok := wordsToNumber(tokens[1:])
			if ok && rest.IntPart() >= 10 && rest.IntPart() <= 99 {
				return first*100 + rest.IntPart(), true
			}
		}
	}
	d, ok := wordsToNumber(tokens)
	if !ok {
		return 0, false
	}
	return d.IntPart(), true
}

func indexOf(tokens []string, target string) int {
	for i, t := range tokens {
		if t == target {
			return i
		}
	}
	return -1
}

func containsToken(tokens []string, target string) bool {
	return indexOf(tokens, target) != -1
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func padCents(n int64) string {
	if n < 10 {
		return "0" + itoa(n)
	}
	return itoa(n)
}
