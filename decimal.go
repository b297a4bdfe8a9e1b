package itn

import "strings"

// digitWords maps single-digit number words, plus the "oh"/"o" spellings
// used after a decimal point, to their digit character.
var digitWords = map[string]byte{
	"zero": '0', "o": '0', "oh": '0',
	"one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
}

// digitSequence converts a run of digit-words (plus compound tens like
// "twenty" or "thirty five") into a string of decimal digits, one per
// spoken digit (tens expand to two digits). Reports false on any token it
// cannot place.
func digitSequence(tokens []string) (string, bool) {
	var b strings.Builder
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if d, ok := digitWords[tok]; ok {
			b.WriteByte(d)
			i++
			continue
		}
		if tens, ok := cardinalTens[tok]; ok {
			// A tens word inside a digit sequence expands to its full
			// two-digit form, optionally absorbing a trailing ones word
			// ("thirty five" -> "35"); alone it is "30".
			ones := int64(0)
			consumed := 1
			if i+1 < len(tokens) {
				if v, ok := cardinalOnes[tokens[i+1]]; ok && v < 10 {
					ones = v
					consumed = 2
				}
			}
			b.WriteString(formatTwoDigit(tens + ones))
			i += consumed
			continue
		}
		if v, ok := cardinalOnes[tok]; ok && v >= 10 {
			// A teen word inside a digit sequence, e.g. "point one eleven".
			b.WriteString(formatTwoDigit(v))
			i++
			continue
		}
		return "", false
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

func formatTwoDigit(n int64) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

// ParseDecimal recognizes "[minus] [integer] point <digits> [scale]" and
// "[minus] point <digits> [scale]" shapes and renders them as a decimal
// string, e.g. "sixty point two" -> "60.2", "point five" -> ".5". It
// reports false if input does not contain a recognizable decimal shape.
func ParseDecimal(input string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	negative := false
	for _, prefix := range []string{"minus ", "negative "} {
		if strings.HasPrefix(trimmed, prefix) {
			negative = true
			trimmed = trimmed[len(prefix):]
			break
		}
	}

	tokens := splitTokens(trimmed)
	pointIdx := -1
	for i, tok := range tokens {
		if tok == "point" {
			pointIdx = i
			break
		}
	}
	if pointIdx == -1 {
		return parseScaleOnly(tokens, splitTokens(strings.TrimSpace(input)), negative)
	}

	intPart := tokens[:pointIdx]
	rest := tokens[pointIdx+1:]
	if len(rest) == 0 {
		return "", false
	}

	// A trailing scale word ("billion", "percent", etc.) is not part of
	// the digit sequence; preserve its original case.
	origTokens := splitTokens(strings.TrimSpace(input))
	scaleSuffix := ""
	if last := rest[len(rest)-1]; isScaleWord(last) || last == "percent" {
		scaleSuffix = " " + origTokens[len(origTokens)-1]
		rest = rest[:len(rest)-1]
	}

	digits, ok := digitSequence(rest)
	if !ok {
		return "", false
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if len(intPart) > 0 {
		intStr, ok := ParseCardinal(strings.Join(intPart, " "))
		if !ok {
			return "", false
		}
		if intStr == "zero" {
			intStr = "0"
		}
		b.WriteString(intStr)
	}
	b.WriteByte('.')
	b.WriteString(digits)
	b.WriteString(scaleSuffix)
	return b.String(), true
}

// parseScaleOnly handles "<integer> <scale>" with no "point", e.g.
// "five million" -> "5 million" (scale word's original case preserved).
// A trailing "hundred" is not a scale suffix here: "one hundred" is left
// for the cardinal tagger.
func parseScaleOnly(tokens, orig []string, negative bool) (string, bool) {
	if len(tokens) < 2 {
		return "", false
	}
	last := tokens[len(tokens)-1]
	if !isScaleWord(last) || last == "hundred" {
		return "", false
	}
	if len(orig) > 0 {
		last = orig[len(orig)-1]
	}
	prefix := tokens[:len(tokens)-1]
	intStr, ok := ParseCardinal(strings.Join(prefix, " "))
	if !ok {
		return "", false
	}
	if intStr == "zero" {
		intStr = "0"
	}
	if negative && !strings.HasPrefix(intStr, "-") {
		intStr = "-" + intStr
	}
	return intStr + " " + last, true
}
