package itn

import (
	"strings"
)

// knownAbbreviations are rendered uppercase when they appear as a letter
// run in an alphanumeric code, e.g. "r t x ten eighty" -> "RTX1080".
var knownAbbreviations = map[string]bool{
	"rtx": true, "gtx": true, "rx": true, "amd": true,
	"cpu": true, "gpu": true, "usb": true, "hdmi": true,
}

// isLetterToken reports whether tok is a single lowercase ASCII letter;
// the alphanumeric-code sub-pattern uses it to find letter runs. "o" is
// deliberately excluded here: outside telephone contexts it is the digit
// zero (spec.md section 4.8), and within the alphanumeric sub-pattern it
// is never treated as the letter O either.
func isLetterToken(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	c := tok[0]
	return c >= 'a' && c <= 'z' && tok != "o"
}

// ParseTelephone recognizes phone numbers, IP addresses, SSNs, and
// alphanumeric codes from spec.md section 4.8. The recognition gate
// requires at least one number word and no scale words, so that plain
// cardinals are left for the cardinal tagger.
func ParseTelephone(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return "", false
	}
	tokens := splitTokens(lower)

	hasNumberWord := false
	for _, t := range tokens {
		if _, ok := cardinalOnes[t]; ok {
			hasNumberWord = true
		}
		if _, ok := cardinalTens[t]; ok {
			hasNumberWord = true
		}
		if isScaleWord(t) {
			return "", false
		}
	}
	if !hasNumberWord {
		return "", false
	}

	if strings.Contains(lower, " dot ") {
		if out, ok := parseIPAddress(lower); ok {
			return out, true
		}
	}
	if strings.Contains(lower, "ssn") {
		if out, ok := parseSSN(input); ok {
			return out, true
		}
	}
	if out, ok := parseAlphanumericCode(tokens); ok {
		return out, true
	}
	if out, ok := parsePhoneNumber(tokens); ok {
		return out, true
	}
	return "", false
}

// parseIPAddress splits on " dot " and parses each segment as an octet.
func parseIPAddress(lower string) (string, bool) {
	segments := strings.Split(lower, " dot ")
	if len(segments) < 2 {
		return "", false
	}
	var out []string
	for _, seg := range segments {
		digits, ok := digitRun(splitTokens(seg))
		if !ok || digits == "" {
			return "", false
		}
		out = append(out, digits)
	}
	return strings.Join(out, "."), true
}

// digitRun concatenates a sequence of digit words into a digit string,
// expanding "double X" into "XX" and "triple X" into "XXX".
func digitRun(tokens []string) (string, bool) {
	var b strings.Builder
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok {
		case "double":
			if i+1 >= len(tokens) {
				return "", false
			}
			d, ok := singleDigit(tokens[i+1])
			if !ok {
				return "", false
			}
			b.WriteString(d)
			b.WriteString(d)
			i += 2
			continue
		case "triple":
			if i+1 >= len(tokens) {
				return "", false
			}
			d, ok := singleDigit(tokens[i+1])
			if !ok {
				return "", false
			}
			b.WriteString(d)
			b.WriteString(d)
			b.WriteString(d)
			i += 2
			continue
		}
		if tens, ok := cardinalTens[tok]; ok {
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
		d, ok := singleDigit(tok)
		if !ok {
			return "", false
		}
		b.WriteString(d)
		i++
	}
	return b.String(), true
}

// singleDigit resolves a one-digit spoken token, including the "o"/"oh"
// spellings of zero that appear in telephone contexts.
func singleDigit(tok string) (string, bool) {
	if d, ok := digitWords[tok]; ok {
		return string(d), true
	}
	if v, ok := cardinalOnes[tok]; ok && v >= 10 {
		return "", false
	}
	return "", false
}

// parseSSN recognizes input containing the literal token "ssn" and
// formats the digits before it as XXX-XX-XXXX, preserving any preceding
// text in its original case.
func parseSSN(original string) (string, bool) {
	lower := strings.ToLower(original)
	idx := strings.Index(lower, "ssn")
	if idx == -1 {
		return "", false
	}
	before := strings.TrimSpace(original[:idx])
	after := lower[idx+len("ssn"):]
	tokens := splitTokens(after)
	digits, ok := digitRun(tokens)
	if !ok || len(digits) != 9 {
		return "", false
	}
	formatted := digits[:3] + "-" + digits[3:5] + "-" + digits[5:]
	if before == "" {
		return "SSN is " + formatted, true
	}
	return before + " SSN is " + formatted, true
}

// parseAlphanumericCode recognizes mixed letter/number codes such as
// "r t x ten eighty" -> "RTX1080" or "x eighty six" -> "x86".
func parseAlphanumericCode(tokens []string) (string, bool) {
	hasLetter := false
	for _, t := range tokens {
		if isLetterToken(t) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return "", false
	}

	var out strings.Builder
	var letterRun strings.Builder
	flushLetters := func() {
		if letterRun.Len() == 0 {
			return
		}
		word := letterRun.String()
		if knownAbbreviations[word] {
			out.WriteString(strings.ToUpper(word))
		} else if len(word) == 1 {
			out.WriteString(word)
		} else {
			out.WriteString(strings.ToUpper(word))
		}
		letterRun.Reset()
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if isLetterToken(tok) {
			if tok == "x" && letterRun.Len() == 0 && i+1 < len(tokens) && isNumberStart(tokens[i+1]) {
				// "x86": a standalone "x" joins directly to the following
				// number with no space. Only applies when "x" starts a
				// fresh letter run, so it doesn't hijack the trailing "x"
				// of a multi-letter abbreviation like "rtx".
				flushLetters()
				num, consumed, ok := greedyCompoundNumber(tokens[i+1:])
				if !ok {
					return "", false
				}
				out.WriteString("x")
				out.WriteString(num)
				i += 1 + consumed
				continue
			}
			letterRun.WriteString(tok)
			i++
			continue
		}
		if isNumberStart(tok) {
			flushLetters()
			num, consumed, ok := greedyCompoundNumber(tokens[i:])
			if !ok {
				return "", false
			}
			out.WriteString(num)
			i += consumed
			continue
		}
		return "", false
	}
	flushLetters()
	if out.Len() == 0 {
		return "", false
	}
	return out.String(), true
}

func isNumberStart(tok string) bool {
	if _, ok := cardinalOnes[tok]; ok {
		return true
	}
	if _, ok := cardinalTens[tok]; ok {
		return true
	}
	return false
}

// greedyCompoundNumber consumes the longest GPU-style or plain compound
// number at the start of tokens ("ten eighty" -> 1080, "forty fifty" ->
// 4050, "eighty six" -> 86), returning its digit string and how many
// tokens it consumed.
func greedyCompoundNumber(tokens []string) (string, int, bool) {
	if len(tokens) == 0 {
		return "", 0, false
	}
	// Two tens-words back to back denote a GPU-style four-digit model
	// number: "ten eighty" -> "1080", "forty fifty" -> "4050".
	if len(tokens) >= 2 {
		if a, ok := cardinalTens[tokens[0]]; ok {
			if b, ok := cardinalTens[tokens[1]]; ok {
				return itoa(a) + formatTwoDigit(b), 2, true
			}
		}
		if av, ok := cardinalOnes[tokens[0]]; ok && av >= 10 && av <= 19 {
			if b, ok := cardinalTens[tokens[1]]; ok {
				return itoa(av) + formatTwoDigit(b), 2, true
			}
		}
	}
	if tens, ok := cardinalTens[tokens[0]]; ok {
		if len(tokens) >= 2 {
			if ones, ok := cardinalOnes[tokens[1]]; ok && ones < 10 {
				return itoa(tens + ones), 2, true
			}
		}
		return itoa(tens), 1, true
	}
	if v, ok := cardinalOnes[tokens[0]]; ok {
		return itoa(v), 1, true
	}
	return "", 0, false
}

// parsePhoneNumber recognizes an optional "plus <country code>" prefix
// followed by a digit run, formatting the result by digit count per
// spec.md section 4.8. With a "plus" prefix the trailing 10 digits are
// always the subscriber number; whatever precedes them is the country
// code, rendered as bare digits with no grouping. A digit run whose
// length doesn't match a recognized phone shape is rejected outright, so
// that plain cardinals (e.g. "twenty three") fall through to the
// cardinal tagger instead of being misread as a phone number.
func parsePhoneNumber(tokens []string) (string, bool) {
	if len(tokens) > 0 && tokens[0] == "plus" {
		digits, ok := digitRun(tokens[1:])
		if !ok || len(digits) < 11 {
			return "", false
		}
		phoneLen := 10
		countryCode := digits[:len(digits)-phoneLen]
		phone := digits[len(digits)-phoneLen:]
		formatted, ok := formatPhoneDigits(phone)
		if !ok {
			return "", false
		}
		return countryCode + " " + formatted, true
	}

	digits, ok := digitRun(tokens)
	if !ok {
		return "", false
	}
	return formatPhoneDigits(digits)
}

// formatPhoneDigits renders a digit string as a phone number only when its
// length matches one of the recognized shapes (country+subscriber,
// 10-digit, 7-digit local, or a bare 3-digit code); any other length is
// not a phone number.
func formatPhoneDigits(digits string) (string, bool) {
	switch len(digits) {
	case 11:
		return digits[:1] + " " + digits[1:4] + "-" + digits[4:7] + "-" + digits[7:], true
	case 10:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:], true
	case 7:
		return digits[:3] + "-" + digits[3:], true
	case 3:
		return digits, true
	default:
		return "", false
	}
}
