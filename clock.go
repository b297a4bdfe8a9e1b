package itn

import "strings"

// timezoneSuffixes lists the recognized timezone tokens in the lowercase,
// unspaced form in which they are written to the output.
var timezoneSuffixes = []string{"gmt", "est", "pst", "cst", "mst"}

// periodSuffixes maps a recognized trailing period phrase to whether it
// denotes "a.m." (true) or "p.m." (false).
var periodSuffixes = map[string]bool{
	"a m": true, "am": true,
	"p m": false, "pm": false,
	"in the morning":   true,
	"in the afternoon": false,
	"in the evening":   false,
}

// stripTimezone removes a trailing timezone phrase (contiguous or spelled
// with spaces between letters, e.g. "g m t") from lower, returning the
// remainder and the lowercase timezone string, if any.
func stripTimezone(lower string) (string, string) {
	for _, tz := range timezoneSuffixes {
		spelled := spellOut(tz)
		for _, suffix := range []string{" " + tz, " " + spelled} {
			if strings.HasSuffix(lower, suffix) {
				return strings.TrimSpace(lower[:len(lower)-len(suffix)]), tz
			}
		}
		if lower == tz || lower == spelled {
			return "", tz
		}
	}
	return lower, ""
}

// spellOut inserts a space between every letter of s ("gmt" -> "g m t").
func spellOut(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripPeriod removes a trailing am/pm-style phrase from lower, returning
// the remainder, the formatted period string (empty if none), and whether
// one was found.
func stripPeriod(lower string) (string, string, bool) {
	// Longer phrases first so "in the morning" is not shadowed by a
	// shorter match.
	candidates := []string{"in the morning", "in the afternoon", "in the evening", "a m", "am", "p m", "pm"}
	for _, phrase := range candidates {
		suffix := " " + phrase
		if strings.HasSuffix(lower, suffix) {
			isAM := periodSuffixes[phrase]
			return strings.TrimSpace(lower[:len(lower)-len(suffix)]), formatPeriod(phrase, isAM), true
		}
		if lower == phrase {
			isAM := periodSuffixes[phrase]
			return "", formatPeriod(phrase, isAM), true
		}
	}
	return lower, "", false
}

func formatPeriod(phrase string, isAM bool) string {
	if phrase == "in the morning" || phrase == "in the afternoon" || phrase == "in the evening" {
		if isAM {
			return "a.m."
		}
		return "p.m."
	}
	if isAM {
		return "a.m."
	}
	return "p.m."
}

// ParseTime recognizes the spoken time-of-day shapes from spec.md
// section 4.5 and renders them as "HH:MM[ period][ timezone]".
func ParseTime(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return "", false
	}

	withoutTZ, tz := stripTimezone(lower)
	core, period, hasPeriod := stripPeriod(withoutTZ)
	core = strings.TrimSpace(core)
	if core == "" {
		return "", false
	}

	tokens := splitTokens(core)

	if len(tokens) == 1 && !hasPeriod && tz == "" {
		// A bare single word is only a time candidate with a period or
		// timezone attached; otherwise "one" must remain a cardinal.
		return "", false
	}

	hh, mm, ok := parseClockCore(tokens, hasPeriod || tz != "")
	if !ok {
		return "", false
	}

	if !hasPeriod && tz == "" {
		if hh < 1 || hh > 12 {
			return "", false
		}
		if hh >= 10 && hh <= 19 && mm >= 10 && mm <= 59 {
			// Ambiguous with a year like "eleven fifty five"; leave it
			// for the date tagger.
			return "", false
		}
	}

	var b strings.Builder
	b.WriteString(formatTwoDigit(int64(hh % 24)))
	b.WriteByte(':')
	b.WriteString(formatTwoDigit(int64(mm)))
	if period != "" {
		b.WriteByte(' ')
		b.WriteString(period)
	}
	if tz != "" {
		b.WriteByte(' ')
		b.WriteString(tz)
	}
	return b.String(), true
}

// parseClockCore parses the hour/minute portion of a time phrase after
// timezone and period suffixes have been stripped. hasSuffix reports
// whether either a period or a timezone was stripped.
func parseClockCore(tokens []string, hasSuffix bool) (int, int, bool) {
	n := len(tokens)

	// "quarter past H"
	if n >= 3 && tokens[0] == "quarter" && tokens[1] == "past" {
		h, ok := hourWord(tokens[2:])
		if !ok {
			return 0, 0, false
		}
		return h, 15, true
	}
	// "half past H"
	if n >= 3 && tokens[0] == "half" && tokens[1] == "past" {
		h, ok := hourWord(tokens[2:])
		if !ok {
			return 0, 0, false
		}
		return h, 30, true
	}
	// "quarter to H"
	if n >= 3 && tokens[0] == "quarter" && tokens[1] == "to" {
		h, ok := hourWord(tokens[2:])
		if !ok {
			return 0, 0, false
		}
		return priorHour(h), 45, true
	}
	// "H o'clock" / "H oclock"
	if n >= 2 && (tokens[n-1] == "o'clock" || tokens[n-1] == "oclock") {
		h, ok := hourWord(tokens[:n-1])
		if !ok {
			return 0, 0, false
		}
		return h, 0, true
	}
	// "<n minutes> to H"
	if n >= 3 && tokens[n-2] == "to" {
		minuteTokens := tokens[:n-2]
		if len(minuteTokens) > 0 && minuteTokens[len(minuteTokens)-1] == "minutes" {
			minuteTokens = minuteTokens[:len(minuteTokens)-1]
		}
		minutes, ok := wordsToNumber(minuteTokens)
		if !ok || minutes.IntPart() <= 0 || minutes.IntPart() >= 60 {
			return 0, 0, false
		}
		h, ok := hourWord(tokens[n-1:])
		if !ok {
			return 0, 0, false
		}
		return priorHour(h), int(60 - minutes.IntPart()), true
	}

	// "<hour> <minute...>"
	if n >= 2 {
		h, ok := cardinalOnes[tokens[0]]
		if !ok || h < 1 || h > 12 {
			return 0, 0, false
		}
		minutes, ok := parseMinutes(tokens[1:])
		if !ok {
			return 0, 0, false
		}
		return int(h), minutes, true
	}

	// Single remaining token with a period/timezone context: "three p m".
	if n == 1 && hasSuffix {
		h, ok := hourWord(tokens)
		if !ok {
			return 0, 0, false
		}
		return h, 0, true
	}

	return 0, 0, false
}

func hourWord(tokens []string) (int, bool) {
	if len(tokens) != 1 {
		return 0, false
	}
	h, ok := cardinalOnes[tokens[0]]
	if !ok || h < 1 || h > 12 {
		return 0, false
	}
	return int(h), true
}

func priorHour(h int) int {
	if h <= 1 {
		return 12
	}
	return h - 1
}

// parseMinutes parses the restricted minute grammar: a single tens/teens
// word, "o"/"oh" followed by a single digit word, or a tens-plus-units
// compound. Anything wider (e.g. a long phone-like digit run) is
// rejected, which is what keeps "one two three one two three..." out of
// the time tagger.
func parseMinutes(tokens []string) (int, bool) {
	switch len(tokens) {
	case 1:
		if v, ok := cardinalOnes[tokens[0]]; ok && v >= 10 {
			return int(v), true
		}
		if v, ok := cardinalTens[tokens[0]]; ok {
			return int(v), true
		}
		return 0, false
	case 2:
		if tokens[0] == "o" || tokens[0] == "oh" {
			if d, ok := digitWords[tokens[1]]; ok {
				return int(d - '0'), true
			}
			return 0, false
		}
		tens, ok := cardinalTens[tokens[0]]
		if !ok {
			return 0, false
		}
		ones, ok := cardinalOnes[tokens[1]]
		if !ok || ones >= 10 {
			return 0, false
		}
		return int(tens + ones), true
	default:
		return 0, false
	}
}
