package itn

import "strings"

// ParseElectronic recognizes email addresses, URLs, and bare domains
// from spec.md section 4.9.
func ParseElectronic(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	for _, prefix := range []string{
		"h t t p s colon slash slash ",
		"h t t p colon slash slash ",
		"https colon slash slash ",
		"http colon slash slash ",
		"w w w dot ",
	} {
		if strings.HasPrefix(lower, prefix) {
			remainder := trimmed[len(prefix):]
			domain, ok := parseDomain(remainder)
			if !ok {
				return "", false
			}
			return domain, true
		}
	}

	if idx := indexOfSubstring(lower, " at "); idx != -1 {
		rhs := lower[idx+len(" at "):]
		if strings.Contains(rhs, " dot ") {
			local := emailLocalPart(trimmed[:idx])
			domain, ok := parseDomain(trimmed[idx+len(" at "):])
			if !ok {
				return "", false
			}
			return local + "@" + domain, true
		}
	}

	if strings.Contains(lower, " dot ") {
		domain, ok := parseDomain(trimmed)
		if ok {
			return domain, true
		}
	}

	return "", false
}

func indexOfSubstring(s, sub string) int {
	return strings.Index(s, sub)
}

// emailLocalPart assembles the portion of an email address before '@'.
func emailLocalPart(part string) string {
	tokens := splitTokens(strings.TrimSpace(part))
	var b strings.Builder
	for _, tok := range tokens {
		lowerTok := strings.ToLower(tok)
		switch lowerTok {
		case "dot":
			// "dot" is literal at every position, including first, per
			// spec.md section 4.9.
			b.WriteString(".")
			continue
		case "underscore":
			b.WriteString("_")
			continue
		case "dash", "hyphen":
			b.WriteString("-")
			continue
		}
		if d, ok := digitWords[lowerTok]; ok {
			b.WriteByte(d)
			continue
		}
		if len(tok) == 1 {
			b.WriteString(tok)
			continue
		}
		b.WriteString(lowerTok)
	}
	return b.String()
}

// parseDomain assembles a dot-delimited domain from spoken tokens,
// requiring at least one literal '.' in the result.
func parseDomain(part string) (string, bool) {
	tokens := splitTokens(strings.TrimSpace(part))
	if len(tokens) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, tok := range tokens {
		lowerTok := strings.ToLower(tok)
		switch lowerTok {
		case "dot":
			b.WriteString(".")
			continue
		case "slash":
			b.WriteString("/")
			continue
		case "colon":
			b.WriteString(":")
			continue
		case "dash", "hyphen":
			b.WriteString("-")
			continue
		}
		if d, ok := digitWords[lowerTok]; ok {
			b.WriteByte(d)
			continue
		}
		if len(tok) == 1 {
			b.WriteString(lowerTok)
			continue
		}
		b.WriteString(lowerTok)
	}
	result := b.String()
	if !strings.Contains(result, ".") {
		return "", false
	}
	return result, true
}
