package itn

import "strings"

// defaultMaxSpan is the window width NormalizeSentence uses when the
// caller doesn't specify one.
const defaultMaxSpan = 16

// sentenceTagger is one entry in the sentence scanner's tagger set: a
// pure span-matching function paired with its tie-break priority. The
// word and telephone taggers are deliberately excluded from this set;
// spec.md section 4.14 calls out their false-positive rate on natural
// language as too high for windowed scanning.
type sentenceTagger struct {
	name     string
	priority int
	try      func(span string) (string, bool)
}

// sentenceTaggers lists the non-custom sentence-safe taggers in priority
// order. Custom rules (priority 110) are tried separately per span since
// they are a method on *Engine, not a free function.
var sentenceTaggers = []sentenceTagger{
	{"whitelist", 100, ParseWhitelist},
	{"punctuation", 98, ParsePunctuation},
	{"money", 95, ParseMoney},
	{"measure", 90, ParseMeasure},
	{"date", 88, ParseDate},
	{"time", 85, ParseTime},
	{"electronic", 82, ParseElectronic},
	{"decimal", 80, ParseDecimal},
	{"ordinal", 75, ParseOrdinal},
}

const cardinalPriority = 70
const customPriority = 110

// NormalizeSentence tokenizes input on whitespace and applies [Engine.
// NormalizeSentence]'s default 16-token window to the default engine.
func NormalizeSentence(input string) string {
	return defaultEngine.NormalizeSentence(input)
}

// NormalizeSentence scans a full utterance with the default 16-token
// window. See [Engine.NormalizeSentenceWithMaxSpan].
func (e *Engine) NormalizeSentence(input string) string {
	return e.NormalizeSentenceWithMaxSpan(input, defaultMaxSpan)
}

// NormalizeSentenceWithMaxSpan tokenizes input on whitespace and applies
// [Engine.NormalizeSentenceWithMaxSpan]'s windowed scan to the default
// engine.
func NormalizeSentenceWithMaxSpan(input string, maxSpan int) string {
	return defaultEngine.NormalizeSentenceWithMaxSpan(input, maxSpan)
}

// NormalizeSentenceWithMaxSpan tokenizes input on whitespace and slides a
// window of up to maxSpan tokens across the stream. At each start
// position, spans are tried from longest to shortest; the first span
// length with any accepting tagger wins, with ties among taggers at that
// length broken by the higher priority score. A candidate is rejected if
// its output equals the span's original text. Tokens that match nothing
// are emitted unchanged, preserving their original case, and the scan
// advances by one token.
//
// A maxSpan of 0 is treated as 1. Empty or whitespace-only input returns
// the empty string.
//
// Example:
//
//	e := NewEngine()
//	e.NormalizeSentence("I have twenty one apples") // "I have 21 apples"
func (e *Engine) NormalizeSentenceWithMaxSpan(input string, maxSpan int) string {
	if maxSpan <= 0 {
		maxSpan = 1
	}
	tokens := splitTokens(input)
	if len(tokens) == 0 {
		return ""
	}
	lowerTokens := make([]string, len(tokens))
	for i, t := range tokens {
		lowerTokens[i] = strings.ToLower(t)
	}

	var out []string
	i := 0
	for i < len(tokens) {
		maxJ := i + maxSpan
		if maxJ > len(tokens) {
			maxJ = len(tokens)
		}
		matched := false
		for j := maxJ; j > i; j-- {
			spanOrig := strings.Join(tokens[i:j], " ")
			spanLower := strings.Join(lowerTokens[i:j], " ")
			if written, ok := bestSentenceMatch(e, spanLower, j-i); ok && written != spanOrig {
				out = append(out, written)
				i = j
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}
	return strings.Join(out, " ")
}

// bestSentenceMatch tries every sentence-safe tagger against span
// (already lowercased), returning the output of whichever accepting
// tagger has the highest priority.
func bestSentenceMatch(e *Engine, span string, spanTokens int) (string, bool) {
	bestPriority := -1
	bestOutput := ""
	found := false

	if out, ok := e.parseCustom(span); ok {
		bestPriority, bestOutput, found = customPriority, out, true
	}
	for _, t := range sentenceTaggers {
		if t.priority <= bestPriority {
			continue
		}
		if out, ok := t.try(span); ok {
			bestPriority, bestOutput, found = t.priority, out, true
		}
	}
	if spanTokens <= 4 && cardinalPriority > bestPriority {
		if out, ok := ParseCardinal(span); ok {
			bestPriority, bestOutput, found = cardinalPriority, out, true
		}
	}
	return bestOutput, found
}
