package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

// TestNormalizeEndToEnd exercises the concrete single-expression scenarios.
func TestNormalizeEndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"cardinal", "two hundred thirty two", "232"},
		{"negative compound", "minus twenty five thousand thirty seven", "-25037"},
		{"ordinal", "first", "1st"},
		{"compound ordinal", "twenty first", "21st"},
		{"month ordinal year", "january fifth twenty twenty five", "january 5 2025"},
		{"time with period", "two thirty p m", "02:30 p.m."},
		{"money", "five dollars and fifty cents", "$5.50"},
		{"measure per compound", "two hundred kilometers per hour", "200 km/h"},
		{"email single letter local part", "a at gmail dot com", "a@gmail.com"},
		{"ip address", "one two three dot one two three dot o dot four o", "123.123.0.40"},
		{"zero stays a word", "zero", "zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itn.Normalize(tt.input))
		})
	}
}

// TestNormalizeSentenceEndToEnd exercises the concrete sentence-mode
// scenarios.
func TestNormalizeSentenceEndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"compound cardinal span", "I have twenty one apples", "I have 21 apples"},
		{"no lexicon hits", "hello world", "hello world"},
		{"spoken comma", "yes comma I agree", "yes , I agree"},
		{"no partial word match", "the periodic table", "the periodic table"},
		{"empty input", "", ""},
		{"whitespace only input", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itn.NormalizeSentence(tt.input))
		})
	}
}

// TestNormalizeDeterministic checks property 1: repeated calls on the same
// input return the same output.
func TestNormalizeDeterministic(t *testing.T) {
	inputs := []string{"two hundred thirty two", "five dollars", "hello world", ""}
	for _, in := range inputs {
		first := itn.Normalize(in)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, itn.Normalize(in))
		}
	}
}

// TestPunctuationRequiresWholeInput checks property 6: a punctuation phrase
// embedded as a substring among other non-matching words must not collapse
// the whole expression down to the bare symbol.
func TestPunctuationRequiresWholeInput(t *testing.T) {
	got := itn.Normalize("please insert a comma here")
	assert.NotEqual(t, ",", got)
}

// TestSentenceScannerPreservesUnmatchedTokenCase checks property 3/8: tokens
// with no lexicon hit keep their original casing and order.
func TestSentenceScannerPreservesUnmatchedTokenCase(t *testing.T) {
	got := itn.NormalizeSentence("Hello Beautiful World")
	assert.Equal(t, "Hello Beautiful World", got)
}

// TestAddRuleThenRemove checks property 5: add_rule, then parse, then
// remove_rule, then parse again.
func TestAddRuleThenRemove(t *testing.T) {
	e := itn.NewEngine()
	e.AddRule("my co", "MyCo Inc.")
	assert.Equal(t, "MyCo Inc.", e.Normalize("my co"))
	assert.True(t, e.RemoveRule("my co"))
	assert.Equal(t, "my co", e.Normalize("my co"))
}
