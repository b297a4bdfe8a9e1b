package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParsePunctuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"comma", "comma", ",", true},
		{"exclamation point", "exclamation point", "!", true},
		{"exclamation mark", "exclamation mark", "!", true},
		{"question mark", "question mark", "?", true},
		{"period exact", "period", ".", true},
		{"dot", "dot", ".", true},
		{"case insensitive", "Period", ".", true},
		{"not a whole-input match", "periodic", "", false},
		{"not punctuation", "the periodic table", "", false},
		{"left parenthesis", "left parenthesis", "(", true},
		{"right parenthesis", "right parenthesis", ")", true},
		{"open bracket", "open bracket", "[", true},
		{"close bracket", "close bracket", "]", true},
		{"left brace", "left brace", "{", true},
		{"right brace", "right brace", "}", true},
		{"double quote", "double quote", "\"", true},
		{"single quote", "single quote", "'", true},
		{"forward slash", "forward slash", "/", true},
		{"back slash", "back slash", "\\", true},
		{"bare slash", "slash", "/", true},
		{"ellipsis", "ellipsis", "...", true},
		{"plus", "plus", "+", true},
		{"equals", "equals", "=", true},
		{"tilde", "tilde", "~", true},
		{"underscore", "underscore", "_", true},
		{"pipe", "pipe", "|", true},
		{"hash", "hash", "#", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParsePunctuation(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
