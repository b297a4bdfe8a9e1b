package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseCardinal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"zero is a compatibility quirk", "zero", "zero", true},
		{"single digit", "seven", "7", true},
		{"teen", "seventeen", "17", true},
		{"bare tens", "sixty", "60", true},
		{"compound tens", "twenty three", "23", true},
		{"hundred", "two hundred", "200", true},
		{"hundred with remainder", "two hundred thirty two", "232", true},
		{"eleven hundred", "eleven hundred", "1100", true},
		{"eleven hundred with remainder", "eleven hundred twenty one", "1121", true},
		{"twenty one hundred", "twenty one hundred", "2100", true},
		{"thousand", "twenty five thousand thirty seven", "25037", true},
		{"million", "three million", "3000000", true},
		{"and is dropped", "one hundred and five", "105", true},
		{"a is dropped", "a hundred", "100", true},
		{"negative minus", "minus twenty five thousand thirty seven", "-25037", true},
		{"negative word", "negative five", "-5", true},
		{"unknown token fails", "banana", "", false},
		{"empty fails", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseCardinal(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseCardinalSextillionScale(t *testing.T) {
	got, ok := itn.ParseCardinal("one sextillion")
	assert.True(t, ok)
	assert.Equal(t, "1000000000000000000000", got)
}
