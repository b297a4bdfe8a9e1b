package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseTelephone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			"ip address with o as zero",
			"one two three dot one two three dot o dot four o",
			"123.123.0.40", true,
		},
		{"ssn", "my ssn four five six one two three four five six", "my SSN is 456-12-3456", true},
		{"phone number ten digits", "five five five one two three four five six seven", "555-123-4567", true},
		{"phone number with country code", "plus one five five five one two three four five six seven", "1 555-123-4567", true},
		{"gpu code", "r t x ten eighty", "RTX1080", true},
		{"x86 code", "x eighty six", "x86", true},
		{"plain cardinal is not telephone", "two hundred thirty two", "", false},
		{"no number word fails", "hello there", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseTelephone(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
