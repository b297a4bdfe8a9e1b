package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseOrdinal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"first", "first", "1st", true},
		{"second", "second", "2nd", true},
		{"third", "third", "3rd", true},
		{"eleventh stays th", "eleventh", "11th", true},
		{"twelfth stays th", "twelfth", "12th", true},
		{"thirteenth stays th", "thirteenth", "13th", true},
		{"fourth", "fourth", "4th", true},
		{"twentieth", "twentieth", "20th", true},
		{"twenty first", "twenty first", "21st", true},
		{"thirty second", "thirty second", "32nd", true},
		{"hundredth", "hundredth", "100th", true},
		{"two hundredth", "two hundredth", "200th", true},
		{"not an ordinal", "twenty", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseOrdinal(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
