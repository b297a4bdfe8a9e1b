package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"month day year", "january fifth twenty twenty five", "january 5 2025", true},
		{"month day year preserves month case", "January fifth twenty twenty five", "January 5 2025", true},
		{"the ordinal of month", "the fifth of january twenty twenty five", "5 january 2025", true},
		{"month cardinal day", "july four", "july 4", true},
		{"month year no day", "july two thousand twelve", "july 2012", true},
		{"quarter", "first quarter of twenty twenty", "Q1 2020", true},
		{"era bc", "seven fifty b c", "750BC", true},
		{"era ad", "nineteen oh five a d", "1905AD", true},
		{"decade with century", "nineteen nineties", "1990s", true},
		{"decade bare", "twenties", "20s", true},
		{"standalone year two thousand", "two thousand twelve", "2012", true},
		{"standalone year nineteen oh five", "nineteen oh five", "1905", true},
		{"standalone compact year", "twenty twenty five", "2025", true},
		{"not a date", "hello world", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
