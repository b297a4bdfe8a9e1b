package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"dollars and cents", "five dollars and fifty cents", "$5.50", true},
		{"implied cents", "five dollars fifty", "$5.50", true},
		{"single cent", "one cent", "$0.01", true},
		{"cents only", "fifty cents", "$0.50", true},
		{"one dollar", "one dollar", "$1", true},
		{"one dollars rejected", "one dollars", "", false},
		{"decimal dollars", "sixty point two dollars", "$60.2", true},
		{"point dollars", "point five dollars", "$.5", true},
		{"scale dollars", "two million dollars", "$2 million", true},
		{"scale decimal dollars", "two point five billion dollars", "$2.5 billion", true},
		{"won", "ten thousand won", "₩10 thousand", true},
		{"yen", "five hundred yen", "¥500", true},
		{"yuan", "one hundred yuan", "100 yuan", true},
		{"shorthand hundred", "one hundred dollars", "$100", true},
		{"shorthand compound", "one fifty five dollars", "$155", true},
		{"not money", "hello", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseMoney(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
