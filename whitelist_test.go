package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseWhitelist(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"lowercase substring", "mister smith", "mr. smith", true},
		{"case preserved", "Mister Smith", "Mr. Smith", true},
		{"misses title", "misses jones", "mrs. jones", true},
		{"doctor title", "doctor dao", "dr. dao", true},
		{"saint title", "saint george", "st. george", true},
		{"phrase substring", "i like for example ice cream", "i like e.g. ice cream", true},
		{"tech term exact", "r t x", "RTX", true},
		{"tech term exact no match as substring", "r t x eleven fifty", "", false},
		{"s and p substring", "s and p five hundred", "S&P 500", true},
		{"seven eleven substring", "seven eleven stores", "7-eleven stores", true},
		{"cat five e exact", "cat five e", "CAT5e", true},
		{"cudnn exact", "c u d n n", "cuDNN", true},
		{"pcie exact", "p c i e x eight", "PCIe x8", true},
		{"lga substring", "l g a eleven fifty", "LGA 1150", true},
		{"no match", "that sounds fine", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseWhitelist(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
