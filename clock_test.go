package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"hour minute with period", "two thirty p m", "02:30 p.m.", true},
		{"quarter past", "quarter past three", "03:15", true},
		{"half past", "half past seven", "07:30", true},
		{"oclock", "five o'clock", "05:00", true},
		{"quarter to", "quarter to five", "04:45", true},
		{"minutes to", "ten minutes to six", "05:50", true},
		{"oh minute compound", "three oh five", "03:05", true},
		{"with timezone", "nine p m est", "09:00 p.m. est", true},
		{"single word no period is not a time", "one", "", false},
		{"ambiguous with year rejected", "eleven fifty five", "", false},
		{"phone-like sequence rejected", "one two three one two three five six seven eight", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
