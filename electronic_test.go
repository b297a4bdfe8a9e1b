package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseElectronic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"www url", "w w w dot example dot com", "example.com", true},
		{"https url", "h t t p s colon slash slash example dot com", "example.com", true},
		{"email", "john dot doe at example dot com", "john.doe@example.com", true},
		{"email with digits", "john nine nine at example dot com", "john99@example.com", true},
		{"bare domain", "example dot com", "example.com", true},
		{"not electronic", "hello there", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseElectronic(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
