package itn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	itn "github.com/speechnorm/go-itn"
)

func TestParseMeasure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"simple unit", "ten kilometers", "10 km", true},
		{"per compound", "two hundred kilometers per hour", "200 km/h", true},
		{"miles per hour special", "sixty miles per hour", "60 mph", true},
		{"square unit", "five square kilometers", "5 km²", true},
		{"square feet special", "ten square feet", "10 sq ft", true},
		{"cubic unit", "three cubic meters", "3 m³", true},
		{"percent", "eighteen percent", "18 %", true},
		{"decimal value", "two point five kilometers", "2.5 km", true},
		{"per square compound", "ten pounds per square inch", "10 lb/in²", true},
		{"kilowatt hour compound", "two kilo watt hours", "2 kWh", true},
		{"kilograms force standalone", "fifty kilograms force", "50 kgf", true},
		{"c c volume", "one hundred fifty c c", "150 cc", true},
		{"degrees celsius requires prefix", "eighteen degrees celsius", "18 °C", true},
		{"bare celsius does not match", "eighteen celsius", "", false},
		{"kelvin", "three hundred kelvin", "300 K", true},
		{"megahertz", "two hundred megahertz", "200 mhz", true},
		{"gigabytes", "five gigabytes", "5 gb", true},
		{"gigabits per second", "ten gigabits per second", "10 gbps", true},
		{"not a measure", "hello world", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := itn.ParseMeasure(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
