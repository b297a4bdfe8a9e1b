package itn

import (
	"strings"

	"github.com/martinlindhe/unit"
)

// unitMapping is the (spoken unit, symbol) table from spec.md section
// 4.7. unitSymbol matches a unit phrase against it by whole-phrase
// equality, so the order of entries does not affect the result; "square"
// and "cubic" modifiers are not table entries but are handled by
// matchUnitPhrase. Ported from
// _examples/original_source/src/taggers/measure.rs's get_unit_mappings().
//
// Temperature only matches the "degrees"/"degree"-prefixed spoken forms,
// per the original (measure.rs:249-252); bare "celsius"/"fahrenheit" are
// not unit words on their own.
var unitMapping = []struct {
	spoken string
	symbol string
}{
	// Compound/special units.
	{"kilo watt hours", "kWh"},
	{"giga watt hours", "gWh"},
	{"mega watt hours", "MWh"},
	{"watt hours", "Wh"},
	{"kilograms force", "kgf"},
	{"astronomical units", "au"},
	{"miles per hour", "mph"},
	{"kilograms force per square centimeter", "kgf/cm²"},

	// Length.
	{"kilometers", "km"}, {"kilometer", "km"}, {"km", "km"},
	{"centimeters", "cm"}, {"centimeter", "cm"},
	{"millimeters", "mm"}, {"millimeter", "mm"},
	{"micrometers", "μm"}, {"micrometer", "μm"},
	{"nanometers", "nm"}, {"nanometer", "nm"},
	{"decimeters", "dm"}, {"decimeter", "dm"}, {"deci meters", "dm"}, {"deci meter", "dm"},
	{"meters", "m"}, {"meter", "m"},
	{"miles", "mi"}, {"mile", "mi"},
	{"yards", "yd"}, {"yard", "yd"},
	{"feet", "ft"}, {"foot", "ft"},
	{"inches", "in"}, {"inch", "in"},

	// Mass.
	{"kilograms", "kg"}, {"kilogram", "kg"},
	{"grams", "g"}, {"gram", "g"},
	{"pounds", "lb"}, {"pound", "lb"},
	{"ounces", "oz"}, {"ounce", "oz"},

	// Volume.
	{"kilo liters", "kl"},
	{"milliliters", "ml"}, {"milliliter", "ml"},
	{"liters", "L"}, {"liter", "L"},
	{"gallons", "gal"}, {"gallon", "gal"},
	{"c c", "cc"},

	// Area.
	{"hectares", "ha"}, {"hectare", "ha"},

	// Time.
	{"hours", "h"}, {"hour", "h"},
	{"minutes", "min"}, {"minute", "min"},
	{"seconds", "s"}, {"second", "s"},

	// Data.
	{"peta bytes", "pb"}, {"petabytes", "pb"},
	{"giga bytes", "gb"}, {"gigabytes", "gb"},
	{"mega bytes", "mb"}, {"megabytes", "mb"},
	{"kilo bytes", "kb"}, {"kilobytes", "kb"}, {"kilobits", "kb"},
	{"bytes", "b"},

	// Power/energy.
	{"megawatts", "mW"}, {"megawatt", "mW"},
	{"kilowatts", "kW"}, {"kilowatt", "kW"},
	{"gigawatts", "gW"},
	{"watts", "W"}, {"watt", "W"},
	{"horsepower", "hp"},

	// Data rates.
	{"gigabits per second", "gbps"}, {"gigabit per second", "gbps"},
	{"megabits per second", "mbps"}, {"megabit per second", "mbps"},

	// Temperature.
	{"degrees celsius", "°C"}, {"degree celsius", "°C"},
	{"degrees fahrenheit", "°F"}, {"degree fahrenheit", "°F"},
	{"kelvin", "K"},

	// Frequency.
	{"megahertz", "mhz"}, {"kilohertz", "khz"}, {"hertz", "hz"},

	// Electrical.
	{"milli volt", "mv"}, {"millivolts", "mv"},
	{"volts", "v"}, {"volt", "v"},
	{"mega siemens", "ms"},

	// Light.
	{"lumens", "lm"}, {"lumen", "lm"},

	// Percent.
	{"percent", "%"},
}

func unitSymbol(tokens []string) (string, bool) {
	phrase := strings.Join(tokens, " ")
	for _, u := range unitMapping {
		if phrase == u.spoken {
			return u.symbol, true
		}
	}
	return "", false
}

// ParseMeasure recognizes "<value> <unit>" shapes, including square/cubic
// modifiers and "per" compounds, from spec.md section 4.7.
func ParseMeasure(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	tokens := splitTokens(lower)
	if len(tokens) < 2 {
		return "", false
	}

	for k := len(tokens) - 1; k >= 1; k-- {
		valueTokens := tokens[:k]
		unitTokens := tokens[k:]
		value, ok := measureValue(valueTokens)
		if !ok {
			continue
		}
		sym, ok := matchUnitPhrase(unitTokens)
		if !ok {
			continue
		}
		return value + " " + sym, true
	}
	return "", false
}

func measureValue(tokens []string) (string, bool) {
	if containsToken(tokens, "point") {
		return ParseDecimal(strings.Join(tokens, " "))
	}
	return ParseCardinal(strings.Join(tokens, " "))
}

// matchUnitPhrase resolves the unit portion of a measure phrase: bare
// units, square/cubic modifiers, and "per" compounds. A literal whole-
// phrase match against unitMapping is tried first, so compound entries
// like "miles per hour" -> "mph" or "gigabits per second" -> "gbps" win
// over the generic "<numerator>/<denominator>" composition below.
func matchUnitPhrase(tokens []string) (string, bool) {
	if sym, ok := unitSymbol(tokens); ok {
		return sym, true
	}

	if perIdx := indexOf(tokens, "per"); perIdx != -1 {
		return matchPerCompound(tokens[:perIdx], tokens[perIdx+1:])
	}

	switch {
	case len(tokens) >= 2 && tokens[0] == "square":
		rest := tokens[1:]
		phrase := strings.Join(rest, " ")
		if phrase == "feet" {
			return "sq ft", true
		}
		if phrase == "miles" {
			return "sq mi", true
		}
		sym, ok := unitSymbol(rest)
		if !ok {
			return "", false
		}
		return sym + "²", true
	case len(tokens) >= 2 && tokens[0] == "cubic":
		sym, ok := unitSymbol(tokens[1:])
		if !ok {
			return "", false
		}
		return sym + "³", true
	default:
		return unitSymbol(tokens)
	}
}

// matchPerCompound resolves "<numerator> per <denominator>" unit phrases
// that aren't one of unitMapping's literal compound entries (those are
// caught by matchUnitPhrase before this is called).
func matchPerCompound(numerator, denominator []string) (string, bool) {
	if len(denominator) >= 2 && denominator[0] == "square" {
		denSym, ok := unitSymbol(denominator[1:])
		if !ok {
			return "", false
		}
		if len(numerator) == 0 {
			return "/" + denSym + "²", true
		}
		numSym, ok := unitSymbol(numerator)
		if !ok {
			return "", false
		}
		return numSym + "/" + denSym + "²", true
	}
	if len(denominator) >= 2 && denominator[0] == "cubic" {
		denSym, ok := unitSymbol(denominator[1:])
		if !ok {
			return "", false
		}
		if len(numerator) == 0 {
			return "/" + denSym + "³", true
		}
		numSym, ok := unitSymbol(numerator)
		if !ok {
			return "", false
		}
		return numSym + "/" + denSym + "³", true
	}

	numSym, ok := unitSymbol(numerator)
	if !ok {
		return "", false
	}
	denSym, ok := unitSymbol(denominator)
	if !ok {
		return "", false
	}
	return numSym + "/" + denSym, true
}

// CanonicalMeasure converts a (value, symbol) pair, as produced by
// ParseMeasure, into a canonical SI quantity where martinlindhe/unit has
// a matching dimension. It reports false for symbols with no supported
// conversion (percentages, temperatures, compound rates).
//
// This does not change ParseMeasure's documented text output; it is an
// additional capability for callers that need a canonical numeric value,
// for example to aggregate measurements recorded in mixed units.
func CanonicalMeasure(value float64, symbol string) (float64, string, bool) {
	switch symbol {
	case "km":
		return (unit.Length(value) * unit.Kilometer).Meters(), "m", true
	case "m":
		return value, "m", true
	case "cm":
		return (unit.Length(value) * unit.Centimeter).Meters(), "m", true
	case "mm":
		return (unit.Length(value) * unit.Millimeter).Meters(), "m", true
	case "mi":
		return (unit.Length(value) * unit.Mile).Meters(), "m", true
	case "yd":
		return (unit.Length(value) * unit.Yard).Meters(), "m", true
	case "ft":
		return (unit.Length(value) * unit.Foot).Meters(), "m", true
	case "in":
		return (unit.Length(value) * unit.Inch).Meters(), "m", true
	case "kg":
		return value, "kg", true
	case "g":
		return (unit.Mass(value) * unit.Gram).Kilograms(), "kg", true
	case "lb":
		return (unit.Mass(value) * unit.AvoirdupoisPound).Kilograms(), "kg", true
	case "oz":
		return (unit.Mass(value) * unit.AvoirdupoisOunce).Kilograms(), "kg", true
	case "L":
		return value, "L", true
	case "gal":
		return (unit.Volume(value) * unit.USLiquidGallon).Liters(), "L", true
	default:
		return 0, "", false
	}
}

// ConvertMeasure converts a value expressed in fromSymbol into toSymbol,
// going through CanonicalMeasure's shared SI base. It reports false if
// either symbol lacks a canonical conversion or the two are not the same
// physical dimension (e.g. converting "kg" to "m").
func ConvertMeasure(value float64, fromSymbol, toSymbol string) (float64, bool) {
	canonical, fromBase, ok := CanonicalMeasure(value, fromSymbol)
	if !ok {
		return 0, false
	}
	_, toBase, ok := CanonicalMeasure(1, toSymbol)
	if !ok || toBase != fromBase {
		return 0, false
	}
	switch toSymbol {
	case "km":
		return unit.Length(canonical).Kilometers(), true
	case "m":
		return canonical, true
	case "cm":
		return unit.Length(canonical).Centimeters(), true
	case "mm":
		return unit.Length(canonical).Millimeters(), true
	case "mi":
		return unit.Length(canonical).Miles(), true
	case "yd":
		return unit.Length(canonical).Yards(), true
	case "ft":
		return unit.Length(canonical).Feet(), true
	case "in":
		return unit.Length(canonical).Inches(), true
	case "kg":
		return canonical, true
	case "g":
		return unit.Mass(canonical).Grams(), true
	case "lb":
		return unit.Mass(canonical).AvoirdupoisPounds(), true
	case "oz":
		return unit.Mass(canonical).AvoirdupoisOunces(), true
	case "L":
		return canonical, true
	case "gal":
		return unit.Volume(canonical).USLiquidGallons(), true
	default:
		return 0, false
	}
}
