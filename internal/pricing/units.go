package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

type Unit string

const (
	Inches     Unit = "Inches"
	Centimeter Unit = "Centimeter"
	Feet       Unit = "Feet"
)

var Units = []Unit{Inches, Centimeter, Feet}

const (
	cmPerInch   = 2.54
	inchPerFoot = 12
)

// ToInches converts value to inches. Unknown units are treated as inches.
func ToInches(value float64, unit Unit) float64 {
	switch unit {
	case Centimeter:
		return value / cmPerInch
	case Feet:
		return value * inchPerFoot
	default:
		return value
	}
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseFloat reads the numeric prefix of s ("84in" -> 84). ok is false when
// there is no usable number.
func parseFloat(s string) (float64, bool) {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseLength parses a length field, falling back to def when the value is
// missing, malformed or not positive.
func ParseLength(s string, def float64) float64 {
	v, ok := parseFloat(s)
	if !ok || v <= 0 {
		return def
	}
	return v
}

// ParseThickness falls back to def on malformed or zero input. Negative
// thickness is kept.
func ParseThickness(s string, def float64) float64 {
	v, ok := parseFloat(s)
	if !ok || v == 0 {
		return def
	}
	return v
}
