package pricing

import (
	"math"
	"strings"
)

const (
	SizeSingle = "Single"
	SizeDouble = "Double"
	SizeQueen  = "Queen"
	SizeKing   = "King"

	CustomDimensions = "custom"

	DefaultDimensions = "72x30"
	DefaultThickness  = "4"

	referenceLength    = 72.0
	referenceWidth     = 30.0
	referenceThickness = 4.0

	thicknessStep   = 500.0
	customSurcharge = 500.0
)

var sizeMultipliers = map[string]float64{
	SizeSingle: 1.0,
	SizeDouble: 1.3,
	SizeQueen:  1.5,
	SizeKing:   1.8,
}

var (
	Sizes            = []string{SizeSingle, SizeDouble, SizeQueen, SizeKing}
	PresetDimensions = []string{"72x30", "78x30", "75x30", "84x30", "72x36", "75x36", "78x36", "84x36"}
	Thicknesses      = []string{"4", "5", "6", "8"}
)

type Configuration struct {
	Size         string `json:"size"`
	Dimensions   string `json:"dimensions"`
	CustomLength string `json:"custom_length"`
	CustomWidth  string `json:"custom_width"`
	Measurement  Unit   `json:"measurement"`
	Thickness    string `json:"thickness"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Size:         SizeSingle,
		Dimensions:   DefaultDimensions,
		CustomLength: "72",
		CustomWidth:  "30",
		Measurement:  Inches,
		Thickness:    DefaultThickness,
	}
}

func (c Configuration) IsCustom() bool {
	return c.Dimensions == CustomDimensions
}

// ResolvedDimensions is the literal "LxW" the configuration stands for.
func (c Configuration) ResolvedDimensions() string {
	if c.IsCustom() {
		return c.CustomLength + "x" + c.CustomWidth
	}
	return c.Dimensions
}

// Footprint returns length and width in inches.
func (c Configuration) Footprint() (float64, float64) {
	var rawL, rawW string
	if c.IsCustom() {
		rawL, rawW = c.CustomLength, c.CustomWidth
	} else {
		parts := strings.Split(c.Dimensions, "x")
		rawL = parts[0]
		if len(parts) > 1 {
			rawW = parts[1]
		}
	}
	l := ParseLength(rawL, referenceLength)
	w := ParseLength(rawW, referenceWidth)
	return ToInches(l, c.Measurement), ToInches(w, c.Measurement)
}

func SizeMultiplier(size string) float64 {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return 1.0
}

// Compute derives the unit price of a product under c. Steps compound in a
// fixed order and only the final value is rounded.
func Compute(basePrice int64, c Configuration) int64 {
	price := float64(basePrice)
	price *= SizeMultiplier(c.Size)

	l, w := c.Footprint()
	price *= (l * w) / (referenceLength * referenceWidth)

	thickness := ParseThickness(c.Thickness, referenceThickness)
	price += (thickness - referenceThickness) * thicknessStep

	if c.IsCustom() {
		price += customSurcharge
	}

	return roundHalfUp(price)
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
