package colormodel

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// similarThreshold is the mean per-channel difference at or below which two
// colors count as the same shade.
const similarThreshold = 10

// Comparison describes how two colors relate.
type Comparison struct {
	A                  string  `json:"a"`
	B                  string  `json:"b"`
	AverageChannelDiff float64 `json:"average_channel_diff"` // Mean |ΔR|,|ΔG|,|ΔB|, 0-255
	DeltaE             float64 `json:"delta_e"`              // CIEDE2000, 0-100
	ContrastRatio      float64 `json:"contrast_ratio"`       // WCAG 2 ratio, 1-21
	Similar            bool    `json:"similar"`
	PassesAA           bool    `json:"passes_aa"`       // ratio >= 4.5, normal text
	PassesAALarge      bool    `json:"passes_aa_large"` // ratio >= 3, large text
	PassesAAA          bool    `json:"passes_aaa"`      // ratio >= 7
}

// Compare measures the difference and legibility of two hex colors. It
// returns false if either is malformed.
func Compare(a, b string) (*Comparison, bool) {
	ca, ok := ParseHex(a)
	if !ok {
		return nil, false
	}
	cb, ok := ParseHex(b)
	if !ok {
		return nil, false
	}
	return CompareRGB(ca, cb), true
}

// CompareRGB measures the difference and legibility of two colors.
func CompareRGB(a, b RGB) *Comparison {
	diff := float64(absDiff(a.R, b.R)+absDiff(a.G, b.G)+absDiff(a.B, b.B)) / 3.0
	ratio := ContrastRatio(a, b)
	deltaE := toColorful(a).DistanceCIEDE2000(toColorful(b)) * 100

	return &Comparison{
		A:                  a.Hex(),
		B:                  b.Hex(),
		AverageChannelDiff: math.Round(diff*100) / 100,
		DeltaE:             math.Round(deltaE*100) / 100,
		ContrastRatio:      math.Round(ratio*100) / 100,
		Similar:            diff <= similarThreshold,
		PassesAA:           ratio >= 4.5,
		PassesAALarge:      ratio >= 3,
		PassesAAA:          ratio >= 7,
	}
}

// RelativeLuminance returns the WCAG relative luminance of c, 0 for black
// through 1 for white.
func RelativeLuminance(c RGB) float64 {
	r, g, b := toColorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors. The
// order of the arguments does not matter.
func ContrastRatio(a, b RGB) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
