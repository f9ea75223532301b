// Package suggest derives tints, shades and hue harmonies from a base color.
//
// Every suggestion is computed independently from the base color's HSL form:
// tints and shades move lightness by fixed steps, harmonies rotate the hue by
// fixed angles while keeping saturation and lightness. Results are not cached;
// callers recompute whenever the base color changes.
package suggest

import "github.com/ironsheep/color-tools-mcp/internal/colormodel"

// Lightness steps (percentage points) for tints; shades use the negatives.
var lightnessSteps = []int{10, 20, 30}

// Hue offsets in degrees for each harmony.
var (
	analogousOffsets          = []int{-30, 30}
	triadicOffsets            = []int{120, 240}
	splitComplementaryOffsets = []int{150, 210}
)

const complementaryOffset = 180

// Set is the fixed bundle of suggestions for one base color.
type Set struct {
	Base               string   `json:"base"`
	Tints              []string `json:"tints"`               // +10, +20, +30 lightness
	Shades             []string `json:"shades"`              // -10, -20, -30 lightness
	Analogous          []string `json:"analogous"`           // -30°, +30°
	Triadic            []string `json:"triadic"`             // +120°, +240°
	SplitComplementary []string `json:"split_complementary"` // +150°, +210°
	Complementary      string   `json:"complementary"`       // +180°
}

// Generate computes the full suggestion set for a hex color. It returns false
// if base is not a valid hex color.
//
// Near the ends of the lightness range several tints or shades can collapse
// onto the same color (a near-white base has three near-white tints). That is
// expected. For achromatic bases every harmony equals the base color.
func Generate(base string) (Set, bool) {
	c, ok := colormodel.ParseHex(base)
	if !ok {
		return Set{}, false
	}
	hsl := colormodel.RGBToHSL(c)

	set := Set{
		Base:          c.Hex(),
		Complementary: shift(hsl, complementaryOffset),
	}
	for _, step := range lightnessSteps {
		set.Tints = append(set.Tints, lighten(hsl, step))
		set.Shades = append(set.Shades, lighten(hsl, -step))
	}
	set.Analogous = shiftAll(hsl, analogousOffsets)
	set.Triadic = shiftAll(hsl, triadicOffsets)
	set.SplitComplementary = shiftAll(hsl, splitComplementaryOffsets)
	return set, true
}

// AdjustLightness returns hex with its HSL lightness moved by delta
// percentage points, clamped to 0-100.
func AdjustLightness(hex string, delta int) (string, bool) {
	c, ok := colormodel.ParseHex(hex)
	if !ok {
		return "", false
	}
	return lighten(colormodel.RGBToHSL(c), delta), true
}

// ShiftHue returns hex rotated around the color wheel by degrees. Negative
// rotations wrap; saturation and lightness are unchanged.
func ShiftHue(hex string, degrees int) (string, bool) {
	c, ok := colormodel.ParseHex(hex)
	if !ok {
		return "", false
	}
	return shift(colormodel.RGBToHSL(c), degrees), true
}

func lighten(hsl colormodel.HSL, delta int) string {
	hsl.L += delta
	if hsl.L > 100 {
		hsl.L = 100
	}
	if hsl.L < 0 {
		hsl.L = 0
	}
	return colormodel.HSLToRGB(hsl).Hex()
}

func shift(hsl colormodel.HSL, degrees int) string {
	hsl.H = colormodel.NormalizeHue(hsl.H + degrees)
	return colormodel.HSLToRGB(hsl).Hex()
}

func shiftAll(hsl colormodel.HSL, offsets []int) []string {
	out := make([]string, len(offsets))
	for i, d := range offsets {
		out[i] = shift(hsl, d)
	}
	return out
}
