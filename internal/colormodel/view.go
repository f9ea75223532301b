package colormodel

import (
	"fmt"
	"math"
)

// HSV represents a color in HSV (Hue, Saturation, Value) color space.
type HSV struct {
	H int `json:"h"` // Hue: 0-359 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	V int `json:"v"` // Value: 0-100 percent
}

// String formats the color as "hsv(h, s%, v%)".
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
}

// RGBToHSV converts RGB to HSV, rounding each component to an integer.
func RGBToHSV(c RGB) HSV {
	h, s, v := toColorful(c).Hsv()
	return HSV{
		H: NormalizeHue(int(math.Round(h))),
		S: int(math.Round(s * 100)),
		V: int(math.Round(v * 100)),
	}
}

// Format is one labelled textual representation of a color.
type Format struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// View contains a single color in every supported representation.
//
// It is the data behind a color details panel: the numeric values for
// display, ready-to-copy strings for each notation, and the text color that
// stays legible over a swatch of this color.
type View struct {
	Hex      string   `json:"hex"`
	RGB      RGB      `json:"rgb"`
	HSL      HSL      `json:"hsl"`
	CMYK     CMYK     `json:"cmyk"`
	HSV      HSV      `json:"hsv"`
	Contrast string   `json:"contrast"`
	Formats  []Format `json:"formats"`
}

// Describe builds a View for a hex color. It returns false if hex is
// malformed.
func Describe(hex string) (*View, bool) {
	c, ok := ParseHex(hex)
	if !ok {
		return nil, false
	}
	return DescribeRGB(c), true
}

// DescribeRGB builds a View for an RGB color.
func DescribeRGB(c RGB) *View {
	hsl := RGBToHSL(c)
	cmyk := RGBToCMYK(c)
	return &View{
		Hex:      c.Hex(),
		RGB:      c,
		HSL:      hsl,
		CMYK:     cmyk,
		HSV:      RGBToHSV(c),
		Contrast: ContrastColor(c),
		Formats: []Format{
			{Label: "HEX", Value: c.Hex()},
			{Label: "RGB", Value: c.String()},
			{Label: "HSL", Value: hsl.String()},
			{Label: "CMYK", Value: cmyk.String()},
		},
	}
}
