package colormodel

import (
	"fmt"
	"math"
	"strings"
)

// RGB represents an sRGB color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// CMYK represents a color as ink percentages. It is never authoritative and
// is only ever computed from RGB.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// Contrast text colors returned by ContrastColor.
const (
	Black = "#000000"
	White = "#FFFFFF"
)

// yiqThreshold separates light backgrounds (dark text) from dark ones.
const yiqThreshold = 128

// ParseHex parses a 3- or 6-digit hex color, with or without a leading '#'.
// Parsing is case-insensitive and 3-digit shorthand is expanded by digit
// duplication, so "#fa0" is read as "#ffaa00".
//
// The boolean is false for anything else: empty strings, wrong lengths,
// non-hex digits, or more than one '#'.
func ParseHex(hex string) (RGB, bool) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return RGB{}, false
	}

	var c [3]uint8
	for i := range c {
		hi, ok := nibble(digits[2*i])
		if !ok {
			return RGB{}, false
		}
		lo, ok := nibble(digits[2*i+1])
		if !ok {
			return RGB{}, false
		}
		c[i] = hi<<4 | lo
	}
	return RGB{R: c[0], G: c[1], B: c[2]}, true
}

func nibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// NormalizeHex returns the canonical "#rrggbb" form of a hex color.
func NormalizeHex(hex string) (string, bool) {
	c, ok := ParseHex(hex)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

// RecognizeHex reports whether pasted text is a single hex color token and
// returns it in canonical form. Surrounding whitespace is ignored; anything
// else in the text disqualifies it.
func RecognizeHex(text string) (string, bool) {
	return NormalizeHex(strings.TrimSpace(text))
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String formats the color in functional notation, e.g. "rgb(255, 0, 0)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String formats the color in functional notation, e.g. "hsl(0, 100%, 50%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// String formats the color as "cmyk(c%, m%, y%, k%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}

// RGBFromFloat builds an RGB value from unbounded channel values, rounding
// each to the nearest integer and clamping to 0-255.
func RGBFromFloat(r, g, b float64) RGB {
	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// NormalizeHue wraps a hue in degrees into 0-359. Negative hues wrap
// backwards around the wheel.
func NormalizeHue(h int) int {
	return ((h % 360) + 360) % 360
}

// RGBToHSL converts RGB to HSL using the max/min channel algorithm.
//
// Achromatic colors (all channels equal) have hue 0 and saturation 0. Hue,
// saturation and lightness are each rounded to the nearest integer; a hue
// that rounds up to 360 wraps to 0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2

	var h, s float64
	if maxVal != minVal {
		d := maxVal - minVal
		if l > 0.5 {
			s = d / (2 - maxVal - minVal)
		} else {
			s = d / (maxVal + minVal)
		}

		switch maxVal {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: NormalizeHue(int(math.Round(h * 360))),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts HSL to RGB.
//
// The hue is wrapped into 0-359 first and saturation and lightness are
// clamped to 0-100, so any HSL value yields a valid RGB color. Zero
// saturation short-circuits to a gray with r = g = b = lightness.
func HSLToRGB(c HSL) RGB {
	h := float64(NormalizeHue(c.H)) / 360
	s := float64(clampPercent(c.S)) / 100
	l := float64(clampPercent(c.L)) / 100

	if s == 0 {
		return RGBFromFloat(l*255, l*255, l*255)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGBFromFloat(
		hueToChannel(p, q, h+1.0/3)*255,
		hueToChannel(p, q, h)*255,
		hueToChannel(p, q, h-1.0/3)*255,
	)
}

// hueToChannel evaluates one RGB channel at hue phase t (in turns).
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// RGBToCMYK converts RGB to CMYK percentages.
//
// K is the smallest of the raw cyan, magenta and yellow values; the other
// three are renormalized against it. Pure black (K = 100%) reports 0 for
// C, M and Y.
func RGBToCMYK(c RGB) CMYK {
	cy := 1 - float64(c.R)/255
	mg := 1 - float64(c.G)/255
	yl := 1 - float64(c.B)/255
	k := math.Min(cy, math.Min(mg, yl))

	if k < 1 {
		cy = (cy - k) / (1 - k)
		mg = (mg - k) / (1 - k)
		yl = (yl - k) / (1 - k)
	} else {
		cy, mg, yl = 0, 0, 0
	}

	return CMYK{
		C: int(math.Round(cy * 100)),
		M: int(math.Round(mg * 100)),
		Y: int(math.Round(yl * 100)),
		K: int(math.Round(k * 100)),
	}
}

// YIQ returns the perceived brightness of a color using YIQ weights
// (0.299R + 0.587G + 0.114B), in the range 0-255.
func YIQ(c RGB) float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// ContrastColor picks black or white text for legibility over a background
// of color c. Backgrounds with YIQ brightness of 128 or more get black text.
func ContrastColor(c RGB) string {
	if YIQ(c) >= yiqThreshold {
		return Black
	}
	return White
}
