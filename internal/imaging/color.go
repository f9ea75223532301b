package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

// ColorResult contains a sampled pixel color in multiple representations.
//
// This struct provides the same color in several formats to suit different
// use cases:
//   - Hex: Canonical "#rrggbb" string (alpha excluded)
//   - RGB: 8-bit components, not alpha-premultiplied
//   - Alpha: Opacity of the pixel (0 = transparent, 255 = opaque)
//   - HSL, CMYK: Derived notations for display
//   - Contrast: Text color ("#000000" or "#FFFFFF") legible over this color
type ColorResult struct {
	Hex      string          `json:"hex"`
	RGB      colormodel.RGB  `json:"rgb"`
	Alpha    uint8           `json:"alpha"`
	HSL      colormodel.HSL  `json:"hsl"`
	CMYK     colormodel.CMYK `json:"cmyk"`
	Contrast string          `json:"contrast"`
}

// NewColorResult builds a ColorResult from a color of any color model.
func NewColorResult(c color.Color) *ColorResult {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	rgb := colormodel.RGB{R: n.R, G: n.G, B: n.B}
	return &ColorResult{
		Hex:      rgb.Hex(),
		RGB:      rgb,
		Alpha:    n.A,
		HSL:      colormodel.RGBToHSL(rgb),
		CMYK:     colormodel.RGBToCMYK(rgb),
		Contrast: colormodel.ContrastColor(rgb),
	}
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// The pixel is converted to non-premultiplied 8-bit RGBA before any other
// notation is derived, so a half-transparent red still reports R=255. Use
// Alpha to get transparency information.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return NewColorResult(img.At(x, y)), nil
}

// DisplaySize is the size at which an image is shown to the user, which may
// differ from its natural pixel size.
type DisplaySize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MapDisplayPoint converts a position on a scaled display of img into the
// pixel it covers. The result is clamped into the image bounds, so pointer
// positions slightly outside the displayed image still map to an edge pixel.
// A nil or degenerate display size means the image is shown at natural size.
func MapDisplayPoint(bounds image.Rectangle, display *DisplaySize, px, py float64) image.Point {
	scaleX, scaleY := 1.0, 1.0
	if display != nil && display.Width > 0 && display.Height > 0 {
		scaleX = float64(bounds.Dx()) / display.Width
		scaleY = float64(bounds.Dy()) / display.Height
	}

	x := clampFloat(px*scaleX, 0, float64(bounds.Dx()-1))
	y := clampFloat(py*scaleY, 0, float64(bounds.Dy()-1))
	return image.Pt(bounds.Min.X+int(math.Floor(x)), bounds.Min.Y+int(math.Floor(y)))
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
//
// Labels are useful for identifying specific points in the results, such as
// "button_background" or "header_text". If Label is empty, the point will
// still be sampled but won't have an identifying label in the output.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"` // Color samples in input order
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// On error no partial results are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int `json:"x1"` // Left edge X coordinate (inclusive)
	Y1 int `json:"y1"` // Top edge Y coordinate (inclusive)
	X2 int `json:"x2"` // Right edge X coordinate (exclusive)
	Y2 int `json:"y2"` // Bottom edge Y coordinate (exclusive)
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Validate checks that the region is non-empty and lies within bounds.
func (r Region) Validate(bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if !r.Rect().In(bounds) {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}
