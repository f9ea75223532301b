package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Swatch strip limits, in pixels. The minimum fits a "#rrggbb" label.
const (
	DefaultSwatchSize = 64
	minSwatchSize     = 56
	maxSwatchSize     = 256

	labelWidth = 7 * 7 // seven 7px cells
)

// SwatchStripResult is a rendered palette preview.
type SwatchStripResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Colors      int    `json:"colors"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatches draws colors side by side as square swatches, each labeled
// with its hex value in the contrast color for that swatch. Zero size
// selects DefaultSwatchSize.
func RenderSwatches(colors []string, size int) (*SwatchStripResult, error) {
	if len(colors) == 0 {
		return nil, errors.New("no colors to render")
	}
	if size == 0 {
		size = DefaultSwatchSize
	}
	if size < minSwatchSize || size > maxSwatchSize {
		return nil, fmt.Errorf("swatch size must be in %d..%d, got %d", minSwatchSize, maxSwatchSize, size)
	}

	strip := imaging.New(size*len(colors), size, color.Transparent)
	for i, hex := range colors {
		rgb, ok := colormodel.ParseHex(hex)
		if !ok {
			return nil, fmt.Errorf("invalid color %q at index %d", hex, i)
		}
		swatch := imaging.New(size, size, rgb)

		label := rgb.Hex()
		fg, _ := colormodel.ParseHex(colormodel.ContrastColor(rgb))
		drawLabel(swatch, (size-labelWidth)/2, size-5, label, fg)

		strip = imaging.Paste(strip, swatch, image.Pt(i*size, 0))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, strip); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &SwatchStripResult{
		Width:       strip.Bounds().Dx(),
		Height:      strip.Bounds().Dy(),
		Colors:      len(colors),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// drawLabel draws text with its baseline at (x, y) in the 7x13 bitmap
// face.
func drawLabel(img *image.NRGBA, x, y int, text string, fg color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
