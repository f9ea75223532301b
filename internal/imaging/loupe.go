package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
)

// Loupe defaults.
const (
	DefaultLoupeRadius = 5
	DefaultLoupeZoom   = 10
	maxLoupeRadius     = 50
	maxLoupeZoom       = 32
)

// LoupeResult is a magnified view of the pixels around a point.
type LoupeResult struct {
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Zoom        int         `json:"zoom"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Center      ColorResult `json:"center"`
	ImageBase64 string      `json:"image_base64"`
	MimeType    string      `json:"mime_type"`
}

// Loupe crops the square of pixels within radius of (x, y) and scales it up
// by zoom with nearest-neighbour sampling, so every source pixel becomes a
// sharp zoom×zoom block. Near the edges the square is cut to the image.
// Zero radius or zoom selects the defaults.
func Loupe(img image.Image, x, y, radius, zoom int) (*LoupeResult, error) {
	if radius == 0 {
		radius = DefaultLoupeRadius
	}
	if zoom == 0 {
		zoom = DefaultLoupeZoom
	}
	if radius < 0 || radius > maxLoupeRadius {
		return nil, fmt.Errorf("loupe radius must be in 1..%d, got %d", maxLoupeRadius, radius)
	}
	if zoom < 0 || zoom > maxLoupeZoom {
		return nil, fmt.Errorf("loupe zoom must be in 1..%d, got %d", maxLoupeZoom, zoom)
	}

	center, err := SampleColor(img, x, y)
	if err != nil {
		return nil, err
	}

	rect := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1).Intersect(img.Bounds())
	cropped := transform.Crop(img, rect)
	zoomed := transform.Resize(cropped, rect.Dx()*zoom, rect.Dy()*zoom, transform.NearestNeighbor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, zoomed); err != nil {
		return nil, fmt.Errorf("failed to encode loupe image: %w", err)
	}

	return &LoupeResult{
		X:           x,
		Y:           y,
		Zoom:        zoom,
		Width:       zoomed.Bounds().Dx(),
		Height:      zoomed.Bounds().Dy(),
		Center:      *center,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
