package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

// ErrExtraction is returned when a decoded image cannot be analyzed, for
// example because the analyzed area is empty. It is distinct from
// ErrImageUnavailable.
var ErrExtraction = errors.New("color extraction failed")

// DefaultColorCount is the palette size used when a caller asks for zero or
// fewer colors.
const DefaultColorCount = 5

// ExtractOptions tunes the dominant color extractor.
type ExtractOptions struct {
	// WorkingWidth is the width of the downscaled working copy. The height
	// keeps the aspect ratio.
	WorkingWidth int

	// MaxWorkingHeight caps the height of the working copy so very tall
	// images still map onto a small raster.
	MaxWorkingHeight int

	// SampleStride visits every Nth pixel of the working copy in row-major
	// order.
	SampleStride int

	// AlphaThreshold discards pixels whose alpha is below it.
	AlphaThreshold uint8

	// BucketSize is the quantization step applied to each channel.
	BucketSize int

	// Filter is the resampling filter used for the working copy.
	Filter imaging.ResampleFilter
}

// DefaultExtractOptions returns the standard extractor settings: a 100px
// working copy at most 1000px tall, every 4th pixel, alpha cutoff 128 and
// 20-wide buckets.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		WorkingWidth:     100,
		MaxWorkingHeight: 1000,
		SampleStride:     4,
		AlphaThreshold:   128,
		BucketSize:       20,
		Filter:           imaging.Linear,
	}
}

// Validate checks the options for values the extractor cannot work with.
func (o ExtractOptions) Validate() error {
	if o.WorkingWidth <= 0 {
		return fmt.Errorf("working width must be positive, got %d", o.WorkingWidth)
	}
	if o.MaxWorkingHeight <= 0 {
		return fmt.Errorf("max working height must be positive, got %d", o.MaxWorkingHeight)
	}
	if o.SampleStride <= 0 {
		return fmt.Errorf("sample stride must be positive, got %d", o.SampleStride)
	}
	if o.BucketSize <= 0 || o.BucketSize > 255 {
		return fmt.Errorf("bucket size must be in 1..255, got %d", o.BucketSize)
	}
	return nil
}

// Extractor mines the most frequent quantized colors from images. It holds
// no mutable state and is safe for concurrent use.
type Extractor struct {
	opts ExtractOptions
}

// NewExtractor returns an extractor using opts.
func NewExtractor(opts ExtractOptions) (*Extractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{opts: opts}, nil
}

// Options returns the extractor settings.
func (e *Extractor) Options() ExtractOptions {
	return e.opts
}

// ColorFrequency represents a quantized color and how often it was sampled.
type ColorFrequency struct {
	Hex        string         `json:"hex"`
	RGB        colormodel.RGB `json:"rgb"`
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"` // Share of sampled opaque pixels
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors        []ColorFrequency `json:"colors"`
	SampledPixels int              `json:"sampled_pixels"` // Opaque pixels that were counted
}

// Hexes returns the hex strings of the result in rank order.
func (r *DominantColorsResult) Hexes() []string {
	out := make([]string, len(r.Colors))
	for i, c := range r.Colors {
		out[i] = c.Hex
	}
	return out
}

// DominantColors extracts up to count of the most common colors from an
// image or region.
//
// The image (or region) is resized to the working width, with the height
// following the aspect ratio up to MaxWorkingHeight. Every
// SampleStride-th pixel is visited. Pixels below the alpha threshold are
// skipped. Each channel of the rest is rounded to the nearest multiple of
// BucketSize and clamped to 255, and identical quantized colors are counted
// together.
//
// Colors are ranked by count. Ties keep the order in which the colors were
// first seen. A fully transparent image yields an empty result, not an error.
// Fewer than count colors are returned when fewer distinct buckets exist.
func (e *Extractor) DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		count = DefaultColorCount
	}

	var src image.Image = img
	if region != nil {
		if err := region.Validate(img.Bounds()); err != nil {
			return nil, err
		}
		src = imaging.Crop(img, region.Rect())
	}

	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: image has no pixels (%dx%d)", ErrExtraction, bounds.Dx(), bounds.Dy())
	}

	width := e.opts.WorkingWidth
	height := int(math.Floor(float64(width) * float64(bounds.Dy()) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}
	if height > e.opts.MaxWorkingHeight {
		height = e.opts.MaxWorkingHeight
	}
	working := imaging.Resize(src, width, height, e.opts.Filter)

	counts := make(map[colormodel.RGB]int)
	var order []colormodel.RGB
	sampled := 0

	total := width * height
	for i := 0; i < total; i += e.opts.SampleStride {
		x, y := i%width, i/width
		px := working.NRGBAAt(x, y)
		if px.A < e.opts.AlphaThreshold {
			continue
		}

		key := e.quantize(px)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
		sampled++
	}

	colors := make([]ColorFrequency, 0, len(order))
	for _, rgb := range order {
		n := counts[rgb]
		colors = append(colors, ColorFrequency{
			Hex:        rgb.Hex(),
			RGB:        rgb,
			Count:      n,
			Percentage: float64(n) * 100 / float64(sampled),
		})
	}

	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Count > colors[j].Count
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors, SampledPixels: sampled}, nil
}

func (e *Extractor) quantize(c color.NRGBA) colormodel.RGB {
	return colormodel.RGB{
		R: quantizeChannel(c.R, e.opts.BucketSize),
		G: quantizeChannel(c.G, e.opts.BucketSize),
		B: quantizeChannel(c.B, e.opts.BucketSize),
	}
}

func quantizeChannel(v uint8, bucket int) uint8 {
	q := int(math.Round(float64(v)/float64(bucket))) * bucket
	if q > 255 {
		q = 255
	}
	return uint8(q)
}

// DominantColors extracts colors with DefaultExtractOptions.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	e := &Extractor{opts: DefaultExtractOptions()}
	return e.DominantColors(img, count, region)
}
