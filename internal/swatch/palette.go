package swatch

import (
	"slices"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

// DefaultPaletteCapacity is the default number of colors in an extracted
// palette.
const DefaultPaletteCapacity = 5

// Palette is a ranked list of colors, most significant first.
type Palette struct {
	capacity int
	colors   []string
}

// NewPalette creates a palette seeded with colors in rank order. Invalid and
// duplicate entries are skipped and anything past capacity is dropped.
// Capacity values below 1 use DefaultPaletteCapacity.
func NewPalette(capacity int, colors ...string) *Palette {
	if capacity < 1 {
		capacity = DefaultPaletteCapacity
	}
	p := &Palette{capacity: capacity}
	for _, c := range colors {
		if len(p.colors) == capacity {
			break
		}
		p.Add(c)
	}
	return p
}

// Add appends hex as the lowest-ranked color. If the palette is already full
// the current lowest-ranked color is replaced. Adding a color that is already
// present, or an invalid one, changes nothing and returns false.
func (p *Palette) Add(hex string) bool {
	c, ok := colormodel.NormalizeHex(hex)
	if !ok || slices.Contains(p.colors, c) {
		return false
	}
	if len(p.colors) == p.capacity {
		p.colors[len(p.colors)-1] = c
		return true
	}
	p.colors = append(p.colors, c)
	return true
}

// Colors returns a copy of the palette in rank order.
func (p *Palette) Colors() []string {
	return slices.Clone(p.colors)
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Capacity returns the maximum number of colors in the palette.
func (p *Palette) Capacity() int {
	return p.capacity
}

// Swatch is a palette entry with the text color that stays legible on it.
type Swatch struct {
	Hex      string `json:"hex"`
	Contrast string `json:"contrast"`
}

// Swatches returns the palette colors paired with their contrast colors.
func (p *Palette) Swatches() []Swatch {
	out := make([]Swatch, 0, len(p.colors))
	for _, hex := range p.colors {
		c, _ := colormodel.ParseHex(hex)
		out = append(out, Swatch{Hex: hex, Contrast: colormodel.ContrastColor(c)})
	}
	return out
}
