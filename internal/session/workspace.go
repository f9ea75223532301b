package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

// DefaultStandaloneColor is selected when a session starts without an image.
const DefaultStandaloneColor = "#6366f1"

var (
	// ErrStaleLoad is returned by Load when a newer load started before this
	// one finished. The workspace keeps the newer load's state.
	ErrStaleLoad = errors.New("image load superseded by a newer load")

	// ErrNoImage is returned by operations that need a loaded image.
	ErrNoImage = errors.New("no image loaded")
)

// Mode describes what the workspace is showing.
type Mode string

const (
	ModeEmpty      Mode = "empty"
	ModeImage      Mode = "image"
	ModeStandalone Mode = "standalone"
)

// Source identifies an image to load: a file path or base64 data, which may
// be a data URL.
type Source struct {
	Path string
	Data string
}

// Validate checks that exactly one of Path and Data is set.
func (s Source) Validate() error {
	switch {
	case s.Path == "" && s.Data == "":
		return errors.New("image source requires a path or data")
	case s.Path != "" && s.Data != "":
		return errors.New("image source takes a path or data, not both")
	}
	return nil
}

func (s Source) String() string {
	if s.Path != "" {
		return s.Path
	}
	return "(inline data)"
}

// Options configures a Workspace.
type Options struct {
	// PaletteSize is the number of colors extracted per load.
	PaletteSize int

	Extract imaging.ExtractOptions

	// Cache holds decoded files. A new cache is created when nil.
	Cache *imaging.ImageCache

	// History records confirmed selections. An in-memory history is used
	// when nil.
	History *swatch.History

	Logger hclog.Logger
}

type loadedImage struct {
	img    image.Image
	info   *imaging.ImageInfo
	source string
}

// Workspace is the state of one color picking session. It is safe for
// concurrent use.
type Workspace struct {
	log         hclog.Logger
	cache       *imaging.ImageCache
	extractor   *imaging.Extractor
	paletteSize int

	mu         sync.Mutex
	generation uint64
	image      *loadedImage
	palette    *swatch.Palette
	selected   string
	hover      string
	standalone bool
	history    *swatch.History

	// beforeCommit runs after a load has decoded and extracted, just before
	// it takes the lock to publish its result.
	beforeCommit func()
}

// New creates an empty workspace.
func New(opts Options) (*Workspace, error) {
	extractor, err := imaging.NewExtractor(opts.Extract)
	if err != nil {
		return nil, fmt.Errorf("invalid extractor options: %w", err)
	}

	w := &Workspace{
		log:         opts.Logger,
		cache:       opts.Cache,
		extractor:   extractor,
		paletteSize: opts.PaletteSize,
		history:     opts.History,
	}
	if w.log == nil {
		w.log = hclog.NewNullLogger()
	}
	if w.cache == nil {
		w.cache = imaging.NewImageCache()
	}
	if w.paletteSize < 1 {
		w.paletteSize = swatch.DefaultPaletteCapacity
	}
	if w.history == nil {
		w.history = swatch.NewHistory(swatch.DefaultHistoryCapacity, nil)
	}
	w.palette = swatch.NewPalette(w.paletteSize)
	return w, nil
}

// LoadResult reports a completed image load.
type LoadResult struct {
	Image    *imaging.ImageInfo `json:"image"`
	Source   string             `json:"source"`
	Palette  []swatch.Swatch    `json:"palette"`
	Selected string             `json:"selected,omitempty"`

	// ExtractionError is set when the image loaded but no palette could be
	// extracted from it.
	ExtractionError string `json:"extraction_error,omitempty"`
}

// Load decodes src, extracts its palette and makes it the current image.
// The first palette color becomes the selection and is recorded in the
// history.
//
// A source that cannot be opened or decoded returns an error wrapping
// imaging.ErrImageUnavailable and leaves the workspace unchanged. An image
// that decodes but cannot be analyzed still becomes current, with an empty
// palette and ExtractionError set. If another Load starts before this one
// finishes, ErrStaleLoad is returned and nothing is changed.
func (w *Workspace) Load(ctx context.Context, src Source) (*LoadResult, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.generation++
	gen := w.generation
	w.mu.Unlock()

	w.log.Debug("loading image", "source", src.String(), "generation", gen)

	loaded, err := w.decode(src)
	if err != nil {
		if w.isStale(gen) {
			return nil, ErrStaleLoad
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("image load canceled: %w", err)
	}

	var extractErr error
	colors, err := w.extractor.DominantColors(loaded.img, w.paletteSize, nil)
	if err != nil {
		extractErr = err
		w.log.Warn("palette extraction failed", "source", loaded.source, "error", err)
	}

	if w.beforeCommit != nil {
		w.beforeCommit()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.generation {
		w.log.Debug("discarding stale image load", "source", loaded.source, "generation", gen, "current", w.generation)
		return nil, ErrStaleLoad
	}

	w.image = loaded
	w.standalone = false
	w.hover = ""
	if extractErr != nil {
		w.palette = swatch.NewPalette(w.paletteSize)
	} else {
		w.palette = swatch.NewPalette(w.paletteSize, colors.Hexes()...)
	}

	result := &LoadResult{
		Image:   loaded.info,
		Source:  loaded.source,
		Palette: w.palette.Swatches(),
	}
	if extractErr != nil {
		result.ExtractionError = extractErr.Error()
	}
	if first := w.palette.Colors(); len(first) > 0 {
		w.selectLocked(first[0])
	}
	result.Selected = w.selected

	w.log.Info("image loaded", "source", loaded.source, "width", loaded.info.Width,
		"height", loaded.info.Height, "colors", w.palette.Len())
	return result, nil
}

func (w *Workspace) decode(src Source) (*loadedImage, error) {
	if src.Path != "" {
		info, err := imaging.LoadImageInfo(w.cache, src.Path)
		if err != nil {
			return nil, err
		}
		img, err := w.cache.Load(src.Path)
		if err != nil {
			return nil, err
		}
		return &loadedImage{img: img, info: info, source: src.Path}, nil
	}

	img, format, err := imaging.DecodeBase64(src.Data)
	if err != nil {
		return nil, err
	}
	return &loadedImage{img: img, info: imaging.DescribeImage(img, format), source: src.String()}, nil
}

func (w *Workspace) isStale(gen uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return gen != w.generation
}

// Select makes hex the selected color and records it in the history. It
// returns false if hex is malformed.
func (w *Workspace) Select(hex string) (string, bool) {
	c, ok := colormodel.NormalizeHex(hex)
	if !ok {
		return "", false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.selectLocked(c)
	return c, true
}

func (w *Workspace) selectLocked(hex string) {
	w.selected = hex
	w.history.Add(hex)
	if err := w.history.Save(); err != nil {
		w.log.Warn("failed to persist history", "error", err)
	}
}

// Hover sets the color under the pointer. An empty string clears it. It
// returns false if hex is neither empty nor a valid color.
func (w *Workspace) Hover(hex string) (string, bool) {
	c := ""
	if hex != "" {
		var ok bool
		if c, ok = colormodel.NormalizeHex(hex); !ok {
			return "", false
		}
	}

	w.mu.Lock()
	w.hover = c
	w.mu.Unlock()
	return c, true
}

// Active returns the hovered color if there is one, else the selected color.
// It is empty when neither is set.
func (w *Workspace) Active() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activeLocked()
}

func (w *Workspace) activeLocked() string {
	if w.hover != "" {
		return w.hover
	}
	return w.selected
}

// PickAt samples the current image at a position on its display and either
// selects the color (commit) or only hovers it.
func (w *Workspace) PickAt(display *imaging.DisplaySize, px, py float64, commit bool) (*imaging.ColorResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.image == nil {
		return nil, ErrNoImage
	}

	pt := imaging.MapDisplayPoint(w.image.img.Bounds(), display, px, py)
	c, err := imaging.SampleColor(w.image.img, pt.X, pt.Y)
	if err != nil {
		return nil, err
	}

	if commit {
		w.selectLocked(c.Hex)
	} else {
		w.hover = c.Hex
	}
	return c, nil
}

// CurrentImage returns the loaded image.
func (w *Workspace) CurrentImage() (image.Image, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.image == nil {
		return nil, ErrNoImage
	}
	return w.image.img, nil
}

// AddToPalette appends hex to the palette. It returns false if hex is
// malformed or already present.
func (w *Workspace) AddToPalette(hex string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.palette.Add(hex)
}

// Palette returns the palette entries in rank order.
func (w *Workspace) Palette() []swatch.Swatch {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.palette.Swatches()
}

// PaletteColors returns the palette hex values in rank order.
func (w *Workspace) PaletteColors() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.palette.Colors()
}

// History returns the recent selections, most recent first.
func (w *Workspace) History() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.history.Colors()
}

// ClearHistory empties the history and persists the empty list.
func (w *Workspace) ClearHistory() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.history.Clear()
	if err := w.history.Save(); err != nil {
		w.log.Warn("failed to persist history", "error", err)
	}
}

// Standalone drops any image and palette and selects
// DefaultStandaloneColor, for working with colors alone. Pending loads are
// abandoned.
func (w *Workspace) Standalone() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.generation++
	w.image = nil
	w.palette = swatch.NewPalette(w.paletteSize)
	w.hover = ""
	w.selected = DefaultStandaloneColor
	w.standalone = true
}

// Reset returns the workspace to its empty state. The history is kept.
// Pending loads are abandoned.
func (w *Workspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.generation++
	w.image = nil
	w.palette = swatch.NewPalette(w.paletteSize)
	w.hover = ""
	w.selected = ""
	w.standalone = false
}

// State is a snapshot of the workspace.
type State struct {
	Mode     Mode               `json:"mode"`
	Image    *imaging.ImageInfo `json:"image,omitempty"`
	Source   string             `json:"source,omitempty"`
	Palette  []swatch.Swatch    `json:"palette"`
	Selected string             `json:"selected,omitempty"`
	Hover    string             `json:"hover,omitempty"`
	Active   string             `json:"active,omitempty"`
	History  []string           `json:"history"`
}

// State returns a snapshot of the workspace.
func (w *Workspace) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := State{
		Mode:     ModeEmpty,
		Palette:  w.palette.Swatches(),
		Selected: w.selected,
		Hover:    w.hover,
		Active:   w.activeLocked(),
		History:  w.history.Colors(),
	}
	switch {
	case w.image != nil:
		s.Mode = ModeImage
		s.Image = w.image.info
		s.Source = w.image.source
	case w.standalone:
		s.Mode = ModeStandalone
	}
	return s
}
