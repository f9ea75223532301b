// Package config holds the runtime settings of the color tools server and CLI.
//
// Settings start from Default, may be overridden by COLOR_MCP_* environment
// variables (FromEnv), and finally by command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "COLOR_MCP_"

// Config holds all settings.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error or off.
	LogLevel string

	// HistoryFile is where selected colors persist between sessions. Empty
	// keeps history in memory only.
	HistoryFile string

	HistorySize int
	PaletteSize int

	AlphaThreshold   int
	BucketSize       int
	WorkingWidth     int
	MaxWorkingHeight int
	SampleStride     int
}

// Default returns the standard settings with history stored under the
// user's config directory.
func Default() Config {
	opts := imaging.DefaultExtractOptions()
	return Config{
		LogLevel:         "info",
		HistoryFile:      DefaultHistoryPath(),
		HistorySize:      10,
		PaletteSize:      imaging.DefaultColorCount,
		AlphaThreshold:   int(opts.AlphaThreshold),
		BucketSize:       opts.BucketSize,
		WorkingWidth:     opts.WorkingWidth,
		MaxWorkingHeight: opts.MaxWorkingHeight,
		SampleStride:     opts.SampleStride,
	}
}

// DefaultHistoryPath returns the default history file location, or "" when
// the user config directory cannot be determined.
func DefaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "color-tools-mcp", "history.json")
}

// FromEnv returns Default overridden by environment variables.
func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup returns Default overridden by the variables lookup reports.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvPrefix + "HISTORY_FILE"); ok {
		cfg.HistoryFile = strings.TrimSpace(v)
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"HISTORY_SIZE", &cfg.HistorySize},
		{"PALETTE_SIZE", &cfg.PaletteSize},
		{"ALPHA_THRESHOLD", &cfg.AlphaThreshold},
		{"BUCKET_SIZE", &cfg.BucketSize},
		{"WORKING_WIDTH", &cfg.WorkingWidth},
		{"MAX_WORKING_HEIGHT", &cfg.MaxWorkingHeight},
		{"SAMPLE_STRIDE", &cfg.SampleStride},
	}
	for _, e := range ints {
		v, ok := lookup(EnvPrefix + e.name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("invalid %s%s %q: %w", EnvPrefix, e.name, v, err)
		}
		*e.dst = n
	}

	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	if c.HistorySize < 1 || c.HistorySize > 100 {
		return fmt.Errorf("history size must be in 1..100, got %d", c.HistorySize)
	}
	if c.PaletteSize < 1 || c.PaletteSize > 64 {
		return fmt.Errorf("palette size must be in 1..64, got %d", c.PaletteSize)
	}
	if c.AlphaThreshold < 0 || c.AlphaThreshold > 255 {
		return fmt.Errorf("alpha threshold must be in 0..255, got %d", c.AlphaThreshold)
	}
	return c.ExtractOptions().Validate()
}

// ExtractOptions returns the extractor settings of c.
func (c Config) ExtractOptions() imaging.ExtractOptions {
	opts := imaging.DefaultExtractOptions()
	opts.AlphaThreshold = uint8(c.AlphaThreshold)
	opts.BucketSize = c.BucketSize
	opts.WorkingWidth = c.WorkingWidth
	opts.MaxWorkingHeight = c.MaxWorkingHeight
	opts.SampleStride = c.SampleStride
	return opts
}

// Level returns the hclog level for LogLevel, defaulting to Info.
func (c Config) Level() hclog.Level {
	if l := hclog.LevelFromString(c.LogLevel); l != hclog.NoLevel {
		return l
	}
	return hclog.Info
}
