package swatch

import (
	"fmt"
	"slices"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

// DefaultHistoryCapacity is the number of colors History keeps.
const DefaultHistoryCapacity = 10

// History is a most-recent-first list of selected colors.
//
// Adding a color that is already present moves it to the front instead of
// inserting a second copy. When the list is full the oldest color is
// dropped.
type History struct {
	capacity int
	colors   []string
	store    Store
}

// NewHistory creates an empty history backed by store. A nil store keeps the
// history in memory only. Capacity values below 1 use DefaultHistoryCapacity.
func NewHistory(capacity int, store Store) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	if store == nil {
		store = NewMemoryStore()
	}
	return &History{capacity: capacity, store: store}
}

// Load replaces the in-memory list with the stored one. Stored entries that
// are not valid hex colors, or that repeat an earlier entry, are skipped, and
// the result is trimmed to capacity.
func (h *History) Load() error {
	stored, err := h.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	colors := make([]string, 0, min(len(stored), h.capacity))
	for _, s := range stored {
		hex, ok := colormodel.NormalizeHex(s)
		if !ok || slices.Contains(colors, hex) {
			continue
		}
		colors = append(colors, hex)
		if len(colors) == h.capacity {
			break
		}
	}
	h.colors = colors
	return nil
}

// Save writes the current list to the store.
func (h *History) Save() error {
	if err := h.store.Save(h.Colors()); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Add records hex as the most recent selection. It returns false, leaving
// the history untouched, if hex is not a valid color.
func (h *History) Add(hex string) bool {
	c, ok := colormodel.NormalizeHex(hex)
	if !ok {
		return false
	}

	next := make([]string, 0, h.capacity)
	next = append(next, c)
	for _, existing := range h.colors {
		if existing != c && len(next) < h.capacity {
			next = append(next, existing)
		}
	}
	h.colors = next
	return true
}

// Colors returns a copy of the history, most recent first.
func (h *History) Colors() []string {
	return slices.Clone(h.colors)
}

// Len returns the number of colors in the history.
func (h *History) Len() int {
	return len(h.colors)
}

// Capacity returns the maximum number of colors the history keeps.
func (h *History) Capacity() int {
	return h.capacity
}

// Clear empties the history.
func (h *History) Clear() {
	h.colors = nil
}
