package swatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Store persists a list of hex colors between sessions.
type Store interface {
	// Load returns the stored list. A store that has never been saved
	// returns an empty list and no error.
	Load() ([]string, error)

	// Save replaces the stored list.
	Save(colors []string) error
}

// MemoryStore keeps the list in memory. It is the store used when no history
// file is configured, and in tests.
type MemoryStore struct {
	colors []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(colors ...string) *MemoryStore {
	return &MemoryStore{colors: colors}
}

// Load implements Store.
func (m *MemoryStore) Load() ([]string, error) {
	return slices.Clone(m.colors), nil
}

// Save implements Store.
func (m *MemoryStore) Save(colors []string) error {
	m.colors = slices.Clone(colors)
	return nil
}

// FileStore keeps the list as a JSON array in a file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the JSON file at path. The file and
// its directory are created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load implements Store. A missing file is an empty list.
func (f *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(f.path) // #nosec G304 - configured history path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	var colors []string
	if err := json.Unmarshal(data, &colors); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	return colors, nil
}

// Save implements Store. The file is replaced atomically via rename.
func (f *FileStore) Save(colors []string) error {
	if colors == nil {
		colors = []string{}
	}
	data, err := json.Marshal(colors)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}
