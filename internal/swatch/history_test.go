package swatch

import (
	"errors"
	"fmt"
	"testing"
)

func TestHistory_CapacityEvictsOldest(t *testing.T) {
	h := NewHistory(10, nil)
	for i := 0; i < 11; i++ {
		if !h.Add(fmt.Sprintf("#0000%02x", i)) {
			t.Fatalf("Add #%d failed", i)
		}
	}

	got := h.Colors()
	if len(got) != 10 {
		t.Fatalf("Len: got %d, want 10", len(got))
	}
	if got[0] != "#00000a" {
		t.Errorf("most recent: got %s, want #00000a", got[0])
	}
	if got[9] != "#000001" {
		t.Errorf("oldest kept: got %s, want #000001", got[9])
	}
	for _, c := range got {
		if c == "#000000" {
			t.Error("oldest color #000000 should have been evicted")
		}
	}
}

func TestHistory_ReAddMovesToFront(t *testing.T) {
	h := NewHistory(10, nil)
	h.Add("#111111")
	h.Add("#222222")
	h.Add("#333333")

	h.Add("#111111")

	want := []string{"#111111", "#333333", "#222222"}
	got := h.Colors()
	if len(got) != len(want) {
		t.Fatalf("Colors: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Colors[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestHistory_ReAddWhenFullKeepsSize(t *testing.T) {
	h := NewHistory(3, nil)
	h.Add("#111111")
	h.Add("#222222")
	h.Add("#333333")
	h.Add("#111")

	got := h.Colors()
	want := []string{"#111111", "#333333", "#222222"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Colors[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestHistory_RejectsMalformed(t *testing.T) {
	h := NewHistory(0, nil)
	if h.Capacity() != DefaultHistoryCapacity {
		t.Errorf("Capacity: got %d, want %d", h.Capacity(), DefaultHistoryCapacity)
	}
	if h.Add("not-a-color") {
		t.Error("Add should reject malformed hex")
	}
	if h.Len() != 0 {
		t.Errorf("Len: got %d, want 0", h.Len())
	}
}

func TestHistory_NormalizesCase(t *testing.T) {
	h := NewHistory(10, nil)
	h.Add("#ABCDEF")
	h.Add("abcdef")
	if h.Len() != 1 {
		t.Errorf("Len: got %d, want 1 (same color in different case)", h.Len())
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(10, nil)
	h.Add("#fff")
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len after Clear: got %d", h.Len())
	}
}

func TestHistory_LoadSave(t *testing.T) {
	store := NewMemoryStore("#FFF", "bogus", "#ffffff", "#000", "#ff0000")
	h := NewHistory(2, store)
	if err := h.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := h.Colors()
	want := []string{"#ffffff", "#000000"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Colors after Load: got %v, want %v", got, want)
	}

	h.Add("#00ff00")
	if err := h.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	saved, _ := store.Load()
	if len(saved) != 2 || saved[0] != "#00ff00" || saved[1] != "#ffffff" {
		t.Errorf("stored list: got %v", saved)
	}
}

type failingStore struct{}

var errStore = errors.New("store unavailable")

func (failingStore) Load() ([]string, error) { return nil, errStore }
func (failingStore) Save([]string) error     { return errStore }

func TestHistory_StoreErrors(t *testing.T) {
	h := NewHistory(10, failingStore{})
	if err := h.Load(); !errors.Is(err, errStore) {
		t.Errorf("Load error: got %v, want wrapped errStore", err)
	}

	h.Add("#123456")
	if err := h.Save(); !errors.Is(err, errStore) {
		t.Errorf("Save error: got %v, want wrapped errStore", err)
	}
	if h.Len() != 1 {
		t.Error("history should keep working in memory after a store failure")
	}
}
