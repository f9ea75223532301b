package swatch

import "testing"

func TestNewPalette(t *testing.T) {
	p := NewPalette(3, "#F00", "not-a-color", "#ff0000", "#00ff00", "#0000ff", "#ffffff")
	got := p.Colors()
	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	if len(got) != len(want) {
		t.Fatalf("Colors: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Colors[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPalette_Add(t *testing.T) {
	p := NewPalette(2)
	if !p.Add("#111111") || !p.Add("#222222") {
		t.Fatal("Add into empty slots failed")
	}
	if p.Add("#111111") {
		t.Error("Add of an existing color should be a no-op")
	}
	if p.Add("zzz") {
		t.Error("Add of a malformed color should fail")
	}

	if !p.Add("#333333") {
		t.Fatal("Add into a full palette should replace the lowest-ranked color")
	}
	got := p.Colors()
	if p.Len() != 2 || got[0] != "#111111" || got[1] != "#333333" {
		t.Errorf("Colors: got %v, want [#111111 #333333]", got)
	}
}

func TestPalette_DefaultCapacity(t *testing.T) {
	if got := NewPalette(0).Capacity(); got != DefaultPaletteCapacity {
		t.Errorf("Capacity: got %d, want %d", got, DefaultPaletteCapacity)
	}
}

func TestPalette_Swatches(t *testing.T) {
	p := NewPalette(5, "#ffffff", "#000000")
	s := p.Swatches()
	if len(s) != 2 {
		t.Fatalf("Swatches: got %d, want 2", len(s))
	}
	if s[0].Contrast != "#000000" || s[1].Contrast != "#FFFFFF" {
		t.Errorf("Swatches contrast: got %+v", s)
	}
}
