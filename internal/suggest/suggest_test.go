package suggest

import "testing"

func TestGenerate_Gray(t *testing.T) {
	set, ok := Generate("#808080")
	if !ok {
		t.Fatal("Generate(#808080) failed")
	}

	harmonies := append([]string{set.Complementary}, set.Analogous...)
	harmonies = append(harmonies, set.Triadic...)
	harmonies = append(harmonies, set.SplitComplementary...)
	for i, h := range harmonies {
		if h != "#808080" {
			t.Errorf("harmony %d: got %s, want #808080 for an achromatic base", i, h)
		}
	}

	wantTints := []string{"#999999", "#b3b3b3", "#cccccc"}
	wantShades := []string{"#666666", "#4d4d4d", "#333333"}
	assertColors(t, "tints", set.Tints, wantTints)
	assertColors(t, "shades", set.Shades, wantShades)
}

func TestGenerate_Shape(t *testing.T) {
	set, ok := Generate("#3366cc")
	if !ok {
		t.Fatal("Generate(#3366cc) failed")
	}
	if set.Base != "#3366cc" {
		t.Errorf("Base: got %s", set.Base)
	}
	counts := map[string]int{
		"tints":               len(set.Tints),
		"shades":              len(set.Shades),
		"analogous":           len(set.Analogous),
		"triadic":             len(set.Triadic),
		"split_complementary": len(set.SplitComplementary),
	}
	want := map[string]int{"tints": 3, "shades": 3, "analogous": 2, "triadic": 2, "split_complementary": 2}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s: got %d colors, want %d", k, counts[k], n)
		}
	}
	if set.Complementary == "" {
		t.Error("Complementary should be set")
	}
}

func TestGenerate_RedHarmonies(t *testing.T) {
	set, ok := Generate("#F00")
	if !ok {
		t.Fatal("Generate(#F00) failed")
	}
	if set.Base != "#ff0000" {
		t.Errorf("Base: got %s, want #ff0000", set.Base)
	}
	if set.Complementary != "#00ffff" {
		t.Errorf("Complementary: got %s, want #00ffff", set.Complementary)
	}
	assertColors(t, "triadic", set.Triadic, []string{"#00ff00", "#0000ff"})
}

func TestGenerate_ClampedLightness(t *testing.T) {
	white, _ := Generate("#ffffff")
	assertColors(t, "white tints", white.Tints, []string{"#ffffff", "#ffffff", "#ffffff"})

	black, _ := Generate("#000000")
	assertColors(t, "black shades", black.Shades, []string{"#000000", "#000000", "#000000"})
}

func TestGenerate_Malformed(t *testing.T) {
	if _, ok := Generate("nope"); ok {
		t.Error("Generate should fail for malformed hex")
	}
	if _, ok := AdjustLightness("#12", 10); ok {
		t.Error("AdjustLightness should fail for malformed hex")
	}
	if _, ok := ShiftHue("#zzzzzz", 10); ok {
		t.Error("ShiftHue should fail for malformed hex")
	}
}

func TestShiftHue_Wraps(t *testing.T) {
	// Blue (240°) rotated by -240° lands on red; by +120° on red as well.
	for _, d := range []int{-240, 120, 480} {
		got, ok := ShiftHue("#0000ff", d)
		if !ok || got != "#ff0000" {
			t.Errorf("ShiftHue(#0000ff, %d) = %s, %v; want #ff0000", d, got, ok)
		}
	}
}

func TestAdjustLightness(t *testing.T) {
	got, ok := AdjustLightness("#808080", 50)
	if !ok || got != "#ffffff" {
		t.Errorf("AdjustLightness(#808080, 50) = %s, %v; want #ffffff", got, ok)
	}
	got, ok = AdjustLightness("#808080", -80)
	if !ok || got != "#000000" {
		t.Errorf("AdjustLightness(#808080, -80) = %s, %v; want #000000", got, ok)
	}
}

func assertColors(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %s, want %s", label, i, got[i], want[i])
		}
	}
}
