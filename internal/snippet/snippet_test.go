package snippet

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		hex       string
		framework Framework
		property  Property
		format    Format
		want      string
	}{
		{"tailwind bg rgb", "#ff0000", FrameworkTailwind, PropertyBackground, FormatRGB, "bg-[rgb(255,_0,_0)]"},
		{"css text hex", "#ff0000", FrameworkCSS, PropertyText, FormatHex, "color: #ff0000;"},
		{"css bg hex", "#00ff00", FrameworkCSS, PropertyBackground, FormatHex, "background-color: #00ff00;"},
		{"css border rgb", "#0000ff", FrameworkCSS, PropertyBorder, FormatRGB, "border-color: rgb(0, 0, 255);"},
		{"css text hsl", "#ff0000", FrameworkCSS, PropertyText, FormatHSL, "color: hsl(0, 100%, 50%);"},
		{"tailwind text hex", "#abc", FrameworkTailwind, PropertyText, FormatHex, "text-[#abc]"},
		{"tailwind border hsl", "#808080", FrameworkTailwind, PropertyBorder, FormatHSL, "border-[hsl(0,_0%,_50%)]"},
		{"malformed falls back to raw", "oops", FrameworkCSS, PropertyText, FormatRGB, "color: oops;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.hex, tt.framework, tt.property, tt.format)
			if got != tt.want {
				t.Errorf("Generate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	if f, err := ParseFramework("Tailwind"); err != nil || f != FrameworkTailwind {
		t.Errorf("ParseFramework(Tailwind) = %q, %v", f, err)
	}
	if _, err := ParseFramework("scss"); err == nil {
		t.Error("ParseFramework(scss) should fail")
	}

	props := map[string]Property{
		"bg": PropertyBackground, "background": PropertyBackground,
		"text": PropertyText, "color": PropertyText, "BORDER": PropertyBorder,
	}
	for in, want := range props {
		if got, err := ParseProperty(in); err != nil || got != want {
			t.Errorf("ParseProperty(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseProperty("outline"); err == nil {
		t.Error("ParseProperty(outline) should fail")
	}

	if f, err := ParseFormat("HSL"); err != nil || f != FormatHSL {
		t.Errorf("ParseFormat(HSL) = %q, %v", f, err)
	}
	if _, err := ParseFormat("cmyk"); err == nil {
		t.Error("ParseFormat(cmyk) should fail")
	}
}

func TestExportCSS(t *testing.T) {
	got := ExportCSS([]string{"#ff0000", "#0000ff"})
	want := ":root {\n  --color-1: #ff0000;\n  --color-2: #0000ff;\n}"
	if got != want {
		t.Errorf("ExportCSS() = %q, want %q", got, want)
	}

	if got := ExportCSS(nil); got != ":root {\n}" {
		t.Errorf("ExportCSS(nil) = %q", got)
	}
}
