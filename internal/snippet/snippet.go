// Package snippet renders a color as a one-line code snippet.
//
// Two syntax families are supported: a declarative CSS rule
// ("background-color: #ff0000;") and a Tailwind arbitrary-value utility class
// ("bg-[#ff0000]"). The color value itself can be written as hex, rgb() or
// hsl().
package snippet

import (
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
)

// Framework selects the snippet syntax family.
type Framework string

const (
	FrameworkCSS      Framework = "css"
	FrameworkTailwind Framework = "tailwind"
)

// Property selects which style property the color is applied to.
type Property string

const (
	PropertyBackground Property = "bg"
	PropertyText       Property = "text"
	PropertyBorder     Property = "border"
)

// Format selects how the color value is written.
type Format string

const (
	FormatHex Format = "hex"
	FormatRGB Format = "rgb"
	FormatHSL Format = "hsl"
)

// cssAttributes maps a property to its CSS attribute name.
var cssAttributes = map[Property]string{
	PropertyBackground: "background-color",
	PropertyText:       "color",
	PropertyBorder:     "border-color",
}

// tailwindPrefixes maps a property to its utility-class prefix.
var tailwindPrefixes = map[Property]string{
	PropertyBackground: "bg",
	PropertyText:       "text",
	PropertyBorder:     "border",
}

// ParseFramework validates a framework name.
func ParseFramework(s string) (Framework, error) {
	switch f := Framework(strings.ToLower(s)); f {
	case FrameworkCSS, FrameworkTailwind:
		return f, nil
	}
	return "", fmt.Errorf("unknown framework: %q (must be 'css' or 'tailwind')", s)
}

// ParseProperty validates a property name. "background" and "color" are
// accepted as aliases for "bg" and "text".
func ParseProperty(s string) (Property, error) {
	switch strings.ToLower(s) {
	case "bg", "background":
		return PropertyBackground, nil
	case "text", "color":
		return PropertyText, nil
	case "border":
		return PropertyBorder, nil
	}
	return "", fmt.Errorf("unknown property: %q (must be 'bg', 'text' or 'border')", s)
}

// ParseFormat validates a value format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatHex, FormatRGB, FormatHSL:
		return f, nil
	}
	return "", fmt.Errorf("unknown format: %q (must be 'hex', 'rgb' or 'hsl')", s)
}

// Value renders hex in the requested format. Hex passes through unchanged.
// If hex cannot be parsed, rgb and hsl fall back to the raw input so the
// caller still has something to show.
func Value(hex string, format Format) string {
	c, ok := colormodel.ParseHex(hex)
	if !ok {
		return hex
	}
	switch format {
	case FormatRGB:
		return c.String()
	case FormatHSL:
		return colormodel.RGBToHSL(c).String()
	}
	return hex
}

// Generate renders a single-line snippet applying hex to property.
//
//	Generate("#ff0000", FrameworkCSS, PropertyText, FormatHex)      // "color: #ff0000;"
//	Generate("#ff0000", FrameworkTailwind, PropertyBackground, FormatRGB) // "bg-[rgb(255,_0,_0)]"
//
// Tailwind arbitrary values cannot contain spaces, so spaces in the value
// are written as underscores. Unknown properties fall back to border, the
// last of the three.
func Generate(hex string, framework Framework, property Property, format Format) string {
	value := Value(hex, format)

	if framework == FrameworkTailwind {
		prefix, ok := tailwindPrefixes[property]
		if !ok {
			prefix = tailwindPrefixes[PropertyBorder]
		}
		return fmt.Sprintf("%s-[%s]", prefix, strings.ReplaceAll(value, " ", "_"))
	}

	attr, ok := cssAttributes[property]
	if !ok {
		attr = cssAttributes[PropertyBorder]
	}
	return fmt.Sprintf("%s: %s;", attr, value)
}

// ExportCSS formats palette colors as a stylesheet of custom properties,
// numbered from 1 in palette order:
//
//	:root {
//	  --color-1: #ff0000;
//	  --color-2: #0000ff;
//	}
func ExportCSS(colors []string) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range colors {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c)
	}
	b.WriteString("}")
	return b.String()
}
