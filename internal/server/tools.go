package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func propDefault(typ, description string, def interface{}) map[string]interface{} {
	p := prop(typ, description)
	p["default"] = def
	return p
}

func enumProp(description string, def string, values ...string) map[string]interface{} {
	p := propDefault("string", description, def)
	p["enum"] = values
	return p
}

// optionalPath is the path property of tools that fall back to the
// workspace image.
var optionalPath = prop("string", "Absolute path to an image file. Defaults to the image loaded with image_load")

// optionalHex is the hex property of tools that fall back to the active color.
var optionalHex = prop("string", "Hex color such as #6366f1 or f00. Defaults to the active color (hovered, else selected)")

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Operations
		{
			Name: "image_load",
			Description: "Load an image into the workspace from a file path or base64 data, extract its dominant color palette, " +
				"and select the first palette color. Replaces any previous image.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": prop("string", "Absolute path to the image file (PNG, JPEG, GIF or WebP)"),
				"data": prop("string", "Base64 image data, optionally as a data: URL. Use instead of path"),
			}),
		},
		{
			Name:        "image_info",
			Description: "Get format, dimensions, color depth, alpha channel and file size of an image.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": optionalPath,
			}),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": optionalPath,
			}),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": optionalPath,
				"x":    prop("integer", "X coordinate (0-based, from left)"),
				"y":    prop("integer", "Y coordinate (0-based, from top)"),
			}, "x", "y"),
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at multiple labeled pixel coordinates in one call.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": optionalPath,
				"points": map[string]interface{}{
					"type":        "array",
					"description": "Points to sample",
					"items": objectSchema(map[string]interface{}{
						"x":     prop("integer", "X coordinate"),
						"y":     prop("integer", "Y coordinate"),
						"label": prop("string", "Optional label for this point"),
					}, "x", "y"),
				},
			}, "points"),
		},
		{
			Name: "image_pick",
			Description: "Pick the color under a pointer position on the displayed workspace image. Positions are scaled from " +
				"the display size to the natural size and clamped to the image. With commit the color is selected and recorded " +
				"in history, otherwise it only becomes the hover color.",
			InputSchema: objectSchema(map[string]interface{}{
				"x":              prop("number", "Pointer X on the displayed image"),
				"y":              prop("number", "Pointer Y on the displayed image"),
				"display_width":  prop("number", "Displayed image width. Omit when shown at natural size"),
				"display_height": prop("number", "Displayed image height. Omit when shown at natural size"),
				"commit":         prop("boolean", "Select the color (click) instead of hovering it"),
			}, "x", "y"),
		},
		{
			Name: "image_dominant_colors",
			Description: "Extract the most frequent colors. The image is downscaled to a 100px working copy, every 4th pixel is " +
				"sampled, near-transparent pixels are skipped and channels are quantized to steps of 20.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":  optionalPath,
				"count": propDefault("integer", "Maximum number of colors to return", 5),
				"region": objectSchema(map[string]interface{}{
					"x1": prop("integer", "Left edge (inclusive)"),
					"y1": prop("integer", "Top edge (inclusive)"),
					"x2": prop("integer", "Right edge (exclusive)"),
					"y2": prop("integer", "Bottom edge (exclusive)"),
				}, "x1", "y1", "x2", "y2"),
			}),
		},
		{
			Name:        "image_loupe",
			Description: "Magnify the pixels around a point with nearest-neighbour zoom and return a base64 PNG.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":   optionalPath,
				"x":      prop("integer", "Center X coordinate"),
				"y":      prop("integer", "Center Y coordinate"),
				"radius": propDefault("integer", "Pixels on each side of the center", 5),
				"zoom":   propDefault("integer", "Magnification factor", 10),
			}, "x", "y"),
		},

		// Color Operations
		{
			Name:        "color_convert",
			Description: "Convert a hex color to RGB, HSL, CMYK and HSV, with copy-ready strings and a legible contrast text color.",
			InputSchema: objectSchema(map[string]interface{}{
				"hex": optionalHex,
			}),
		},
		{
			Name:        "color_parse",
			Description: "Recognize pasted text as a hex color token (3 or 6 hex digits, optional #).",
			InputSchema: objectSchema(map[string]interface{}{
				"text": prop("string", "Text to recognize"),
			}, "text"),
		},
		{
			Name:        "color_suggestions",
			Description: "Generate tints, shades, and analogous, triadic, split-complementary and complementary harmonies.",
			InputSchema: objectSchema(map[string]interface{}{
				"hex": optionalHex,
			}),
		},
		{
			Name:        "color_snippet",
			Description: "Generate a one-line CSS declaration or Tailwind arbitrary-value class for a color.",
			InputSchema: objectSchema(map[string]interface{}{
				"hex":       optionalHex,
				"framework": enumProp("Output syntax", "css", "css", "tailwind"),
				"property":  enumProp("Style property", "bg", "bg", "text", "border"),
				"format":    enumProp("Value notation", "hex", "hex", "rgb", "hsl"),
			}),
		},
		{
			Name:        "color_compare",
			Description: "Compare two colors: WCAG contrast ratio and pass levels, CIEDE2000 difference and mean channel difference.",
			InputSchema: objectSchema(map[string]interface{}{
				"a": prop("string", "First hex color"),
				"b": prop("string", "Second hex color"),
			}, "a", "b"),
		},
		{
			Name:        "color_select",
			Description: "Select a color and record it in history.",
			InputSchema: objectSchema(map[string]interface{}{
				"hex": prop("string", "Hex color to select"),
			}, "hex"),
		},
		{
			Name:        "color_hover",
			Description: "Set the hover color, which takes precedence over the selection as the active color. Empty clears it.",
			InputSchema: objectSchema(map[string]interface{}{
				"hex": prop("string", "Hex color, or empty to clear"),
			}, "hex"),
		},

		// Workspace
		{
			Name:        "workspace_state",
			Description: "Get the workspace mode, image, palette, selected, hover and active colors, and history.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "workspace_standalone",
			Description: "Work without an image: clears the image and palette and selects #6366f1.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "workspace_reset",
			Description: "Clear the image, palette and selection. History is kept.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},

		// Palette and History
		{
			Name:        "palette_get",
			Description: "List the palette colors with their contrast text colors.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "palette_add",
			Description: "Add a color to the palette. When full, the last color is replaced.",
			InputSchema: objectSchema(map[string]interface{}{
				"hex": optionalHex,
			}),
		},
		{
			Name:        "palette_export",
			Description: "Export the palette as a palette.css stylesheet of --color-N custom properties.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "palette_render",
			Description: "Render the palette as a strip of labeled swatches and return a base64 PNG.",
			InputSchema: objectSchema(map[string]interface{}{
				"size": propDefault("integer", "Swatch edge in pixels (56-256)", 64),
			}),
		},
		{
			Name:        "history_list",
			Description: "List recently selected colors, most recent first.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "history_clear",
			Description: "Clear the selection history.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
