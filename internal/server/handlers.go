package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/color-tools-mcp/internal/colormodel"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/session"
	"github.com/ironsheep/color-tools-mcp/internal/snippet"
	"github.com/ironsheep/color-tools-mcp/internal/suggest"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "color_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage("{}")
	}

	start := time.Now()
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	s.log.Debug("tool call", "tool", params.Name, "duration", time.Since(start))

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Operations
	case "image_load":
		return s.handleImageLoad(ctx, args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_pick":
		return s.handleImagePick(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_loupe":
		return s.handleImageLoupe(args)

	// Color Operations
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_parse":
		return s.handleColorParse(args)
	case "color_suggestions":
		return s.handleColorSuggestions(args)
	case "color_snippet":
		return s.handleColorSnippet(args)
	case "color_compare":
		return s.handleColorCompare(args)
	case "color_select":
		return s.handleColorSelect(args)
	case "color_hover":
		return s.handleColorHover(args)

	// Workspace
	case "workspace_state":
		return s.workspace.State(), nil
	case "workspace_standalone":
		s.workspace.Standalone()
		return s.workspace.State(), nil
	case "workspace_reset":
		s.workspace.Reset()
		return s.workspace.State(), nil

	// Palette and History
	case "palette_get":
		return map[string]interface{}{"palette": s.workspace.Palette()}, nil
	case "palette_add":
		return s.handlePaletteAdd(args)
	case "palette_export":
		return s.handlePaletteExport()
	case "palette_render":
		return s.handlePaletteRender(args)
	case "history_list":
		return map[string]interface{}{"history": s.workspace.History()}, nil
	case "history_clear":
		s.workspace.ClearHistory()
		return map[string]interface{}{"history": []string{}}, nil

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// invalidColor is the result for a malformed color input. Malformed colors
// are reported in the result rather than as tool errors.
func invalidColor(input string) map[string]interface{} {
	return map[string]interface{}{
		"valid": false,
		"input": input,
	}
}

// image resolves the target of an image tool: the file at path if given,
// else the workspace's current image.
func (s *Server) image(path string) (image.Image, error) {
	if path != "" {
		return s.cache.Load(path)
	}
	img, err := s.workspace.CurrentImage()
	if err != nil {
		return nil, fmt.Errorf("%w: pass a path or call image_load first", err)
	}
	return img, nil
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
	Data string `json:"data"`
}

func (s *Server) handleImageLoad(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	result, err := s.workspace.Load(ctx, session.Source{Path: a.Path, Data: a.Data})
	if errors.Is(err, session.ErrStaleLoad) {
		s.log.Debug("image load superseded", "path", a.Path)
		return map[string]interface{}{"stale": true}, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		state := s.workspace.State()
		if state.Image == nil {
			return nil, fmt.Errorf("%w: pass a path or call image_load first", session.ErrNoImage)
		}
		return state.Image, nil
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.Path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &imaging.DimensionsResult{Width: b.Dx(), Height: b.Dy()}, nil
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imagePickArgs struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	DisplayWidth  float64 `json:"display_width"`
	DisplayHeight float64 `json:"display_height"`
	Commit        bool    `json:"commit"`
}

func (s *Server) handleImagePick(args json.RawMessage) (interface{}, error) {
	var a imagePickArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var display *imaging.DisplaySize
	if a.DisplayWidth > 0 && a.DisplayHeight > 0 {
		display = &imaging.DisplaySize{Width: a.DisplayWidth, Height: a.DisplayHeight}
	}

	c, err := s.workspace.PickAt(display, a.X, a.Y, a.Commit)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"color":     c,
		"committed": a.Commit,
		"active":    s.workspace.Active(),
	}, nil
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.Path)
	if err != nil {
		return nil, err
	}
	return s.extractor.DominantColors(img, a.Count, a.Region)
}

type imageLoupeArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Radius int    `json:"radius"`
	Zoom   int    `json:"zoom"`
}

func (s *Server) handleImageLoupe(args json.RawMessage) (interface{}, error) {
	var a imageLoupeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.image(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Loupe(img, a.X, a.Y, a.Radius, a.Zoom)
}

// === Color Handlers ===

type colorArgs struct {
	Hex string `json:"hex"`
}

// colorOrActive returns hex, or the workspace's active color when hex is
// empty.
func (s *Server) colorOrActive(hex string) (string, error) {
	if hex != "" {
		return hex, nil
	}
	if active := s.workspace.Active(); active != "" {
		return active, nil
	}
	return "", errors.New("no color given and no color selected")
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	hex, err := s.colorOrActive(a.Hex)
	if err != nil {
		return nil, err
	}

	view, ok := colormodel.Describe(hex)
	if !ok {
		return invalidColor(hex), nil
	}
	return map[string]interface{}{"valid": true, "color": view}, nil
}

type colorParseArgs struct {
	Text string `json:"text"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorParseArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	hex, ok := colormodel.RecognizeHex(a.Text)
	if !ok {
		return invalidColor(a.Text), nil
	}
	return map[string]interface{}{"valid": true, "hex": hex}, nil
}

func (s *Server) handleColorSuggestions(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	hex, err := s.colorOrActive(a.Hex)
	if err != nil {
		return nil, err
	}

	set, ok := suggest.Generate(hex)
	if !ok {
		return invalidColor(hex), nil
	}
	return map[string]interface{}{"valid": true, "suggestions": set}, nil
}

type colorSnippetArgs struct {
	Hex       string `json:"hex"`
	Framework string `json:"framework"`
	Property  string `json:"property"`
	Format    string `json:"format"`
}

func (s *Server) handleColorSnippet(args json.RawMessage) (interface{}, error) {
	var a colorSnippetArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Framework == "" {
		a.Framework = string(snippet.FrameworkCSS)
	}
	if a.Property == "" {
		a.Property = string(snippet.PropertyBackground)
	}
	if a.Format == "" {
		a.Format = string(snippet.FormatHex)
	}

	framework, err := snippet.ParseFramework(a.Framework)
	if err != nil {
		return nil, err
	}
	property, err := snippet.ParseProperty(a.Property)
	if err != nil {
		return nil, err
	}
	format, err := snippet.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}

	hex, err := s.colorOrActive(a.Hex)
	if err != nil {
		return nil, err
	}
	if _, ok := colormodel.ParseHex(hex); !ok {
		return invalidColor(hex), nil
	}

	return map[string]interface{}{
		"valid":     true,
		"framework": framework,
		"property":  property,
		"format":    format,
		"snippet":   snippet.Generate(hex, framework, property, format),
	}, nil
}

type colorCompareArgs struct {
	A string `json:"a"`
	B string `json:"b"`
}

func (s *Server) handleColorCompare(args json.RawMessage) (interface{}, error) {
	var a colorCompareArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	cmp, ok := colormodel.Compare(a.A, a.B)
	if !ok {
		return map[string]interface{}{"valid": false, "a": a.A, "b": a.B}, nil
	}
	return map[string]interface{}{"valid": true, "comparison": cmp}, nil
}

func (s *Server) handleColorSelect(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if _, ok := s.workspace.Select(a.Hex); !ok {
		return invalidColor(a.Hex), nil
	}
	return s.workspace.State(), nil
}

func (s *Server) handleColorHover(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	hover, ok := s.workspace.Hover(a.Hex)
	if !ok {
		return invalidColor(a.Hex), nil
	}
	return map[string]interface{}{"hover": hover, "active": s.workspace.Active()}, nil
}

// === Palette Handlers ===

func (s *Server) handlePaletteAdd(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	hex, err := s.colorOrActive(a.Hex)
	if err != nil {
		return nil, err
	}
	if _, ok := colormodel.ParseHex(hex); !ok {
		return invalidColor(hex), nil
	}
	added := s.workspace.AddToPalette(hex)
	return map[string]interface{}{
		"added":   added,
		"palette": s.workspace.Palette(),
	}, nil
}

func (s *Server) handlePaletteExport() (interface{}, error) {
	colors := s.workspace.PaletteColors()
	return map[string]interface{}{
		"filename": "palette.css",
		"colors":   len(colors),
		"css":      snippet.ExportCSS(colors),
	}, nil
}

type paletteRenderArgs struct {
	Size int `json:"size"`
}

func (s *Server) handlePaletteRender(args json.RawMessage) (interface{}, error) {
	var a paletteRenderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.RenderSwatches(s.workspace.PaletteColors(), a.Size)
}
