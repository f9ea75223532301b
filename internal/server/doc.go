// Package server implements the MCP (Model Context Protocol) server for the
// color tools.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image tools take an optional path. Without one they act on the image in
// the workspace (see image_load).
//   - image_load: Load an image, extract its palette and select the top color
//   - image_info, image_dimensions: Describe an image
//   - image_sample_color, image_sample_colors_multi: Read exact pixel colors
//   - image_pick: Hover or click the displayed workspace image
//   - image_dominant_colors: Ranked palette, optionally of a region
//   - image_loupe: Nearest-neighbour magnification around a point
//
// Color tools take an optional hex that defaults to the active color.
//   - color_convert: RGB, HSL, CMYK and HSV views plus copy strings
//   - color_parse: Recognize a pasted hex token
//   - color_suggestions: Tints, shades and harmonies
//   - color_snippet: CSS or Tailwind one-liner
//   - color_compare: WCAG contrast and color difference
//   - color_select, color_hover: Set the selection or hover color
//
// Workspace, palette and history:
//   - workspace_state, workspace_standalone, workspace_reset
//   - palette_get, palette_add, palette_export, palette_render
//   - history_list, history_clear
//
// # Error Handling
//
// A tool that fails returns a JSON-RPC error with code -32000 and the Go
// error string as data. A malformed color is not a failure: the color tools
// answer {"valid": false, "input": ...} instead. A request line that is not
// JSON gets a -32700 response and the server keeps reading.
//
// # Usage
//
//	ws, _ := session.New(session.Options{Extract: imaging.DefaultExtractOptions()})
//	srv, err := server.New(server.Options{Workspace: ws})
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx)
package server
