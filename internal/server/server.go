package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/session"
	"github.com/ironsheep/color-tools-mcp/internal/version"
)

// Protocol version announced in the initialize handshake.
const protocolVersion = "2024-11-05"

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// Server handles MCP protocol communication
type Server struct {
	log       hclog.Logger
	cache     *imaging.ImageCache
	extractor *imaging.Extractor
	workspace *session.Workspace
}

// Options configures a Server.
type Options struct {
	// Workspace receives the session tools (load, select, palette, history).
	Workspace *session.Workspace

	// Cache serves the tools that take an explicit image path. It should be
	// the cache the workspace uses.
	Cache *imaging.ImageCache

	// Extractor serves image_dominant_colors.
	Extractor *imaging.Extractor

	Logger hclog.Logger
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a new MCP server instance
func New(opts Options) (*Server, error) {
	if opts.Workspace == nil {
		return nil, errors.New("server requires a workspace")
	}

	s := &Server{
		log:       opts.Logger,
		cache:     opts.Cache,
		extractor: opts.Extractor,
		workspace: opts.Workspace,
	}
	if s.log == nil {
		s.log = hclog.NewNullLogger()
	}
	if s.cache == nil {
		s.cache = imaging.NewImageCache()
	}
	if s.extractor == nil {
		e, err := imaging.NewExtractor(imaging.DefaultExtractOptions())
		if err != nil {
			return nil, err
		}
		s.extractor = e
	}
	return s, nil
}

// Run serves MCP on stdin and stdout until stdin closes.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to
// w. It returns when r is exhausted or ctx is canceled.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Inline base64 images make for long lines.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 32*1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var resp *MCPResponse
		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn("failed to parse request", "error", err)
			resp = s.errorResponse(nil, codeParseError, "Parse error", err.Error())
		} else {
			resp = s.handleRequest(ctx, &req)
		}

		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(ctx context.Context, req *MCPRequest) *MCPResponse {
	s.log.Trace("request", "method", req.Method, "id", req.ID)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return s.errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    version.Name,
				"version": version.Version,
			},
		},
	}
}
