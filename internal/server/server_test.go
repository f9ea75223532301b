package server

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/session"
	"github.com/ironsheep/color-tools-mcp/internal/version"
)

// newTestServer returns a server over a fresh workspace sharing one cache.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	cache := imaging.NewImageCache()
	ws, err := session.New(session.Options{
		Extract: imaging.DefaultExtractOptions(),
		Cache:   cache,
	})
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}
	s, err := New(Options{Workspace: ws, Cache: cache})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := newTestServer(t)
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.extractor == nil {
		t.Fatal("New() did not initialize extractor")
	}
	if s.log == nil {
		t.Fatal("New() did not initialize logger")
	}
}

func TestNew_RequiresWorkspace(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("New without a workspace should fail")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
			if req.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", req.JSONRPC)
			}
		})
	}
}

func TestMCPResponse_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(MCPResponse{
		JSONRPC: "2.0",
		ID:      1,
		Error:   &MCPError{Code: codeMethodNotFound, Message: "Method not found"},
	})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	s := string(data)
	if strings.Contains(s, `"result"`) {
		t.Errorf("error response should omit result: %s", s)
	}
	if strings.Contains(s, `"data"`) {
		t.Errorf("error without data should omit it: %s", s)
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
	})

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != 1 {
		t.Errorf("ID: got %v, want 1", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != version.Name {
		t.Errorf("serverInfo.name: got %v, want %s", serverInfo["name"], version.Name)
	}
	if serverInfo["version"] != version.Version {
		t.Errorf("serverInfo.version: got %v, want %s", serverInfo["version"], version.Version)
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      "ping-1",
		Method:  "ping",
	})

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != "ping-1" {
		t.Errorf("ID: got %v, want ping-1", resp.ID)
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	})
	if resp != nil {
		t.Error("notifications/initialized should return nil response")
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(context.Background(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "nonexistent/method",
	})

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error == nil {
		t.Fatal("Expected error for unknown method")
	}
	if resp.Error.Code != codeMethodNotFound {
		t.Errorf("Error code: got %d, want %d", resp.Error.Code, codeMethodNotFound)
	}
}

// decodeResponses splits Serve output into responses.
func decodeResponses(t *testing.T, out *bytes.Buffer) []MCPResponse {
	t.Helper()
	var resps []MCPResponse
	dec := json.NewDecoder(out)
	for dec.More() {
		var r MCPResponse
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		resps = append(resps, r)
	}
	return resps
}

func TestServe(t *testing.T) {
	s := newTestServer(t)
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"color_parse","arguments":{"text":" F00 "}}}`,
		`{"jsonrpc":"2.0","id":4,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.Serve(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	resps := decodeResponses(t, &out)
	if len(resps) != 4 {
		t.Fatalf("got %d responses, want 4", len(resps))
	}
	for i, want := range []float64{1, 2, 3, 4} {
		if resps[i].ID != want {
			t.Errorf("response %d: ID got %v, want %v", i, resps[i].ID, want)
		}
		if resps[i].Error != nil {
			t.Errorf("response %d: unexpected error %v", i, resps[i].Error)
		}
	}

	text := toolText(t, resps[2].Result)
	if !strings.Contains(text, `"hex": "#ff0000"`) {
		t.Errorf("color_parse result: %s", text)
	}
}

func TestServe_ParseError(t *testing.T) {
	s := newTestServer(t)
	in := "{not json\n" + `{"jsonrpc":"2.0","id":7,"method":"ping"}` + "\n"

	var out bytes.Buffer
	if err := s.Serve(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	resps := decodeResponses(t, &out)
	if len(resps) != 2 {
		t.Fatalf("got %d responses, want 2", len(resps))
	}
	if resps[0].Error == nil || resps[0].Error.Code != codeParseError {
		t.Errorf("first response should be a parse error, got %+v", resps[0])
	}
	if resps[0].ID != nil {
		t.Errorf("parse error ID: got %v, want nil", resps[0].ID)
	}
	if resps[1].Error != nil || resps[1].ID != float64(7) {
		t.Errorf("server should keep serving after a parse error, got %+v", resps[1])
	}
}

func TestServe_Canceled(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := s.Serve(ctx, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &out)
	if err != context.Canceled {
		t.Errorf("Serve error: got %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("canceled Serve should not respond, wrote %q", out.String())
	}
}
