package cli_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/cli"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	// Keep tests away from the user's real history file.
	t.Setenv("COLOR_MCP_HISTORY_FILE", "")

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeSplitPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if x < 100 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	path := filepath.Join(t.TempDir(), "split.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestServe(t *testing.T) {
	historyPath := filepath.Join(t.TempDir(), "history.json")
	stdin := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"color_select","arguments":{"hex":"#abc"}}}`,
	}, "\n") + "\n"

	// The root command serves when no subcommand is given.
	for _, args := range [][]string{
		{"--history-file", historyPath},
		{"serve", "--history-file", historyPath, "--log-level", "debug"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, _, err := run(t, stdin, args...)
			if err != nil {
				t.Fatalf("serve failed: %v", err)
			}
			if n := strings.Count(out, "\n"); n != 2 {
				t.Fatalf("got %d response lines, want 2:\n%s", n, out)
			}
			if !strings.Contains(out, `"serverInfo"`) {
				t.Errorf("missing initialize response:\n%s", out)
			}

			data, err := os.ReadFile(historyPath)
			if err != nil {
				t.Fatalf("history not written: %v", err)
			}
			var history []string
			if err := json.Unmarshal(data, &history); err != nil {
				t.Fatal(err)
			}
			if len(history) != 1 || history[0] != "#aabbcc" {
				t.Errorf("history: got %v, want [#aabbcc]", history)
			}
		})
	}
}

func TestServe_DebugLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n", "serve", "--log-level", "debug")
	if err != nil {
		t.Fatalf("serve failed: %v", err)
	}
	if !strings.Contains(stderr, "starting") {
		t.Errorf("expected startup log on stderr, got %q", stderr)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := [][]string{
		{"serve", "--log-level", "loud"},
		{"serve", "--history-size", "0"},
		{"extract", "--palette-size", "100", "x.png"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, _, err := run(t, "", args...)
			if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestInvalidEnvironment(t *testing.T) {
	t.Setenv("COLOR_MCP_BUCKET_SIZE", "big")
	if _, _, err := run(t, "", "serve"); err == nil || !strings.Contains(err.Error(), "COLOR_MCP_BUCKET_SIZE") {
		t.Errorf("expected error naming the variable, got %v", err)
	}
}

func TestExtract(t *testing.T) {
	path := writeSplitPNG(t)

	out, _, err := run(t, "", "extract", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "#ff0000") || !strings.HasPrefix(lines[1], "#0000ff") {
		t.Errorf("unexpected order:\n%s", out)
	}

	out, _, err = run(t, "", "extract", "--format", "css", "--region", "100,0,200,100", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if want := ":root {\n  --color-1: #0000ff;\n}\n"; out != want {
		t.Errorf("css output:\n%q\nwant:\n%q", out, want)
	}

	out, _, err = run(t, "", "extract", "--json", "-c", "1", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	var result struct {
		Colors []struct {
			Hex string `json:"hex"`
		} `json:"colors"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(result.Colors) != 1 || result.Colors[0].Hex != "#ff0000" {
		t.Errorf("json colors: %+v", result.Colors)
	}
}

func TestExtract_Errors(t *testing.T) {
	path := writeSplitPNG(t)

	tests := [][]string{
		{"extract", "/nonexistent/image.png"},
		{"extract", "--region", "1,2,3", path},
		{"extract", "--region", "0,0,500,500", path},
		{"extract", "--format", "yaml", path},
		{"extract"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, _, err := run(t, "", args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestColorCommands(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"convert", "F00"}, []string{"HEX   #ff0000", "RGB   rgb(255, 0, 0)", "HSL   hsl(0, 100%, 50%)", "TEXT  #FFFFFF"}},
		{[]string{"suggest", "#ff0000"}, []string{"complement #00ffff"}},
		{[]string{"snippet", "6366f1"}, []string{"background-color: #6366f1;"}},
		{[]string{"snippet", "6366f1", "-p", "text", "-f", "rgb"}, []string{"color: rgb(99, 102, 241);"}},
		{[]string{"snippet", "#00f", "--framework", "tailwind", "-p", "border"}, []string{"border-[#0000ff]"}},
		{[]string{"compare", "#000", "#fff"}, []string{"contrast  21.00:1 (AA pass, AA large pass, AAA pass)"}},
		{[]string{"version"}, []string{"color-tools-mcp"}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestColorCommands_Invalid(t *testing.T) {
	tests := [][]string{
		{"convert", "#12345"},
		{"suggest", "red"},
		{"snippet", "#ggg"},
		{"snippet", "#fff", "--framework", "sass"},
		{"compare", "#fff", "nope"},
		{"convert"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, _, err := run(t, "", args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
