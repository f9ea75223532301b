// Package cli provides the command-line interface for color-tools-mcp.
//
// With no subcommand the binary runs the MCP server on stdio. The remaining
// subcommands expose the same color engine for scripting and debugging.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags are the persistent flags shared by every command. Each one
// overrides the matching COLOR_MCP_* variable when set.
type globalFlags struct {
	logLevel    string
	historyFile string
	historySize int
	paletteSize int
	jsonOutput  bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   version.Name,
		Short: "MCP server for picking, converting and exporting image colors",
		Long: `color-tools-mcp extracts dominant color palettes from images, converts colors
between HEX, RGB, HSL, CMYK and HSV, suggests tints, shades and harmonies, and
generates CSS and Tailwind snippets.

Run without a subcommand to serve the tools over MCP (JSON-RPC on stdio).
Configure it in your MCP client, for example Claude Desktop.

Environment variables:
  COLOR_MCP_LOG_LEVEL           trace, debug, info, warn, error or off
  COLOR_MCP_HISTORY_FILE        history location (empty keeps it in memory)
  COLOR_MCP_HISTORY_SIZE        colors kept in history
  COLOR_MCP_PALETTE_SIZE        colors extracted per image
  COLOR_MCP_ALPHA_THRESHOLD     pixels with lower alpha are ignored
  COLOR_MCP_BUCKET_SIZE         quantization step per channel
  COLOR_MCP_WORKING_WIDTH       width images are downscaled to before sampling
  COLOR_MCP_MAX_WORKING_HEIGHT  height limit of the downscaled copy
  COLOR_MCP_SAMPLE_STRIDE       sample every Nth pixel`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	pf.StringVar(&flags.historyFile, "history-file", "", "history file (default: user config dir)")
	pf.IntVar(&flags.historySize, "history-size", 0, "colors kept in history (1-100)")
	pf.IntVar(&flags.paletteSize, "palette-size", 0, "colors extracted per image (1-64)")
	pf.BoolVar(&flags.jsonOutput, "json", false, "print results as JSON")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newExtractCmd(flags))
	rootCmd.AddCommand(newConvertCmd(flags))
	rootCmd.AddCommand(newSuggestCmd(flags))
	rootCmd.AddCommand(newSnippetCmd(flags))
	rootCmd.AddCommand(newCompareCmd(flags))
	rootCmd.AddCommand(newVersionCmd(flags))

	return rootCmd
}

// loadConfig reads the environment and applies any flags the user set in
// fs.
func loadConfig(fs *pflag.FlagSet, flags *globalFlags) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	changed := fs.Changed
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("history-file") {
		cfg.HistoryFile = flags.historyFile
	}
	if changed("history-size") {
		cfg.HistorySize = flags.historySize
	}
	if changed("palette-size") {
		cfg.PaletteSize = flags.paletteSize
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger writing to w. Stdout carries the protocol, so
// callers pass stderr.
func newLogger(cfg config.Config, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   version.Name,
		Output: w,
		Level:  cfg.Level(),
	})
}

func newVersionCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.jsonOutput {
				return printJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
}
