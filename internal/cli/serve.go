package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/ironsheep/color-tools-mcp/internal/session"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
	"github.com/ironsheep/color-tools-mcp/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the color tools over MCP on stdio (default)",
		Long: `Serve reads JSON-RPC requests from stdin, one per line, and writes responses
to stdout. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
}

func runServe(cmd *cobra.Command, flags *globalFlags) error {
	cfg, err := loadConfig(cmd.Flags(), flags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Warn("stdin is a terminal; this server expects an MCP client on stdio")
	}

	srv, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "version", version.Version, "commit", version.Commit, "history", cfg.HistoryFile)
	err = srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		logger.Info("shutting down")
		return nil
	}
	return err
}

// newServer wires the workspace and the MCP server from cfg. Both share one
// image cache.
func newServer(cfg config.Config, logger hclog.Logger) (*server.Server, error) {
	history := newHistory(cfg, logger)
	cache := imaging.NewImageCache()

	ws, err := session.New(session.Options{
		PaletteSize: cfg.PaletteSize,
		Extract:     cfg.ExtractOptions(),
		Cache:       cache,
		History:     history,
		Logger:      logger.Named("workspace"),
	})
	if err != nil {
		return nil, err
	}

	extractor, err := imaging.NewExtractor(cfg.ExtractOptions())
	if err != nil {
		return nil, err
	}

	return server.New(server.Options{
		Workspace: ws,
		Cache:     cache,
		Extractor: extractor,
		Logger:    logger.Named("server"),
	})
}

// newHistory opens the configured history. A history that cannot be read is
// logged and started empty.
func newHistory(cfg config.Config, logger hclog.Logger) *swatch.History {
	var store swatch.Store
	if cfg.HistoryFile != "" {
		store = swatch.NewFileStore(cfg.HistoryFile)
	}
	history := swatch.NewHistory(cfg.HistorySize, store)
	if err := history.Load(); err != nil {
		logger.Warn("starting with empty history", "error", err)
	}
	return history
}
