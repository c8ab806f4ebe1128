package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shnupta/pick/internal/config"
	"github.com/shnupta/pick/internal/source"
	"github.com/shnupta/pick/internal/tui"
)

// version is set by goreleaser via ldflags
var version = "dev"

const long = `pick — interactive fuzzy line finder

Reads lines from FILE, or from stdin when it is piped, and lets you narrow
them down by typing. The chosen line is printed to stdout.

Key bindings:
  type                  Filter lines (case-insensitive, in-order characters)
  backspace             Delete the last query character
  ↑ / ↓, ctrl+p/ctrl+n  Move the selection
  enter                 Print the selected line and exit
  esc / ctrl+c          Exit without printing

Configuration is read from $XDG_CONFIG_HOME/pick/config.yaml,
~/.config/pick/config.yaml or ~/.pick/config.json.
`

// runSession runs the interactive finder. Tests replace it.
var runSession = tui.Run

type options struct {
	configPath string
	rankAll    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "pick [FILE]",
		Short:         "Interactive fuzzy line finder",
		Long:          long,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, path, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "read configuration from this file")
	cmd.Flags().BoolVar(&opts.rankAll, "rank-all", false, "rank every matching line, not just the first screenful")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")

	return cmd
}

func run(cmd *cobra.Command, path string, opts options) error {
	closeLog, err := setupLogging(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := config.Load()
	if opts.configPath != "" {
		if cfg, err = config.LoadFile(opts.configPath); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if cmd.Flags().Changed("rank-all") {
		cfg.RankAll = opts.rankAll
	}

	lines, err := source.Load(path, os.Stdin)
	if err != nil {
		return err
	}
	slog.Debug("lines loaded", "count", len(lines), "path", path)

	line, ok, err := runSession(lines, cfg)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

// setupLogging routes slog to path, or discards records when path is empty.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { f.Close() }, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pick:", err)
		os.Exit(1)
	}
}
