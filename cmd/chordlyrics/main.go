package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/chordlyrics/internal/config"
	"github.com/handiism/chordlyrics/internal/convert"
	"github.com/handiism/chordlyrics/internal/library"
	"github.com/handiism/chordlyrics/internal/lyrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger   *zap.Logger
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "chordlyrics",
	Short: "Song lyrics with guitar chords",
	Long: `Browse, transpose and convert song lyrics annotated with guitar chords.

Songs come from the built-in catalog, a catalog file, an online lyrics
service ("Artist - Title" queries) or the lyrics stored in MP3 tags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The TUI owns the terminal; keep log output away from it
		if cmd.Name() == "tui" {
			logger = zap.NewNop()
		} else {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		settings, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		logger.Debug("Loaded settings", zap.String("path", path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (.json or .yaml)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(id3Cmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// openLibrary wires the catalog, lyrics client and converter from settings.
func openLibrary() (*library.Library, error) {
	cat, err := settings.OpenCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	opts := settings.ToClientOptions()
	opts.Logger = logger.Named("lyrics")
	client := lyrics.NewClient(opts)

	converter := convert.New(settings.ToConvertOptions())
	return library.New(cat, client, converter, logger.Named("library")), nil
}
