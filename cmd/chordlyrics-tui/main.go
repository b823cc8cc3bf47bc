package main

import (
	"fmt"
	"os"

	"github.com/handiism/chordlyrics/internal/config"
	"github.com/handiism/chordlyrics/internal/convert"
	"github.com/handiism/chordlyrics/internal/library"
	"github.com/handiism/chordlyrics/internal/lyrics"
	"github.com/handiism/chordlyrics/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat, err := settings.OpenCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	lib := library.New(cat, lyrics.NewClient(settings.ToClientOptions()), convert.New(settings.ToConvertOptions()), nil)
	return tui.Run(lib, cat.Featured(3))
}
