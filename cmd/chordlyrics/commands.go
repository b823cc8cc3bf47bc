package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/handiism/chordlyrics/internal/catalog"
	"github.com/handiism/chordlyrics/internal/config"
	"github.com/handiism/chordlyrics/internal/convert"
	ioutils "github.com/handiism/chordlyrics/internal/io"
	"github.com/handiism/chordlyrics/internal/model"
	"github.com/handiism/chordlyrics/internal/render"
	"github.com/handiism/chordlyrics/internal/transpose"
	"github.com/handiism/chordlyrics/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// formatJSON selects JSON output in addition to the render formats.
const formatJSON = "json"

// Output flags shared by the commands that print a song
var (
	outputFormat string
	noHeader     bool
	semitones    int
	targetKey    string
)

// Command specific flags
var (
	searchJSON  bool
	convTitle   string
	convArtist  string
	importLimit int
	importOut   string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search songs by title, artist or album",
	Long: `Searches the catalog. When nothing matches and the query has the form
"Artist - Title", the lyrics are looked up online and converted.
An empty query lists the whole catalog.`,
	RunE: runSearch,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a catalog song, optionally transposed",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert plain lyrics into a chord song",
	Long: `Reads lyrics from a file, or from stdin when no file or "-" is given.
Inline chords such as "C", "(Am)" or "F#m7" are extracted and placed above
the lyrics; lines without chords get a filler progression.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <artist> <title>",
	Short: "Fetch lyrics online and convert them",
	Args:  cobra.ExactArgs(2),
	RunE:  runFetch,
}

var id3Cmd = &cobra.Command{
	Use:   "id3 <file.mp3>...",
	Short: "Convert the lyrics stored in MP3 tags",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runID3,
}

var exportCmd = &cobra.Command{
	Use:   "export <dir> [id]...",
	Short: "Write catalog songs to files",
	Long: `Renders catalog songs into dir, one file per song named "Artist - Title".
Without ids the whole catalog is exported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive browser",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.DefaultSettings().Save(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or chordpro (default from config)")
	exportCmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the title block")

	for _, cmd := range []*cobra.Command{showCmd, convertCmd, fetchCmd} {
		cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text, chordpro or json (default from config)")
		cmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the title block")
		cmd.Flags().IntVarP(&semitones, "transpose", "t", 0, "Transpose by semitones")
		cmd.Flags().StringVarP(&targetKey, "key", "k", "", "Transpose to this key (overrides --transpose)")
	}

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print results as a JSON catalog")

	convertCmd.Flags().StringVar(&convTitle, "title", "Untitled", "Song title")
	convertCmd.Flags().StringVar(&convArtist, "artist", "Unknown", "Song artist")

	id3Cmd.Flags().IntVar(&importLimit, "limit", 0, "Files read in parallel (default from config)")
	id3Cmd.Flags().StringVarP(&importOut, "output", "o", "", "Write converted songs to this catalog file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	logger.Debug("Searching", zap.String("query", query))
	songs, err := lib.Search(ctx, query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		return catalog.Write(out, songs)
	}
	if len(songs) == 0 {
		fmt.Fprintln(out, "No songs found")
		return nil
	}
	for _, song := range songs {
		fmt.Fprintf(out, "%-20s %s - %s [%s]\n", song.ID, song.Artist, song.Title, song.Key)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cat, err := settings.OpenCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	song, err := cat.Get(args[0])
	if err != nil {
		return err
	}
	return printSong(cmd, song)
}

func runConvert(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading lyrics: %w", err)
	}

	song := convert.New(settings.ToConvertOptions()).Convert(string(raw), convTitle, convArtist)
	logger.Debug("Converted lyrics", zap.String("id", song.ID), zap.Int("lines", len(song.Lines)))
	return printSong(cmd, song)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	song, err := lib.Fetch(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return printSong(cmd, song)
}

func runID3(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	lib, err := openLibrary()
	if err != nil {
		return err
	}

	limit := importLimit
	if limit <= 0 {
		limit = settings.MaxConcurrentImport
	}

	results, err := lib.ImportID3(ctx, args, limit)
	if err != nil {
		return err
	}

	var songs []model.Song
	failed := 0
	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintln(out, r.String())
		if r.Err != nil {
			failed++
			continue
		}
		songs = append(songs, r.Song)
	}

	if importOut != "" {
		if err := catalog.SaveFile(importOut, songs); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %d songs to %s\n", len(songs), importOut)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cat, err := settings.OpenCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	songs := cat.Songs()
	if len(args) > 1 {
		songs = make([]model.Song, 0, len(args)-1)
		for _, id := range args[1:] {
			song, err := cat.Get(id)
			if err != nil {
				return err
			}
			songs = append(songs, song)
		}
	}

	name := outputFormat
	if name == "" {
		name = settings.RenderFormat
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return err
	}

	paths, err := ioutils.ExportSongs(ctx, args[0], songs, render.NewRenderer(format, settings.ShowHeader && !noHeader))
	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if err != nil {
		return err
	}
	logger.Debug("Exported songs", zap.Int("count", len(paths)), zap.String("dir", args[0]))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	return tui.Run(lib, lib.Catalog().Featured(3))
}

// printSong applies the transpose flags and writes song in the selected
// format. A song whose key cannot be transposed is printed unchanged.
func printSong(cmd *cobra.Command, song model.Song) error {
	var err error
	switch {
	case targetKey != "":
		song, err = transpose.ToKey(song, targetKey)
	case semitones != 0:
		song, err = transpose.Song(song, semitones)
	}
	if err != nil {
		if !errors.Is(err, transpose.ErrInvalidKey) {
			return err
		}
		logger.Warn("Not transposed", zap.String("song", song.ID), zap.Error(err))
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; showing original chords\n", err)
	}

	out := cmd.OutOrStdout()
	name := outputFormat
	if name == "" {
		name = settings.RenderFormat
	}
	if strings.EqualFold(name, formatJSON) {
		data, err := json.MarshalIndent(song, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	format, err := render.ParseFormat(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, render.NewRenderer(format, settings.ShowHeader && !noHeader).Render(song))
	return err
}
