package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/chordlyrics/internal/catalog"
	"github.com/handiism/chordlyrics/internal/convert"
	"github.com/handiism/chordlyrics/internal/lyrics"
	"github.com/handiism/chordlyrics/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves plain lyrics for a song.
type Fetcher interface {
	Fetch(ctx context.Context, artist, title string) (string, error)
}

// Library is safe for concurrent use.
type Library struct {
	catalog   *catalog.Catalog
	fetcher   Fetcher
	converter *convert.Converter
	readID3   func(path string) (lyrics.Track, error)
	logger    *zap.Logger
}

// New creates a Library. fetcher may be nil to disable online lookups.
func New(cat *catalog.Catalog, fetcher Fetcher, converter *convert.Converter, logger *zap.Logger) *Library {
	if converter == nil {
		converter = convert.New(convert.DefaultOptions())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{
		catalog:   cat,
		fetcher:   fetcher,
		converter: converter,
		readID3:   lyrics.ReadID3,
		logger:    logger,
	}
}

// Catalog returns the underlying catalog.
func (l *Library) Catalog() *catalog.Catalog {
	return l.catalog
}

// Search returns catalog songs matching query. If there are none and the
// query has the form "Artist - Title", the lyrics are fetched and converted
// into a single result. A song the lyrics service does not know yields no
// results and no error.
func (l *Library) Search(ctx context.Context, query string) ([]model.Song, error) {
	if l.catalog != nil {
		if results := l.catalog.Search(query); len(results) > 0 {
			return results, nil
		}
	}

	artist, title, ok := SplitQuery(query)
	if !ok || l.fetcher == nil {
		return nil, nil
	}

	song, err := l.Fetch(ctx, artist, title)
	if errors.Is(err, lyrics.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []model.Song{song}, nil
}

// Fetch retrieves the lyrics of a song and converts them.
func (l *Library) Fetch(ctx context.Context, artist, title string) (model.Song, error) {
	if l.fetcher == nil {
		return model.Song{}, errors.New("online lyrics lookup is disabled")
	}
	text, err := l.fetcher.Fetch(ctx, artist, title)
	if err != nil {
		return model.Song{}, err
	}
	song := l.converter.Convert(text, title, artist)
	l.logger.Debug("converted fetched lyrics",
		zap.String("id", song.ID),
		zap.Int("lines", len(song.Lines)))
	return song, nil
}

// SplitQuery splits "Artist - Title" into its parts.
func SplitQuery(query string) (artist, title string, ok bool) {
	artist, title, found := strings.Cut(query, " - ")
	artist = strings.TrimSpace(artist)
	title = strings.TrimSpace(title)
	if !found || artist == "" || title == "" {
		return "", "", false
	}
	return artist, title, true
}

// ImportResult is the outcome of converting one MP3 file.
type ImportResult struct {
	Path string
	Song model.Song
	Err  error
}

// ImportID3 converts the lyrics of MP3 files, at most limit files at a
// time. Results are in the order of paths. A file that cannot be read is
// reported in its result and does not stop the others; the returned error
// is only set when ctx is cancelled.
//
// Files without title or artist tags use the file path as title.
func (l *Library) ImportID3(ctx context.Context, paths []string, limit int) ([]ImportResult, error) {
	results := make([]ImportResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = ImportResult{Path: path, Err: err}
				return err
			}
			results[i] = l.importOne(path)
			if results[i].Err != nil {
				l.logger.Warn("import failed", zap.String("path", path), zap.Error(results[i].Err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (l *Library) importOne(path string) ImportResult {
	track, err := l.readID3(path)
	if err != nil {
		return ImportResult{Path: path, Err: err}
	}

	title := track.Title
	if title == "" {
		title = path
	}
	song := l.converter.Convert(track.Lyrics, title, track.Artist)
	song.Album = track.Album
	return ImportResult{Path: path, Song: song}
}

// String describes a result for command line output.
func (r ImportResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Path, r.Err)
	}
	return fmt.Sprintf("%s: %s - %s (%d lines)", r.Path, r.Song.Artist, r.Song.Title, len(r.Song.Lines))
}
