package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/handiism/chordlyrics/internal/model"
	"golang.org/x/text/cases"
)

//go:embed songs.json
var sampleSongs []byte

var (
	// ErrSongNotFound is returned by Get for unknown ids.
	ErrSongNotFound = errors.New("song not found")

	// ErrDuplicateID is returned when two songs share an id.
	ErrDuplicateID = errors.New("duplicate song id")
)

// document is the on-disk catalog layout.
type document struct {
	Songs []model.Song `json:"songs"`
}

// Catalog is an immutable, ordered collection of songs.
type Catalog struct {
	songs []model.Song
	byID  map[string]int
}

// New builds a catalog from songs, validating each one.
func New(songs []model.Song) (*Catalog, error) {
	c := &Catalog{
		songs: make([]model.Song, 0, len(songs)),
		byID:  make(map[string]int, len(songs)),
	}
	for _, song := range songs {
		if err := song.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[song.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, song.ID)
		}
		c.byID[song.ID] = len(c.songs)
		c.songs = append(c.songs, song.Clone())
	}
	return c, nil
}

// Load reads a JSON catalog document.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Songs)
}

// LoadFile reads a JSON catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Write encodes songs as a catalog document readable by Load.
func Write(w io.Writer, songs []model.Song) error {
	if songs == nil {
		songs = []model.Song{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Songs: songs})
}

// SaveFile writes songs to a catalog file, creating or truncating it.
func SaveFile(path string, songs []model.Song) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, songs); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Default returns the embedded sample catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(sampleSongs))
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Songs returns all songs in catalog order.
func (c *Catalog) Songs() []model.Song {
	return cloneAll(c.songs)
}

// Get returns the song with the given id.
func (c *Catalog) Get(id string) (model.Song, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Song{}, fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}
	return c.songs[i].Clone(), nil
}

// Featured returns the first n songs.
func (c *Catalog) Featured(n int) []model.Song {
	n = min(max(n, 0), len(c.songs))
	return cloneAll(c.songs[:n])
}

// Search returns the songs whose title, artist or album contains query,
// ignoring case. A blank query matches every song.
func (c *Catalog) Search(query string) []model.Song {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	var results []model.Song
	for _, song := range c.songs {
		if strings.Contains(fold.String(song.Title), q) ||
			strings.Contains(fold.String(song.Artist), q) ||
			strings.Contains(fold.String(song.Album), q) {
			results = append(results, song.Clone())
		}
	}
	return results
}

func cloneAll(songs []model.Song) []model.Song {
	out := make([]model.Song, len(songs))
	for i, s := range songs {
		out[i] = s.Clone()
	}
	return out
}
