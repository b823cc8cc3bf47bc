package convert

import (
	"strings"

	"github.com/handiism/chordlyrics/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Progression is a filler chord sequence with the default offset of each
// chord. Chords and Offsets have the same length.
type Progression struct {
	Chords  []string
	Offsets []int
}

// Options configures a Converter. Zero fields fall back to DefaultOptions.
type Options struct {
	// MaxLines caps the number of lines in the produced song.
	MaxLines int

	// DefaultKey is reported as the key of every converted song.
	DefaultKey string

	// DefaultTempo is reported as the tempo of every converted song.
	DefaultTempo string

	// Progressions are cycled through for lines without chords.
	Progressions []Progression
}

// fillerMargin keeps synthetic chords this many columns away from the end
// of short lines.
const fillerMargin = 5

// DefaultOptions returns the standard converter settings: 20 lines, key C,
// 120 BPM and four common pop progressions.
func DefaultOptions() Options {
	offsets := []int{0, 8, 15, 22}
	return Options{
		MaxLines:     20,
		DefaultKey:   "C",
		DefaultTempo: "120",
		Progressions: []Progression{
			{Chords: []string{"C", "G", "Am", "F"}, Offsets: offsets},
			{Chords: []string{"G", "D", "Em", "C"}, Offsets: offsets},
			{Chords: []string{"Am", "F", "C", "G"}, Offsets: offsets},
			{Chords: []string{"F", "C", "G", "Am"}, Offsets: offsets},
		},
	}
}

// Converter builds chord grids from plain lyric text. It holds no mutable
// state and is safe for concurrent use.
type Converter struct {
	opts Options
}

var defaultConverter = New(DefaultOptions())

// New creates a Converter.
func New(opts Options) *Converter {
	def := DefaultOptions()
	if opts.MaxLines <= 0 {
		opts.MaxLines = def.MaxLines
	}
	if opts.DefaultKey == "" {
		opts.DefaultKey = def.DefaultKey
	}
	if opts.DefaultTempo == "" {
		opts.DefaultTempo = def.DefaultTempo
	}
	if len(opts.Progressions) == 0 {
		opts.Progressions = def.Progressions
	}
	return &Converter{opts: opts}
}

// Convert converts raw lyrics with the default options.
func Convert(raw, title, artist string) model.Song {
	return defaultConverter.Convert(raw, title, artist)
}

// Convert builds a song from raw lyric text.
//
// Blank lines are dropped. Lines containing chord tokens keep those chords
// at their offsets in the original line and lose the token text; other
// lines get progression lineIndex mod len(Progressions), where lineIndex
// counts non-blank lines. Only the first MaxLines lines are kept.
func (c *Converter) Convert(raw, title, artist string) model.Song {
	song := model.Song{
		ID:     Slugify(artist + "-" + title),
		Title:  title,
		Artist: artist,
		Key:    c.opts.DefaultKey,
		Tempo:  c.opts.DefaultTempo,
		Lines:  []model.ChordLine{},
	}

	index := 0
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(song.Lines) == c.opts.MaxLines {
			break
		}
		song.Lines = append(song.Lines, c.convertLine(line, index))
		index++
	}

	return song
}

func (c *Converter) convertLine(line string, index int) model.ChordLine {
	runes := []rune(line)
	tokens := scanChords(runes)
	if len(tokens) == 0 {
		return c.fillerLine(line, len(runes), index)
	}

	placements := make([]model.Placement, len(tokens))
	for i, t := range tokens {
		placements[i] = model.Placement{Chord: model.ParseChord(t.chord), Offset: t.start}
	}
	return model.ChordLine{
		Lyrics:     strings.TrimSpace(stripTokens(runes, tokens)),
		Placements: placements,
	}
}

func (c *Converter) fillerLine(line string, length, index int) model.ChordLine {
	prog := c.opts.Progressions[index%len(c.opts.Progressions)]
	limit := max(0, length-fillerMargin)

	placements := make([]model.Placement, len(prog.Chords))
	for i, chord := range prog.Chords {
		offset := 0
		if i < len(prog.Offsets) {
			offset = prog.Offsets[i]
		}
		placements[i] = model.Placement{Chord: model.ParseChord(chord), Offset: min(offset, limit)}
	}
	return model.ChordLine{Lyrics: line, Placements: placements}
}

// Slugify lowercases s and joins its whitespace separated words with
// hyphens: "The Beatles-Let It Be" becomes "the-beatles-let-it-be".
func Slugify(s string) string {
	lower := cases.Lower(language.Und).String(s)
	return strings.Join(strings.Fields(lower), "-")
}
