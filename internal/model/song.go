package model

import (
	"fmt"
	"strings"
)

// Placement binds a chord to a character offset in a lyric line.
//
// Offset counts runes from the start of the line the chord was written
// over and denotes a column in monospaced rendering, not an array index.
// Several placements may share an offset.
type Placement struct {
	Chord  Chord `json:"chord"`
	Offset int   `json:"offset"`
}

// ChordLine is one line of a song: lyric text plus the chords above it.
// A line without placements is valid (instrumental or plain lyric).
type ChordLine struct {
	Lyrics     string      `json:"lyrics"`
	Placements []Placement `json:"placements"`
}

// Chords returns the chords of the line in placement order.
func (l ChordLine) Chords() []Chord {
	chords := make([]Chord, len(l.Placements))
	for i, p := range l.Placements {
		chords[i] = p.Chord
	}
	return chords
}

// Song is a complete chord grid with its metadata.
//
// Key is kept as text because catalog data may carry keys that are not one
// of the twelve canonical roots (for example "Am"). Such songs load and
// render normally but cannot be transposed; see KeyPitch.
type Song struct {
	// ID identifies the song, e.g. "oasis-wonderwall".
	ID string `json:"id"`

	// Title is the song title.
	Title string `json:"title"`

	// Artist is the performing artist.
	Artist string `json:"artist"`

	// Album is optional.
	Album string `json:"album,omitempty"`

	// Year is optional; zero means unknown.
	Year int `json:"year,omitempty"`

	// Key is the canonical key the chords are written in.
	Key string `json:"key"`

	// Tempo in BPM, as text. Optional.
	Tempo string `json:"tempo,omitempty"`

	// Lines holds the chord grid in display order.
	Lines []ChordLine `json:"lines"`
}

// KeyPitch returns the song key as a pitch class. The second result is
// false when Key is not one of the twelve canonical roots.
func (s Song) KeyPitch() (PitchClass, bool) {
	return ParsePitchClass(s.Key)
}

// Clone returns a deep copy of the song.
func (s Song) Clone() Song {
	out := s
	if s.Lines == nil {
		return out
	}
	out.Lines = make([]ChordLine, len(s.Lines))
	for i, line := range s.Lines {
		out.Lines[i] = ChordLine{
			Lyrics:     line.Lyrics,
			Placements: append([]Placement(nil), line.Placements...),
		}
	}
	return out
}

// Validate checks the catalog load-time contract: a song must have an id
// and a title, and every placement offset must be non-negative.
func (s Song) Validate() error {
	var problems []string
	if strings.TrimSpace(s.ID) == "" {
		problems = append(problems, "missing id")
	}
	if strings.TrimSpace(s.Title) == "" {
		problems = append(problems, "missing title")
	}
	for i, line := range s.Lines {
		for j, p := range line.Placements {
			if p.Offset < 0 {
				problems = append(problems, fmt.Sprintf("line %d placement %d: negative offset %d", i, j, p.Offset))
			}
		}
	}
	if len(problems) > 0 {
		return &ValidationError{SongID: s.ID, Problems: problems}
	}
	return nil
}

// ValidationError is returned when a song does not satisfy the data contract.
type ValidationError struct {
	SongID   string
	Problems []string
}

func (e *ValidationError) Error() string {
	id := e.SongID
	if id == "" {
		id = "<no id>"
	}
	return fmt.Sprintf("song %s: invalid: %s", id, strings.Join(e.Problems, "; "))
}
