package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/handiism/chordlyrics/internal/model"
	"github.com/mattn/go-runewidth"
)

// Format selects the output representation.
type Format int

const (
	// FormatText prints a chord row above each lyric row.
	FormatText Format = iota

	// FormatChordPro prints ChordPro with inline chord markers.
	FormatChordPro
)

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatChordPro:
		return "chordpro"
	default:
		return "text"
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatChordPro:
		return ".cho"
	default:
		return ".txt"
	}
}

// ParseFormat parses a format name ("text" or "chordpro").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "chordpro", "cho", "pro":
		return FormatChordPro, nil
	default:
		return FormatText, fmt.Errorf("unknown render format %q", name)
	}
}

// Renderer turns songs into text.
type Renderer struct {
	format Format
	header bool
}

// NewRenderer creates a Renderer. When header is true the song metadata
// is printed before the grid.
func NewRenderer(format Format, header bool) *Renderer {
	return &Renderer{format: format, header: header}
}

// Format returns the output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render returns the song in the configured format.
func (r *Renderer) Render(song model.Song) string {
	switch r.format {
	case FormatChordPro:
		return r.renderChordPro(song)
	default:
		return r.renderText(song)
	}
}

// renderText produces the two-row layout:
//
//	C       G
//	Let it be, let it be
func (r *Renderer) renderText(song model.Song) string {
	var sb strings.Builder

	if r.header {
		sb.WriteString(Header(song))
		sb.WriteString("\n")
	}

	for _, line := range song.Lines {
		if row := ChordRow(line); row != "" {
			sb.WriteString(row)
			sb.WriteString("\n")
		}
		sb.WriteString(line.Lyrics)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Header returns the metadata block shown above a song.
func Header(song model.Song) string {
	var sb strings.Builder

	sb.WriteString(song.Title + "\n")
	if song.Artist != "" {
		sb.WriteString("by " + song.Artist + "\n")
	}
	if song.Album != "" {
		sb.WriteString(fmt.Sprintf("from %q\n", song.Album))
	}

	facts := []string{"Key: " + song.Key}
	if song.Tempo != "" {
		facts = append(facts, song.Tempo+" BPM")
	}
	if song.Year != 0 {
		facts = append(facts, fmt.Sprintf("%d", song.Year))
	}
	sb.WriteString(strings.Join(facts, " | ") + "\n")

	return sb.String()
}

// ChordRow lays out the chords of a line on a single row. Each chord starts
// at the display column of its offset in the lyric text; wide runes count
// as two columns and offsets past the end of the lyrics extend the row.
// A chord that would overlap its predecessor is pushed right so that one
// space separates them. Placeholders are skipped. Returns "" when the line
// has no chord to show.
func ChordRow(line model.ChordLine) string {
	lyrics := []rune(line.Lyrics)

	var sb strings.Builder
	cursor := 0
	for _, p := range sortedPlacements(line) {
		if p.Chord.IsPlaceholder() {
			continue
		}

		col := column(lyrics, p.Offset)
		if cursor > 0 && col < cursor+1 {
			col = cursor + 1
		}
		if col > cursor {
			sb.WriteString(strings.Repeat(" ", col-cursor))
		}
		sb.WriteString(p.Chord.Text)
		cursor = col + runewidth.StringWidth(p.Chord.Text)
	}

	return sb.String()
}

// column converts a rune offset into a display column.
func column(lyrics []rune, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset <= len(lyrics) {
		return runewidth.StringWidth(string(lyrics[:offset]))
	}
	return runewidth.StringWidth(string(lyrics)) + offset - len(lyrics)
}

// sortedPlacements orders placements by offset, keeping the original order
// for equal offsets.
func sortedPlacements(line model.ChordLine) []model.Placement {
	placements := slices.Clone(line.Placements)
	slices.SortStableFunc(placements, func(a, b model.Placement) int {
		return a.Offset - b.Offset
	})
	return placements
}

// renderChordPro produces ChordPro output:
//
//	{title: Let It Be}
//	{artist: The Beatles}
//	{key: C}
//
//	[C]When I f[G]ind myself in times of trouble
func (r *Renderer) renderChordPro(song model.Song) string {
	var sb strings.Builder

	if r.header {
		sb.WriteString(directive("title", song.Title))
		sb.WriteString(directive("artist", song.Artist))
		sb.WriteString(directive("album", song.Album))
		sb.WriteString(directive("key", song.Key))
		sb.WriteString(directive("tempo", song.Tempo))
		if song.Year != 0 {
			sb.WriteString(directive("year", fmt.Sprintf("%d", song.Year)))
		}
		sb.WriteString("\n")
	}

	for _, line := range song.Lines {
		sb.WriteString(inlineChords(line))
		sb.WriteString("\n")
	}

	return sb.String()
}

// inlineChords inserts [Chord] markers into the lyric text. Offsets past
// the end of the lyrics are clamped to the end.
func inlineChords(line model.ChordLine) string {
	lyrics := []rune(line.Lyrics)

	var sb strings.Builder
	pos := 0
	for _, p := range sortedPlacements(line) {
		if p.Chord.IsPlaceholder() {
			continue
		}
		at := min(max(p.Offset, 0), len(lyrics))
		sb.WriteString(string(lyrics[pos:at]))
		sb.WriteString("[" + p.Chord.Text + "]")
		pos = at
	}
	sb.WriteString(string(lyrics[pos:]))

	return sb.String()
}

func directive(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("{%s: %s}\n", name, value)
}
