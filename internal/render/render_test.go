package render

import (
	"strings"
	"testing"

	"github.com/handiism/chordlyrics/internal/model"
)

func place(chord string, offset int) model.Placement {
	return model.Placement{Chord: model.ParseChord(chord), Offset: offset}
}

func createTestSong() model.Song {
	return model.Song{
		ID:     "4",
		Title:  "Let It Be",
		Artist: "The Beatles",
		Album:  "Let It Be",
		Key:    "C",
		Tempo:  "73",
		Year:   1970,
		Lines: []model.ChordLine{
			{
				Lyrics:     "When I find myself in times of trouble",
				Placements: []model.Placement{place("C", 0), place("G", 8), place("Am", 15), place("F", 30)},
			},
			{
				Lyrics:     "Let it be",
				Placements: []model.Placement{place("C", 0), place("", 0), place("G", 8)},
			},
			{Lyrics: "instrumental break"},
		},
	}
}

func TestChordRow(t *testing.T) {
	tests := []struct {
		name string
		line model.ChordLine
		want string
	}{
		{
			name: "columns follow offsets",
			line: createTestSong().Lines[0],
			want: "C       G      Am             F",
		},
		{
			name: "placeholders skipped",
			line: model.ChordLine{Lyrics: "abc", Placements: []model.Placement{place("-", 0), place("D", 2)}},
			want: "  D",
		},
		{
			name: "overlapping chords separated",
			line: model.ChordLine{Lyrics: "la la", Placements: []model.Placement{place("Am7", 0), place("G", 1)}},
			want: "Am7 G",
		},
		{
			name: "unsorted offsets",
			line: model.ChordLine{Lyrics: "one two three", Placements: []model.Placement{place("F", 8), place("C", 0)}},
			want: "C       F",
		},
		{
			name: "offset past the lyrics",
			line: model.ChordLine{Lyrics: "hi", Placements: []model.Placement{place("E", 5)}},
			want: "     E",
		},
		{
			name: "wide runes",
			line: model.ChordLine{Lyrics: "你好世界", Placements: []model.Placement{place("C", 2)}},
			want: "    C",
		},
		{
			name: "no chords",
			line: model.ChordLine{Lyrics: "nothing"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChordRow(tt.line); got != tt.want {
				t.Errorf("ChordRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderer_Text(t *testing.T) {
	out := NewRenderer(FormatText, true).Render(createTestSong())

	want := "Let It Be\n" +
		"by The Beatles\n" +
		"from \"Let It Be\"\n" +
		"Key: C | 73 BPM | 1970\n" +
		"\n" +
		"C       G      Am             F\n" +
		"When I find myself in times of trouble\n" +
		"C       G\n" +
		"Let it be\n" +
		"instrumental break\n"
	if out != want {
		t.Errorf("Render() =\n%s\nwant\n%s", out, want)
	}
}

func TestRenderer_TextWithoutHeader(t *testing.T) {
	out := NewRenderer(FormatText, false).Render(createTestSong())
	if strings.Contains(out, "Key:") {
		t.Error("header should be omitted")
	}
	if !strings.HasPrefix(out, "C       G") {
		t.Errorf("output should start with the first chord row, got %q", out)
	}
}

func TestRenderer_ChordPro(t *testing.T) {
	out := NewRenderer(FormatChordPro, true).Render(createTestSong())

	for _, want := range []string{
		"{title: Let It Be}\n",
		"{artist: The Beatles}\n",
		"{album: Let It Be}\n",
		"{key: C}\n",
		"{tempo: 73}\n",
		"{year: 1970}\n",
		"[C]When I f[G]ind mys[Am]elf in times of[F] trouble\n",
		"[C]Let it b[G]e\n",
		"instrumental break\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ChordPro output missing %q:\n%s", want, out)
		}
	}
}

func TestInlineChords_ClampsOffsets(t *testing.T) {
	line := model.ChordLine{Lyrics: "go", Placements: []model.Placement{place("D", 9), place("A", 1)}}
	if got := inlineChords(line); got != "g[A]o[D]" {
		t.Errorf("inlineChords() = %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"ChordPro", FormatChordPro, false},
		{"cho", FormatChordPro, false},
		{"pdf", FormatText, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	if FormatText.Extension() != ".txt" || FormatChordPro.Extension() != ".cho" {
		t.Error("unexpected extensions")
	}
}
