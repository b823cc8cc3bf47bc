package convert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/handiism/chordlyrics/internal/model"
)

type wantPlacement struct {
	chord  string
	offset int
}

func placementsOf(line model.ChordLine) []wantPlacement {
	var out []wantPlacement
	for _, p := range line.Placements {
		out = append(out, wantPlacement{p.Chord.Text, p.Offset})
	}
	return out
}

func TestConvert_ExtractsInlineChords(t *testing.T) {
	song := Convert("C       G        Am   F\nWhen I find myself", "Let It Be", "The Beatles")

	if len(song.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(song.Lines))
	}

	got := placementsOf(song.Lines[0])
	want := []wantPlacement{{"C", 0}, {"G", 8}, {"Am", 17}, {"F", 22}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(wantPlacement{})); diff != "" {
		t.Errorf("placements (-want +got):\n%s", diff)
	}
	if song.Lines[0].Lyrics != "" {
		t.Errorf("chord-only line should have empty lyrics, got %q", song.Lines[0].Lyrics)
	}

	// second line has no chords: filler progression #1, clamped to len-5 = 13
	got = placementsOf(song.Lines[1])
	want = []wantPlacement{{"G", 0}, {"D", 8}, {"Em", 13}, {"C", 13}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(wantPlacement{})); diff != "" {
		t.Errorf("filler placements (-want +got):\n%s", diff)
	}
	if song.Lines[1].Lyrics != "When I find myself" {
		t.Errorf("filler line lyrics = %q", song.Lines[1].Lyrics)
	}
}

func TestConvert_ChordLineTokens(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   []wantPlacement
		lyrics string
	}{
		{
			name:   "mixed chords and words",
			line:   "G Amazing grace D how sweet",
			want:   []wantPlacement{{"G", 0}, {"D", 16}},
			lyrics: "Amazing grace  how sweet",
		},
		{
			name:   "parenthesized",
			line:   "Hello (Am7) darkness (F#)",
			want:   []wantPlacement{{"Am7", 6}, {"F#", 21}},
			lyrics: "Hello  darkness",
		},
		{
			name:   "flats and sevenths",
			line:   "Bb7  Ebm  C#m7",
			want:   []wantPlacement{{"Bb7", 0}, {"Ebm", 5}, {"C#m7", 10}},
			lyrics: "",
		},
		{
			name:   "offsets count runes",
			line:   "naïve G café",
			want:   []wantPlacement{{"G", 6}},
			lyrics: "naïve  café",
		},
		{
			name:   "same token twice",
			line:   "Am x Am",
			want:   []wantPlacement{{"Am", 0}, {"Am", 5}},
			lyrics: "x",
		},
		{
			name:   "chord next to punctuation",
			line:   "C, then G.",
			want:   []wantPlacement{{"C", 0}, {"G", 8}},
			lyrics: ", then .",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			song := Convert(tt.line, "t", "a")
			if len(song.Lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(song.Lines))
			}
			got := placementsOf(song.Lines[0])
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(wantPlacement{})); diff != "" {
				t.Errorf("placements (-want +got):\n%s", diff)
			}
			if song.Lines[0].Lyrics != tt.lyrics {
				t.Errorf("lyrics = %q, want %q", song.Lines[0].Lyrics, tt.lyrics)
			}
		})
	}
}

func TestScanChords_RejectsWords(t *testing.T) {
	lines := []string{
		"Amazing Grace",
		"Cmaj7 is not in the grammar",
		"Dance Every Friday",
		"C#x",
		"ABC",
		"(Bmaj7)",
	}
	for _, line := range lines {
		if tokens := scanChords([]rune(line)); len(tokens) != 0 {
			t.Errorf("scanChords(%q) = %+v, want none", line, tokens)
		}
	}
}

func TestConvert_DropsBlankLines(t *testing.T) {
	raw := "first line here\n\n   \n\t\nsecond line here\r\n\r\nthird line here\r\n"
	song := Convert(raw, "t", "a")

	if len(song.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(song.Lines))
	}
	for i, want := range []string{"first line here", "second line here", "third line here"} {
		if song.Lines[i].Lyrics != want {
			t.Errorf("line %d = %q, want %q", i, song.Lines[i].Lyrics, want)
		}
	}
	// progression index counts kept lines only
	if c := song.Lines[2].Placements[0].Chord.Text; c != "Am" {
		t.Errorf("third line should use progression 2, first chord %q", c)
	}
}

func TestConvert_FillerCyclesAndClamps(t *testing.T) {
	raw := strings.Repeat("la la la la la la la la la la la\n", 5) + "hi"
	song := Convert(raw, "t", "a")

	firsts := []string{"C", "G", "Am", "F", "C"}
	for i, want := range firsts {
		if got := song.Lines[i].Placements[0].Chord.Text; got != want {
			t.Errorf("line %d first chord = %q, want %q", i, got, want)
		}
		if got := song.Lines[i].Placements[3].Offset; got != 22 {
			t.Errorf("line %d last offset = %d, want 22", i, got)
		}
	}

	short := song.Lines[5]
	for _, p := range short.Placements {
		if p.Offset != 0 {
			t.Errorf("short line offset = %d, want 0", p.Offset)
		}
	}
}

func TestConvert_LineCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "lyric line number %d\n", i)
	}
	song := Convert(b.String(), "t", "a")
	if len(song.Lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(song.Lines))
	}
	if song.Lines[19].Lyrics != "lyric line number 19" {
		t.Errorf("last line = %q", song.Lines[19].Lyrics)
	}

	capped := New(Options{MaxLines: 3}).Convert(b.String(), "t", "a")
	if len(capped.Lines) != 3 {
		t.Errorf("MaxLines 3: got %d lines", len(capped.Lines))
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n\t\n"} {
		song := Convert(raw, "Silence", "Nobody")
		if song.Lines == nil || len(song.Lines) != 0 {
			t.Errorf("Convert(%q) lines = %v, want empty", raw, song.Lines)
		}
		if song.ID != "nobody-silence" {
			t.Errorf("ID = %q", song.ID)
		}
	}
}

func TestConvert_Deterministic(t *testing.T) {
	raw := "C G\nsome words\n(Am) more words\nand the end of it all"
	a := Convert(raw, "Song", "Band")
	b := Convert(raw, "Song", "Band")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("conversion is not deterministic:\n%s", diff)
	}
}

func TestConvert_Metadata(t *testing.T) {
	song := Convert("words", "Let  It Be", "The Beatles")
	if song.ID != "the-beatles-let-it-be" {
		t.Errorf("ID = %q", song.ID)
	}
	if song.Key != "C" || song.Tempo != "120" {
		t.Errorf("Key/Tempo = %q/%q", song.Key, song.Tempo)
	}
	if song.Title != "Let  It Be" || song.Artist != "The Beatles" {
		t.Errorf("Title/Artist = %q/%q", song.Title, song.Artist)
	}

	custom := New(Options{DefaultKey: "G", DefaultTempo: "90"}).Convert("words", "t", "a")
	if custom.Key != "G" || custom.Tempo != "90" {
		t.Errorf("custom Key/Tempo = %q/%q", custom.Key, custom.Tempo)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Oasis-Wonderwall", "oasis-wonderwall"},
		{"The Beatles-Let It Be", "the-beatles-let-it-be"},
		{"  Guns N'   Roses-Patience ", "guns-n'-roses-patience"},
		{"Björk-Jóga", "björk-jóga"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
