package model

import (
	"encoding/json"
	"fmt"
)

// PlaceholderDash is the sentinel some sources use for "no chord here".
const PlaceholderDash = "-"

// Chord is a chord symbol as it appears over a lyric line.
//
// Text is always the original spelling and is what gets rendered for
// chords that are not recognized. For recognized chords Root holds the
// normalized pitch class and Suffix everything after the root spelling
// ("m7", "maj7", "/G", ...).
type Chord struct {
	Text   string
	Root   PitchClass
	Suffix string

	recognized bool
}

// ParseChord parses chord text.
//
// The root is the first two characters when they form a letter plus
// accidental (A-G followed by # or b), otherwise the first letter A-G.
// Flat roots are normalized to sharps through a fixed table (Db, Eb, Gb,
// Ab, Bb). A root followed by a second accidental (C##, Bbb) is not
// resolved. Everything else is an opaque label: the text is kept as-is and
// Recognized returns false. ParseChord never fails.
func ParseChord(text string) Chord {
	c := Chord{Text: text}
	if text == "" || text == PlaceholderDash || !isLabelSafe(text) {
		return c
	}
	if text[0] < 'A' || text[0] > 'G' {
		return c
	}

	rootLen := 1
	if len(text) >= 2 && (text[1] == '#' || text[1] == 'b') {
		rootLen = 2
		if len(text) >= 3 && (text[2] == '#' || text[2] == 'b') {
			return c
		}
	}

	root, ok := parseRoot(text[:rootLen])
	if !ok {
		return c
	}

	c.Root = root
	c.Suffix = text[rootLen:]
	c.recognized = true
	return c
}

// NewChord builds a recognized chord from a root and suffix.
func NewChord(root PitchClass, suffix string) Chord {
	if !root.Valid() {
		return Chord{Text: suffix}
	}
	return Chord{
		Text:       root.String() + suffix,
		Root:       root,
		Suffix:     suffix,
		recognized: true,
	}
}

// Recognized reports whether the chord root was parsed.
func (c Chord) Recognized() bool {
	return c.recognized
}

// Equal reports whether two chords have the same text and parse result.
func (c Chord) Equal(other Chord) bool {
	return c == other
}

// IsPlaceholder reports whether the chord marks an empty slot.
func (c Chord) IsPlaceholder() bool {
	return c.Text == "" || c.Text == PlaceholderDash
}

// String returns the chord text.
func (c Chord) String() string {
	return c.Text
}

// MarshalJSON encodes the chord as its text.
func (c Chord) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Text)
}

// UnmarshalJSON decodes chord text and parses it.
func (c *Chord) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("chord must be a string: %w", err)
	}
	*c = ParseChord(text)
	return nil
}

// isLabelSafe reports whether text only uses characters that can appear in
// a chord symbol: letters, digits and # ( ) / + -.
func isLabelSafe(text string) bool {
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '#', ch == '(', ch == ')', ch == '/', ch == '+', ch == '-':
		default:
			return false
		}
	}
	return true
}
