package model

// PitchClass is a position in the twelve-tone chromatic scale, C = 0.
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// PitchClassCount is the number of positions in the chromatic scale.
const PitchClassCount = 12

// ChromaticScale lists the canonical sharp spelling of every pitch class,
// indexed by PitchClass.
var ChromaticScale = [PitchClassCount]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// flatToSharp maps the supported flat spellings to their sharp equivalent.
// Cb and Fb are deliberately absent.
var flatToSharp = map[string]PitchClass{
	"Db": CSharp,
	"Eb": DSharp,
	"Gb": FSharp,
	"Ab": GSharp,
	"Bb": ASharp,
}

// String returns the canonical sharp spelling, or "" for an out of range value.
func (p PitchClass) String() string {
	if !p.Valid() {
		return ""
	}
	return ChromaticScale[p]
}

// Valid reports whether p is one of the twelve chromatic positions.
func (p PitchClass) Valid() bool {
	return p >= 0 && p < PitchClassCount
}

// Shift moves p by the given number of semitones. Negative values and
// values beyond an octave wrap around.
func (p PitchClass) Shift(semitones int) PitchClass {
	n := (int(p) + semitones%PitchClassCount + PitchClassCount) % PitchClassCount
	return PitchClass(n)
}

// ParsePitchClass parses a key name. Only the twelve canonical sharp
// spellings are accepted; "Db" or "Am" are not keys.
func ParsePitchClass(name string) (PitchClass, bool) {
	for i, s := range ChromaticScale {
		if s == name {
			return PitchClass(i), true
		}
	}
	return 0, false
}

// parseRoot resolves a root spelling (natural, sharp or supported flat).
func parseRoot(root string) (PitchClass, bool) {
	if pc, ok := ParsePitchClass(root); ok {
		return pc, true
	}
	pc, ok := flatToSharp[root]
	return pc, ok
}
