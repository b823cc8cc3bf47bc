package transpose

import (
	"github.com/handiism/chordlyrics/internal/model"
)

// Chord shifts a chord root by the given number of semitones.
// Placeholders and unrecognized chords are returned unchanged.
func Chord(c model.Chord, semitones int) model.Chord {
	if !c.Recognized() {
		return c
	}
	return model.NewChord(c.Root.Shift(semitones), c.Suffix)
}

// Symbol transposes chord text.
func Symbol(text string, semitones int) string {
	return Chord(model.ParseChord(text), semitones).Text
}

// Interval returns the upward distance from one pitch class to another,
// in the range [0, 12).
func Interval(from, to model.PitchClass) int {
	return (int(to) - int(from) + model.PitchClassCount) % model.PitchClassCount
}

// Song returns a copy of song with every chord shifted by semitones and
// the key moved by the same interval. Zero semitones yields an equivalent
// copy with flat roots respelled as sharps.
//
// If song.Key is not a canonical root, Song returns an unchanged copy and
// a *KeyError matching ErrInvalidKey.
func Song(song model.Song, semitones int) (model.Song, error) {
	key, ok := song.KeyPitch()
	if !ok {
		return song.Clone(), &KeyError{Key: song.Key}
	}

	out := song
	out.Key = key.Shift(semitones).String()
	if song.Lines == nil {
		return out, nil
	}

	out.Lines = make([]model.ChordLine, len(song.Lines))
	for i, line := range song.Lines {
		out.Lines[i] = transposeLine(line, semitones)
	}
	return out, nil
}

// ToKey transposes song so that its key becomes target.
//
// Both the song key and target must be canonical roots; otherwise an
// unchanged copy is returned with a *KeyError matching ErrInvalidKey.
func ToKey(song model.Song, target string) (model.Song, error) {
	to, ok := model.ParsePitchClass(target)
	if !ok {
		return song.Clone(), &KeyError{Key: target, Target: true}
	}
	from, ok := song.KeyPitch()
	if !ok {
		return song.Clone(), &KeyError{Key: song.Key}
	}
	return Song(song, Interval(from, to))
}

func transposeLine(line model.ChordLine, semitones int) model.ChordLine {
	out := model.ChordLine{Lyrics: line.Lyrics}
	if line.Placements == nil {
		return out
	}
	out.Placements = make([]model.Placement, len(line.Placements))
	for i, p := range line.Placements {
		out.Placements[i] = model.Placement{
			Chord:  Chord(p.Chord, semitones),
			Offset: p.Offset,
		}
	}
	return out
}
