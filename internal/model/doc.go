// Package model defines the chord grid data structures shared by the
// converter, the transposer and the presentation layers.
//
// # Pitch classes
//
// PitchClass is one of the twelve chromatic positions, always spelled with
// sharps:
//
//	model.CSharp.String() // "C#"
//	pc, ok := model.ParsePitchClass("G")
//
// # Chords
//
// Chord pairs the original chord text with its parsed root and suffix.
// Chords whose root cannot be parsed are kept as opaque labels:
//
//	c := model.ParseChord("Bbm7")
//	c.Root   // model.ASharp
//	c.Suffix // "m7"
//	model.ParseChord("N.C.").Recognized() // false
//
// # Songs
//
// A Song is an ordered list of ChordLines. Each line holds lyric text and
// Placements, each binding a Chord to a character offset into the line:
//
//	song := model.Song{
//	    ID:    "let-it-be",
//	    Title: "Let It Be",
//	    Key:   "C",
//	    Lines: []model.ChordLine{{
//	        Lyrics:     "When I find myself in times of trouble",
//	        Placements: []model.Placement{{Chord: model.ParseChord("C"), Offset: 0}},
//	    }},
//	}
//
// Songs are values. Transformations return new songs and never modify
// the input; use Clone when a deep copy is needed.
package model
