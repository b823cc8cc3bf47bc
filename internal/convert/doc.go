// Package convert turns free-form lyric text into a chord grid.
//
// Each non-blank input line becomes one model.ChordLine. Chord tokens
// written inline, bare ("Am7") or parenthesized ("(F#)"), are extracted
// with their rune offset in the original line and removed from the lyric
// text. Lines without any chord token get a filler progression chosen by
// line index, so the same input always yields the same grid:
//
//	song := convert.Convert(lyrics, "Let It Be", "The Beatles")
//	song.ID  // "the-beatles-let-it-be"
//	song.Key // "C"
//
// The converter cannot infer a key from plain text and always reports
// the configured default. Convert never fails; empty input yields a song
// without lines.
package convert
