// Package render formats chord grids for display and export.
//
// Two formats are supported:
//   - FormatText: chords printed on their own row above each lyric line,
//     at the column given by the placement offset
//   - FormatChordPro: ChordPro directives with inline [Chord] markers
//
// Example:
//
//	r := render.NewRenderer(render.FormatText, true)
//	fmt.Print(r.Render(song))
//
//	// Let It Be
//	// by The Beatles
//	// Key: C | 73 BPM | 1970
//	//
//	// C       G      Am             F
//	// When I find myself in times of trouble
package render
