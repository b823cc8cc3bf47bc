// Package ioutils provides file system utilities for chordlyrics.
//
// This package contains functions for:
//   - Exporting rendered songs to a directory
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//
// # Exporting
//
//	r := render.NewRenderer(render.FormatChordPro, true)
//	paths, err := ioutils.ExportSongs(ctx, "/music/chords", songs, r)
//	// Writes "/music/chords/The Beatles - Let It Be.cho", ...
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
package ioutils
