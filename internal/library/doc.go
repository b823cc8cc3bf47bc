// Package library answers song searches for the user interfaces.
//
// A Library combines the static catalog with the lyrics collaborators and
// the converter:
//
//	lib := library.New(cat, client, convert.New(opts), logger)
//	songs, err := lib.Search(ctx, "Oasis - Wonderwall")
//
// Catalog matches are returned as they are. When the catalog has no match
// and the query looks like "Artist - Title", the lyrics are fetched and
// converted into a best-effort grid.
//
// ImportID3 converts the lyrics stored in MP3 files, several files at a
// time.
package library
