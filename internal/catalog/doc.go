// Package catalog holds the static song collection.
//
// The bundled sample songs are embedded in the binary; Default loads them.
// A catalog can also be read from any JSON document of the form
//
//	{"songs": [{"id": "1", "title": "...", "key": "G", "lines": [...]}]}
//
// Every song is validated on load (see model.Song.Validate) and ids must
// be unique. Songs handed out by a Catalog are copies, so callers may
// transform them freely.
//
//	cat, err := catalog.Default()
//	for _, song := range cat.Search("beatles") {
//	    fmt.Println(song.Title)
//	}
package catalog
