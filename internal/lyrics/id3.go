package lyrics

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
)

// Track is the song information found in an MP3 file's ID3 tag.
type Track struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Lyrics string
}

// ReadID3 reads title, artist, album and unsynchronised lyrics (USLT) from
// an MP3 file. Several USLT frames are joined with a newline.
//
// Returns a wrapped ErrNoLyrics, along with the other fields, when the tag
// has no lyrics.
func ReadID3(path string) (Track, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Track{}, fmt.Errorf("read ID3 tag of %s: %w", path, err)
	}
	defer tag.Close()

	track := Track{
		Path:   path,
		Title:  tag.Title(),
		Artist: tag.Artist(),
		Album:  tag.Album(),
	}

	var parts []string
	for _, frame := range tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription")) {
		uslf, ok := frame.(id3v2.UnsynchronisedLyricsFrame)
		if !ok || strings.TrimSpace(uslf.Lyrics) == "" {
			continue
		}
		parts = append(parts, uslf.Lyrics)
	}
	if len(parts) == 0 {
		return track, fmt.Errorf("%s: %w", path, ErrNoLyrics)
	}

	track.Lyrics = strings.Join(parts, "\n")
	return track, nil
}
