// Package lyrics retrieves plain lyric text for the converter.
//
// Two sources are provided:
//   - Client fetches lyrics from a lyrics.ovh compatible HTTP service
//   - ReadID3 reads the unsynchronised lyrics frame (USLT) of an MP3 file
//
// Both return plain text only; turning it into a chord grid is the job of
// package convert.
//
// # Fetching
//
//	client := lyrics.NewClient(lyrics.Options{Logger: logger})
//	text, err := client.Fetch(ctx, "The Beatles", "Let It Be")
//	if errors.Is(err, lyrics.ErrNotFound) {
//	    // no lyrics for this song
//	}
//
// Transport failures and server errors are retried with an exponential
// cooldown (RetryCooldown * RetryExponent^attempt). A missing song is not
// retried.
//
// # Reading MP3 tags
//
//	track, err := lyrics.ReadID3("/music/01 Let It Be.mp3")
//	fmt.Println(track.Artist, track.Title, len(track.Lyrics))
package lyrics
