package ioutils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/handiism/chordlyrics/internal/model"
	"github.com/handiism/chordlyrics/internal/render"
)

var (
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Returns ctx.Err() without writing
// when ctx is already cancelled.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Leading and trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")     // Returns "Song_ Part 1_2"
//	SanitizeFileName("Track...")           // Returns "Track"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// SongFileName returns "Artist - Title" plus the extension of format,
// sanitized for the file system. Songs without an artist use the title
// alone and songs without a usable name fall back to their id.
func SongFileName(song model.Song, format render.Format) string {
	name := song.Title
	if song.Artist != "" {
		name = song.Artist + " - " + song.Title
	}
	name = SanitizeFileName(name)
	if name == "" {
		name = SanitizeFileName(song.ID)
	}
	if name == "" {
		name = "song"
	}
	return name + format.Extension()
}

// ExportSongs renders each song with r and writes it into dir, which is
// created if needed. Songs mapping to a file name already written get a
// numeric suffix, so no export overwrites another. Returns the written
// paths in song order; on error the paths written so far are returned.
func ExportSongs(ctx context.Context, dir string, songs []model.Song, r *render.Renderer) ([]string, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}

	used := make(map[string]bool, len(songs))
	next := make(map[string]int, len(songs))
	paths := make([]string, 0, len(songs))
	for _, song := range songs {
		name := SongFileName(song, r.Format())
		if used[name] {
			name = nextFreeName(name, used, next)
		}
		used[name] = true

		path := filepath.Join(dir, name)
		if err := WriteFile(ctx, path, []byte(r.Render(song))); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// nextFreeName returns the first "name (n).ext" not in used, starting
// after the last suffix handed out for name.
func nextFreeName(name string, used map[string]bool, next map[string]int) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	n := max(next[name], 1)
	for {
		n++
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if !used[candidate] {
			next[name] = n
			return candidate
		}
	}
}
