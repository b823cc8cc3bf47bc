package transpose

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is matched by errors returned when a song key or target key
// is not one of the twelve canonical roots.
var ErrInvalidKey = errors.New("invalid key")

// KeyError describes which key could not be used.
type KeyError struct {
	// Key is the offending key text.
	Key string

	// Target is true when the requested target key was invalid rather than
	// the song key.
	Target bool
}

func (e *KeyError) Error() string {
	if e.Target {
		return fmt.Sprintf("target key %q is not a canonical root", e.Key)
	}
	return fmt.Sprintf("song key %q is not a canonical root", e.Key)
}

// Is makes KeyError match ErrInvalidKey.
func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKey
}
