// Package transpose shifts chord grids across the chromatic scale.
//
// Only chord roots move; suffixes are copied verbatim and roots are always
// written with sharps afterwards:
//
//	transpose.Symbol("Am7", 2)    // "Bm7"
//	transpose.Symbol("Db", 0)     // "C#"
//	transpose.Symbol("N.C.", 5)   // "N.C."
//
// Whole songs are transposed with Song or ToKey. Both return a new song and
// leave their input untouched. When the song key is not one of the twelve
// canonical roots the song cannot be transposed: the functions return an
// unchanged copy together with an error matching ErrInvalidKey.
//
//	out, err := transpose.ToKey(song, "G")
//	if errors.Is(err, transpose.ErrInvalidKey) {
//	    // out equals song; show it untransposed
//	}
package transpose
