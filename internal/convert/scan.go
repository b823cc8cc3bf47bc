package convert

import "unicode"

// token is a chord found in a line. start and end are rune indices into
// the original line (end exclusive) and cover any enclosing parentheses.
type token struct {
	start int
	end   int
	chord string
}

// scanChords finds chord tokens in a single left-to-right pass.
//
// Grammar: a root A-G, an optional # or b, an optional m, then digits.
// A bare token must not touch a word character on either side and must
// not be followed by '#'. A parenthesized token is the same grammar
// enclosed directly in ( and ).
func scanChords(line []rune) []token {
	var tokens []token
	for i := 0; i < len(line); {
		if line[i] == '(' {
			if n := matchChord(line, i+1); n > 0 && i+1+n < len(line) && line[i+1+n] == ')' {
				tokens = append(tokens, token{start: i, end: i + n + 2, chord: string(line[i+1 : i+1+n])})
				i += n + 2
				continue
			}
		}

		if i == 0 || !isWordRune(line[i-1]) {
			if n := matchChord(line, i); n > 0 {
				end := i + n
				if end == len(line) || (!isWordRune(line[end]) && line[end] != '#') {
					tokens = append(tokens, token{start: i, end: end, chord: string(line[i:end])})
					i = end
					continue
				}
			}
		}
		i++
	}
	return tokens
}

// matchChord returns the length of the chord grammar match at i, or 0.
func matchChord(line []rune, i int) int {
	if i >= len(line) || line[i] < 'A' || line[i] > 'G' {
		return 0
	}
	j := i + 1
	if j < len(line) && (line[j] == '#' || line[j] == 'b') {
		j++
	}
	if j < len(line) && line[j] == 'm' {
		j++
	}
	for j < len(line) && line[j] >= '0' && line[j] <= '9' {
		j++
	}
	return j - i
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// stripTokens returns the line without the token spans. Tokens must be
// sorted by start and must not overlap, which scanChords guarantees.
func stripTokens(line []rune, tokens []token) string {
	out := make([]rune, 0, len(line))
	prev := 0
	for _, t := range tokens {
		out = append(out, line[prev:t.start]...)
		prev = t.end
	}
	out = append(out, line[prev:]...)
	return string(out)
}
