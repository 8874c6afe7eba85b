package ptrie

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidArgument is returned when a word is empty, blank or does not
// belong to the node it was added to.
var ErrInvalidArgument = errors.New("invalid argument")

// CommonPrefix returns the longest common prefix of two strings. The result
// is always a prefix of a. With ignoreCase set, characters that differ only
// in case are considered equal.
//
// For example, "hel" is the longest common prefix of "hello" and "help".
func CommonPrefix(a, b string, ignoreCase bool) string {
	na, _ := commonPrefixLen(a, b, ignoreCase)

	return a[:na]
}

// commonPrefixLen returns the byte length of the longest common prefix in
// each of the strings. The lengths differ only when case folding matched
// characters of different encoded widths.
func commonPrefixLen(a, b string, ignoreCase bool) (int, int) {
	var i, j int

	for i < len(a) && j < len(b) {
		var (
			ra, wa = utf8.DecodeRuneInString(a[i:])
			rb, wb = utf8.DecodeRuneInString(b[j:])
		)

		if a[i:i+wa] != b[j:j+wb] {
			// invalid bytes decode as RuneError and only match themselves
			if !ignoreCase || ra == utf8.RuneError || rb == utf8.RuneError || !foldEqual(ra, rb) {
				break
			}
		}

		i += wa
		j += wb
	}

	return i, j
}

// foldEqual reports whether two runes are equal under simple Unicode case
// folding.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}

	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		// ASCII fast path
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}

		return a == b
	}

	// walk the fold orbit of a looking for b
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}

	return false
}

// keyOf returns the fold key of the first character of a non-empty string.
// Strings starting with characters equal under case folding share a key.
func keyOf(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)

	return foldKey(r)
}

// foldKey returns the smallest rune of the simple case folding orbit of r.
func foldKey(r rune) rune {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			r -= 'a' - 'A'
		}

		return r
	}

	key := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < key {
			key = f
		}
	}

	return key
}

// suffix returns the remainder of s after its first n bytes.
func suffix(s string, n int) string {
	return s[n:]
}

// isBlank reports whether s is empty or contains white space only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// checkWord validates a word before it enters the tree.
func checkWord(word string) error {
	if isBlank(word) {
		return fmt.Errorf("word %q can't be empty or blank: %w", word, ErrInvalidArgument)
	}

	if !utf8.ValidString(word) {
		return fmt.Errorf("word %q is not a valid UTF-8 string: %w", word, ErrInvalidArgument)
	}

	return nil
}
