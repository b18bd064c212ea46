// Package utf8 validates subjects for the rune-offset search API and maps
// byte offsets in valid UTF-8 text to code point offsets.
package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/substr/ascii"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	// speed up the common case
	idx := ascii.IndexNonASCII(s)
	if idx == -1 {
		return true
	}

	return stdlib.ValidString(s[idx:])
}

// RuneCount returns the number of code points in s.
func RuneCount(s string) int {
	idx := ascii.IndexNonASCII(s)
	if idx == -1 {
		return len(s)
	}
	return idx + stdlib.RuneCountInString(s[idx:])
}

// RuneOffsets rewrites ascending byte offsets into s as code point offsets,
// in place. Every offset must fall on a rune boundary of s and lie in
// 0..len(s).
func RuneOffsets(s string, offsets []int) {
	prefix := ascii.IndexNonASCII(s)
	if prefix == -1 {
		return
	}

	pos, runes := prefix, prefix
	for i, off := range offsets {
		if off <= prefix {
			continue
		}
		runes += stdlib.RuneCountInString(s[pos:off])
		pos = off
		offsets[i] = runes
	}
}
