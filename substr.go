// Package substr locates exact occurrences of a pattern in a subject.
//
// Matching is a single left-to-right scan that tracks candidate start
// positions: a candidate opens wherever the first pattern element appears,
// is dropped on its first mismatch and is confirmed once it has consumed the
// whole pattern. Overlapping occurrences are all reported, in ascending
// order. The worst case is O(n·k) time and O(k) extra space.
//
// Offsets are byte offsets unless a function says otherwise; the Runes
// variants report code point offsets.
//
// Empty inputs follow a fixed policy:
//   - an empty pattern occurs at every offset 0..len(subject), so FindFirst
//     returns 0 and FindAll returns len(subject)+1 offsets;
//   - a non-empty pattern never occurs in an empty subject;
//   - a pattern longer than the subject never occurs and is not scanned.
//
// All functions are safe for concurrent use. They keep no state between
// calls and never write to their inputs.
package substr

import (
	"unsafe"

	"github.com/mhr3/substr/internal/track"
)

// NotFound is the offset FindFirst reports when the pattern does not occur.
const NotFound = track.NotFound

// FindFirst returns the lowest byte offset at which pattern occurs in
// subject, or NotFound.
func FindFirst(subject, pattern string) int {
	return track.First(view(subject), view(pattern))
}

// FindAll returns every byte offset at which pattern occurs in subject, in
// ascending order. Overlapping occurrences are included. It returns nil if
// there are none.
func FindAll(subject, pattern string) []int {
	return track.All(view(subject), view(pattern))
}

// Count returns the number of possibly overlapping occurrences of pattern.
func Count(subject, pattern string) int {
	return track.Count(view(subject), view(pattern))
}

// Contains reports whether pattern occurs in subject.
func Contains(subject, pattern string) bool {
	return FindFirst(subject, pattern) != NotFound
}

// view borrows the bytes of s without copying. The tracker only reads it.
func view(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
