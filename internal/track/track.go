// Package track implements the candidate tracker: a single left-to-right
// scan of a subject that keeps the set of start offsets at which the pattern
// may still match, pruning each one on its first mismatch and confirming it
// once it has consumed the whole pattern.
//
// The scan is O(n·k) in the worst case. At most k candidates are live at any
// step, since a candidate is resolved exactly k steps after it was opened.
package track

import (
	"github.com/mhr3/substr/internal/bytealg"
	"github.com/mhr3/substr/internal/sparse"
)

// NotFound is returned by First when the pattern does not occur.
const NotFound = -1

// Scan calls emit for every offset at which pattern occurs in subject, in
// ascending order. Overlapping occurrences are all reported. The scan stops
// as soon as emit returns false.
//
// An empty pattern occurs at every offset 0..len(subject).
// Neither slice is written to.
func Scan[E comparable](subject, pattern []E, emit func(int) bool) {
	n, k := len(subject), len(pattern)
	if k == 0 {
		for i := 0; i <= n; i++ {
			if !emit(i) {
				return
			}
		}
		return
	}
	if k > n {
		return
	}

	first := pattern[0]
	sets := sparse.NewSets(k)
	if subject[0] == first {
		sets.Cur.Insert(0)
	}

	for i := 1; i < n; i++ {
		if sets.Cur.IsEmpty() {
			// Nothing in flight: jump to the next position that opens a candidate.
			j := bytealg.IndexElem(subject[i:], first)
			if j < 0 {
				return
			}
			i += j
		}

		c := subject[i]
		for _, s := range sets.Cur.Values() {
			off := i - s
			if off == k {
				if !emit(s) {
					return
				}
				continue
			}
			if pattern[off] == c {
				sets.Next.Insert(s)
			}
		}
		if c == first {
			sets.Next.Insert(i)
		}
		sets.Swap()
	}

	// A candidate opened at n-k consumes its last element at i == n-1 and
	// is never seen with off == k inside the loop.
	if last := n - k; sets.Cur.Contains(last) {
		emit(last)
	}
}

// First returns the lowest offset at which pattern occurs in subject,
// or NotFound.
func First[E comparable](subject, pattern []E) int {
	at := NotFound
	Scan(subject, pattern, func(i int) bool {
		at = i
		return false
	})
	return at
}

// All returns every offset at which pattern occurs in subject, ascending.
// The result is nil when there is no occurrence.
func All[E comparable](subject, pattern []E) []int {
	var out []int
	Scan(subject, pattern, func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Count returns the number of (possibly overlapping) occurrences.
func Count[E comparable](subject, pattern []E) int {
	var c int
	Scan(subject, pattern, func(int) bool {
		c++
		return true
	})
	return c
}
