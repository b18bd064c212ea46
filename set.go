package substr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/mhr3/substr/internal/track"
)

// SmallSetLimit is the largest Set that is searched with one tracker per
// pattern. Larger sets are compiled into an Aho-Corasick automaton.
const SmallSetLimit = 8

// Set searches for several patterns at once and reports the offsets at
// which any of them starts. A Set is immutable and safe for concurrent use.
type Set struct {
	patterns []string
	maxLen   int
	auto     *ahocorasick.Automaton
}

// NewSet creates a Set. It fails with ErrInvalidArgument if no patterns are
// given or any pattern is empty.
func NewSet(patterns ...string) (*Set, error) {
	if len(patterns) == 0 {
		return nil, &ArgumentError{Arg: "patterns", Reason: "no patterns"}
	}
	for i, p := range patterns {
		if p == "" {
			return nil, &ArgumentError{Arg: fmt.Sprintf("patterns[%d]", i), Reason: "empty pattern"}
		}
	}

	s := &Set{patterns: slices.Clone(patterns)}
	for _, p := range s.patterns {
		s.maxLen = max(s.maxLen, len(p))
	}
	if len(patterns) <= SmallSetLimit {
		return s, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, p := range s.patterns {
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("substr: build automaton for %d patterns: %w", len(patterns), err)
	}
	s.auto = auto
	return s, nil
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// FindFirst returns the lowest byte offset at which any pattern occurs,
// or NotFound.
func (s *Set) FindFirst(subject string) int {
	if s.auto != nil {
		if subject == "" {
			return NotFound
		}
		m := s.auto.Find(view(subject), 0)
		if m == nil {
			return NotFound
		}
		for p := max(0, m.End-s.maxLen); p < m.Start; p++ {
			if s.startsAt(subject, p) {
				return p
			}
		}
		return m.Start
	}

	best := NotFound
	for _, p := range s.patterns {
		at := track.First(view(subject), view(p))
		if at != NotFound && (best == NotFound || at < best) {
			best = at
		}
	}
	return best
}

// FindAll returns every distinct byte offset at which some pattern occurs,
// in ascending order.
func (s *Set) FindAll(subject string) []int {
	hay := view(subject)
	if s.auto != nil {
		var out []int
		for at := 0; at < len(hay); {
			m := s.auto.Find(hay, at)
			if m == nil {
				break
			}
			// The automaton reports the match that ends first. A longer
			// pattern may start before it, but no earlier than End-maxLen.
			for p := max(at, m.End-s.maxLen); p < m.Start; p++ {
				if s.startsAt(subject, p) {
					out = append(out, p)
				}
			}
			out = append(out, m.Start)
			at = m.Start + 1
		}
		return out
	}

	var out []int
	for _, p := range s.patterns {
		out = append(out, track.All(hay, view(p))...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// startsAt reports whether some pattern occurs at offset p of subject.
func (s *Set) startsAt(subject string, p int) bool {
	for _, pat := range s.patterns {
		if strings.HasPrefix(subject[p:], pat) {
			return true
		}
	}
	return false
}
