package substr

import (
	"fmt"

	"github.com/mhr3/substr/internal/track"
)

// Finder searches repeatedly for one pattern.
// Construct once with NewFinder, then search any number of subjects.
// A Finder is immutable and safe for concurrent use.
type Finder struct {
	pattern string
	cfg     Config
}

// NewFinder creates a Finder for pattern. It fails if cfg is invalid.
func NewFinder(pattern string, cfg Config) (*Finder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Finder{
		pattern: pattern,
		cfg:     cfg,
	}, nil
}

// Pattern returns the pattern the Finder searches for.
func (f *Finder) Pattern() string {
	return f.pattern
}

// FindFirst returns the lowest byte offset of the pattern in subject,
// or NotFound.
func (f *Finder) FindFirst(subject string) (int, error) {
	if err := f.check(subject); err != nil {
		return NotFound, err
	}
	return track.First(view(subject), view(f.pattern)), nil
}

// FindAll returns the byte offsets of the pattern in subject, ascending.
func (f *Finder) FindAll(subject string) ([]int, error) {
	if err := f.check(subject); err != nil {
		return nil, err
	}
	var out []int
	f.scan(subject, func(i int) bool {
		out = append(out, i)
		return true
	})
	return out, nil
}

// Count returns the number of occurrences FindAll would report.
func (f *Finder) Count(subject string) (int, error) {
	if err := f.check(subject); err != nil {
		return 0, err
	}
	var c int
	f.scan(subject, func(int) bool {
		c++
		return true
	})
	return c, nil
}

// Contains reports whether the pattern occurs in subject.
func (f *Finder) Contains(subject string) (bool, error) {
	at, err := f.FindFirst(subject)
	return at != NotFound, err
}

func (f *Finder) check(subject string) error {
	if f.cfg.MaxWork == 0 {
		return nil
	}
	if work := int64(len(subject)) * int64(len(f.pattern)); work > f.cfg.MaxWork {
		return fmt.Errorf("%w: %d*%d exceeds %d", ErrInputTooLarge, len(subject), len(f.pattern), f.cfg.MaxWork)
	}
	return nil
}

func (f *Finder) scan(subject string, emit func(int) bool) {
	if f.cfg.Overlapping {
		track.Scan(view(subject), view(f.pattern), emit)
		return
	}

	next := 0
	track.Scan(view(subject), view(f.pattern), func(i int) bool {
		if i < next {
			return true
		}
		next = i + len(f.pattern)
		return emit(i)
	})
}
