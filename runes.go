package substr

import (
	"github.com/mhr3/substr/ascii"
	"github.com/mhr3/substr/internal/track"
	"github.com/mhr3/substr/utf8"
)

// FindFirstRunes is FindFirst reporting a code point offset instead of a
// byte offset. Both arguments must be valid UTF-8, otherwise it fails with
// ErrInvalidArgument.
func FindFirstRunes(subject, pattern string) (int, error) {
	if err := checkUTF8(subject, pattern); err != nil {
		return NotFound, err
	}
	if pattern == "" {
		return 0, nil
	}

	at := track.First(view(subject), view(pattern))
	if at <= 0 || ascii.ValidString(subject[:at]) {
		return at, nil
	}
	return utf8.RuneCount(subject[:at]), nil
}

// FindAllRunes is FindAll reporting code point offsets instead of byte
// offsets. Both arguments must be valid UTF-8, otherwise it fails with
// ErrInvalidArgument. An empty pattern occurs at every code point offset
// 0..RuneCount(subject).
func FindAllRunes(subject, pattern string) ([]int, error) {
	if err := checkUTF8(subject, pattern); err != nil {
		return nil, err
	}
	if pattern == "" {
		n := utf8.RuneCount(subject)
		out := make([]int, n+1)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}

	// In valid UTF-8 a match of a valid pattern starts on a rune boundary,
	// so the byte scan finds exactly the code point matches.
	out := track.All(view(subject), view(pattern))
	if len(out) > 0 && !ascii.ValidString(subject) {
		utf8.RuneOffsets(subject, out)
	}
	return out, nil
}

func checkUTF8(subject, pattern string) error {
	if !utf8.ValidString(subject) {
		return &ArgumentError{Arg: "subject", Reason: "invalid UTF-8"}
	}
	if !utf8.ValidString(pattern) {
		return &ArgumentError{Arg: "pattern", Reason: "invalid UTF-8"}
	}
	return nil
}
