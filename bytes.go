package substr

import "github.com/mhr3/substr/internal/track"

// FindFirstBytes is FindFirst for byte slices. A nil subject or pattern is
// rejected with ErrInvalidArgument; empty non-nil slices are valid input.
func FindFirstBytes(subject, pattern []byte) (int, error) {
	if err := checkBytes(subject, pattern); err != nil {
		return NotFound, err
	}
	return track.First(subject, pattern), nil
}

// FindAllBytes is FindAll for byte slices. A nil subject or pattern is
// rejected with ErrInvalidArgument; empty non-nil slices are valid input.
func FindAllBytes(subject, pattern []byte) ([]int, error) {
	if err := checkBytes(subject, pattern); err != nil {
		return nil, err
	}
	return track.All(subject, pattern), nil
}

func checkBytes(subject, pattern []byte) error {
	if subject == nil {
		return &ArgumentError{Arg: "subject", Reason: "nil slice"}
	}
	if pattern == nil {
		return &ArgumentError{Arg: "pattern", Reason: "nil slice"}
	}
	return nil
}
