package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEntry is returned for puzzle-bank entries that cannot be decoded.
	ErrMalformedEntry = errors.New("malformed puzzle entry")

	// ErrMalformedBoard is returned for serialized boards that cannot be parsed.
	ErrMalformedBoard = errors.New("malformed board")

	// ErrInvalidSolution is returned when a stored move sequence contains a
	// step that does not move anything.
	ErrInvalidSolution = errors.New("invalid solution")
)

// SolutionError describes the degenerate step of a stored solution.
type SolutionError struct {
	Step  int  // Zero-based index into the move list
	Move  Move // The offending move
	Board Board
}

func (e *SolutionError) Error() string {
	return fmt.Sprintf("%s: step %d (%s) does not move anything on %s",
		ErrInvalidSolution, e.Step, e.Move, e.Board)
}

// Unwrap allows errors.Is(err, ErrInvalidSolution).
func (e *SolutionError) Unwrap() error {
	return ErrInvalidSolution
}

func malformedEntry(entry, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrMalformedEntry, entry, fmt.Sprintf(format, args...))
}

func malformedBoard(s, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrMalformedBoard, s, fmt.Sprintf(format, args...))
}
