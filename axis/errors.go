package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLabels is returned when an Index is constructed from an
	// empty label sequence, or when an empty subset is resolved.
	ErrNoLabels = errors.New("at least one label is required")

	// ErrInvalidSelector is returned when a zero-value Selector is
	// resolved.
	ErrInvalidSelector = errors.New("invalid selector")
)

// ErrLabelNotFound indicates a label that is not part of the axis
// vocabulary.
type ErrLabelNotFound struct {
	Label string
}

func (e *ErrLabelNotFound) Error() string {
	return fmt.Sprintf("label %q not found", e.Label)
}

// ErrDuplicateLabel indicates a label that occurs more than once in an
// input sequence. First and Dup are the positions of the first and the
// offending occurrence within that sequence.
type ErrDuplicateLabel struct {
	Label string
	First int
	Dup   int
}

func (e *ErrDuplicateLabel) Error() string {
	return fmt.Sprintf("duplicate label %q (positions %d and %d)", e.Label, e.First, e.Dup)
}
