package labgrid

import (
	"errors"
	"fmt"

	"github.com/hupe1980/labgrid/axis"
)

var (
	// ErrNilGrid is returned when an array is constructed without
	// storage.
	ErrNilGrid = errors.New("grid must not be nil")
)

// ErrAxisCountMismatch indicates that the number of label vectors or
// axis names does not match the rank of the data.
type ErrAxisCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrAxisCountMismatch) Error() string {
	return fmt.Sprintf("axis count mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrAxisLengthMismatch indicates that a label vector does not match
// the extent of its axis.
type ErrAxisLengthMismatch struct {
	Axis   int
	Extent int
	Labels int
}

func (e *ErrAxisLengthMismatch) Error() string {
	return fmt.Sprintf("axis %d length mismatch: extent %d, got %d labels", e.Axis, e.Extent, e.Labels)
}

// ErrDuplicateLabel indicates a repeated label on one axis. First and
// Dup are the positions of the two occurrences.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDuplicateLabel struct {
	Axis  int
	Label string
	First int
	Dup   int
	cause error
}

func (e *ErrDuplicateLabel) Error() string {
	return fmt.Sprintf("axis %d: duplicate label %q (positions %d and %d)", e.Axis, e.Label, e.First, e.Dup)
}

func (e *ErrDuplicateLabel) Unwrap() error { return e.cause }

// ErrDuplicateAxisName indicates a repeated axis name.
type ErrDuplicateAxisName struct {
	Name string
}

func (e *ErrDuplicateAxisName) Error() string {
	return fmt.Sprintf("duplicate axis name %q", e.Name)
}

// ErrLabelNotFound indicates a selector label that is not part of the
// vocabulary of its axis.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrLabelNotFound struct {
	Axis  int
	Label string
	cause error
}

func (e *ErrLabelNotFound) Error() string {
	return fmt.Sprintf("axis %d: label %q not found", e.Axis, e.Label)
}

func (e *ErrLabelNotFound) Unwrap() error { return e.cause }

// ErrSelectorCountMismatch indicates that a selection did not provide
// exactly one selector per axis.
type ErrSelectorCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSelectorCountMismatch) Error() string {
	return fmt.Sprintf("selector count mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidSelector indicates a zero-value selector.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSelector struct {
	Axis  int
	cause error
}

func (e *ErrInvalidSelector) Error() string {
	return fmt.Sprintf("axis %d: invalid selector", e.Axis)
}

func (e *ErrInvalidSelector) Unwrap() error { return e.cause }

// ErrUnsupportedRank indicates a result shape with no labelled
// representation: more than two axes surviving a selection, or a
// reduction that would leave no axes at all.
type ErrUnsupportedRank struct {
	Rank int
}

func (e *ErrUnsupportedRank) Error() string {
	return fmt.Sprintf("unsupported result rank: %d", e.Rank)
}

// ErrUnknownAxis indicates an axis name that is not part of the array.
type ErrUnknownAxis struct {
	Name string
}

func (e *ErrUnknownAxis) Error() string {
	return fmt.Sprintf("unknown axis %q", e.Name)
}

// ErrAxisOutOfRange indicates an axis number outside [0, rank).
type ErrAxisOutOfRange struct {
	Axis int
	Rank int
}

func (e *ErrAxisOutOfRange) Error() string {
	return fmt.Sprintf("axis %d out of range for rank %d", e.Axis, e.Rank)
}

// translateAxisError lifts an axis-level error into the root
// vocabulary, attaching the axis number. Unrecognized errors are
// wrapped with the axis number only.
func translateAxisError(ax int, err error) error {
	if err == nil {
		return nil
	}

	var lnf *axis.ErrLabelNotFound
	if errors.As(err, &lnf) {
		return &ErrLabelNotFound{Axis: ax, Label: lnf.Label, cause: err}
	}

	var dup *axis.ErrDuplicateLabel
	if errors.As(err, &dup) {
		return &ErrDuplicateLabel{Axis: ax, Label: dup.Label, First: dup.First, Dup: dup.Dup, cause: err}
	}

	if errors.Is(err, axis.ErrInvalidSelector) {
		return &ErrInvalidSelector{Axis: ax, cause: err}
	}

	return fmt.Errorf("axis %d: %w", ax, err)
}
