package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrNotScalar is returned when Item is called on a grid that holds
	// more than one element.
	ErrNotScalar = errors.New("not a single-element grid")

	// ErrInvalidOrder is returned when a transpose order does not
	// reference every axis exactly once.
	ErrInvalidOrder = errors.New("order must reference every axis exactly once")

	// ErrInvalidSelector is returned when a zero-value positional
	// selector is passed to Slice.
	ErrInvalidSelector = errors.New("invalid positional selector")
)

// ErrInvalidShape indicates a shape with no axes or a non-positive extent.
type ErrInvalidShape struct {
	Shape []int
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid shape: %v", e.Shape)
}

// ErrSizeMismatch indicates that a backing slice does not match the
// element count implied by a shape.
type ErrSizeMismatch struct {
	Want int
	Got  int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: shape requires %d elements, got %d", e.Want, e.Got)
}

// ErrRankMismatch indicates that the number of coordinates or selectors
// does not match the rank of the grid.
type ErrRankMismatch struct {
	Rank int
	Got  int
}

func (e *ErrRankMismatch) Error() string {
	return fmt.Sprintf("rank mismatch: grid has %d axes, got %d", e.Rank, e.Got)
}

// ErrInvalidAxis indicates an axis number outside [0, rank).
type ErrInvalidAxis struct {
	Axis int
	Rank int
}

func (e *ErrInvalidAxis) Error() string {
	return fmt.Sprintf("invalid axis %d for rank %d", e.Axis, e.Rank)
}

// ErrOutOfRange indicates a position outside the extent of an axis.
type ErrOutOfRange struct {
	Axis  int
	Index int
	Size  int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range on axis %d (extent %d)", e.Index, e.Axis, e.Size)
}

// ErrInvalidRange indicates a half-open range that is empty, reversed,
// out of bounds, or has a non-positive step.
type ErrInvalidRange struct {
	Axis  int
	Start int
	Stop  int
	Step  int
	Size  int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range [%d:%d:%d] on axis %d (extent %d)", e.Start, e.Stop, e.Step, e.Axis, e.Size)
}
