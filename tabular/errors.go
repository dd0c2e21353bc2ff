package tabular

import (
	"errors"
	"fmt"
)

// ErrTableRank is returned when a table is constructed over a grid
// whose rank is not two.
var ErrTableRank = errors.New("table requires a rank-2 grid")

// ErrLengthMismatch indicates that a label vector does not match the
// number of values it is supposed to address.
type ErrLengthMismatch struct {
	Values int
	Labels int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d values, %d labels", e.Values, e.Labels)
}

// ErrOutOfRange indicates a position outside a series or table extent.
type ErrOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range (len %d)", e.Index, e.Len)
}
