package tabular

import (
	"iter"

	"github.com/hupe1980/labgrid/axis"
	"github.com/hupe1980/labgrid/grid"
)

// Series is a one-dimensional labelled sequence: ordered values
// addressable by label or by position.
type Series[T grid.Number] struct {
	values []T
	index  *axis.Index
}

// NewSeries creates a series over the given values and labels. Both
// must have the same non-zero length and the labels must be unique.
// The values slice is retained, not copied.
func NewSeries[T grid.Number](values []T, labels []string) (*Series[T], error) {
	if len(values) != len(labels) {
		return nil, &ErrLengthMismatch{Values: len(values), Labels: len(labels)}
	}

	ix, err := axis.New(labels)
	if err != nil {
		return nil, err
	}

	return &Series[T]{
		values: values,
		index:  ix,
	}, nil
}

// Len returns the number of values.
func (s *Series[T]) Len() int {
	return len(s.values)
}

// Labels returns the ordered label vector. Read-only view.
func (s *Series[T]) Labels() []string {
	return s.index.Labels()
}

// Values returns the ordered values. Read-only view.
func (s *Series[T]) Values() []T {
	return s.values
}

// Index returns the label index of the series.
func (s *Series[T]) Index() *axis.Index {
	return s.index
}

// Get returns the value carrying the given label.
func (s *Series[T]) Get(label string) (T, error) {
	p, err := s.index.Position(label)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.values[p], nil
}

// At returns the value at the given position.
func (s *Series[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.values) {
		var zero T
		return zero, &ErrOutOfRange{Index: i, Len: len(s.values)}
	}

	return s.values[i], nil
}

// All iterates label/value pairs in label order.
func (s *Series[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for i, l := range s.index.Labels() {
			if !yield(l, s.values[i]) {
				return
			}
		}
	}
}
