// This file implements the fluent builder API for constructing labelled arrays.
// Builders are immutable - each method returns a new builder with the updated configuration.

package labgrid

import (
	"slices"

	"github.com/hupe1980/labgrid/grid"
)

// NewBuilder creates a fluent builder for labelled arrays.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration, so partial builders can be shared and reused.
//
// Example:
//
//	arr, err := labgrid.NewBuilder[float64]().
//	    Axis("station", "ACB", "DSF").
//	    Axis("im", "PGA", "PGV").
//	    Axis("rel", "R1", "R2").
//	    Values(0, 1, 2, 3, 4, 5, 6, 7).
//	    Build()
func NewBuilder[T grid.Number]() Builder[T] {
	return Builder[T]{}
}

// Builder is an immutable fluent builder for creating labelled arrays.
// Each method returns a new builder with the updated configuration.
type Builder[T grid.Number] struct {
	axisNames  []string
	axisLabels [][]string
	values     []T
	g          *grid.Grid[T]
	logger     *Logger
	metrics    MetricsCollector
}

// Axis appends an axis with the given name and labels. Axis order is
// call order. An empty name gets the axis_N default.
func (b Builder[T]) Axis(name string, labels ...string) Builder[T] {
	b.axisNames = append(slices.Clone(b.axisNames), name)
	b.axisLabels = append(slices.Clone(b.axisLabels), labels)
	return b
}

// Values binds row-major element data. The element count must match
// the product of the axis extents at Build time.
func (b Builder[T]) Values(values ...T) Builder[T] {
	b.values = values
	return b
}

// Grid binds existing storage instead of row-major values. Takes
// precedence over Values.
func (b Builder[T]) Grid(g *grid.Grid[T]) Builder[T] {
	b.g = g
	return b
}

// Logger configures operation logging for the built array.
func (b Builder[T]) Logger(logger *Logger) Builder[T] {
	b.logger = logger
	return b
}

// Metrics configures metrics collection for the built array.
func (b Builder[T]) Metrics(collector MetricsCollector) Builder[T] {
	b.metrics = collector
	return b
}

// Build validates the configuration and constructs the array.
func (b Builder[T]) Build() (*Array[T], error) {
	g := b.g
	if g == nil {
		shape := make([]int, len(b.axisLabels))
		for i, labels := range b.axisLabels {
			shape[i] = len(labels)
		}
		var err error
		g, err = grid.FromSlice(b.values, shape...)
		if err != nil {
			return nil, err
		}
	}

	optFns := make([]Option, 0, 3)
	if names, named := b.names(); named {
		optFns = append(optFns, WithAxisNames(names...))
	}
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}

	return New(g, b.axisLabels, optFns...)
}

// names fills unnamed axes with defaults; named reports whether any
// axis was explicitly named.
func (b Builder[T]) names() ([]string, bool) {
	named := false
	names := make([]string, len(b.axisNames))
	for i, n := range b.axisNames {
		if n != "" {
			named = true
			names[i] = n
			continue
		}
		names[i] = defaultAxisName(i)
	}

	return names, named
}
