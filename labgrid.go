package labgrid

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/labgrid/axis"
	"github.com/hupe1980/labgrid/grid"
)

// Array is a labelled view over an N-dimensional grid: one label
// vocabulary per axis, so elements can be addressed by meaningful
// labels instead of positions.
//
// The array holds a reference to its grid rather than a copy; the same
// grid may back several arrays with different labels. Labels and axis
// names are immutable after construction. The grid itself can still be
// written through Set, which delegates to the storage layer.
type Array[T grid.Number] struct {
	data    *grid.Grid[T]
	axes    []*axis.Index
	names   []string
	logger  *Logger
	metrics MetricsCollector
}

// New wraps a grid with per-axis label vocabularies. labels must hold
// one label vector per axis, each matching the extent of its axis and
// free of duplicates.
//
// Example:
//
//	g, _ := grid.FromSlice([]float64{0, 1, 2, 3}, 2, 2)
//	arr, err := labgrid.New(g, [][]string{
//	    {"ACB", "DSF"},
//	    {"PGA", "PGV"},
//	})
func New[T grid.Number](g *grid.Grid[T], labels [][]string, optFns ...Option) (*Array[T], error) {
	start := time.Now()
	opts := applyOptions(optFns)

	arr, err := newArray(g, labels, opts)

	rank := 0
	if g != nil {
		rank = g.Rank()
	}
	opts.metricsCollector.RecordConstruct(rank, time.Since(start), err)
	opts.logger.LogConstruct(rank, err)

	if err != nil {
		return nil, err
	}

	return arr, nil
}

func newArray[T grid.Number](g *grid.Grid[T], labels [][]string, opts *options) (*Array[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	shape := g.Shape()
	if len(labels) != len(shape) {
		return nil, &ErrAxisCountMismatch{Expected: len(shape), Actual: len(labels)}
	}

	axes := make([]*axis.Index, len(labels))
	for i, ls := range labels {
		if len(ls) != shape[i] {
			return nil, &ErrAxisLengthMismatch{Axis: i, Extent: shape[i], Labels: len(ls)}
		}
		ix, err := axis.New(ls)
		if err != nil {
			return nil, translateAxisError(i, err)
		}
		axes[i] = ix
	}

	names, err := resolveAxisNames(opts.axisNames, len(shape))
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		data:    g,
		axes:    axes,
		names:   names,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}, nil
}

func defaultAxisName(ax int) string {
	return fmt.Sprintf("axis_%d", ax)
}

func resolveAxisNames(names []string, rank int) ([]string, error) {
	if len(names) == 0 {
		names = make([]string, rank)
		for i := range names {
			names[i] = defaultAxisName(i)
		}
		return names, nil
	}

	if len(names) != rank {
		return nil, &ErrAxisCountMismatch{Expected: rank, Actual: len(names)}
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return nil, &ErrDuplicateAxisName{Name: n}
		}
		seen[n] = struct{}{}
	}

	return slices.Clone(names), nil
}

// NDim returns the number of axes.
func (a *Array[T]) NDim() int {
	return a.data.Rank()
}

// Shape returns the extent of each axis.
func (a *Array[T]) Shape() []int {
	return a.data.Shape()
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	return a.data.Size()
}

// Grid returns the underlying storage.
func (a *Array[T]) Grid() *grid.Grid[T] {
	return a.data
}

// Axis returns the label index of the given axis.
func (a *Array[T]) Axis(ax int) (*axis.Index, error) {
	if ax < 0 || ax >= len(a.axes) {
		return nil, &ErrAxisOutOfRange{Axis: ax, Rank: a.NDim()}
	}

	return a.axes[ax], nil
}

// AxisLabels returns the ordered label vector of the given axis.
// Read-only view.
func (a *Array[T]) AxisLabels(ax int) ([]string, error) {
	ix, err := a.Axis(ax)
	if err != nil {
		return nil, err
	}

	return ix.Labels(), nil
}

// AxisNames returns the axis names in axis order. Read-only view.
func (a *Array[T]) AxisNames() []string {
	return a.names
}

// AxisIndex returns the axis number carrying the given name.
func (a *Array[T]) AxisIndex(name string) (int, error) {
	ax := slices.Index(a.names, name)
	if ax < 0 {
		return 0, &ErrUnknownAxis{Name: name}
	}

	return ax, nil
}

// LabelsOf returns the label vector of the named axis. Read-only view.
func (a *Array[T]) LabelsOf(name string) ([]string, error) {
	ax, err := a.AxisIndex(name)
	if err != nil {
		return nil, err
	}

	return a.axes[ax].Labels(), nil
}

// At returns the element at the given coordinates. Pure pass-through to
// the storage layer; labels are not consulted and bounds checking is
// the storage layer's.
func (a *Array[T]) At(coords ...int) (T, error) {
	return a.data.At(coords...)
}

// Set stores v at the given coordinates. Mutation is delegated to the
// storage layer; the labelled view itself never changes.
func (a *Array[T]) Set(v T, coords ...int) error {
	return a.data.SetAt(v, coords...)
}

// Slice applies raw positional selectors and returns the resulting
// storage view. Pure pass-through; labels are not consulted.
func (a *Array[T]) Slice(sels ...grid.Sel) (*grid.Grid[T], error) {
	return a.data.Slice(sels...)
}

// Indexer returns the position of each label on the given axis, with
// -1 for labels that are not part of the vocabulary.
func (a *Array[T]) Indexer(ax int, labels ...string) ([]int, error) {
	ix, err := a.Axis(ax)
	if err != nil {
		return nil, err
	}

	return ix.Indexer(labels), nil
}

// String returns a compact description of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array(shape=%v, axes=[%s])", a.Shape(), strings.Join(a.names, " "))
}
