package grid

import (
	"fmt"
	"iter"
	"slices"
)

// Number is the element constraint for grids: any fixed-size integer,
// platform integer, or float type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Grid is a dense N-dimensional array over a row-major backing slice.
//
// A grid may be a view: offset and strides describe where its elements
// live inside the backing slice, so multiple grids can share storage.
// Writes through SetAt are visible to every view of the same backing.
type Grid[T Number] struct {
	data    []T
	offset  int
	shape   []int
	strides []int
}

// New creates a zero-filled grid with the given shape.
// The shape must have at least one axis and only positive extents.
func New[T Number](shape ...int) (*Grid[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	return &Grid[T]{
		data:    make([]T, product(shape)),
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
	}, nil
}

// Full creates a grid with the given shape, every element set to v.
func Full[T Number](v T, shape ...int) (*Grid[T], error) {
	g, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = v
	}

	return g, nil
}

// FromSlice wraps a backing slice in a grid with the given shape.
// The slice is retained, not copied; len(data) must equal the product
// of the extents. Callers must not resize the slice afterwards.
func FromSlice[T Number](data []T, shape ...int) (*Grid[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	if want := product(shape); len(data) != want {
		return nil, &ErrSizeMismatch{Want: want, Got: len(data)}
	}

	return &Grid[T]{
		data:    data,
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
	}, nil
}

// Rank returns the number of axes. Views produced by Slice may have
// rank zero.
func (g *Grid[T]) Rank() int {
	return len(g.shape)
}

// Shape returns a copy of the extents per axis.
func (g *Grid[T]) Shape() []int {
	return slices.Clone(g.shape)
}

// Size returns the number of elements addressed by the grid.
func (g *Grid[T]) Size() int {
	return product(g.shape)
}

// Stride returns the element stride of the given axis.
func (g *Grid[T]) Stride(ax int) (int, error) {
	if ax < 0 || ax >= len(g.strides) {
		return 0, &ErrInvalidAxis{Axis: ax, Rank: g.Rank()}
	}

	return g.strides[ax], nil
}

// At returns the element at the given coordinates. Exactly rank
// coordinates are required, each within the extent of its axis;
// negative coordinates are not supported.
func (g *Grid[T]) At(coords ...int) (T, error) {
	var zero T
	if err := g.validateCoords(coords); err != nil {
		return zero, err
	}

	return g.data[g.index(coords)], nil
}

// SetAt stores v at the given coordinates, with the same validation as
// At. Writing through a view writes to the shared backing.
func (g *Grid[T]) SetAt(v T, coords ...int) error {
	if err := g.validateCoords(coords); err != nil {
		return err
	}
	g.data[g.index(coords)] = v

	return nil
}

// Item returns the sole element of a single-element grid, such as a
// rank-0 view produced by collapsing every axis.
func (g *Grid[T]) Item() (T, error) {
	var zero T
	if g.Size() != 1 {
		return zero, ErrNotScalar
	}
	coords := make([]int, g.Rank())

	return g.data[g.index(coords)], nil
}

// Values returns the elements in row-major order as a fresh slice,
// regardless of how the grid is strided.
func (g *Grid[T]) Values() []T {
	out := make([]T, g.Size())
	if g.contiguous() {
		copy(out, g.data[g.offset:g.offset+len(out)])
		return out
	}

	i := 0
	for _, v := range g.Coords() {
		out[i] = v
		i++
	}

	return out
}

// Coords iterates elements in row-major order together with their
// coordinates. The coordinate slice is reused between iterations;
// clone it if retained.
func (g *Grid[T]) Coords() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		coords := make([]int, g.Rank())
		for range g.Size() {
			if !yield(coords, g.data[g.index(coords)]) {
				return
			}
			increment(coords, g.shape)
		}
	}
}

// Clone returns a compact row-major deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		data:    g.Values(),
		shape:   slices.Clone(g.shape),
		strides: rowMajorStrides(g.shape),
	}
}

// Equal reports whether both grids have the same shape and elements.
// Float comparison follows IEEE semantics, so NaN is never equal.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if o == nil || !slices.Equal(g.shape, o.shape) {
		return false
	}
	for coords, v := range g.Coords() {
		if o.data[o.index(coords)] != v {
			return false
		}
	}

	return true
}

// String returns a compact description of the grid.
func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid(shape=%v, size=%d)", g.shape, g.Size())
}

// index converts validated coordinates to a backing-slice position.
func (g *Grid[T]) index(coords []int) int {
	off := g.offset
	for i, c := range coords {
		off += c * g.strides[i]
	}

	return off
}

func (g *Grid[T]) validateCoords(coords []int) error {
	if len(coords) != g.Rank() {
		return &ErrRankMismatch{Rank: g.Rank(), Got: len(coords)}
	}
	for i, c := range coords {
		if c < 0 || c >= g.shape[i] {
			return &ErrOutOfRange{Axis: i, Index: c, Size: g.shape[i]}
		}
	}

	return nil
}

func (g *Grid[T]) contiguous() bool {
	return slices.Equal(g.strides, rowMajorStrides(g.shape))
}

func validateShape(shape []int) error {
	if len(shape) == 0 {
		return &ErrInvalidShape{Shape: slices.Clone(shape)}
	}
	for _, n := range shape {
		if n <= 0 {
			return &ErrInvalidShape{Shape: slices.Clone(shape)}
		}
	}

	return nil
}

// rowMajorStrides computes contiguous strides, innermost axis fastest.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}

	return strides
}

func product(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}

// increment advances coords one step in row-major order, wrapping at
// each extent.
func increment(coords, shape []int) {
	for d := len(coords) - 1; d >= 0; d-- {
		coords[d]++
		if coords[d] < shape[d] {
			return
		}
		coords[d] = 0
	}
}
