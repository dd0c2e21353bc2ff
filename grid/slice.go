package grid

import "slices"

type selKind uint8

const (
	selIndex selKind = iota + 1
	selAll
	selRange
)

// Sel is a positional selector for one axis of a Slice call.
// The zero value is invalid; use Index, All, Range, or Strided.
type Sel struct {
	kind  selKind
	index int
	start int
	stop  int
	step  int
}

// Index selects a single position and collapses the axis.
func Index(i int) Sel {
	return Sel{kind: selIndex, index: i}
}

// All keeps the full extent of the axis.
func All() Sel {
	return Sel{kind: selAll}
}

// Range keeps the half-open interval [start, stop) of the axis.
func Range(start, stop int) Sel {
	return Sel{kind: selRange, start: start, stop: stop, step: 1}
}

// Strided keeps every step-th position of [start, stop).
func Strided(start, stop, step int) Sel {
	return Sel{kind: selRange, start: start, stop: stop, step: step}
}

// Slice returns a view of the grid with one selector per axis.
// Axes selected by Index are collapsed out of the result; All and
// Range axes survive. Collapsing every axis yields a rank-0 view
// whose element is available via Item.
//
// The view shares the backing storage of the receiver.
func (g *Grid[T]) Slice(sels ...Sel) (*Grid[T], error) {
	if len(sels) != g.Rank() {
		return nil, &ErrRankMismatch{Rank: g.Rank(), Got: len(sels)}
	}

	offset := g.offset
	shape := make([]int, 0, g.Rank())
	strides := make([]int, 0, g.Rank())

	for ax, sel := range sels {
		size := g.shape[ax]
		switch sel.kind {
		case selIndex:
			if sel.index < 0 || sel.index >= size {
				return nil, &ErrOutOfRange{Axis: ax, Index: sel.index, Size: size}
			}
			offset += sel.index * g.strides[ax]
		case selAll:
			shape = append(shape, size)
			strides = append(strides, g.strides[ax])
		case selRange:
			if sel.start < 0 || sel.stop > size || sel.start >= sel.stop || sel.step < 1 {
				return nil, &ErrInvalidRange{Axis: ax, Start: sel.start, Stop: sel.stop, Step: sel.step, Size: size}
			}
			offset += sel.start * g.strides[ax]
			shape = append(shape, 1+(sel.stop-sel.start-1)/sel.step)
			strides = append(strides, g.strides[ax]*sel.step)
		default:
			return nil, ErrInvalidSelector
		}
	}

	return &Grid[T]{
		data:    g.data,
		offset:  offset,
		shape:   shape,
		strides: strides,
	}, nil
}

// Take gathers the given positions along one axis, preserving rank.
// The extent of the axis becomes len(positions); positions may repeat
// and appear in any order. The result is a compact copy, not a view.
func (g *Grid[T]) Take(ax int, positions []int) (*Grid[T], error) {
	if ax < 0 || ax >= g.Rank() {
		return nil, &ErrInvalidAxis{Axis: ax, Rank: g.Rank()}
	}
	for _, p := range positions {
		if p < 0 || p >= g.shape[ax] {
			return nil, &ErrOutOfRange{Axis: ax, Index: p, Size: g.shape[ax]}
		}
	}

	shape := slices.Clone(g.shape)
	shape[ax] = len(positions)
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	out := &Grid[T]{
		data:    make([]T, product(shape)),
		shape:   shape,
		strides: rowMajorStrides(shape),
	}

	coords := make([]int, g.Rank())
	src := make([]int, g.Rank())
	for i := range out.data {
		copy(src, coords)
		src[ax] = positions[coords[ax]]
		out.data[i] = g.data[g.index(src)]
		increment(coords, shape)
	}

	return out, nil
}
