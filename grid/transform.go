package grid

import "slices"

// Transpose returns a view with axes permuted so that result axis i is
// the receiver's axis order[i]. The order must reference every axis
// exactly once. No elements are moved.
func (g *Grid[T]) Transpose(order ...int) (*Grid[T], error) {
	if len(order) != g.Rank() {
		return nil, &ErrRankMismatch{Rank: g.Rank(), Got: len(order)}
	}
	seen := make([]bool, g.Rank())
	for _, ax := range order {
		if ax < 0 || ax >= g.Rank() {
			return nil, &ErrInvalidAxis{Axis: ax, Rank: g.Rank()}
		}
		if seen[ax] {
			return nil, ErrInvalidOrder
		}
		seen[ax] = true
	}

	shape := make([]int, g.Rank())
	strides := make([]int, g.Rank())
	for i, ax := range order {
		shape[i] = g.shape[ax]
		strides[i] = g.strides[ax]
	}

	return &Grid[T]{
		data:    g.data,
		offset:  g.offset,
		shape:   shape,
		strides: strides,
	}, nil
}

// SumAxis collapses one axis by summation. The result has rank one
// lower than the receiver; reducing a rank-1 grid yields a rank-0 grid.
func (g *Grid[T]) SumAxis(ax int) (*Grid[T], error) {
	return g.foldAxis(ax, func(acc, v T) T { return acc + v })
}

// MinAxis collapses one axis to its per-slot minimum.
func (g *Grid[T]) MinAxis(ax int) (*Grid[T], error) {
	return g.foldAxis(ax, func(acc, v T) T { return min(acc, v) })
}

// MaxAxis collapses one axis to its per-slot maximum.
func (g *Grid[T]) MaxAxis(ax int) (*Grid[T], error) {
	return g.foldAxis(ax, func(acc, v T) T { return max(acc, v) })
}

// MeanAxis collapses one axis to its per-slot mean. For integer element
// types the mean truncates toward zero.
func (g *Grid[T]) MeanAxis(ax int) (*Grid[T], error) {
	out, err := g.SumAxis(ax)
	if err != nil {
		return nil, err
	}
	n := T(g.shape[ax])
	for i := range out.data {
		out.data[i] /= n
	}

	return out, nil
}

// Sum returns the sum of all elements.
func (g *Grid[T]) Sum() T {
	var total T
	for _, v := range g.Coords() {
		total += v
	}

	return total
}

// Min returns the smallest element.
func (g *Grid[T]) Min() T {
	first := true
	var best T
	for _, v := range g.Coords() {
		if first || v < best {
			best = v
			first = false
		}
	}

	return best
}

// Max returns the largest element.
func (g *Grid[T]) Max() T {
	first := true
	var best T
	for _, v := range g.Coords() {
		if first || v > best {
			best = v
			first = false
		}
	}

	return best
}

// Mean returns the mean of all elements, truncating for integer types.
func (g *Grid[T]) Mean() T {
	return g.Sum() / T(g.Size())
}

// foldAxis collapses one axis by folding its elements pairwise, seeded
// with the first element of each run.
func (g *Grid[T]) foldAxis(ax int, fold func(acc, v T) T) (*Grid[T], error) {
	if ax < 0 || ax >= g.Rank() {
		return nil, &ErrInvalidAxis{Axis: ax, Rank: g.Rank()}
	}

	shape := slices.Concat(g.shape[:ax], g.shape[ax+1:])
	out := &Grid[T]{
		data:    make([]T, product(shape)),
		shape:   shape,
		strides: rowMajorStrides(shape),
	}

	coords := make([]int, len(shape))
	src := make([]int, g.Rank())
	for i := range out.data {
		for d := 0; d < ax; d++ {
			src[d] = coords[d]
		}
		for d := ax + 1; d < g.Rank(); d++ {
			src[d] = coords[d-1]
		}

		src[ax] = 0
		acc := g.data[g.index(src)]
		for k := 1; k < g.shape[ax]; k++ {
			src[ax] = k
			acc = fold(acc, g.data[g.index(src)])
		}
		out.data[i] = acc
		increment(coords, shape)
	}

	return out, nil
}
