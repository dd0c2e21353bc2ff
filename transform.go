package labgrid

import (
	"slices"
	"time"

	"github.com/hupe1980/labgrid/axis"
)

// Rearrange returns a view with axes reordered by name. Every axis
// must be named exactly once. Labels and axis names move with their
// axes; no elements are copied.
func (a *Array[T]) Rearrange(names ...string) (*Array[T], error) {
	start := time.Now()

	out, err := a.rearrange(names)

	a.metrics.RecordRearrange(time.Since(start), err)
	a.logger.LogRearrange(err)

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (a *Array[T]) rearrange(names []string) (*Array[T], error) {
	if len(names) != a.NDim() {
		return nil, &ErrAxisCountMismatch{Expected: a.NDim(), Actual: len(names)}
	}

	order := make([]int, len(names))
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		ax, err := a.AxisIndex(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			return nil, &ErrDuplicateAxisName{Name: name}
		}
		seen[name] = struct{}{}
		order[i] = ax
	}

	g, err := a.data.Transpose(order...)
	if err != nil {
		return nil, err
	}

	axes := make([]*axis.Index, len(order))
	newNames := make([]string, len(order))
	for i, ax := range order {
		axes[i] = a.axes[ax]
		newNames[i] = a.names[ax]
	}

	return &Array[T]{
		data:    g,
		axes:    axes,
		names:   newNames,
		logger:  a.logger,
		metrics: a.metrics,
	}, nil
}

// Sum collapses one axis by summation, delegating the arithmetic to
// the storage layer. The axis's labels and name drop out of the
// result; the remaining axes carry over. Reducing a rank-1 array has
// no labelled representation and is an error.
//
// Use AxisIndex to reduce by axis name:
//
//	ax, _ := arr.AxisIndex("station")
//	total, err := arr.Sum(ax)
func (a *Array[T]) Sum(ax int) (*Array[T], error) {
	start := time.Now()

	out, err := a.sum(ax)

	a.metrics.RecordReduce(time.Since(start), err)
	a.logger.LogReduce(ax, err)

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (a *Array[T]) sum(ax int) (*Array[T], error) {
	if ax < 0 || ax >= a.NDim() {
		return nil, &ErrAxisOutOfRange{Axis: ax, Rank: a.NDim()}
	}
	if a.NDim() == 1 {
		return nil, &ErrUnsupportedRank{Rank: 0}
	}

	g, err := a.data.SumAxis(ax)
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		data:    g,
		axes:    slices.Concat(a.axes[:ax], a.axes[ax+1:]),
		names:   slices.Concat(a.names[:ax], a.names[ax+1:]),
		logger:  a.logger,
		metrics: a.metrics,
	}, nil
}
