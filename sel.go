package labgrid

import (
	"fmt"
	"time"

	"github.com/hupe1980/labgrid/axis"
	"github.com/hupe1980/labgrid/grid"
	"github.com/hupe1980/labgrid/tabular"
)

// ResultKind identifies the shape of a selection result.
type ResultKind uint8

const (
	// ResultInvalid represents the zero-value result.
	ResultInvalid ResultKind = iota
	// ResultScalar is a single element: every axis was collapsed.
	ResultScalar
	// ResultSeries is a labelled sequence: one axis survived.
	ResultSeries
	// ResultTable is a labelled table: two axes survived.
	ResultTable
)

// String returns the kind name.
func (k ResultKind) String() string {
	switch k {
	case ResultScalar:
		return "scalar"
	case ResultSeries:
		return "series"
	case ResultTable:
		return "table"
	default:
		return "invalid"
	}
}

// Result is the shaped outcome of a selection. The kind tag states
// which representation is populated; consumers switch on it rather
// than inspecting types.
type Result[T grid.Number] struct {
	Kind   ResultKind
	scalar T
	series *tabular.Series[T]
	table  *tabular.Table[T]
}

// AsScalar returns the element if Kind is ResultScalar.
func (r *Result[T]) AsScalar() (T, bool) {
	if r.Kind != ResultScalar {
		var zero T
		return zero, false
	}

	return r.scalar, true
}

// AsSeries returns the series if Kind is ResultSeries.
func (r *Result[T]) AsSeries() (*tabular.Series[T], bool) {
	if r.Kind != ResultSeries {
		return nil, false
	}

	return r.series, true
}

// AsTable returns the table if Kind is ResultTable.
func (r *Result[T]) AsTable() (*tabular.Table[T], bool) {
	if r.Kind != ResultTable {
		return nil, false
	}

	return r.table, true
}

// String renders the result according to its kind.
func (r *Result[T]) String() string {
	switch r.Kind {
	case ResultScalar:
		return fmt.Sprintf("%v", r.scalar)
	case ResultSeries:
		return r.series.String()
	case ResultTable:
		return r.table.String()
	default:
		return "invalid"
	}
}

// Sel selects by label, with exactly one selector per axis.
//
// Wildcard and subset axes survive; label and raw-position axes
// collapse. The result shape follows the number of surviving axes:
// none yields a scalar, one a series labelled by the surviving axis,
// two a table with the first surviving axis as rows and the second as
// columns. More than two surviving axes is an error.
//
// All selectors are resolved before any data is retrieved, so a failed
// selection never returns a partial result.
//
// Example:
//
//	res, err := arr.Sel(axis.Label("ACB"), axis.All(), axis.All())
//	if tbl, ok := res.AsTable(); ok {
//	    v, _ := tbl.Cell("PGA", "R1")
//	    ...
//	}
func (a *Array[T]) Sel(sels ...axis.Selector) (*Result[T], error) {
	start := time.Now()

	res, kept, err := a.sel(sels)

	a.metrics.RecordSelect(kept, time.Since(start), err)
	a.logger.LogSelect(kept, err)

	if err != nil {
		return nil, err
	}

	return res, nil
}

func (a *Array[T]) sel(sels []axis.Selector) (*Result[T], int, error) {
	if len(sels) != a.NDim() {
		return nil, 0, &ErrSelectorCountMismatch{Expected: a.NDim(), Actual: len(sels)}
	}

	// Resolve every selector first; retrieval happens only when all
	// axes resolved.
	resolutions := make([]axis.Resolution, len(sels))
	var kept [][]string
	for i, sel := range sels {
		res, err := a.axes[i].Resolve(sel)
		if err != nil {
			return nil, 0, translateAxisError(i, err)
		}
		resolutions[i] = res

		if !res.Keep {
			continue
		}
		labels := a.axes[i].Labels()
		if res.Positions != nil {
			subset := make([]string, len(res.Positions))
			for j, p := range res.Positions {
				subset[j] = labels[p]
			}
			labels = subset
		}
		kept = append(kept, labels)
	}

	if len(kept) > 2 {
		return nil, len(kept), &ErrUnsupportedRank{Rank: len(kept)}
	}

	// Subset axes gather first, preserving rank, so the collapse pass
	// below sees stable axis numbers.
	data := a.data
	for i, res := range resolutions {
		if res.Positions == nil {
			continue
		}
		var err error
		data, err = data.Take(i, res.Positions)
		if err != nil {
			return nil, len(kept), err
		}
	}

	gsels := make([]grid.Sel, len(resolutions))
	for i, res := range resolutions {
		if res.Keep {
			gsels[i] = grid.All()
		} else {
			gsels[i] = grid.Index(res.Pos)
		}
	}
	view, err := data.Slice(gsels...)
	if err != nil {
		return nil, len(kept), err
	}

	switch len(kept) {
	case 0:
		v, err := view.Item()
		if err != nil {
			return nil, 0, err
		}
		return &Result[T]{Kind: ResultScalar, scalar: v}, 0, nil
	case 1:
		series, err := tabular.NewSeries(view.Values(), kept[0])
		if err != nil {
			return nil, 1, err
		}
		return &Result[T]{Kind: ResultSeries, series: series}, 1, nil
	default:
		tbl, err := tabular.NewTable(view, kept[0], kept[1])
		if err != nil {
			return nil, 2, err
		}
		return &Result[T]{Kind: ResultTable, table: tbl}, 2, nil
	}
}
