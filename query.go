package labgrid

import (
	"github.com/hupe1980/labgrid/axis"
	"github.com/hupe1980/labgrid/grid"
)

// Query creates a fluent, name-addressed selection builder.
//
// Axes not referenced by the query default to wildcards, so a query
// only has to name the axes it constrains:
//
//	res, err := arr.Query().
//	    Label("station", "ACB").
//	    Labels("im", "PGA", "PGV").
//	    Execute()
func (a *Array[T]) Query() *QueryBuilder[T] {
	return &QueryBuilder[T]{
		arr: a,
	}
}

// QueryBuilder accumulates per-axis selectors addressed by axis name
// and executes them as a selection.
type QueryBuilder[T grid.Number] struct {
	arr  *Array[T]
	sels []namedSelector
}

type namedSelector struct {
	name string
	sel  axis.Selector
}

// Label collapses the named axis to the position carrying the label.
func (qb *QueryBuilder[T]) Label(axisName, label string) *QueryBuilder[T] {
	qb.sels = append(qb.sels, namedSelector{name: axisName, sel: axis.Label(label)})
	return qb
}

// At collapses the named axis to a raw position.
func (qb *QueryBuilder[T]) At(axisName string, pos int) *QueryBuilder[T] {
	qb.sels = append(qb.sels, namedSelector{name: axisName, sel: axis.At(pos)})
	return qb
}

// Labels keeps the named axis restricted to the given label subset.
func (qb *QueryBuilder[T]) Labels(axisName string, labels ...string) *QueryBuilder[T] {
	qb.sels = append(qb.sels, namedSelector{name: axisName, sel: axis.Labels(labels...)})
	return qb
}

// All keeps the named axis untouched. Unreferenced axes are kept
// anyway; All exists to make that explicit where it aids readability.
func (qb *QueryBuilder[T]) All(axisName string) *QueryBuilder[T] {
	qb.sels = append(qb.sels, namedSelector{name: axisName, sel: axis.All()})
	return qb
}

// Execute assembles one selector per axis and runs the selection.
// Referencing an unknown axis name or the same axis twice is an error.
func (qb *QueryBuilder[T]) Execute() (*Result[T], error) {
	sels := make([]axis.Selector, qb.arr.NDim())
	for i := range sels {
		sels[i] = axis.All()
	}

	seen := make(map[string]struct{}, len(qb.sels))
	for _, ns := range qb.sels {
		ax, err := qb.arr.AxisIndex(ns.name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[ns.name]; dup {
			return nil, &ErrDuplicateAxisName{Name: ns.name}
		}
		seen[ns.name] = struct{}{}
		sels[ax] = ns.sel
	}

	return qb.arr.Sel(sels...)
}

// MustExecute runs the query, panicking on error.
// Use this only in tests or when you're certain the query is valid.
func (qb *QueryBuilder[T]) MustExecute() *Result[T] {
	res, err := qb.Execute()
	if err != nil {
		panic(err)
	}

	return res
}
