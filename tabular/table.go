package tabular

import (
	"fmt"

	"github.com/hupe1980/labgrid/axis"
	"github.com/hupe1980/labgrid/grid"
)

// Table is a two-dimensional labelled view: a rank-2 grid with row and
// column label vocabularies.
type Table[T grid.Number] struct {
	g    *grid.Grid[T]
	rows *axis.Index
	cols *axis.Index
}

// NewTable creates a table over a rank-2 grid. The label vectors must
// match the grid extents and be unique per dimension. The grid is
// retained, so a table over a view reads through to the shared backing.
func NewTable[T grid.Number](g *grid.Grid[T], rowLabels, colLabels []string) (*Table[T], error) {
	if g.Rank() != 2 {
		return nil, ErrTableRank
	}

	shape := g.Shape()
	if len(rowLabels) != shape[0] {
		return nil, fmt.Errorf("rows: %w", &ErrLengthMismatch{Values: shape[0], Labels: len(rowLabels)})
	}
	if len(colLabels) != shape[1] {
		return nil, fmt.Errorf("columns: %w", &ErrLengthMismatch{Values: shape[1], Labels: len(colLabels)})
	}

	rows, err := axis.New(rowLabels)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	cols, err := axis.New(colLabels)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	return &Table[T]{
		g:    g,
		rows: rows,
		cols: cols,
	}, nil
}

// Shape returns the row and column counts.
func (t *Table[T]) Shape() (rows, cols int) {
	shape := t.g.Shape()
	return shape[0], shape[1]
}

// RowLabels returns the ordered row labels. Read-only view.
func (t *Table[T]) RowLabels() []string {
	return t.rows.Labels()
}

// ColLabels returns the ordered column labels. Read-only view.
func (t *Table[T]) ColLabels() []string {
	return t.cols.Labels()
}

// Grid returns the underlying rank-2 grid.
func (t *Table[T]) Grid() *grid.Grid[T] {
	return t.g
}

// Cell returns the value at the given row and column labels.
func (t *Table[T]) Cell(row, col string) (T, error) {
	var zero T
	r, err := t.rows.Position(row)
	if err != nil {
		return zero, fmt.Errorf("row: %w", err)
	}
	c, err := t.cols.Position(col)
	if err != nil {
		return zero, fmt.Errorf("column: %w", err)
	}

	return t.g.At(r, c)
}

// CellAt returns the value at the given row and column positions.
func (t *Table[T]) CellAt(i, j int) (T, error) {
	return t.g.At(i, j)
}

// Row returns one row as a series labelled by the column labels.
func (t *Table[T]) Row(label string) (*Series[T], error) {
	p, err := t.rows.Position(label)
	if err != nil {
		return nil, err
	}
	view, err := t.g.Slice(grid.Index(p), grid.All())
	if err != nil {
		return nil, err
	}

	return NewSeries(view.Values(), t.cols.Labels())
}

// Col returns one column as a series labelled by the row labels.
func (t *Table[T]) Col(label string) (*Series[T], error) {
	p, err := t.cols.Position(label)
	if err != nil {
		return nil, err
	}
	view, err := t.g.Slice(grid.All(), grid.Index(p))
	if err != nil {
		return nil, err
	}

	return NewSeries(view.Values(), t.rows.Labels())
}
