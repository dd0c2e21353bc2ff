package tabular

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// String renders the series as a two-column text table.
func (s *Series[T]) String() string {
	return s.writer().Render()
}

// RenderTo writes the rendered series to w.
func (s *Series[T]) RenderTo(w io.Writer) {
	tw := s.writer()
	tw.SetOutputMirror(w)
	tw.Render()
}

func (s *Series[T]) writer() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"label", "value"})
	for l, v := range s.All() {
		tw.AppendRow(table.Row{l, v})
	}

	return tw
}

// String renders the table with row labels in the first column and
// column labels in the header.
func (t *Table[T]) String() string {
	return t.writer().Render()
}

// RenderTo writes the rendered table to w.
func (t *Table[T]) RenderTo(w io.Writer) {
	tw := t.writer()
	tw.SetOutputMirror(w)
	tw.Render()
}

func (t *Table[T]) writer() table.Writer {
	_, ncols := t.Shape()
	vals := t.g.Values()

	header := make(table.Row, 0, ncols+1)
	header = append(header, "")
	for _, c := range t.cols.Labels() {
		header = append(header, c)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	for i, label := range t.rows.Labels() {
		row := make(table.Row, 0, ncols+1)
		row = append(row, label)
		for j := 0; j < ncols; j++ {
			row = append(row, vals[i*ncols+j])
		}
		tw.AppendRow(row)
	}

	return tw
}
