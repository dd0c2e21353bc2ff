package labgrid_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/labgrid"
	"github.com/hupe1980/labgrid/axis"
	"github.com/hupe1980/labgrid/grid"
)

// Example_builder demonstrates constructing a labelled array with the
// fluent builder.
func Example_builder() {
	arr, err := labgrid.NewBuilder[float64]().
		Axis("station", "ACB", "DSF").
		Axis("im", "PGA", "PGV").
		Axis("rel", "R1", "R2").
		Values(0, 1, 2, 3, 4, 5, 6, 7).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(arr)
	// Output: Array(shape=[2 2 2], axes=[station im rel])
}

// Example_new demonstrates wrapping existing storage with labels.
func Example_new() {
	g, err := grid.FromSlice([]float64{0.31, 0.48, 0.12, 0.27}, 2, 2)
	if err != nil {
		log.Fatal(err)
	}

	arr, err := labgrid.New(g, [][]string{
		{"ACB", "DSF"},
		{"PGA", "PGV"},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(arr.Shape())
	// Output: [2 2]
}

// Example_scalarSelection demonstrates collapsing every axis to a
// single element.
func Example_scalarSelection() {
	arr := buildExampleArray()

	res, err := arr.Sel(axis.Label("ACB"), axis.Label("PGA"), axis.Label("R1"))
	if err != nil {
		log.Fatal(err)
	}

	v, _ := res.AsScalar()
	fmt.Println(v)
	// Output: 0
}

// Example_seriesSelection demonstrates keeping one axis with a
// wildcard.
func Example_seriesSelection() {
	arr := buildExampleArray()

	res, err := arr.Sel(axis.Label("ACB"), axis.Label("PGA"), axis.All())
	if err != nil {
		log.Fatal(err)
	}

	s, _ := res.AsSeries()
	for label, v := range s.All() {
		fmt.Printf("%s=%v\n", label, v)
	}
	// Output:
	// R1=0
	// R2=1
}

// Example_tableSelection demonstrates keeping two axes. The first
// surviving axis labels the rows.
func Example_tableSelection() {
	arr := buildExampleArray()

	res, err := arr.Sel(axis.Label("ACB"), axis.All(), axis.All())
	if err != nil {
		log.Fatal(err)
	}

	tbl, _ := res.AsTable()
	fmt.Println(tbl.RowLabels(), tbl.ColLabels())

	v, _ := tbl.Cell("PGV", "R2")
	fmt.Println(v)
	// Output:
	// [PGA PGV] [R1 R2]
	// 3
}

// Example_query demonstrates name-addressed selection. Axes the query
// does not mention default to wildcards.
func Example_query() {
	arr := buildExampleArray()

	res, err := arr.Query().
		Label("station", "DSF").
		Label("im", "PGV").
		Execute()
	if err != nil {
		log.Fatal(err)
	}

	s, _ := res.AsSeries()
	fmt.Println(s.Values())
	// Output: [6 7]
}

// Example_rearrange demonstrates reordering axes by name.
func Example_rearrange() {
	arr := buildExampleArray()

	out, err := arr.Rearrange("rel", "station", "im")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
	// Output: Array(shape=[2 2 2], axes=[rel station im])
}

// Example_sum demonstrates collapsing an axis by summation.
func Example_sum() {
	arr := buildExampleArray()

	ax, err := arr.AxisIndex("station")
	if err != nil {
		log.Fatal(err)
	}

	total, err := arr.Sum(ax)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(total.AxisNames())
	fmt.Println(total.Grid().Values())
	// Output:
	// [im rel]
	// [4 6 8 10]
}

func buildExampleArray() *labgrid.Array[float64] {
	arr, err := labgrid.NewBuilder[float64]().
		Axis("station", "ACB", "DSF").
		Axis("im", "PGA", "PGV").
		Axis("rel", "R1", "R2").
		Values(0, 1, 2, 3, 4, 5, 6, 7).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	return arr
}
