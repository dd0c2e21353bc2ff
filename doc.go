// Package labgrid provides labelled views over N-dimensional numerical arrays.
//
// A labelled array binds one label vocabulary to each axis of a dense
// grid, so elements are addressed by meaningful labels ("ACB", "PGA")
// instead of bare positions, mixed freely with positional and wildcard
// selection. Selection results collapse to the natural shape: a scalar
// when every axis is pinned, a labelled series when one axis survives,
// a labelled table when two survive.
//
// # Quick Start
//
//	arr, _ := labgrid.NewBuilder[float64]().
//	    Axis("station", "ACB", "DSF").
//	    Axis("im", "PGA", "PGV").
//	    Axis("rel", "R1", "R2").
//	    Values(0, 1, 2, 3, 4, 5, 6, 7).
//	    Build()
//
//	// Pin every axis: scalar.
//	res, _ := arr.Sel(axis.Label("ACB"), axis.Label("PGA"), axis.Label("R1"))
//	v, _ := res.AsScalar() // 0
//
//	// Keep two axes: table with rows=im, cols=rel.
//	res, _ = arr.Sel(axis.Label("ACB"), axis.All(), axis.All())
//	tbl, _ := res.AsTable()
//
// # Selectors
//
// Each axis of a selection takes exactly one selector:
//
//	axis.Label("ACB")        // collapse by label
//	axis.At(0)               // collapse by raw position, no label lookup
//	axis.All()               // keep the whole axis
//	axis.Labels("R1", "R2")  // keep a label subset, in axis order
//
// Selectors are tagged values, so a raw position is never mistaken for
// a label and resolution needs no type inspection. All selectors
// resolve before any data is retrieved.
//
// # Name-addressed queries
//
// Axes carry names (axis_0, axis_1, ... by default). Queries address
// axes by name and default unreferenced axes to wildcards:
//
//	res, _ := arr.Query().Label("station", "ACB").Execute()
//
// # Storage
//
// Element storage, positional slicing, transposition, and reductions
// live in package grid; the labelled layer delegates to it and never
// performs arithmetic of its own. Series and table results live in
// package tabular.
//
// # Key Features
//
//   - Tagged selectors: label, raw position, wildcard, label subset
//   - Shaped results: scalar, series, or table by surviving rank
//   - Axis names, rearrangement by name, axis reductions
//   - Strided views without copying; eager, typed errors
//   - Structured logging (slog) and pluggable metrics
package labgrid
