// Package tabular implements the low-rank result shapes of labelled
// selection: Series for one surviving axis and Table for two.
//
// Both types combine storage from package grid with label lookup from
// package axis, and render themselves as text tables.
package tabular
