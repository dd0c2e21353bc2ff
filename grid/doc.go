// Package grid implements a dense N-dimensional numerical array with
// row-major storage, strided views, positional slicing, and axis
// reductions.
//
// A Grid deals exclusively in integer positions and knows nothing about
// labels; the labelled layer in the root package delegates all element
// storage and retrieval here.
//
// Slice and Transpose return views that share the backing storage of
// their parent. Take, Clone, Values, and the reductions copy.
package grid
