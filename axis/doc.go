// Package axis implements per-axis label vocabularies for labelled
// arrays: an ordered, unique label vector with constant-time
// label-to-position lookup, plus the selector variant used to address
// axes by label, position, wildcard, or label subset.
//
// An Index is immutable after construction. Selection never mutates
// state, so a single Index can back any number of arrays.
package axis
