package axis

import (
	"fmt"
	"strings"
)

// Kind identifies how a Selector addresses an axis.
type Kind uint8

const (
	// KindInvalid represents the zero-value selector.
	KindInvalid Kind = iota
	// KindLabel selects a single position by label.
	KindLabel
	// KindWildcard keeps the whole axis.
	KindWildcard
	// KindPosition selects a single position directly.
	KindPosition
	// KindSubset keeps a subset of positions, addressed by label.
	KindSubset
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindWildcard:
		return "wildcard"
	case KindPosition:
		return "position"
	case KindSubset:
		return "subset"
	default:
		return "invalid"
	}
}

// Selector addresses one axis of a selection: by label, by raw
// position, by wildcard, or by label subset. The kind tag makes
// resolution explicit; a raw position is never mistaken for a label.
//
// The zero value is invalid; use Label, All, At, or Labels.
type Selector struct {
	Kind   Kind
	label  string
	pos    int
	subset []string
}

// Label selects the position carrying the given label, collapsing the
// axis.
func Label(label string) Selector {
	return Selector{Kind: KindLabel, label: label}
}

// All is the wildcard marker: the axis survives selection with its full
// label vector.
func All() Selector {
	return Selector{Kind: KindWildcard}
}

// At selects a raw position, bypassing label lookup and collapsing the
// axis. The position is bounds-checked by the storage layer, not here.
func At(pos int) Selector {
	return Selector{Kind: KindPosition, pos: pos}
}

// Labels keeps the axis restricted to the given label subset. The
// surviving positions follow axis order, not request order.
func Labels(labels ...string) Selector {
	return Selector{Kind: KindSubset, subset: labels}
}

// AsLabel returns the label if Kind is KindLabel.
func (s Selector) AsLabel() (string, bool) {
	if s.Kind != KindLabel {
		return "", false
	}

	return s.label, true
}

// AsPosition returns the raw position if Kind is KindPosition.
func (s Selector) AsPosition() (int, bool) {
	if s.Kind != KindPosition {
		return 0, false
	}

	return s.pos, true
}

// AsSubset returns the label subset if Kind is KindSubset.
func (s Selector) AsSubset() ([]string, bool) {
	if s.Kind != KindSubset {
		return nil, false
	}

	return s.subset, true
}

// String returns a compact representation for diagnostics.
func (s Selector) String() string {
	switch s.Kind {
	case KindLabel:
		return fmt.Sprintf("label(%s)", s.label)
	case KindWildcard:
		return "*"
	case KindPosition:
		return fmt.Sprintf("at(%d)", s.pos)
	case KindSubset:
		return fmt.Sprintf("labels(%s)", strings.Join(s.subset, ","))
	default:
		return "invalid"
	}
}

// Resolution is the outcome of resolving one Selector against one axis.
type Resolution struct {
	// Pos is the collapsed position. Valid only when Keep is false.
	Pos int
	// Keep reports that the axis survives selection.
	Keep bool
	// Positions holds the surviving positions in ascending axis order
	// when a subset survives; nil means the full axis survives.
	Positions []int
}
