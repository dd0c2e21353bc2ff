package axis

import "slices"

// Index is the label vocabulary of one array axis: an ordered sequence
// of unique labels with constant-time label-to-position lookup.
//
// Position i always corresponds to Labels()[i]. An Index is immutable
// after construction.
type Index struct {
	labels []string
	pos    map[string]int
}

// New creates an Index from an ordered label sequence. The sequence
// must be non-empty and free of duplicates; the labels are copied.
func New(labels []string) (*Index, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}

	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		if first, ok := pos[l]; ok {
			return nil, &ErrDuplicateLabel{Label: l, First: first, Dup: i}
		}
		pos[l] = i
	}

	return &Index{
		labels: slices.Clone(labels),
		pos:    pos,
	}, nil
}

// Len returns the number of labels.
func (ix *Index) Len() int {
	return len(ix.labels)
}

// Labels returns the ordered label vector. The slice is a read-only
// view; callers must not modify it.
func (ix *Index) Labels() []string {
	return ix.labels
}

// Contains reports whether the label is part of the vocabulary.
func (ix *Index) Contains(label string) bool {
	_, ok := ix.pos[label]
	return ok
}

// Position returns the axis position of the label.
func (ix *Index) Position(label string) (int, error) {
	p, ok := ix.pos[label]
	if !ok {
		return 0, &ErrLabelNotFound{Label: label}
	}

	return p, nil
}

// Indexer returns the position of each requested label, with -1 for
// labels that are not part of the vocabulary.
func (ix *Index) Indexer(labels []string) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		p, ok := ix.pos[l]
		if !ok {
			p = -1
		}
		out[i] = p
	}

	return out
}

// Mask resolves a label subset to its position set. Every label must be
// part of the vocabulary and may be requested at most once.
func (ix *Index) Mask(labels ...string) (*Mask, error) {
	m := NewMask()
	seen := make(map[string]int, len(labels))
	for i, l := range labels {
		if first, ok := seen[l]; ok {
			return nil, &ErrDuplicateLabel{Label: l, First: first, Dup: i}
		}
		seen[l] = i

		p, err := ix.Position(l)
		if err != nil {
			return nil, err
		}
		m.Add(p)
	}

	return m, nil
}

// Resolve maps a selector onto the axis.
//
// Wildcards keep the axis untouched. Raw positions pass through without
// bounds validation; the storage layer validates on access. Labels are
// looked up. Subsets resolve to their position set in ascending axis
// order, keeping the axis.
func (ix *Index) Resolve(sel Selector) (Resolution, error) {
	switch sel.Kind {
	case KindWildcard:
		return Resolution{Keep: true}, nil
	case KindPosition:
		return Resolution{Pos: sel.pos}, nil
	case KindLabel:
		p, err := ix.Position(sel.label)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Pos: p}, nil
	case KindSubset:
		if len(sel.subset) == 0 {
			return Resolution{}, ErrNoLabels
		}
		m, err := ix.Mask(sel.subset...)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Keep: true, Positions: m.Positions()}, nil
	default:
		return Resolution{}, ErrInvalidSelector
	}
}
