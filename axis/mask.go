package axis

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mask is a set of axis positions backed by a 32-bit roaring bitmap.
// Insertion deduplicates and iteration is ascending, which matches the
// axis-order semantics of subset selection.
type Mask struct {
	rb *roaring.Bitmap
}

// NewMask creates an empty mask.
func NewMask() *Mask {
	return &Mask{
		rb: roaring.New(),
	}
}

// Add inserts a position into the mask.
func (m *Mask) Add(pos int) {
	m.rb.Add(uint32(pos))
}

// Contains reports whether the position is in the mask.
func (m *Mask) Contains(pos int) bool {
	return m.rb.Contains(uint32(pos))
}

// Len returns the number of positions in the mask.
func (m *Mask) Len() int {
	return int(m.rb.GetCardinality())
}

// IsEmpty reports whether the mask holds no positions.
func (m *Mask) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	return &Mask{
		rb: m.rb.Clone(),
	}
}

// And intersects the mask with another in place.
func (m *Mask) And(other *Mask) {
	m.rb.And(other.rb)
}

// Or unions the mask with another in place.
func (m *Mask) Or(other *Mask) {
	m.rb.Or(other.rb)
}

// Positions returns the positions in ascending order.
func (m *Mask) Positions() []int {
	out := make([]int, 0, m.Len())
	for p := range m.Iterate() {
		out = append(out, p)
	}

	return out
}

// Iterate iterates positions in ascending order.
func (m *Mask) Iterate() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
