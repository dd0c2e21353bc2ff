package axis

import (
	"errors"
	"fmt"
	"testing"
)

// FuzzResolveLabel tests label resolution against a generated vocabulary.
// Resolve must agree with Position and must never panic.
func FuzzResolveLabel(f *testing.F) {
	// Seed with some typical patterns
	f.Add(uint8(3), "s1")
	f.Add(uint8(1), "s0")
	f.Add(uint8(10), "missing")
	f.Add(uint8(64), "")

	f.Fuzz(func(t *testing.T, n uint8, query string) {
		if n == 0 || n > 64 {
			t.Skip()
		}

		labels := make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("s%d", i)
		}

		ix, err := New(labels)
		if err != nil {
			t.Fatalf("new index failed: %v", err)
		}

		res, err := ix.Resolve(Label(query))
		p, perr := ix.Position(query)

		if (err == nil) != (perr == nil) {
			t.Fatalf("resolve and position disagree for %q: %v vs %v", query, err, perr)
		}

		if err != nil {
			var nfErr *ErrLabelNotFound
			if !errors.As(err, &nfErr) {
				t.Fatalf("unexpected error type: %v", err)
			}
			if ix.Contains(query) {
				t.Fatalf("label %q reported missing but Contains is true", query)
			}
			return
		}

		if res.Keep {
			t.Fatal("label resolution must collapse the axis")
		}
		if res.Pos != p {
			t.Errorf("position mismatch: got %d, want %d", res.Pos, p)
		}
		if labels[res.Pos] != query {
			t.Errorf("labels[%d] = %q, want %q", res.Pos, labels[res.Pos], query)
		}
	})
}

// FuzzMaskPositions tests that mask insertion deduplicates and that
// Positions always comes back in ascending order.
func FuzzMaskPositions(f *testing.F) {
	f.Add([]byte{3, 1, 2})
	f.Add([]byte{0})
	f.Add([]byte{5, 5, 5})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) > 1024 {
			t.Skip()
		}

		m := NewMask()
		unique := make(map[int]struct{}, len(raw))
		for _, b := range raw {
			m.Add(int(b))
			unique[int(b)] = struct{}{}
		}

		if m.Len() != len(unique) {
			t.Fatalf("length mismatch: got %d, want %d", m.Len(), len(unique))
		}

		ps := m.Positions()
		for i, p := range ps {
			if _, ok := unique[p]; !ok {
				t.Errorf("unexpected position %d", p)
			}
			if i > 0 && ps[i-1] >= p {
				t.Errorf("positions not ascending: %v", ps)
			}
		}
	})
}
