package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("CopiesLabels", func(t *testing.T) {
		labels := []string{"PGA", "PGV", "SA03"}
		ix, err := New(labels)
		require.NoError(t, err)

		labels[0] = "mutated"
		assert.Equal(t, []string{"PGA", "PGV", "SA03"}, ix.Labels())
		assert.Equal(t, 3, ix.Len())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrNoLabels)

		_, err = New([]string{})
		assert.ErrorIs(t, err, ErrNoLabels)
	})

	t.Run("DuplicateLabel", func(t *testing.T) {
		_, err := New([]string{"a", "b", "a"})
		require.Error(t, err)

		var dupErr *ErrDuplicateLabel
		assert.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "a", dupErr.Label)
		assert.Equal(t, 0, dupErr.First)
		assert.Equal(t, 2, dupErr.Dup)
	})
}

func TestPosition(t *testing.T) {
	ix, err := New([]string{"ACB", "DSF"})
	require.NoError(t, err)

	p, err := ix.Position("DSF")
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	assert.True(t, ix.Contains("ACB"))
	assert.False(t, ix.Contains("XXX"))

	_, err = ix.Position("XXX")
	require.Error(t, err)

	var nfErr *ErrLabelNotFound
	assert.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "XXX", nfErr.Label)
}

func TestIndexer(t *testing.T) {
	ix, err := New([]string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, -1}, ix.Indexer([]string{"c", "a", "missing"}))
	assert.Empty(t, ix.Indexer(nil))
}

func TestIndexMask(t *testing.T) {
	ix, err := New([]string{"a", "b", "c", "d"})
	require.NoError(t, err)

	t.Run("AscendingAxisOrder", func(t *testing.T) {
		m, err := ix.Mask("d", "a", "c")
		require.NoError(t, err)

		assert.Equal(t, []int{0, 2, 3}, m.Positions())
		assert.Equal(t, 3, m.Len())
	})

	t.Run("UnknownLabel", func(t *testing.T) {
		_, err := ix.Mask("a", "x")
		require.Error(t, err)

		var nfErr *ErrLabelNotFound
		assert.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "x", nfErr.Label)
	})

	t.Run("DuplicateRequest", func(t *testing.T) {
		_, err := ix.Mask("b", "c", "b")
		require.Error(t, err)

		var dupErr *ErrDuplicateLabel
		assert.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "b", dupErr.Label)
		assert.Equal(t, 0, dupErr.First)
		assert.Equal(t, 2, dupErr.Dup)
	})
}

func TestResolve(t *testing.T) {
	ix, err := New([]string{"R1", "R2", "R3"})
	require.NoError(t, err)

	t.Run("Wildcard", func(t *testing.T) {
		res, err := ix.Resolve(All())
		require.NoError(t, err)

		assert.True(t, res.Keep)
		assert.Nil(t, res.Positions)
	})

	t.Run("Label", func(t *testing.T) {
		res, err := ix.Resolve(Label("R2"))
		require.NoError(t, err)

		assert.False(t, res.Keep)
		assert.Equal(t, 1, res.Pos)
	})

	t.Run("LabelNotFound", func(t *testing.T) {
		_, err := ix.Resolve(Label("R9"))
		require.Error(t, err)

		var nfErr *ErrLabelNotFound
		assert.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "R9", nfErr.Label)
	})

	t.Run("PositionPassesThrough", func(t *testing.T) {
		res, err := ix.Resolve(At(2))
		require.NoError(t, err)

		assert.False(t, res.Keep)
		assert.Equal(t, 2, res.Pos)

		// Raw positions are not bounds-checked here.
		res, err = ix.Resolve(At(99))
		require.NoError(t, err)
		assert.Equal(t, 99, res.Pos)
	})

	t.Run("Subset", func(t *testing.T) {
		res, err := ix.Resolve(Labels("R3", "R1"))
		require.NoError(t, err)

		assert.True(t, res.Keep)
		assert.Equal(t, []int{0, 2}, res.Positions)
	})

	t.Run("EmptySubset", func(t *testing.T) {
		_, err := ix.Resolve(Labels())
		assert.ErrorIs(t, err, ErrNoLabels)
	})

	t.Run("ZeroSelector", func(t *testing.T) {
		_, err := ix.Resolve(Selector{})
		assert.ErrorIs(t, err, ErrInvalidSelector)
	})
}
