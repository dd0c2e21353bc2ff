package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillUniform(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float64, 32)
	rng.FillUniform(v)

	assert.Less(t, v[0], 1.0)
	assert.GreaterOrEqual(t, v[1], 0.0)
}

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float64, 32)
	rng.FillUniformRange(v, -1, 1)

	for _, val := range v {
		assert.Less(t, val, 1.0)
		assert.GreaterOrEqual(t, val, -1.0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := make([]float64, 10)
	rng.FillUniform(v1)

	rng.Reset()
	v2 := make([]float64, 10)
	rng.FillUniform(v2)

	assert.Equal(t, v1, v2)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"s0", "s1", "s2"}, Labels("s", 3))
	assert.Empty(t, Labels("s", 0))
}

func TestSequential(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, Sequential(4))
	assert.Equal(t, []int{0, 1, 2}, SequentialInts(3))
}
