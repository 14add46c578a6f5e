package scroll

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorStaysBelowThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var acc Accumulator
	for i := 0; i < 10000; i++ {
		threshold := Threshold(Level(rng.Intn(5) + 1))
		delta := float64(rng.Intn(401) - 200)
		acc.Add(delta, threshold)
		require.Less(t, math.Abs(acc.Value()), threshold, "iteration %d", i)
	}
}

func TestAccumulatorConservesDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var acc Accumulator
	const threshold = 20
	var total, emitted float64
	for i := 0; i < 1000; i++ {
		delta := float64(rng.Intn(121) - 60)
		total += delta
		emitted += float64(acc.Add(delta, threshold)) * threshold
	}
	assert.Equal(t, total, emitted+acc.Value())
}

func TestAccumulatorNegativeExactMultiple(t *testing.T) {
	var acc Accumulator
	steps := acc.Add(-20, 20)
	assert.Equal(t, int64(-1), steps)
	assert.Zero(t, acc.Value())
}

func TestAccumulatorSignSymmetry(t *testing.T) {
	run := []float64{7, 13, 9, 25, 3, 48, 11}
	var pos, neg Accumulator
	for _, d := range run {
		p := pos.Add(d, 10)
		n := neg.Add(-d, 10)
		assert.Equal(t, -p, n)
		assert.Equal(t, -pos.Value(), neg.Value())
	}
}

func TestAccumulatorMultiStep(t *testing.T) {
	var acc Accumulator
	assert.Equal(t, int64(4), acc.Add(47, 10))
	assert.Equal(t, 7.0, acc.Value())
}

func TestAccumulatorSubThreshold(t *testing.T) {
	var acc Accumulator
	assert.Zero(t, acc.Add(7, 20))
	assert.Equal(t, 7.0, acc.Value())
	assert.Zero(t, acc.Add(7, 20))
	assert.Equal(t, 14.0, acc.Value())
	assert.Equal(t, int64(1), acc.Add(7, 20))
	assert.Equal(t, 1.0, acc.Value())
}

func TestAccumulatorDirectionChange(t *testing.T) {
	var acc Accumulator
	assert.Zero(t, acc.Add(15, 20))
	assert.Equal(t, int64(-1), acc.Add(-40, 20))
	assert.Equal(t, -5.0, acc.Value())
}
