package sampler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2ic/sampler"
)

func TestStatic_RejectsEmptyAndNonIncreasing(t *testing.T) {
	_, err := sampler.NewStatic(nil)
	assert.ErrorIs(t, err, sampler.ErrEmptySchedule)

	_, err = sampler.NewStatic([]int{10, 10})
	assert.ErrorIs(t, err, sampler.ErrNonIncreasingSchedule)

	_, err = sampler.NewStatic([]int{10, 5})
	assert.ErrorIs(t, err, sampler.ErrNonIncreasingSchedule)
}

func TestStatic_YieldsThresholdsInOrderThenStops(t *testing.T) {
	s, err := sampler.NewStatic([]int{100, 200, 500})
	require.NoError(t, err)

	var got []int
	for {
		total, ok := s.NextTotal()
		if !ok {
			break
		}
		got = append(got, total)
	}
	assert.Equal(t, []int{100, 200, 500}, got)
	assert.Equal(t, 500, s.Final())
}

func TestDynamic_StopsEarlyWhenThresholdCleared(t *testing.T) {
	d, err := sampler.NewDynamic(sampler.DynamicParams{
		Alpha: 1, Beta: 1, Theta0: 1, V: 64, K: 3, Epsilon: 0.5, Ell: 1,
	})
	require.NoError(t, err)

	total, ok := d.NextTotal()
	require.True(t, ok)
	assert.Equal(t, 2, total) // theta0=1 doubled once

	// Report a large average gain; it should clear the i=1 threshold
	// (1+sqrt2*eps)/2 and move the controller to its final step.
	d.Observe(10.0)

	final, ok := d.NextTotal()
	require.True(t, ok)
	assert.Greater(t, final, 0)

	_, ok = d.NextTotal()
	assert.False(t, ok, "the schedule has exactly one final step")
}

func TestDynamic_FallsBackAfterExhaustingDoublingBudget(t *testing.T) {
	d, err := sampler.NewDynamic(sampler.DynamicParams{
		Alpha: 1, Beta: 1, Theta0: 1, V: 8, K: 1, Epsilon: 0.5, Ell: 1,
	})
	require.NoError(t, err)

	maxIter := int(math.Log2(8)) // 3
	for i := 0; i < maxIter; i++ {
		total, ok := d.NextTotal()
		require.True(t, ok)
		assert.Greater(t, total, 0)
		d.Observe(0.0) // never clears the threshold
	}

	final, ok := d.NextTotal()
	require.True(t, ok, "exhausting the doubling budget still yields one final step")
	assert.GreaterOrEqual(t, final, 0)

	_, ok = d.NextTotal()
	assert.False(t, ok)
}

func TestIMMAlphaBeta_PositiveAndClampsOutOfRangeK(t *testing.T) {
	alpha, beta := sampler.IMMAlphaBeta(1000, 10, 1.0)
	assert.Greater(t, alpha, 0.0)
	assert.Greater(t, beta, 0.0)

	// k > v and k < 0 must not panic (math.Lgamma(negative-int) blows
	// up the log-binomial term otherwise) and should clamp in range.
	alphaHigh, betaHigh := sampler.IMMAlphaBeta(100, 500, 1.0)
	alphaFull, betaFull := sampler.IMMAlphaBeta(100, 100, 1.0)
	assert.Equal(t, alphaFull, alphaHigh)
	assert.Equal(t, betaFull, betaHigh)

	assert.NotPanics(t, func() { sampler.IMMAlphaBeta(100, -5, 1.0) })
}

func TestDynamic_RespectsSampleCap(t *testing.T) {
	d, err := sampler.NewDynamic(sampler.DynamicParams{
		Alpha: 1, Beta: 1, Theta0: 1, V: 1 << 20, K: 1, Epsilon: 0.1, Ell: 1, Cap: 50,
	})
	require.NoError(t, err)

	for {
		total, ok := d.NextTotal()
		if !ok {
			break
		}
		assert.LessOrEqual(t, total, 50)
		d.Observe(0.0)
	}
}
