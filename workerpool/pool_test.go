package workerpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2ic/workerpool"
)

// counter is a trivial Merger: it sums the items it was handed.
type counter struct{ sum int }

func (c *counter) Merge(other *counter) { c.sum += other.sum }

func TestRun_EveryItemProcessedExactlyOnce(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i + 1
	}

	var scratchesMade int32
	result := workerpool.Run(
		items,
		8,
		func() int { atomic.AddInt32(&scratchesMade, 1); return 0 }, // scratch unused here
		func() *counter { return &counter{} },
		func(item int, _ int, partial *counter) { partial.sum += item },
	)

	expected := 1000 * 1001 / 2
	assert.Equal(t, expected, result.sum)
	assert.Equal(t, int32(8), scratchesMade, "exactly one scratch per worker")
}

func TestRun_CapsWorkersAtItemCount(t *testing.T) {
	items := []int{10, 20, 30}
	result := workerpool.Run(
		items,
		64, // far more workers than items
		func() struct{} { return struct{}{} },
		func() *counter { return &counter{} },
		func(item int, _ struct{}, partial *counter) { partial.sum += item },
	)
	assert.Equal(t, 60, result.sum)
}

func TestRun_EmptyItemsYieldsZeroPartial(t *testing.T) {
	var items []int
	result := workerpool.Run(
		items,
		4,
		func() struct{} { return struct{}{} },
		func() *counter { return &counter{} },
		func(item int, _ struct{}, partial *counter) { partial.sum += item },
	)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.sum)
}

func TestRun_DefaultsWorkerCountWhenNonPositive(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	result := workerpool.Run(
		items,
		0,
		func() struct{} { return struct{}{} },
		func() *counter { return &counter{} },
		func(item int, _ struct{}, partial *counter) { partial.sum += item },
	)
	assert.Equal(t, 15, result.sum)
}
