package primm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2ic/cstate"
	"github.com/katalvlaran/c2ic/primm"
	"github.com/katalvlaran/c2ic/prr"
)

func testConfig(t *testing.T) cstate.Config {
	t.Helper()
	pri, err := cstate.NewPriority([4]cstate.NodeState{cstate.CaPlus, cstate.CrMinus, cstate.Cr, cstate.Ca})
	require.NoError(t, err)
	gain, err := cstate.NewGainFunc(0.5)
	require.NoError(t, err)
	return cstate.Config{Priority: pri, Gain: gain, Class: cstate.NonMonotone}
}

func TestAdd_DropsSketchWithNoPositiveGain(t *testing.T) {
	cfg := testConfig(t)
	seeds, err := cstate.NewSeedSet(4, []int{0}, []int{1})
	require.NoError(t, err)
	c := primm.New(4, seeds, cfg)

	// centerState already CaPlus: nothing can have strictly higher gain.
	c.Add(&prr.Sketch{Center: 3, CenterState: cstate.CaPlus, Contrib: []prr.Contrib{
		{Node: 2, StateTo: cstate.CaPlus},
		{Node: 0, StateTo: cstate.CaPlus},
	}})

	assert.Equal(t, 0, c.SketchCount())
	assert.Equal(t, float64(0), c.TotalGain(2))
}

func TestAdd_RecordsPositiveGainNodes(t *testing.T) {
	cfg := testConfig(t)
	seeds, err := cstate.NewSeedSet(4, []int{0}, []int{1})
	require.NoError(t, err)
	c := primm.New(4, seeds, cfg)

	// centerState None (gain 0); boosting node 2 reaches CaPlus (gain 0.5).
	c.Add(&prr.Sketch{Center: 3, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 2, StateTo: cstate.CaPlus},
		{Node: 3, StateTo: cstate.None}, // zero delta: omitted
	}})

	require.Equal(t, 1, c.SketchCount())
	assert.InDelta(t, 0.5, c.TotalGain(2), 1e-9)
	assert.Equal(t, float64(0), c.TotalGain(3))
}

// Scenario B: seed exclusion — no element of Sa or Sr ever appears in
// a select() result, regardless of recorded gain.
func TestSelect_SeedsNeverChosen(t *testing.T) {
	cfg := testConfig(t)
	seeds, err := cstate.NewSeedSet(4, []int{0}, []int{1})
	require.NoError(t, err)
	c := primm.New(4, seeds, cfg)

	// node 0 (a seed) would otherwise have the largest marginal.
	c.Add(&prr.Sketch{Center: 3, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 0, StateTo: cstate.CaPlus},
		{Node: 2, StateTo: cstate.Ca},
	}})

	picked, _ := c.Select(2)
	for _, v := range picked {
		assert.NotEqual(t, 0, v)
		assert.NotEqual(t, 1, v)
	}
	assert.Contains(t, picked, 2)
}

func TestSelect_PicksHighestMarginalFirst(t *testing.T) {
	cfg := testConfig(t)
	seeds, err := cstate.NewSeedSet(5, nil, nil)
	require.NoError(t, err)
	c := primm.New(5, seeds, cfg)

	c.Add(&prr.Sketch{Center: 4, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 2, StateTo: cstate.CaPlus}, // gain 0.5
	}})
	c.Add(&prr.Sketch{Center: 4, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 3, StateTo: cstate.Ca}, // gain 0.5, same magnitude but separate sketch
		{Node: 2, StateTo: cstate.CaPlus},
	}})

	picked, marginals := c.Select(1)
	require.Len(t, picked, 1)
	assert.Equal(t, 2, picked[0], "node 2 accumulates gain across both sketches")
	assert.InDelta(t, 1.0, marginals[0], 1e-9)
}

// Scenario F: rollback — select() must leave the collection bitwise
// equivalent to its pre-call state.
func TestSelect_RollbackRestoresCollection(t *testing.T) {
	cfg := testConfig(t)
	seeds, err := cstate.NewSeedSet(6, nil, nil)
	require.NoError(t, err)
	c := primm.New(6, seeds, cfg)

	c.Add(&prr.Sketch{Center: 5, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 1, StateTo: cstate.Ca},
		{Node: 2, StateTo: cstate.CaPlus}, // higher priority than node 1's Ca
	}})

	before := make([]float64, 6)
	for v := 0; v < 6; v++ {
		before[v] = c.TotalGain(v)
	}

	first, _ := c.Select(2)

	after := make([]float64, 6)
	for v := 0; v < 6; v++ {
		after[v] = c.TotalGain(v)
	}
	assert.Equal(t, before, after)

	second, _ := c.Select(2)
	assert.Equal(t, first, second, "repeated select on an untouched collection is idempotent")
}

func TestMerge_ShiftsSketchIdsAndSumsGain(t *testing.T) {
	cfg := testConfig(t)
	seedsA, err := cstate.NewSeedSet(4, nil, nil)
	require.NoError(t, err)
	a := primm.New(4, seedsA, cfg)
	a.Add(&prr.Sketch{Center: 3, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 1, StateTo: cstate.Ca},
	}})

	seedsB, err := cstate.NewSeedSet(4, nil, nil)
	require.NoError(t, err)
	b := primm.New(4, seedsB, cfg)
	b.Add(&prr.Sketch{Center: 3, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 1, StateTo: cstate.CaPlus},
	}})

	a.Merge(b)
	assert.Equal(t, 2, a.SketchCount())
	assert.InDelta(t, 0.5+0.5, a.TotalGain(1), 1e-9)
}

func TestFootprint_NonZeroAfterAdd(t *testing.T) {
	cfg := testConfig(t)
	seeds, err := cstate.NewSeedSet(3, nil, nil)
	require.NoError(t, err)
	c := primm.New(3, seeds, cfg)
	c.Add(&prr.Sketch{Center: 2, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 1, StateTo: cstate.Ca},
	}})
	assert.Greater(t, c.Footprint(), uint64(0))
}

func TestCheckInvariants_HoldsAfterAddsMergesAndSelects(t *testing.T) {
	cfg := testConfig(t)
	seeds, err := cstate.NewSeedSet(5, []int{0}, []int{1})
	require.NoError(t, err)
	c := primm.New(5, seeds, cfg)

	c.Add(&prr.Sketch{Center: 4, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 2, StateTo: cstate.CaPlus},
		{Node: 3, StateTo: cstate.Ca},
		{Node: 0, StateTo: cstate.CaPlus}, // seed: dropped from totalGain by construction
	}})
	require.NoError(t, c.CheckInvariants())

	other := primm.New(5, seeds, cfg)
	other.Add(&prr.Sketch{Center: 4, CenterState: cstate.None, Contrib: []prr.Contrib{
		{Node: 3, StateTo: cstate.CaPlus},
	}})
	c.Merge(other)
	require.NoError(t, c.CheckInvariants())

	_, _ = c.Select(2)
	assert.NoError(t, c.CheckInvariants(), "Select's rollback must leave invariants intact")
}

func TestNew_SeedTotalGainIsNegativeInfinity(t *testing.T) {
	cfg := testConfig(t)
	seeds, err := cstate.NewSeedSet(3, []int{0}, []int{1})
	require.NoError(t, err)
	c := primm.New(3, seeds, cfg)
	assert.True(t, math.IsInf(c.TotalGain(0), -1))
	assert.True(t, math.IsInf(c.TotalGain(1), -1))
	assert.Equal(t, float64(0), c.TotalGain(2))
}
