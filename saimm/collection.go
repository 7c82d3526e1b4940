package saimm

import (
	"math/rand"
	"sort"
	"unsafe"

	"github.com/katalvlaran/c2ic/cstate"
)

// GainBoost is one accumulated (boost node, total gain) record against
// a fixed center, kept sorted by Boost for binary-search accumulation.
type GainBoost struct {
	Boost int
	Total float64
}

// CenterGain is one (center, average gain) record in a boost node's
// derived gainsByBoost view.
type CenterGain struct {
	Center  int
	AvgGain float64
}

// Mode selects the selection strategy Select runs.
type Mode int

const (
	// Greedy always picks the single best-marginal candidate.
	Greedy Mode = iota
	// RandomGreedy picks uniformly among the top min(k, |candidates|)
	// candidates by marginal, giving the 1/e non-monotone guarantee.
	RandomGreedy
)

// Collection is the SA-IMM store: per-center gain-to-boost tables, a
// lazily-rebuilt per-boost inverse filtered by a threshold, and the
// sample counts needed to average them.
type Collection struct {
	n     int
	tau   float64
	seeds *cstate.SeedSet

	gainsToCenter [][]GainBoost // per center v, sorted by Boost
	sampleCount   []int         // per center v

	gainsByBoost [][]CenterGain // per boost s; rebuilt lazily
	dirty        bool
}

// New returns an empty Collection over n nodes with threshold tau.
func New(n int, tau float64, seeds *cstate.SeedSet) *Collection {
	return &Collection{
		n:             n,
		tau:           tau,
		seeds:         seeds,
		gainsToCenter: make([][]GainBoost, n),
		sampleCount:   make([]int, n),
		gainsByBoost:  make([][]CenterGain, n),
	}
}

// Add folds nSamples single-source samples rooted at center v into the
// collection; perBoostTotals[s] is the summed gain the samples recorded
// for boosting s. Entries with a non-positive total are skipped to save
// memory.
func (c *Collection) Add(center int, nSamples int, perBoostTotals []float64) {
	for s, total := range perBoostTotals {
		if total <= 0 {
			continue
		}
		c.accumulate(center, s, total)
	}
	c.sampleCount[center] += nSamples
	c.dirty = true
}

// accumulate folds one (boost, total) record into center v's sorted
// gainsToCenter row, by binary search.
func (c *Collection) accumulate(center, boost int, total float64) {
	row := c.gainsToCenter[center]
	i := sort.Search(len(row), func(i int) bool { return row[i].Boost >= boost })
	if i < len(row) && row[i].Boost == boost {
		row[i].Total += total
	} else {
		row = append(row, GainBoost{})
		copy(row[i+1:], row[i:])
		row[i] = GainBoost{Boost: boost, Total: total}
	}
	c.gainsToCenter[center] = row
}

// Merge folds other's per-center records into c, center by center, and
// sums sampleCount. Satisfies workerpool.Merger so per-worker partial
// collections can be combined after a sampling round.
func (c *Collection) Merge(other *Collection) {
	for v, row := range other.gainsToCenter {
		for _, gb := range row {
			c.accumulate(v, gb.Boost, gb.Total)
		}
		c.sampleCount[v] += other.sampleCount[v]
	}
	c.dirty = true
}

// buildGainsByBoost rebuilds the per-boost inverse view in one pass
// over every accumulated (center, boost, total) record.
func (c *Collection) buildGainsByBoost() {
	for s := range c.gainsByBoost {
		c.gainsByBoost[s] = c.gainsByBoost[s][:0]
	}
	for v, row := range c.gainsToCenter {
		count := c.sampleCount[v]
		if count == 0 {
			continue
		}
		for _, gb := range row {
			avg := gb.Total / float64(count)
			if avg >= c.tau {
				c.gainsByBoost[gb.Boost] = append(c.gainsByBoost[gb.Boost], CenterGain{Center: v, AvgGain: avg})
			}
		}
	}
	c.dirty = false
}

// GainsByBoost returns boost node s's filtered (center, avgGain) view,
// rebuilding the derived table first if any Add has happened since.
func (c *Collection) GainsByBoost(s int) []CenterGain {
	if c.dirty {
		c.buildGainsByBoost()
	}
	return c.gainsByBoost[s]
}

// Select runs k rounds of greedy or random-greedy selection and returns
// the chosen boost nodes in pick order with each one's marginal at pick
// time. rng is only consulted in RandomGreedy mode and must be a
// goroutine-private source.
func (c *Collection) Select(k int, mode Mode, rng *rand.Rand) (picked []int, marginals []float64) {
	if c.dirty {
		c.buildGainsByBoost()
	}

	maxGainTo := make([]float64, c.n) // initially 0, indexed by center
	excluded := make([]bool, c.n)
	for _, v := range c.seeds.Sa() {
		excluded[v] = true
	}
	for _, v := range c.seeds.Sr() {
		excluded[v] = true
	}

	type candidate struct {
		boost    int
		marginal float64
	}

	for i := 0; i < k; i++ {
		var cands []candidate
		for s := 0; s < c.n; s++ {
			if excluded[s] {
				continue
			}
			var m float64
			for _, cg := range c.gainsByBoost[s] {
				if d := cg.AvgGain - maxGainTo[cg.Center]; d > 0 {
					m += d
				}
			}
			cands = append(cands, candidate{boost: s, marginal: m})
		}
		if len(cands) == 0 {
			break
		}

		var chosen candidate
		switch mode {
		case Greedy:
			chosen = cands[0]
			for _, cd := range cands[1:] {
				if cd.marginal > chosen.marginal {
					chosen = cd
				}
			}
		case RandomGreedy:
			sort.Slice(cands, func(i, j int) bool { return cands[i].marginal > cands[j].marginal })
			top := cands
			if len(top) > k {
				top = top[:k]
			}
			chosen = top[rng.Intn(len(top))]
		}

		picked = append(picked, chosen.boost)
		marginals = append(marginals, chosen.marginal)
		excluded[chosen.boost] = true

		for _, cg := range c.gainsByBoost[chosen.boost] {
			if cg.AvgGain > maxGainTo[cg.Center] {
				maxGainTo[cg.Center] = cg.AvgGain
			}
		}
	}
	return picked, marginals
}

// Footprint estimates the collection's resident memory in bytes.
func (c *Collection) Footprint() uint64 {
	var total uint64
	total += uint64(cap(c.sampleCount)) * uint64(unsafe.Sizeof(int(0)))
	for _, row := range c.gainsToCenter {
		total += uint64(cap(row)) * uint64(unsafe.Sizeof(GainBoost{}))
	}
	for _, row := range c.gainsByBoost {
		total += uint64(cap(row)) * uint64(unsafe.Sizeof(CenterGain{}))
	}
	return total
}
