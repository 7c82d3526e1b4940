package primm

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/cstate"
	"github.com/katalvlaran/c2ic/prr"
)

// ContribEntry records one sketch's positive-gain outcome for the node
// it is attached under: boosting that node turns the sketch's center
// into StateTo.
type ContribEntry struct {
	SketchID int
	StateTo  cstate.NodeState
}

// sketchRecord is the compact, capacity-stable form a Sketch is reduced
// to once stored: its no-boost center outcome, and the list of nodes
// that recorded a positive marginal in it (the set select's rollback
// walks when that sketch's captured outcome improves).
type sketchRecord struct {
	CenterState cstate.NodeState
	Nodes       []int
}

// Collection is the PR-IMM store described in the engine's selection
// model: append-only sketches, a per-node reverse index, and a
// per-node total marginal gain, kept consistent by add/merge alone.
type Collection struct {
	n     int
	seeds *cstate.SeedSet
	gain  cstate.GainFunc
	pri   cstate.Priority

	sketches  []sketchRecord
	curCenter []cstate.NodeState // parallel to sketches; mutated+rolled-back by Select

	contrib   [][]ContribEntry
	totalGain []float64
}

// New returns an empty Collection over n nodes, using cfg's gain
// function and priority for every add/select call. Every seed's
// totalGain is pinned to -Inf at construction; +=, applied by every
// later Add, leaves -Inf unchanged, so seeds are excluded from
// selection without re-checking seed membership on every update.
func New(n int, seeds *cstate.SeedSet, cfg cstate.Config) *Collection {
	c := &Collection{
		n:         n,
		seeds:     seeds,
		gain:      cfg.Gain,
		pri:       cfg.Priority,
		contrib:   make([][]ContribEntry, n),
		totalGain: make([]float64, n),
	}
	for _, v := range seeds.Sa() {
		c.totalGain[v] = math.Inf(-1)
	}
	for _, v := range seeds.Sr() {
		c.totalGain[v] = math.Inf(-1)
	}
	return c
}

// Add folds one PRR sketch into the collection. A node v is recorded
// only if gain(v.StateTo) strictly exceeds gain(sketch.CenterState);
// a sketch with no such node is dropped and never occupies a sketch id.
func (c *Collection) Add(s *prr.Sketch) {
	baseline := c.gain.Gain(s.CenterState)

	type positive struct {
		node    int
		delta   float64
		stateTo cstate.NodeState
	}
	var kept []positive
	for _, ct := range s.Contrib {
		if delta := c.gain.Gain(ct.StateTo) - baseline; delta > 0 {
			kept = append(kept, positive{node: ct.Node, delta: delta, stateTo: ct.StateTo})
		}
	}
	if len(kept) == 0 {
		return
	}

	id := len(c.sketches)
	nodes := make([]int, len(kept))
	for i, p := range kept {
		c.contrib[p.node] = append(c.contrib[p.node], ContribEntry{SketchID: id, StateTo: p.stateTo})
		c.totalGain[p.node] += p.delta
		nodes[i] = p.node
	}
	c.sketches = append(c.sketches, sketchRecord{CenterState: s.CenterState, Nodes: nodes})
	c.curCenter = append(c.curCenter, s.CenterState)
}

// Merge concatenates other's sketches into c, shifting every sketch id
// referenced by other's contrib entries by c's sketch count prior to
// the merge, and summing totalGain per node.
func (c *Collection) Merge(other *Collection) {
	shift := len(c.sketches)
	for v := 0; v < c.n; v++ {
		for _, e := range other.contrib[v] {
			c.contrib[v] = append(c.contrib[v], ContribEntry{SketchID: e.SketchID + shift, StateTo: e.StateTo})
		}
		c.totalGain[v] += other.totalGain[v]
	}
	c.sketches = append(c.sketches, other.sketches...)
	c.curCenter = append(c.curCenter, other.curCenter...)
}

// changeLogEntry undoes one curCenter overwrite made during Select.
type changeLogEntry struct {
	sketchID int
	prev     cstate.NodeState
}

// Select runs the greedy pass over up to k nodes and returns the
// selected node indices in pick order together with each one's
// recorded marginal gain at the time it was picked. Seeds are never
// selected. The collection is left exactly as it was found: every
// curCenter mutation made during the pass is undone via change log
// before Select returns, so repeated calls are idempotent.
func (c *Collection) Select(k int) (picked []int, marginals []float64) {
	scratch := append([]float64(nil), c.totalGain...) // seeds already -Inf

	var log []changeLogEntry
	for i := 0; i < k; i++ {
		v := argmax(scratch)
		if math.IsInf(scratch[v], -1) {
			break // no candidate left with finite gain
		}

		picked = append(picked, v)
		marginals = append(marginals, scratch[v])
		scratch[v] = math.Inf(-1)

		for _, e := range c.contrib[v] {
			cur := c.curCenter[e.SketchID]
			if !c.pri.Greater(e.StateTo, cur) {
				continue // a stronger pick already captured this sketch
			}
			delta := c.gain.Gain(e.StateTo) - c.gain.Gain(cur)
			for _, j := range c.sketches[e.SketchID].Nodes {
				scratch[j] -= delta
			}
			log = append(log, changeLogEntry{sketchID: e.SketchID, prev: cur})
			c.curCenter[e.SketchID] = e.StateTo
		}
	}

	for i := len(log) - 1; i >= 0; i-- {
		c.curCenter[log[i].sketchID] = log[i].prev
	}
	return picked, marginals
}

// argmax returns the index of the largest value in s, breaking ties
// toward the lowest index for deterministic, reproducible selection.
func argmax(s []float64) int {
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[best] {
			best = i
		}
	}
	return best
}

// SketchCount returns the number of sketches retained (post-drop).
func (c *Collection) SketchCount() int { return len(c.sketches) }

// TotalGain returns node v's accumulated marginal gain across every
// retained sketch.
func (c *Collection) TotalGain(v int) float64 { return c.totalGain[v] }

// CheckInvariants verifies the collection's two documented invariants:
// every seed's totalGain is -Inf, and every node's totalGain equals the
// sum of gain deltas recorded by its own contrib entries against each
// referenced sketch's current (no-boost) center state. It returns a
// cerrors.InvariantViolation error naming the first node that fails,
// or nil. Intended for tests and defensive checks, not the hot path.
func (c *Collection) CheckInvariants() error {
	for _, v := range c.seeds.Sa() {
		if !math.IsInf(c.totalGain[v], -1) {
			return cerrors.New(cerrors.InvariantViolation, fmt.Sprintf("primm: seed %d has finite totalGain %g", v, c.totalGain[v]))
		}
	}
	for _, v := range c.seeds.Sr() {
		if !math.IsInf(c.totalGain[v], -1) {
			return cerrors.New(cerrors.InvariantViolation, fmt.Sprintf("primm: seed %d has finite totalGain %g", v, c.totalGain[v]))
		}
	}

	for v := 0; v < c.n; v++ {
		if c.seeds.IsSeed(v) {
			continue
		}
		var sum float64
		for _, e := range c.contrib[v] {
			baseline := c.gain.Gain(c.sketches[e.SketchID].CenterState)
			sum += c.gain.Gain(e.StateTo) - baseline
		}
		if math.Abs(sum-c.totalGain[v]) > 1e-9 {
			return cerrors.New(cerrors.InvariantViolation, fmt.Sprintf("primm: node %d totalGain %g disagrees with recomputed sum %g", v, c.totalGain[v], sum))
		}
	}
	return nil
}

// Footprint estimates the collection's resident memory in bytes: slice
// capacities times element size, including every nested contrib and
// sketch-record slice.
func (c *Collection) Footprint() uint64 {
	var total uint64
	total += uint64(cap(c.sketches)) * uint64(unsafe.Sizeof(sketchRecord{}))
	total += uint64(cap(c.curCenter)) * uint64(unsafe.Sizeof(cstate.NodeState(0)))
	total += uint64(cap(c.totalGain)) * uint64(unsafe.Sizeof(float64(0)))
	for _, s := range c.sketches {
		total += uint64(cap(s.Nodes)) * uint64(unsafe.Sizeof(int(0)))
	}
	for _, row := range c.contrib {
		total += uint64(cap(row)) * uint64(unsafe.Sizeof(ContribEntry{}))
	}
	return total
}
