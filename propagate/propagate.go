package propagate

import (
	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
)

// EdgeStateSource supplies the sampled state of an edge by index.
// edgecache.Cache satisfies this; PRR sampling and the evaluator both
// depend on this narrow interface rather than the concrete cache type.
type EdgeStateSource interface {
	Get(e int) cstate.EdgeState
}

// NodeFilter restricts traversal to a subset of nodes, used by the PRR
// sampler to run propagation inside a sketch's retained subgraph. A nil
// filter allows every node (the full-graph case).
type NodeFilter func(v int) bool

func (f NodeFilter) allows(v int) bool { return f == nil || f(v) }

// Result is the outcome of one Run: the final NodeState of every node
// touched during traversal. Unreached nodes carry cstate.None.
type Result struct {
	scratch *Scratch
}

// State returns the final state of node v after the Run that produced r.
func (r Result) State(v int) cstate.NodeState { return r.scratch.state[v] }

// Dist returns the BFS distance (in hops from the nearest seed) at which
// v's final state was fixed, or an arbitrarily large sentinel if v was
// never reached.
func (r Result) Dist(v int) int { return r.scratch.dist[v] }

// Run performs the forward, priority-aware multi-source BFS described
// in the engine's propagation model: Sa seeds push Ca, Sr seeds push
// Cr; a message reaching a node in boost is upgraded at dequeue time
// (Ca->CaPlus, Cr->CrMinus); CaPlus may additionally traverse Boosted
// edges, every other state requires Active. Same-round arrivals are
// resolved by priority; later-round arrivals are dropped.
//
// filter, if non-nil, restricts both which nodes may be visited and
// which edges may be followed (an edge is only followed if its target
// passes filter) — this is how the PRR sampler reuses Run to simulate
// inside a sketch's retained subgraph.
//
// scratch is reset at the start of Run and owns the returned Result;
// the Result is only valid until the next call to Run on the same
// Scratch.
func Run(g *core.Graph, seeds *cstate.SeedSet, boost []int, cache EdgeStateSource, pri cstate.Priority, scratch *Scratch, filter NodeFilter) Result {
	scratch.reset()

	for _, v := range boost {
		if filter.allows(v) {
			scratch.touch(v)
			scratch.boosted[v] = true
		}
	}

	push := func(v int, st cstate.NodeState, d int) {
		scratch.touch(v)
		scratch.state[v] = st
		scratch.dist[v] = d
		scratch.queue = append(scratch.queue, v)
	}

	for _, v := range seeds.Sa() {
		if filter.allows(v) {
			push(v, cstate.Ca, 0)
		}
	}
	for _, v := range seeds.Sr() {
		if filter.allows(v) {
			push(v, cstate.Cr, 0)
		}
	}

	head := 0
	for head < len(scratch.queue) {
		u := scratch.queue[head]
		head++

		if scratch.boosted[u] {
			switch scratch.state[u] {
			case cstate.Ca:
				scratch.state[u] = cstate.CaPlus
			case cstate.Cr:
				scratch.state[u] = cstate.CrMinus
			}
		}
		uState := scratch.state[u]
		uDist := scratch.dist[u]

		for _, adj := range g.Forward(u) {
			v := adj.Neighbor
			if !filter.allows(v) {
				continue
			}
			es := cache.Get(adj.EdgeIdx)
			var accepted bool
			if uState == cstate.CaPlus {
				accepted = es == cstate.Active || es == cstate.Boosted
			} else {
				accepted = es == cstate.Active
			}
			if !accepted {
				continue
			}

			nd := uDist + 1
			if nd < scratch.dist[v] {
				scratch.touch(v)
				scratch.state[v] = uState
				scratch.dist[v] = nd
				scratch.queue = append(scratch.queue, v)
			} else if nd == scratch.dist[v] && pri.Greater(uState, scratch.state[v]) {
				scratch.state[v] = uState
			}
		}
	}

	return Result{scratch: scratch}
}
