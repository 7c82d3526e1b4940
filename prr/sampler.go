package prr

import (
	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
	"github.com/katalvlaran/c2ic/propagate"
)

// Sampler draws PRR sketches rooted at a caller-chosen center. It is
// not safe for concurrent use; workerpool gives each worker its own
// Sampler (and its own edgecache.Cache, since Sampler reads edge state
// through one).
type Sampler struct {
	g     *core.Graph
	seeds *cstate.SeedSet
	cache propagate.EdgeStateSource
	cfg   cstate.Config

	visited []bool
	dist    []int
	nodes   []int // touched-list doubling as the sketch's node set

	prop *propagate.Scratch
}

// NewSampler returns a Sampler over g for seeds, reading edge state from
// cache and using cfg for priority/gain/class decisions.
func NewSampler(g *core.Graph, seeds *cstate.SeedSet, cache propagate.EdgeStateSource, cfg cstate.Config) *Sampler {
	n := g.NumNodes()
	return &Sampler{
		g:       g,
		seeds:   seeds,
		cache:   cache,
		cfg:     cfg,
		visited: make([]bool, n),
		dist:    make([]int, n),
		prop:    propagate.NewScratch(n),
	}
}

// resetReverseScratch clears the visited/dist entries touched by the
// previous reverse BFS.
func (s *Sampler) resetReverseScratch() {
	for _, v := range s.nodes {
		s.visited[v] = false
	}
	s.nodes = s.nodes[:0]
}

// Sample builds a PRR sketch rooted at center.
func (s *Sampler) Sample(center int) *Sketch {
	s.resetReverseScratch()

	s.visited[center] = true
	s.dist[center] = 0
	s.nodes = append(s.nodes, center)

	queue := []int{center} // small per-call slice; dominated by BFS cost itself
	head := 0
	for head < len(queue) {
		x := queue[head]
		head++

		if s.seeds.IsSeed(x) {
			continue // stop expanding from seed nodes
		}
		for _, adj := range s.g.Reverse(x) {
			if s.cache.Get(adj.EdgeIdx) == cstate.Blocked {
				continue
			}
			u := adj.Neighbor
			if s.visited[u] {
				continue
			}
			s.visited[u] = true
			s.dist[u] = s.dist[x] + 1
			s.nodes = append(s.nodes, u)
			queue = append(queue, u)
		}
	}

	member := func(v int) bool { return s.visited[v] }

	noBoost := propagate.Run(s.g, s.seeds, nil, s.cache, s.cfg.Priority, s.prop, member)
	centerState := noBoost.State(center)

	// noBoost wraps s.prop by pointer, not by value: every slow-path
	// propagate.Run call inside centerStateTo below resets and
	// overwrites that same scratch. Snapshot every no-boost state up
	// front, before any slow-path call can clobber it out from under
	// later iterations of this loop.
	noBoostStates := make([]cstate.NodeState, len(s.nodes))
	for i, v := range s.nodes {
		noBoostStates[i] = noBoost.State(v)
	}

	contrib := make([]Contrib, len(s.nodes))
	for i, v := range s.nodes {
		contrib[i] = Contrib{Node: v, StateTo: s.centerStateTo(center, v, noBoostStates[i], centerState, member)}
	}

	return &Sketch{Center: center, CenterState: centerState, Contrib: contrib}
}

// centerStateTo computes the state center would take if v alone were
// boosted. Per the design notes, the fast shortcut below is only ever
// taken for the Monotone priority class; every other class always
// takes the slow, full-rerun path. The shortcut itself — skip v whose
// own no-boost state can't be upgraded by a boost — is sound under any
// priority (boosting a node that boosting cannot change has no effect
// anywhere), but is gated on Monotone to match the documented
// boundary: "do not attempt a fast variant for other classes."
func (s *Sampler) centerStateTo(center, v int, vNoBoostState, centerState cstate.NodeState, member propagate.NodeFilter) cstate.NodeState {
	if s.cfg.Class == cstate.Monotone {
		if vNoBoostState != cstate.Ca && vNoBoostState != cstate.Cr {
			return centerState
		}
	}
	res := propagate.Run(s.g, s.seeds, []int{v}, s.cache, s.cfg.Priority, s.prop, member)
	return res.State(center)
}
