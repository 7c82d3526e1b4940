package edgecache

import (
	"math/rand"

	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
)

// Cache memoizes a sampled EdgeState per edge index under a lazy global
// epoch: a read with a stale per-edge epoch resamples from (P, PBoost)
// and stamps the edge with the current epoch. Refresh is O(1) — it only
// bumps the epoch — so invalidating every edge between PRR samples never
// costs more than a single increment.
//
// Invariant: after any Get(e), edgeEpoch[e] == epoch.
type Cache struct {
	g         *core.Graph
	epoch     uint32
	edgeEpoch []uint32
	state     []cstate.EdgeState
	rng       *rand.Rand
}

// New returns a Cache bound to g, using rng as its private draw source.
// rng must not be shared with any other goroutine.
func New(g *core.Graph, rng *rand.Rand) *Cache {
	c := &Cache{rng: rng}
	c.Reset(g)
	return c
}

// Get returns the sampled state of edge e, resampling it if its stored
// epoch is stale.
func (c *Cache) Get(e int) cstate.EdgeState {
	if c.edgeEpoch[e] != c.epoch {
		edge := c.g.Edge(e)
		u := c.rng.Float64()
		var st cstate.EdgeState
		switch {
		case u < edge.P:
			st = cstate.Active
		case u < edge.PBoost:
			st = cstate.Boosted
		default:
			st = cstate.Blocked
		}
		c.state[e] = st
		c.edgeEpoch[e] = c.epoch
	}
	return c.state[e]
}

// Refresh invalidates every cached edge state in O(1) by bumping the
// epoch counter; memory is preserved and reused lazily on next Get.
func (c *Cache) Refresh() {
	c.epoch++
}

// Reset rebinds the cache to g and reallocates its per-edge arrays,
// resetting the epoch to 1 with all per-edge epochs implicitly 0 (so
// the very first Get of every edge resamples).
func (c *Cache) Reset(g *core.Graph) {
	c.g = g
	c.epoch = 1
	n := g.NumEdges()
	if cap(c.edgeEpoch) >= n {
		c.edgeEpoch = c.edgeEpoch[:n]
		c.state = c.state[:n]
		for i := range c.edgeEpoch {
			c.edgeEpoch[i] = 0
		}
	} else {
		c.edgeEpoch = make([]uint32, n)
		c.state = make([]cstate.EdgeState, n)
	}
}
