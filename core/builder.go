package core

import "fmt"

// Builder accumulates edges for a fixed number of nodes and freezes them
// into a Graph's CSR adjacency on Build. This mirrors lvlath's separation
// of mutation (AddEdge) from a finished, queryable structure, but trades
// the mutex-guarded map-of-maps for a one-shot append-then-index pass:
// a propagation graph is read millions of times per run (once per PRR
// sample) and written exactly once.
type Builder struct {
	n     int
	edges []Edge
}

// NewBuilder returns a Builder for n nodes in [0,n). n must be >= 0.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	return &Builder{n: n}, nil
}

// AddEdge appends a directed edge u->v with activation probability p and
// boosted probability pBoost, returning its edge index. Requires
// 0 <= u,v < n and 0 <= p <= pBoost <= 1.
func (b *Builder) AddEdge(u, v int, p, pBoost float64) (int, error) {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if p < 0 || pBoost > 1 || p > pBoost {
		return 0, fmt.Errorf("AddEdge(%d,%d): p=%g pBoost=%g: %w", u, v, p, pBoost, ErrInvalidProbability)
	}
	idx := len(b.edges)
	b.edges = append(b.edges, Edge{From: u, To: v, P: p, PBoost: pBoost})
	return idx, nil
}

// Build freezes the accumulated edges into a Graph with CSR forward and
// reverse adjacency. The Builder may continue to be used afterwards; each
// Build call produces an independent Graph snapshot of edges added so far.
func (b *Builder) Build() *Graph {
	g := &Graph{
		n:       b.n,
		edges:   append([]Edge(nil), b.edges...),
		forward: make([][]AdjEntry, b.n),
		reverse: make([][]AdjEntry, b.n),
	}

	outDeg := make([]int, b.n)
	inDeg := make([]int, b.n)
	for _, e := range g.edges {
		outDeg[e.From]++
		inDeg[e.To]++
	}
	for v := 0; v < b.n; v++ {
		if outDeg[v] > 0 {
			g.forward[v] = make([]AdjEntry, 0, outDeg[v])
		}
		if inDeg[v] > 0 {
			g.reverse[v] = make([]AdjEntry, 0, inDeg[v])
		}
	}
	for idx, e := range g.edges {
		g.forward[e.From] = append(g.forward[e.From], AdjEntry{Neighbor: e.To, EdgeIdx: idx})
		g.reverse[e.To] = append(g.reverse[e.To], AdjEntry{Neighbor: e.From, EdgeIdx: idx})
	}
	return g
}
