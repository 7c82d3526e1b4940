package core

// Edge is a directed propagation edge e=(From,To) with a base activation
// probability P and a boosted activation probability PBoost, 0<=P<=PBoost<=1.
// Edges are immutable once the owning Graph is built and are addressed by
// their position in Graph.edges (the "edge index").
type Edge struct {
	From, To  int
	P, PBoost float64
}

// AdjEntry is one CSR adjacency slot: the neighbor node index and the
// index of the edge that connects to it. Kept as a pair (rather than two
// parallel slices) so a single slice append builds both forward and
// reverse adjacency without extra bookkeeping.
type AdjEntry struct {
	Neighbor int
	EdgeIdx  int
}

// Graph is a fixed directed propagation graph: n nodes in [0,n), and a
// dense edge list, with CSR-style forward and reverse adjacency computed
// once at Build time. There is no mutation API — node/edge count and
// identity never change after construction, so Graph needs no internal
// locking and is safe to read concurrently from any number of goroutines.
type Graph struct {
	n       int
	edges   []Edge
	forward [][]AdjEntry
	reverse [][]AdjEntry
}

// NumNodes returns |V|.
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns |E|.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edge returns the edge at index e. Caller must ensure 0 <= e < NumEdges().
func (g *Graph) Edge(e int) Edge { return g.edges[e] }

// Forward returns the outgoing (neighbor, edgeIndex) pairs of node v.
// The returned slice must not be mutated by the caller.
func (g *Graph) Forward(v int) []AdjEntry { return g.forward[v] }

// Reverse returns the incoming (neighbor, edgeIndex) pairs of node v,
// i.e. edges u->v viewed from v with Neighbor==u.
// The returned slice must not be mutated by the caller.
func (g *Graph) Reverse(v int) []AdjEntry { return g.reverse[v] }

// OutDegree returns len(Forward(v)).
func (g *Graph) OutDegree(v int) int { return len(g.forward[v]) }

// InDegree returns len(Reverse(v)).
func (g *Graph) InDegree(v int) int { return len(g.reverse[v]) }
