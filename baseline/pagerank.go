package baseline

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/c2ic/core"
)

// toWeightedDirected rebuilds g as a gonum weighted directed graph,
// using each edge's base activation probability P as its transition
// weight — PageRank follows the same edges propagation does, weighted
// by how likely a message is to cross them.
func toWeightedDirected(g *core.Graph) *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for v := 0; v < g.NumNodes(); v++ {
		wg.AddNode(simple.Node(int64(v)))
	}
	for e := 0; e < g.NumEdges(); e++ {
		edge := g.Edge(e)
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(edge.From)),
			T: simple.Node(int64(edge.To)),
			W: edge.P,
		})
	}
	return wg
}

// PageRank ranks non-seed nodes by gonum's network.PageRankWeighted
// score over g's activation-probability weights and returns up to k
// node indices in descending-score order, ties broken by ascending
// index.
func PageRank(g *core.Graph, isSeed func(v int) bool, k int, damping, tol float64) []int {
	wg := toWeightedDirected(g)
	scores := network.PageRankWeighted(wg, damping, tol)

	n := g.NumNodes()
	cands := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !isSeed(v) {
			cands = append(cands, v)
		}
	}

	for i := 0; i < len(cands) && i < k; i++ {
		best := i
		for j := i + 1; j < len(cands); j++ {
			sj, sb := scores[int64(cands[j])], scores[int64(cands[best])]
			if sj > sb || (sj == sb && cands[j] < cands[best]) {
				best = j
			}
		}
		cands[i], cands[best] = cands[best], cands[i]
	}

	if k > len(cands) {
		k = len(cands)
	}
	return cands[:k]
}
