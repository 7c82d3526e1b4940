package orchestrate

import (
	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
)

// candidateCenters returns the non-seed nodes reachable forward from
// Sa∪Sr within distLimit hops (distLimit<=0 means unbounded — every
// forward-reachable non-seed node), ascending by index. SA-IMM uses
// this to bound how many per-center gain tables it has to build; a
// node outside every seed's reach can never receive a positive marginal
// anyway, since no sketch rooted there has a seed on its reverse
// frontier. If the BFS reaches nothing (e.g. distLimit cuts off before
// any non-seed node), every non-seed node is returned instead, so a
// misconfigured distance limit degrades to "no filtering" rather than
// starving SA-IMM of candidates entirely.
func candidateCenters(g *core.Graph, seeds *cstate.SeedSet, distLimit int) []int {
	n := g.NumNodes()
	visited := make([]bool, n)
	dist := make([]int, n)

	queue := make([]int, 0, n)
	for _, v := range seeds.Sa() {
		if !visited[v] {
			visited[v] = true
			dist[v] = 0
			queue = append(queue, v)
		}
	}
	for _, v := range seeds.Sr() {
		if !visited[v] {
			visited[v] = true
			dist[v] = 0
			queue = append(queue, v)
		}
	}

	head := 0
	for head < len(queue) {
		u := queue[head]
		head++
		if distLimit > 0 && dist[u] >= distLimit {
			continue
		}
		for _, adj := range g.Forward(u) {
			v := adj.Neighbor
			if visited[v] {
				continue
			}
			visited[v] = true
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	out := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if visited[v] && !seeds.IsSeed(v) {
			out = append(out, v)
		}
	}
	if len(out) > 0 {
		return out
	}

	for v := 0; v < n; v++ {
		if !seeds.IsSeed(v) {
			out = append(out, v)
		}
	}
	return out
}
