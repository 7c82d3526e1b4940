package baseline

import "github.com/katalvlaran/c2ic/core"

// degreeOf is the influence proxy MaxDegree ranks by: how many edges a
// node can push activation across, i.e. its out-degree.
func degreeOf(g *core.Graph, v int) int { return g.OutDegree(v) }

// MaxDegree returns up to k non-seed node indices ordered by descending
// out-degree, ties broken by ascending index for reproducibility.
func MaxDegree(g *core.Graph, isSeed func(v int) bool, k int) []int {
	n := g.NumNodes()
	cands := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !isSeed(v) {
			cands = append(cands, v)
		}
	}

	// Insertion sort would be O(n^2); these candidate lists are small
	// relative to sampling cost, so a straightforward selection pass
	// keeps this package dependency-free and easy to audit.
	for i := 0; i < len(cands) && i < k; i++ {
		best := i
		for j := i + 1; j < len(cands); j++ {
			dj, db := degreeOf(g, cands[j]), degreeOf(g, cands[best])
			if dj > db || (dj == db && cands[j] < cands[best]) {
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
