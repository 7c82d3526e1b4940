// Package baseline implements the two non-PRR seed-selection heuristics
// the engine reports alongside PR-IMM/SA-IMM: MaxDegree (pick the
// highest out-degree non-seed nodes) and PageRank (rank non-seed nodes
// by gonum's network.PageRankWeighted over the graph's activation-
// probability weights). Both exist purely as comparison baselines;
// neither touches PRR sketches, the worker pool, or the gain model.
package baseline
