package orchestrate

import (
	"context"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/c2ic/c2iclog"
	"github.com/katalvlaran/c2ic/config"
	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
	"github.com/katalvlaran/c2ic/evaluate"
)

// runGreedy is the brute-force comparison baseline: at each of kMax
// rounds, re-evaluate every remaining candidate by full forward
// simulation (evaluate.Run, GreedyTestTimes trials) and keep whichever
// raises the simulated gain sum the most. O(k·n) evaluate.Run calls —
// correct by construction, since it scores candidates against the real
// evaluator rather than a sketch-based proxy, but unlike PR-IMM/SA-IMM
// it carries no sub-linear sample complexity and is only meant for
// small graphs or as a sanity baseline.
//
// Each round's n candidate evaluations are independent of each other
// (each runs its own evaluate.Run over a private trial slice), so they
// fan out over an errgroup.Group capped at NThreads candidates in
// flight at once; evaluate.Run's own worker pool runs beneath that,
// one candidate at a time, rather than nested unboundedly.
func runGreedy(g *core.Graph, seeds *cstate.SeedSet, built config.Built, baseSeed int64, log c2iclog.Logger) ([]int, error) {
	n := g.NumNodes()
	kMax := built.K[len(built.K)-1]

	chosen := make([]int, 0, kMax)
	chosenSet := make(map[int]bool, kMax)

	base, err := evaluate.Run(g, seeds, nil, built.Cfg, built.GreedyTestTimes, built.NThreads, baseSeed)
	if err != nil {
		return nil, err
	}
	prevGain := base.GainSum

	limit := built.NThreads
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	for i := 0; i < kMax; i++ {
		var mu sync.Mutex
		bestCand := -1
		bestGain := math.Inf(-1)

		eg, ctx := errgroup.WithContext(context.Background())
		eg.SetLimit(limit)
		for v := 0; v < n; v++ {
			if seeds.IsSeed(v) || chosenSet[v] {
				continue
			}
			v := v
			eg.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				trial := append(append([]int(nil), chosen...), v)
				res, err := evaluate.Run(g, seeds, trial, built.Cfg, built.GreedyTestTimes, 1, baseSeed)
				if err != nil {
					return err
				}
				mu.Lock()
				if res.GainSum > bestGain {
					bestGain, bestCand = res.GainSum, v
				}
				mu.Unlock()
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		if bestCand < 0 {
			break
		}

		chosen = append(chosen, bestCand)
		chosenSet[bestCand] = true
		log.Debug("greedy round %d: picked=%d marginal=%g", i+1, bestCand, bestGain-prevGain)
		prevGain = bestGain
	}

	log.Info("greedy done: picked=%d", len(chosen))
	return chosen, nil
}
