package evaluate

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
	"github.com/katalvlaran/c2ic/edgecache"
	"github.com/katalvlaran/c2ic/propagate"
	"github.com/katalvlaran/c2ic/workerpool"
)

// workerScratch is the per-worker state workerpool.Run builds once per
// goroutine: an independent edge-state cache (its own RNG stream, never
// shared) and a reusable propagation scratch.
type workerScratch struct {
	cache *edgecache.Cache
	prop  *propagate.Scratch
}

// Run estimates the outcome of boosting the nodes in boost by running
// trials independent forward propagations across nThreads workers, each
// with its own edgecache.Cache seeded off baseSeed via an independent
// stream (see rng.go). boost may be nil or empty for the unboosted
// baseline.
//
// Two Run calls sharing baseSeed and nThreads reseed their workers'
// caches from the same set of derived streams, which is why
// With/Without/Diff call Run twice with the same baseSeed (common
// random numbers) rather than drawing from unrelated seeds. The draws
// are not paired per trial index: workers claim trials dynamically, and
// a cache draws an edge only when a propagation reads it, so a boosted
// and an unboosted call can consume a stream in different orders.
func Run(g *core.Graph, seeds *cstate.SeedSet, boost []int, cfg cstate.Config, trials, nThreads int, baseSeed int64) (Result, error) {
	if trials <= 0 {
		return Result{}, cerrors.New(cerrors.ConfigError, "evaluate: trials must be positive")
	}

	items := make([]int, trials)
	for i := range items {
		items[i] = i
	}

	var nextWorker int32
	n := g.NumNodes()

	final := workerpool.Run(
		items,
		nThreads,
		func() workerScratch {
			idx := atomic.AddInt32(&nextWorker, 1) - 1
			return workerScratch{
				cache: edgecache.New(g, streamRNG(baseSeed, uint64(idx))),
				prop:  propagate.NewScratch(n),
			}
		},
		func() *partial { return &partial{} },
		func(_ int, sc workerScratch, p *partial) {
			sc.cache.Refresh()
			res := propagate.Run(g, seeds, boost, sc.cache, cfg.Priority, sc.prop, nil)

			var gain float64
			for v := 0; v < n; v++ {
				st := res.State(v)
				p.sumCounts[st]++
				gain += cfg.Gain.Gain(st)
			}
			p.sumGain += gain
			p.trials++
		},
	)

	result := final.result()
	if math.IsInf(result.GainSum, 0) || math.IsNaN(result.GainSum) {
		return Result{}, cerrors.New(cerrors.NumericOverflow, "evaluate: gain-sum accumulation produced a non-finite value")
	}
	return result, nil
}

// WithWithout estimates the boosted outcome, the unboosted baseline and
// their difference, using common random numbers across the two Run
// calls (see Run's doc comment).
func WithWithout(g *core.Graph, seeds *cstate.SeedSet, boost []int, cfg cstate.Config, trials, nThreads int, baseSeed int64) (with, without, diff Result, err error) {
	with, err = Run(g, seeds, boost, cfg, trials, nThreads, baseSeed)
	if err != nil {
		return Result{}, Result{}, Result{}, err
	}
	without, err = Run(g, seeds, nil, cfg, trials, nThreads, baseSeed)
	if err != nil {
		return Result{}, Result{}, Result{}, err
	}
	diff = with.Diff(without)
	return with, without, diff, nil
}

// Prefixes evaluates every prefix order[:1], order[:2], ..., order[:len(order)]
// of a selection-ordered boost list against the shared unboosted
// baseline, matching the engine's per-k reporting requirement.
func Prefixes(g *core.Graph, seeds *cstate.SeedSet, order []int, cfg cstate.Config, trials, nThreads int, baseSeed int64) ([]PrefixResult, error) {
	without, err := Run(g, seeds, nil, cfg, trials, nThreads, baseSeed)
	if err != nil {
		return nil, err
	}

	out := make([]PrefixResult, len(order))
	for k := 1; k <= len(order); k++ {
		with, err := Run(g, seeds, order[:k], cfg, trials, nThreads, baseSeed)
		if err != nil {
			return nil, err
		}
		out[k-1] = PrefixResult{K: k, With: with, Without: without, Diff: with.Diff(without)}
	}
	return out, nil
}
