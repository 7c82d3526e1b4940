package orchestrate

import (
	"math/rand"
	"sync/atomic"

	"github.com/katalvlaran/c2ic/c2iclog"
	"github.com/katalvlaran/c2ic/config"
	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
	"github.com/katalvlaran/c2ic/edgecache"
	"github.com/katalvlaran/c2ic/primm"
	"github.com/katalvlaran/c2ic/prr"
	"github.com/katalvlaran/c2ic/workerpool"
)

// primmScratch is one PR-IMM worker's owned state: its own sampler (and
// the cache it reads edge state through) and its own center-choosing
// RNG, kept separate from the cache's edge-sampling RNG so refreshing
// edge state and drawing a center never share a stream.
type primmScratch struct {
	sampler   *prr.Sampler
	cache     *edgecache.Cache
	centerRNG *rand.Rand
}

// runPRIMM grows a PR-IMM collection per built's sample-size schedule,
// drawing each sketch's center uniformly at random over every node,
// and returns the greedy selection at kMax.
func runPRIMM(g *core.Graph, seeds *cstate.SeedSet, built config.Built, baseSeed int64, log c2iclog.Logger) ([]int, error) {
	n := g.NumNodes()
	kMax := built.K[len(built.K)-1]

	ctrl, err := newController(built.NSamples, built.Epsilon, built.Ell, n, kMax, built.SampleLimit)
	if err != nil {
		return nil, err
	}

	coll := primm.New(n, seeds, built.Cfg)
	sampled := 0
	var nextStream int32

	for {
		target, ok := ctrl.NextTotal()
		if !ok {
			break
		}
		delta := target - sampled
		if delta > 0 {
			items := make([]int, delta)
			round := workerpool.Run(
				items, built.NThreads,
				func() primmScratch {
					idx := uint64(atomic.AddInt32(&nextStream, 1) - 1)
					cache := edgecache.New(g, streamRNG(baseSeed, idx*2))
					return primmScratch{
						sampler:   prr.NewSampler(g, seeds, cache, built.Cfg),
						cache:     cache,
						centerRNG: streamRNG(baseSeed, idx*2+1),
					}
				},
				func() *primm.Collection { return primm.New(n, seeds, built.Cfg) },
				func(_ int, sc primmScratch, partial *primm.Collection) {
					sc.cache.Refresh()
					center := sc.centerRNG.Intn(n)
					partial.Add(sc.sampler.Sample(center))
				},
			)
			coll.Merge(round)
			sampled = target
		}

		picked, marginals := coll.Select(kMax)
		if obs, ok := ctrl.(observer); ok {
			var sum float64
			for _, m := range marginals {
				sum += m
			}
			avg := 0.0
			if sampled > 0 {
				avg = sum / float64(sampled)
			}
			obs.Observe(avg)
		}
		log.Debug("pr-imm round: sampled=%d picked=%d", sampled, len(picked))

		if built.SampleLimit > 0 && sampled >= built.SampleLimit {
			break
		}
	}

	picked, _ := coll.Select(kMax)
	log.Info("pr-imm done: sketches=%d picked=%d footprint_bytes=%d", coll.SketchCount(), len(picked), coll.Footprint())
	return picked, nil
}
