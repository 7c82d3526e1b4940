package orchestrate

import (
	"math/rand"
	"sync/atomic"

	"github.com/katalvlaran/c2ic/c2iclog"
	"github.com/katalvlaran/c2ic/config"
	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
	"github.com/katalvlaran/c2ic/edgecache"
	"github.com/katalvlaran/c2ic/prr"
	"github.com/katalvlaran/c2ic/saimm"
	"github.com/katalvlaran/c2ic/workerpool"
)

// saScratch is one SA-IMM worker's owned state: a PRR sampler (reused
// exactly as PR-IMM uses it — the per-center, per-boost gain table is
// the same centerStateTo computation, just folded by center instead of
// by node) and a reusable per-node accumulation buffer.
type saScratch struct {
	sampler *prr.Sampler
	cache   *edgecache.Cache
	gains   []float64
}

// centerJob is one candidate center's share of a sampling round: draw n
// single-source sketches rooted at center.
type centerJob struct {
	center int
	n      int
}

// apportion splits total as evenly as possible across parts buckets,
// front-loading the remainder so every bucket differs by at most one.
func apportion(total, parts int) []int {
	if parts <= 0 {
		return nil
	}
	out := make([]int, parts)
	base, rem := total/parts, total%parts
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

// runSAIMM grows a SA-IMM collection over the BFS-distance-limited
// candidate centers per built's SA sample-size schedule, then runs
// select in the given mode.
func runSAIMM(g *core.Graph, seeds *cstate.SeedSet, built config.Built, baseSeed int64, log c2iclog.Logger, mode saimm.Mode) ([]int, error) {
	n := g.NumNodes()
	kMax := built.K[len(built.K)-1]
	centers := candidateCenters(g, seeds, built.SampleDistLimitSA)

	ctrl, err := newController(built.NSamplesSA, built.EpsilonSA, built.Ell, n, kMax, built.SampleLimitSA)
	if err != nil {
		return nil, err
	}

	coll := saimm.New(n, built.GainThresholdSA, seeds)
	sampled := 0
	var nextStream int32
	selectRNG := rand.New(rand.NewSource(deriveSeed(baseSeed, 1<<32)))

	for {
		target, ok := ctrl.NextTotal()
		if !ok {
			break
		}
		delta := target - sampled
		if delta > 0 && len(centers) > 0 {
			perCenter := apportion(delta, len(centers))
			jobs := make([]centerJob, len(centers))
			for i, c := range centers {
				jobs[i] = centerJob{center: c, n: perCenter[i]}
			}

			round := workerpool.Run(
				jobs, built.NThreads,
				func() saScratch {
					idx := uint64(atomic.AddInt32(&nextStream, 1) - 1)
					cache := edgecache.New(g, streamRNG(baseSeed, idx))
					return saScratch{
						sampler: prr.NewSampler(g, seeds, cache, built.Cfg),
						cache:   cache,
						gains:   make([]float64, n),
					}
				},
				func() *saimm.Collection { return saimm.New(n, built.GainThresholdSA, seeds) },
				func(job centerJob, sc saScratch, partial *saimm.Collection) {
					if job.n == 0 {
						return
					}
					for i := range sc.gains {
						sc.gains[i] = 0
					}
					for i := 0; i < job.n; i++ {
						sc.cache.Refresh()
						sketch := sc.sampler.Sample(job.center)
						base := built.Cfg.Gain.Gain(sketch.CenterState)
						for _, ct := range sketch.Contrib {
							if delta := built.Cfg.Gain.Gain(ct.StateTo) - base; delta > 0 {
								sc.gains[ct.Node] += delta
							}
						}
					}
					partial.Add(job.center, job.n, sc.gains)
				},
			)
			coll.Merge(round)
			sampled = target
		}

		picked, marginals := coll.Select(kMax, mode, selectRNG)
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
		log.Debug("sa-imm round: sampled=%d centers=%d picked=%d", sampled, len(centers), len(picked))

		if built.SampleLimitSA > 0 && sampled >= built.SampleLimitSA {
			break
		}
	}

	picked, _ := coll.Select(kMax, mode, selectRNG)
	log.Info("sa-imm done: candidate_centers=%d picked=%d footprint_bytes=%d", len(centers), len(picked), coll.Footprint())
	return picked, nil
}
