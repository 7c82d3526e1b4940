package orchestrate

import (
	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/sampler"
)

// scheduleController is the shape sampler.Static and sampler.Dynamic
// both already satisfy: hand back the next cumulative sample total to
// reach, or ok=false once the schedule is exhausted.
type scheduleController interface {
	NextTotal() (total int, ok bool)
}

// observer is implemented only by sampler.Dynamic; a completed static
// schedule has nothing to observe.
type observer interface {
	Observe(avgGain float64)
}

// newController returns a Static controller over nSamples if the
// caller supplied an explicit schedule, otherwise a Dynamic controller
// parameterized from epsilon/ell/v/k/cap using the standard IMM (α, β)
// formula.
func newController(nSamples []int, epsilon, ell float64, v, k, cap int) (scheduleController, error) {
	if len(nSamples) > 0 {
		s, err := sampler.NewStatic(nSamples)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ConfigError, err)
		}
		return s, nil
	}

	alpha, beta := sampler.IMMAlphaBeta(v, k, ell)
	d, err := sampler.NewDynamic(sampler.DynamicParams{
		Alpha:   alpha,
		Beta:    beta,
		Theta0:  1,
		V:       v,
		K:       k,
		Epsilon: epsilon,
		Ell:     ell,
		Cap:     cap,
	})
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ConfigError, err)
	}
	return d, nil
}
