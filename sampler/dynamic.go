package sampler

import (
	"errors"
	"math"
)

// ErrInvalidDynamicParams is returned by NewDynamic when a parameter is
// out of the range the doubling formula requires.
var ErrInvalidDynamicParams = errors.New("sampler: invalid dynamic controller parameters")

// DynamicParams configures the IMM-style dynamic sample-size
// controller: the (α, β) approximation-quality constants, the initial
// threshold θ0, graph size |V|, budget k (carried through only for
// documentation of the caller's select(k) calls), ε, ℓ and an optional
// sample cap (0 disables capping).
type DynamicParams struct {
	Alpha, Beta float64
	Theta0      float64
	V           int
	K           int
	Epsilon     float64
	Ell         float64
	Cap         int
}

func (p DynamicParams) validate() error {
	if p.V <= 0 || p.Epsilon <= 0 || p.Theta0 <= 0 {
		return ErrInvalidDynamicParams
	}
	return nil
}

type dynamicPhase int

const (
	phaseDoubling dynamicPhase = iota
	phaseFinal
	phaseDone
)

// Dynamic drives the IMM doubling schedule: a sequence of geometrically
// growing totals, each followed by a select(k) call whose average gain
// S is fed back via Observe, until the early-stop test is satisfied (or
// the doubling budget ⌊log2|V|⌋ is exhausted); then one final total
// θ* = 2|V|(α+β)²/(LB·ε²), capped, is emitted.
type Dynamic struct {
	p DynamicParams

	phase   dynamicPhase
	theta   float64
	i       int
	maxIter int
	lastLB  float64
}

// NewDynamic validates p and returns a Dynamic controller at its first
// doubling step.
func NewDynamic(p DynamicParams) (*Dynamic, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Dynamic{
		p:       p,
		theta:   p.Theta0,
		maxIter: int(math.Log2(float64(p.V))),
	}, nil
}

func (d *Dynamic) capped(total float64) int {
	if d.p.Cap > 0 && total > float64(d.p.Cap) {
		total = float64(d.p.Cap)
	}
	return int(total)
}

// NextTotal returns the next cumulative sample total the pool should
// reach, or ok=false once the schedule is finished. Every NextTotal
// call (other than the final one) must be followed by a call to
// Observe reporting the selector's average gain at that total before
// NextTotal is called again.
func (d *Dynamic) NextTotal() (total int, ok bool) {
	switch d.phase {
	case phaseDoubling:
		if d.i >= d.maxIter {
			// Doubling budget exhausted without an early stop: fall
			// back to the last observed lower bound.
			d.phase = phaseDone
			return d.finalTotal(), true
		}
		d.i++
		d.theta *= 2
		return d.capped(d.theta), true
	case phaseFinal:
		total = d.finalTotal()
		d.phase = phaseDone
		return total, true
	default:
		return 0, false
	}
}

func (d *Dynamic) finalTotal() int {
	thetaStar := 2 * float64(d.p.V) * (d.p.Alpha + d.p.Beta) * (d.p.Alpha + d.p.Beta) / (d.lastLB * d.p.Epsilon * d.p.Epsilon)
	return d.capped(thetaStar)
}

// Observe reports the selector's average gain S at the total most
// recently returned by NextTotal, during the doubling phase. If S
// clears the early-stop threshold (1+√2ε)/2^i, the lower bound LB is
// fixed from S and the controller moves to its one final step.
func (d *Dynamic) Observe(avgGain float64) {
	if d.phase != phaseDoubling {
		return
	}
	denom := 1 + math.Sqrt2*d.p.Epsilon
	d.lastLB = avgGain * float64(d.p.V) / denom
	threshold := denom / math.Pow(2, float64(d.i))
	if avgGain >= threshold {
		d.phase = phaseFinal
	}
}
