package cstate

import "fmt"

// GainFunc is the λ-parameterized per-state objective contribution:
// None=0, CaPlus=λ, Ca=λ, Cr=λ−1, CrMinus=0.
type GainFunc struct {
	Lambda float64
}

// NewGainFunc validates λ ∈ [0,1] and returns a GainFunc.
func NewGainFunc(lambda float64) (GainFunc, error) {
	if lambda < 0 || lambda > 1 {
		return GainFunc{}, fmt.Errorf("NewGainFunc(%g): %w", lambda, ErrLambdaOutOfRange)
	}
	return GainFunc{Lambda: lambda}, nil
}

// Gain returns the objective contribution of state s.
func (g GainFunc) Gain(s NodeState) float64 {
	switch s {
	case CaPlus, Ca:
		return g.Lambda
	case Cr:
		return g.Lambda - 1
	default: // None, CrMinus
		return 0
	}
}
