package cstate

import "errors"

// ErrInvalidPriority indicates a priority order that is not a permutation
// of {CaPlus, Ca, Cr, CrMinus}.
var ErrInvalidPriority = errors.New("cstate: priority must be a permutation of the four reachable states")

// ErrLambdaOutOfRange indicates λ outside the closed interval [0,1].
var ErrLambdaOutOfRange = errors.New("cstate: lambda must be in [0,1]")

// ErrSeedOutOfRange indicates a seed index outside [0,n).
var ErrSeedOutOfRange = errors.New("cstate: seed index out of range")

// ErrSeedOverlap indicates Sa and Sr are not disjoint.
var ErrSeedOverlap = errors.New("cstate: positive and negative seed sets overlap")
