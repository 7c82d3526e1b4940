// errors.go — sentinel errors for the core package.
//
// Error policy, carried over from lvlath/builder: only sentinel
// variables are exposed; callers branch with errors.Is, never by
// string comparison. Context is attached with fmt.Errorf("%w", ...)
// at the call site, never baked into the sentinel message itself.
package core

import "errors"

// ErrNodeOutOfRange indicates an edge endpoint or node index outside [0, n).
var ErrNodeOutOfRange = errors.New("core: node index out of range")

// ErrInvalidProbability indicates p or pBoost outside [0,1], or p > pBoost.
var ErrInvalidProbability = errors.New("core: invalid edge probability")

// ErrNegativeSize indicates a negative vertex or edge count was requested.
var ErrNegativeSize = errors.New("core: negative size")
