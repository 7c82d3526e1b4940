package cstate

import "fmt"

// Priority is a total order over {CaPlus, Ca, Cr, CrMinus}, with None
// always ranked lowest. It resolves the source's two co-existing
// comparator paths (a free function and an operator overload, per the
// design notes) into one canonical representation: a rank table indexed
// by NodeState, built once from a caller-supplied highest-to-lowest order.
type Priority struct {
	rank [5]int // indexed by NodeState; higher rank == higher priority
}

// reachableStates enumerates the four states a Priority permutation must
// cover exactly once.
var reachableStates = [4]NodeState{CaPlus, Ca, Cr, CrMinus}

// NewPriority builds a Priority from order, given highest priority first.
// order must be a permutation of {CaPlus, Ca, Cr, CrMinus}.
func NewPriority(order [4]NodeState) (Priority, error) {
	var seen [5]bool
	for _, s := range order {
		if s == None || s > CrMinus || seen[s] {
			return Priority{}, fmt.Errorf("NewPriority(%v): %w", order, ErrInvalidPriority)
		}
		seen[s] = true
	}
	for _, s := range reachableStates {
		if !seen[s] {
			return Priority{}, fmt.Errorf("NewPriority(%v): %w", order, ErrInvalidPriority)
		}
	}

	var p Priority
	n := len(order)
	for i, s := range order {
		// order[0] is highest priority; rank it n, down to 1 for order[n-1].
		p.rank[s] = n - i
	}
	// None is never reachable via priority comparisons against a real
	// state, but giving it rank 0 keeps Rank(None) < Rank(anything) true
	// if a caller compares it anyway.
	p.rank[None] = 0
	return p, nil
}

// Rank returns the configured rank of s; higher means higher priority.
func (p Priority) Rank(s NodeState) int { return p.rank[s] }

// Greater reports whether a has strictly higher priority than b.
func (p Priority) Greater(a, b NodeState) bool { return p.rank[a] > p.rank[b] }

// Less reports whether a has strictly lower priority than b.
func (p Priority) Less(a, b NodeState) bool { return p.rank[a] < p.rank[b] }

// Max returns whichever of a, b has higher priority (a on ties).
func (p Priority) Max(a, b NodeState) NodeState {
	if p.rank[b] > p.rank[a] {
		return b
	}
	return a
}
