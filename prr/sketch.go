package prr

import "github.com/katalvlaran/c2ic/cstate"

// Contrib records, for one node v in a sketch, the state the sketch's
// center would take if v alone were boosted.
type Contrib struct {
	Node    int
	StateTo cstate.NodeState
}

// Sketch is one PRR sample: a center, its no-boost outcome, and the
// per-node centerStateTo annotation for every node in the retained
// reverse-reachable subgraph (including the center itself).
type Sketch struct {
	Center      int
	CenterState cstate.NodeState
	Contrib     []Contrib
}
