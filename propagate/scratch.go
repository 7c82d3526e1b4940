package propagate

import (
	"math"

	"github.com/katalvlaran/c2ic/cstate"
)

// infDist marks an unreached node's distance, matching brandesBuffers'
// -1-as-infinity sentinel from the betweenness-approximation reference,
// adapted to a non-negative distance domain.
const infDist = math.MaxInt32

// Scratch holds the reusable per-node buffers a single Run call needs:
// state, distance and boosted flags, plus the BFS queue. It is owned by
// exactly one goroutine (one worker, or one PRR Sampler) and reused
// across many Run calls; reset() only clears entries touched by the
// previous run, following the pooled-buffer discipline of the
// betweenness-approximation reference (reset by touched-list, not by
// full-size re-zeroing).
type Scratch struct {
	n       int
	state   []cstate.NodeState
	dist    []int
	boosted []bool
	touched []int
	queue   []int
}

// NewScratch allocates a Scratch sized for a graph of n nodes.
func NewScratch(n int) *Scratch {
	s := &Scratch{n: n}
	s.Resize(n)
	return s
}

// Resize reallocates the scratch for a graph of n nodes, discarding any
// prior state. Call this when the bound graph's node count changes
// (e.g. a worker reused across differently sized graphs in tests).
func (s *Scratch) Resize(n int) {
	s.n = n
	s.state = make([]cstate.NodeState, n)
	s.dist = make([]int, n)
	s.boosted = make([]bool, n)
	s.touched = s.touched[:0]
	s.queue = s.queue[:0]
	for i := range s.dist {
		s.dist[i] = infDist
	}
}

// reset clears only the entries touched by the previous Run, then
// empties the touched list and queue.
func (s *Scratch) reset() {
	for _, v := range s.touched {
		s.state[v] = cstate.None
		s.dist[v] = infDist
		s.boosted[v] = false
	}
	s.touched = s.touched[:0]
	s.queue = s.queue[:0]
}

func (s *Scratch) touch(v int) {
	if s.dist[v] == infDist {
		s.touched = append(s.touched, v)
	}
}
