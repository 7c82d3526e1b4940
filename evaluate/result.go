package evaluate

// Result is a forward-simulation estimate over some number of trials:
// the mean number of nodes finishing in each reachable state, and the
// mean total objective gain-sum per trial.
type Result struct {
	Counts  [5]float64 // indexed by cstate.NodeState; mean count per trial
	GainSum float64    // mean Σ gain(state(v)) over v, per trial
}

// Diff returns with minus without, state by state and on GainSum.
func (r Result) Diff(without Result) Result {
	var d Result
	for s := range d.Counts {
		d.Counts[s] = r.Counts[s] - without.Counts[s]
	}
	d.GainSum = r.GainSum - without.GainSum
	return d
}

// partial accumulates raw sums across every trial a worker ran; Run
// divides by the trial count once, after every worker's partial is
// merged, to get Result's per-trial means.
type partial struct {
	sumCounts [5]float64
	sumGain   float64
	trials    int
}

func (p *partial) Merge(other *partial) {
	for s := range p.sumCounts {
		p.sumCounts[s] += other.sumCounts[s]
	}
	p.sumGain += other.sumGain
	p.trials += other.trials
}

func (p *partial) result() Result {
	var r Result
	if p.trials == 0 {
		return r
	}
	n := float64(p.trials)
	for s := range r.Counts {
		r.Counts[s] = p.sumCounts[s] / n
	}
	r.GainSum = p.sumGain / n
	return r
}

// PrefixResult is the with/without/diff estimate for one prefix length
// of a selection-ordered boost list.
type PrefixResult struct {
	K       int
	With    Result
	Without Result
	Diff    Result
}
