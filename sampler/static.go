package sampler

import "errors"

// ErrEmptySchedule is returned by NewStatic for a schedule with no
// thresholds.
var ErrEmptySchedule = errors.New("sampler: static schedule is empty")

// ErrNonIncreasingSchedule is returned by NewStatic when the supplied
// thresholds are not strictly increasing and positive.
var ErrNonIncreasingSchedule = errors.New("sampler: static schedule must be strictly increasing and positive")

// Static walks a caller-supplied strictly increasing threshold list
// R1 < R2 < ... < Rm, handing back each Ri in turn as the cumulative
// sample total the pool should reach before the selector runs again.
// Total work across the whole run is Rm, since each step only ever
// grows the pool by Ri - Ri-1.
type Static struct {
	thresholds []int
	next       int
}

// NewStatic validates thresholds and returns a Static schedule over it.
func NewStatic(thresholds []int) (*Static, error) {
	if len(thresholds) == 0 {
		return nil, ErrEmptySchedule
	}
	prev := 0
	for _, r := range thresholds {
		if r <= prev {
			return nil, ErrNonIncreasingSchedule
		}
		prev = r
	}
	return &Static{thresholds: append([]int(nil), thresholds...)}, nil
}

// NextTotal returns the next cumulative sample total to reach, or
// ok=false once every threshold has been consumed.
func (s *Static) NextTotal() (total int, ok bool) {
	if s.next >= len(s.thresholds) {
		return 0, false
	}
	total = s.thresholds[s.next]
	s.next++
	return total, true
}

// Final returns the schedule's last (largest) threshold, Rm.
func (s *Static) Final() int { return s.thresholds[len(s.thresholds)-1] }
