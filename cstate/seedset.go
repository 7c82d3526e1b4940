package cstate

import (
	"fmt"
	"sort"
)

// bitset is a fixed-size membership set over [0,n), packed into 64-bit
// words, offering O(1) test/set independent of cardinality.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int)      { b[i/64] |= 1 << uint(i%64) }
func (b bitset) test(i int) bool { return b[i/64]&(1<<uint(i%64)) != 0 }

// SeedSet holds the two disjoint seed lists Sa (positive) and Sr
// (negative) over [0,n), each kept sorted, with O(1) membership tests
// backed by per-set bitsets.
type SeedSet struct {
	n      int
	sa, sr []int
	inSa   bitset
	inSr   bitset
}

// NewSeedSet validates that sa and sr lie within [0,n) and are disjoint,
// then returns a SeedSet with both lists sorted ascending.
func NewSeedSet(n int, sa, sr []int) (*SeedSet, error) {
	s := &SeedSet{
		n:    n,
		sa:   append([]int(nil), sa...),
		sr:   append([]int(nil), sr...),
		inSa: newBitset(n),
		inSr: newBitset(n),
	}
	sort.Ints(s.sa)
	sort.Ints(s.sr)

	for _, v := range s.sa {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("NewSeedSet: Sa contains %d: %w", v, ErrSeedOutOfRange)
		}
		s.inSa.set(v)
	}
	for _, v := range s.sr {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("NewSeedSet: Sr contains %d: %w", v, ErrSeedOutOfRange)
		}
		if s.inSa.test(v) {
			return nil, fmt.Errorf("NewSeedSet: node %d in both Sa and Sr: %w", v, ErrSeedOverlap)
		}
		s.inSr.set(v)
	}
	return s, nil
}

// Sa returns the sorted positive seed list. Callers must not mutate it.
func (s *SeedSet) Sa() []int { return s.sa }

// Sr returns the sorted negative seed list. Callers must not mutate it.
func (s *SeedSet) Sr() []int { return s.sr }

// IsSa reports whether v is a positive seed.
func (s *SeedSet) IsSa(v int) bool { return s.inSa.test(v) }

// IsSr reports whether v is a negative seed.
func (s *SeedSet) IsSr(v int) bool { return s.inSr.test(v) }

// IsSeed reports whether v is a seed of either polarity.
func (s *SeedSet) IsSeed(v int) bool { return s.inSa.test(v) || s.inSr.test(v) }

// Len returns |Sa|+|Sr|.
func (s *SeedSet) Len() int { return len(s.sa) + len(s.sr) }
