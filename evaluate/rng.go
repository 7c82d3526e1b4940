package evaluate

import "math/rand"

// deriveSeed mixes a base seed and a stream id into an independent
// 64-bit seed via a SplitMix64-style avalanche finalizer, so that
// nearby (baseSeed, stream) pairs produce decorrelated output.
func deriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns an independent *rand.Rand for worker stream id,
// derived from baseSeed. Every worker in a Run call gets a distinct
// stream id, so no two workers' draws correlate even though they all
// trace back to the same baseSeed.
func streamRNG(baseSeed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(baseSeed, stream)))
}
