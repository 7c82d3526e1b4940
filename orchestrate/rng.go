package orchestrate

import "math/rand"

// deriveSeed and streamRNG give every sampling worker its own
// independent draw stream from one base seed, the same SplitMix64-style
// mixing this engine's evaluator uses — grounded on the same lvlath
// deriveSeed/deriveRNG discipline, kept as its own small copy here so
// orchestrate stays decoupled from evaluate's internals.
func deriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

func streamRNG(baseSeed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(baseSeed, stream)))
}
