// Package edgecache implements the per-edge random-state memo every PRR
// sample and forward propagation reads from: a lazy-invalidation cache
// keyed by a single epoch counter, grounded on lvlath's thread-local RNG
// discipline (tsp/rng.go: "math/rand.Rand is NOT goroutine-safe... use
// deriveRNG to create independent streams for parallel restarts or
// workers").
//
// A Cache is never shared across goroutines. Each worker in workerpool
// owns exactly one, seeded from a root seed mixed with its worker id.
package edgecache
