// Package evaluate runs the forward-simulation estimator used to score
// a candidate boost set after selection: T independent forward
// propagations (no PRR reduction, the real per-edge sampling via
// edgecache.Cache), split across nThreads workers through
// workerpool.Run, each worker owning its own edgecache.Cache and its
// own independent RNG stream.
//
// Independent per-worker streams are grounded on lvlath's tsp/rng.go
// deriveRNG/deriveSeed discipline: "math/rand.Rand is NOT
// goroutine-safe... use deriveRNG to create independent streams for
// parallel restarts or workers" — generalized here from restart streams
// to worker streams.
package evaluate
