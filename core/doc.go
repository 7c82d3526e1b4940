// Package core defines the directed propagation graph the C2IC engine
// samples and simulates over: a fixed set of nodes and edges, laid out
// as contiguous index-addressed slices with CSR-style forward and
// reverse adjacency.
//
// Unlike lvlath's core.Graph (a mutable, mutex-guarded map-of-maps meant
// for incremental construction), a propagation Graph is immutable once
// built: node and edge indices are dense in [0,|V|) / [0,|E|) and never
// renumbered, so no locking is needed to read it concurrently from many
// workers.
package core
