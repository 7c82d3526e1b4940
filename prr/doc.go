// Package prr builds Potentially-Reverse-Reachable sketches: for a
// random center c, the reverse subgraph of nodes that can reach c via
// non-Blocked edges, annotated with the no-boost outcome at every node
// and, for each node, the outcome at c if that node alone were boosted.
//
// A Sampler owns all of its scratch state (membership/distance buffers,
// a propagate.Scratch) and is built once per worker in workerpool,
// reused across every sample it draws — the same pooled-buffer
// discipline as edgecache.Cache and propagate.Scratch.
package prr
