// Package cstate holds the C2IC engine's shared, immutable vocabulary:
// the four-state message lattice (NodeState), the three-outcome edge
// sample space (EdgeState), a configured total order over the states
// (Priority), the λ-parameterized gain function, and the seed-set
// membership structure every other package reads but never mutates.
//
// Nothing here is a process-wide singleton: callers build one Config
// value from CLI/config input and thread it through the sampler,
// collections and evaluator by parameter, per the "no global mutable
// priority/gain tables" design note this engine follows.
package cstate
