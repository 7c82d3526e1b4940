// Package primm implements the PR-IMM collection: an append-only store
// of PRR sketches plus the per-node reverse index (contrib) and
// marginal-gain table (totalGain) that the greedy selector needs to
// pick a boost set without ever re-walking the sketch list.
//
// add drops a sketch entirely when no node in it has positive marginal
// gain; every remaining sketch is assigned a stable id equal to its
// position in the collection's own sketch list, and that id is what
// merge shifts when concatenating two collections built by different
// workers.
package primm
