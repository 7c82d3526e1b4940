// Package saimm implements the SA-IMM collection: a per-center table of
// (boost, totalGain) accumulated across many single-source samples,
// filtered through a threshold into a derived per-boost view that the
// greedy and random-greedy selectors run against directly — no sketch
// list, no contrib reverse index, unlike primm's PR-IMM collection.
package saimm
