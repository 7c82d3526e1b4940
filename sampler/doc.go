// Package sampler implements the two sample-size controllers the
// selection algorithms run under: a static schedule of caller-supplied
// thresholds, and an IMM-style dynamic doubling schedule with an
// early-stop test.
//
// Neither controller touches sketches, collections, or selectors
// directly — both are plain iterators over "how many sketches should
// exist now", leaving the caller (the worker pool driving a PR-IMM or
// SA-IMM collection) to grow the sample pool and run select() at each
// step. This keeps the controllers trivially testable and keeps
// sampler free of a dependency on prr/primm/saimm.
package sampler
