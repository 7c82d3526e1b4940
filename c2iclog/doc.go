// Package c2iclog implements the engine's structured logger, grounded
// on perf-analysis's pkg/utils.Logger: a level-filtered, field-tagged
// writer with Debug/Info/Warn/Error and WithField/WithFields for
// attaching structured context (round number, sketch count, ...).
//
// Unlike the teacher, this package exposes no process-wide mutable
// global logger instance — every caller builds and threads its own
// Logger value, consistent with the engine's "no process-wide mutable
// singletons" design note applied beyond just the priority/gain tables.
package c2iclog
