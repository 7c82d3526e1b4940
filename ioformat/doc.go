// Package ioformat reads the engine's two plain-text input formats
// (graph, seed set) and writes its one JSON result record, grounded on
// the corpus's bufio.Scanner line-oriented parsing style (see
// perf-analysis's collapsed-stack parser) generalized from a streaming
// trace format to the engine's fixed two-line-header layouts.
//
// Graph format: first line "V E"; then E lines "u v p pBoost".
// Seed format: line Na; line of Na indices; line Nr; line of Nr indices.
package ioformat
