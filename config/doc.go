// Package config parses the engine's CLI/file/env configuration into
// one immutable value, following the corpus's viper-backed config.Load
// pattern (perf-analysis's pkg/config: SetDefault, ReadInConfig,
// AutomaticEnv, Unmarshal) combined with cobra flag registration in the
// style of its cmd/cli/cmd/analyze.go. Every validation failure raises
// a cerrors.ConfigError; nothing here derives a priority's monotone/
// submodular class at runtime — that mapping is a fixed lookup table
// (see priorityclass.go), per design note.
package config
