// Package cerrors classifies every error the engine can surface into
// one of five kinds (ConfigError, InputError, InvariantViolation,
// ResourceExhaustion, NumericOverflow), mirroring the sentinel-error
// policy used throughout the graph packages: callers branch with
// errors.Is/errors.As, never on message text, and context is attached
// with fmt.Errorf("%w", ...) at the call site rather than baked into
// the sentinel.
//
// Every other package defines its own local sentinels (core.Err*,
// cstate.Err*, ...) for the specific condition that failed; cerrors
// only adds the outer classification the CLI driver needs to pick an
// exit code or a severity, via Wrap and KindOf.
package cerrors
