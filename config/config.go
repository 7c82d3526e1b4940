package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/cstate"
)

// Raw is every CLI/file/env field the engine consumes, held as plain
// strings/numbers prior to validation — the shape viper unmarshals
// into and cobra flags bind onto directly.
type Raw struct {
	GraphPath   string `mapstructure:"graph_path" yaml:"graph_path"`
	SeedSetPath string `mapstructure:"seed_set_path" yaml:"seed_set_path"`
	K           string `mapstructure:"k" yaml:"k"`               // "5" or "5,10,20" (strictly increasing)
	Priority    string `mapstructure:"priority" yaml:"priority"` // e.g. "ca+,ca,cr,cr-"
	Algo        string `mapstructure:"algo" yaml:"algo"`

	Lambda float64 `mapstructure:"lambda" yaml:"lambda"`

	NSamples   string `mapstructure:"n_samples" yaml:"n_samples"`      // static PR-IMM schedule
	NSamplesSA string `mapstructure:"n_samples_sa" yaml:"n_samples_sa"` // static SA-IMM schedule

	SampleLimit       int     `mapstructure:"sample_limit" yaml:"sample_limit"`
	SampleLimitSA     int     `mapstructure:"sample_limit_sa" yaml:"sample_limit_sa"`
	SampleDistLimitSA int     `mapstructure:"sample_dist_limit_sa" yaml:"sample_dist_limit_sa"`
	Epsilon           float64 `mapstructure:"epsilon" yaml:"epsilon"`
	EpsilonSA         float64 `mapstructure:"epsilon_sa" yaml:"epsilon_sa"`
	Ell               float64 `mapstructure:"ell" yaml:"ell"`
	GainThresholdSA   float64 `mapstructure:"gain_threshold_sa" yaml:"gain_threshold_sa"`

	TestTimes       int `mapstructure:"test_times" yaml:"test_times"`
	GreedyTestTimes int `mapstructure:"greedy_test_times" yaml:"greedy_test_times"`
	NThreads        int `mapstructure:"n_threads" yaml:"n_threads"`
}

// DumpYAML renders r as YAML, for a --dump-config diagnostic flag that
// shows the fully-resolved configuration (flags merged over defaults)
// before a run.
func (r *Raw) DumpYAML() (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", cerrors.Wrap(cerrors.ConfigError, err)
	}
	return string(data), nil
}

// validAlgos enumerates the §6 `algo` flag's accepted values.
var validAlgos = map[string]bool{
	"auto": true, "pr-imm": true, "sa-imm": true, "sa-rg-imm": true,
	"greedy": true, "max-degree": true, "page-rank": true,
}

// Defaults returns a Raw populated with every optional field's default
// value; required fields (GraphPath, SeedSetPath, K, Priority) are left
// zero and must be supplied by the caller.
func Defaults() *Raw {
	return &Raw{
		Algo:            "auto",
		Lambda:          0.5,
		Epsilon:         0.1,
		EpsilonSA:       0.1,
		Ell:             1.0,
		GainThresholdSA: 0.0,
		TestTimes:       10000,
		GreedyTestTimes: 10000,
		NThreads:        0, // 0 => workerpool falls back to runtime.NumCPU()
	}
}

// priorityTokens maps every accepted spelling of a reachable state to
// its cstate.NodeState, case-insensitively.
var priorityTokens = map[string]cstate.NodeState{
	"ca+": cstate.CaPlus, "caplus": cstate.CaPlus,
	"ca": cstate.Ca,
	"cr": cstate.Cr,
	"cr-": cstate.CrMinus, "crminus": cstate.CrMinus,
}

// parsePriority parses a comma-separated, highest-to-lowest priority
// string into a cstate.Priority.
func parsePriority(s string) (cstate.Priority, [4]cstate.NodeState, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return cstate.Priority{}, [4]cstate.NodeState{}, cerrors.New(cerrors.ConfigError, fmt.Sprintf("config: priority %q must list exactly 4 comma-separated states", s))
	}
	var order [4]cstate.NodeState
	for i, p := range parts {
		st, ok := priorityTokens[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return cstate.Priority{}, [4]cstate.NodeState{}, cerrors.New(cerrors.ConfigError, fmt.Sprintf("config: unrecognized priority token %q", p))
		}
		order[i] = st
	}
	pri, err := cstate.NewPriority(order)
	if err != nil {
		return cstate.Priority{}, [4]cstate.NodeState{}, cerrors.Wrap(cerrors.ConfigError, err)
	}
	return pri, order, nil
}

// parseIntList parses a comma-separated list of positive ints, requiring
// strictly increasing order. An empty string returns (nil, nil).
func parseIntList(s, label string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ConfigError, fmt.Errorf("config: malformed %s value %q: %w", label, p, err))
		}
		if v <= 0 {
			return nil, cerrors.New(cerrors.ConfigError, fmt.Sprintf("config: %s value %d must be positive", label, v))
		}
		if i > 0 && v <= out[i-1] {
			return nil, cerrors.New(cerrors.ConfigError, fmt.Sprintf("config: %s must be strictly increasing, got %v", label, parts))
		}
		out[i] = v
	}
	return out, nil
}

// Built is the validated, immutable configuration every downstream
// package consumes — no process-wide mutable singleton, threaded
// through cmd/c2ic by parameter per spec.md §9's design note.
type Built struct {
	GraphPath   string
	SeedSetPath string
	K           []int
	Algo        string
	NThreads    int

	Cfg cstate.Config

	NSamples   []int
	NSamplesSA []int

	SampleLimit       int
	SampleLimitSA     int
	SampleDistLimitSA int
	Epsilon           float64
	EpsilonSA         float64
	Ell               float64
	GainThresholdSA   float64
	TestTimes         int
	GreedyTestTimes   int
}

// ResolvedAlgo returns r's algo, replacing "auto" per the §6 lookup:
// Monotone priorities resolve to "pr-imm"; every other class (including
// an unrecognized permutation) falls back to the strictly-safe
// "sa-rg-imm", whose 1/e bound holds for non-monotone objectives.
func ResolvedAlgo(algo string, class cstate.PriorityClass) string {
	if algo != "auto" {
		return algo
	}
	if class == cstate.Monotone {
		return "pr-imm"
	}
	return "sa-rg-imm"
}

// Validate checks every §7 ConfigError condition and returns nil if r
// is well-formed. It does not parse Priority/K into their final forms;
// Build does that and returns the same errors in the process.
func (r *Raw) Validate() error {
	if r.GraphPath == "" {
		return cerrors.New(cerrors.ConfigError, "config: graph-path is required")
	}
	if r.SeedSetPath == "" {
		return cerrors.New(cerrors.ConfigError, "config: seed-set-path is required")
	}
	if strings.TrimSpace(r.K) == "" {
		return cerrors.New(cerrors.ConfigError, "config: k is required")
	}
	if strings.TrimSpace(r.Priority) == "" {
		return cerrors.New(cerrors.ConfigError, "config: priority is required")
	}
	if !validAlgos[r.Algo] {
		return cerrors.New(cerrors.ConfigError, fmt.Sprintf("config: unrecognized algo %q", r.Algo))
	}
	if r.Lambda < 0 || r.Lambda > 1 {
		return cerrors.New(cerrors.ConfigError, fmt.Sprintf("config: lambda %g out of [0,1]", r.Lambda))
	}
	if r.Epsilon <= 0 || r.EpsilonSA <= 0 {
		return cerrors.New(cerrors.ConfigError, "config: epsilon and epsilon-sa must be > 0")
	}
	if r.Ell <= 0 {
		return cerrors.New(cerrors.ConfigError, "config: ell must be > 0")
	}
	return nil
}

// Build validates r and assembles the immutable Built configuration.
func (r *Raw) Build() (Built, error) {
	if err := r.Validate(); err != nil {
		return Built{}, err
	}

	k, err := parseIntList(r.K, "k")
	if err != nil {
		return Built{}, err
	}
	if len(k) == 0 {
		return Built{}, cerrors.New(cerrors.ConfigError, "config: k must name at least one positive budget")
	}

	pri, order, err := parsePriority(r.Priority)
	if err != nil {
		return Built{}, err
	}
	gain, err := cstate.NewGainFunc(r.Lambda)
	if err != nil {
		return Built{}, cerrors.Wrap(cerrors.ConfigError, err)
	}

	class := ClassOf(order)

	nSamples, err := parseIntList(r.NSamples, "n-samples")
	if err != nil {
		return Built{}, err
	}
	nSamplesSA, err := parseIntList(r.NSamplesSA, "n-samples-sa")
	if err != nil {
		return Built{}, err
	}

	return Built{
		GraphPath:   r.GraphPath,
		SeedSetPath: r.SeedSetPath,
		K:           k,
		Algo:        ResolvedAlgo(r.Algo, class),
		NThreads:    r.NThreads,
		Cfg:         cstate.Config{Priority: pri, Gain: gain, Class: class},
		NSamples:    nSamples,
		NSamplesSA:  nSamplesSA,

		SampleLimit:       r.SampleLimit,
		SampleLimitSA:     r.SampleLimitSA,
		SampleDistLimitSA: r.SampleDistLimitSA,
		Epsilon:           r.Epsilon,
		EpsilonSA:         r.EpsilonSA,
		Ell:               r.Ell,
		GainThresholdSA:   r.GainThresholdSA,
		TestTimes:         r.TestTimes,
		GreedyTestTimes:   r.GreedyTestTimes,
	}, nil
}
