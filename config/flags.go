package config

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/c2ic/cerrors"
)

// RegisterFlags binds every §6 CLI field onto cmd's flag set, writing
// into raw — the same StringVar/IntVar/Float64Var idiom the corpus's
// cobra command registration uses. Call Build on raw once cmd has
// parsed its arguments.
func RegisterFlags(cmd *cobra.Command, raw *Raw) {
	f := cmd.Flags()

	f.StringVar(&raw.GraphPath, "graph-path", raw.GraphPath, "path to the graph file (required)")
	f.StringVar(&raw.SeedSetPath, "seed-set-path", raw.SeedSetPath, "path to the seed-set file (required)")
	f.StringVar(&raw.K, "k", raw.K, "budget: a positive integer, or a strictly increasing comma-separated list (required)")
	f.StringVar(&raw.Priority, "priority", raw.Priority, "comma-separated permutation of ca+,ca,cr,cr- from highest to lowest priority (required)")
	f.StringVar(&raw.Algo, "algo", raw.Algo, "auto|pr-imm|sa-imm|sa-rg-imm|greedy|max-degree|page-rank")

	f.Float64Var(&raw.Lambda, "lambda", raw.Lambda, "trade-off lambda in [0,1]")

	f.StringVar(&raw.NSamples, "n-samples", raw.NSamples, "static PR-IMM sample-size schedule, comma-separated increasing totals")
	f.StringVar(&raw.NSamplesSA, "n-samples-sa", raw.NSamplesSA, "static SA-IMM sample-size schedule, comma-separated increasing totals")

	f.IntVar(&raw.SampleLimit, "sample-limit", raw.SampleLimit, "PR-IMM sample cap (0 = unbounded)")
	f.IntVar(&raw.SampleLimitSA, "sample-limit-sa", raw.SampleLimitSA, "SA-IMM sample cap (0 = unbounded)")
	f.IntVar(&raw.SampleDistLimitSA, "sample-dist-limit-sa", raw.SampleDistLimitSA, "SA-IMM candidate-center BFS distance limit from seeds (0 = unbounded)")
	f.Float64Var(&raw.Epsilon, "epsilon", raw.Epsilon, "PR-IMM dynamic sample-size controller epsilon")
	f.Float64Var(&raw.EpsilonSA, "epsilon-sa", raw.EpsilonSA, "SA-IMM dynamic sample-size controller epsilon")
	f.Float64Var(&raw.Ell, "ell", raw.Ell, "confidence parameter ell")
	f.Float64Var(&raw.GainThresholdSA, "gain-threshold-sa", raw.GainThresholdSA, "SA-IMM per-boost average gain threshold tau")

	f.IntVar(&raw.TestTimes, "test-times", raw.TestTimes, "evaluator trial count")
	f.IntVar(&raw.GreedyTestTimes, "greedy-test-times", raw.GreedyTestTimes, "greedy-baseline evaluator trial count")
	f.IntVar(&raw.NThreads, "n-threads", raw.NThreads, "worker count (0 = runtime.NumCPU())")

	cmd.MarkFlagRequired("graph-path")
	cmd.MarkFlagRequired("seed-set-path")
	cmd.MarkFlagRequired("k")
	cmd.MarkFlagRequired("priority")
}

// LoadFile reads an optional YAML/JSON config file at path into a Raw
// seeded from Defaults, then lets environment variables prefixed
// C2IC_ override any field, following the corpus's viper Load pattern
// (SetDefault per field, ReadInConfig tolerant of a missing file,
// AutomaticEnv, Unmarshal). An empty path skips the file read entirely.
func LoadFile(path string) (*Raw, error) {
	v := viper.New()
	seedDefaults(v, Defaults())
	v.SetEnvPrefix("c2ic")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, cerrors.Wrap(cerrors.ConfigError, err)
			}
		}
	}

	var raw Raw
	if err := v.Unmarshal(&raw); err != nil {
		return nil, cerrors.Wrap(cerrors.ConfigError, err)
	}
	return &raw, nil
}

// LoadBytes parses content (in configType's format, e.g. "yaml" or
// "json") into a Raw seeded from Defaults, for tests and embedded
// configuration.
func LoadBytes(configType string, content []byte) (*Raw, error) {
	v := viper.New()
	seedDefaults(v, Defaults())
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, cerrors.Wrap(cerrors.ConfigError, err)
	}

	var raw Raw
	if err := v.Unmarshal(&raw); err != nil {
		return nil, cerrors.Wrap(cerrors.ConfigError, err)
	}
	return &raw, nil
}

func seedDefaults(v *viper.Viper, d *Raw) {
	v.SetDefault("algo", d.Algo)
	v.SetDefault("lambda", d.Lambda)
	v.SetDefault("epsilon", d.Epsilon)
	v.SetDefault("epsilon_sa", d.EpsilonSA)
	v.SetDefault("ell", d.Ell)
	v.SetDefault("gain_threshold_sa", d.GainThresholdSA)
	v.SetDefault("test_times", d.TestTimes)
	v.SetDefault("greedy_test_times", d.GreedyTestTimes)
	v.SetDefault("n_threads", d.NThreads)
}
