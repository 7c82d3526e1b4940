// Package cmd is the cobra command layer for the c2ic binary: flag
// registration and the single RunE that drives a selection run end to
// end. Everything past config.Built lives in orchestrate and knows
// nothing about cobra.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/c2ic/c2iclog"
	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/config"
	"github.com/katalvlaran/c2ic/orchestrate"
)

var (
	outPath    string
	logLevel   string
	dumpConfig bool

	raw = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "c2ic",
	Short: "Complementary and competitive influence maximization engine",
	Long: `c2ic selects a boost set for a complementary/competitive influence
propagation graph and reports its simulated gain at one or more budgets.

It picks a selection algorithm automatically from the requested priority
order (pr-imm for monotone orders, sa-rg-imm otherwise) unless --algo
names one explicitly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command, exiting non-zero per §7: ConfigError
// and InputError before any work starts, InvariantViolation/
// NumericOverflow if the core breaks its own contract mid-run.
// ResourceExhaustion is logged by the orchestrator itself and never
// surfaces as an error here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd, raw)
	rootCmd.Flags().StringVar(&outPath, "out-path", "", "write the result records here instead of stdout")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.Flags().BoolVar(&dumpConfig, "dump-config", false, "print the fully-resolved configuration as YAML and exit")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if dumpConfig {
		text, err := raw.DumpYAML()
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	}

	built, err := raw.Build()
	if err != nil {
		return err
	}

	log := c2iclog.New(c2iclog.ParseLevel(logLevel), os.Stderr)

	out := os.Stdout
	if outPath != "" {
		f, ferr := os.Create(outPath)
		if ferr != nil {
			return cerrors.Wrap(cerrors.ConfigError, ferr)
		}
		defer f.Close()
		out = f
	}

	baseSeed := time.Now().UnixNano()
	if err := orchestrate.Run(built, baseSeed, log, out); err != nil {
		log.Error("run failed: %v", err)
		return err
	}
	return nil
}
