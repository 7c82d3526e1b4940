package orchestrate

import (
	"fmt"

	"github.com/katalvlaran/c2ic/baseline"
	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/config"
	"github.com/katalvlaran/c2ic/core"
	"github.com/katalvlaran/c2ic/cstate"
)

// pageRankDamping and pageRankTol are gonum's
// network.PageRankWeighted parameters; the CLI has no field for either, so they're fixed at the
// package's own conventional defaults.
const (
	pageRankDamping = 0.85
	pageRankTol     = 1e-6
)

// runBaseline dispatches to the two pure comparison heuristics, neither
// of which touches the sampling/selection core.
func runBaseline(g *core.Graph, seeds *cstate.SeedSet, built config.Built) ([]int, error) {
	kMax := built.K[len(built.K)-1]
	switch built.Algo {
	case "max-degree":
		return baseline.MaxDegree(g, seeds.IsSeed, kMax), nil
	case "page-rank":
		return baseline.PageRank(g, seeds.IsSeed, kMax, pageRankDamping, pageRankTol), nil
	default:
		return nil, cerrors.New(cerrors.ConfigError, fmt.Sprintf("orchestrate: %q is not a baseline algo", built.Algo))
	}
}
