package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/config"
	"github.com/katalvlaran/c2ic/cstate"
)

func validRaw() *config.Raw {
	r := config.Defaults()
	r.GraphPath = "graph.txt"
	r.SeedSetPath = "seeds.txt"
	r.K = "5,10"
	r.Priority = "ca+,ca,cr,cr-"
	return r
}

func TestBuild_ParsesPriorityAndK(t *testing.T) {
	r := validRaw()
	built, err := r.Build()
	require.NoError(t, err)

	assert.Equal(t, []int{5, 10}, built.K)
	assert.Equal(t, cstate.Monotone, built.Cfg.Class)
	assert.Equal(t, "pr-imm", built.Algo, "auto resolves to pr-imm under a monotone priority")
}

func TestBuild_NonMonotonePriorityFallsBackToSafeRandomGreedy(t *testing.T) {
	r := validRaw()
	r.Priority = "ca+,cr-,ca,cr" // interleaved: not in the canonical monotone set
	built, err := r.Build()
	require.NoError(t, err)

	assert.Equal(t, cstate.NonMonotone, built.Cfg.Class)
	assert.Equal(t, "sa-rg-imm", built.Algo)
}

func TestBuild_ExplicitAlgoIsNotOverridden(t *testing.T) {
	r := validRaw()
	r.Algo = "greedy"
	built, err := r.Build()
	require.NoError(t, err)
	assert.Equal(t, "greedy", built.Algo)
}

func TestValidate_RejectsMissingRequiredFields(t *testing.T) {
	r := config.Defaults()
	_, err := r.Build()
	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.ConfigError, kind)
}

func TestValidate_RejectsUnknownAlgo(t *testing.T) {
	r := validRaw()
	r.Algo = "bogus"
	_, err := r.Build()
	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.ConfigError, kind)
}

func TestValidate_RejectsLambdaOutOfRange(t *testing.T) {
	r := validRaw()
	r.Lambda = 1.5
	_, err := r.Build()
	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.ConfigError, kind)
}

func TestBuild_RejectsNonIncreasingKList(t *testing.T) {
	r := validRaw()
	r.K = "10,5"
	_, err := r.Build()
	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.ConfigError, kind)
}

func TestBuild_RejectsMalformedPriorityToken(t *testing.T) {
	r := validRaw()
	r.Priority = "ca+,ca,cr,nope"
	_, err := r.Build()
	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.ConfigError, kind)
}

func TestLoadBytes_OverlaysOntoDefaults(t *testing.T) {
	yaml := []byte("graph_path: g.txt\nseed_set_path: s.txt\nk: \"3\"\npriority: \"ca+,ca,cr,cr-\"\nlambda: 0.7\n")
	raw, err := config.LoadBytes("yaml", yaml)
	require.NoError(t, err)

	assert.Equal(t, "g.txt", raw.GraphPath)
	assert.InDelta(t, 0.7, raw.Lambda, 1e-9)
	assert.Equal(t, 10000, raw.TestTimes, "unset fields keep their seeded default")
}

func TestDumpYAML_RoundTripsThroughLoadBytes(t *testing.T) {
	r := validRaw()
	r.Lambda = 0.3

	text, err := r.DumpYAML()
	require.NoError(t, err)
	assert.Contains(t, text, "graph_path: graph.txt")

	reloaded, err := config.LoadBytes("yaml", []byte(text))
	require.NoError(t, err)
	assert.Equal(t, r.GraphPath, reloaded.GraphPath)
	assert.InDelta(t, 0.3, reloaded.Lambda, 1e-9)
}

func TestClassOf_RecognizesAllFourCanonicalMonotoneOrders(t *testing.T) {
	monotone := [][4]cstate.NodeState{
		{cstate.CaPlus, cstate.Ca, cstate.Cr, cstate.CrMinus},
		{cstate.CaPlus, cstate.Ca, cstate.CrMinus, cstate.Cr},
		{cstate.Ca, cstate.CaPlus, cstate.Cr, cstate.CrMinus},
		{cstate.Ca, cstate.CaPlus, cstate.CrMinus, cstate.Cr},
	}
	for _, order := range monotone {
		assert.Equal(t, cstate.Monotone, config.ClassOf(order))
	}
	assert.Equal(t, cstate.NonMonotone, config.ClassOf([4]cstate.NodeState{cstate.CaPlus, cstate.Cr, cstate.Ca, cstate.CrMinus}))
}
