package cerrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2ic/cerrors"
)

var errSentinel = errors.New("boom")

func TestWrap_UnwrapsToOriginalSentinel(t *testing.T) {
	err := cerrors.Wrap(cerrors.InputError, errSentinel)
	assert.ErrorIs(t, err, errSentinel)

	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.InputError, kind)
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, cerrors.Wrap(cerrors.ConfigError, nil))
}

func TestKindOf_FalseForPlainError(t *testing.T) {
	_, ok := cerrors.KindOf(errSentinel)
	assert.False(t, ok)
}

func TestFatal_OnlyResourceExhaustionIsNonFatal(t *testing.T) {
	for _, k := range []cerrors.Kind{cerrors.ConfigError, cerrors.InputError, cerrors.InvariantViolation, cerrors.NumericOverflow} {
		assert.True(t, k.Fatal(), k.String())
	}
	assert.False(t, cerrors.ResourceExhaustion.Fatal())
}
