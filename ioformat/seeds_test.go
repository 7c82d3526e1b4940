package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/ioformat"
)

func TestReadSeeds_ParsesBothSets(t *testing.T) {
	input := "2\n0 3\n1\n1\n"
	seeds, err := ioformat.ReadSeeds(strings.NewReader(input), 5)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3}, seeds.Sa())
	assert.Equal(t, []int{1}, seeds.Sr())
}

func TestReadSeeds_AllowsZeroCounts(t *testing.T) {
	input := "0\n\n0\n\n"
	seeds, err := ioformat.ReadSeeds(strings.NewReader(input), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, seeds.Len())
}

func TestReadSeeds_RejectsCountMismatch(t *testing.T) {
	input := "3\n0 1\n0\n\n"
	_, err := ioformat.ReadSeeds(strings.NewReader(input), 5)
	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.InputError, kind)
}

func TestReadSeeds_RejectsOverlap(t *testing.T) {
	input := "1\n2\n1\n2\n"
	_, err := ioformat.ReadSeeds(strings.NewReader(input), 5)
	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.InputError, kind)
}

func TestReadSeeds_RejectsMissingLines(t *testing.T) {
	_, err := ioformat.ReadSeeds(strings.NewReader("1\n"), 5)
	kind, ok := cerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cerrors.InputError, kind)
}
