package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/cstate"
)

// ReadSeeds parses the seed-set format from r: a line Na, a line of Na
// indices, a line Nr, a line of Nr indices, validated against a graph
// of n nodes. Every failure is a cerrors.InputError.
func ReadSeeds(r io.Reader, n int) (*cstate.SeedSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	sa, err := readCountedIndices(sc, "Sa")
	if err != nil {
		return nil, err
	}
	sr, err := readCountedIndices(sc, "Sr")
	if err != nil {
		return nil, err
	}

	seeds, err := cstate.NewSeedSet(n, sa, sr)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.InputError, err)
	}
	return seeds, nil
}

// readCountedIndices reads a count line followed by a line of that many
// space-separated indices. label names the set in error messages.
func readCountedIndices(sc *bufio.Scanner, label string) ([]int, error) {
	if !sc.Scan() {
		return nil, cerrors.New(cerrors.InputError, fmt.Sprintf("ioformat: missing %s count line", label))
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, cerrors.Wrap(cerrors.InputError, fmt.Errorf("ioformat: malformed %s count %q: %w", label, sc.Text(), err))
	}
	if count < 0 {
		return nil, cerrors.New(cerrors.InputError, fmt.Sprintf("ioformat: negative %s count %d", label, count))
	}
	if count == 0 {
		if sc.Scan() {
			fields := strings.Fields(sc.Text())
			if len(fields) != 0 {
				return nil, cerrors.New(cerrors.InputError, fmt.Sprintf("ioformat: %s count 0 but index line is non-empty", label))
			}
		}
		return nil, nil
	}

	if !sc.Scan() {
		return nil, cerrors.New(cerrors.InputError, fmt.Sprintf("ioformat: missing %s index line", label))
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != count {
		return nil, cerrors.New(cerrors.InputError, fmt.Sprintf("ioformat: %s declares %d indices, found %d", label, count, len(fields)))
	}
	out := make([]int, count)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.InputError, fmt.Errorf("ioformat: malformed %s index %q: %w", label, f, err))
		}
		out[i] = v
	}
	return out, nil
}

// ReadSeedsFile opens path and parses it as a seed-set file.
func ReadSeedsFile(path string, n int) (*cstate.SeedSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.InputError, err)
	}
	defer f.Close()
	return ReadSeeds(f, n)
}
