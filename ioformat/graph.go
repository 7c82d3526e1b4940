package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/core"
)

// ReadGraph parses the graph format from r: a header line "V E"
// followed by E lines "u v p pBoost". Every failure is a
// cerrors.InputError.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, cerrors.New(cerrors.InputError, "ioformat: empty graph input, expected \"V E\" header")
	}
	var numNodes, numEdges int
	if _, err := fmt.Sscanf(sc.Text(), "%d %d", &numNodes, &numEdges); err != nil {
		return nil, cerrors.Wrap(cerrors.InputError, fmt.Errorf("ioformat: malformed graph header %q: %w", sc.Text(), err))
	}

	b, err := core.NewBuilder(numNodes)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.InputError, err)
	}

	for i := 0; i < numEdges; i++ {
		if !sc.Scan() {
			return nil, cerrors.New(cerrors.InputError, fmt.Sprintf("ioformat: expected %d edge lines, found %d", numEdges, i))
		}
		var u, v int
		var p, pBoost float64
		if _, err := fmt.Sscanf(sc.Text(), "%d %d %f %f", &u, &v, &p, &pBoost); err != nil {
			return nil, cerrors.Wrap(cerrors.InputError, fmt.Errorf("ioformat: malformed edge line %q: %w", sc.Text(), err))
		}
		if _, err := b.AddEdge(u, v, p, pBoost); err != nil {
			return nil, cerrors.Wrap(cerrors.InputError, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, cerrors.Wrap(cerrors.InputError, err)
	}
	return b.Build(), nil
}

// ReadGraphFile opens path and parses it as a graph file.
func ReadGraphFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.InputError, err)
	}
	defer f.Close()
	return ReadGraph(f)
}
