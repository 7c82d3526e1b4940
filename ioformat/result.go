package ioformat

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/c2ic/cerrors"
	"github.com/katalvlaran/c2ic/evaluate"
)

// StateCounts is the per-state mean node count, keyed by name rather
// than cstate.NodeState so the JSON output is self-describing.
type StateCounts struct {
	None    float64 `json:"none"`
	CaPlus  float64 `json:"ca_plus"`
	Ca      float64 `json:"ca"`
	Cr      float64 `json:"cr"`
	CrMinus float64 `json:"cr_minus"`
}

func statesFrom(r evaluate.Result) StateCounts {
	return StateCounts{
		None:    r.Counts[0],
		CaPlus:  r.Counts[1],
		Ca:      r.Counts[2],
		Cr:      r.Counts[3],
		CrMinus: r.Counts[4],
	}
}

// Record is the engine's one output shape: the selected boost set in
// pick order, its total marginal gain split into positive/negative
// components, per-state node counts with and without the boost set
// applied (and their difference), elapsed wall time, and an estimated
// memory footprint in bytes.
type Record struct {
	Boost          []int       `json:"boost"`
	TotalGain      float64     `json:"total_gain"`
	PositiveGain   float64     `json:"positive_gain"`
	NegativeGain   float64     `json:"negative_gain"`
	WithCounts     StateCounts `json:"with_counts"`
	WithoutCounts  StateCounts `json:"without_counts"`
	DiffCounts     StateCounts `json:"diff_counts"`
	ElapsedSeconds float64     `json:"elapsed_seconds"`
	MemoryBytes    uint64      `json:"memory_footprint_bytes"`
}

// NewRecord assembles a Record from a picked boost set, its per-node
// marginal gains (same order as boost), a with/without/diff evaluation,
// elapsed runtime and an estimated memory footprint.
func NewRecord(boost []int, marginals []float64, with, without, diff evaluate.Result, elapsed time.Duration, memBytes uint64) Record {
	var pos, neg float64
	for _, g := range marginals {
		if g > 0 {
			pos += g
		} else {
			neg += g
		}
	}
	return Record{
		Boost:          boost,
		TotalGain:      pos + neg,
		PositiveGain:   pos,
		NegativeGain:   neg,
		WithCounts:     statesFrom(with),
		WithoutCounts:  statesFrom(without),
		DiffCounts:     statesFrom(diff),
		ElapsedSeconds: elapsed.Seconds(),
		MemoryBytes:    memBytes,
	}
}

// WriteResult writes rec to w as indented JSON.
func WriteResult(w io.Writer, rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return cerrors.Wrap(cerrors.InvariantViolation, err)
	}
	_, err = w.Write(data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// WriteResultFile writes rec as indented JSON to a new file at path.
func WriteResultFile(path string, rec Record) error {
	f, err := os.Create(path)
	if err != nil {
		return cerrors.Wrap(cerrors.ConfigError, err)
	}
	defer f.Close()
	return WriteResult(f, rec)
}

// WriteResults writes recs — one Record per requested budget k — to w
// as an indented JSON array.
func WriteResults(w io.Writer, recs []Record) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return cerrors.Wrap(cerrors.InvariantViolation, err)
	}
	_, err = w.Write(data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// WriteResultsFile writes recs as an indented JSON array to a new file
// at path.
func WriteResultsFile(path string, recs []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return cerrors.Wrap(cerrors.ConfigError, err)
	}
	defer f.Close()
	return WriteResults(f, recs)
}
