// Package export writes traces in formats for external tooling.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/ecosim/internal/trace"
)

// TraceData is the JSON shape of an exported trace.
type TraceData struct {
	Species     int         `json:"species"`
	Snapshots   int         `json:"snapshots"`
	Times       []float64   `json:"times"`
	Populations [][]float64 `json:"populations"`
}

// JSON writes an indented JSON dump of the trace.
func JSON(w io.Writer, tr *trace.Trace) error {
	data := TraceData{
		Species:     tr.Species(),
		Snapshots:   tr.Len(),
		Times:       make([]float64, 0, tr.Len()),
		Populations: make([][]float64, 0, tr.Len()),
	}
	for t, pop := range tr.All() {
		data.Times = append(data.Times, t)
		row := make([]float64, len(pop))
		copy(row, pop)
		data.Populations = append(data.Populations, row)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// JSONFile writes the JSON dump to a file.
func JSONFile(path string, tr *trace.Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return JSON(file, tr)
}
