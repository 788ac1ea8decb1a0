package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadFile reads a trace from a plain-text file: species count on the
// first line, then one "time p_0 ... p_{n-1}" row per snapshot.
func ReadFile(path string) (*Trace, error) {
	tr := &Trace{}
	if err := tr.Load(path); err != nil {
		return nil, err
	}
	return tr, nil
}

// Load clears the trace and re-populates it from a file. Rows are appended
// in order, so file rows must be strictly increasing in time. A failed
// load may leave the trace cleared; callers must not assume it is
// unchanged on error.
func (tr *Trace) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("trace: read %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return fmt.Errorf("trace: read %s: species count: %w", path, err)
	}
	if n < 0 {
		return fmt.Errorf("trace: read %s: negative species count %d", path, n)
	}

	tr.n = n
	tr.states = tr.states[:0]

	pop := make([]float64, n)
	for {
		var t float64
		if _, err := fmt.Fscan(r, &t); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("trace: read %s: row %d: %w", path, len(tr.states), err)
		}
		for j := 0; j < n; j++ {
			if _, err := fmt.Fscan(r, &pop[j]); err != nil {
				return fmt.Errorf("trace: read %s: row %d, species %d: %w", path, len(tr.states), j, err)
			}
		}
		tr.AddState(t, pop)
	}
}

// SaveFile writes every recorded snapshot verbatim in the format accepted
// by [ReadFile].
func (tr *Trace) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trace: write %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", tr.n)
	for _, s := range tr.states {
		writeRow(w, s.t, s.pop)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("trace: write %s: %w", path, err)
	}
	return nil
}

// SaveSampled resamples the trace onto a regular grid via [Trace.StateAt]
// at start, start+step, ... while the sample time is at most end, and
// writes each sampled row. This turns irregular simulation output into a
// regular-grid file for comparison or plotting.
func (tr *Trace) SaveSampled(path string, start, end, step float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trace: write %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", tr.n)
	for t := start; t <= end; t += step {
		writeRow(w, t, tr.StateAt(t))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("trace: write %s: %w", path, err)
	}
	return nil
}

func writeRow(w *bufio.Writer, t float64, pop []float64) {
	w.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
	for _, p := range pop {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	w.WriteByte('\n')
}
