package lotka

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// ReadFile reads a model from a whitespace-delimited parameter file:
// species count, growth rates, self-limitation values, then the loss and
// gain matrices row-major in storage order. Decimal points are always '.',
// independent of locale.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lotka: read model: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("lotka: read model %s: species count: %w", path, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("lotka: read model %s: negative species count %d", path, n)
	}

	m := New(n)
	if err := scanVector(r, m.r); err != nil {
		return nil, fmt.Errorf("lotka: read model %s: growth rates: %w", path, err)
	}
	if err := scanVector(r, m.d); err != nil {
		return nil, fmt.Errorf("lotka: read model %s: self-limitation: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := scanVector(r, m.beta[i]); err != nil {
			return nil, fmt.Errorf("lotka: read model %s: loss matrix row %d: %w", path, i, err)
		}
	}
	for i := 0; i < n; i++ {
		if err := scanVector(r, m.gamma[i]); err != nil {
			return nil, fmt.Errorf("lotka: read model %s: gain matrix row %d: %w", path, i, err)
		}
	}
	return m, nil
}

func scanVector(r *bufio.Reader, dst []float64) error {
	for i := range dst {
		if _, err := fmt.Fscan(r, &dst[i]); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

// WriteFile saves the model parameters in the format accepted by
// [ReadFile].
func (m *Model) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lotka: write model: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", m.n)
	writeRow(w, m.r)
	writeRow(w, m.d)
	for i := 0; i < m.n; i++ {
		writeRow(w, m.beta[i])
	}
	for i := 0; i < m.n; i++ {
		writeRow(w, m.gamma[i])
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("lotka: write model %s: %w", path, err)
	}
	return nil
}

func writeRow(w *bufio.Writer, v []float64) {
	for i, x := range v {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	w.WriteByte('\n')
}
