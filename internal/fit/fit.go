// Package fit exposes the objective-function boundary consumed by external
// parameter-estimation front ends: map a flat parameter vector onto a
// model, integrate it over an observed trace's horizon, and score the
// result as a sum of squared differences.
package fit

import (
	"fmt"

	"github.com/san-kum/ecosim/internal/integrators"
	"github.com/san-kum/ecosim/internal/lotka"
	"github.com/san-kum/ecosim/internal/sim"
	"github.com/san-kum/ecosim/internal/trace"
)

// GenomeLen returns the flat parameter vector length for n species:
// growth rates, self-limitation, then the loss and gain matrices.
func GenomeLen(n int) int {
	return 2*n + 2*n*n
}

// Objective scores candidate parameter vectors against an observed trace.
type Objective struct {
	observed *trace.Trace
	initial  []float64
	dt       float64
}

// NewObjective builds an objective for the observed trace, integrating
// candidates from the trace's initial state across its full horizon with
// the given step size.
func NewObjective(observed *trace.Trace, dt float64) *Objective {
	return &Objective{
		observed: observed,
		initial:  observed.StateAt(0),
		dt:       dt,
	}
}

// Model maps a flat parameter vector onto a model through the public
// setters: r[n], d[n], then the loss and gain matrices row-major in
// (predator, prey) order. Negative coefficients surface as the setters'
// invalid-argument errors, letting callers reject the candidate.
func (o *Objective) Model(genome []float64) (*lotka.Model, error) {
	n := o.observed.Species()
	if len(genome) != GenomeLen(n) {
		return nil, fmt.Errorf("fit: genome length %d, want %d for %d species", len(genome), GenomeLen(n), n)
	}

	m := lotka.New(n)
	k := 0
	for i := 0; i < n; i++ {
		m.SetGrowthRate(i, genome[k])
		k++
	}
	for i := 0; i < n; i++ {
		if err := m.SetSelfLimitation(i, genome[k]); err != nil {
			return nil, err
		}
		k++
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.SetPredationLoss(i, j, genome[k]); err != nil {
				return nil, err
			}
			k++
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := m.SetPredationGain(i, j, genome[k]); err != nil {
				return nil, err
			}
			k++
		}
	}
	return m, nil
}

// Evaluate integrates the candidate vector's model and returns its
// distance from the observed trace. Lower is better; divergent candidates
// still score finite thanks to the driver's freeze-on-overflow.
func (o *Objective) Evaluate(genome []float64) (float64, error) {
	m, err := o.Model(genome)
	if err != nil {
		return 0, err
	}
	simulated, err := sim.Integrate(m, integrators.NewRK4(), o.initial, o.observed.MaxTime(), o.dt)
	if err != nil {
		return 0, err
	}
	return Distance(simulated, o.observed), nil
}

// Distance is the sum of squared component differences between the
// simulated and observed traces, sampled at the observed snapshot times
// via interpolation on the simulated trace.
func Distance(simulated, observed *trace.Trace) float64 {
	sum := 0.0
	for t, pop := range observed.All() {
		s := simulated.StateAt(t)
		for i, p := range pop {
			diff := s[i] - p
			sum += diff * diff
		}
	}
	return sum
}
