// Package sim drives fixed-step integration of a population model and
// records the result as a trace.
package sim

import (
	"fmt"

	"github.com/san-kum/ecosim/internal/trace"
)

// PopulationUpperBound is the per-component ceiling above which a run is
// considered diverged. It prevents overflow when pathological parameters
// are integrated, which is routine during automated parameter search.
const PopulationUpperBound = 1e6

// System is a population model governed by dP/dt = f(P).
type System interface {
	// Derivatives computes the instantaneous derivative vector for the
	// given population vector without mutating the receiver.
	Derivatives(populations []float64) []float64
	// Species returns the dimension of the population vector.
	Species() int
}

// Stepper advances a population vector by one fixed time step.
type Stepper interface {
	Step(sys System, populations []float64, dt float64) []float64
}

// Integrate advances sys from the initial populations across totalTime in
// steps of dt and records every state, starting with the initial state at
// time zero.
//
// If any component exceeds [PopulationUpperBound] the last computed state
// is frozen: stepping stops but time keeps advancing and the frozen state
// is re-recorded at each remaining time point, so the trace stays
// well-formed and finite. A totalTime of zero or less yields a trace
// holding only the initial state.
//
// An initial vector whose length does not match sys.Species() is a
// programmer error and panics; dt must be strictly positive.
func Integrate(sys System, stepper Stepper, initial []float64, totalTime, dt float64) (*trace.Trace, error) {
	n := sys.Species()
	if len(initial) != n {
		panic(fmt.Sprintf("sim: initial population length %d does not match %d species", len(initial), n))
	}
	if dt <= 0 {
		return nil, fmt.Errorf("sim: dt must be positive, got %v", dt)
	}

	tr := trace.New(n)
	populations := make([]float64, n)
	copy(populations, initial)

	t := 0.0
	tr.AddState(t, populations)

	valid := true
	for t < totalTime {
		if valid {
			populations = stepper.Step(sys, populations, dt)
			for _, p := range populations {
				if p > PopulationUpperBound {
					valid = false
					break
				}
			}
		}
		t += dt
		tr.AddState(t, populations)
	}

	return tr, nil
}
