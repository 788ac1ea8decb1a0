package integrators

import "github.com/san-kum/ecosim/internal/sim"

// Euler is a first-order integrator, mainly useful for quick comparisons
// against RK4 at small step sizes.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys sim.System, populations []float64, dt float64) []float64 {
	dx := sys.Derivatives(populations)
	next := make([]float64, len(populations))
	for i := range populations {
		next[i] = populations[i] + dt*dx[i]
		if next[i] < 0.0 {
			next[i] = 0.0
		}
	}
	return next
}
