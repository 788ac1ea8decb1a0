// Package integrators provides fixed-step numerical integrators for
// population models. Each integrator clamps negative components of the
// result to zero, since populations cannot go below extinction.
package integrators

import "github.com/san-kum/ecosim/internal/sim"

// RK4 is the classic 4th-order Runge-Kutta integrator. The scratch buffers
// are reused across steps of one run, so an RK4 value must not be shared
// between concurrently executing integrations.
type RK4 struct {
	scratch []float64
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.scratch) != n {
		r.scratch = make([]float64, n)
	}
}

// Step advances the population vector by dt using four derivative
// evaluations. Components that undershoot zero are clamped to exactly 0.
func (r *RK4) Step(sys sim.System, populations []float64, dt float64) []float64 {
	n := len(populations)
	r.ensureScratch(n)

	dt2 := 0.5 * dt
	dt6 := dt / 6.0

	k1 := sys.Derivatives(populations)

	for i := 0; i < n; i++ {
		r.scratch[i] = populations[i] + dt2*k1[i]
	}
	k2 := sys.Derivatives(r.scratch)

	for i := 0; i < n; i++ {
		r.scratch[i] = populations[i] + dt2*k2[i]
	}
	k3 := sys.Derivatives(r.scratch)

	for i := 0; i < n; i++ {
		r.scratch[i] = populations[i] + dt*k3[i]
	}
	k4 := sys.Derivatives(r.scratch)

	next := make([]float64, n)
	for i := 0; i < n; i++ {
		next[i] = populations[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
		if next[i] < 0.0 {
			next[i] = 0.0
		}
	}
	return next
}
