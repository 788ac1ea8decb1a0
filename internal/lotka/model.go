package lotka

import (
	"fmt"
	"strings"
)

// Model is a generalized Lotka-Volterra system of n interacting species.
//
// The predation matrices are stored indexed [prey][predator]; the public
// accessors take (predator, prey) arguments and remap. A Model is not safe
// for concurrent mutation; reads (including Derivatives) are safe to share.
type Model struct {
	n     int
	r     []float64   // growth rates
	d     []float64   // self-limitation
	beta  [][]float64 // predation loss, beta[prey][predator]
	gamma [][]float64 // predation gain, gamma[prey][predator]
}

// New returns a model with n species and all parameters zero.
func New(n int) *Model {
	m := &Model{}
	m.Resize(n)
	return m
}

// Resize sets the number of species, discarding all parameter values and
// reallocating every array zero-filled.
func (m *Model) Resize(n int) {
	m.n = n
	m.r = make([]float64, n)
	m.d = make([]float64, n)
	m.beta = squareMatrix(n)
	m.gamma = squareMatrix(n)
}

func squareMatrix(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	return rows
}

// Species returns the number of species in the model.
func (m *Model) Species() int { return m.n }

func (m *Model) checkIndex(name string, i int) {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("lotka: %s index %d out of range [0,%d)", name, i, m.n))
	}
}

// GrowthRate returns the intrinsic growth rate of species i.
func (m *Model) GrowthRate(i int) float64 {
	m.checkIndex("species", i)
	return m.r[i]
}

// SetGrowthRate sets the intrinsic growth rate of species i. Negative
// rates are valid (obligate predators decay in isolation).
func (m *Model) SetGrowthRate(i int, rate float64) {
	m.checkIndex("species", i)
	m.r[i] = rate
}

// SelfLimitation returns the self-limitation coefficient of species i.
func (m *Model) SelfLimitation(i int) float64 {
	m.checkIndex("species", i)
	return m.d[i]
}

// SetSelfLimitation sets the self-limitation coefficient of species i.
func (m *Model) SetSelfLimitation(i int, limit float64) error {
	m.checkIndex("species", i)
	if limit < 0 {
		return fmt.Errorf("%w: self-limitation %v for species %d", ErrNegativeCoefficient, limit, i)
	}
	m.d[i] = limit
	return nil
}

// PredationLoss returns the rate at which the predator's presence reduces
// the prey's growth.
func (m *Model) PredationLoss(predator, prey int) float64 {
	m.checkIndex("predator", predator)
	m.checkIndex("prey", prey)
	return m.beta[prey][predator]
}

// SetPredationLoss sets the predation loss coefficient for a predator-prey
// pair.
func (m *Model) SetPredationLoss(predator, prey int, loss float64) error {
	m.checkIndex("predator", predator)
	m.checkIndex("prey", prey)
	if loss < 0 {
		return fmt.Errorf("%w: loss %v for predator %d, prey %d", ErrNegativeCoefficient, loss, predator, prey)
	}
	m.beta[prey][predator] = loss
	return nil
}

// PredationGain returns the rate at which consuming the prey increases the
// predator's growth.
func (m *Model) PredationGain(predator, prey int) float64 {
	m.checkIndex("predator", predator)
	m.checkIndex("prey", prey)
	return m.gamma[prey][predator]
}

// SetPredationGain sets the predation gain coefficient for a predator-prey
// pair.
func (m *Model) SetPredationGain(predator, prey int, gain float64) error {
	m.checkIndex("predator", predator)
	m.checkIndex("prey", prey)
	if gain < 0 {
		return fmt.Errorf("%w: gain %v for predator %d, prey %d", ErrNegativeCoefficient, gain, predator, prey)
	}
	m.gamma[prey][predator] = gain
	return nil
}

// SetParameters replaces every parameter in bulk. The matrices are in
// storage order ([prey][predator]). All dimensions are validated before
// any value is committed; on mismatch the model is unchanged.
func (m *Model) SetParameters(r, d []float64, beta, gamma [][]float64) error {
	if len(r) != m.n || len(d) != m.n || len(beta) != m.n || len(gamma) != m.n {
		return fmt.Errorf("%w: want %d", ErrDimensionMismatch, m.n)
	}
	for i := 0; i < m.n; i++ {
		if len(beta[i]) != m.n || len(gamma[i]) != m.n {
			return fmt.Errorf("%w: row %d, want %d", ErrDimensionMismatch, i, m.n)
		}
	}
	copy(m.r, r)
	copy(m.d, d)
	for i := 0; i < m.n; i++ {
		copy(m.beta[i], beta[i])
		copy(m.gamma[i], gamma[i])
	}
	return nil
}

// Derivatives computes the instantaneous population derivatives for the
// given population vector. It is a pure function of the model parameters
// and its argument.
func (m *Model) Derivatives(populations []float64) []float64 {
	if len(populations) != m.n {
		panic(fmt.Sprintf("lotka: population vector length %d does not match %d species", len(populations), m.n))
	}

	derivatives := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		growth := m.r[i]
		selfLimit := populations[i] * m.d[i]

		interaction := 0.0
		for j := 0; j < m.n; j++ {
			interaction += (m.gamma[j][i] - m.beta[i][j]) * populations[j]
		}

		derivatives[i] = populations[i] * (growth - selfLimit + interaction)
	}
	return derivatives
}

// String renders the model parameters in a human-readable form.
func (m *Model) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lotka-Volterra model with %d species\n", m.n)
	b.WriteString("growth rates (r):\n")
	writeVector(&b, m.r)
	b.WriteString("self-limitation (d):\n")
	writeVector(&b, m.d)
	b.WriteString("predation loss matrix (beta):\n")
	for i := 0; i < m.n; i++ {
		writeVector(&b, m.beta[i])
	}
	b.WriteString("predation gain matrix (gamma):\n")
	for i := 0; i < m.n; i++ {
		writeVector(&b, m.gamma[i])
	}
	return b.String()
}

func writeVector(b *strings.Builder, v []float64) {
	for i, x := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%g", x)
	}
	b.WriteByte('\n')
}
