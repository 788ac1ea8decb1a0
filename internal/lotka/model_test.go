package lotka

import (
	"errors"
	"math"
	"testing"
)

func TestZeroModelDerivatives(t *testing.T) {
	m := New(3)

	d := m.Derivatives([]float64{1.0, 5.0, 100.0})

	for i, v := range d {
		if v != 0 {
			t.Errorf("species %d: expected zero derivative, got %g", i, v)
		}
	}
}

func TestPredatorPreyDerivatives(t *testing.T) {
	m := New(2)
	m.SetGrowthRate(0, 1.0)
	m.SetGrowthRate(1, -1.0)
	if err := m.SetPredationLoss(1, 0, 0.1); err != nil {
		t.Fatalf("set loss: %v", err)
	}
	if err := m.SetPredationGain(1, 0, 0.075); err != nil {
		t.Fatalf("set gain: %v", err)
	}

	pop := []float64{10, 5}
	d := m.Derivatives(pop)

	// dP0 = P0*(r0 - beta*P1), dP1 = P1*(r1 + gamma*P0)
	want0 := 10 * (1.0 - 0.1*5)
	want1 := 5 * (-1.0 + 0.075*10)

	if math.Abs(d[0]-want0) > 1e-12 {
		t.Errorf("prey derivative: got %g, want %g", d[0], want0)
	}
	if math.Abs(d[1]-want1) > 1e-12 {
		t.Errorf("predator derivative: got %g, want %g", d[1], want1)
	}
}

func TestAccessorIndexInversion(t *testing.T) {
	m := New(2)
	if err := m.SetPredationLoss(1, 0, 0.25); err != nil {
		t.Fatalf("set loss: %v", err)
	}

	if got := m.PredationLoss(1, 0); got != 0.25 {
		t.Errorf("PredationLoss(1,0) = %g, want 0.25", got)
	}
	if got := m.PredationLoss(0, 1); got != 0 {
		t.Errorf("PredationLoss(0,1) = %g, want 0", got)
	}

	// Bulk set takes storage order ([prey][predator]); the accessor must
	// remap back to (predator, prey).
	beta := [][]float64{{0, 0.5}, {0, 0}}
	gamma := [][]float64{{0, 0}, {0, 0}}
	if err := m.SetParameters([]float64{0, 0}, []float64{0, 0}, beta, gamma); err != nil {
		t.Fatalf("set parameters: %v", err)
	}
	if got := m.PredationLoss(1, 0); got != 0.5 {
		t.Errorf("after bulk set: PredationLoss(1,0) = %g, want 0.5", got)
	}
}

func TestNegativeCoefficientRejected(t *testing.T) {
	m := New(2)
	if err := m.SetSelfLimitation(0, 0.3); err != nil {
		t.Fatalf("set self-limitation: %v", err)
	}
	if err := m.SetPredationLoss(0, 1, 0.4); err != nil {
		t.Fatalf("set loss: %v", err)
	}
	if err := m.SetPredationGain(0, 1, 0.5); err != nil {
		t.Fatalf("set gain: %v", err)
	}

	tests := []struct {
		name  string
		set   func() error
		prior func() float64
		want  float64
	}{
		{"self-limitation", func() error { return m.SetSelfLimitation(0, -1) }, func() float64 { return m.SelfLimitation(0) }, 0.3},
		{"loss", func() error { return m.SetPredationLoss(0, 1, -1) }, func() float64 { return m.PredationLoss(0, 1) }, 0.4},
		{"gain", func() error { return m.SetPredationGain(0, 1, -1) }, func() float64 { return m.PredationGain(0, 1) }, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set()
			if !errors.Is(err, ErrNegativeCoefficient) {
				t.Fatalf("expected ErrNegativeCoefficient, got %v", err)
			}
			if got := tt.prior(); got != tt.want {
				t.Errorf("prior value changed: got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestSetParametersDimensionMismatch(t *testing.T) {
	m := New(2)
	m.SetGrowthRate(0, 7.0)

	good := [][]float64{{0, 0}, {0, 0}}
	tests := []struct {
		name        string
		r, d        []float64
		beta, gamma [][]float64
	}{
		{"short growth", []float64{1}, []float64{0, 0}, good, good},
		{"short self-limitation", []float64{1, 1}, []float64{0}, good, good},
		{"short outer matrix", []float64{1, 1}, []float64{0, 0}, [][]float64{{0, 0}}, good},
		{"short inner row", []float64{1, 1}, []float64{0, 0}, [][]float64{{0, 0}, {0}}, good},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.SetParameters(tt.r, tt.d, tt.beta, tt.gamma)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("expected ErrDimensionMismatch, got %v", err)
			}
			if m.GrowthRate(0) != 7.0 {
				t.Errorf("model modified on failed bulk set")
			}
		})
	}
}

func TestResizeDiscardsParameters(t *testing.T) {
	m := New(2)
	m.SetGrowthRate(1, 3.0)
	if err := m.SetPredationLoss(1, 0, 0.2); err != nil {
		t.Fatalf("set loss: %v", err)
	}

	m.Resize(3)

	if m.Species() != 3 {
		t.Fatalf("expected 3 species, got %d", m.Species())
	}
	if m.GrowthRate(1) != 0 {
		t.Errorf("growth rate not zeroed after resize")
	}
	if m.PredationLoss(1, 0) != 0 {
		t.Errorf("predation loss not zeroed after resize")
	}
}

func TestIndexBoundsPanic(t *testing.T) {
	m := New(2)

	tests := []struct {
		name string
		call func()
	}{
		{"growth rate", func() { m.GrowthRate(2) }},
		{"negative index", func() { m.GrowthRate(-1) }},
		{"predation loss", func() { m.PredationLoss(0, 2) }},
		{"derivatives length", func() { m.Derivatives([]float64{1}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.call()
		})
	}
}
