// Package trace provides a time-ordered record of population snapshots
// produced by integration, with interpolated point queries and plain-text
// persistence.
package trace

import (
	"fmt"
	"iter"
	"math"
)

type snapshot struct {
	t   float64
	pop []float64
}

// Trace is an append-only sequence of population snapshots, strictly
// increasing in time. Snapshots are immutable once appended.
type Trace struct {
	n      int
	states []snapshot
}

// New returns an empty trace for n species.
func New(n int) *Trace {
	return &Trace{n: n}
}

// Species returns the number of species per snapshot.
func (tr *Trace) Species() int { return tr.n }

// Len returns the number of recorded snapshots.
func (tr *Trace) Len() int { return len(tr.states) }

// MaxTime returns the last recorded time, or NaN if the trace is empty.
func (tr *Trace) MaxTime() float64 {
	if len(tr.states) == 0 {
		return math.NaN()
	}
	return tr.states[len(tr.states)-1].t
}

// AddState appends a snapshot. The time must exceed the last recorded time
// and the population vector must have one entry per species; violations
// are programmer errors and panic. The populations are copied.
func (tr *Trace) AddState(t float64, populations []float64) {
	if len(populations) != tr.n {
		panic(fmt.Sprintf("trace: state length %d does not match %d species", len(populations), tr.n))
	}
	if len(tr.states) > 0 && t <= tr.states[len(tr.states)-1].t {
		panic(fmt.Sprintf("trace: state time %v not after last time %v", t, tr.states[len(tr.states)-1].t))
	}
	pop := make([]float64, tr.n)
	copy(pop, populations)
	tr.states = append(tr.states, snapshot{t: t, pop: pop})
}

// StateAt returns the population vector at the given time, or nil if the
// trace is empty. Queries before the first snapshot clamp to the first,
// queries after the last clamp to the last; an exact time match returns
// that snapshot verbatim, and anything in between is linearly interpolated
// between the two surrounding snapshots. The search is logarithmic in the
// number of snapshots.
func (tr *Trace) StateAt(t float64) []float64 {
	if len(tr.states) == 0 {
		return nil
	}
	if t <= tr.states[0].t {
		return clonePopulations(tr.states[0].pop)
	}
	last := tr.states[len(tr.states)-1]
	if t >= last.t {
		return clonePopulations(last.pop)
	}

	// First snapshot with time >= t.
	left, right := 0, len(tr.states)-1
	for left < right {
		mid := (left + right) / 2
		if tr.states[mid].t < t {
			left = mid + 1
		} else {
			right = mid
		}
	}

	if tr.states[left].t == t {
		return clonePopulations(tr.states[left].pop)
	}

	prev, next := tr.states[left-1], tr.states[left]
	frac := (t - prev.t) / (next.t - prev.t)
	result := make([]float64, tr.n)
	for i := 0; i < tr.n; i++ {
		result[i] = prev.pop[i] + (next.pop[i]-prev.pop[i])*frac
	}
	return result
}

func clonePopulations(pop []float64) []float64 {
	c := make([]float64, len(pop))
	copy(c, pop)
	return c
}

// All returns a restartable iterator over the recorded snapshots in time
// order. The yielded population slices are the stored ones; callers must
// not modify them.
func (tr *Trace) All() iter.Seq2[float64, []float64] {
	return func(yield func(float64, []float64) bool) {
		for _, s := range tr.states {
			if !yield(s.t, s.pop) {
				return
			}
		}
	}
}
