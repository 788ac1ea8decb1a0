package lotka

import "errors"

// Domain errors for model parameter updates.
var (
	// ErrNegativeCoefficient indicates a loss, gain or self-limitation
	// coefficient below zero.
	ErrNegativeCoefficient = errors.New("lotka: coefficient must be non-negative")

	// ErrDimensionMismatch indicates bulk parameters whose dimensions do
	// not match the number of species.
	ErrDimensionMismatch = errors.New("lotka: parameter dimensions do not match species count")
)
