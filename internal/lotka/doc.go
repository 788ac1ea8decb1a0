// Package lotka implements the generalized Lotka-Volterra predation model
// for an arbitrary number of interacting species.
//
// A [Model] holds per-species growth rates, self-limitation coefficients
// and pairwise predation loss/gain matrices, and computes the instantaneous
// population derivatives:
//
//	dP_i/dt = P_i * (r_i - d_i*P_i + sum_j (gamma_ji - beta_ij) * P_j)
//
// Public accessors address the predation matrices in (predator, prey)
// order while storage is indexed (prey, predator); the parameter file
// format of [ReadFile] and [Model.WriteFile] follows the storage layout.
//
// Index bounds and dimension preconditions are programmer errors and
// panic. Negative coefficients and mismatched bulk parameters are runtime
// conditions reported as errors wrapping [ErrNegativeCoefficient] and
// [ErrDimensionMismatch].
package lotka
