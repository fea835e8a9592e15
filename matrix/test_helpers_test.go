// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for the
//     Vector/Matrix kernels.
//   • Let tests switch the kernel policy to a tiny grain so the concurrent
//     code paths run even on short inputs.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsignal/matrix"
)

// epsTight is used where results are computed by identical arithmetic.
const epsTight = 1e-12

// epsLoose is used where the summation order of a reduction may differ.
const epsLoose = 1e-9

// approx compares float64 values within epsLoose (relative or absolute).
var approx = cmpopts.EquateApprox(epsLoose, epsLoose)

// withFineGrain installs a policy that splits even 4-element inputs across
// workers, restoring the previous policy when the test ends. Tests that call
// it must not run in parallel with each other.
func withFineGrain(t *testing.T) {
	t.Helper()
	prev := matrix.Configure(matrix.WithGrain(2), matrix.WithWorkers(4))
	t.Cleanup(func() { matrix.Restore(prev) })
}

// MustMatrix builds a Matrix from nested slices or fails the test.
func MustMatrix(t *testing.T, data [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromData(data)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	x, err := m.At(i, j)
	require.NoError(t, err)

	return x
}

// randomSlice returns n values in [-10, 10) from a seeded source.
func randomSlice(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()*20 - 10
	}

	return out
}

// requireSliceClose fails unless got ≈ want elementwise.
func requireSliceClose(t *testing.T, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("slices differ (-want +got):\n%s", diff)
	}
}
