// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/dimension/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing (except the NaN scan, which reads only).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Dim/Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateVectorNotNil ensures the vector reference is non-nil.
// Complexity: O(1).
func ValidateVectorNotNil(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVectorNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMatrixNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateMatrixNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateMatrixNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameDim – Composite: NotNil(a) → NotNil(b) → Dim(a) == Dim(b).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for every Vector⊕Vector kernel before touching data.
func ValidateSameDim(a, b *Vector) error {
	if err := ValidateVectorNotNil(a); err != nil {
		return validatorErrorf("ValidateSameDim", err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return validatorErrorf("ValidateSameDim", err)
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameDim", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → Shape(a) == Shape(b).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateMatrixNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateMatrixNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if len(a.rows) != len(b.rows) {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowBroadcast ensures v can be broadcast across every row of m,
// i.e. v.Dim() == m's column count.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateRowBroadcast(m *Matrix, v *Vector) error {
	if err := ValidateMatrixNotNil(m); err != nil {
		return validatorErrorf("ValidateRowBroadcast", err)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return validatorErrorf("ValidateRowBroadcast", err)
	}
	if len(v.data) != m.cols {
		return validatorErrorf("ValidateRowBroadcast", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateRange ensures 0 <= lo <= hi <= n (half-open range [lo,hi)).
// Complexity: O(1).
func ValidateRange(lo, hi, n int) error {
	if lo < 0 || hi > n || lo > hi {
		return validatorErrorf("ValidateRange", ErrOutOfRange)
	}

	return nil
}

// ValidateNoNaN scans data once and fails on the first NaN.
// Complexity: O(n). AI-Hints: run before any ordering kernel.
func ValidateNoNaN(data []float64) error {
	for _, x := range data {
		if math.IsNaN(x) {
			return validatorErrorf("ValidateNoNaN", ErrNaNComparison)
		}
	}

	return nil
}
