// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (wrapped with the operation name)
// and tests check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for nonsensical Option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with matrixErrorf(op, ErrX) so the
// failing call is visible in the message; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> index -> dimension mismatch -> numeric (NaN).

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows,
	// columns or dimension).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (element, row or column) is outside
	// valid bounds. Public indexers (At/Set/Row/Slice) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Vector+Vector of different Dim, or a broadcast Vector whose length
	// differs from the matrix column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals that rows supplied to a Matrix constructor do not
	// share a single width.
	ErrRaggedRows = errors.New("matrix: rows have different widths")

	// ErrNaNComparison signals that an ordering operation (Sort, ArgSort)
	// met a NaN component, for which no total order exists.
	ErrNaNComparison = errors.New("matrix: NaN is not comparable")

	// ErrEmpty indicates an operation that needs at least one element (Max, Min,
	// Mean over rows) was applied to an empty container.
	ErrEmpty = errors.New("matrix: empty container")

	// ErrNilMatrix indicates that a nil *Vector or *Matrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
