// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Vector arithmetic (elementwise and scalar broadcast, new-result and in-place
//     forms), reductions (NormSq, Norm, Dot) and unary transforms (Abs, Map,
//     Normalize), all routed through the ew* kernels.
//
// Error policy:
//   - Dimension mismatches return ErrDimensionMismatch wrapped with the op name;
//     in-place forms leave the receiver untouched on error.
//   - Degenerate numeric input (zero norm, division by zero) is NOT guarded and
//     propagates IEEE-754 NaN/Inf, exactly like the underlying arithmetic.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opVecAdd   = "Vector.Add"
	opVecSub   = "Vector.Sub"
	opVecMul   = "Vector.Mul"
	opVecDiv   = "Vector.Div"
	opVecDot   = "Vector.Dot"
	opVecCross = "Vector.Cross"
	opVecMax   = "Vector.Max"
	opVecMin   = "Vector.Min"

	crossDim = 3 // the cross product is defined for 3-D vectors only
)

// Fill sets every component to x in place.
func (v *Vector) Fill(x float64) {
	ewFill(v.data, x)
}

// binaryTo validates dims and returns a fresh Vector holding kern(v, other).
func (v *Vector) binaryTo(op string, other *Vector, kern func(dst, s, t []float64) []float64) (*Vector, error) {
	if err := ValidateSameDim(v, other); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := v.ZeroLike()
	ewBinaryTo(out.data, v.data, other.data, kern)

	return out, nil
}

// binaryInPlace validates dims and applies kern(v, other) into v.
func (v *Vector) binaryInPlace(op string, other *Vector, kern func(dst, s []float64)) error {
	if err := ValidateSameDim(v, other); err != nil {
		return matrixErrorf(op, err)
	}
	ewBinaryInPlace(v.data, other.data, kern)

	return nil
}

// Add returns v + other elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector) Add(other *Vector) (*Vector, error) {
	return v.binaryTo(opVecAdd, other, floats.AddTo)
}

// Sub returns v - other elementwise.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	return v.binaryTo(opVecSub, other, floats.SubTo)
}

// Mul returns the elementwise (Hadamard) product v ⊙ other.
func (v *Vector) Mul(other *Vector) (*Vector, error) {
	return v.binaryTo(opVecMul, other, floats.MulTo)
}

// Div returns v / other elementwise. Zero divisors yield ±Inf or NaN.
func (v *Vector) Div(other *Vector) (*Vector, error) {
	return v.binaryTo(opVecDiv, other, floats.DivTo)
}

// AddInPlace performs v += other.
func (v *Vector) AddInPlace(other *Vector) error {
	return v.binaryInPlace(opVecAdd, other, floats.Add)
}

// SubInPlace performs v -= other.
func (v *Vector) SubInPlace(other *Vector) error {
	return v.binaryInPlace(opVecSub, other, floats.Sub)
}

// MulInPlace performs v *= other elementwise.
func (v *Vector) MulInPlace(other *Vector) error {
	return v.binaryInPlace(opVecMul, other, floats.Mul)
}

// DivInPlace performs v /= other elementwise.
func (v *Vector) DivInPlace(other *Vector) error {
	return v.binaryInPlace(opVecDiv, other, floats.Div)
}

// AddScalar returns v + c (broadcast).
func (v *Vector) AddScalar(c float64) *Vector {
	out := v.Clone()
	ewAddConst(out.data, c)

	return out
}

// SubScalar returns v - c (broadcast).
func (v *Vector) SubScalar(c float64) *Vector {
	out := v.Clone()
	ewAddConst(out.data, -c)

	return out
}

// Scale returns v * c (broadcast).
func (v *Vector) Scale(c float64) *Vector {
	out := v.Clone()
	ewScale(out.data, c)

	return out
}

// DivScalar returns v / c (broadcast). c == 0 yields ±Inf/NaN components.
func (v *Vector) DivScalar(c float64) *Vector {
	out := v.ZeroLike()
	ewMapTo(out.data, v.data, func(x float64) float64 { return x / c })

	return out
}

// AddScalarInPlace performs v += c.
func (v *Vector) AddScalarInPlace(c float64) { ewAddConst(v.data, c) }

// SubScalarInPlace performs v -= c.
func (v *Vector) SubScalarInPlace(c float64) { ewAddConst(v.data, -c) }

// ScaleInPlace performs v *= c.
func (v *Vector) ScaleInPlace(c float64) { ewScale(v.data, c) }

// DivScalarInPlace performs v /= c.
func (v *Vector) DivScalarInPlace(c float64) {
	ewMapTo(v.data, v.data, func(x float64) float64 { return x / c })
}

// Neg returns -v.
func (v *Vector) Neg() *Vector {
	return v.Scale(-1)
}

// NormSq returns Σ v[i]² (parallel reduction).
// Determinism:
//   - Summation order follows the kernel chunking; equal inputs give equal
//     results under one policy, only close results across policies.
//
// Complexity: O(n).
func (v *Vector) NormSq() float64 {
	return ewDot(v.data, v.data)
}

// Norm returns the Euclidean norm sqrt(NormSq()).
func (v *Vector) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// Normalize returns v / Norm(). A zero-norm vector is not guarded: every
// component becomes NaN (0/0).
func (v *Vector) Normalize() *Vector {
	return v.DivScalar(v.Norm())
}

// Dot returns Σ v[i]*other[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(n).
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := ValidateSameDim(v, other); err != nil {
		return 0, matrixErrorf(opVecDot, err)
	}

	return ewDot(v.data, other.data), nil
}

// Sum returns Σ v[i] (parallel reduction).
func (v *Vector) Sum() float64 {
	return ewSum(v.data)
}

// Cross returns the 3-D cross product v × other.
// Errors: ErrDimensionMismatch unless both vectors have Dim() == 3.
func (v *Vector) Cross(other *Vector) (*Vector, error) {
	if err := ValidateSameDim(v, other); err != nil {
		return nil, matrixErrorf(opVecCross, err)
	}
	if len(v.data) != crossDim {
		return nil, matrixErrorf(opVecCross, ErrDimensionMismatch)
	}
	a, b := v.data, other.data

	return Of(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// Abs returns |v| elementwise.
func (v *Vector) Abs() *Vector {
	return v.Map(math.Abs)
}

// Map returns a new Vector with f applied to every component.
// f must be free of side effects; components are processed concurrently.
func (v *Vector) Map(f func(float64) float64) *Vector {
	out := v.ZeroLike()
	ewMapTo(out.data, v.data, f)

	return out
}

// MapInPlace applies f to every component of v.
func (v *Vector) MapInPlace(f func(float64) float64) {
	ewMapTo(v.data, v.data, f)
}

// Max returns the largest component.
//
// Behavior highlights:
//   - A comparison involving NaN counts as "equal"; on equality the later
//     component wins, so a NaN may be selected or skipped depending on its
//     position. Sanitize NaNs first if that matters.
//
// Errors: ErrEmpty for a 0-dimensional vector. Complexity: O(n), serial.
func (v *Vector) Max() (float64, error) {
	if len(v.data) == 0 {
		return 0, matrixErrorf(opVecMax, ErrEmpty)
	}
	best := v.data[0]
	for _, x := range v.data[1:] {
		if math.IsNaN(best) || math.IsNaN(x) || x >= best {
			best = x
		}
	}

	return best, nil
}

// Min returns the smallest component. NaN comparisons count as "equal" and
// on equality the earlier component is kept.
//
// Errors: ErrEmpty for a 0-dimensional vector. Complexity: O(n), serial.
func (v *Vector) Min() (float64, error) {
	if len(v.data) == 0 {
		return 0, matrixErrorf(opVecMin, ErrEmpty)
	}
	best := v.data[0]
	for _, x := range v.data[1:] {
		if !math.IsNaN(best) && !math.IsNaN(x) && x < best {
			best = x
		}
	}

	return best, nil
}
