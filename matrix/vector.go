// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an ordered, fixed-length sequence of float64 values.
// Dim is set at construction and never changes; every binary operation
// between two Vectors requires equal Dim.
//
// A Vector owns its backing slice: constructors copy their input and Data
// returns a copy, so two Vectors never alias each other.
// The zero value is a valid 0-dimensional vector.
type Vector struct {
	data []float64 // flat storage, len(data) == Dim() for the object's lifetime
}

// Operation name constants for unified error wrapping.
const (
	opNewVector = "NewVector"
	opVecAt     = "Vector.At"
	opVecSet    = "Vector.Set"
	opVecSlice  = "Vector.Slice"
)

// NewVector creates a dim-length Vector initialized to zeros.
// Stage 1 (Validate): dim must be >= 0 (0 yields an empty vector).
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(dim) time and memory.
func NewVector(dim int) (*Vector, error) {
	if dim < 0 {
		return nil, matrixErrorf(opNewVector, ErrBadShape)
	}

	return &Vector{data: make([]float64, dim)}, nil
}

// Zero is an intention-revealing alias of NewVector.
func Zero(dim int) (*Vector, error) {
	return NewVector(dim)
}

// Ones returns a dim-length Vector with every component set to 1.
func Ones(dim int) (*Vector, error) {
	v, err := NewVector(dim)
	if err != nil {
		return nil, err
	}
	v.Fill(1.0)

	return v, nil
}

// FromSlice builds a Vector holding a copy of seq; Dim() == len(seq).
// Complexity: O(len(seq)).
func FromSlice(seq []float64) *Vector {
	data := make([]float64, len(seq))
	copy(data, seq)

	return &Vector{data: data}
}

// Of is a variadic convenience wrapper over FromSlice.
func Of(xs ...float64) *Vector {
	return FromSlice(xs)
}

// Dim returns the number of components. Complexity: O(1).
func (v *Vector) Dim() int {
	return len(v.data)
}

// DimEqual reports whether v and other have the same dimension.
func (v *Vector) DimEqual(other *Vector) bool {
	return len(v.data) == len(other.data)
}

// Data returns a copy of the components in order.
// FromSlice(seq).Data() is element-for-element equal to seq.
func (v *Vector) Data() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	return FromSlice(v.data)
}

// ZeroLike returns a zero Vector with the same Dim as v.
func (v *Vector) ZeroLike() *Vector {
	return &Vector{data: make([]float64, len(v.data))}
}

// OnesLike returns an all-ones Vector with the same Dim as v.
func (v *Vector) OnesLike() *Vector {
	out := v.ZeroLike()
	out.Fill(1.0)

	return out
}

// At returns the i-th component or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if err := ValidateIndex(i, len(v.data)); err != nil {
		return 0, matrixErrorf(opVecAt, err)
	}

	return v.data[i], nil
}

// Set assigns x to the i-th component or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if err := ValidateIndex(i, len(v.data)); err != nil {
		return matrixErrorf(opVecSet, err)
	}
	v.data[i] = x

	return nil
}

// Slice returns a read-only copy of the contiguous range [lo,hi).
// Errors: ErrOutOfRange unless 0 <= lo <= hi <= Dim().
// Complexity: O(hi-lo).
func (v *Vector) Slice(lo, hi int) ([]float64, error) {
	if err := ValidateRange(lo, hi, len(v.data)); err != nil {
		return nil, matrixErrorf(opVecSlice, err)
	}
	out := make([]float64, hi-lo)
	copy(out, v.data[lo:hi])

	return out, nil
}

// Equal reports exact component-wise equality (NaN != NaN).
func (v *Vector) Equal(other *Vector) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.data) != len(other.data) {
		return false
	}
	for i, x := range v.data {
		if x != other.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether every |v[i]-other[i]| <= eps.
// Vectors of different Dim are never approximately equal.
func (v *Vector) ApproxEqual(other *Vector, eps float64) bool {
	if v == nil || other == nil || len(v.data) != len(other.data) {
		return false
	}
	for i, x := range v.data {
		if math.Abs(x-other.data[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, e.g. "[1, 2.5, 3]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteByte(']')

	return b.String()
}
