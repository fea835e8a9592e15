// Package value defines which types may flow through lvsignal blocks.
//
// A Value is either a scalar (any integer or float width, bool, string, or a
// named type over one of those) or one of the dense containers from package
// matrix. Every Value can be duplicated without aliasing: scalars by plain
// assignment, containers through Clone. Block constructors bound their type
// parameters with Value so arbitrary reference types cannot be wired in.
//
// The set is closed: a type union cannot name a method set, so a caller's
// own Cloner type cannot join it. Named scalar types are admitted through
// the ~ terms.
package value

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsignal/matrix"
)

// Scalar admits the built-in value types and named types over them.
type Scalar interface {
	constraints.Integer | constraints.Float | ~bool | ~string
}

// Value is the generic bound of every Source, Sink and Transfer.
type Value interface {
	Scalar | *matrix.Vector | *matrix.Matrix
}

// Cloner is implemented by container Values; Clone returns a deep copy.
type Cloner[T any] interface {
	Clone() T
}

// Copy duplicates v so that the result shares no storage with it.
// Nil containers are returned as is.
func Copy[V Value](v V) V {
	switch x := any(v).(type) {
	case *matrix.Vector:
		if x == nil {
			return v
		}
	case *matrix.Matrix:
		if x == nil {
			return v
		}
	}
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}

	return v
}
