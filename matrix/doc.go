// Package matrix offers the dense numeric kernel behind lvsignal blocks.
//
// The matrix package provides:
//
//   - Vector: a fixed-dimension []float64 container with elementwise and
//     scalar-broadcast arithmetic, reductions (Dot, Norm, Sum), Cross, Map,
//     Abs, Max/Min and ordering kernels (Sort, ArgSort, ZipSort).
//   - Matrix: a row-major sequence of equal-width Vectors with row-broadcast
//     arithmetic, Sum/Mean/Variance, Ravel, Linspace and row transforms.
//
// Elementwise work and reductions are split across goroutines through a
// chunked data-parallel kernel; see Configure and the With* options for the
// policy knobs. All user-triggered failures (shape, index, dimension, NaN in
// an ordering) are reported as wrapped sentinel errors; nothing panics.
//
// Containers have value semantics: constructors copy their input, Data and
// Rows return copies, and Clone is a deep copy. Row is the only accessor that
// returns a live reference.
//
// See the examples in this package for usage patterns.
package matrix
