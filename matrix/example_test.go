// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvsignal/matrix"
)

// ExampleVector_ZipSort co-sorts a key vector with the rows of a matrix.
func ExampleVector_ZipSort() {
	keys := matrix.Of(2, 1, 3)
	m, _ := matrix.FromData([][]float64{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}})

	sorted, err := keys.ZipSort(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(keys)
	fmt.Print(sorted)
	// Output:
	// [1, 2, 3]
	// [3, 4, 5]
	// [1, 2, 3]
	// [5, 6, 7]
}

// ExampleMatrix_Mean reduces rows into column statistics.
func ExampleMatrix_Mean() {
	m, _ := matrix.FromData([][]float64{{1, 2}, {3, 4}})
	mean, _ := m.Mean()
	fmt.Println(m.Sum(), mean)
	// Output:
	// [4, 6] [2, 3]
}

// ExampleLinspace interpolates between two vectors, endpoints included.
func ExampleLinspace() {
	m, _ := matrix.Linspace(matrix.Of(0), matrix.Of(1), 3)
	fmt.Println(m.Ravel())
	// Output:
	// [0, 0.5, 1]
}
