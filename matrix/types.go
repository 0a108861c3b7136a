// SPDX-License-Identifier: MIT

package matrix

// Matrix is a rectangular grid of float64 values addressed by (row, col),
// both zero-based. Every kernel in this package accepts any Matrix and
// takes a *Dense fast path when it can; operands are only ever read.
type Matrix interface {
	// Rows is the number of rows (may be 0).
	Rows() int

	// Cols is the number of columns (may be 0).
	Cols() int

	// At reads one entry; ErrOutOfRange for a bad index.
	At(i, j int) (float64, error)

	// Set writes one entry; ErrOutOfRange for a bad index. Implementations
	// may refuse values by policy (see WithValidateNaNInf).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
