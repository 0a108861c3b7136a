// SPDX-License-Identifier: MIT
// Package matrix provides the dense arithmetic kernels of the solver:
// matrix product, transpose, minor extraction, determinant, cofactors,
// inverse and rank. All functions perform strict fail-fast validation and
// return wrapped sentinels on misuse.
//
// Purpose:
//   - Define operation tags and shared constants for error reporting.
//   - Host the shape-generic kernels (Mul, Transpose); the square-only kernels
//     live in impl_determinant.go, impl_inverse.go and impl_rank.go.
//
// Notes:
//   - Every kernel reads its operands only; results are freshly allocated *Dense values.
//   - No kernel keeps state between calls, so independent calls may run concurrently
//     as long as callers do not mutate an operand while a call is reading it.

package matrix

import "fmt"

// ZeroSum is the initial value for dot products and cofactor expansions.
const ZeroSum = 0.0

// ZeroDeterminant is the exact value Inverse treats as singular (no epsilon).
const ZeroDeterminant = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opInverse     = "Inverse"
	opRank        = "Rank"
	opAllClose    = "AllClose"
	opIdentity    = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A × B.
// Inputs are validated (non-nil, a.Cols == b.Rows). Operands are never mutated.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result Dense(a.Rows × b.Cols).
//   - Stage 2: If both are *Dense, run i→k→j over the flat buffers; otherwise
//     fall back to an i→j→k At/Set loop.
//
// Behavior highlights:
//   - C[i,j] = Σ_k A[i,k]·B[k,j], accumulated in increasing k for every cell on both paths.
//   - A zero inner dimension yields an all-zero result of shape a.Rows × b.Cols.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Accepts any rectangular matrix, including zero-area ones (r×0 → 0×r).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Minor returns the submatrix of m with row `row` and column `col` removed.
// Remaining rows and columns keep their relative order.
//
// Contract: m is at least 2×2 and (row, col) is in range. Violations are
// programming errors on the caller side and are reported as ErrBadShape /
// ErrOutOfRange (KindInternal), never as panics.
//
// Complexity: Time O(r*c), Space O((r-1)*(c-1)).
func Minor(m Matrix, row, col int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateMinorArgs(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorOf(d, row, col), nil
}

// minorOf is the unchecked core of Minor shared with Determinant and Inverse,
// whose call sites supply valid indices by construction.
func minorOf(d *Dense, row, col int) *Dense {
	sub, err := d.Induced(skipIndex(d.r, row), skipIndex(d.c, col))
	if err != nil {
		// index lists are derived from d's own shape
		panic("matrix: minorOf: " + err.Error())
	}

	return sub
}

// skipIndex returns [0..n) without skip, in increasing order.
func skipIndex(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}
