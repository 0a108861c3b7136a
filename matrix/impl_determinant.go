// SPDX-License-Identifier: MIT
// Package matrix - determinant by cofactor expansion.
//
// Policy & Contracts:
//   - order 1: the single entry.
//   - order 2: a·d − b·c.
//   - order 3: six-term rule of Sarrus (no recursion).
//   - order ≥4: Laplace expansion along row 0 with an alternating ±1 sign.
//   - Cost is exponential in the order; callers are expected to bound input size.

package matrix

import "fmt"

// Determinant returns det(m) for a square, non-empty matrix.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateSquare.
//   - Stage 2: snapshot non-Dense inputs into *Dense (read-only use).
//   - Stage 3: recursive expansion on the flat buffer (see determinantOf).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmpty.
//
// Complexity:
//   - Time O(n!) for n ≥ 4, Space O(n²) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinantOf(d), nil
}

// determinantOf expands a validated square *Dense with order ≥ 1.
// Term order in the 2×2 and 3×3 cases is fixed so results are reproducible bit for bit.
func determinantOf(d *Dense) float64 {
	n := d.r
	a := d.data
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	case 3:
		// a00 a01 a02 | 0 1 2
		// a10 a11 a12 | 3 4 5
		// a20 a21 a22 | 6 7 8
		return a[0]*a[4]*a[8] +
			a[1]*a[5]*a[6] +
			a[2]*a[3]*a[7] -
			a[2]*a[4]*a[6] -
			a[1]*a[3]*a[8] -
			a[0]*a[5]*a[7]
	}

	det := ZeroSum
	sign := 1.0
	for j := 0; j < n; j++ {
		det += a[j] * sign * determinantOf(minorOf(d, 0, j))
		sign = -sign
	}

	return det
}

// Cofactor returns (−1)^(i+j) · det(Minor(m, i, j)).
// The cofactor of a 1×1 matrix is 1 (the determinant of the empty minor).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmpty, ErrOutOfRange.
func Cofactor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorOf(d, i, j), nil
}

// cofactorOf is the unchecked core of Cofactor.
func cofactorOf(d *Dense, i, j int) float64 {
	if d.r == 1 {
		return 1
	}
	c := determinantOf(minorOf(d, i, j))
	if (i+j)%2 == 1 {
		return -c
	}

	return c
}
