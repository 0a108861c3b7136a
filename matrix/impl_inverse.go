// SPDX-License-Identifier: MIT
// Package matrix - inverse via the adjugate (cofactor) method.

package matrix

// Inverse computes A⁻¹ = adj(A)/det(A).
// The input must be non-nil, square and non-empty. Returns ErrSingular when the
// determinant is exactly zero; there is no tolerance at this step, so a tiny
// non-zero determinant still produces a (possibly badly conditioned) inverse.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateSquare; det = Determinant(A); det == 0 ⇒ ErrSingular.
//   - Stage 2: S[i][j] = Cofactor(A, i, j) / det for every cell (divide first).
//   - Stage 3: return Transpose(S).
//
// Behavior highlights:
//   - The division happens before the transpose; the result equals Sᵀ bit for bit.
//   - Input m is read-only.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmpty, ErrSingular.
//
// Complexity:
//   - n² cofactors of order n−1, each exponential (see Determinant).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := determinantOf(d)
	if det == ZeroDeterminant {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := d.r
	scaled, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			scaled.data[i*n+j] = cofactorOf(d, i, j) / det
		}
	}

	inv, err := Transpose(scaled)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
