// SPDX-License-Identifier: MIT
// Package matrix - rank by Gaussian elimination with row-swap pivoting.

package matrix

import "math"

// Rank returns the number of non-zero pivot rows after reducing a private copy
// of m to row-echelon form. The result lies in [0, min(Rows, Cols)].
//
// Implementation:
//   - Stage 1: ValidateNotNil; copy m into a fresh buffer (m is never touched again).
//   - Stage 2: for each column left to right while pivots < rows:
//     pick the first row at or below the pivot row with |v| > tol; none ⇒ next column.
//     Swap it into the pivot position, eliminate every row below it, advance the pivot row.
//   - Stage 3: the pivot-row counter is the rank.
//
// Behavior highlights:
//   - tol defaults to DefaultRankTolerance (1e-10); entries at or below it count as zero.
//   - NaN entries never qualify as pivots (|NaN| > tol is false).
//   - Zero-area matrices have rank 0.
//
// Errors:
//   - ErrNilMatrix only; any rectangular input yields a rank.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r*c) for the working copy.
func Rank(m Matrix, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)

	src, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	// Work on a deep copy; swapping row headers is O(1).
	work := src.clone()
	r, c := work.r, work.c
	rows := work.rowViews()

	var (
		rank, col, row, pivotRow, j int
		factor                      float64
	)
	for col = 0; col < c && rank < r; col++ {
		pivotRow = -1
		for row = rank; row < r; row++ {
			if math.Abs(rows[row][col]) > o.rankTol {
				pivotRow = row
				break
			}
		}
		if pivotRow == -1 {
			continue
		}
		if pivotRow != rank {
			rows[rank], rows[pivotRow] = rows[pivotRow], rows[rank]
		}
		for row = rank + 1; row < r; row++ {
			factor = rows[row][col] / rows[rank][col]
			for j = col; j < c; j++ {
				rows[row][j] -= factor * rows[rank][j]
			}
		}
		rank++
	}

	return rank, nil
}
