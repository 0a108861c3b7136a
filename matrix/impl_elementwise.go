// SPDX-License-Identifier: MIT
// Package matrix - element-wise helpers used to measure how far a computed
// result is from its expected value (e.g. A×A⁻¹ against I).

package matrix

import "math"

const (
	opSub    = "Sub"
	opMaxAbs = "MaxAbs"
)

// Sub returns a new Matrix containing the element-wise difference a - b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): fast-path for two *Dense, else an At loop.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	// Differences of finite values may still overflow to ±Inf.
	res.validateNaNInf = false

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			res.data[i*cols+j] = av - bv
		}
	}

	return res, nil
}

// MaxAbs returns max |m[i,j]| (the max-norm), 0 for a zero-area matrix.
// A NaN entry makes the result NaN.
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	best := 0.0
	for _, v := range d.data {
		if math.IsNaN(v) {
			return math.NaN(), nil
		}
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}
