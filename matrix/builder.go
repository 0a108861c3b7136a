// SPDX-License-Identifier: MIT
// Package matrix - builders that ingest raw row slices into *Dense.
//
// Policy & Contracts:
//   - Input rows must be rectangular; ragged input fails with ErrRagged.
//   - Zero-area shapes (0×0, n×0) are legal here so that shape-agnostic kernels
//     such as Rank and Transpose can be called on them.
//   - Non-finite entries are rejected unless WithNoValidateNaNInf() is passed.
//   - Input slices are copied; the caller keeps ownership of rows.

package matrix

import (
	"fmt"
	"math"
)

const opFromRows = "NewFromRows"

// NewFromRows builds a row-major *Dense from rows.
// Implementation:
//   - Stage 1: resolve options; validate rectangularity.
//   - Stage 2: allocate via newDenseZeroOK and copy row by row, checking the numeric policy.
//
// Errors:
//   - ErrRagged when len(rows[i]) differs from len(rows[0]).
//   - ErrNaNInf when a value is non-finite and validation is on.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	d, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	d.validateNaNInf = o.validateNaNInf

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, matrixErrorf(opFromRows, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// MustFromRows is NewFromRows for literals known to be valid; it panics on error.
// Intended for tests, examples and package-level fixtures.
func MustFromRows(rows [][]float64, opts ...Option) *Dense {
	d, err := NewFromRows(rows, opts...)
	if err != nil {
		panic(err)
	}

	return d
}
