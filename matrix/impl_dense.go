// SPDX-License-Identifier: MIT

// Package matrix - Dense: the one concrete Matrix of the solver.
//
// Layout:
//   - A single []float64 of length r*c in row-major order; entry (i,j) lives at i*c + j.
//   - Zero-area shapes (0×k, k×0, 0×0) are legal and hold an empty buffer.
//     NewDense refuses them; NewFromRows and the kernels produce them.
//
// Policy:
//   - At/Set never panic; bad indices return ErrOutOfRange wrapped with the call site.
//   - A Dense built with the default options refuses NaN/±Inf in Set. The policy
//     is copied into clones and submatrices.
//
// Complexity: At/Set O(1); Clone, ToRows, Induced O(size of the result).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dense is a row-major float64 matrix.
type Dense struct {
	r, c           int
	data           []float64 // len == r*c
	validateNaNInf bool      // Set rejects NaN/±Inf when true
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// denseErrorf tags err with the Dense method and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense returns an r×c zero matrix. Both dimensions must be positive;
// use NewFromRows to build zero-area values from data.
//
// Errors: ErrInvalidDimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols)
}

// newDenseZeroOK is NewDense without the positivity requirement.
// Kernels use it so that e.g. Transpose of a 3×0 input is a 0×3 result.
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols(). A 0×0 matrix is square.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// offset maps (row, col) to the buffer index, or reports ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns m[row, col].
//
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[off], nil
}

// Set writes v to m[row, col]. The bounds check runs before the numeric
// policy, so an out-of-range NaN reports ErrOutOfRange.
//
// Errors: ErrOutOfRange, ErrNaNInf (when the policy is on).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent deep copy.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           append([]float64(nil), m.data...),
		validateNaNInf: m.validateNaNInf,
	}
}

// rowViews returns one slice header per row, all aliasing m.data.
// Swapping headers permutes rows without moving data; capacities are capped so
// an append never spills into the next row.
func (m *Dense) rowViews() [][]float64 {
	views := make([][]float64, m.r)
	for i := range views {
		views[i] = m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return views
}

// ToRows returns the entries as fresh row slices sharing nothing with m.
func (m *Dense) ToRows() [][]float64 { return m.clone().rowViews() }

// String renders one bracketed line per row using the shortest %g form:
//
//	[1, 2]
//	[3, 4.5]
func (m *Dense) String() string {
	var b strings.Builder
	for _, row := range m.rowViews() {
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Induced copies the submatrix picked by rowsIdx × colsIdx, in the listed
// order. Repeated indices are allowed; empty lists give a zero-area result.
//
// Errors: ErrOutOfRange when any index falls outside m.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	for _, i := range rowsIdx {
		if i < 0 || i >= m.r {
			return nil, fmt.Errorf("Dense.Induced: row index %d: %w", i, ErrOutOfRange)
		}
	}
	for _, j := range colsIdx {
		if j < 0 || j >= m.c {
			return nil, fmt.Errorf("Dense.Induced: col index %d: %w", j, ErrOutOfRange)
		}
	}

	sub, err := newDenseZeroOK(len(rowsIdx), len(colsIdx))
	if err != nil {
		return nil, err
	}
	sub.validateNaNInf = m.validateNaNInf
	k := 0
	for _, i := range rowsIdx {
		base := i * m.c
		for _, j := range colsIdx {
			sub.data[k] = m.data[base+j]
			k++
		}
	}

	return sub, nil
}

// asDense hands back m itself when it is a *Dense, or a snapshot read through
// At otherwise. Callers must not write to the result.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	snap, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i, row := range snap.rowViews() {
		for j := range row {
			if row[j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return snap, nil
}
