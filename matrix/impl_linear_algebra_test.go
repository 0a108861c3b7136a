// Package matrix_test contains unit tests for Mul, Transpose and Minor.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matsolve/matrix"
)

func TestMul_KnownProduct(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, got)

	// Operands are untouched.
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a)
	CompareExact(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}, b)
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, matrix.KindDimensionMismatch, matrix.KindOf(err))

	_, err = matrix.Mul(nil, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_ZeroInnerDimension(t *testing.T) {
	a := MustRows(t, [][]float64{{}, {}})
	b := MustRows(t, nil)
	// 2×0 times 0×0 is a 2×0 result.
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 0, got.Cols())
}

// TestMul_FallbackMatchesFastPath checks that hiding *Dense gives identical results.
func TestMul_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 3} {
		a := RandIntDense(t, 4, 3, seed, -9, 9)
		b := RandIntDense(t, 3, 5, seed+100, -9, 9)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			fast, err := matrix.Mul(a, b)
			require.NoError(t, err)
			slow, err := matrix.Mul(hide{a}, b)
			require.NoError(t, err)
			require.Equal(t, Rows(t, fast), Rows(t, slow))
		})
	}
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, got)

	slow, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	require.Equal(t, Rows(t, got), Rows(t, slow))

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose_ZeroArea(t *testing.T) {
	m := MustRows(t, [][]float64{{}, {}, {}})
	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
	require.Equal(t, 3, got.Cols())
}

func TestMinor(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	tests := []struct {
		row, col int
		want     [][]float64
	}{
		{0, 0, [][]float64{{5, 6}, {8, 9}}},
		{1, 1, [][]float64{{1, 3}, {7, 9}}},
		{2, 0, [][]float64{{2, 3}, {5, 6}}},
		{0, 2, [][]float64{{4, 5}, {7, 8}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("(%d,%d)", tc.row, tc.col), func(t *testing.T) {
			got, err := matrix.Minor(m, tc.row, tc.col)
			require.NoError(t, err)
			CompareExact(t, tc.want, got)
		})
	}
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m)
}

func TestMinor_Rectangular(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	got, err := matrix.Minor(hide{m}, 1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}}, got)
}

func TestMinor_ContractViolations(t *testing.T) {
	m := MustDense(t, 3, 3)

	_, err := matrix.Minor(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, matrix.KindInternal, matrix.KindOf(err))

	_, err = matrix.Minor(MustDense(t, 1, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Minor(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
