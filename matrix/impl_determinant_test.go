package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matsolve/matrix"
)

func TestDeterminant_Textbook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"3x3 singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
		{"4x4 zero row", [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {0, 0, 0, 0}, {9, 1, 2, 3}}, 0},
		{"5x5 upper triangular", [][]float64{
			{1, 9, 9, 9, 9},
			{0, 2, 9, 9, 9},
			{0, 0, 3, 9, 9},
			{0, 0, 0, 4, 9},
			{0, 0, 0, 0, 5},
		}, 120},
		{"4x4 swapped identity rows", [][]float64{{0, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, -1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDeterminant_IdentityAnyOrder(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 7; n++ {
		n := n
		t.Run(fmt.Sprintf("I%d", n), func(t *testing.T) {
			I, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			got, err := matrix.Determinant(I)
			require.NoError(t, err)
			require.Equal(t, 1.0, got)
		})
	}
}

// TestDeterminant_ZeroRowAnyOrder puts a zero row at every position.
func TestDeterminant_ZeroRowAnyOrder(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		for zr := 0; zr < n; zr++ {
			m := RandIntDense(t, n, n, int64(10*n+zr), -5, 5)
			for j := 0; j < n; j++ {
				require.NoError(t, m.Set(zr, j, 0))
			}
			got, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.Equal(t, 0.0, got, "n=%d zero row %d", n, zr)
		}
	}
}

func TestDeterminant_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Equal(t, matrix.KindDimension, matrix.KindOf(err))

	_, err = matrix.Determinant(MustRows(t, nil))
	require.ErrorIs(t, err, matrix.ErrEmpty)
	require.Equal(t, matrix.KindDimension, matrix.KindOf(err))

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDeterminant_FallbackMatchesFastPath checks the non-*Dense path.
func TestDeterminant_FallbackMatchesFastPath(t *testing.T) {
	m := RandIntDense(t, 5, 5, 42, -4, 4)
	fast, err := matrix.Determinant(m)
	require.NoError(t, err)
	slow, err := matrix.Determinant(hide{m})
	require.NoError(t, err)
	require.Equal(t, fast, slow)
}

// TestDeterminant_NonFinite ensures NaN/Inf input propagates without panicking.
func TestDeterminant_NonFinite(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{math.NaN(), 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, math.Inf(1), 0},
		{0, 0, 0, 1},
	}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	require.NotPanics(t, func() {
		det, err := matrix.Determinant(m)
		require.NoError(t, err)
		require.True(t, math.IsNaN(det))
	})
}

func TestCofactor(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})
	// Cofactor matrix of m is [[24,5,-4],[-12,3,2],[-2,-5,4]].
	want := [][]float64{{24, 5, -4}, {-12, 3, 2}, {-2, -5, 4}}
	for i := range want {
		for j := range want[i] {
			got, err := matrix.Cofactor(m, i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], got, "C[%d][%d]", i, j)
		}
	}

	one, err := matrix.Cofactor(MustRows(t, [][]float64{{9}}), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, one)

	_, err = matrix.Cofactor(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Cofactor(MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
