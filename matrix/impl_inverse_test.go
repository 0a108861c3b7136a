package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matsolve/matrix"
)

func TestInverse_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want [][]float64
	}{
		{"1x1", [][]float64{{4}}, [][]float64{{0.25}}},
		{"2x2", [][]float64{{4, 7}, {2, 6}}, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}},
		{"3x3", [][]float64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}, [][]float64{{-24, 18, 5}, {20, -15, -4}, {-5, 4, 1}}},
		{"diagonal 4x4", [][]float64{{2, 0, 0, 0}, {0, 4, 0, 0}, {0, 0, 5, 0}, {0, 0, 0, 8}},
			[][]float64{{0.5, 0, 0, 0}, {0, 0.25, 0, 0}, {0, 0, 0.2, 0}, {0, 0, 0, 0.125}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.rows)
			inv, err := matrix.Inverse(m)
			require.NoError(t, err)
			CompareClose(t, tc.want, inv, 1e-12)
			// Input untouched.
			CompareExact(t, tc.rows, m)
		})
	}
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		m        matrix.Matrix
		wantErr  error
		wantKind matrix.ErrorKind
	}{
		{"proportional rows", MustRows(t, [][]float64{{1, 2}, {2, 4}}), matrix.ErrSingular, matrix.KindSingular},
		{"zero 1x1", MustRows(t, [][]float64{{0}}), matrix.ErrSingular, matrix.KindSingular},
		{"singular 3x3", MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}), matrix.ErrSingular, matrix.KindSingular},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare, matrix.KindDimension},
		{"empty", MustRows(t, nil), matrix.ErrEmpty, matrix.KindDimension},
		{"nil", nil, matrix.ErrNilMatrix, matrix.KindInput},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			inv, err := matrix.Inverse(tc.m)
			require.Nil(t, inv)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, tc.wantKind, matrix.KindOf(err))
		})
	}
}

// TestInverse_RoundTrip checks A × A⁻¹ = I within 1e-9 per entry.
func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		for _, seed := range []int64{7, 11} {
			n, seed := n, seed
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				a := DiagDominant(t, n, seed)
				inv, err := matrix.Inverse(a)
				require.NoError(t, err)

				prod, err := matrix.Mul(a, inv)
				require.NoError(t, err)
				ok, err := matrix.IsIdentity(prod, 1e-9)
				require.NoError(t, err)
				require.True(t, ok, "A×A⁻¹ =\n%v", prod)
			})
		}
	}
}

// TestInverse_TransposeOfScaledCofactors checks the result layout: inv[j][i] = C[i][j]/det.
func TestInverse_TransposeOfScaledCofactors(t *testing.T) {
	var (
		m   *matrix.Dense
		det float64
		err error
	)
	// First seed with a non-singular draw.
	for seed := int64(3); det == 0; seed++ {
		m = RandIntDense(t, 4, 4, seed, -6, 6)
		det, err = matrix.Determinant(m)
		require.NoError(t, err)
	}

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c, err := matrix.Cofactor(m, i, j)
			require.NoError(t, err)
			require.Equal(t, c/det, MustAt(t, inv, j, i))
		}
	}
}

func TestInverse_FallbackMatchesFastPath(t *testing.T) {
	m := DiagDominant(t, 4, 5)
	fast, err := matrix.Inverse(m)
	require.NoError(t, err)
	slow, err := matrix.Inverse(hide{m})
	require.NoError(t, err)
	require.Equal(t, Rows(t, fast), Rows(t, slow))
}
