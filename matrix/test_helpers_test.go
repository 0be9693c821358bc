// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and a reference GEMM for kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parmatrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// fillDenseRand writes uniform values in [-1, 1) from a fixed seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// fillDenseInts writes small integers so products and sums stay exact.
func fillDenseInts(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, float64(rng.Intn(19)-9)))
		}
	}
}

// general views a Dense copy as a BLAS general matrix.
func general(m *matrix.Dense) blas64.General {
	stride := m.Cols()
	if stride == 0 {
		stride = 1
	}

	return blas64.General{Rows: m.Rows(), Cols: m.Cols(), Stride: stride, Data: m.RawData()}
}

// gemmRef computes a×b with gonum's reference BLAS.
func gemmRef(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	c := mustDense(tb, a.Rows(), b.Cols())
	gc := general(c)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, general(a), general(b), 0, gc)
	out, err := matrix.NewDenseFromData(a.Rows(), b.Cols(), gc.Data)
	require.NoError(tb, err)

	return out
}

// requireClose asserts equal shapes and |x-y| <= tol cell by cell.
func requireClose(tb testing.TB, want, got *matrix.Dense, tol float64) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows())
	require.Equal(tb, want.Cols(), got.Cols())
	w, g := want.RawData(), got.RawData()
	for i := range w {
		require.InDelta(tb, w[i], g[i], tol, "flat index %d", i)
	}
}
