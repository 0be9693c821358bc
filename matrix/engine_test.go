// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/parmatrix/matrix"
	"github.com/katalvlaran/parmatrix/parallel"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// allOps runs every kernel through e on (a, b) with matching shapes:
// a is r×n, b is n×c, and same-shape kernels use a with sq (r×n).
func allOps(t *testing.T, e *matrix.Engine, a, b, sq *matrix.Dense) map[string]*matrix.Dense {
	t.Helper()
	out := map[string]*matrix.Dense{}
	var err error
	out["Mul"], err = e.Mul(a, b)
	require.NoError(t, err)
	out["Add"], err = e.Add(a, sq)
	require.NoError(t, err)
	out["Sub"], err = e.Sub(a, sq)
	require.NoError(t, err)
	out["Hadamard"], err = e.Hadamard(a, sq)
	require.NoError(t, err)
	out["Scale"], err = e.Scale(a, -2.5)
	require.NoError(t, err)
	out["Transpose"], err = e.Transpose(a)
	require.NoError(t, err)

	return out
}

// TestPartitionInvariance: results are bit-identical for any worker count,
// on row counts both divisible and not divisible by it.
func TestPartitionInvariance(t *testing.T) {
	for _, dims := range [][3]int{{7, 3, 5}, {8, 4, 8}, {1, 6, 2}, {29, 13, 17}} {
		A := mustDense(t, dims[0], dims[1])
		B := mustDense(t, dims[1], dims[2])
		S := mustDense(t, dims[0], dims[1])
		fillDenseRand(t, A, 101)
		fillDenseRand(t, B, 202)
		fillDenseRand(t, S, 303)

		base := matrix.NewEngine(matrix.WithWorkers(1))
		want := allOps(t, base, A, B, S)
		require.NoError(t, base.Close())

		for _, w := range []int{2, 3, 4, 7, 16} {
			t.Run(fmt.Sprintf("%dx%dx%d/w=%d", dims[0], dims[1], dims[2], w), func(t *testing.T) {
				e := matrix.NewEngine(matrix.WithWorkers(w))
				defer e.Close()
				require.Equal(t, w, e.Workers())

				got := allOps(t, e, A, B, S)
				for name, m := range want {
					require.True(t, m.Equal(got[name]), "%s differs", name)
				}
			})
		}
	}
}

// TestEngineMatchesPackageFunctions compares pooled and per-call execution.
func TestEngineMatchesPackageFunctions(t *testing.T) {
	A := mustDense(t, 10, 10)
	B := mustDense(t, 10, 10)
	fillDenseRand(t, A, 1)
	fillDenseRand(t, B, 2)

	e := matrix.NewEngine()
	defer e.Close()
	require.Equal(t, parallel.HardwareWorkers(), e.Workers())

	got, err := e.Mul(A, B)
	require.NoError(t, err)
	ref, err := matrix.Mul(A, B)
	require.NoError(t, err)
	require.True(t, got.Equal(ref))

	got, err = e.Transpose(A)
	require.NoError(t, err)
	ref, err = matrix.Transpose(A)
	require.NoError(t, err)
	require.True(t, got.Equal(ref))
}

// TestEngineShapeErrorsBeforeWork ensures validation happens first.
func TestEngineShapeErrorsBeforeWork(t *testing.T) {
	e := matrix.NewEngine(matrix.WithWorkers(2))
	defer e.Close()

	res, err := e.Mul(mustDense(t, 2, 3), mustDense(t, 2, 3))
	require.Nil(t, res)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	res, err = e.Add(mustDense(t, 2, 3), mustDense(t, 3, 2))
	require.Nil(t, res)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestEngineClosed reports ErrPoolClosed after Close.
func TestEngineClosed(t *testing.T) {
	e := matrix.NewEngine(matrix.WithWorkers(2))
	require.NoError(t, e.Close())

	A := mustDense(t, 2, 2)
	_, err := e.Add(A, A)
	require.ErrorIs(t, err, parallel.ErrPoolClosed)
	_, err = e.Scale(A, 2)
	require.ErrorIs(t, err, parallel.ErrPoolClosed)
}

// TestEngineZeroValue fails operations on an Engine not built by NewEngine.
func TestEngineZeroValue(t *testing.T) {
	var e matrix.Engine
	require.Equal(t, 0, e.Workers())

	A := mustDense(t, 2, 2)
	_, err := e.Mul(A, A)
	require.ErrorIs(t, err, parallel.ErrPoolClosed)
	require.NoError(t, e.Close())
}

// TestEngineBorrowedPool shares one pool between engines and leaves it open.
func TestEngineBorrowedPool(t *testing.T) {
	p := parallel.NewPool(parallel.WithWorkers(3))
	defer p.Close()

	e1 := matrix.NewEngine(matrix.WithPool(p), matrix.WithWorkers(9)) // pool wins
	e2 := matrix.NewEngine(matrix.WithPool(p))
	require.Equal(t, 3, e1.Workers())

	A, B := fixtureAB(t)
	require.NoError(t, e1.Close())
	got, err := e2.Mul(A, B) // pool still running
	require.NoError(t, err)
	require.Equal(t, "[19, 22]\n[43, 50]\n", got.String())
}

// TestEngineConcurrentCallers runs many operations at once on one engine.
func TestEngineConcurrentCallers(t *testing.T) {
	e := matrix.NewEngine(matrix.WithWorkers(4))
	defer e.Close()

	A := mustDense(t, 23, 19)
	B := mustDense(t, 19, 21)
	fillDenseRand(t, A, 8)
	fillDenseRand(t, B, 9)
	want, err := matrix.Mul(A, B)
	require.NoError(t, err)

	const callers = 12
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			got, err := e.Mul(A, B)
			require.NoError(t, err)
			require.True(t, got.Equal(want))
		}()
	}
	wg.Wait()
}

// TestEngineLogs checks the logger reaches the engine and its pool.
func TestEngineLogs(t *testing.T) {
	var buf bytes.Buffer
	e := matrix.NewEngine(matrix.WithWorkers(2), matrix.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, e.Close())

	out := buf.String()
	require.Contains(t, out, "pool started")
	require.Contains(t, out, "engine ready")
	require.Contains(t, out, "pool stopped")
}

// TestOptionPanics guards the option constructors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithWorkers(-1) })
	require.Panics(t, func() { matrix.WithPool(nil) })
}
