// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/parmatrix/parallel"
	"github.com/rs/zerolog"
)

// Engine runs the arithmetic kernels on a reusable worker pool instead of
// spawning goroutines per call. Results are identical to the package-level
// functions; only goroutine reuse differs.
//
// An Engine is safe for concurrent use. Close releases an owned pool.
// Use NewEngine; on the zero value every operation fails with
// parallel.ErrPoolClosed.
type Engine struct {
	pool  *parallel.Pool
	owned bool
	log   zerolog.Logger
}

// NewEngine builds an Engine from options.
// Without WithPool it starts a pool of WithWorkers(n) goroutines
// (hardware concurrency by default).
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	e := &Engine{pool: o.pool, log: o.logger}
	if e.pool == nil {
		e.pool = parallel.NewPool(parallel.WithWorkers(o.workers), parallel.WithLogger(o.logger))
		e.owned = true
	}
	e.log.Debug().Int("workers", e.pool.Size()).Bool("owned", e.owned).Msg("engine ready")

	return e
}

// Workers reports the size of the underlying pool.
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 0
	}

	return e.pool.Size()
}

// run adapts the pool to the kernel runner signature.
func (e *Engine) run(rows int, chunk func(start, end int)) error {
	if e.pool == nil {
		return parallel.ErrPoolClosed
	}

	return e.pool.Run(rows, chunk)
}

// Mul is the pooled counterpart of Mul.
func (e *Engine) Mul(a, b *Dense) (*Dense, error) { return mul(e.run, a, b) }

// Add is the pooled counterpart of Add.
func (e *Engine) Add(a, b *Dense) (*Dense, error) { return addSub(e.run, a, b, +1, opAdd) }

// Sub is the pooled counterpart of Sub.
func (e *Engine) Sub(a, b *Dense) (*Dense, error) { return addSub(e.run, a, b, -1, opSub) }

// Hadamard is the pooled counterpart of Hadamard.
func (e *Engine) Hadamard(a, b *Dense) (*Dense, error) { return hadamard(e.run, a, b) }

// Scale is the pooled counterpart of Scale.
func (e *Engine) Scale(m *Dense, alpha float64) (*Dense, error) { return scale(e.run, m, alpha) }

// Transpose is the pooled counterpart of Transpose.
func (e *Engine) Transpose(m *Dense) (*Dense, error) { return transpose(e.run, m) }

// Close stops an owned pool; a borrowed pool is left running.
// After Close every operation returns parallel.ErrPoolClosed (wrapped).
func (e *Engine) Close() error {
	if !e.owned {
		return nil
	}

	return e.pool.Close()
}
