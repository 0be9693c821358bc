// SPDX-License-Identifier: MIT

// Package parallel runs row-indexed computations across goroutines and
// returns only after every row has been processed.
//
// The package offers two execution strategies with identical partitioning:
//
//   - Apply / ApplyN spawn one goroutine per chunk and join them before
//     returning. Nothing outlives the call.
//   - Pool keeps a bounded set of worker goroutines alive and accepts
//     batches through Run, which blocks until the whole batch is done.
//
// Partitioning policy (shared by both):
//
//	T     = min(max(workers, 1), rows)
//	chunk = rows / T
//	range t (t < T-1) = [t*chunk, (t+1)*chunk)
//	range T-1         = [(T-1)*chunk, rows)
//
// The last chunk absorbs the remainder, so ranges are contiguous, disjoint
// and cover [0, rows) exactly once regardless of divisibility.
//
// Callbacks must only write into their own [start, end) rows. A callback
// that panics does not kill the process from a worker goroutine: the panic
// is captured, every other chunk still finishes, and the caller re-panics
// with a *PanicError.
package parallel
