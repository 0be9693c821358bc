// SPDX-License-Identifier: MIT

package parallel

import (
	"sync"

	"github.com/rs/zerolog"
)

// task is one chunk of a batch waiting for a pool worker.
type task struct {
	r  Range
	fn func(start, end int)
	b  *batch
}

// Pool is a bounded set of long-lived worker goroutines.
// Each Run call is partitioned exactly like ApplyN(rows, pool.Size(), fn),
// queued, and awaited; results are indistinguishable from per-call spawning.
//
// A Pool is safe for concurrent Run calls. A chunk must not call Run on the
// pool that is executing it. Use NewPool; the zero value rejects every Run
// with ErrPoolClosed.
type Pool struct {
	size   int
	queue  chan task
	log    zerolog.Logger
	mu     sync.RWMutex // guards closed against in-flight enqueues
	closed bool
	done   sync.WaitGroup
}

// NewPool starts the worker goroutines and returns the pool.
// Complexity: O(N) goroutine launches.
func NewPool(opts ...Option) *Pool {
	o := gatherOptions(opts...)
	p := &Pool{
		size:  o.workers,
		queue: make(chan task, o.workers*DefaultQueueFactor),
		log:   o.logger,
	}
	p.done.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.worker()
	}
	p.log.Debug().Int("workers", p.size).Msg("pool started")

	return p
}

// worker drains the queue until Close.
// A chunk that calls runtime.Goexit takes the worker down with it; the
// replacement inherits its slot in done so Size stays accurate.
func (p *Pool) worker() {
	exited := true
	defer func() {
		if exited {
			p.log.Warn().Msg("worker exited via runtime.Goexit, replacing")
			go p.worker()

			return
		}
		p.done.Done()
	}()
	for t := range p.queue {
		t.b.exec(t.r, t.fn)
	}
	exited = false
}

// Size returns the number of worker goroutines.
func (p *Pool) Size() int { return p.size }

// Run executes fn over [0, rows) on the pool and blocks until every chunk
// has finished.
// Implementation:
//   - Stage 1: partition with T = min(Size(), rows).
//   - Stage 2: enqueue all chunks under the read lock (Close cannot interleave).
//   - Stage 3: wait for the batch; re-panic a recorded worker panic.
//
// Errors:
//   - ErrPoolClosed when Close has already been called.
func (p *Pool) Run(rows int, fn func(start, end int)) error {
	if p.queue == nil {
		return ErrPoolClosed
	}
	ranges := Partition(rows, p.size)

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPoolClosed
	}
	if len(ranges) == 0 {
		p.mu.RUnlock()
		return nil
	}
	b := &batch{}
	b.wg.Add(len(ranges))
	for _, r := range ranges {
		p.queue <- task{r: r, fn: fn, b: b}
	}
	p.mu.RUnlock()

	b.wg.Wait()
	if b.fault != nil {
		p.log.Error().
			Int("start", b.fault.Range.Start).
			Int("end", b.fault.Range.End).
			Interface("panic", b.fault.Value).
			Msg("worker panic")
		panic(b.fault)
	}

	return nil
}

// Close stops accepting batches, lets queued chunks finish and waits for
// every worker to exit. Closing twice is a no-op.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed || p.queue == nil {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.done.Wait()
	p.log.Debug().Int("workers", p.size).Msg("pool stopped")

	return nil
}
