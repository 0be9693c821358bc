// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime/debug"
	"sync"
)

// batch joins the chunks of a single call and remembers the first panic.
type batch struct {
	wg    sync.WaitGroup
	once  sync.Once
	fault *PanicError
}

// exec runs fn over r, converting a panic or a runtime.Goexit into the
// batch fault. A Goexit still unwinds the calling goroutine after recording.
func (b *batch) exec(r Range, fn func(start, end int)) {
	defer b.wg.Done()
	completed := false
	defer func() {
		v := recover()
		if v == nil && completed {
			return
		}
		if v == nil {
			v = ErrWorkerExited
		}
		b.once.Do(func() {
			b.fault = &PanicError{Value: v, Range: r, Stack: debug.Stack()}
		})
	}()
	fn(r.Start, r.End)
	completed = true
}

// wait blocks until every chunk is done and re-panics a recorded fault.
func (b *batch) wait() {
	b.wg.Wait()
	if b.fault != nil {
		panic(b.fault)
	}
}

// Apply runs fn over [0, rows) with one goroutine per chunk, sized to the
// hardware concurrency, and returns after all goroutines have joined.
// Complexity: O(T) goroutine launches plus the cost of fn.
func Apply(rows int, fn func(start, end int)) {
	ApplyN(rows, HardwareWorkers(), fn)
}

// ApplyN is Apply with an explicit worker count.
// MAIN DESCRIPTION:
//   - Fresh goroutines per call; nothing outlives the call.
//
// Behavior highlights:
//   - rows <= 0 returns immediately without launching anything.
//   - workers <= 0 is treated as 1.
//   - A single chunk runs inline on the caller's goroutine.
//   - A panicking chunk re-panics here as *PanicError after the join; a chunk
//     that calls runtime.Goexit does too, with Value ErrWorkerExited.
//   - On the inline path a Goexit unwinds the caller itself.
func ApplyN(rows, workers int, fn func(start, end int)) {
	ranges := Partition(rows, workers)
	if len(ranges) == 0 {
		return
	}
	b := &batch{}
	b.wg.Add(len(ranges))
	if len(ranges) == 1 {
		b.exec(ranges[0], fn)
		b.wait()

		return
	}
	for _, r := range ranges {
		go b.exec(r, fn)
	}
	b.wait()
}
