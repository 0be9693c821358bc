// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"fmt"
)

// ErrPoolClosed is returned by Run once Close has been called.
var ErrPoolClosed = errors.New("parallel: pool is closed")

// ErrWorkerExited is the PanicError value recorded when a chunk callback
// leaves through runtime.Goexit instead of returning.
var ErrWorkerExited = errors.New("parallel: worker exited via runtime.Goexit")

// PanicError carries a panic recovered inside a chunk callback.
// It is re-panicked on the caller's goroutine after every chunk has joined,
// so a crashing worker fails the whole call instead of dropping its rows.
type PanicError struct {
	Value any    // value passed to panic
	Range Range  // rows the failing chunk was assigned
	Stack []byte // stack of the worker goroutine at recovery time
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: worker panic on rows [%d,%d): %v", e.Range.Start, e.Range.End, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}
