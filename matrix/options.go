// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"github.com/katalvlaran/parmatrix/parallel"
	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

// DefaultWorkers selects the hardware concurrency for an Engine-owned pool.
const DefaultWorkers = parallel.DefaultWorkers

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 0"
	panicPoolNil        = "matrix: WithPool: pool must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective Engine configuration.
type Options struct {
	workers int            // DefaultWorkers ⇒ hardware concurrency
	pool    *parallel.Pool // shared pool; nil ⇒ Engine owns one
	logger  zerolog.Logger // forwarded to an owned pool
}

// WithWorkers fixes the worker count of an Engine-owned pool.
// Ignored when WithPool is also given. Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithPool makes the Engine borrow p instead of starting its own.
// The Engine never closes a borrowed pool. Panics on nil.
func WithPool(p *parallel.Pool) Option {
	if p == nil {
		panic(panicPoolNil)
	}

	return func(o *Options) { o.pool = p }
}

// WithLogger sets the logger used by the Engine and its owned pool.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		logger:  zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
