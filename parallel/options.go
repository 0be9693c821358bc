// SPDX-License-Identifier: MIT

package parallel

import "github.com/rs/zerolog"

// DefaultWorkers selects HardwareWorkers() at pool construction time.
const DefaultWorkers = 0

// DefaultQueueFactor sizes the task queue as workers*factor slots.
const DefaultQueueFactor = 4

const panicWorkersInvalid = "parallel: WithWorkers: n must be >= 0"

// Option mutates pool options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved pool configuration.
type Options struct {
	workers int            // 0 ⇒ HardwareWorkers()
	logger  zerolog.Logger // lifecycle and fault logging
}

// WithWorkers fixes the number of pool goroutines (0 = hardware concurrency).
// Panics on negative n (programmer error).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger attaches a zerolog logger to the pool.
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
	if o.workers == DefaultWorkers {
		o.workers = HardwareWorkers()
	}

	return o
}
