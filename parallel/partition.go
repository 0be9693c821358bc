// SPDX-License-Identifier: MIT

package parallel

import "runtime"

// Range is a half-open row interval [Start, End) assigned to one worker.
type Range struct {
	Start int // first row (inclusive)
	End   int // last row (exclusive)
}

// Len returns the number of rows covered by r.
func (r Range) Len() int { return r.End - r.Start }

// HardwareWorkers reports the usable hardware concurrency, never less than 1.
func HardwareWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1 // an unreported concurrency must not reach the chunk division
	}

	return n
}

// Workers returns the degree of parallelism for rows rows on hw workers.
// Complexity: O(1).
//
// Behavior highlights:
//   - rows <= 0 yields 0 (no goroutine is launched).
//   - hw <= 0 is clamped to 1.
//   - Never returns more workers than rows, so no chunk is empty.
func Workers(rows, hw int) int {
	if rows <= 0 {
		return 0
	}
	if hw < 1 {
		hw = 1
	}

	return min(hw, rows)
}

// Partition splits [0, rows) into Workers(rows, workers) contiguous ranges.
// MAIN DESCRIPTION:
//   - Fixed-size chunks of rows/T rows; the final chunk takes the remainder.
//
// Implementation:
//   - Stage 1: resolve T via Workers (clamps workers to >= 1).
//   - Stage 2: chunk = rows / T (T >= 1 here, so the division is safe).
//   - Stage 3: emit T ranges, the last one ending at rows.
//
// Returns:
//   - nil when rows <= 0; otherwise exactly T ranges.
//
// Complexity:
//   - Time O(T), Space O(T).
func Partition(rows, workers int) []Range {
	t := Workers(rows, workers)
	if t == 0 {
		return nil
	}
	chunk := rows / t

	out := make([]Range, t)
	for i := 0; i < t; i++ {
		out[i] = Range{Start: i * chunk, End: (i + 1) * chunk}
	}
	out[t-1].End = rows // absorb the remainder

	return out
}
