// SPDX-License-Identifier: MIT

// Package batch evaluates many braid kernels concurrently.
//
// Every job is independent: the pipeline in package alexander shares no
// mutable state, so jobs fan out over an errgroup bounded by WithWorkers.
// A failing job records its error on its Outcome and does not stop the
// others; only context cancellation aborts Evaluate.
package batch
