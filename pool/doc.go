// Package pool runs closures on a fixed set of long-lived worker goroutines.
//
// Jobs go through an unbounded FIFO queue guarded by a mutex and signaled by a
// condition variable. Idle workers wait on that condition variable for at most
// the poll interval, then re-check the shutdown flag before re-checking the
// queue, so shutdown latency is bounded by the poll interval even when no
// wakeup is delivered.
//
// Every Job carries its own completion signal. Callers wait per job, so they
// observe completions in the order they choose to wait, not in the order the
// jobs actually finished.
//
// Defaults
//   - Workers: 4
//   - PollInterval: 100ms
//   - Metrics: no-op provider
//
// Lifecycle
//   - New starts all workers; there is no separate start step.
//   - Close (or cancelling the context given to New) stops intake, completes
//     queued jobs with ErrClosed, and joins every worker.
//   - Submit after shutdown returns ErrClosed.
package pool
