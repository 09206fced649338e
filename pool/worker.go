package pool

import (
	"errors"
	"sync/atomic"
	"time"
)

// State is the lifecycle state of a worker goroutine.
type State int32

const (
	StateWaiting State = iota
	StateExecuting
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateExecuting:
		return "executing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// worker pulls jobs from the queue until the queue is closed:
// WAITING -> EXECUTING -> WAITING -> ... -> TERMINATED.
type worker struct {
	id    int
	state atomic.Int32
	q     *queue
	poll  time.Duration
	inst  *instruments
}

func newWorker(id int, q *queue, poll time.Duration, inst *instruments) *worker {
	return &worker{id: id, q: q, poll: poll, inst: inst}
}

func (w *worker) run() {
	defer w.setState(StateTerminated)
	for {
		w.setState(StateWaiting)
		j, ok := w.q.pop(w.poll)
		if !ok {
			return
		}
		w.inst.queueDepth.Add(-1)
		w.setState(StateExecuting)
		w.execute(j)
	}
}

func (w *worker) execute(j *Job) {
	w.inst.busy.Add(1)
	start := time.Now()
	err := j.execute()
	w.inst.duration.Record(time.Since(start).Seconds())
	w.inst.busy.Add(-1)

	if errors.Is(err, ErrJobPanicked) {
		w.inst.panicked.Add(1)
	}
	w.inst.completed.Add(1)
	j.complete(err)
}

func (w *worker) setState(s State) { w.state.Store(int32(s)) }

func (w *worker) State() State { return State(w.state.Load()) }
