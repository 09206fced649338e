package pool

import (
	"sync"
	"time"
)

// queue is an unbounded FIFO of pending jobs guarded by mu and signaled by cond.
// closed doubles as the shutdown flag observed by idle workers.
type queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	jobs   []*Job
	head   int
	closed bool
}

func newQueue(capHint int) *queue {
	q := &queue{jobs: make([]*Job, 0, capHint)}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends j at the tail and wakes one idle worker.
func (q *queue) push(j *Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	q.jobs = append(q.jobs, j)
	q.cond.Signal()
	return nil
}

// pop removes the head job, waiting while the queue is empty.
// Every wait is bounded by poll; on each wake the shutdown flag is checked before
// emptiness. ok is false once the queue has been closed.
func (q *queue) pop(poll time.Duration) (j *Job, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.closed {
			return nil, false
		}
		if q.head < len(q.jobs) {
			return q.takeLocked(), true
		}
		q.waitLocked(poll)
	}
}

func (q *queue) takeLocked() *Job {
	j := q.jobs[q.head]
	q.jobs[q.head] = nil
	q.head++
	if q.head == len(q.jobs) {
		// reuse the backing array once drained
		q.jobs = q.jobs[:0]
		q.head = 0
	}
	return j
}

// waitLocked blocks on cond for at most d. The timer broadcast takes mu, so it
// cannot fire between the caller's emptiness check and Wait parking the goroutine.
func (q *queue) waitLocked(d time.Duration) {
	t := time.AfterFunc(d, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
	q.cond.Wait()
	t.Stop()
}

// close sets the shutdown flag, wakes every waiter and returns the jobs that were never dequeued.
func (q *queue) close() []*Job {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil
	}
	q.closed = true
	pending := make([]*Job, len(q.jobs)-q.head)
	copy(pending, q.jobs[q.head:])
	q.jobs = nil
	q.head = 0
	q.cond.Broadcast()
	return pending
}

// len returns the number of queued jobs.
func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs) - q.head
}
