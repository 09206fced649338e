package pool

import (
	"fmt"

	"github.com/ygrebnov/errorc"
)

// Task is a unit of work. It carries its own state by closure; the pool never
// inspects it. A Task that fails must report through a channel of its own.
type Task func()

// Job is a submitted Task together with its own completion signal.
// Each Job completes exactly once: either after its Task ran (or panicked) on a
// worker, or with ErrClosed when the pool shut down before it was dequeued.
type Job struct {
	task Task
	seq  uint64
	done chan struct{}
	err  error
}

func newJob(t Task, seq uint64) *Job {
	return &Job{task: t, seq: seq, done: make(chan struct{})}
}

// Seq is the submission sequence number of the job within its pool, starting at 0.
func (j *Job) Seq() uint64 { return j.seq }

// Done returns a channel closed once the job has completed.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the job has completed and returns its outcome.
func (j *Job) Wait() error {
	<-j.done
	return j.err
}

// Err returns the job outcome, or nil while the job has not completed yet.
func (j *Job) Err() error {
	select {
	case <-j.done:
		return j.err
	default:
		return nil
	}
}

// execute runs the task, converting a panic into an error wrapping ErrJobPanicked.
func (j *Job) execute() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorc.With(ErrJobPanicked, errorc.String("panic", fmt.Sprint(r)))
		}
	}()
	j.task()
	return nil
}

// complete records the outcome and releases every waiter. It must be called once.
func (j *Job) complete(err error) {
	j.err = err
	close(j.done)
}
