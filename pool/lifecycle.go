package pool

import "sync"

// lifecycleCoordinator runs the pool shutdown sequence exactly once.
// It owns nothing; it orders the steps handed to it by the Pool.
type lifecycleCoordinator struct {
	stopIntake  func() []*Job
	failPending func([]*Job)
	workers     *sync.WaitGroup
	release     func()

	once sync.Once
}

func newLifecycleCoordinator(
	stopIntake func() []*Job,
	failPending func([]*Job),
	workers *sync.WaitGroup,
	release func(),
) *lifecycleCoordinator {
	return &lifecycleCoordinator{
		stopIntake:  stopIntake,
		failPending: failPending,
		workers:     workers,
		release:     release,
	}
}

// Close executes:
// 1) set the shutdown flag and wake idle workers, collecting never-dequeued jobs
// 2) complete those jobs with ErrClosed
// 3) join every worker (each finishes at most the job it is executing)
// 4) release remaining resources
func (lc *lifecycleCoordinator) Close() {
	lc.once.Do(func() {
		var pending []*Job
		if lc.stopIntake != nil {
			pending = lc.stopIntake()
		}
		if lc.failPending != nil && len(pending) > 0 {
			lc.failPending(pending)
		}
		if lc.workers != nil {
			lc.workers.Wait()
		}
		if lc.release != nil {
			lc.release()
		}
	})
}
