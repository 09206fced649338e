package tensor

import (
	"errors"

	"github.com/ygrebnov/tensor/pool"
)

// AxisFunc processes one slice of a parallel axis loop.
//
// It receives the slice for index along the looped axis and the shared args.
// It must confine reads and writes to slice, must not free or reshape it (the
// loop owns its lifecycle) and must return. Failures are reported through args
// or by panicking; a panic is recovered and returned by the loop, tagged with index.
type AxisFunc[A any] func(slice *View, index int, args A)

// LoopOverAxis runs fn once per index along axis of v on the pool's workers.
//
// It owns the lifecycle of the slices: create one slice per index, submit one job
// per slice, wait for every job in index order, then free the slices. The number
// of jobs equals the extent of axis and may exceed the pool size; excess jobs queue.
//
// Slices along one axis of a View with default strides address disjoint elements,
// so jobs may write to them concurrently without locking. Slicing and freeing all
// happen on the calling goroutine.
//
// Semantics:
//   - ErrNilView, pool.ErrNilPool, ErrNilFunc or ErrInvalidAxis are returned before any job runs.
//   - If the pool stops accepting jobs midway, submission stops; already submitted jobs
//     are still awaited and every slice is freed.
//   - The returned error is errors.Join of every job failure, each tagged with its index
//     (see ExtractIndex), or nil when all jobs succeeded.
func LoopOverAxis[A any](p *pool.Pool, v *View, axis int, fn AxisFunc[A], args A) error {
	switch {
	case v == nil:
		return ErrNilView
	case p == nil:
		return pool.ErrNilPool
	case fn == nil:
		return ErrNilFunc
	case axis < 0 || axis >= v.Rank():
		return invalidAxis(axis, v.Rank())
	}

	slices, jobs, submitErr := submitSlices(p, v, axis, fn, args)
	errs := awaitAndFree(slices, jobs)
	if submitErr != nil {
		errs = append(errs, submitErr)
	}
	return errors.Join(errs...)
}

// LoopOverAxisFunc is LoopOverAxis for functions that need no shared argument.
func LoopOverAxisFunc(p *pool.Pool, v *View, axis int, fn func(slice *View, index int)) error {
	if fn == nil {
		return ErrNilFunc
	}
	return LoopOverAxis(p, v, axis, func(s *View, i int, _ struct{}) { fn(s, i) }, struct{}{})
}

// submitSlices creates one slice per index and submits a job for it until Submit fails.
// slices[i] and jobs[i] belong to index i.
func submitSlices[A any](
	p *pool.Pool, v *View, axis int, fn AxisFunc[A], args A,
) (slices []*View, jobs []*pool.Job, err error) {
	n := v.shape[axis]
	slices = make([]*View, 0, n)
	jobs = make([]*pool.Job, 0, n)
	for i := 0; i < n; i++ {
		s := v.Slice(axis, i)
		j, submitErr := p.Submit(func() { fn(s, i, args) })
		if submitErr != nil {
			s.Free()
			return slices, jobs, newIndexedError(submitErr, i)
		}
		slices = append(slices, s)
		jobs = append(jobs, j)
	}
	return slices, jobs, nil
}

// awaitAndFree waits for each job in index order, then frees its slice.
// It blocks on index i even when a later index finished first.
func awaitAndFree(slices []*View, jobs []*pool.Job) []error {
	var errs []error
	for i, j := range jobs {
		if err := j.Wait(); err != nil {
			errs = append(errs, newIndexedError(err, i))
		}
		slices[i].Free()
	}
	return errs
}
