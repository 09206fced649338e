package pool

import "errors"

const Namespace = "pool"

var (
	ErrClosed        = errors.New(Namespace + ": pool is closed")
	ErrNilPool       = errors.New(Namespace + ": nil pool")
	ErrNilTask       = errors.New(Namespace + ": nil task")
	ErrJobPanicked   = errors.New(Namespace + ": job panicked")
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
