package tensor

import (
	"errors"
	"fmt"
)

// IndexedError is an error raised by the job for one index of a parallel axis loop.
type IndexedError interface {
	error
	Unwrap() error
	SliceIndex() int
}

type indexedError struct {
	err   error
	index int
}

func newIndexedError(err error, index int) error {
	if err == nil {
		return nil
	}
	return &indexedError{err: err, index: index}
}

func (e *indexedError) Error() string   { return e.err.Error() }
func (e *indexedError) Unwrap() error   { return e.err }
func (e *indexedError) SliceIndex() int { return e.index }

func (e *indexedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "slice(index=%d): %+v", e.index, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractIndex returns the slice index carried by err, if any.
// For an errors.Join result it reports the first indexed error found.
func ExtractIndex(err error) (int, bool) {
	var ie IndexedError
	if errors.As(err, &ie) {
		return ie.SliceIndex(), true
	}
	return 0, false
}
