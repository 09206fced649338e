package tensor

import "sync/atomic"

// liveBuffers counts buffers allocated and not yet released.
var liveBuffers atomic.Int64

// Buffer is the flat element storage shared by every View derived from the same New or Clone.
// It is allocated once and released when the last View referencing it is freed.
type Buffer struct {
	data []float64
	refs atomic.Int64
}

func newBuffer(n int) *Buffer {
	b := &Buffer{data: make([]float64, n)}
	b.refs.Store(1)
	liveBuffers.Add(1)
	return b
}

func (b *Buffer) retain() { b.refs.Add(1) }

// release drops one reference and frees the storage when it was the last one.
func (b *Buffer) release() bool {
	if b.refs.Add(-1) > 0 {
		return false
	}
	b.data = nil
	liveBuffers.Add(-1)
	return true
}

// Refs returns the number of Views currently referencing the buffer.
func (b *Buffer) Refs() int64 { return b.refs.Load() }

// Len returns the element count, or 0 once released.
func (b *Buffer) Len() int { return len(b.data) }

// Released reports whether the storage has been released.
func (b *Buffer) Released() bool { return b.refs.Load() <= 0 }

// LiveBuffers returns the number of buffers allocated by New and Clone that have
// not been released yet. Tests use it to check that every View was freed.
func LiveBuffers() int64 { return liveBuffers.Load() }
