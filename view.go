package tensor

import "fmt"

// View is a shaped, strided window into a Buffer.
//
// Shape and strides belong to the View alone, even between a parent and the
// slices derived from it; only the Buffer is shared. Two Views alias each other
// exactly when they reference the same Buffer.
//
// A View is not safe for concurrent use: creating slices of it and freeing it
// must happen on one controlling goroutine. Element reads and writes through
// disjoint slices may run concurrently.
type View struct {
	shape   Shape
	strides []int
	offset  int
	buf     *Buffer
}

// New allocates a zeroed View with row-major strides, offset 0 and a fresh Buffer
// referenced once. It panics on a negative extent.
func New(shape ...int) *View {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		panic(err)
	}
	return &View{
		shape:   s,
		strides: s.ComputeStrides(),
		buf:     newBuffer(s.NumElements()),
	}
}

// Free releases the View's shape and strides and drops its Buffer reference.
// The Buffer is released when this was the last View referencing it.
// Freeing an already freed View does nothing.
func (v *View) Free() {
	if v == nil || v.buf == nil {
		return
	}
	v.shape = nil
	v.strides = nil
	v.buf.release()
	v.buf = nil
}

// Clone copies v into a new contiguous row-major View with its own Buffer.
// The source is read in its logical order, honoring its strides and offset.
func (v *View) Clone() *View {
	c := New(v.shape...)
	dst := c.buf.data
	i := 0
	v.walk(func(pos int) {
		dst[i] = v.buf.data[pos]
		i++
	})
	return c
}

func (v *View) Rank() int { return len(v.shape) }

// Shape returns a copy of the extents, or nil after Free.
func (v *View) Shape() Shape {
	if v.shape == nil {
		return nil
	}
	return v.shape.Clone()
}

// Strides returns a copy of the strides, or nil after Free.
func (v *View) Strides() []int {
	if v.strides == nil {
		return nil
	}
	s := make([]int, len(v.strides))
	copy(s, v.strides)
	return s
}

func (v *View) Offset() int { return v.offset }

// Len returns the number of elements addressed by the View.
func (v *View) Len() int { return v.shape.NumElements() }

// Buffer returns the shared storage. It is nil after Free.
func (v *View) Buffer() *Buffer { return v.buf }

// Aliases reports whether v and other share a Buffer.
func (v *View) Aliases(other *View) bool {
	return v.buf != nil && other != nil && v.buf == other.buf
}

// IsContiguous reports whether the strides are row-major for the current shape.
func (v *View) IsContiguous() bool {
	want := v.shape.ComputeStrides()
	for i := range want {
		if v.shape[i] > 1 && v.strides[i] != want[i] {
			return false
		}
	}
	return true
}

func (v *View) String() string {
	if v.buf == nil {
		return "View(freed)"
	}
	return fmt.Sprintf("View(shape=%v, strides=%v, offset=%d)", []int(v.shape), v.strides, v.offset)
}
