package tensor

import "fmt"

// SwapAxes exchanges the extents and strides of axes a and b in place.
// The Buffer is untouched: the element reached at (..., x_a, ..., x_b, ...) before
// the swap is reached at (..., x_b, ..., x_a, ...) after it.
func (v *View) SwapAxes(a, b int) error {
	rank := v.Rank()
	if a < 0 || a >= rank {
		return invalidAxis(a, rank)
	}
	if b < 0 || b >= rank {
		return invalidAxis(b, rank)
	}
	v.shape[a], v.shape[b] = v.shape[b], v.shape[a]
	v.strides[a], v.strides[b] = v.strides[b], v.strides[a]
	return nil
}

// Slice fixes axis to index and returns a View of rank-1 over the same Buffer.
// The remaining extents and strides are copied, the offset advances by
// index*stride[axis], and the Buffer gains a reference.
//
// Slice panics when axis or index are out of range, as indexing a Go slice does.
func (v *View) Slice(axis, index int) *View {
	rank := v.Rank()
	if axis < 0 || axis >= rank {
		panic(fmt.Sprintf("%s: slice axis %d out of range for rank %d", Namespace, axis, rank))
	}
	if index < 0 || index >= v.shape[axis] {
		panic(fmt.Sprintf("%s: slice index %d out of range [0:%d) on axis %d", Namespace, index, v.shape[axis], axis))
	}

	s := &View{
		shape:   make(Shape, 0, rank-1),
		strides: make([]int, 0, rank-1),
		offset:  v.offset + index*v.strides[axis],
		buf:     v.buf,
	}
	s.shape = append(append(s.shape, v.shape[:axis]...), v.shape[axis+1:]...)
	s.strides = append(append(s.strides, v.strides[:axis]...), v.strides[axis+1:]...)
	v.buf.retain()
	return s
}
