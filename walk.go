package tensor

// cursor walks the Buffer positions of a View in row-major logical order.
// Advancing increments the last logical index; when an axis overflows it is
// reset and the carry moves into the previous axis, adjusting the physical
// position by the corresponding strides.
type cursor struct {
	shape   Shape
	strides []int
	idx     []int
	pos     int
}

func newCursor(v *View) *cursor {
	return &cursor{
		shape:   v.shape,
		strides: v.strides,
		idx:     make([]int, len(v.shape)),
		pos:     v.offset,
	}
}

func (c *cursor) next() {
	last := len(c.idx) - 1
	if last < 0 {
		return
	}
	c.idx[last]++
	c.pos += c.strides[last]
	for j := last; j > 0 && c.idx[j] == c.shape[j]; j-- {
		c.idx[j] = 0
		c.pos -= c.strides[j] * c.shape[j]
		c.idx[j-1]++
		c.pos += c.strides[j-1]
	}
}

// walk calls fn with the Buffer position of every element of v, in logical order.
func (v *View) walk(fn func(pos int)) {
	n := v.Len()
	if n == 0 {
		return
	}
	c := newCursor(v)
	for i := 0; i < n; i++ {
		fn(c.pos)
		c.next()
	}
}
