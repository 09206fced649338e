package tensor

// Index returns the Buffer position of the element at idx:
// offset + sum(idx[i] * stride[i]). idx is not checked against the extents.
func (v *View) Index(idx ...int) int {
	pos := v.offset
	for i, stride := range v.strides {
		pos += idx[i] * stride
	}
	return pos
}

// At returns a pointer to the element at idx. It stays valid while the Buffer is alive.
func (v *View) At(idx ...int) *float64 { return &v.buf.data[v.Index(idx...)] }

// Get returns the element at idx.
func (v *View) Get(idx ...int) float64 { return v.buf.data[v.Index(idx...)] }

// Set stores value at idx.
func (v *View) Set(value float64, idx ...int) { v.buf.data[v.Index(idx...)] = value }

// Fill stores value in every element addressed by v.
func (v *View) Fill(value float64) {
	data := v.buf.data
	v.walk(func(pos int) { data[pos] = value })
}

// CopyContiguous copies every element of v into dst. Both Views must have the same rank
// and extents, otherwise ErrShapeMismatch is returned and nothing is written.
//
// The copy treats both sides as contiguous runs of Len() elements starting at their
// offsets; it does not walk strides. It is exact for row-major Views such as those
// returned by New and Clone, or slices along axis 0 of them. Use CopyStrided for
// anything else.
func (v *View) CopyContiguous(dst *View) error {
	if v == nil || dst == nil {
		return ErrNilView
	}
	if !v.shape.Equal(dst.shape) {
		return shapeMismatch(v.shape, dst.shape)
	}
	n := v.Len()
	copy(dst.buf.data[dst.offset:dst.offset+n], v.buf.data[v.offset:v.offset+n])
	return nil
}

// CopyStrided copies every element of v into dst in logical order, honoring the
// strides and offsets of both Views. Shapes must match as for CopyContiguous.
// When v and dst overlap in the same Buffer the result depends on the visit order.
func (v *View) CopyStrided(dst *View) error {
	if v == nil || dst == nil {
		return ErrNilView
	}
	if !v.shape.Equal(dst.shape) {
		return shapeMismatch(v.shape, dst.shape)
	}
	n := v.Len()
	if n == 0 {
		return nil
	}
	src, out := newCursor(v), newCursor(dst)
	for i := 0; i < n; i++ {
		dst.buf.data[out.pos] = v.buf.data[src.pos]
		src.next()
		out.next()
	}
	return nil
}
