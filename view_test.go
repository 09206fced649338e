package tensor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RowMajorStrides(t *testing.T) {
	requireNoLeaks(t)

	tests := []struct {
		name    string
		shape   []int
		strides []int
		length  int
	}{
		{name: "scalar", shape: []int{}, strides: []int{}, length: 1},
		{name: "1d", shape: []int{5}, strides: []int{1}, length: 5},
		{name: "2d", shape: []int{2, 3}, strides: []int{3, 1}, length: 6},
		{name: "3d", shape: []int{2, 3, 4}, strides: []int{12, 4, 1}, length: 24},
		{name: "6x2x23", shape: []int{6, 2, 23}, strides: []int{46, 23, 1}, length: 276},
		{name: "zero extent", shape: []int{3, 0, 2}, strides: []int{0, 2, 1}, length: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.shape...)
			defer v.Free()

			require.Equal(t, len(tt.shape), v.Rank())
			require.Equal(t, Shape(tt.shape), v.Shape())
			require.Equal(t, tt.strides, v.Strides())
			require.Zero(t, v.Offset())
			require.Equal(t, tt.length, v.Len())
			require.Equal(t, tt.length, v.Buffer().Len())
			require.EqualValues(t, 1, v.Buffer().Refs())
			require.True(t, v.IsContiguous())
		})
	}
}

func TestNew_StrideInvariantForRandomShapes(t *testing.T) {
	requireNoLeaks(t)
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 200; n++ {
		rank := 1 + rng.Intn(5)
		shape := make([]int, rank)
		for i := range shape {
			shape[i] = 1 + rng.Intn(6)
		}
		v := New(shape...)
		strides := v.Strides()
		require.Equal(t, 1, strides[rank-1], "shape %v", shape)
		for i := rank - 2; i >= 0; i-- {
			require.Equal(t, strides[i+1]*shape[i+1], strides[i], "shape %v axis %d", shape, i)
		}
		v.Free()
	}
}

func TestNew_ZeroInitialized(t *testing.T) {
	v := New(3, 4)
	defer v.Free()
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			require.Zero(t, v.Get(i, j))
		}
	}
}

func TestNew_CopiesShapeArgument(t *testing.T) {
	shape := []int{2, 3}
	v := New(shape...)
	defer v.Free()
	shape[0] = 100
	require.Equal(t, Shape{2, 3}, v.Shape())

	got := v.Shape()
	got[1] = 100
	require.Equal(t, Shape{2, 3}, v.Shape(), "Shape returns a copy")
}

func TestNew_NegativeExtentPanics(t *testing.T) {
	require.Panics(t, func() { New(2, -1) })
}

func TestFree_ReleasesOnLastReference(t *testing.T) {
	requireNoLeaks(t)
	before := LiveBuffers()

	v := New(2, 3)
	buf := v.Buffer()
	require.Equal(t, before+1, LiveBuffers())

	s := v.Slice(0, 1)
	require.EqualValues(t, 2, buf.Refs())

	v.Free()
	require.Nil(t, v.Buffer())
	require.Nil(t, v.Shape())
	require.Nil(t, v.Strides())
	require.False(t, buf.Released(), "slice still references the buffer")
	require.EqualValues(t, 1, buf.Refs())
	require.Equal(t, before+1, LiveBuffers())

	s.Set(7, 2)
	require.Equal(t, 7.0, s.Get(2))

	s.Free()
	require.True(t, buf.Released())
	require.Zero(t, buf.Len())
	require.Equal(t, before, LiveBuffers())
}

func TestFree_TwiceIsNoop(t *testing.T) {
	requireNoLeaks(t)

	v := New(2)
	s := v.Slice(0, 0)
	buf := v.Buffer()

	s.Free()
	s.Free()
	require.EqualValues(t, 1, buf.Refs(), "second Free must not drop the parent's reference")
	require.False(t, buf.Released())

	v.Free()
	require.True(t, buf.Released())

	var nilView *View
	require.NotPanics(t, nilView.Free)
}

func TestClone_CopiesData(t *testing.T) {
	requireNoLeaks(t)

	v := New(2, 3)
	for i, val := range []float64{1, 2, 3, 4, 5, 6} {
		v.Set(val, i/3, i%3)
	}
	c := v.Clone()
	defer c.Free()

	require.Equal(t, Shape{2, 3}, c.Shape())
	require.Equal(t, []int{3, 1}, c.Strides())
	require.False(t, c.Aliases(v))
	require.EqualValues(t, 1, c.Buffer().Refs())

	for i, val := range []float64{1, 2, 3, 4, 5, 6} {
		require.Equal(t, val, c.Get(i/3, i%3))
	}

	v.Set(100, 0, 0)
	require.Equal(t, 1.0, c.Get(0, 0), "clone is independent of the original")

	v.Free()
	require.Equal(t, 6.0, c.Get(1, 2), "clone survives freeing the original")
}

func TestClone_OfSwappedViewIsRowMajor(t *testing.T) {
	requireNoLeaks(t)

	v := New(2, 3)
	defer v.Free()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v.Set(float64(10*i+j), i, j)
		}
	}
	require.NoError(t, v.SwapAxes(0, 1))
	require.False(t, v.IsContiguous())

	c := v.Clone()
	defer c.Free()

	require.Equal(t, Shape{3, 2}, c.Shape())
	require.Equal(t, []int{2, 1}, c.Strides())
	require.True(t, c.IsContiguous())
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, v.Get(i, j), c.Get(i, j))
		}
	}
	// transposed data laid out row-major: 0 10 1 11 2 12
	require.Equal(t, []float64{0, 10, 1, 11, 2, 12}, c.Buffer().data)
}

func TestClone_OfSliceDefragments(t *testing.T) {
	requireNoLeaks(t)

	v := New(3, 4, 5)
	defer v.Free()
	fillSum3(v)

	s := v.Slice(1, 2) // shape (3,5), offset 10
	defer s.Free()
	c := s.Clone()
	defer c.Free()

	require.Equal(t, Shape{3, 5}, c.Shape())
	require.Zero(t, c.Offset())
	require.Equal(t, 15, c.Buffer().Len())
	for i := 0; i < 3; i++ {
		for k := 0; k < 5; k++ {
			require.Equal(t, float64(i+2+k), c.Get(i, k))
		}
	}
}

func TestClone_Scalar(t *testing.T) {
	requireNoLeaks(t)

	v := New(4)
	defer v.Free()
	v.Set(3.5, 2)
	s := v.Slice(0, 2)
	defer s.Free()

	require.Zero(t, s.Rank())
	c := s.Clone()
	defer c.Free()
	require.Equal(t, 3.5, c.Get())
	require.Equal(t, 1, c.Buffer().Len())
}

func TestEndToEnd_FillCloneCompare(t *testing.T) {
	requireNoLeaks(t)

	v := New(6, 2, 23)
	fillSum3(v)
	c := v.Clone()

	for i := 0; i < 6; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 23; k++ {
				require.Equal(t, float64(i+j+k), c.Get(i, j, k))
				require.Equal(t, v.Get(i, j, k), c.Get(i, j, k))
			}
		}
	}

	v.Free()
	c.Free()
}

func TestView_String(t *testing.T) {
	v := New(2, 3)
	require.Equal(t, "View(shape=[2 3], strides=[3 1], offset=0)", v.String())
	v.Free()
	require.Equal(t, "View(freed)", v.String())
}
