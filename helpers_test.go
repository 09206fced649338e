package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireNoLeaks fails the test if buffers allocated during it are still live at cleanup.
func requireNoLeaks(t *testing.T) {
	t.Helper()
	before := LiveBuffers()
	t.Cleanup(func() {
		require.Equal(t, before, LiveBuffers(), "buffers leaked")
	})
}

// fillSum3 sets every element of a row-major 3-D view to i+j+k.
func fillSum3(v *View) {
	s := v.Shape()
	for i := 0; i < s[0]; i++ {
		for j := 0; j < s[1]; j++ {
			for k := 0; k < s[2]; k++ {
				v.Set(float64(i+j+k), i, j, k)
			}
		}
	}
}
