// Package tensor provides strided multi-dimensional float64 arrays with shared,
// reference-counted storage, and a parallel loop that fans work out over the
// slices of one axis using a fixed worker pool.
//
// Ownership
//   - New and Clone allocate a fresh Buffer referenced once.
//   - Slice returns a View of one lower rank sharing the parent's Buffer; the
//     Buffer gains a reference.
//   - Free drops the View's reference; the Buffer is released when the last
//     View referencing it is freed. Every View must be freed exactly once.
//
// Views own their shape and strides. SwapAxes rewrites them in place, which may
// leave a View with non row-major strides; Clone and CopyStrided walk any
// strides, CopyContiguous does not.
//
// Checked errors are limited to ErrInvalidAxis and ErrShapeMismatch (plus nil
// arguments). Element indices passed to Get, Set, At and Index are not checked
// against the extents.
//
// Concurrency
// Views are controlled from one goroutine: slicing and freeing must not run
// concurrently. LoopOverAxis is the supported way to touch one Buffer from many
// goroutines; each job sees only its own disjoint slice.
package tensor
