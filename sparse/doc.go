// Package sparse provides the sparse array storage that backs sparse-vector
// arithmetic.
//
// An Array[T] represents a fixed-length one-dimensional array over the index
// domain [0, Len()) where most entries equal a known default value. Only the
// minority of explicitly written entries are stored, in two parallel slices
// (sorted indices, corresponding values), so memory scales with the number of
// stored entries rather than the logical length.
//
// Lookups are O(log used) via binary search, with a single-slot cache of the
// most recently resolved index that makes repeated and sequential access O(1).
// Writes to new indices shift-insert into the sorted storage, growing it on a
// schedule that doubles while small and becomes additive for large, very
// sparse domains.
//
// Basic usage:
//
//	a := sparse.New[float64](1000, 0)
//	a.Set(42, 3.5)
//	a.Set(7, 1.25)
//
//	a.At(42)  // 3.5
//	a.At(500) // 0, the default
//
//	for i, v := range a.Entries() {
//	    // visits (7, 1.25) then (42, 3.5)
//	}
//
// An Array is not safe for concurrent use. If shared between goroutines, the
// owner must serialize mutating calls (Set, Clear, Compact, TransformValues)
// against each other and against reads.
package sparse
