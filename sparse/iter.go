package sparse

import (
	"iter"
	"slices"
)

// Entries returns an iterator over the stored (index, value) pairs in
// strictly increasing index order. The sequence is lazy and restartable.
//
// The array must not be mutated while an iteration is in progress.
func (a *Array[T]) Entries() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for o, k := range a.keys {
			if !yield(k, a.values[o]) {
				return
			}
		}
	}
}

// EntryKeys returns an iterator over the stored indices in increasing order.
func (a *Array[T]) EntryKeys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, k := range a.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// EntryValues returns an iterator over the stored values in index order.
func (a *Array[T]) EntryValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Keys returns a point-in-time copy of the stored indices, in increasing
// order. Mutating the returned slice does not affect the array.
func (a *Array[T]) Keys() []int {
	return slices.Clone(a.keys)
}

// Values returns a point-in-time copy of the stored values, in index order.
// Mutating the returned slice does not affect the array.
func (a *Array[T]) Values() []T {
	return slices.Clone(a.values)
}
