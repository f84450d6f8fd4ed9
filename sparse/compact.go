package sparse

// Compact rebuilds storage keeping only entries whose value differs from the
// default, in order, in exactly-sized backing slices. Set never removes an
// entry when a value is written back to the default; Compact is how that
// space is reclaimed.
func (a *Array[T]) Compact() {
	n := 0
	for _, v := range a.values {
		if v != a.def {
			n++
		}
	}

	keys := make([]int, 0, n)
	values := make([]T, 0, n)
	for o, v := range a.values {
		if v != a.def {
			keys = append(keys, a.keys[o])
			values = append(values, v)
		}
	}
	a.keys, a.values = keys, values
	a.invalidateCache()
}

// TransformValues applies f to every stored value in place, in index order.
// Keys are untouched, and results equal to the default are kept as stored
// entries; call Compact afterwards to drop them.
func (a *Array[T]) TransformValues(f func(T) T) {
	for o := range a.values {
		a.values[o] = f(a.values[o])
	}
}
