package sparse

import (
	"fmt"
	"slices"
	"strings"
)

// defaultCapacity is the initial storage capacity when none is configured.
// It matches the floor of the growth schedule so the first growth step is
// already a doubling.
const defaultCapacity = 8

// Array is a fixed-length sparse array over the index domain [0, Len()).
// Indices that were never written hold a default value and consume no
// storage; written entries live in two parallel slices sorted by index.
//
// The zero value is not usable; construct with New or NewWith.
//
// An Array is not safe for concurrent mutation. Accessors that return slices
// (Keys, Values) return copies, never aliases of internal storage.
type Array[T comparable] struct {
	length int // logical size, immutable after construction
	def    T   // value of every index not explicitly stored

	// Parallel storage: keys is strictly increasing, values[o] is the stored
	// value at logical index keys[o]. len(keys) == len(values) is the number
	// of stored entries; cap(keys) == cap(values) always.
	keys   []int
	values []T

	// Single-slot cache of the most recently resolved (index, offset) pair.
	// Either both valid (keys[lastOffset] == lastKey) or both -1. Purely an
	// access-pattern optimization: correctness never depends on it.
	lastKey    int
	lastOffset int

	initCap int // capacity restored by Clear
	absent  *T  // optional sentinel, see Config.Absent
}

// Config controls construction of an Array beyond the required length and
// default value.
type Config[T comparable] struct {
	// Capacity is the initial storage capacity hint (number of stored
	// entries before the first reallocation). Non-positive values fall back
	// to the package default.
	Capacity int

	// Absent, when non-nil, designates a sentinel meaning "no entry". Set
	// with the sentinel value skips insertion at an unstored index (an
	// existing entry is still overwritten, and reclaimed by the next
	// Compact). This reproduces the "nil means absent" convention some
	// callers use for reference-like element types; leave nil to store
	// every value.
	Absent *T
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig[T comparable]() Config[T] {
	return Config[T]{Capacity: defaultCapacity}
}

// New creates a sparse array of the given logical length whose unwritten
// indices all read as def.
//
// Panics if length is negative; that is a programming error at the call
// site, not a recoverable condition.
func New[T comparable](length int, def T) *Array[T] {
	return NewWith(length, def, DefaultConfig[T]())
}

// NewWith is like New but takes an explicit Config, allowing an initial
// capacity sized to the expected number of stored entries and an optional
// absent sentinel.
func NewWith[T comparable](length int, def T, cfg Config[T]) *Array[T] {
	if length < 0 {
		panic(fmt.Sprintf("sparse: negative length %d", length))
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Array[T]{
		length:     length,
		def:        def,
		keys:       make([]int, 0, capacity),
		values:     make([]T, 0, capacity),
		lastKey:    -1,
		lastOffset: -1,
		initCap:    capacity,
		absent:     cfg.Absent,
	}
}

// Len returns the logical length of the array, fixed at construction.
func (a *Array[T]) Len() int { return a.length }

// Used returns the number of explicitly stored entries.
func (a *Array[T]) Used() int { return len(a.keys) }

// Cap returns the current storage capacity (stored entries that fit before
// the next reallocation).
func (a *Array[T]) Cap() int { return cap(a.keys) }

// Default returns the value implicitly held by every unwritten index.
func (a *Array[T]) Default() T { return a.def }

// offsetOf resolves a logical index, already validated to be in range, to a
// storage offset. On a hit it returns (offset, true) and refreshes the cache;
// on a miss it returns (insertionPoint, false) where inserting at
// insertionPoint keeps keys sorted.
func (a *Array[T]) offsetOf(i int) (int, bool) {
	if a.lastOffset >= 0 && i == a.lastKey {
		return a.lastOffset, true
	}
	n := len(a.keys)
	if n == 0 {
		return 0, false
	}

	// Narrow the search window using the cache: everything below the cached
	// offset holds keys below lastKey and everything above holds keys above
	// it, so only one side needs searching.
	lo, hi := 0, n
	if a.lastOffset >= 0 {
		if i < a.lastKey {
			hi = a.lastOffset
		} else {
			// Strictly increasing sequential access hits the immediate
			// successor of the cached entry; check it before searching.
			if next := a.lastOffset + 1; next < n && a.keys[next] == i {
				a.lastKey, a.lastOffset = i, next
				return next, true
			}
			lo = a.lastOffset + 1
		}
	}
	// keys is a strictly increasing sequence of non-negative ints, so
	// keys[o] >= o: no entry at an offset beyond i can match i, and the
	// insertion point for i never exceeds i either.
	hi = min(hi, i+1)

	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch k := a.keys[mid]; {
		case k == i:
			a.lastKey, a.lastOffset = i, mid
			return mid, true
		case k < i:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// At returns the value at logical index i: the stored value if i was
// written, the array's default otherwise.
//
// Panics with *IndexError if i is outside [0, Len()). Use Lookup for an
// error-returning variant.
func (a *Array[T]) At(i int) T {
	if err := a.check(i); err != nil {
		panic(err)
	}
	if o, ok := a.offsetOf(i); ok {
		return a.values[o]
	}
	return a.def
}

// Lookup is At with an explicit error instead of a panic: it returns a
// *IndexError (wrapping ErrIndexOutOfRange) when i is outside [0, Len()).
func (a *Array[T]) Lookup(i int) (T, error) {
	if err := a.check(i); err != nil {
		var zero T
		return zero, err
	}
	if o, ok := a.offsetOf(i); ok {
		return a.values[o], nil
	}
	return a.def, nil
}

// Get returns the value stored at i and whether an entry is actually stored
// there. Unlike At it distinguishes "stored and equal to the default" from
// "not stored at all".
//
// Panics with *IndexError if i is outside [0, Len()).
func (a *Array[T]) Get(i int) (T, bool) {
	if err := a.check(i); err != nil {
		panic(err)
	}
	if o, ok := a.offsetOf(i); ok {
		return a.values[o], true
	}
	var zero T
	return zero, false
}

// GetOrElse is like At but returns fallback, rather than the array default,
// when no entry is stored at i.
//
// Panics with *IndexError if i is outside [0, Len()).
func (a *Array[T]) GetOrElse(i int, fallback T) T {
	if v, ok := a.Get(i); ok {
		return v
	}
	return fallback
}

// Contains reports whether an entry is explicitly stored at i.
//
// Panics with *IndexError if i is outside [0, Len()).
func (a *Array[T]) Contains(i int) bool {
	_, ok := a.Get(i)
	return ok
}

// Set writes v at logical index i, overwriting an existing entry in place or
// shift-inserting a new one into the sorted storage. Storage grows on the
// schedule documented on nextCapacity when full.
//
// If an absent sentinel is configured (Config.Absent) and v equals it, Set
// does not insert a new entry; an existing entry is still overwritten.
//
// Panics with *IndexError if i is outside [0, Len()); the array is left
// unmodified in that case.
func (a *Array[T]) Set(i int, v T) {
	if err := a.check(i); err != nil {
		panic(err)
	}
	o, ok := a.offsetOf(i)
	if ok {
		a.values[o] = v
		return
	}
	if a.absent != nil && v == *a.absent {
		return
	}
	a.insert(o, i, v)
}

// insert places (i, v) at storage offset at, shifting the suffix right by
// one. When storage is full, new backing slices are allocated and fully
// populated before being swapped in.
func (a *Array[T]) insert(at, i int, v T) {
	n := len(a.keys)
	if n == cap(a.keys) {
		newCap := nextCapacity(cap(a.keys))
		keys := make([]int, n+1, newCap)
		values := make([]T, n+1, newCap)
		copy(keys, a.keys[:at])
		copy(values, a.values[:at])
		copy(keys[at+1:], a.keys[at:])
		copy(values[at+1:], a.values[at:])
		keys[at] = i
		values[at] = v
		a.keys, a.values = keys, values
	} else {
		a.keys = a.keys[:n+1]
		a.values = a.values[:n+1]
		copy(a.keys[at+1:], a.keys[at:n])
		copy(a.values[at+1:], a.values[at:n])
		a.keys[at] = i
		a.values[at] = v
	}
	a.lastKey, a.lastOffset = i, at
}

// Clear removes every stored entry, restoring the initial storage capacity.
// Every subsequent read returns the default until the next Set.
func (a *Array[T]) Clear() {
	a.keys = make([]int, 0, a.initCap)
	a.values = make([]T, 0, a.initCap)
	a.invalidateCache()
}

// Clone returns a deep copy sharing no storage with the original.
func (a *Array[T]) Clone() *Array[T] {
	clone := *a
	clone.keys = slices.Clone(a.keys)
	clone.values = slices.Clone(a.values)
	return &clone
}

// invalidateCache drops the single-slot access cache. Called whenever stored
// offsets may have changed wholesale.
func (a *Array[T]) invalidateCache() {
	a.lastKey, a.lastOffset = -1, -1
}

// String renders the stored entries for diagnostics, e.g.
// "sparse.Array(len=10, default=0){2: 3, 7: 9}".
func (a *Array[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sparse.Array(len=%d, default=%v){", a.length, a.def)
	for o, k := range a.keys {
		if o > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %v", k, a.values[o])
	}
	b.WriteByte('}')
	return b.String()
}
