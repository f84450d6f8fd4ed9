package sparse

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b represent the same effective virtual array:
// same logical length, and for every index in [0, Len()) the same effective
// value, where each side's unstored indices hold its own default.
//
// Defaults need not match: an index stored on exactly one side must hold the
// other side's default, and with differing defaults every index must be
// stored on at least one side.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.length != b.length {
		return false
	}

	// Merge-scan both sorted key sequences.
	covered := 0 // indices stored on at least one side
	i, j := 0, 0
	for i < len(a.keys) || j < len(b.keys) {
		covered++
		switch {
		case j == len(b.keys) || (i < len(a.keys) && a.keys[i] < b.keys[j]):
			if a.values[i] != b.def {
				return false
			}
			i++
		case i == len(a.keys) || b.keys[j] < a.keys[i]:
			if b.values[j] != a.def {
				return false
			}
			j++
		default:
			if a.values[i] != b.values[j] {
				return false
			}
			i++
			j++
		}
	}

	// Indices stored on neither side hold the two defaults; if those differ,
	// such an index must not exist.
	if a.def != b.def && covered < a.length {
		return false
	}
	return true
}

// Hash returns a digest of the array's non-default entries in index order,
// using valueHash to reduce each value to 64 bits. Entries whose value
// equals the default are skipped, so equal arrays with equal defaults hash
// alike regardless of compaction state or insertion order.
//
// Consistency with Equal additionally requires equal defaults; callers
// mixing defaults must hash the effective values themselves.
func (a *Array[T]) Hash(valueHash func(T) uint64) uint64 {
	d := xxhash.New()
	var buf [16]byte
	for o, v := range a.values {
		if v == a.def {
			continue
		}
		binary.LittleEndian.PutUint64(buf[:8], uint64(a.keys[o]))
		binary.LittleEndian.PutUint64(buf[8:], valueHash(v))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// Value hashers for the element types the arithmetic layer instantiates.

// HashInt reduces an int element to its 64-bit pattern.
func HashInt(v int) uint64 { return uint64(v) }

// HashUint64 is the identity hasher for uint64 elements.
func HashUint64(v uint64) uint64 { return v }

// HashFloat64 reduces a float64 element to its IEEE 754 bit pattern.
// Note that 0.0 and -0.0 hash differently.
func HashFloat64(v float64) uint64 { return math.Float64bits(v) }

// HashFloat32 reduces a float32 element to its IEEE 754 bit pattern.
func HashFloat32(v float32) uint64 { return uint64(math.Float32bits(v)) }

// HashBool reduces a bool element to 0 or 1.
func HashBool(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// HashString hashes a string element with xxhash.
func HashString(v string) uint64 { return xxhash.Sum64String(v) }
