package sparse

// Growth schedule thresholds. Doubling is cheap while storage is small; past
// smallLimit it wastes too much memory for very sparse, very large domains,
// so growth becomes additive with a bounded step.
const (
	minCapacity = 8
	smallLimit  = 1024
	maxStep     = 16384
)

// nextCapacity returns the storage capacity to allocate when an array with
// the given capacity is full. The schedule is:
//
//	current < 8        -> 8
//	current <= 1024    -> current * 2
//	current <= 2048    -> current + 1024
//	current <= 4096    -> current + 2048
//	current <= 8192    -> current + 4096
//	current <= 16384   -> current + 8192
//	current > 16384    -> current + 16384
//
// This amortizes reallocation cost while bounding peak overallocation.
func nextCapacity(current int) int {
	switch {
	case current < minCapacity:
		return minCapacity
	case current <= smallLimit:
		return current * 2
	case current <= 2*smallLimit:
		return current + smallLimit
	case current <= 4*smallLimit:
		return current + 2*smallLimit
	case current <= 8*smallLimit:
		return current + 4*smallLimit
	case current <= 16*smallLimit:
		return current + 8*smallLimit
	default:
		return current + maxStep
	}
}
