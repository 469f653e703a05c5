// Package msort provides the shared vocabulary of the merge sort kernel:
// element constraints, merge ranges with their precondition checks, and the
// runtime selection of the default sort schedule and merge primitive.
//
// The algorithms themselves live in the subpackages:
//
//	import (
//		"github.com/ajroetker/go-mergesort/msort/merge"
//		"github.com/ajroetker/go-mergesort/msort/sort"
//	)
//
//	// Merge two sorted runs of one slice
//	merge.Buffered(data, 0, 5, 10)
//
//	// Sort with the configured strategy
//	sort.Sort(data)
package msort

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for all types that support the < and > operators.
type Ordered interface {
	Integers | Floats | ~string
}

// Compare returns -1 if a < b, +1 if a > b and 0 otherwise.
//
// Only < and > are consulted, so incomparable floats (NaN) compare equal to
// everything and keep their input position in a stable sort.
func Compare[T Ordered](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
