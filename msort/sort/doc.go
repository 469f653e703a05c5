// Package sort provides stable merge sort over slices, with two
// interchangeable schedules built on the merge-range primitive of package
// merge.
//
// # Schedules
//
// The recursive schedule sorts [start,end) by splitting it at the upper
// middle, mid = ceil((start+end)/2), sorting both halves and merging them.
// The left half therefore gets ceil(n/2) elements.
//
// The iterative schedule performs the same kind of merges bottom-up without
// recursion. For a slice of length N it runs ceil(log2(N)) passes. The pass at
// level k cuts [0,N) into 2^k near-equal pieces at the boundaries
//
//	b[i] = ceil(i * N / 2^k),  i = 0..2^k
//
// (the Index Array) and merges each pair of neighbouring pieces
// (b[j], b[j+1], b[j+2]) for even j. Levels run from ceil(log2(N)), where
// every piece holds at most one element, down to 1, the final merge of the
// whole slice.
//
// The two schedules may merge different intermediate runs, but since both are
// stable they always produce identical output.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mergesort/msort/sort"
//
//	func ProcessData(data []int) {
//	    sort.Sort(data) // In-place ascending stable sort
//	}
//
//	func ByAge(people []Person) {
//	    sort.SortFunc(people, func(a, b Person) int {
//	        return cmp.Compare(a.Age, b.Age)
//	    })
//	}
//
// # Configuration
//
// Sort and SortFunc use msort.CurrentStrategy and msort.CurrentMerge, which
// may be set with the MSORT_STRATEGY and MSORT_MERGE environment variables.
// SortWith takes an explicit Config.
package sort
