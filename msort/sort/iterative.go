// Copyright 2025 go-mergesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-mergesort/msort"
	"github.com/ajroetker/go-mergesort/msort/merge"
)

// Iterative sorts data in ascending order with the bottom-up schedule and the
// default merge primitive. It does not recurse.
func Iterative[T msort.Ordered](data []T) {
	IterativeFunc(data, msort.Compare[T])
}

// IterativeFunc is like Iterative but orders elements with cmp.
func IterativeFunc[T any](data []T, cmp func(a, b T) int) {
	SortWith(data, cmp, Config{Strategy: msort.StrategyIterative, Merge: msort.CurrentMerge()})
}

// NumPasses returns the number of passes the iterative schedule makes over a
// slice of length n: ceil(log2(n)), or 0 when n <= 1.
func NumPasses(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// IndexArray returns the 2^level+1 piece boundaries of the pass at the given
// level over a slice of length n: b[i] = ceil(i*n / 2^level). The result is
// non-decreasing, starts at 0 and ends at n.
//
// It panics if n or level is negative, or if level exceeds NumPasses(n)
// (finer levels would only add empty pieces).
func IndexArray(n, level int) []int {
	if n < 0 || level < 0 || level > NumPasses(n) {
		panic(errors.Wrapf(msort.ErrInvalidRange, "index array level %d over length %d", level, n))
	}
	return fillIndexArray(make([]int, 1<<level+1), n, level)
}

// fillIndexArray writes the boundaries of level into b, which must hold
// 2^level+1 elements, and returns b.
func fillIndexArray(b []int, n, level int) []int {
	for i := range b {
		b[i] = ceilScaled(i, n, level)
	}
	return b
}

// ceilScaled returns ceil(i*n / 2^k) for non-negative i and n, computed with
// a 128-bit intermediate so that i*n cannot overflow.
func ceilScaled(i, n, k int) int {
	hi, lo := bits.Mul64(uint64(i), uint64(n))
	lo, carry := bits.Add64(lo, 1<<uint(k)-1, 0)
	hi += carry
	if k == 0 {
		return int(lo)
	}
	return int(lo>>uint(k) | hi<<(64-uint(k)))
}

// iterative sorts data by simulating the merge tree level by level, finest
// first. Boundaries are computed as they are consumed, so a pass walks its
// Index Array without materializing it. The caller sizes m for len(data).
func iterative[T any](data []T, m *merge.Merger[T]) {
	n := len(data)
	for level := NumPasses(n); level >= 1; level-- {
		eachMerge(n, level, func(start, mid, end int) {
			m.Merge(data, start, mid, end)
		})
	}
}

// eachMerge calls fn with every boundary triple (b[j], b[j+1], b[j+2]), j
// even, of IndexArray(n, level), in order.
func eachMerge(n, level int, fn func(start, mid, end int)) {
	pieces := 1 << level
	start := 0
	for j := 0; j < pieces; j += 2 {
		mid := ceilScaled(j+1, n, level)
		end := ceilScaled(j+2, n, level)
		fn(start, mid, end)
		start = end
	}
}
