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
	"github.com/ajroetker/go-mergesort/msort"
	"github.com/ajroetker/go-mergesort/msort/merge"
)

// Recursive sorts data in ascending order with the top-down schedule and the
// default merge primitive.
func Recursive[T msort.Ordered](data []T) {
	RecursiveRange(data, 0, len(data))
}

// RecursiveFunc is like Recursive but orders elements with cmp.
func RecursiveFunc[T any](data []T, cmp func(a, b T) int) {
	SortWith(data, cmp, Config{Strategy: msort.StrategyRecursive, Merge: msort.CurrentMerge()})
}

// RecursiveRange sorts data[start:end] in ascending order with the top-down
// schedule, leaving the rest of data untouched. It panics unless
// 0 <= start <= end <= len(data).
func RecursiveRange[T msort.Ordered](data []T, start, end int) {
	msort.CheckBounds(start, end, len(data))
	if end-start <= 1 {
		return
	}
	m := merge.NewMerger[T](msort.CurrentMerge())
	m.Grow(end - start)
	recursive(data, start, end, m)
	m.Reset()
}

// recursive sorts data[start:end]. Recursion depth is ceil(log2(end-start)).
func recursive[T any](data []T, start, end int, m *merge.Merger[T]) {
	if end-start <= 1 {
		return
	}
	// ceil((start+end)/2) without overflowing start+end.
	mid := start + (end-start+1)/2
	recursive(data, start, mid, m)
	recursive(data, mid, end, m)
	m.Merge(data, start, mid, end)
}
