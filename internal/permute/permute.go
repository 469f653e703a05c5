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

// Package permute enumerates the permutations of a slice.
package permute

// Each calls fn once for every permutation of data, n! calls in total for
// len(data) == n, using Heap's algorithm. The slice passed to fn is a view
// of data that is rearranged between calls: fn must not retain it, and must
// copy it before mutating. data holds some permutation of its input when Each
// returns.
//
// Duplicate elements are not collapsed; [1, 1] yields two permutations.
func Each[T any](data []T, fn func(p []T)) {
	n := len(data)
	c := make([]int, n)
	fn(data)
	for i := 1; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				data[0], data[i] = data[i], data[0]
			} else {
				data[c[i]], data[i] = data[i], data[c[i]]
			}
			fn(data)
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
}

// Count returns n!, the number of calls Each makes for a slice of length n.
func Count(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
