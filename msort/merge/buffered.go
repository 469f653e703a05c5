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

package merge

// mergeBuffered merges data[start:mid] and data[mid:end] using buf, which
// must hold exactly end-start elements. The caller has validated the range.
func mergeBuffered[T any](data, buf []T, start, mid, end int, cmp func(a, b T) int) {
	copy(buf, data[start:end])
	left := buf[:mid-start]
	right := buf[mid-start:]

	i, j, k := 0, 0, start
	for i < len(left) && j < len(right) {
		// Take from the left unless its head is strictly greater.
		if cmp(left[i], right[j]) > 0 {
			data[k] = right[j]
			j++
		} else {
			data[k] = left[i]
			i++
		}
		k++
	}

	// One run is exhausted; the rest of the other is already in order.
	k += copy(data[k:end], left[i:])
	copy(data[k:end], right[j:])

	clear(buf)
}
