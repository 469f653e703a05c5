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

// mergeInPlace merges data[start:mid] and data[mid:end] without auxiliary
// storage. The caller has validated the range.
//
// At any time data[start:i] is merged output, data[i:j] is the unplaced part
// of the left run and data[j:end] is the unplaced part of the right run.
// When the right head must come first, the left remainder shifts one slot
// right and the right head drops into data[i].
func mergeInPlace[T any](data []T, start, mid, end int, cmp func(a, b T) int) {
	i, j := start, mid
	for i < j && j < end {
		if cmp(data[i], data[j]) > 0 {
			v := data[j]
			copy(data[i+1:j+1], data[i:j])
			data[i] = v
			j++
		}
		i++
	}
}
