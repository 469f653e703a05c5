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

package msort

import (
	"github.com/pkg/errors"
)

// Precondition checks in this module panic with an error wrapping one of
// these sentinels. A caller that recovers can classify it with errors.Is.
var (
	// ErrInvalidRange marks indices or lengths outside their valid bounds.
	ErrInvalidRange = errors.New("msort: invalid range")

	// ErrInvalidConfig marks an unusable sort configuration, such as an
	// unknown strategy or a nil comparison function.
	ErrInvalidConfig = errors.New("msort: invalid configuration")
)

// Range names two adjacent runs [Start,Mid) and [Mid,End) of one sequence.
type Range struct {
	Start, Mid, End int
}

// Check panics unless 0 <= Start <= Mid <= End <= n.
func (r Range) Check(n int) {
	if r.Start < 0 || r.Start > r.Mid || r.Mid > r.End || r.End > n {
		panic(errors.Wrapf(ErrInvalidRange, "merge [%d:%d:%d] over length %d", r.Start, r.Mid, r.End, n))
	}
}

// Trivial reports whether one of the runs is empty, in which case merging is
// the identity.
func (r Range) Trivial() bool {
	return r.Start == r.Mid || r.Mid == r.End
}

// Len returns the number of elements spanned by both runs.
func (r Range) Len() int {
	return r.End - r.Start
}

// Left returns the length of [Start,Mid).
func (r Range) Left() int {
	return r.Mid - r.Start
}

// Right returns the length of [Mid,End).
func (r Range) Right() int {
	return r.End - r.Mid
}

// CheckBounds panics unless 0 <= start <= end <= n.
func CheckBounds(start, end, n int) {
	if start < 0 || start > end || end > n {
		panic(errors.Wrapf(ErrInvalidRange, "sort [%d:%d] over length %d", start, end, n))
	}
}
