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
	"slices"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-mergesort/msort"
	"github.com/ajroetker/go-mergesort/msort/merge"
)

// Config selects the schedule and the merge primitive of a sort.
type Config struct {
	Strategy msort.Strategy
	Merge    msort.MergeKind
}

// DefaultConfig returns the configuration used by Sort and SortFunc.
func DefaultConfig() Config {
	return Config{
		Strategy: msort.CurrentStrategy(),
		Merge:    msort.CurrentMerge(),
	}
}

// String returns a human-readable name for the configuration.
// For example: "iterative+inplace".
func (c Config) String() string {
	return c.Strategy.String() + "+" + c.Merge.String()
}

// Sort sorts data in ascending order, in place, using the default
// configuration. Equal elements keep their relative order.
func Sort[T msort.Ordered](data []T) {
	SortWith(data, msort.Compare[T], DefaultConfig())
}

// SortFunc sorts data in place as determined by cmp, using the default
// configuration. cmp follows the slices.SortFunc convention. The sort is
// stable.
func SortFunc[T any](data []T, cmp func(a, b T) int) {
	SortWith(data, cmp, DefaultConfig())
}

// SortWith sorts data in place as determined by cmp, using the schedule and
// merge primitive named by cfg. An unknown strategy panics with an error
// wrapping msort.ErrInvalidConfig.
func SortWith[T any](data []T, cmp func(a, b T) int, cfg Config) {
	if len(data) <= 1 {
		return
	}
	m := merge.NewMergerFunc(cfg.Merge, cmp)
	m.Grow(len(data))
	switch cfg.Strategy {
	case msort.StrategyRecursive:
		recursive(data, 0, len(data), m)
	case msort.StrategyIterative:
		iterative(data, m)
	default:
		panic(errors.Wrapf(msort.ErrInvalidConfig, "unknown strategy %d", int(cfg.Strategy)))
	}
	m.Reset()
}

// Sorted returns a sorted copy of data, leaving data unchanged.
func Sorted[T msort.Ordered](data []T) []T {
	out := slices.Clone(data)
	Sort(out)
	return out
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[T msort.Ordered](data []T) bool {
	return IsSortedFunc(data, msort.Compare[T])
}

// IsSortedFunc reports whether data is sorted as determined by cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	return slices.IsSortedFunc(data, cmp)
}
