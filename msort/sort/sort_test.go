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
	"cmp"
	"math/rand"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-mergesort/internal/permute"
	"github.com/ajroetker/go-mergesort/msort"
)

// allConfigs lists every schedule paired with every merge primitive.
var allConfigs = []Config{
	{Strategy: msort.StrategyRecursive, Merge: msort.MergeBuffered},
	{Strategy: msort.StrategyRecursive, Merge: msort.MergeInPlace},
	{Strategy: msort.StrategyIterative, Merge: msort.MergeBuffered},
	{Strategy: msort.StrategyIterative, Merge: msort.MergeInPlace},
}

// tagged carries a sort key and the element's input position.
type tagged struct {
	Key int
	Tag int
}

func byKey(a, b tagged) int {
	return cmp.Compare(a.Key, b.Key)
}

// sortInts sorts data with cfg using the natural ordering.
func sortInts(data []int, cfg Config) {
	SortWith(data, cmp.Compare[int], cfg)
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	for _, cfg := range allConfigs {
		var empty []int
		sortInts(empty, cfg)
		if len(empty) != 0 {
			t.Errorf("%v: Sort(empty) should not modify empty slice", cfg)
		}
	}
	Sort([]float64{})
	Recursive([]int{})
	Iterative([]string{})
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, cfg := range allConfigs {
		data := []int{5}
		sortInts(data, cfg)
		if data[0] != 5 {
			t.Errorf("%v: Sort([5]) = %v, want [5]", cfg, data)
		}
	}
}

// TestSortReverse tests sorting reverse sorted data
func TestSortReverse(t *testing.T) {
	for _, cfg := range allConfigs {
		data := []int{4, 3, 2, 1}
		sortInts(data, cfg)
		if diff := gocmp.Diff([]int{1, 2, 3, 4}, data); diff != "" {
			t.Errorf("%v: Sort(reverse) mismatch (-want +got):\n%s", cfg, diff)
		}
	}
}

// TestSortAlreadySorted tests that sorted input is left unchanged
func TestSortAlreadySorted(t *testing.T) {
	for _, cfg := range allConfigs {
		data := []int{1, 2, 2, 3, 5, 8, 13, 21}
		sortInts(data, cfg)
		require.Equal(t, []int{1, 2, 2, 3, 5, 8, 13, 21}, data, "%v", cfg)
	}
}

// TestSortDuplicates tests sorting with duplicate and identical elements
func TestSortDuplicates(t *testing.T) {
	for _, cfg := range allConfigs {
		data := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
		sortInts(data, cfg)
		require.Equal(t, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}, data, "%v", cfg)

		same := []int{5, 5, 5, 5, 5, 5, 5}
		sortInts(same, cfg)
		require.Equal(t, []int{5, 5, 5, 5, 5, 5, 5}, same, "%v", cfg)
	}
}

// TestSortStableTagged sorts [3,1,3,2] with the two 3s tagged by position.
func TestSortStableTagged(t *testing.T) {
	want := []tagged{{1, 1}, {2, 3}, {3, 0}, {3, 2}}
	for _, cfg := range allConfigs {
		data := []tagged{{3, 0}, {1, 1}, {3, 2}, {2, 3}}
		SortWith(data, byKey, cfg)
		if diff := gocmp.Diff(want, data); diff != "" {
			t.Errorf("%v: stability mismatch (-want +got):\n%s", cfg, diff)
		}
	}
}

// TestSortStableRandom checks every configuration against slices.SortStableFunc
// on inputs with many equal keys.
func TestSortStableRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sizes := []int{2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 257}
	for _, n := range sizes {
		input := make([]tagged, n)
		for i := range input {
			input[i] = tagged{Key: rng.Intn(5), Tag: i}
		}
		want := slices.Clone(input)
		slices.SortStableFunc(want, byKey)

		for _, cfg := range allConfigs {
			data := slices.Clone(input)
			SortWith(data, byKey, cfg)
			if diff := gocmp.Diff(want, data); diff != "" {
				t.Fatalf("%v n=%d: mismatch (-want +got):\n%s", cfg, n, diff)
			}
		}
	}
}

// TestSortRandomInt32 tests sorting random int32 data
func TestSortRandomInt32(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]int32, n)
		for i := range data {
			data[i] = rand.Int31n(10000) - 5000
		}
		want := slices.Clone(data)
		slices.Sort(want)
		Sort(data)
		if !slices.Equal(want, data) {
			t.Errorf("Sort(random int32, n=%d) produced %v, want %v", n, data, want)
		}
	}
}

// TestSortRandomFloat64 tests sorting random float64 data with both schedules
func TestSortRandomFloat64(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]float64, n)
		for i := range data {
			data[i] = rand.Float64() * 1000
		}
		rec := slices.Clone(data)
		Recursive(rec)
		iter := slices.Clone(data)
		Iterative(iter)
		if !IsSorted(rec) {
			t.Errorf("Recursive(random float64, n=%d) produced unsorted result", n)
		}
		if !slices.Equal(rec, iter) {
			t.Errorf("Recursive and Iterative disagree for n=%d", n)
		}
	}
}

// TestSortStrings tests the ordered constraint on strings
func TestSortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "banana", "apple"}
	Sort(data)
	require.Equal(t, []string{"apple", "apple", "banana", "fig", "pear"}, data)
}

// TestSortIdempotent sorts already sorted output again.
func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, cfg := range allConfigs {
		data := make([]int, 200)
		for i := range data {
			data[i] = rng.Intn(50)
		}
		sortInts(data, cfg)
		once := slices.Clone(data)
		sortInts(data, cfg)
		require.Equal(t, once, data, "%v", cfg)
	}
}

// TestStrategiesAgree checks that every configuration matches slices.Sort
// for every length up to 130, covering odd lengths and non powers of two.
func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n <= 130; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = rng.Intn(2*n+1) - n
		}
		want := slices.Clone(input)
		slices.Sort(want)
		for _, cfg := range allConfigs {
			data := slices.Clone(input)
			sortInts(data, cfg)
			if !slices.Equal(want, data) {
				t.Fatalf("%v n=%d: got %v, want %v", cfg, n, data, want)
			}
		}
	}
}

// TestSortPermutations sorts all 720 permutations of a 6-element array with
// duplicates through every configuration.
func TestSortPermutations(t *testing.T) {
	base := []int{17, -3, 17, 0, 99, -3}
	want := []int{-3, -3, 0, 17, 17, 99}

	for _, cfg := range allConfigs {
		calls := 0
		permute.Each(slices.Clone(base), func(p []int) {
			calls++
			data := slices.Clone(p)
			sortInts(data, cfg)
			if !slices.Equal(want, data) {
				t.Errorf("%v: sort(%v) = %v, want %v", cfg, p, data, want)
			}
		})
		require.Equal(t, permute.Count(len(base)), calls)
	}
}

func TestSortFuncDescending(t *testing.T) {
	data := []int{2, 9, 4, 7, 1}
	SortFunc(data, func(a, b int) int { return cmp.Compare(b, a) })
	require.Equal(t, []int{9, 7, 4, 2, 1}, data)

	data = []int{2, 9, 4, 7, 1}
	RecursiveFunc(data, func(a, b int) int { return cmp.Compare(b, a) })
	require.Equal(t, []int{9, 7, 4, 2, 1}, data)

	data = []int{2, 9, 4, 7, 1}
	IterativeFunc(data, func(a, b int) int { return cmp.Compare(b, a) })
	require.Equal(t, []int{9, 7, 4, 2, 1}, data)
}

func TestSorted(t *testing.T) {
	input := []int{3, 1, 2}
	out := Sorted(input)
	require.Equal(t, []int{1, 2, 3}, out)
	require.Equal(t, []int{3, 1, 2}, input)
	require.Empty(t, Sorted([]int(nil)))
}

func TestIsSorted(t *testing.T) {
	require.True(t, IsSorted([]int{}))
	require.True(t, IsSorted([]int{1, 1, 2}))
	require.False(t, IsSorted([]int{2, 1}))
	require.True(t, IsSortedFunc([]int{3, 2, 2}, func(a, b int) int { return cmp.Compare(b, a) }))
}

func TestRecursiveRange(t *testing.T) {
	data := []int{9, 8, 5, 3, 4, 1, 2, 0}
	RecursiveRange(data, 2, 7)
	require.Equal(t, []int{9, 8, 1, 2, 3, 4, 5, 0}, data)

	RecursiveRange(data, 4, 4)
	require.Equal(t, []int{9, 8, 1, 2, 3, 4, 5, 0}, data)

	for _, b := range [][2]int{{-1, 3}, {5, 4}, {0, 9}} {
		require.Panics(t, func() { RecursiveRange(data, b[0], b[1]) }, "RecursiveRange%v", b)
	}
}

// recoverError runs fn and returns the error it panicked with, or nil.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

func TestSortWithUnknownStrategy(t *testing.T) {
	err := recoverError(func() {
		SortWith([]int{2, 1}, cmp.Compare[int], Config{Strategy: msort.Strategy(9)})
	})
	require.ErrorIs(t, err, msort.ErrInvalidConfig)
	require.NotErrorIs(t, err, msort.ErrInvalidRange)
	// Nothing to do for short input, whatever the configuration.
	require.NotPanics(t, func() {
		SortWith([]int{1}, cmp.Compare[int], Config{Strategy: msort.Strategy(9)})
	})
}

func TestConfigString(t *testing.T) {
	require.Equal(t, "iterative+inplace", Config{msort.StrategyIterative, msort.MergeInPlace}.String())
	require.Equal(t, msort.CurrentName(), DefaultConfig().String())
}
