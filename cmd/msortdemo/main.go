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

// Command msortdemo sorts random slices with the merge sort kernel and runs
// exhaustive permutation self-checks.
//
// Usage:
//
//	msortdemo -n 16 -seed 42                       # sort one random slice
//	msortdemo -strategy iterative -merge inplace   # pick the schedule and merge
//	msortdemo -check                               # permutation self-checks
//
// The defaults for -strategy and -merge come from MSORT_STRATEGY and
// MSORT_MERGE.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-mergesort/internal/permute"
	"github.com/ajroetker/go-mergesort/msort"
	"github.com/ajroetker/go-mergesort/msort/merge"
	"github.com/ajroetker/go-mergesort/msort/sort"
)

var (
	size      = flag.Int("n", 10, "Number of random elements to sort")
	seed      = flag.Int64("seed", -1, "Random seed; negative values derive one from the current time")
	strategy  = flag.String("strategy", msort.CurrentStrategy().String(), "Sort schedule: recursive or iterative")
	mergeKind = flag.String("merge", msort.CurrentMerge().String(), "Merge primitive: buffered or inplace")
	check     = flag.Bool("check", false, "Run the permutation self-checks instead of a single sort")
)

// checkSize is the length of the array whose permutations are checked.
const checkSize = 6

func main() {
	flag.Parse()

	cfg, err := parseConfig(*strategy, *mergeKind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if *size < 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must not be negative\n")
		os.Exit(1)
	}

	s := resolveSeed(*seed, time.Now())
	rng := rand.New(rand.NewSource(s))

	if *check {
		failures := runChecks(rng)
		if failures > 0 {
			fmt.Fprintf(os.Stderr, "%d check(s) failed (seed %d)\n", failures, s)
			os.Exit(1)
		}
		fmt.Println("All checks passed")
		return
	}

	data := randomInts(rng, *size)
	fmt.Printf("Config: %s, seed: %d\n", cfg, s)
	fmt.Printf("  before: %v\n", data)
	sort.SortWith(data, msort.Compare[int], cfg)
	fmt.Printf("  after:  %v\n", data)
	if !sort.IsSorted(data) {
		fmt.Fprintf(os.Stderr, "Error: result is not sorted\n")
		os.Exit(1)
	}
}

// parseConfig turns the -strategy and -merge flag values into a sort.Config.
func parseConfig(strategyName, mergeName string) (sort.Config, error) {
	st, err := msort.ParseStrategy(strategyName)
	if err != nil {
		return sort.Config{}, errors.Wrap(err, "-strategy")
	}
	mk, err := msort.ParseMergeKind(mergeName)
	if err != nil {
		return sort.Config{}, errors.Wrap(err, "-merge")
	}
	return sort.Config{Strategy: st, Merge: mk}, nil
}

// resolveSeed returns seed unchanged when it is non-negative, and otherwise a
// non-negative seed derived from now. Every seed it returns can be passed back
// with -seed to reproduce a run.
func resolveSeed(seed int64, now time.Time) int64 {
	if seed >= 0 {
		return seed
	}
	s := now.UnixNano()
	if s < 0 {
		s = -s
	}
	return s
}

// randomInts returns n values drawn uniformly from [-100, 100).
func randomInts(rng *rand.Rand, n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(200) - 100
	}
	return data
}

// allConfigs returns every schedule paired with every merge primitive.
func allConfigs() []sort.Config {
	var cfgs []sort.Config
	for _, st := range []msort.Strategy{msort.StrategyRecursive, msort.StrategyIterative} {
		for _, mk := range []msort.MergeKind{msort.MergeBuffered, msort.MergeInPlace} {
			cfgs = append(cfgs, sort.Config{Strategy: st, Merge: mk})
		}
	}
	return cfgs
}

// runChecks sorts every permutation of a random array through every
// configuration, and merges the sorted halves of every permutation with both
// merge primitives. It prints one line per check and returns the number of
// failed cases.
func runChecks(rng *rand.Rand) int {
	base := randomInts(rng, checkSize)
	want := slices.Clone(base)
	slices.Sort(want)
	fmt.Printf("Checking permutations of %v\n", base)

	failures := 0
	report := func(name string, failed int) {
		total := permute.Count(len(base))
		fmt.Printf("  %-24s %d/%d passed\n", name, total-failed, total)
		failures += failed
	}

	for _, cfg := range allConfigs() {
		failed := 0
		permute.Each(slices.Clone(base), func(p []int) {
			data := slices.Clone(p)
			sort.SortWith(data, msort.Compare[int], cfg)
			if !slices.Equal(data, want) {
				failed++
				fmt.Printf("    sort %v = %v, want %v\n", p, data, want)
			}
		})
		report("sort "+cfg.String(), failed)
	}

	mid := (len(base) + 1) / 2
	for _, kind := range []msort.MergeKind{msort.MergeBuffered, msort.MergeInPlace} {
		m := merge.NewMerger[int](kind)
		failed := 0
		permute.Each(slices.Clone(base), func(p []int) {
			data := slices.Clone(p)
			slices.Sort(data[:mid])
			slices.Sort(data[mid:])
			m.Merge(data, 0, mid, len(data))
			if !slices.Equal(data, want) {
				failed++
				fmt.Printf("    merge %v = %v, want %v\n", p, data, want)
			}
		})
		report("merge "+kind.String(), failed)
	}

	return failures
}
