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

// Package merge implements the merge-range primitive of merge sort: given a
// slice whose ranges [start,mid) and [mid,end) are each sorted ascending, it
// rearranges [start,end) into one ascending run, in place.
//
// Two strategies are provided:
//   - Buffered copies both runs into scratch storage and writes the merge
//     back with two read cursors and one write cursor.
//   - InPlace uses no auxiliary storage; it shifts the unplaced part of the
//     left run to open a slot whenever the right run's head must go first.
//
// Both are stable: on ties the element of the left run is placed first.
// Elements outside [start,end) are never touched. Ranges that violate
// 0 <= start <= mid <= end <= len(data) panic with an error wrapping
// msort.ErrInvalidRange.
package merge

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-mergesort/msort"
)

// Range merges data[start:mid] and data[mid:end] using the primitive
// selected by msort.CurrentMerge.
func Range[T msort.Ordered](data []T, start, mid, end int) {
	NewMerger[T](msort.CurrentMerge()).Merge(data, start, mid, end)
}

// RangeFunc is like Range but orders elements with cmp, which follows the
// slices.SortFunc convention.
func RangeFunc[T any](data []T, start, mid, end int, cmp func(a, b T) int) {
	NewMergerFunc(msort.CurrentMerge(), cmp).Merge(data, start, mid, end)
}

// Buffered merges data[start:mid] and data[mid:end] through a scratch buffer.
// It allocates end-start elements of auxiliary storage.
func Buffered[T msort.Ordered](data []T, start, mid, end int) {
	NewMerger[T](msort.MergeBuffered).Merge(data, start, mid, end)
}

// BufferedFunc is like Buffered but orders elements with cmp.
func BufferedFunc[T any](data []T, start, mid, end int, cmp func(a, b T) int) {
	NewMergerFunc(msort.MergeBuffered, cmp).Merge(data, start, mid, end)
}

// InPlace merges data[start:mid] and data[mid:end] without auxiliary storage.
func InPlace[T msort.Ordered](data []T, start, mid, end int) {
	NewMerger[T](msort.MergeInPlace).Merge(data, start, mid, end)
}

// InPlaceFunc is like InPlace but orders elements with cmp.
func InPlaceFunc[T any](data []T, start, mid, end int, cmp func(a, b T) int) {
	NewMergerFunc(msort.MergeInPlace, cmp).Merge(data, start, mid, end)
}

// Merger carries the state shared by the merges of one sort call: the
// ordering, the primitive and, for buffered merges, a scratch buffer that is
// grown on demand and reused across calls.
//
// A Merger is not safe for concurrent use.
type Merger[T any] struct {
	cmp     func(a, b T) int
	kind    msort.MergeKind
	scratch []T
}

// NewMerger returns a Merger using the natural ordering of T.
func NewMerger[T msort.Ordered](kind msort.MergeKind) *Merger[T] {
	return NewMergerFunc(kind, msort.Compare[T])
}

// NewMergerFunc returns a Merger ordering elements with cmp. Kinds other
// than MergeInPlace merge as MergeBuffered. A nil cmp panics with an error
// wrapping msort.ErrInvalidConfig.
func NewMergerFunc[T any](kind msort.MergeKind, cmp func(a, b T) int) *Merger[T] {
	if cmp == nil {
		panic(errors.Wrap(msort.ErrInvalidConfig, "nil comparison function"))
	}
	return &Merger[T]{cmp: cmp, kind: kind}
}

// Kind returns the primitive used by m.
func (m *Merger[T]) Kind() msort.MergeKind {
	return m.kind
}

// Grow makes sure the scratch buffer can hold n elements, so that later
// buffered merges of up to n elements do not allocate.
func (m *Merger[T]) Grow(n int) {
	if m.kind != msort.MergeInPlace && cap(m.scratch) < n {
		m.scratch = make([]T, n)
	}
}

// Reset releases the scratch buffer, dropping any element copies it holds.
func (m *Merger[T]) Reset() {
	m.scratch = nil
}

// Merge merges data[start:mid] and data[mid:end], both of which must already
// be sorted, into a single sorted run data[start:end].
func (m *Merger[T]) Merge(data []T, start, mid, end int) {
	r := msort.Range{Start: start, Mid: mid, End: end}
	r.Check(len(data))
	if r.Trivial() {
		return
	}
	// Runs already in order: the largest on the left does not exceed the
	// smallest on the right.
	if m.cmp(data[mid-1], data[mid]) <= 0 {
		return
	}

	switch m.kind {
	case msort.MergeInPlace:
		mergeInPlace(data, start, mid, end, m.cmp)
	default:
		m.Grow(r.Len())
		mergeBuffered(data, m.scratch[:r.Len()], start, mid, end, m.cmp)
	}
}
