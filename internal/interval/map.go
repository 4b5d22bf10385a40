// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides a map from disjoint closed intervals to values.
package interval

import (
	"fmt"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Map maps disjoint closed intervals with endpoints in K to values of type V.
//
// A zero value is ready to use.
type Map[K Endpoint, V any] struct {
	// Keyed by the end of each interval. Because intervals are disjoint,
	// ordering by end is the same as ordering by start.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry in a [Map].
type Interval[K Endpoint, V any] struct {
	// The range for this interval. Both ends are inclusive.
	Start, End K

	// The value associated with it. Nil if this interval is not present.
	Value *V
}

type entry[K Endpoint, V any] struct {
	start K
	value V
}

// Get looks up the interval which contains key, if one exists.
//
// If no such interval exists, the Value of the returned [Interval] will be
// nil.
func (m *Map[K, V]) Get(key K) Interval[K, V] {
	first, ok := m.ceil(key)
	if !ok || key < first.Start {
		return Interval[K, V]{}
	}
	return first
}

// Insert inserts a new interval into this map, with the given associated
// value. Both endpoints are inclusive.
//
// If [start, end] overlaps any interval already present, nothing is inserted
// and the overlapping interval with the least start is returned instead. This
// case is distinguished by overlap.Value != nil.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// Every interval ending before start is disjoint from [start, end]. Of
	// the rest, only the first can overlap: all others begin after it ends.
	if first, ok := m.ceil(start); ok && first.Start <= end {
		return first
	}

	m.tree.Set(end, &entry[K, V]{start: start, value: value})
	return Interval[K, V]{}
}

// ceil returns the interval with the least end that is at least key.
func (m *Map[K, V]) ceil(key K) (Interval[K, V], bool) {
	iter := m.tree.Iter()
	if !iter.Seek(key) {
		return Interval[K, V]{}, false
	}
	e := iter.Value()
	return Interval[K, V]{Start: e.start, End: iter.Key(), Value: &e.value}, true
}
