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

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/sqlparse/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	type r struct {
		start, end int
		value      string
	}

	tests := []struct {
		name   string
		ranges []r    // Ranges to insert.
		want   string // If not "", the value of the overlap for the last range.
	}{
		{
			name:   "empty-map",
			ranges: []r{{0, 9, "foo"}},
		},
		{
			name:   "point",
			ranges: []r{{0, 9, "foo"}, {10, 10, "bar"}},
		},
		{
			name:   "before",
			ranges: []r{{30, 39, "bar"}, {0, 9, "foo"}},
		},
		{
			name:   "between",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {10, 29, "baz"}},
		},
		{
			name:   "same-run",
			ranges: []r{{0, 9, "foo"}, {0, 9, "bar"}},
			want:   "foo",
		},
		{
			name:   "shares-end",
			ranges: []r{{0, 9, "foo"}, {9, 12, "bar"}},
			want:   "foo",
		},
		{
			name:   "inside",
			ranges: []r{{0, 9, "foo"}, {3, 4, "bar"}},
			want:   "foo",
		},
		{
			name:   "spans-two",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {5, 35, "baz"}},
			want:   "foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := new(interval.Map[int, string])
			for i, e := range tt.ranges {
				overlap := m.Insert(e.start, e.end, e.value)
				if i < len(tt.ranges)-1 || tt.want == "" {
					require.Nil(t, overlap.Value)
				} else {
					require.NotNil(t, overlap.Value)
					assert.Equal(t, tt.want, *overlap.Value)
				}
			}

			// The first insertion of a point always wins.
			first := tt.ranges[0]
			got := m.Get(first.start)
			require.NotNil(t, got.Value)
			assert.Equal(t, first.value, *got.Value)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	// Terminator runs: scanning from anywhere in [0, 4] finds position 4,
	// anywhere in [7, 12] finds 12.
	var m interval.Map[int, int]
	require.Nil(t, m.Insert(0, 4, 4).Value)
	require.Nil(t, m.Insert(7, 12, 12).Value)
	require.Nil(t, m.Insert(13, 13, 20).Value)

	for _, tt := range []struct {
		key, want int
		ok        bool
	}{
		{-1, 0, false},
		{0, 4, true},
		{4, 4, true},
		{5, 0, false},
		{7, 12, true},
		{10, 12, true},
		{13, 20, true},
		{14, 0, false},
	} {
		got := m.Get(tt.key)
		if !tt.ok {
			assert.Nil(t, got.Value, "key %d", tt.key)
			continue
		}
		if assert.NotNil(t, got.Value, "key %d", tt.key) {
			assert.Equal(t, tt.want, *got.Value, "key %d", tt.key)
		}
	}

	var empty interval.Map[int, int]
	assert.Nil(t, empty.Get(0).Value)
}
