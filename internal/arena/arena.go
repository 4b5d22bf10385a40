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

// Package arena provides an append-only store whose elements never move,
// addressed by small integer handles.
//
// Grammar graphs are built once per dialect and then shared read-only by
// every parse. Storing their nodes in an arena gives each one a cheap,
// comparable identity, and lets rule cycles be expressed by name rather than
// by pointer.
package arena

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// minChunkShift is the log2 of the length of the first chunk.
const (
	minChunkShift = 4
	minChunkLen   = 1 << minChunkShift
)

// Pointer is a handle to a value stored in an [Arena].
//
// The value of a pointer is one plus the number of values allocated before
// it, so the zero Pointer is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In looks up this pointer in the given arena.
//
// The arena must be the one that allocated p. Panics if p is nil.
func (p Pointer[T]) In(a *Arena[T]) *T {
	return a.At(p)
}

// Arena is a slice of T that guarantees values are never moved once
// allocated.
//
// Values live in chunks whose lengths double, like the backing array of an
// ordinary slice being grown, except that old chunks are kept rather than
// copied. Lookup stays O(1).
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(chunks[0]) == minChunkLen.
	// 2. cap(chunks[n]) == 2*cap(chunks[n-1]).
	// 3. len(chunks[n]) == cap(chunks[n]) for every chunk but the last.
	chunks [][]T
}

// New allocates value in the arena and returns a pointer to it.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.chunks == nil {
		a.chunks = [][]T{make([]T, 0, minChunkLen)}
	}

	last := &a.chunks[len(a.chunks)-1]
	if len(*last) == cap(*last) {
		a.chunks = append(a.chunks, make([]T, 0, 2*cap(*last)))
		last = &a.chunks[len(a.chunks)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// At dereferences p.
//
// Panics if p is nil or was not allocated by this arena.
func (a *Arena[T]) At(p Pointer[T]) *T {
	if p.Nil() {
		panic("arena: dereferenced nil pointer")
	}
	chunk, idx := a.locate(int(p) - 1)
	return &a.chunks[chunk][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}
	return prefixLen(len(a.chunks)-1) + len(a.chunks[len(a.chunks)-1])
}

// All returns an iterator over every pointer in allocation order, along
// with the value it refers to.
func (a *Arena[T]) All() iter.Seq2[Pointer[T], *T] {
	return func(yield func(Pointer[T], *T) bool) {
		var p Pointer[T]
		for _, chunk := range a.chunks {
			for i := range chunk {
				p++
				if !yield(p, &chunk[i]) {
					return
				}
			}
		}
	}
}

// String implements [fmt.Stringer].
//
// Chunk boundaries are shown with a |.
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, chunk := range a.chunks {
		if i != 0 {
			b.WriteByte('|')
		}
		for j, v := range chunk {
			if j != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// prefixLen returns the total capacity of the first n chunks.
//
// minChunkLen * (1 + 2 + ... + 2^(n-1)) == minChunkLen * (2^n - 1).
func prefixLen(n int) int {
	return (minChunkLen << n) - minChunkLen
}

// locate converts a flat index into a chunk and an offset within it,
// performing a bounds check.
func (a *Arena[T]) locate(idx int) (chunk, offset int) {
	if idx < 0 || idx >= a.Len() {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// Chunk n starts at minChunkLen * (2^n - 1). Adding minChunkLen turns
	// that into minChunkLen * 2^n, whose high bit identifies n.
	chunk = bits.UintSize - bits.LeadingZeros(uint(idx+minChunkLen)) - (minChunkShift + 1)
	return chunk, idx - prefixLen(chunk)
}
