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

// Package intern provides an interning table, used to turn structural
// descriptions of grammars and terminator sets into small comparable keys.
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is an interned string in a particular [Table].
//
// IDs can be compared very cheaply. The zero value of ID always
// corresponds to the empty string.
type ID int32

// String implements [fmt.Stringer].
//
// Note that this will not convert the ID back into a string; to do that, you
// must call [Table.Value].
func (id ID) String() string {
	if id == 0 {
		return `intern.ID("")`
	}
	return fmt.Sprintf("intern.ID(%d)", int(id))
}

// Table is an interning table.
//
// The zero value of Table is empty and ready to use.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

// Intern interns the given string into this table.
//
// This function may be called by multiple goroutines concurrently.
func (t *Table) Intern(s string) ID {
	if id, ok := t.Query(s); ok {
		return id
	}
	return t.internSlow(s)
}

// Query returns the ID for s if it has already been interned.
func (t *Table) Query(s string) (ID, bool) {
	if s == "" {
		return 0, true
	}

	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()
	return id, ok
}

func (t *Table) internSlow(s string) ID {
	// Keys are often built in scratch buffers; do not hold on to them.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Someone may have raced us between RUnlock and Lock.
	if id, ok := t.index[s]; ok {
		return id
	}

	t.table = append(t.table, s)
	id := ID(len(t.table))
	if id < 0 {
		panic(fmt.Sprintf("internal/intern: %d interning IDs exhausted", len(t.table)))
	}

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id
	return id
}

// Value converts an [ID] back into its corresponding string.
//
// If id was created by a different [Table], the results are unspecified,
// including potentially a panic.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[int(id)-1]
}

// Len returns the number of distinct non-empty strings interned so far.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}
