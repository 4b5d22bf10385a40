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

package intern_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/sqlparse/internal/intern"
)

func TestIntern(t *testing.T) {
	t.Parallel()

	data := []string{
		"",
		"seq(gaps,[1,2])",
		"ref(SelectStatementSegment)",
		"symbol(;)",
		" ",
		"terms[3,7]",
	}

	var table intern.Table
	for i := range 3 {
		for _, s := range data {
			t.Run(fmt.Sprintf("%q/%d", s, i), func(t *testing.T) {
				t.Parallel()

				id := table.Intern(s)
				assert.Equal(t, s, table.Value(id), "id: %v", id)
				assert.Equal(t, s == "", id == 0)

				again, ok := table.Query(s)
				assert.True(t, ok)
				assert.Equal(t, id, again)
			})
		}
	}
}

func TestQueryMissing(t *testing.T) {
	t.Parallel()

	var table intern.Table
	_, ok := table.Query("never interned")
	assert.False(t, ok)

	a := table.Intern("a")
	b := table.Intern("b")
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, table.Len())
}
