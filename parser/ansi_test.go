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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/parser"
	"github.com/bufbuild/sqlparse/token"
)

func TestANSI(t *testing.T) {
	t.Parallel()

	d := dialect.ANSI()
	tests := []struct {
		name, sql  string
		segments   []string
		unparsable []string
	}{
		{
			name:     "simple",
			sql:      "SELECT a FROM t;",
			segments: []string{"SelectClauseSegment", "FromClauseSegment", "SemicolonSegment"},
		},
		{
			name: "clauses",
			sql:  "SELECT DISTINCT a AS x, count(*) FROM s.t AS u WHERE a IS NOT NULL AND b = 'q' ORDER BY a DESC LIMIT 10;",
			segments: []string{
				"SelectClauseModifierSegment", "AliasExpressionSegment", "FunctionSegment",
				"IsNullSegment", "OrderByClauseSegment", "LimitClauseSegment",
			},
		},
		{
			name:       "leftover",
			sql:        "SELECT a b c FROM t;",
			segments:   []string{"AliasExpressionSegment", "FromClauseSegment"},
			unparsable: []string{"c"},
		},
		{
			name:     "insert",
			sql:      "INSERT INTO t (a, b) VALUES (1, 2), (3, 4);",
			segments: []string{"InsertStatementSegment", "ValuesClauseSegment"},
		},
		{
			name:     "subquery",
			sql:      "DELETE FROM t WHERE x = (SELECT 1);",
			segments: []string{"DeleteStatementSegment", "WhereClauseSegment", "SelectStatementSegment"},
		},
		{
			name:     "comments",
			sql:      "SELECT a -- hi\nFROM t;\nSELECT \"Col\".x FROM u;",
			segments: []string{"ColumnReferenceSegment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := token.Scan(tt.sql)
			node, pos, err := parseAll(t, d, tokens, "FileSegment")
			require.NoError(t, err)
			assert.Equal(t, len(tokens), pos)
			assert.Equal(t, tt.sql, node.Text())
			assert.Equal(t, "file", node.SegmentType)
			checkLeaves(t, node)

			for _, name := range tt.segments {
				_, ok := node.Find(name)
				assert.True(t, ok, "missing %s in\n%s", name, node.Dump())
			}
			assert.Equal(t, tt.unparsable, unparsable(node))
		})
	}
}

func TestGreedyOnceStarted(t *testing.T) {
	t.Parallel()

	d := dialect.ANSI()
	_, pos, err := parseAll(t, d, token.Scan("FROM t"), "SelectClauseSegment")
	var mismatch *parser.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 0, mismatch.Pos)
	assert.Equal(t, 0, pos)

	// Once started, the clause claims everything up to its terminators.
	node, pos, err := parseAll(t, d, token.Scan("SELECT a b c FROM t"), "SelectClauseSegment")
	require.NoError(t, err)
	assert.Equal(t, 7, pos)
	assert.Equal(t, []string{"c"}, unparsable(node))
}
