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

package sqlparse_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bufbuild/sqlparse"
	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/parser"
	"github.com/bufbuild/sqlparse/report"
	"github.com/bufbuild/sqlparse/token"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParse(t *testing.T) {
	t.Parallel()

	d := dialect.ANSI()
	in := sqlparse.Input{Path: "q.sql", Tokens: token.Scan("SELECT a FROM t;")}
	res := sqlparse.Parse(d, "FileSegment", in)
	require.NoError(t, res.Err)
	assert.True(t, res.Complete())
	assert.Equal(t, cst.Ref, res.Tree.Kind)
	assert.Equal(t, "FileSegment", res.Tree.Name)
	assert.Equal(t, len(in.Tokens), res.End)
	assert.Empty(t, res.Report())
	assert.Positive(t, res.Stats.Frames)

	// Stopping early is not an error.
	in = sqlparse.Input{Tokens: token.Scan("SELECT a FROM t WHERE")}
	res = sqlparse.Parse(d, "SelectClauseSegment", in)
	require.NoError(t, res.Err)
	assert.False(t, res.Complete())
}

func TestParseFailure(t *testing.T) {
	t.Parallel()

	d := dialect.ANSI()
	in := sqlparse.Input{Path: "bad.sql", Tokens: token.Scan("FROM t")}
	res := sqlparse.Parse(d, "SelectClauseSegment", in, parser.WithEngine(parser.Recursive))
	require.Error(t, res.Err)
	assert.False(t, res.Complete())

	rep := res.Report()
	require.Len(t, rep, 1)
	assert.Equal(t, report.Error, rep[0].Level)
	assert.Equal(t, "bad.sql", rep[0].InFile)

	text, errs, _ := report.Renderer{Compact: true}.RenderString(rep)
	assert.Equal(t, 1, errs)
	assert.Contains(t, text, "bad.sql:1:1")
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	var inputs []sqlparse.Input
	for i := range 20 {
		sql := fmt.Sprintf("SELECT a%d FROM t WHERE x = %d;", i, i)
		if i%5 == 0 {
			sql = "FROM nowhere"
		}
		inputs = append(inputs, sqlparse.Input{
			Path:   fmt.Sprintf("%02d.sql", i),
			Tokens: token.Scan(sql),
		})
	}

	b := &sqlparse.Batch{
		Dialect:        dialect.ANSI(),
		Rule:           "StatementSegment",
		MaxParallelism: 3,
	}
	results, err := b.ParseAll(context.Background(), inputs...)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, res := range results {
		assert.Equal(t, inputs[i].Path, res.Path)
		if i%5 == 0 {
			assert.Error(t, res.Err, "input %d", i)
			continue
		}
		require.NoError(t, res.Err, "input %d", i)
		_, ok := res.Tree.Find("WhereClauseSegment")
		assert.True(t, ok, "input %d", i)
	}
}

func TestParseAllCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &sqlparse.Batch{Dialect: dialect.ANSI(), Rule: "FileSegment", MaxParallelism: 1}
	_, err := b.ParseAll(ctx,
		sqlparse.Input{Tokens: token.Scan("SELECT 1;")},
		sqlparse.Input{Tokens: token.Scan("SELECT 2;")},
	)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseAllNoRule(t *testing.T) {
	t.Parallel()

	b := &sqlparse.Batch{Dialect: dialect.ANSI()}
	_, err := b.ParseAll(context.Background(), sqlparse.Input{})
	require.Error(t, err)
}
