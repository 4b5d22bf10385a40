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

package report_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/sqlparse/report"
)

type found struct {
	span report.Span
	want string
}

func (f *found) Error() string { return "expected " + f.want }

func (f *found) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Snippetf(f.span, "found %q", f.span.Text()),
		report.Note("while parsing SelectStatementSegment"),
	)
}

func TestLocation(t *testing.T) {
	t.Parallel()

	f := report.NewFile("q.sql", "SELECT a\n\tFROM\n'日本' x")
	tests := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{7, 1, 8},
		{9, 2, 1},
		{10, 2, 5}, // After a tab.
		{15, 3, 1},
		{len(f.Text) - 1, 3, 8}, // After two double-width runes.
		{len(f.Text) + 5, 3, 9}, // Clamped.
	}
	for _, tt := range tests {
		loc := f.Location(tt.offset)
		assert.Equal(t, tt.line, loc.Line, "offset %d", tt.offset)
		assert.Equal(t, tt.col, loc.Column, "offset %d", tt.offset)
	}

	assert.Equal(t, "\tFROM", f.Line(2))
	assert.Equal(t, "'日本' x", f.Line(3))
}

func TestRender(t *testing.T) {
	t.Parallel()

	f := report.NewFile("query.sql", "SELECT a FORM t")
	var r report.Report
	r.Error(&found{span: report.Span{File: f, Start: 9, End: 13}, want: "FROM"})

	text, errs, warns := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(t, "error: query.sql:1:10: expected FROM\n", text)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 0, warns)

	text, _, _ = report.Renderer{}.RenderString(r)
	assert.Equal(t, ``+
		"error: expected FROM\n"+
		" --> query.sql:1:10\n"+
		"  |\n"+
		"1 | SELECT a FORM t\n"+
		"  |          ^^^^ found \"FORM\"\n"+
		"  = note: while parsing SelectStatementSegment\n",
		text)
}

func TestRenderTabs(t *testing.T) {
	t.Parallel()

	f := report.NewFile("t.sql", "a\n\tFORM")
	var r report.Report
	r.Error(&found{span: report.Span{File: f, Start: 3, End: 7}, want: "FROM"})

	text, _, _ := report.Renderer{}.RenderString(r)
	assert.Equal(t, ``+
		"error: expected FROM\n"+
		" --> t.sql:2:5\n"+
		"  |\n"+
		"2 |     FORM\n"+
		"  |     ^^^^ found \"FORM\"\n"+
		"  = note: while parsing SelectStatementSegment\n",
		text)
}

func TestAdd(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Add(errors.New("plain"), report.Warning)
	r.Add(fmt.Errorf("wrapped: %w", &found{
		span: report.Span{File: report.NewFile("x.sql", "x"), Start: 0, End: 1},
		want: "y",
	}), report.Error)
	r.Errorf("no file").With(report.InFile("z.sql"), report.Help("try harder"))

	assert.Len(t, r, 3)
	assert.Len(t, r[1].Annotations, 1)
	assert.Equal(t, map[report.Level]int{report.Warning: 1, report.Error: 2}, r.Count())

	text, errs, warns := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(t, ""+
		"warning: plain\n"+
		"error: x.sql:1:1: wrapped: expected y\n"+
		"error: z.sql: no file\n",
		text)
	assert.Equal(t, 2, errs)
	assert.Equal(t, 1, warns)

	err := &report.AsError{Report: r[:1]}
	assert.Equal(t, "warning: plain\n", err.Error())
}
