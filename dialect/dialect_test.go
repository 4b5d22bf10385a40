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

package dialect_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/grammar"
)

const testDialect = `
name: test
rules:
  StatementSegment:
    type: statement
    grammar:
      sequence:
      - {string: select}
      - delimited: [ColumnSegment]
        delimiter: {symbol: ";"}
        allow_trailing: true
        min_delimiters: 1
      - {ref: FromSegment, optional: true}
      mode: greedy
      terminators: [{symbol: ";"}]
  ColumnSegment:
    type: column
    grammar:
      one_of:
      - {regex: "[a-z]+", anti: "from", type: naked_identifier}
      - {typed: numeric_literal}
      - bracketed: [ColumnSegment]
        open: {symbol: "["}
        close: {symbol: "]"}
  FromSegment:
    sequence: [{string: from, type: from_keyword}, {any_number_of: [ColumnSegment], min: 1, max: 3}]
    allow_gaps: false
  ModifierSegment:
    any_set_of:
    - {multi_string: [distinct, all]}
    - {meta: indent}
    - token: comment
`

func TestLoad(t *testing.T) {
	t.Parallel()

	d, err := dialect.Load(strings.NewReader(testDialect), nil)
	require.NoError(t, err)
	require.NoError(t, d.Check())
	assert.Equal(t, "test", d.Name())
	assert.Equal(t,
		[]string{"ColumnSegment", "FromSegment", "ModifierSegment", "StatementSegment"},
		d.Names(),
	)

	set := d.Grammars()
	get := func(name string) (grammar.Grammar, string) {
		id, typ, ok := d.Lookup(name)
		require.True(t, ok, name)
		return set.Get(id), typ
	}

	stmt, typ := get("StatementSegment")
	assert.Equal(t, "statement", typ)
	assert.Equal(t, grammar.KindSequence, stmt.Kind())
	assert.Equal(t, grammar.Greedy, stmt.Mode())
	assert.Equal(t, []grammar.ID{set.Symbol(";")}, stmt.Terminators())

	elems := stmt.Elements()
	require.Len(t, elems, 3)
	assert.Equal(t, set.StringParser("select", "keyword"), elems[0])

	list := set.Get(elems[1])
	assert.Equal(t, grammar.KindDelimited, list.Kind())
	assert.Equal(t, set.Symbol(";"), list.Delimiter())
	assert.True(t, list.AllowTrailing())
	assert.Equal(t, 1, list.MinDelimiters())

	from := set.Get(elems[2])
	assert.Equal(t, grammar.KindRef, from.Kind())
	assert.Equal(t, "FromSegment", from.Name())
	assert.True(t, from.IsOptional())

	col, typ := get("ColumnSegment")
	assert.Equal(t, "column", typ)
	alts := col.Elements()
	require.Len(t, alts, 3)
	re := set.Get(alts[0])
	assert.Equal(t, "naked_identifier", re.OutType())
	assert.True(t, re.MatchesRegex("abc"))
	assert.False(t, re.MatchesRegex("FROM"))
	assert.Equal(t, "numeric_literal", set.Get(alts[1]).OutType())
	open, close := set.Get(alts[2]).Brackets()
	assert.Equal(t, set.Symbol("["), open)
	assert.Equal(t, set.Symbol("]"), close)

	fromSeg, typ := get("FromSegment")
	assert.Empty(t, typ)
	assert.False(t, fromSeg.AllowGaps())
	many := set.Get(fromSeg.Elements()[1])
	assert.Equal(t, 1, many.Min())
	assert.Equal(t, 3, many.Max())
	assert.Equal(t, "from_keyword", set.Get(fromSeg.Elements()[0]).OutType())

	mods, _ := get("ModifierSegment")
	assert.Equal(t, grammar.KindAnySetOf, mods.Kind())
	assert.Equal(t, []string{"distinct", "all"}, set.Get(mods.Elements()[0]).Templates())
	assert.Equal(t, grammar.Indent, set.Get(mods.Elements()[1]).Meta())
	assert.Equal(t, grammar.KindToken, set.Get(mods.Elements()[2]).Kind())
}

func TestLoadGrammarValuedOptions(t *testing.T) {
	t.Parallel()

	const text = `
name: options
rules:
  List:
    delimited: [Item]
    delimiter: Dot
    terminators: [Semi, {symbol: ")"}]
  Group:
    bracketed: []
    open: {symbol: "<"}
    close: Close
`
	d, err := dialect.Load(strings.NewReader(text), nil)
	require.NoError(t, err)
	set := d.Grammars()

	id, _, ok := d.Lookup("List")
	require.True(t, ok)
	list := set.Get(id)
	assert.Equal(t, set.Ref("Dot"), list.Delimiter())
	assert.ElementsMatch(t, []grammar.ID{set.Ref("Semi"), set.Symbol(")")}, list.Terminators())

	id, _, ok = d.Lookup("Group")
	require.True(t, ok)
	open, close := set.Get(id).Brackets()
	assert.Equal(t, set.Symbol("<"), open)
	assert.Equal(t, set.Ref("Close"), close)

	// Errors inside a grammar-valued option point at the nested node.
	_, err = dialect.Load(strings.NewReader(
		"name: x\nrules:\n  A:\n    delimited: [B]\n    delimiter:\n      symbol: \"\"\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 6: symbol needs a non-empty string")

	_, err = dialect.Load(strings.NewReader(
		"name: x\nrules:\n  A:\n    sequence: [B]\n    terminators: C\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5: terminators needs a list of grammars")
}

func TestLoadShared(t *testing.T) {
	t.Parallel()

	// Loading into an existing set shares structurally equal grammars.
	var set grammar.Set
	a, err := dialect.Load(strings.NewReader(testDialect), &set)
	require.NoError(t, err)
	b, err := dialect.Load(strings.NewReader(testDialect), &set)
	require.NoError(t, err)

	for r := range a.Rules() {
		id, _, ok := b.Lookup(r.Name)
		require.True(t, ok)
		assert.Equal(t, r.Grammar, id, r.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text, want string
	}{
		{
			name: "unknown-key",
			text: "name: x\nrules:\n  A:\n    sequence: [B]\n    bogus: 1\n",
			want: `line 5: unknown grammar key "bogus"`,
		},
		{
			name: "two-kinds",
			text: "name: x\nrules:\n  A: {symbol: a, string: b}\n",
			want: "line 3: grammar has two kinds, symbol and string",
		},
		{
			name: "no-kind",
			text: "name: x\nrules:\n  A: {optional: true}\n",
			want: "line 3: grammar has no kind",
		},
		{
			name: "bad-mode",
			text: "name: x\nrules:\n  A:\n    sequence: [B]\n    mode: lazy\n",
			want: `line 4: unknown mode "lazy"`,
		},
		{
			name: "bad-meta",
			text: "name: x\nrules:\n  A: {meta: outdent}\n",
			want: `unknown meta kind "outdent"`,
		},
		{
			name: "bad-regex",
			text: "name: x\nrules:\n  A: {regex: \"(\"}\n",
			want: "rule A: line 3:",
		},
		{
			name: "empty-one-of",
			text: "name: x\nrules:\n  A: {one_of: []}\n",
			want: "one_of needs at least one element",
		},
		{
			name: "scalar-body",
			text: "name: x\nrules:\n  A: {sequence: B}\n",
			want: "sequence needs a list of grammars",
		},
		{
			name: "min-max",
			text: "name: x\nrules:\n  A: {any_number_of: [B], min: 3, max: 1}\n",
			want: "min (3) > max (1)",
		},
		{
			name: "symbol-type",
			text: "name: x\nrules:\n  A: {symbol: \";\", type: semi}\n",
			want: "line 3: symbol does not take a type",
		},
		{
			name: "rules-not-mapping",
			text: "name: x\nrules: [A]\n",
			want: "line 2: rules must be a mapping",
		},
		{
			name: "unknown-field",
			text: "name: x\nversion: 2\nrules: {}\n",
			want: "field version not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dialect.Load(strings.NewReader(tt.text), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefine(t *testing.T) {
	t.Parallel()

	var set grammar.Set
	d := dialect.New("manual", &set)
	require.NoError(t, d.Define("A", "a", set.Symbol("a")))
	require.Error(t, d.Define("A", "a", set.Symbol("b")))

	require.NoError(t, d.Replace("A", "b", set.Symbol("b")))
	id, typ, ok := d.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "b", typ)
	assert.Equal(t, set.Symbol("b"), id)
	assert.Error(t, d.Replace("B", "", set.Symbol("b")))

	_, _, ok = d.Lookup("B")
	assert.False(t, ok)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	var set grammar.Set
	d := dialect.New("broken", &set)
	require.NoError(t, d.Define("A", "", set.Sequence(set.Ref("B"), set.Ref("Nope"))))
	require.NoError(t, d.Define("B", "", set.OneOf(set.Missing(), set.Ref("A"))))
	require.NoError(t, d.Define("C", "", set.Bracketed(set.Ref("Open"), set.Symbol(")"))))

	err := d.Check()
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	var got []dialect.CheckError
	for _, err := range joined.Unwrap() {
		var ce *dialect.CheckError
		require.True(t, errors.As(err, &ce))
		got = append(got, *ce)
	}
	assert.Equal(t, []dialect.CheckError{
		{Rule: "A", Unresolved: "Nope"},
		{Rule: "B", Missing: true},
		{Rule: "C", Unresolved: "Open"},
	}, got)
}

func TestANSI(t *testing.T) {
	t.Parallel()

	d := dialect.ANSI()
	require.NoError(t, d.Check())
	assert.Equal(t, "ansi", d.Name())

	_, typ, ok := d.Lookup("FileSegment")
	assert.True(t, ok)
	assert.Equal(t, "file", typ)

	id, _, ok := d.Lookup("SelectClauseSegment")
	require.True(t, ok)
	sel := d.Grammars().Get(id)
	assert.Equal(t, grammar.GreedyOnceStarted, sel.Mode())
	assert.Len(t, sel.Terminators(), 6)

	id, _, ok = d.Lookup("FileSegment")
	require.True(t, ok)
	assert.Equal(t, d.Grammars().Ref("SemicolonSegment"), d.Grammars().Get(id).Delimiter())

	// Each call returns an independent copy.
	assert.NotSame(t, d.Grammars(), dialect.ANSI().Grammars())
}
