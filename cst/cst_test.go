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

package cst_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/grammar"
	"github.com/bufbuild/sqlparse/token"
)

func sample() cst.Node {
	toks := token.Scan("SELECT a")
	return cst.NewRef("SelectStatementSegment", "select_statement", cst.Node{
		Kind: cst.Sequence,
		Children: []cst.Node{
			cst.Leaf(toks[0], 0, "keyword"),
			cst.NewMeta(grammar.Indent),
			cst.Leaf(toks[1], 1, ""),
			cst.Leaf(toks[2], 2, ""),
			cst.NewMeta(grammar.Dedent),
		},
	})
}

func TestLeaf(t *testing.T) {
	t.Parallel()

	toks := token.Scan("x \n--c")
	toks = append(toks, token.NonCode("", token.TypeEndOfFile))

	var kinds []cst.Kind
	for i, tok := range toks {
		kinds = append(kinds, cst.Leaf(tok, i, "").Kind)
	}
	assert.Equal(t, []cst.Kind{cst.Code, cst.Whitespace, cst.Newline, cst.Comment, cst.EndOfFile}, kinds)

	kw := cst.Leaf(toks[0], 0, "keyword")
	assert.Equal(t, cst.Keyword, kw.Kind)
	assert.True(t, kw.IsCode())
	assert.Equal(t, "word", cst.Leaf(toks[0], 0, "").Type)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	n := sample()
	assert.Equal(t, "SELECT a", n.Text())

	start, end, ok := n.Span()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	var leaves []string
	for l := range n.Leaves() {
		leaves = append(leaves, l.Raw)
	}
	assert.Equal(t, []string{"SELECT", " ", "a"}, leaves)

	kinds := slices.Collect(func(yield func(cst.Kind) bool) {
		for c := range n.All() {
			if !yield(c.Kind) {
				return
			}
		}
	})
	assert.Equal(t, []cst.Kind{
		cst.Ref, cst.Sequence, cst.Keyword, cst.Meta, cst.Whitespace, cst.Code, cst.Meta,
	}, kinds)

	ref, ok := n.Find("SelectStatementSegment")
	assert.True(t, ok)
	assert.Equal(t, cst.Sequence, ref.Child().Kind)
	_, ok = n.Find("Nope")
	assert.False(t, ok)

	_, _, ok = cst.Node{}.Span()
	assert.False(t, ok)
	assert.True(t, cst.Node{}.IsEmpty())
}

func TestDump(t *testing.T) {
	t.Parallel()

	want := `ref SelectStatementSegment (select_statement)
  sequence
    keyword "SELECT" @0
    meta indent
    whitespace " " @1
    code "a" @2 word
    meta dedent
`
	assert.Equal(t, want, sample().Dump())
}

func TestYAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(sample())
	require.NoError(t, err)

	var got struct {
		Kind        string `yaml:"kind"`
		Name        string `yaml:"name"`
		SegmentType string `yaml:"segment_type"`
		Children    []struct {
			Kind     string           `yaml:"kind"`
			Children []map[string]any `yaml:"children"`
		} `yaml:"children"`
	}
	require.NoError(t, yaml.Unmarshal(out, &got))

	assert.Equal(t, "ref", got.Kind)
	assert.Equal(t, "SelectStatementSegment", got.Name)
	assert.Equal(t, "select_statement", got.SegmentType)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "sequence", got.Children[0].Kind)

	leaves := got.Children[0].Children
	require.Len(t, leaves, 5)
	assert.Equal(t, map[string]any{"kind": "keyword", "raw": "SELECT", "type": "keyword", "pos": 0}, leaves[0])
	assert.Equal(t, map[string]any{"kind": "meta", "meta": "indent"}, leaves[1])
	assert.Equal(t, map[string]any{"kind": "whitespace", "raw": " ", "type": "whitespace", "pos": 1}, leaves[2])
}
