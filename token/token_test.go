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

package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/sqlparse/token"
)

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []string // type(raw) pairs, as printed by Token.String.
	}{
		{
			text: "SELECT a, b FROM t;",
			want: []string{
				`word("SELECT")`, `whitespace(" ")`, `word("a")`, `comma(",")`,
				`whitespace(" ")`, `word("b")`, `whitespace(" ")`, `word("FROM")`,
				`whitespace(" ")`, `word("t")`, `semicolon(";")`,
			},
		},
		{
			text: "x<=1.5e3--hi\n",
			want: []string{
				`word("x")`, `symbol("<=")`, `numeric_literal("1.5e3")`,
				`comment("--hi")`, `newline("\n")`,
			},
		},
		{
			text: "('it''s')/* c */[]",
			want: []string{
				`start_bracket("(")`, `quoted_literal("'it''s'")`, `end_bracket(")")`,
				`comment("/* c */")`, `start_square_bracket("[")`, `end_square_bracket("]")`,
			},
		},
		{
			text: "1.x",
			want: []string{`numeric_literal("1")`, `dot(".")`, `word("x")`},
		},
		{
			text: `"Col"."x"`,
			want: []string{`double_quoted_literal("\"Col\"")`, `dot(".")`, `double_quoted_literal("\"x\"")`},
		},
		{
			text: "'open",
			want: []string{`quoted_literal("'open")`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			s := token.Scan(tt.text)
			var got []string
			for _, tok := range s {
				got = append(got, tok.String())
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, s.Text())
		})
	}
}

func TestClass(t *testing.T) {
	t.Parallel()

	s := token.Scan("a \n--c\n")
	s = append(s, token.NonCode("", token.TypeEndOfFile), token.NonCode("\v", "weird"))

	var got []token.Class
	for _, tok := range s {
		got = append(got, tok.Class())
	}
	assert.Equal(t, []token.Class{
		token.ClassCode, token.ClassWhitespace, token.ClassNewline,
		token.ClassComment, token.ClassNewline, token.ClassEndOfFile,
		token.ClassWhitespace,
	}, got)
	assert.Equal(t, "newline", token.ClassNewline.String())
	assert.Equal(t, "token.ClassComment", token.ClassComment.GoString())
	assert.Equal(t, "Class(42)", token.Class(42).String())
}

func TestStreamHelpers(t *testing.T) {
	t.Parallel()

	s := token.Scan("ab  cd \n")
	// ab, ws, cd, ws, nl
	require.Len(t, s, 5)

	assert.Equal(t, 0, s.Offset(0))
	assert.Equal(t, 4, s.Offset(2))
	assert.Equal(t, len(s.Text()), s.Offset(len(s)))

	assert.Equal(t, 2, s.NextCode(1, len(s)))
	assert.Equal(t, 5, s.NextCode(3, len(s)))
	assert.Equal(t, 3, s.TrimCode(0, 5))
	assert.Equal(t, 1, s.TrimCode(1, 2))
	assert.True(t, s.HasCode(1, 3))
	assert.False(t, s.HasCode(3, 5))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	s, err := token.Load(strings.NewReader(`
- {raw: SELECT, type: keyword, code: true}
- {raw: " ", type: whitespace}
- "a, b"
`))
	require.NoError(t, err)
	assert.Equal(t, token.Stream{
		token.Code("SELECT", "keyword"),
		token.NonCode(" ", token.TypeWhitespace),
		token.Code("a", token.TypeWord),
		token.Code(",", token.TypeComma),
		token.NonCode(" ", token.TypeWhitespace),
		token.Code("b", token.TypeWord),
	}, s)

	_, err = token.Load(strings.NewReader(`- {raw: x}`))
	assert.ErrorContains(t, err, "missing type")

	s, err = token.Load(strings.NewReader(``))
	require.NoError(t, err)
	assert.Empty(t, s)
}
