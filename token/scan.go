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

package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var operators = []string{"<=", ">=", "<>", "!=", "||", "::", "=>", "->>", "->"}

var punct = map[rune]string{
	'(': TypeOpen,
	')': TypeClose,
	'[': TypeOpenSq,
	']': TypeCloseSq,
	'{': TypeOpenCu,
	'}': TypeCloseCu,
	',': TypeComma,
	';': TypeSemi,
	'.': TypeDot,
}

// Scan splits SQL text into tokens.
//
// This is not a dialect lexer. It recognizes words, numbers, quoted
// literals, line and block comments, whitespace, newlines, brackets and
// operators, which is enough to exercise grammars. Text that cannot be
// classified becomes single-rune symbol tokens, so the concatenation of
// every Raw is always the input.
func Scan(text string) Stream {
	var out Stream
	for len(text) > 0 {
		n, tok := scanOne(text)
		tok.Raw = text[:n]
		out = append(out, tok)
		text = text[n:]
	}
	return out
}

func scanOne(text string) (int, Token) {
	r, size := utf8.DecodeRuneInString(text)
	switch {
	case strings.HasPrefix(text, "\r\n"):
		return 2, NonCode("", TypeNewline)
	case r == '\n':
		return 1, NonCode("", TypeNewline)
	case r == ' ' || r == '\t' || r == '\r' || r == '\f':
		n := len(text) - len(strings.TrimLeft(text, " \t\r\f"))
		return n, NonCode("", TypeWhitespace)

	case strings.HasPrefix(text, "--"):
		n := strings.IndexAny(text, "\r\n")
		if n < 0 {
			n = len(text)
		}
		return n, NonCode("", TypeComment)
	case strings.HasPrefix(text, "/*"):
		n := strings.Index(text[2:], "*/")
		if n < 0 {
			return len(text), NonCode("", TypeComment)
		}
		return n + 4, NonCode("", TypeComment)

	case r == '\'' || r == '`':
		return scanQuoted(text, byte(r)), Code("", TypeQuoted)
	case r == '"':
		return scanQuoted(text, '"'), Code("", TypeDouble)

	case r == '_' || unicode.IsLetter(r):
		n := strings.IndexFunc(text, func(r rune) bool {
			return r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if n < 0 {
			n = len(text)
		}
		return n, Code("", TypeWord)

	case r >= '0' && r <= '9':
		return scanNumber(text), Code("", TypeNumber)
	}

	if typ, ok := punct[r]; ok {
		return size, Code("", typ)
	}
	for _, op := range operators {
		if strings.HasPrefix(text, op) {
			return len(op), Code("", TypeSymbol)
		}
	}
	return size, Code("", TypeSymbol)
}

// scanQuoted scans a quoted literal. A doubled quote is an escaped quote.
// An unterminated literal runs to the end of the text.
func scanQuoted(text string, quote byte) int {
	for i := 1; i < len(text); i++ {
		if text[i] != quote {
			continue
		}
		if i+1 < len(text) && text[i+1] == quote {
			i++
			continue
		}
		return i + 1
	}
	return len(text)
}

func scanNumber(text string) int {
	digits := func(i int) int {
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		return i
	}

	i := digits(0)
	if i+1 < len(text) && text[i] == '.' && text[i+1] >= '0' && text[i+1] <= '9' {
		i = digits(i + 1)
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if k := digits(j); k > j {
			i = k
		}
	}
	return i
}
