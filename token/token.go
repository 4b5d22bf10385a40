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

import "fmt"

// Well-known token types.
//
// Lexers are free to use any type tag they like; these are the ones the
// parser gives meaning to when classifying non-code tokens.
const (
	TypeWhitespace = "whitespace"
	TypeNewline    = "newline"
	TypeComment    = "comment"
	TypeEndOfFile  = "end_of_file"

	TypeWord    = "word"
	TypeNumber  = "numeric_literal"
	TypeQuoted  = "quoted_literal"
	TypeDouble  = "double_quoted_literal"
	TypeSymbol  = "symbol"
	TypeComma   = "comma"
	TypeDot     = "dot"
	TypeSemi    = "semicolon"
	TypeOpen    = "start_bracket"
	TypeClose   = "end_bracket"
	TypeOpenSq  = "start_square_bracket"
	TypeCloseSq = "end_square_bracket"
	TypeOpenCu  = "start_curly_bracket"
	TypeCloseCu = "end_curly_bracket"
)

// Token is the unit of input consumed by the parser.
//
// Tokens are produced by a lexer and are never modified by the parser.
type Token struct {
	Raw    string `yaml:"raw"`
	Type   string `yaml:"type"`
	IsCode bool   `yaml:"code"`
}

// Code returns a new code token.
func Code(raw, typ string) Token {
	return Token{Raw: raw, Type: typ, IsCode: true}
}

// NonCode returns a new non-code token, such as whitespace.
func NonCode(raw, typ string) Token {
	return Token{Raw: raw, Type: typ}
}

// Class classifies this token.
//
// Non-code tokens with a type the parser does not recognize are treated as
// whitespace.
func (t Token) Class() Class {
	if t.IsCode {
		return ClassCode
	}
	switch t.Type {
	case TypeNewline:
		return ClassNewline
	case TypeComment:
		return ClassComment
	case TypeEndOfFile:
		return ClassEndOfFile
	default:
		return ClassWhitespace
	}
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Raw)
}
