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

// Package token defines the tokens consumed by the SQL parser.
//
// The parser does not lex. A [Stream] is produced by some external lexer and
// handed to the parser as-is; the parser only ever reads it forward, and
// never modifies it. Each [Token] carries its raw text, a type tag chosen by
// the lexer, and whether it is code. Non-code tokens (whitespace, newlines,
// comments and the end-of-file marker) are transparent: grammars may allow
// them to appear between matched elements.
//
// [Scan] is a rudimentary lexer, enough to drive tests and the command line
// tool; [Load] reads a stream that was lexed elsewhere.
package token

//go:generate go run github.com/bufbuild/sqlparse/internal/enum class.yaml
