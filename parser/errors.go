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

package parser

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bufbuild/sqlparse/grammar"
	"github.com/bufbuild/sqlparse/report"
	"github.com/bufbuild/sqlparse/token"
)

// UnknownSegmentError diagnoses a reference to a rule the dialect does not
// define. It is always fatal: it is a bug in the dialect, not in the input.
type UnknownSegmentError struct {
	Name string
	Pos  int // The token being parsed when the reference was resolved.

	src *source
}

func (e *UnknownSegmentError) Error() string {
	return fmt.Sprintf("unknown segment %q", e.Name)
}

func (e *UnknownSegmentError) Diagnose(d *report.Diagnostic) {
	d.With(
		report.InFile(e.src.path()),
		report.Snippetf(e.src.span(e.Pos, e.Pos+1), "while parsing this"),
		report.Note("the dialect has no rule named %q", e.Name),
	)
}

// MismatchError diagnoses a required grammar that did not match. It is
// recoverable: an enclosing optional, OneOf or AnyNumberOf may absorb it.
type MismatchError struct {
	Pos     int // Where the grammar was tried.
	Grammar grammar.Grammar

	src *source
}

// Expected describes what was expected at Pos.
func (e *MismatchError) Expected() string {
	return e.Grammar.String()
}

// Found describes the token at Pos.
func (e *MismatchError) Found() string {
	return e.src.describe(e.Pos)
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected(), e.Found())
}

func (e *MismatchError) Diagnose(d *report.Diagnostic) {
	d.With(
		report.InFile(e.src.path()),
		report.Snippetf(e.src.span(e.Pos, e.Pos+1), "expected %s", e.Expected()),
	)
}

// TrailingDelimiterError diagnoses a delimited list that ends in a delimiter
// where that is not allowed. It is recoverable.
type TrailingDelimiterError struct {
	Pos       int // The trailing delimiter.
	Delimiter grammar.Grammar

	src *source
}

func (e *TrailingDelimiterError) Error() string {
	return fmt.Sprintf("unexpected trailing %v", e.Delimiter)
}

func (e *TrailingDelimiterError) Diagnose(d *report.Diagnostic) {
	d.With(
		report.InFile(e.src.path()),
		report.Snippetf(e.src.span(e.Pos, e.Pos+1), "trailing delimiter"),
		report.Help("remove the trailing delimiter"),
	)
}

// MissingClosingBracketError diagnoses an opening bracket that is never
// closed. It is fatal, except under [grammar.Strict], where a missing
// closing bracket is an ordinary mismatch instead.
type MissingClosingBracketError struct {
	Pos   int // The opening bracket.
	Close grammar.Grammar

	src *source
}

func (e *MissingClosingBracketError) Error() string {
	return fmt.Sprintf("unterminated bracket, expected %v", e.Close)
}

func (e *MissingClosingBracketError) Diagnose(d *report.Diagnostic) {
	d.With(
		report.InFile(e.src.path()),
		report.Snippetf(e.src.span(e.Pos, e.Pos+1), "expected to be closed by %v", e.Close),
	)
}

// InternalError is a defect in the parser or in a grammar: a missing
// grammar was evaluated, a limit was exceeded, or an engine invariant
// failed. It is always fatal.
type InternalError struct {
	Reason string
	Pos    int

	src *source
}

func (e *InternalError) Error() string {
	return "internal parser error: " + e.Reason
}

// Level implements the level override of [report.Report.Add].
func (e *InternalError) Level() report.Level {
	return report.ICE
}

func (e *InternalError) Diagnose(d *report.Diagnostic) {
	d.With(
		report.InFile(e.src.path()),
		report.Snippetf(e.src.span(e.Pos, e.Pos+1), "while parsing this"),
		report.Note("this is a bug in the grammar or the parser, not in the input"),
	)
}

// IsRecoverable returns whether err is a failure an enclosing grammar may
// absorb, as opposed to one that aborts the parse.
func IsRecoverable(err error) bool {
	var (
		mismatch *MismatchError
		trailing *TrailingDelimiterError
	)
	return errors.As(err, &mismatch) || errors.As(err, &trailing)
}

// failurePos returns the token position of a recoverable failure.
func failurePos(err error) (int, bool) {
	switch err := err.(type) {
	case *MismatchError:
		return err.Pos, true
	case *TrailingDelimiterError:
		return err.Pos, true
	}
	return 0, false
}

// source maps token positions to spans of the text they were lexed from,
// for diagnostics. A nil source yields nil spans.
type source struct {
	tokens token.Stream
	file   string

	once    sync.Once
	text    *report.File
	offsets []int
}

func (s *source) path() string {
	if s == nil {
		return ""
	}
	return s.file
}

func (s *source) index() {
	s.once.Do(func() {
		s.offsets = make([]int, len(s.tokens)+1)
		for i, t := range s.tokens {
			s.offsets[i+1] = s.offsets[i] + len(t.Raw)
		}
		s.text = report.NewFile(s.file, s.tokens.Text())
	})
}

// span returns the span of the tokens [from, to), clamped to the stream.
func (s *source) span(from, to int) report.Span {
	if s == nil {
		return report.Span{}
	}
	s.index()
	n := len(s.tokens)
	from, to = min(max(from, 0), n), min(max(to, 0), n)
	return report.Span{File: s.text, Start: s.offsets[from], End: s.offsets[max(from, to)]}
}

// describe names the token at pos for error messages.
func (s *source) describe(pos int) string {
	if s == nil {
		return fmt.Sprintf("token %d", pos)
	}
	if pos >= len(s.tokens) {
		return "end of input"
	}
	return fmt.Sprintf("%q", s.tokens[pos].Raw)
}
