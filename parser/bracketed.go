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
	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/grammar"
)

type bracketPhase int8

const (
	matchingOpen bracketPhase = iota
	matchingContent
	matchingClose
)

// bracketed matches an opening bracket, its content, and the corresponding
// closing bracket.
type bracketed struct {
	g     grammar.Grammar
	terms terms
	ceil  int

	phase    bracketPhase
	from     int
	close    int // Position of the closing bracket.
	first    int // First code token inside the brackets.
	last     int // End of the code inside the brackets.
	children []cst.Node
}

func (b *bracketed) enter(s *state) step {
	b.from = s.pos
	b.phase = matchingOpen
	open, _ := b.g.Brackets()
	return child(open, terms{}, b.ceil)
}

func (b *bracketed) resume(s *state, out outcome) step {
	open, closeID := b.g.Brackets()
	closeG := s.set.Get(closeID)
	strict := b.g.Mode() == grammar.Strict

	switch b.phase {
	case matchingOpen:
		if !out.matched() {
			if out.err == nil {
				return fail(s.mismatch(b.from, s.set.Get(open)))
			}
			return fail(out.err)
		}
		after := s.pos
		t, err := s.findClose(after, closeID)
		if err != nil {
			return fail(err)
		}
		if t < 0 || t >= b.ceil {
			if strict {
				return fail(s.mismatch(after, closeG))
			}
			return fail(&MissingClosingBracketError{Pos: b.from, Close: closeG, src: s.src})
		}

		b.close = t
		b.first = s.tokens.NextCode(after, t)
		b.last = s.tokens.TrimCode(b.first, t)
		b.children = append(b.children, out.node)
		b.children = append(b.children, s.gap(after, b.first)...)

		// Content terminators start over inside the brackets.
		t2 := s.plus(s.terms(b.g.Terminators()), closeID)
		s.pos = b.first
		b.phase = matchingContent
		return child(b.g.Content(), t2, b.last)

	case matchingContent:
		switch {
		case out.fatal():
			return fail(out.err)
		case out.matched():
			if out.node.Kind == cst.Sequence {
				b.children = append(b.children, out.node.Children...)
			} else {
				b.children = append(b.children, out.node)
			}
		case out.err != nil && b.first >= b.last:
			// Nothing between the brackets: the close follows directly.
			if strict && !b.emptyContent(s) {
				return fail(out.err)
			}
			s.pos = b.first
		case out.err != nil:
			if strict {
				return fail(out.err)
			}
			b.children = append(b.children, s.unparsable(b.first, b.last, s.set.Get(b.g.Content()).String()))
			s.pos = b.last
		}

		if s.tokens.HasCode(s.pos, b.last) {
			first := s.tokens.NextCode(s.pos, b.last)
			if strict {
				return fail(s.mismatch(first, closeG))
			}
			b.children = append(b.children, s.gap(s.pos, first)...)
			b.children = append(b.children, s.unparsable(first, b.last, closeG.String()))
			s.pos = b.last
		}

		b.children = append(b.children, s.gap(s.pos, b.close)...)
		s.pos = b.close
		b.phase = matchingClose
		return child(closeID, terms{}, b.ceil)

	case matchingClose:
		if !out.matched() {
			if out.err == nil {
				return fail(s.internal(b.close, "closing bracket no longer matches"))
			}
			return fail(out.err)
		}
		b.children = append(b.children, out.node)
		return result(cst.Node{Kind: cst.Sequence, Children: b.children}, nil)
	}
	return fail(s.internal(s.pos, "bracketed matcher resumed after completion"))
}

// emptyContent reports whether every content element may match nothing.
func (b *bracketed) emptyContent(s *state) bool {
	for _, id := range b.g.Elements() {
		if g := s.set.Get(id); !g.IsOptional() && g.Kind() != grammar.KindMeta {
			return false
		}
	}
	return true
}
