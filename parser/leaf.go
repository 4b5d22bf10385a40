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
	"slices"

	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/grammar"
)

// leaf evaluates a grammar that matches tokens directly.
//
// Leaves never skip non-code tokens. Only token-type grammars can match a
// non-code token, which is then collected.
func (s *state) leaf(g grammar.Grammar, c call) (cst.Node, error) {
	pos := s.pos
	switch g.Kind() {
	case grammar.KindMissing:
		return cst.Node{}, s.internal(pos, "evaluated a missing grammar")
	case grammar.KindEmpty, grammar.KindNothing, grammar.KindMeta:
		return cst.Node{}, nil
	case grammar.KindAnything:
		return s.anything(g, c)
	}

	if pos >= c.ceil || pos >= len(s.tokens) {
		return cst.Node{}, nil
	}

	tok := s.tokens[pos]
	var ok bool
	switch g.Kind() {
	case grammar.KindToken:
		ok = tok.Type == g.Text()
	case grammar.KindSymbol:
		ok = tok.IsCode && tok.Raw == g.Text()
	case grammar.KindString, grammar.KindMultiString:
		ok = tok.IsCode && g.MatchesString(tok.Raw)
	case grammar.KindTyped:
		ok = tok.IsCode && tok.Type == g.Text()
	case grammar.KindRegex:
		ok = tok.IsCode && g.MatchesRegex(tok.Raw)
	default:
		return cst.Node{}, s.internal(pos, "unknown leaf kind "+g.Kind().String())
	}
	if !ok {
		return cst.Node{}, nil
	}

	if !tok.IsCode {
		s.mark(pos)
	}
	s.pos = pos + 1
	return cst.Leaf(tok, pos, g.OutType()), nil
}

// anything consumes every token up to the next terminator or the ceiling,
// whichever is first, not counting trailing non-code tokens.
func (s *state) anything(g grammar.Grammar, c call) (cst.Node, error) {
	start := s.pos
	stop, err := s.trim(start, s.combine(c.terms, g))
	if err != nil {
		return cst.Node{}, err
	}
	end := min(stop, s.tokens.TrimCode(start, min(c.ceil, len(s.tokens))))
	if end <= start {
		return cst.Node{}, nil
	}

	children := s.leaves(start, end)
	s.pos = end
	return cst.Node{Kind: cst.Sequence, Children: children}, nil
}

// gap returns leaves for the uncollected non-code tokens in [from, to), and
// collects them.
func (s *state) gap(from, to int) []cst.Node {
	var out []cst.Node
	for i := from; i < to; i++ {
		if s.tokens[i].IsCode || s.collected[i] {
			continue
		}
		s.mark(i)
		out = append(out, cst.Leaf(s.tokens[i], i, ""))
	}
	return out
}

// leaves returns leaves for every token in [from, to), collecting the
// non-code ones.
func (s *state) leaves(from, to int) []cst.Node {
	out := make([]cst.Node, 0, to-from)
	for i := from; i < to; i++ {
		tok := s.tokens[i]
		if !tok.IsCode {
			if s.collected[i] {
				continue
			}
			s.mark(i)
		}
		out = append(out, cst.Leaf(tok, i, ""))
	}
	return out
}

// unparsable wraps the tokens [from, to) in an unparsable node.
func (s *state) unparsable(from, to int, expected string) cst.Node {
	return cst.Node{Kind: cst.Unparsable, Expected: expected, Children: s.leaves(from, to)}
}

// leftover claims whatever code remains in [s.pos, limit) as unparsable,
// appending it to node, which may be empty. This is how greedy grammars
// consume up to their ceiling.
func (s *state) leftover(node cst.Node, limit int, expected string) cst.Node {
	first := s.tokens.NextCode(s.pos, limit)
	if first >= limit {
		return node
	}
	last := s.tokens.TrimCode(first, limit)

	var tail []cst.Node
	tail = append(tail, s.gap(s.pos, first)...)
	tail = append(tail, s.unparsable(first, last, expected))
	s.pos = last

	switch node.Kind {
	case cst.Empty:
		return cst.Node{Kind: cst.Sequence, Children: tail}
	case cst.Sequence, cst.DelimitedList:
		node.Children = append(slices.Clip(node.Children), tail...)
		return node
	default:
		return cst.Node{Kind: cst.Sequence, Children: append([]cst.Node{node}, tail...)}
	}
}

// promote relabels a bare code leaf as a keyword.
func promote(n cst.Node) cst.Node {
	if n.Kind == cst.Code {
		n.Kind = cst.Keyword
	}
	return n
}
