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

// sequence matches its elements in order.
type sequence struct {
	g     grammar.Grammar
	elems []grammar.ID
	terms terms
	ceil  int

	max     int // The greedy ceiling.
	matched int // The end of the last match.
	work    int // Where the current element is being tried.
	i       int
	started bool

	children []cst.Node
	metas    []cst.Node // Markers waiting for the next match.
}

func newSequence(g grammar.Grammar, t terms, ceil int) *sequence {
	return &sequence{g: g, elems: g.Elements(), terms: t, ceil: ceil}
}

func (q *sequence) enter(s *state) step {
	q.matched = s.pos
	q.max = q.ceil
	if q.g.Mode() == grammar.Greedy {
		end, err := s.trim(s.pos, q.terms)
		if err != nil {
			return fail(err)
		}
		q.max = min(q.max, end)
	}
	return q.next(s)
}

func (q *sequence) next(s *state) step {
	for ; q.i < len(q.elems); q.i++ {
		e := s.set.Get(q.elems[q.i])
		if e.Kind() == grammar.KindMeta {
			q.metas = append(q.metas, cst.NewMeta(e.Meta()))
			continue
		}

		q.work = q.matched
		if q.g.AllowGaps() {
			q.work = s.tokens.NextCode(q.matched, q.max)
		}
		if q.work >= q.max {
			switch {
			case e.IsOptional():
				continue
			case q.g.Mode() == grammar.Strict, !q.started:
				return fail(s.mismatch(q.work, e))
			default:
				return q.finish(s)
			}
		}

		s.pos = q.work
		return child(e.ID(), q.terms, q.max)
	}
	return q.finish(s)
}

func (q *sequence) resume(s *state, out outcome) step {
	if out.fatal() {
		return fail(out.err)
	}

	e := s.set.Get(q.elems[q.i])
	q.i++
	if out.matched() {
		q.commit(s, q.work, out.node)
		if q.g.Mode() == grammar.GreedyOnceStarted && !q.started {
			end, err := s.trim(q.matched, q.terms)
			if err != nil {
				return fail(err)
			}
			q.max = min(q.max, end)
		}
		q.started = true
		return q.next(s)
	}

	s.pos = q.work
	switch mode := q.g.Mode(); {
	case e.IsOptional():
		return q.next(s)
	case mode == grammar.Strict, mode == grammar.GreedyOnceStarted && !q.started:
		return fail(out.err)
	}

	// Greedy: the rest of the sequence is unparsable.
	first := s.tokens.NextCode(q.work, q.max)
	last := s.tokens.TrimCode(first, q.max)
	node := s.unparsable(first, last, e.String())
	s.pos = last
	q.commit(s, first, node)
	return q.finish(s)
}

// commit appends node, which starts at at, along with the gap before it and
// any waiting markers. Indents go before the gap and dedents after it.
func (q *sequence) commit(s *state, at int, node cst.Node) {
	end := s.pos
	gap := s.gap(q.matched, at)

	var dedents []cst.Node
	for _, m := range q.metas {
		if m.Meta == grammar.Dedent {
			dedents = append(dedents, m)
			continue
		}
		q.children = append(q.children, m)
	}
	q.children = append(q.children, gap...)
	q.children = append(q.children, dedents...)
	q.children = append(q.children, node)

	q.metas = q.metas[:0]
	q.matched = end
}

func (q *sequence) finish(s *state) step {
	// Markers of elements never reached still close what they opened.
	for ; q.i < len(q.elems); q.i++ {
		if e := s.set.Get(q.elems[q.i]); e.Kind() == grammar.KindMeta {
			q.metas = append(q.metas, cst.NewMeta(e.Meta()))
		}
	}
	q.children = append(q.children, q.metas...)
	q.metas = nil

	s.pos = q.matched
	node := cst.Node{Kind: cst.Sequence, Children: q.children}
	if mode := q.g.Mode(); mode == grammar.Greedy || mode == grammar.GreedyOnceStarted && q.started {
		node = s.leftover(node, q.max, "nothing else")
	}
	return result(node, nil)
}
