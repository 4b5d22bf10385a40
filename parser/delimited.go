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

// delimited matches its elements separated by a delimiter.
type delimited struct {
	g     grammar.Grammar
	terms terms
	ceil  int

	elemTerms terms // Element terminators also include the delimiter.
	max       int
	from      int
	at        int // End of the last element or delimiter.
	matched   int // End of the last committed piece.
	work      int
	seeking   bool // Whether a delimiter comes next.
	pending   *pendingDelim
	elems     int
	delims    int
	failure   error
	children  []cst.Node
	pick      longest
}

// pendingDelim is a delimiter that has matched, but is only kept once the
// element after it does.
type pendingDelim struct {
	at, end int
	node    cst.Node
}

func (d *delimited) enter(s *state) step {
	d.from, d.at, d.matched = s.pos, s.pos, s.pos
	d.elemTerms = s.plus(d.terms, d.g.Delimiter())
	d.max = d.ceil
	if d.g.Mode() == grammar.Greedy {
		end, err := s.trim(s.pos, d.terms)
		if err != nil {
			return fail(err)
		}
		d.max = min(d.max, end)
	}
	return d.next(s)
}

func (d *delimited) next(s *state) step {
	d.work = d.at
	if d.g.AllowGaps() {
		d.work = s.tokens.NextCode(d.at, d.max)
	}
	if d.work >= d.max {
		return d.finish(s)
	}
	if !s.tokens[d.work].IsCode {
		return d.finish(s)
	}
	stop, err := s.atTerminator(d.work, d.terms)
	if err != nil {
		return fail(err)
	}
	if stop {
		return d.finish(s)
	}

	s.pos = d.work
	if d.seeking {
		return child(d.g.Delimiter(), d.terms, d.max)
	}
	d.pick.init(s, s.prune(d.g.Elements()), d.elemTerms, d.max)
	return d.advance(s)
}

func (d *delimited) resume(s *state, out outcome) step {
	if !d.seeking {
		if err := d.pick.offer(s, out); err != nil {
			return fail(err)
		}
		return d.advance(s)
	}

	switch {
	case out.fatal():
		return fail(out.err)
	case !out.matched():
		s.pos = d.at
		return d.finish(s)
	}
	d.pending = &pendingDelim{at: d.work, end: s.pos, node: out.node}
	d.at = s.pos
	d.seeking = false
	return d.next(s)
}

func (d *delimited) advance(s *state) step {
	if st, ok := d.pick.next(s); ok {
		return st
	}

	node, _, ok := d.pick.done(s)
	if !ok {
		d.failure = d.pick.failure
		s.pos = d.at
		return d.finish(s)
	}

	end := s.pos
	if p := d.pending; p != nil {
		d.children = append(d.children, s.gap(d.matched, p.at)...)
		d.children = append(d.children, p.node)
		d.delims++
		d.pending = nil
	}
	d.children = append(d.children, s.gap(d.at, d.work)...)
	d.children = append(d.children, node)
	d.elems++
	d.at, d.matched = end, end
	d.seeking = true

	if d.elems == 1 && d.g.Mode() == grammar.GreedyOnceStarted {
		end, err := s.trim(d.matched, d.terms)
		if err != nil {
			return fail(err)
		}
		d.max = min(d.max, end)
	}
	return d.next(s)
}

func (d *delimited) finish(s *state) step {
	if p := d.pending; p != nil {
		if !d.g.AllowTrailing() {
			return fail(&TrailingDelimiterError{Pos: p.at, Delimiter: s.set.Get(d.g.Delimiter()), src: s.src})
		}
		d.children = append(d.children, s.gap(d.matched, p.at)...)
		d.children = append(d.children, p.node)
		d.delims++
		d.matched = p.end
		d.pending = nil
	}

	if d.elems == 0 {
		if d.failure != nil {
			return fail(d.failure)
		}
		return fail(s.mismatch(d.from, d.g))
	}
	if d.delims < d.g.MinDelimiters() {
		return fail(s.mismatch(d.from, d.g))
	}

	s.pos = d.matched
	node := cst.Node{Kind: cst.DelimitedList, Children: d.children}
	if mode := d.g.Mode(); mode == grammar.Greedy || mode == grammar.GreedyOnceStarted {
		node = s.leftover(node, d.max, "nothing else")
	}
	return result(node, nil)
}
