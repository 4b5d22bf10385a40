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

// longest tries a list of candidates from the same position, one at a time,
// and keeps the first of those that consume the most tokens.
type longest struct {
	cands []grammar.ID
	terms terms
	ceil  int
	from  int
	mark  int
	i     int

	best  int // Index into cands, or -1.
	node  cst.Node
	end   int
	delta []int

	failure error // The recoverable failure that got furthest.
	failAt  int
}

func (l *longest) init(s *state, cands []grammar.ID, t terms, ceil int) {
	*l = longest{
		cands: cands,
		terms: t,
		ceil:  ceil,
		from:  s.pos,
		mark:  len(s.undo),
		best:  -1,
	}
}

// next returns the next candidate to evaluate. It returns false once every
// candidate has been tried, or once one of them reached the ceiling.
func (l *longest) next(s *state) (step, bool) {
	if l.i >= len(l.cands) || (l.best >= 0 && l.end >= l.ceil) {
		return step{}, false
	}
	s.pos = l.from
	return child(l.cands[l.i], l.terms, l.ceil), true
}

// offer records the outcome of the candidate returned by next.
func (l *longest) offer(s *state, out outcome) error {
	if out.fatal() {
		return out.err
	}
	switch {
	case out.matched():
		if l.best < 0 || out.end > l.end {
			l.best, l.node, l.end = l.i, out.node, out.end
			l.delta = slices.Clone(s.undo[l.mark:])
		}
	case out.err != nil:
		if at, ok := failurePos(out.err); ok && (l.failure == nil || at > l.failAt) {
			l.failure, l.failAt = out.err, at
		}
	}

	s.rollback(l.mark)
	s.pos = l.from
	l.i++
	return nil
}

// done applies the winning candidate, if any.
func (l *longest) done(s *state) (cst.Node, grammar.ID, bool) {
	if l.best < 0 {
		return cst.Node{}, 0, false
	}
	for _, pos := range l.delta {
		s.mark(pos)
	}
	s.pos = l.end
	return l.node, l.cands[l.best], true
}

// oneOf matches the longest of its alternatives.
type oneOf struct {
	g     grammar.Grammar
	terms terms
	ceil  int

	max  int
	from int
	pick longest
}

func (o *oneOf) enter(s *state) step {
	o.from = s.pos
	o.max = o.ceil
	if o.g.Mode() == grammar.Greedy {
		end, err := s.trim(s.pos, o.terms)
		if err != nil {
			return fail(err)
		}
		o.max = min(o.max, end)
	}
	o.pick.init(s, s.prune(o.g.Elements()), o.terms, o.max)
	return o.advance(s)
}

func (o *oneOf) resume(s *state, out outcome) step {
	if err := o.pick.offer(s, out); err != nil {
		return fail(err)
	}
	return o.advance(s)
}

func (o *oneOf) advance(s *state) step {
	if st, ok := o.pick.next(s); ok {
		return st
	}

	node, _, ok := o.pick.done(s)
	if !ok {
		s.pos = o.from
		if o.g.Mode() == grammar.Greedy {
			return result(s.leftover(cst.Node{}, o.max, o.g.String()), nil)
		}
		if o.pick.failure != nil {
			return fail(o.pick.failure)
		}
		return fail(s.mismatch(o.from, o.g))
	}

	switch o.g.Mode() {
	case grammar.Greedy:
		node = s.leftover(node, o.max, "nothing else")
	case grammar.GreedyOnceStarted:
		end, err := s.trim(s.pos, o.terms)
		if err != nil {
			return fail(err)
		}
		node = s.leftover(node, min(o.ceil, end), "nothing else")
	}
	return result(node, nil)
}

// anyNumberOf matches its elements repeatedly, in any order. It also
// implements AnySetOf, which is AnyNumberOf with each element allowed at
// most once.
type anyNumberOf struct {
	g     grammar.Grammar
	terms terms
	ceil  int

	max      int
	matched  int
	work     int
	count    int
	counts   map[grammar.ID]int
	children []cst.Node
	pick     longest
}

func (a *anyNumberOf) enter(s *state) step {
	a.matched = s.pos
	a.max = a.ceil
	if a.g.Mode() == grammar.Greedy {
		end, err := s.trim(s.pos, a.terms)
		if err != nil {
			return fail(err)
		}
		a.max = min(a.max, end)
	}
	a.counts = make(map[grammar.ID]int)
	return a.next(s)
}

func (a *anyNumberOf) perElement() int {
	if a.g.Kind() == grammar.KindAnySetOf {
		return 1
	}
	return a.g.MaxPerElement()
}

func (a *anyNumberOf) next(s *state) step {
	if limit := a.g.Max(); limit > 0 && a.count >= limit {
		return a.finish(s)
	}

	a.work = a.matched
	if a.g.AllowGaps() {
		a.work = s.tokens.NextCode(a.matched, a.max)
	}
	if a.count >= a.g.Min() {
		if a.matched >= a.max {
			return a.finish(s)
		}
		stop, err := s.atTerminator(a.work, a.terms)
		if err != nil {
			return fail(err)
		}
		if stop {
			return a.finish(s)
		}
	}
	if a.work >= a.max {
		return a.exhausted(s, nil)
	}

	cands := a.g.Elements()
	if per := a.perElement(); per > 0 {
		cands = slices.DeleteFunc(cands, func(id grammar.ID) bool {
			return a.counts[id] >= per
		})
	}

	s.pos = a.work
	a.pick.init(s, s.prune(cands), a.terms, a.max)
	return a.advance(s)
}

func (a *anyNumberOf) resume(s *state, out outcome) step {
	if err := a.pick.offer(s, out); err != nil {
		return fail(err)
	}
	return a.advance(s)
}

func (a *anyNumberOf) advance(s *state) step {
	if st, ok := a.pick.next(s); ok {
		return st
	}

	node, id, ok := a.pick.done(s)
	if !ok {
		s.pos = a.matched
		return a.exhausted(s, a.pick.failure)
	}

	a.children = append(a.children, s.gap(a.matched, a.work)...)
	a.children = append(a.children, node)
	a.matched = s.pos
	a.counts[id]++
	a.count++

	if a.count == 1 && a.g.Mode() == grammar.GreedyOnceStarted {
		end, err := s.trim(a.matched, a.terms)
		if err != nil {
			return fail(err)
		}
		a.max = min(a.max, end)
	}
	return a.next(s)
}

// exhausted is called when no further element matches.
func (a *anyNumberOf) exhausted(s *state, err error) step {
	if a.count < a.g.Min() {
		if err == nil {
			err = s.mismatch(a.work, a.g)
		}
		return fail(err)
	}
	return a.finish(s)
}

func (a *anyNumberOf) finish(s *state) step {
	s.pos = a.matched
	node := cst.Node{Kind: cst.Sequence, Children: a.children}
	if mode := a.g.Mode(); mode == grammar.Greedy || mode == grammar.GreedyOnceStarted && a.count > 0 {
		node = s.leftover(node, a.max, "nothing else")
	}
	return result(node, nil)
}
