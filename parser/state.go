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
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/grammar"
	"github.com/bufbuild/sqlparse/internal/intern"
	"github.com/bufbuild/sqlparse/internal/interval"
	"github.com/bufbuild/sqlparse/token"
)

// state is everything one parse owns, shared by both engines.
type state struct {
	opts    Options
	dialect dialect.Dialect
	set     *grammar.Set
	tokens  token.Stream
	src     *source
	trace   *slog.Logger // Nil unless debug tracing is enabled.

	pos int

	// Non-code tokens already placed in the tree. Every newly set entry is
	// pushed onto undo, so that backtracking can roll collection back.
	collected []bool
	undo      []int

	cache map[cacheKey]*cacheEntry
	scans map[intern.ID]*interval.Map[int, int]
	hints hinter

	termKeys intern.Table
	combined map[combineKey]terms

	brackets map[string]int // Raw text to +1 for openers, -1 for closers.

	// eval runs a nested evaluation to completion, using whichever engine
	// is active. It is used for lookahead.
	eval      func(call) outcome
	lookahead int // Lookahead evaluations in progress.

	stats Stats
}

// Stats counts what a parser did. It is meant for tests and tuning.
type Stats struct {
	Frames     int // Grammar evaluations started.
	CacheHits  int
	CacheMiss  int
	Lookaheads int // Terminator or closing bracket tests.
	Pruned     int // Candidates discarded before being tried.
}

// call is a request to evaluate a grammar at the current position.
type call struct {
	id    grammar.ID
	terms terms // Inherited from the caller.
	ceil  int   // Nothing at or past ceil may be consumed.
}

// outcome is the result of evaluating a grammar.
//
// A match is a non-empty node with no error. An empty node with no error is
// an optional grammar that did not match. An empty node with an error is
// either a mismatch, which callers may recover from, or a fatal error.
type outcome struct {
	node cst.Node
	end  int
	err  error
}

func (o outcome) matched() bool {
	return o.err == nil && !o.node.IsEmpty()
}

func (o outcome) fatal() bool {
	return o.err != nil && !IsRecoverable(o.err)
}

// terms is a canonical set of terminator grammars, with an interned key
// identifying it.
type terms struct {
	key intern.ID
	ids []grammar.ID
}

type combineKey struct {
	parent intern.ID
	id     grammar.ID
}

func newState(d dialect.Dialect, tokens token.Stream, opts Options) *state {
	s := &state{
		opts:     opts,
		dialect:  d,
		set:      d.Grammars(),
		tokens:   tokens,
		src:      &source{tokens: tokens, file: opts.Path},
		combined: make(map[combineKey]terms),
		brackets: make(map[string]int),
	}
	s.hints = hinter{set: s.set, dialect: d, memo: make(map[grammar.ID]*hint)}
	for _, pair := range opts.Brackets {
		s.brackets[pair.Open] = 1
		s.brackets[pair.Close] = -1
	}
	if l := opts.Logger; l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		s.trace = l
	}
	return s
}

// reset prepares for a new top-level parse at pos.
func (s *state) reset(pos int) {
	s.pos = pos
	s.lookahead = 0
	s.collected = make([]bool, len(s.tokens))
	s.undo = s.undo[:0]
	s.cache = make(map[cacheKey]*cacheEntry)
	s.scans = make(map[intern.ID]*interval.Map[int, int])
}

// mark records that the non-code token at pos has been placed in the tree.
func (s *state) mark(pos int) {
	if s.collected[pos] {
		return
	}
	s.collected[pos] = true
	s.undo = append(s.undo, pos)
}

// rollback undoes every mark made since the undo log had length n.
func (s *state) rollback(n int) {
	for _, pos := range s.undo[n:] {
		s.collected[pos] = false
	}
	s.undo = s.undo[:n]
}

// combine returns the terminators in effect for g when its caller's are
// parent.
func (s *state) combine(parent terms, g grammar.Grammar) terms {
	own := g.Terminators()
	if g.ResetTerminators() {
		return s.terms(own)
	}
	if len(own) == 0 {
		return parent
	}

	key := combineKey{parent.key, g.ID()}
	if t, ok := s.combined[key]; ok {
		return t
	}
	t := s.terms(append(slices.Clone(parent.ids), own...))
	s.combined[key] = t
	return t
}

// plus returns t with id added.
func (s *state) plus(t terms, id grammar.ID) terms {
	if slices.Contains(t.ids, id) {
		return t
	}
	return s.terms(append(slices.Clone(t.ids), id))
}

func (s *state) terms(ids []grammar.ID) terms {
	if len(ids) == 0 {
		return terms{}
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return terms{key: s.termKeys.Intern(b.String()), ids: ids}
}

// settle decides whether the evaluation of g that began at start, with the
// undo log at length mark, matched.
//
// Anything that did not consume input is not a match. When there is no
// match, the cursor and collection are restored, and the result is empty:
// with no error if g is optional, or with a mismatch otherwise. Fatal
// errors pass through untouched.
func (s *state) settle(g grammar.Grammar, start, mark int, node cst.Node, err error) outcome {
	if err != nil && !IsRecoverable(err) {
		return outcome{end: s.pos, err: err}
	}
	if err == nil && !node.IsEmpty() && s.pos > start {
		return outcome{node: node, end: s.pos}
	}

	s.pos = start
	s.rollback(mark)
	if g.IsOptional() {
		return outcome{end: start}
	}
	if err == nil {
		err = s.mismatch(start, g)
	}
	return outcome{end: start, err: err}
}

func (s *state) mismatch(pos int, g grammar.Grammar) error {
	return &MismatchError{Pos: pos, Grammar: g, src: s.src}
}

func (s *state) internal(pos int, reason string) error {
	return &InternalError{Reason: reason, Pos: pos, src: s.src}
}

// activation is one evaluation of a composite grammar in progress.
type activation struct {
	g     grammar.Grammar
	start int
	mark  int
	key   cacheKey
	m     matcher
}

// begin starts evaluating c at the current position.
//
// Leaves, cache hits and immediate failures complete right away, in which
// case the outcome is returned with ok set. Otherwise, the returned
// activation's matcher must be driven to completion and passed to
// [state.finish].
func (s *state) begin(c call) (act *activation, out outcome, ok bool) {
	s.stats.Frames++
	g := s.set.Get(c.id)
	start, mark := s.pos, len(s.undo)

	if g.IsLeaf() {
		node, err := s.leaf(g, c)
		return nil, s.settle(g, start, mark, node, err), true
	}

	t := s.combine(c.terms, g)
	key := cacheKey{pos: start, id: c.id, ceil: c.ceil, terms: t.key}
	if out, ok := s.lookup(key); ok {
		return nil, out, true
	}

	m, err := s.matcher(g, t, c.ceil)
	if err != nil {
		return nil, s.settle(g, start, mark, cst.Node{}, err), true
	}
	return &activation{g: g, start: start, mark: mark, key: key, m: m}, outcome{}, false
}

// finish completes an activation with the final result of its matcher.
func (s *state) finish(act *activation, result outcome) outcome {
	out := s.settle(act.g, act.start, act.mark, result.node, result.err)
	s.store(act, out)
	return out
}

// matcher returns a matcher for the composite grammar g.
func (s *state) matcher(g grammar.Grammar, t terms, ceil int) (matcher, error) {
	switch g.Kind() {
	case grammar.KindSequence:
		return newSequence(g, t, ceil), nil
	case grammar.KindOneOf:
		return &oneOf{g: g, terms: t, ceil: ceil}, nil
	case grammar.KindAnyNumberOf, grammar.KindAnySetOf:
		return &anyNumberOf{g: g, terms: t, ceil: ceil}, nil
	case grammar.KindDelimited:
		return &delimited{g: g, terms: t, ceil: ceil}, nil
	case grammar.KindBracketed:
		return &bracketed{g: g, terms: t, ceil: ceil}, nil
	case grammar.KindRef:
		id, segType, ok := s.dialect.Lookup(g.Name())
		if !ok {
			return nil, &UnknownSegmentError{Name: g.Name(), Pos: s.pos, src: s.src}
		}
		return &ref{g: g, rule: id, segmentType: segType, terms: t, ceil: ceil}, nil
	}
	return nil, s.internal(s.pos, "cannot evaluate grammar of kind "+g.Kind().String())
}
