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
	"strings"

	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/grammar"
	"github.com/bufbuild/sqlparse/token"
)

// hint is a cheap over-approximation of the tokens a grammar can start
// with: a set of upper-cased raw texts and a set of token types.
type hint struct {
	raws  map[string]struct{}
	types map[string]struct{}
}

// admits reports whether a grammar with this hint could start at tok.
func (h *hint) admits(tok token.Token) bool {
	if _, ok := h.types[tok.Type]; ok {
		return true
	}
	_, ok := h.raws[strings.ToUpper(tok.Raw)]
	return ok
}

func (h *hint) add(other *hint) {
	for raw := range other.raws {
		h.raws[raw] = struct{}{}
	}
	for typ := range other.types {
		h.types[typ] = struct{}{}
	}
}

func newHint() *hint {
	return &hint{raws: make(map[string]struct{}), types: make(map[string]struct{})}
}

// hinter computes and memoizes hints. A nil hint means the grammar is not
// simple, and must always be tried.
type hinter struct {
	set     *grammar.Set
	dialect dialect.Dialect
	memo    map[grammar.ID]*hint
	busy    map[grammar.ID]bool
}

// get returns the hint for id.
func (h *hinter) get(id grammar.ID) *hint {
	hint, _ := h.lookup(id)
	return hint
}

// lookup returns the hint for id, and whether it is independent of any
// rule cycle still being explored. Only such hints are memoized, so that
// the answer never depends on the order hints were asked for in.
func (h *hinter) lookup(id grammar.ID) (*hint, bool) {
	if hint, ok := h.memo[id]; ok {
		return hint, true
	}
	if h.busy[id] {
		return nil, false
	}

	if h.busy == nil {
		h.busy = make(map[grammar.ID]bool)
	}
	h.busy[id] = true
	hint, clean := h.compute(h.set.Get(id))
	delete(h.busy, id)

	if clean {
		h.memo[id] = hint
	}
	return hint, clean
}

func (h *hinter) compute(g grammar.Grammar) (*hint, bool) {
	if !g.IsLeaf() && g.Mode() == grammar.Greedy {
		// Greedy grammars match anything before their terminator.
		return nil, true
	}

	switch g.Kind() {
	case grammar.KindSymbol, grammar.KindString, grammar.KindMultiString:
		out := newHint()
		raws := g.Templates()
		if g.Kind() == grammar.KindSymbol {
			raws = []string{g.Text()}
		}
		for _, raw := range raws {
			out.raws[strings.ToUpper(raw)] = struct{}{}
		}
		return out, true

	case grammar.KindToken, grammar.KindTyped:
		out := newHint()
		out.types[g.Text()] = struct{}{}
		return out, true

	case grammar.KindSequence:
		out, clean := newHint(), true
		for _, e := range g.Elements() {
			eg := h.set.Get(e)
			if eg.Kind() == grammar.KindMeta {
				continue
			}
			sub, ok := h.lookup(e)
			clean = clean && ok
			if sub == nil {
				return nil, clean
			}
			out.add(sub)
			if !eg.IsOptional() {
				break
			}
		}
		return out, clean

	case grammar.KindOneOf, grammar.KindAnyNumberOf, grammar.KindAnySetOf, grammar.KindDelimited:
		return h.union(g.Elements())

	case grammar.KindBracketed:
		open, _ := g.Brackets()
		return h.lookup(open)

	case grammar.KindRef:
		id, _, ok := h.dialect.Lookup(g.Name())
		if !ok {
			return nil, true
		}
		return h.lookup(id)
	}

	// Regexes, markers, Anything, Empty and Nothing.
	return nil, true
}

func (h *hinter) union(ids []grammar.ID) (*hint, bool) {
	out, clean := newHint(), true
	for _, id := range ids {
		sub, ok := h.lookup(id)
		clean = clean && ok
		if sub == nil {
			return nil, clean
		}
		out.add(sub)
	}
	return out, clean
}

// prune discards the candidates that cannot start at the current token.
// Pruning never changes which candidate wins; it only avoids trying
// candidates that would fail.
func (s *state) prune(ids []grammar.ID) []grammar.ID {
	if s.pos >= len(s.tokens) || !s.tokens[s.pos].IsCode {
		return ids
	}
	tok := s.tokens[s.pos]

	out := make([]grammar.ID, 0, len(ids))
	for _, id := range ids {
		if h := s.hints.get(id); h == nil || h.admits(tok) {
			out = append(out, id)
			continue
		}
		s.stats.Pruned++
	}
	return out
}
