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

package grammar

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/sqlparse/internal/arena"
	"github.com/bufbuild/sqlparse/internal/intern"
)

// ID identifies a grammar within a [Set]. The zero ID is nil.
//
// Because a Set is hash-consed, two IDs from the same Set are equal if and
// only if the grammars they denote are structurally identical.
type ID uint32

// Nil returns whether this is the nil ID.
func (id ID) Nil() bool { return id == 0 }

// Set is an arena of grammars.
//
// The zero value is empty and ready to use.
type Set struct {
	nodes arena.Arena[node]
	keys  intern.Table
	byKey map[intern.ID]ID
}

type node struct {
	kind Kind
	key  intern.ID // Structural key; see node.structure.

	optional  bool
	allowGaps bool
	mode      Mode
	terms     []ID
	reset     bool

	// Leaves. text is the token type, literal, template, pattern or rule
	// name, depending on kind.
	text      string
	templates  []string
	outType    string
	anti       string
	re, antiRe *regexp.Regexp
	meta       MetaKind

	// Combinators.
	elems         []ID
	min, max      int
	maxPer        int
	delim         ID
	allowTrailing bool
	minDelims     int
	open, close   ID
	content       ID // Synthesized for Bracketed.
}

// Get returns a view of the grammar with the given ID.
//
// Panics if id is nil or was not created by this set.
func (s *Set) Get(id ID) Grammar {
	s.node(id) // Bounds check.
	return Grammar{set: s, id: id}
}

// Len returns the number of distinct grammars in this set.
func (s *Set) Len() int {
	return s.nodes.Len()
}

// Token returns a grammar matching any single token of the given type.
//
// This is the only leaf that can match non-code tokens.
func (s *Set) Token(typ string, opts ...Option) ID {
	return s.leaf(node{kind: KindToken, text: typ}, opts)
}

// Symbol returns a grammar matching a token whose text is exactly lit.
func (s *Set) Symbol(lit string, opts ...Option) ID {
	return s.leaf(node{kind: KindSymbol, text: lit}, opts)
}

// StringParser returns a grammar matching a code token equal to template,
// ignoring case. Matched tokens are given outType; an outType of "keyword"
// produces keyword nodes.
func (s *Set) StringParser(template, outType string, opts ...Option) ID {
	return s.leaf(node{kind: KindString, text: template, outType: outType}, opts)
}

// MultiStringParser is like [Set.StringParser], but matches any of several
// templates.
func (s *Set) MultiStringParser(templates []string, outType string, opts ...Option) ID {
	if len(templates) == 0 {
		panic("grammar: MultiStringParser needs at least one template")
	}
	return s.leaf(node{kind: KindMultiString, templates: slices.Clone(templates), outType: outType}, opts)
}

// TypedParser returns a grammar matching a code token of type typ, relabelled
// as outType.
func (s *Set) TypedParser(typ, outType string, opts ...Option) ID {
	return s.leaf(node{kind: KindTyped, text: typ, outType: outType}, opts)
}

// RegexParser returns a grammar matching a code token whose entire text
// matches pattern, ignoring case, unless it also entirely matches anti. An
// empty anti never vetoes.
func (s *Set) RegexParser(pattern, anti, outType string, opts ...Option) (ID, error) {
	re, err := regexp.Compile("(?i)^(?:" + pattern + ")$")
	if err != nil {
		return 0, fmt.Errorf("grammar: bad pattern: %w", err)
	}
	n := node{kind: KindRegex, text: pattern, anti: anti, outType: outType, re: re}
	if anti != "" {
		n.antiRe, err = regexp.Compile("(?i)^(?:" + anti + ")$")
		if err != nil {
			return 0, fmt.Errorf("grammar: bad anti-pattern: %w", err)
		}
	}
	return s.leaf(n, opts), nil
}

// Meta returns a structural marker grammar.
func (s *Set) Meta(kind MetaKind) ID {
	return s.make(node{kind: KindMeta, meta: kind})
}

// Anything returns a grammar that consumes every token up to the next
// terminator.
func (s *Set) Anything(opts ...Option) ID {
	return s.leaf(node{kind: KindAnything}, opts)
}

// Empty returns a grammar that always succeeds without consuming anything.
func (s *Set) Empty() ID {
	return s.make(node{kind: KindEmpty})
}

// Nothing returns a grammar that never matches.
func (s *Set) Nothing(opts ...Option) ID {
	return s.leaf(node{kind: KindNothing}, opts)
}

// Missing returns a placeholder grammar. Evaluating it is an internal error.
func (s *Set) Missing() ID {
	return s.make(node{kind: KindMissing})
}

// Sequence returns a grammar matching each element in order.
func (s *Set) Sequence(elems ...ID) ID {
	return s.composite(node{kind: KindSequence, elems: elems})
}

// OneOf returns a grammar matching exactly one of elems. When several match,
// the one consuming the most tokens wins.
func (s *Set) OneOf(elems ...ID) ID {
	return s.composite(node{kind: KindOneOf, elems: elems})
}

// AnyNumberOf returns a grammar repeatedly matching any of elems. Use [Min],
// [Max] and [MaxPerElement] to bound the repetition.
func (s *Set) AnyNumberOf(elems ...ID) ID {
	return s.composite(node{kind: KindAnyNumberOf, elems: elems})
}

// AnySetOf is like [Set.AnyNumberOf], except that each element may match at
// most once.
func (s *Set) AnySetOf(elems ...ID) ID {
	return s.composite(node{kind: KindAnySetOf, elems: elems, maxPer: 1})
}

// Delimited returns a grammar matching elems separated by delim.
func (s *Set) Delimited(delim ID, elems ...ID) ID {
	s.node(delim)
	return s.composite(node{kind: KindDelimited, elems: elems, delim: delim})
}

// Bracketed returns a grammar matching open, then elems in sequence, then
// close.
func (s *Set) Bracketed(open, close ID, elems ...ID) ID {
	s.node(open)
	s.node(close)
	return s.composite(node{kind: KindBracketed, elems: elems, open: open, close: close})
}

// Ref returns a grammar referring to the rule with the given name.
func (s *Set) Ref(name string, opts ...Option) ID {
	if name == "" {
		panic("grammar: empty rule name")
	}
	return s.leaf(node{kind: KindRef, text: name}, opts)
}

// Clone returns the grammar id with opts applied. The original is left
// alone.
func (s *Set) Clone(id ID, opts ...Option) ID {
	n := *s.node(id)
	n.terms = slices.Clone(n.terms)
	for _, opt := range opts {
		opt(&n)
	}
	if n.kind == KindAnySetOf {
		n.maxPer = 1
	}
	return s.make(n)
}

// With is shorthand for [Set.Clone], reading better at construction sites.
func (s *Set) With(id ID, opts ...Option) ID {
	return s.Clone(id, opts...)
}

func (s *Set) leaf(n node, opts []Option) ID {
	for _, opt := range opts {
		opt(&n)
	}
	return s.make(n)
}

func (s *Set) composite(n node) ID {
	if len(n.elems) == 0 && n.kind != KindBracketed && n.kind != KindSequence {
		panic(fmt.Sprintf("grammar: %v needs at least one element", n.kind))
	}
	for _, e := range n.elems {
		s.node(e)
	}
	n.elems = slices.Clone(n.elems)
	n.allowGaps = true
	return s.make(n)
}

// make validates n, hash-conses it, and returns its ID.
func (s *Set) make(n node) ID {
	if n.max != 0 && n.min > n.max {
		panic(fmt.Sprintf("grammar: min (%d) > max (%d)", n.min, n.max))
	}
	if n.min < 0 || n.max < 0 || n.maxPer < 0 || n.minDelims < 0 {
		panic("grammar: negative repetition bound")
	}
	for _, t := range n.terms {
		s.node(t)
	}
	n.terms = canonical(n.terms)

	if n.kind == KindBracketed {
		// Contents are a sequence that shares the bracket's gap and mode
		// settings, and nothing else.
		n.content = s.make(node{
			kind:      KindSequence,
			elems:     n.elems,
			allowGaps: n.allowGaps,
			mode:      n.mode,
		})
	}

	n.key = s.keys.Intern(n.structure())
	if id, ok := s.byKey[n.key]; ok {
		return id
	}
	if s.byKey == nil {
		s.byKey = make(map[intern.ID]ID)
	}
	id := ID(s.nodes.New(n))
	s.byKey[n.key] = id
	return id
}

func (s *Set) node(id ID) *node {
	if id.Nil() {
		panic("grammar: nil ID")
	}
	return s.nodes.At(arena.Pointer[node](id))
}

// structure renders every field that affects matching. Child grammars are
// rendered by ID, which is sound because children are hash-consed first.
func (n *node) structure() string {
	var b strings.Builder
	b.WriteString(n.kind.String())
	b.WriteByte('{')
	flag := func(name string, v bool) {
		if v {
			b.WriteString(name)
			b.WriteByte(' ')
		}
	}
	flag("opt", n.optional)
	flag("gaps", n.allowGaps)
	flag("reset", n.reset)
	flag("trailing", n.allowTrailing)
	fmt.Fprintf(&b, "mode=%d meta=%d min=%d max=%d per=%d delims=%d", n.mode, n.meta, n.min, n.max, n.maxPer, n.minDelims)
	fmt.Fprintf(&b, " delim=%d open=%d close=%d", n.delim, n.open, n.close)
	writeIDs := func(name string, ids []ID) {
		b.WriteString(" " + name + "=[")
		for i, id := range ids {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatUint(uint64(id), 10))
		}
		b.WriteByte(']')
	}
	writeIDs("elems", n.elems)
	writeIDs("terms", n.terms)
	fmt.Fprintf(&b, " text=%q out=%q anti=%q templates=%q}", n.text, n.outType, n.anti, n.templates)
	return b.String()
}

// canonical sorts and deduplicates a terminator list; terminator order
// never matters.
func canonical(ids []ID) []ID {
	ids = slices.Clone(ids)
	slices.Sort(ids)
	return slices.Compact(ids)
}
