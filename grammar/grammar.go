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
	"slices"
	"strings"
)

// Grammar is a read-only view of one grammar in a [Set].
//
// Accessors that do not apply to a grammar's [Kind] return zero values.
type Grammar struct {
	set *Set
	id  ID
}

// Set returns the set this grammar belongs to.
func (g Grammar) Set() *Set { return g.set }

// ID returns this grammar's ID.
func (g Grammar) ID() ID { return g.id }

// Kind returns which variant this grammar is.
func (g Grammar) Kind() Kind { return g.raw().kind }

// IsLeaf returns whether this grammar matches tokens directly rather than
// through other grammars.
func (g Grammar) IsLeaf() bool {
	switch g.Kind() {
	case KindSequence, KindOneOf, KindAnyNumberOf, KindAnySetOf,
		KindDelimited, KindBracketed, KindRef:
		return false
	default:
		return true
	}
}

// Optional returns whether this grammar was explicitly marked optional.
func (g Grammar) Optional() bool { return g.raw().optional }

// IsOptional returns whether failing to match this grammar is acceptable.
//
// This is true for grammars marked [Optional], and for grammars that are
// optional by nature: structural markers, [Set.Empty], [Set.Anything], and
// repetitions with no minimum.
func (g Grammar) IsOptional() bool {
	n := g.raw()
	switch {
	case n.optional:
		return true
	case n.kind == KindMeta, n.kind == KindEmpty, n.kind == KindAnything:
		return true
	case n.kind == KindAnyNumberOf, n.kind == KindAnySetOf:
		return n.min == 0
	}
	return false
}

// AllowGaps returns whether non-code tokens may appear between elements.
func (g Grammar) AllowGaps() bool { return g.raw().allowGaps }

// Mode returns this grammar's parse mode.
func (g Grammar) Mode() Mode { return g.raw().mode }

// Terminators returns this grammar's own terminators, sorted by ID.
func (g Grammar) Terminators() []ID { return slices.Clone(g.raw().terms) }

// ResetTerminators returns whether this grammar discards inherited
// terminators.
func (g Grammar) ResetTerminators() bool { return g.raw().reset }

// Text returns the token type of a token or typed grammar, the literal of a
// symbol, the template of a string grammar, the pattern of a regex, or the
// rule name of a reference.
func (g Grammar) Text() string { return g.raw().text }

// Name returns the rule name of a reference.
func (g Grammar) Name() string {
	if g.Kind() != KindRef {
		return ""
	}
	return g.raw().text
}

// Templates returns the templates of a string or multi-string grammar.
func (g Grammar) Templates() []string {
	n := g.raw()
	switch n.kind {
	case KindString:
		return []string{n.text}
	case KindMultiString:
		return slices.Clone(n.templates)
	}
	return nil
}

// OutType returns the type given to tokens matched by this grammar. Empty
// means the token keeps its own type.
func (g Grammar) OutType() string { return g.raw().outType }

// AntiPattern returns the veto pattern of a regex grammar.
func (g Grammar) AntiPattern() string { return g.raw().anti }

// MatchesRegex reports whether raw satisfies a regex grammar: it matches
// the pattern and not the anti-pattern.
func (g Grammar) MatchesRegex(raw string) bool {
	n := g.raw()
	if n.re == nil || !n.re.MatchString(raw) {
		return false
	}
	return n.antiRe == nil || !n.antiRe.MatchString(raw)
}

// MatchesString reports whether raw equals one of the templates of a string
// grammar, ignoring case.
func (g Grammar) MatchesString(raw string) bool {
	n := g.raw()
	switch n.kind {
	case KindString:
		return strings.EqualFold(raw, n.text)
	case KindMultiString:
		return slices.ContainsFunc(n.templates, func(t string) bool {
			return strings.EqualFold(raw, t)
		})
	}
	return false
}

// Meta returns the marker kind of a meta grammar.
func (g Grammar) Meta() MetaKind { return g.raw().meta }

// Elements returns the elements of a combinator.
func (g Grammar) Elements() []ID { return slices.Clone(g.raw().elems) }

// Min returns the minimum number of repetitions.
func (g Grammar) Min() int { return g.raw().min }

// Max returns the maximum number of repetitions; zero means unbounded.
func (g Grammar) Max() int { return g.raw().max }

// MaxPerElement returns how many times a single element may repeat; zero
// means unbounded.
func (g Grammar) MaxPerElement() int { return g.raw().maxPer }

// Delimiter returns the delimiter of a delimited grammar.
func (g Grammar) Delimiter() ID { return g.raw().delim }

// AllowTrailing returns whether a delimited grammar accepts a trailing
// delimiter.
func (g Grammar) AllowTrailing() bool { return g.raw().allowTrailing }

// MinDelimiters returns the minimum number of delimiters.
func (g Grammar) MinDelimiters() int { return g.raw().minDelims }

// Brackets returns the opening and closing grammars of a bracketed grammar.
func (g Grammar) Brackets() (open, close ID) {
	n := g.raw()
	return n.open, n.close
}

// Content returns the sequence matched between the brackets of a bracketed
// grammar.
func (g Grammar) Content() ID { return g.raw().content }

// Key returns this grammar's structural key, for display.
func (g Grammar) Key() string { return g.set.keys.Value(g.raw().key) }

func (g Grammar) raw() *node {
	return g.set.node(g.id)
}
