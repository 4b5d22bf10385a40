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
	"fmt"
	"strings"

	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/grammar"
	"github.com/bufbuild/sqlparse/token"
)

// Parser parses one token stream against one dialect.
//
// A Parser is not safe for concurrent use, but any number of Parsers may
// share a dialect, provided nothing modifies it while they run.
type Parser struct {
	s      *state
	engine interface {
		parse(call) outcome
		reset()
	}
}

// New returns a parser for tokens.
func New(d dialect.Dialect, tokens token.Stream, opts ...Option) *Parser {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	o.fill()

	p := &Parser{s: newState(d, tokens, o)}
	switch o.Engine {
	case Recursive:
		r := &recursive{s: p.s}
		p.s.eval, p.engine = r.parse, r
	default:
		it := &iterative{s: p.s}
		p.s.eval, p.engine = it.parse, it
	}
	return p
}

// Parse parses the rule with the given name from the start of the stream.
func (p *Parser) Parse(name string) (cst.Node, error) {
	return p.ParseAt(name, 0)
}

// ParseAt parses the rule with the given name starting at token pos.
//
// The result is a Ref node for the rule. On success, [Parser.Pos] reports
// where the match ended, which need not be the end of the stream. On
// failure, it reports pos. A rule must consume something, so an optional
// rule that matches nothing is a [MismatchError] here.
func (p *Parser) ParseAt(name string, pos int) (cst.Node, error) {
	id, segType, ok := p.s.dialect.Lookup(name)
	if !ok {
		p.s.pos = pos
		return cst.Node{}, &UnknownSegmentError{Name: name, Pos: pos, src: p.s.src}
	}

	node, err := p.run(id, pos, false)
	if err != nil {
		return cst.Node{}, err
	}
	if strings.HasSuffix(name, "KeywordSegment") {
		node = promote(node)
	}
	return cst.NewRef(name, segType, node), nil
}

// ParseGrammar parses an arbitrary grammar from the dialect's set, starting
// at token pos.
//
// Unlike [Parser.ParseAt], an optional grammar that does not match is not an
// error: the result is the Empty node, and [Parser.Pos] reports pos.
func (p *Parser) ParseGrammar(id grammar.ID, pos int) (cst.Node, error) {
	return p.run(id, pos, p.s.set.Get(id).IsOptional())
}

// run evaluates id at pos. A result that matches nothing is a mismatch
// unless optional is set.
func (p *Parser) run(id grammar.ID, pos int, optional bool) (cst.Node, error) {
	s := p.s
	if pos < 0 || pos > len(s.tokens) {
		return cst.Node{}, fmt.Errorf("parser: start position %d out of range [0, %d]", pos, len(s.tokens))
	}

	s.reset(pos)
	s.stats = Stats{}
	p.engine.reset()

	out := s.eval(call{id: id, ceil: len(s.tokens)})
	err := out.err
	if err == nil && !out.matched() {
		if optional {
			s.pos = pos
			return cst.Node{}, nil
		}
		err = s.mismatch(pos, s.set.Get(id))
	}
	if err != nil {
		s.pos = pos
		return cst.Node{}, err
	}
	s.pos = out.end
	return out.node, nil
}

// Pos returns the token position the last parse stopped at.
func (p *Parser) Pos() int { return p.s.pos }

// Stats returns counters for the last parse.
func (p *Parser) Stats() Stats { return p.s.stats }

// Tokens returns the stream being parsed.
func (p *Parser) Tokens() token.Stream { return p.s.tokens }
