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

	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/grammar"
)

// matcher evaluates one composite grammar.
//
// A matcher never evaluates other grammars itself. Instead, each of its
// steps either asks its engine to evaluate one child grammar at the current
// position, or completes with a result. The engine then feeds the child's
// outcome back through resume. The recursive engine does this with an
// ordinary call; the iterative engine suspends the matcher in a frame.
//
// The fields of a matcher are exactly the local variables a recursive
// implementation would keep on its stack.
type matcher interface {
	enter(s *state) step
	resume(s *state, child outcome) step
}

// step is what a matcher asks of its engine next.
type step struct {
	call call // The child to evaluate, if !done.
	done bool
	out  outcome
}

func child(id grammar.ID, t terms, ceil int) step {
	return step{call: call{id: id, terms: t, ceil: ceil}}
}

func result(node cst.Node, err error) step {
	return step{done: true, out: outcome{node: node, err: err}}
}

func fail(err error) step {
	return result(cst.Node{}, err)
}

// ref evaluates the rule a reference names and wraps the result.
type ref struct {
	g           grammar.Grammar
	rule        grammar.ID
	segmentType string
	terms       terms
	ceil        int
}

func (r *ref) enter(*state) step {
	return child(r.rule, r.terms, r.ceil)
}

func (r *ref) resume(_ *state, out outcome) step {
	if !out.matched() {
		return fail(out.err)
	}
	node := out.node
	if strings.HasSuffix(r.g.Name(), "KeywordSegment") {
		node = promote(node)
	}
	return result(cst.NewRef(r.g.Name(), r.segmentType, node), nil)
}
