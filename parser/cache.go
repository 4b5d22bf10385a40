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
	"github.com/bufbuild/sqlparse/internal/intern"
)

type cacheKey struct {
	pos, ceil int
	id        grammar.ID
	terms     intern.ID
}

// cacheEntry is a memoized outcome, together with the non-code positions
// its evaluation collected, so that a hit collects exactly the same ones.
type cacheEntry struct {
	node  cst.Node
	end   int
	err   error
	delta []int
}

// lookup replays a cached outcome for key, if there is one.
func (s *state) lookup(key cacheKey) (outcome, bool) {
	if s.opts.NoCache {
		return outcome{}, false
	}
	e, ok := s.cache[key]
	if !ok {
		s.stats.CacheMiss++
		return outcome{}, false
	}

	s.stats.CacheHits++
	for _, pos := range e.delta {
		s.mark(pos)
	}
	s.pos = e.end
	if s.trace != nil {
		s.traceCache(key, e)
	}
	return outcome{node: e.node, end: e.end, err: e.err}, true
}

// store memoizes the outcome of act. Fatal errors are never cached, since
// they abort the parse anyway.
func (s *state) store(act *activation, out outcome) {
	if s.opts.NoCache || out.fatal() {
		return
	}
	s.cache[act.key] = &cacheEntry{
		node:  out.node,
		end:   out.end,
		err:   out.err,
		delta: slices.Clone(s.undo[act.mark:]),
	}
}
