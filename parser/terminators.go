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

	"github.com/bufbuild/sqlparse/grammar"
	"github.com/bufbuild/sqlparse/internal/interval"
)

// trim returns the greedy ceiling for a grammar starting at start: the end
// of the last code token before the first terminator in t, or the end of
// the stream if no terminator matches.
func (s *state) trim(start int, t terms) (int, error) {
	stop, err := s.scan(start, t)
	if err != nil {
		return 0, err
	}
	end := s.tokens.TrimCode(start, stop)
	if s.trace != nil {
		s.traceCeiling(start, t, end)
	}
	return end, nil
}

// scan returns the position of the first terminator in t at or after
// start, or len(s.tokens) if there is none. Code inside brackets is never
// tested.
//
// A scan from any position it passed at bracket depth zero would find the
// same terminator, so those runs of positions are remembered per
// terminator set.
func (s *state) scan(start int, t terms) (int, error) {
	n := len(s.tokens)
	if len(t.ids) == 0 || start >= n {
		return n, nil
	}

	known := s.scans[t.key]
	if known == nil {
		known = new(interval.Map[int, int])
		s.scans[t.key] = known
	}
	if hit := known.Get(start); hit.Value != nil {
		return *hit.Value, nil
	}

	var (
		depth int
		runs  [][2]int
		open  = start // Start of the current depth zero run, or -1.
		stop  = n
		i     = start
	)
scan:
	for ; i < n; i++ {
		tok := s.tokens[i]
		if depth == 0 {
			if hit := known.Get(i); hit.Value != nil {
				stop = *hit.Value
				break scan
			}
			if tok.IsCode {
				ok, err := s.matchesAny(t.ids, i)
				if err != nil {
					return 0, err
				}
				if ok {
					stop = i
					i++ // The terminator itself belongs to the run.
					break scan
				}
			}
		}
		if !tok.IsCode {
			continue
		}

		switch s.brackets[tok.Raw] {
		case 1:
			if depth == 0 {
				runs = append(runs, [2]int{open, i})
				open = -1
			}
			depth++
		case -1:
			if depth > 0 {
				depth--
				if depth == 0 {
					open = i + 1
				}
			}
		}
	}
	if open >= 0 && open < i {
		runs = append(runs, [2]int{open, i - 1})
	}

	for _, run := range runs {
		known.Insert(run[0], run[1], stop)
	}
	return stop, nil
}

// findClose returns the position of the first code token at or after from,
// at bracket depth zero, where close matches. It returns -1 if there is
// none.
func (s *state) findClose(from int, close grammar.ID) (int, error) {
	var depth int
	for i := from; i < len(s.tokens); i++ {
		tok := s.tokens[i]
		if !tok.IsCode {
			continue
		}
		if depth == 0 {
			ok, err := s.matchesAny([]grammar.ID{close}, i)
			if err != nil {
				return 0, err
			}
			if ok {
				return i, nil
			}
		}

		switch s.brackets[tok.Raw] {
		case 1:
			depth++
		case -1:
			if depth > 0 {
				depth--
			}
		}
	}
	return -1, nil
}

// matchesAny reports whether any of ids matches at pos. The cursor and
// collection are left as they were.
//
// Each test is a nested evaluation on the goroutine stack, whichever engine
// is active, so a terminator whose own evaluation needs a terminator test
// nests again. That nesting is bounded by [Options.MaxDepth].
func (s *state) matchesAny(ids []grammar.ID, pos int) (bool, error) {
	if s.lookahead >= s.opts.MaxDepth {
		return false, s.internal(pos, fmt.Sprintf("exceeded maximum lookahead nesting of %d", s.opts.MaxDepth))
	}
	s.lookahead++

	saved, mark := s.pos, len(s.undo)
	defer func() {
		s.lookahead--
		s.pos = saved
		s.rollback(mark)
	}()

	for _, id := range ids {
		s.stats.Lookaheads++
		s.pos = pos
		out := s.eval(call{id: id, ceil: len(s.tokens)})
		if out.fatal() {
			return false, out.err
		}
		s.rollback(mark)
		if out.matched() {
			return true, nil
		}
	}
	return false, nil
}

// atTerminator reports whether any terminator in t matches at pos.
func (s *state) atTerminator(pos int, t terms) (bool, error) {
	if len(t.ids) == 0 || pos >= len(s.tokens) {
		return false, nil
	}
	return s.matchesAny(t.ids, pos)
}
