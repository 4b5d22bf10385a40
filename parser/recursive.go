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

import "fmt"

// recursive evaluates grammars on the goroutine stack.
type recursive struct {
	s     *state
	depth int
}

func (r *recursive) reset() { r.depth = 0 }

func (r *recursive) parse(c call) outcome {
	s := r.s
	if r.depth >= s.opts.MaxDepth {
		return outcome{end: s.pos, err: s.internal(s.pos, fmt.Sprintf("exceeded maximum depth of %d", s.opts.MaxDepth))}
	}
	r.depth++
	defer func() { r.depth-- }()

	if s.trace != nil {
		s.traceCall("call", r.depth, c, nil)
	}
	act, out, ok := s.begin(c)
	if !ok {
		st := act.m.enter(s)
		for !st.done {
			child := r.parse(st.call)
			s.pos = child.end
			st = act.m.resume(s, child)
		}
		out = s.finish(act, st.out)
	}
	if s.trace != nil {
		s.traceCall("return", r.depth, c, &out)
	}
	return out
}
