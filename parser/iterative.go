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

// iterative evaluates grammars with an explicit stack of frames.
//
// Each frame is one grammar evaluation. A composite grammar never evaluates
// its children inline: it pushes itself back, suspended, beneath a new frame
// for the child, and picks the child's outcome out of the results map once
// that frame completes.
type iterative struct {
	s      *state
	steps  int // Shared by nested lookahead runs.
	nextID int
}

type frame struct {
	id    int
	call  call
	act   *activation
	state frameState
	child int // The frame this one is waiting on.
}

func (it *iterative) reset() {
	it.steps = 0
	it.nextID = 0
}

func (it *iterative) push(stack []*frame, c call) ([]*frame, *frame) {
	it.nextID++
	f := &frame{id: it.nextID, call: c}
	if it.s.trace != nil {
		it.s.traceFrame("push", f.id, c, f.state)
	}
	return append(stack, f), f
}

func (it *iterative) parse(c call) outcome {
	s := it.s
	results := make(map[int]outcome)
	stack, root := it.push(nil, c)

	for len(stack) > 0 {
		it.steps++
		if it.steps > s.opts.MaxIterations {
			return outcome{end: s.pos, err: s.internal(s.pos, fmt.Sprintf("exceeded maximum of %d iterations", s.opts.MaxIterations))}
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var st step
		switch f.state {
		case frameInitial:
			act, out, ok := s.begin(f.call)
			if ok {
				it.complete(f, out, results)
				continue
			}
			f.act = act
			st = act.m.enter(s)

		case frameWaiting:
			out, ok := results[f.child]
			if !ok {
				return outcome{end: s.pos, err: s.internal(s.pos, fmt.Sprintf("frame %d resumed before its child %d completed", f.id, f.child))}
			}
			delete(results, f.child)
			f.state = frameCombining
			if s.trace != nil {
				s.traceFrame("resume", f.id, f.call, f.state)
			}
			s.pos = out.end
			st = f.act.m.resume(s, out)

		default:
			return outcome{end: s.pos, err: s.internal(s.pos, fmt.Sprintf("frame %d popped in state %v", f.id, f.state))}
		}

		if st.done {
			it.complete(f, s.finish(f.act, st.out), results)
			continue
		}

		f.state = frameWaiting
		stack = append(stack, f)
		var next *frame
		stack, next = it.push(stack, st.call)
		f.child = next.id
	}

	out, ok := results[root.id]
	if !ok {
		return outcome{end: s.pos, err: s.internal(s.pos, "stack emptied without a result")}
	}
	return out
}

func (it *iterative) complete(f *frame, out outcome, results map[int]outcome) {
	f.state = frameComplete
	results[f.id] = out
	if it.s.trace != nil {
		it.s.traceFrame("complete", f.id, f.call, f.state)
	}
}
