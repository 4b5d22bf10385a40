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
)

// Trace records are only built when s.trace is non-nil; callers check.

func (s *state) traceCache(key cacheKey, e *cacheEntry) {
	s.trace.LogAttrs(context.Background(), slog.LevelDebug, "cache hit",
		slog.Int("pos", key.pos),
		slog.Int("end", e.end),
		slog.String("kind", s.set.Get(key.id).Kind().String()),
		slog.Uint64("grammar", uint64(key.id)),
		slog.Int("collected", len(e.delta)),
	)
}

func (s *state) traceCeiling(start int, t terms, end int) {
	s.trace.LogAttrs(context.Background(), slog.LevelDebug, "ceiling",
		slog.Int("pos", start),
		slog.Int("end", end),
		slog.Int("terminators", len(t.ids)),
	)
}

func (s *state) traceFrame(event string, id int, c call, st frameState) {
	s.trace.LogAttrs(context.Background(), slog.LevelDebug, event,
		slog.Int("frame", id),
		slog.Int("pos", s.pos),
		slog.Int("ceil", c.ceil),
		slog.String("kind", s.set.Get(c.id).Kind().String()),
		slog.Uint64("grammar", uint64(c.id)),
		slog.String("state", st.String()),
	)
}

func (s *state) traceCall(event string, depth int, c call, out *outcome) {
	attrs := []slog.Attr{
		slog.Int("depth", depth),
		slog.Int("pos", s.pos),
		slog.Int("ceil", c.ceil),
		slog.String("kind", s.set.Get(c.id).Kind().String()),
		slog.Uint64("grammar", uint64(c.id)),
	}
	if out != nil {
		attrs = append(attrs, slog.Bool("matched", out.matched()))
		if out.err != nil {
			attrs = append(attrs, slog.String("error", out.err.Error()))
		}
	}
	s.trace.LogAttrs(context.Background(), slog.LevelDebug, event, attrs...)
}
