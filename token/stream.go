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

package token

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stream is a sequence of tokens, as produced by a lexer.
type Stream []Token

// Text reconstructs the source text the stream was lexed from.
func (s Stream) Text() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.Raw)
	}
	return b.String()
}

// Offset returns the byte offset of the token at index i in the text
// returned by [Stream.Text]. i may be len(s), which yields the length of the
// text.
func (s Stream) Offset(i int) int {
	var n int
	for _, t := range s[:i] {
		n += len(t.Raw)
	}
	return n
}

// NextCode returns the index of the first code token in s[from:to], or to
// if there is none.
func (s Stream) NextCode(from, to int) int {
	for i := from; i < to; i++ {
		if s[i].IsCode {
			return i
		}
	}
	return to
}

// TrimCode returns the least j in [from, to] such that s[j:to] contains no
// code, that is, one past the last code token before to.
func (s Stream) TrimCode(from, to int) int {
	for to > from && !s[to-1].IsCode {
		to--
	}
	return to
}

// HasCode returns whether s[from:to] contains any code.
func (s Stream) HasCode(from, to int) bool {
	return s.NextCode(from, to) < to
}

// Clone returns a copy of this stream.
func (s Stream) Clone() Stream {
	return slices.Clone(s)
}

// Load reads a stream from YAML.
//
// The document is a sequence of tokens, each a mapping with keys raw, type
// and code. A bare string is lexed with [Scan] and spliced in.
func Load(r io.Reader) (Stream, error) {
	var nodes []yaml.Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("token: %w", err)
	}

	out := make(Stream, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == yaml.ScalarNode {
			out = append(out, Scan(n.Value)...)
			continue
		}

		var t Token
		if err := n.Decode(&t); err != nil {
			return nil, fmt.Errorf("token: line %d: %w", n.Line, err)
		}
		if t.Type == "" {
			return nil, fmt.Errorf("token: line %d: missing type", n.Line)
		}
		out = append(out, t)
	}
	return out, nil
}
