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
	"strconv"
	"strings"
)

// describeDepth bounds how far String descends into combinators.
const describeDepth = 2

// String returns a short human-readable description of this grammar, used
// in error messages.
func (g Grammar) String() string {
	var b strings.Builder
	g.describe(&b, describeDepth)
	return b.String()
}

func (g Grammar) describe(b *strings.Builder, depth int) {
	n := g.raw()
	switch n.kind {
	case KindToken, KindTyped:
		fmt.Fprintf(b, "<%s>", n.text)
	case KindSymbol:
		b.WriteString(strconv.Quote(n.text))
	case KindString:
		b.WriteString(strings.ToUpper(n.text))
	case KindMultiString:
		b.WriteByte('(')
		for i, t := range n.templates {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(strings.ToUpper(t))
		}
		b.WriteByte(')')
	case KindRegex:
		fmt.Fprintf(b, "/%s/", n.text)
	case KindMeta:
		b.WriteString(n.meta.String())
	case KindRef:
		b.WriteString(n.text)
	case KindBracketed:
		open, close := g.set.Get(n.open), g.set.Get(n.close)
		open.describe(b, depth)
		g.list(b, n.elems, " ", depth)
		close.describe(b, depth)
	case KindSequence:
		g.list(b, n.elems, " ", depth)
	case KindOneOf:
		b.WriteString("one of ")
		g.list(b, n.elems, ", ", depth)
	case KindAnyNumberOf, KindAnySetOf:
		b.WriteString("any of ")
		g.list(b, n.elems, ", ", depth)
	case KindDelimited:
		g.list(b, n.elems, ", ", depth)
		b.WriteString(" delimited by ")
		g.set.Get(n.delim).describe(b, depth)
	default:
		b.WriteString(n.kind.String())
	}
}

func (g Grammar) list(b *strings.Builder, ids []ID, sep string, depth int) {
	if depth == 0 {
		b.WriteString("(...)")
		return
	}
	b.WriteByte('(')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(sep)
		}
		g.set.Get(id).describe(b, depth-1)
	}
	b.WriteByte(')')
}
