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

package cst

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bufbuild/sqlparse/grammar"
	"github.com/bufbuild/sqlparse/token"
)

// Node is a node in a concrete syntax tree.
//
// Which fields are meaningful depends on Kind:
//
//   - Leaves (Code, Keyword, Whitespace, Newline, Comment, EndOfFile) have
//     Raw, Type and Pos.
//   - Meta has Meta.
//   - Ref has Name, SegmentType and a single child.
//   - Unparsable has Expected and its leftover tokens as children.
//   - Sequence and DelimitedList have children.
//
// The zero Node is Empty.
type Node struct {
	Kind Kind

	Raw  string
	Type string
	Pos  int // Index of the token in the token stream.

	Meta grammar.MetaKind

	Name        string
	SegmentType string

	// What the parser was looking for instead, such as `"y"` or
	// `nothing else`.
	Expected string

	Children []Node
}

// Leaf returns the leaf node for tok, found at index pos of a stream.
// typ overrides the token's own type if non-empty.
func Leaf(tok token.Token, pos int, typ string) Node {
	if typ == "" {
		typ = tok.Type
	}
	n := Node{Raw: tok.Raw, Type: typ, Pos: pos}
	switch tok.Class() {
	case token.ClassCode:
		n.Kind = Code
		if typ == "keyword" {
			n.Kind = Keyword
		}
	case token.ClassNewline:
		n.Kind = Newline
	case token.ClassComment:
		n.Kind = Comment
	case token.ClassEndOfFile:
		n.Kind = EndOfFile
	default:
		n.Kind = Whitespace
	}
	return n
}

// NewMeta returns a structural marker node.
func NewMeta(kind grammar.MetaKind) Node {
	return Node{Kind: Meta, Meta: kind}
}

// NewRef wraps child in a reference to the rule name.
func NewRef(name, segmentType string, child Node) Node {
	return Node{Kind: Ref, Name: name, SegmentType: segmentType, Children: []Node{child}}
}

// IsEmpty returns whether this is the empty node.
func (n Node) IsEmpty() bool {
	return n.Kind == Empty
}

// IsLeaf returns whether this node corresponds to a single token.
func (n Node) IsLeaf() bool {
	switch n.Kind {
	case Code, Keyword, Whitespace, Newline, Comment, EndOfFile:
		return true
	default:
		return false
	}
}

// IsCode returns whether this is a leaf for a code token.
func (n Node) IsCode() bool {
	return n.Kind == Code || n.Kind == Keyword
}

// Child returns the child of a Ref node, or Empty.
func (n Node) Child() Node {
	if n.Kind != Ref || len(n.Children) == 0 {
		return Node{}
	}
	return n.Children[0]
}

// All returns an iterator over this node and all of its descendants, in
// pre-order.
func (n Node) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n.walk(yield)
	}
}

func (n Node) walk(yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Leaves returns an iterator over the leaves of this tree, in token order.
func (n Node) Leaves() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for c := range n.All() {
			if c.IsLeaf() && !yield(c) {
				return
			}
		}
	}
}

// Span returns the index of the first token of this tree and one past the
// index of the last. ok is false if the tree has no leaves.
func (n Node) Span() (start, end int, ok bool) {
	for l := range n.Leaves() {
		if !ok {
			start, ok = l.Pos, true
		}
		end = l.Pos + 1
	}
	return start, end, ok
}

// Text returns the concatenated text of every leaf in this tree.
func (n Node) Text() string {
	var b strings.Builder
	for l := range n.Leaves() {
		b.WriteString(l.Raw)
	}
	return b.String()
}

// Find returns the first Ref node named name in this tree, in pre-order.
func (n Node) Find(name string) (Node, bool) {
	for c := range n.All() {
		if c.Kind == Ref && c.Name == name {
			return c, true
		}
	}
	return Node{}, false
}

// String implements [fmt.Stringer].
func (n Node) String() string {
	switch {
	case n.IsLeaf():
		return fmt.Sprintf("%v(%q)@%d", n.Kind, n.Raw, n.Pos)
	case n.Kind == Meta:
		return n.Meta.String()
	case n.Kind == Ref:
		return "ref(" + n.Name + ")"
	default:
		return n.Kind.String()
	}
}
