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
	"strings"
)

// Dump renders this tree with one node per line, indented by depth.
//
//	ref SelectStatementSegment (select_statement)
//	  sequence
//	    keyword "SELECT" @0
//	    whitespace " " @1
//	    code "a" @2 word
func (n Node) Dump() string {
	var b strings.Builder
	n.dump(&b, 0)
	return b.String()
}

func (n Node) dump(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString("  ")
	}
	b.WriteString(n.Kind.String())
	switch {
	case n.IsLeaf():
		fmt.Fprintf(b, " %q @%d", n.Raw, n.Pos)
		if n.Type != "" && n.Type != n.Kind.String() {
			b.WriteString(" " + n.Type)
		}
	case n.Kind == Meta:
		b.WriteString(" " + n.Meta.String())
	case n.Kind == Ref:
		b.WriteString(" " + n.Name)
		if n.SegmentType != "" {
			b.WriteString(" (" + n.SegmentType + ")")
		}
	case n.Kind == Unparsable && n.Expected != "":
		b.WriteString(" expected " + n.Expected)
	}
	b.WriteByte('\n')

	for _, c := range n.Children {
		c.dump(b, depth+1)
	}
}

// yamlNode is the YAML shape of a [Node].
type yamlNode struct {
	Kind        string     `yaml:"kind"`
	Name        string     `yaml:"name,omitempty"`
	SegmentType string     `yaml:"segment_type,omitempty"`
	Raw         *string    `yaml:"raw,omitempty"`
	Type        string     `yaml:"type,omitempty"`
	Pos         *int       `yaml:"pos,omitempty"`
	Meta        string     `yaml:"meta,omitempty"`
	Expected    string     `yaml:"expected,omitempty"`
	Children    []yamlNode `yaml:"children,omitempty"`
}

// MarshalYAML implements [yaml.Marshaler].
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (n Node) MarshalYAML() (any, error) {
	return n.toYAML(), nil
}

func (n Node) toYAML() yamlNode {
	y := yamlNode{Kind: n.Kind.String()}
	switch {
	case n.IsLeaf():
		raw, pos := n.Raw, n.Pos
		y.Raw, y.Pos, y.Type = &raw, &pos, n.Type
	case n.Kind == Meta:
		y.Meta = n.Meta.String()
	case n.Kind == Ref:
		y.Name, y.SegmentType = n.Name, n.SegmentType
	case n.Kind == Unparsable:
		y.Expected = n.Expected
	}
	for _, c := range n.Children {
		y.Children = append(y.Children, c.toYAML())
	}
	return y
}
