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

package dialect

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/sqlparse/grammar"
)

// Load reads a dialect from YAML.
//
// The document has the form
//
//	name: ansi
//	rules:
//	  SelectStatementSegment:
//	    type: select_statement
//	    grammar:
//	      sequence:
//	      - string: select
//	      - SelectTargetListSegment
//	      - {ref: FromClauseSegment, optional: true}
//
// A rule whose value has no grammar key is shorthand for a rule with no
// segment type whose grammar is the value itself.
//
// A grammar is either a bare string, which refers to a rule, or a mapping
// with exactly one key naming its kind (see [grammar.ParseKind]) plus any
// option keys: optional, allow_gaps, mode, terminators, reset_terminators,
// min, max, max_per_element, delimiter, allow_trailing, min_delimiters,
// open, close, type and anti.
//
// Grammars are built into set, or a new set if set is nil.
func Load(r io.Reader, set *grammar.Set) (*Table, error) {
	var doc struct {
		Name  string    `yaml:"name"`
		Rules yaml.Node `yaml:"rules"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("dialect: %w", err)
	}
	if doc.Rules.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dialect: line %d: rules must be a mapping", doc.Rules.Line)
	}

	if set == nil {
		set = new(grammar.Set)
	}
	t := New(doc.Name, set)
	l := loader{set: set}
	for i := 0; i+1 < len(doc.Rules.Content); i += 2 {
		key, value := doc.Rules.Content[i], doc.Rules.Content[i+1]

		var rule struct {
			Type    string    `yaml:"type"`
			Grammar yaml.Node `yaml:"grammar"`
		}
		if hasKey(value, "grammar") {
			if err := value.Decode(&rule); err != nil {
				return nil, fmt.Errorf("dialect: rule %s: %w", key.Value, err)
			}
		} else {
			// Shorthand: the value is the grammar itself.
			rule.Grammar = *value
		}

		id, err := l.grammar(&rule.Grammar)
		if err != nil {
			return nil, fmt.Errorf("dialect: rule %s: %w", key.Value, err)
		}
		if err := t.Define(key.Value, rule.Type, id); err != nil {
			return nil, err
		}
	}
	return t, nil
}

type loader struct {
	set *grammar.Set
}

var optionKeys = map[string]bool{
	"optional": true, "allow_gaps": true, "mode": true, "terminators": true,
	"reset_terminators": true, "min": true, "max": true, "max_per_element": true,
	"delimiter": true, "allow_trailing": true, "min_delimiters": true,
	"open": true, "close": true, "type": true, "anti": true,
}

// options are the keys a grammar mapping may carry besides its kind.
//
// The grammar-valued keys are not decoded: yaml.v3 only hands out the raw
// node for fields of type yaml.Node, so they are lifted out of the mapping
// before the scalar keys are decoded.
type options struct {
	Optional      bool    `yaml:"optional"`
	AllowGaps     *bool   `yaml:"allow_gaps"`
	Mode          string  `yaml:"mode"`
	Reset         bool    `yaml:"reset_terminators"`
	Min           int     `yaml:"min"`
	Max           int     `yaml:"max"`
	MaxPer        int     `yaml:"max_per_element"`
	AllowTrailing bool    `yaml:"allow_trailing"`
	MinDelimiters int     `yaml:"min_delimiters"`
	Type          *string `yaml:"type"`
	Anti          string  `yaml:"anti"`

	Terminators []*yaml.Node `yaml:"-"`
	Delimiter   *yaml.Node   `yaml:"-"`
	Open        *yaml.Node   `yaml:"-"`
	Close       *yaml.Node   `yaml:"-"`
}

func (l *loader) grammar(n *yaml.Node) (grammar.ID, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return 0, l.errorf(n, "empty rule name")
		}
		return l.set.Ref(n.Value), nil
	case yaml.MappingNode:
	default:
		return 0, l.errorf(n, "expected a rule name or a mapping")
	}

	// Split the kind key from the option keys.
	var (
		kind    grammar.Kind
		body    *yaml.Node
		optNode = &yaml.Node{Kind: yaml.MappingNode, Line: n.Line}
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		k, ok := grammar.ParseKind(key.Value)
		if !ok {
			optNode.Content = append(optNode.Content, key, value)
			continue
		}
		if body != nil {
			return 0, l.errorf(key, "grammar has two kinds, %v and %v", kind, k)
		}
		kind, body = k, value
	}
	if body == nil {
		return 0, l.errorf(n, "grammar has no kind")
	}

	var (
		opts    options
		nodes   options
		scalars = &yaml.Node{Kind: yaml.MappingNode, Line: n.Line}
	)
	for i := 0; i < len(optNode.Content); i += 2 {
		key, value := optNode.Content[i], optNode.Content[i+1]
		switch {
		case !optionKeys[key.Value]:
			return 0, l.errorf(key, "unknown grammar key %q", key.Value)
		case key.Value == "terminators":
			if value.Kind != yaml.SequenceNode {
				return 0, l.errorf(value, "terminators needs a list of grammars")
			}
			nodes.Terminators = value.Content
		case key.Value == "delimiter":
			nodes.Delimiter = value
		case key.Value == "open":
			nodes.Open = value
		case key.Value == "close":
			nodes.Close = value
		default:
			scalars.Content = append(scalars.Content, key, value)
		}
	}
	if err := scalars.Decode(&opts); err != nil {
		return 0, l.errorf(n, "%v", err)
	}
	opts.Terminators = nodes.Terminators
	opts.Delimiter, opts.Open, opts.Close = nodes.Delimiter, nodes.Open, nodes.Close

	id, err := l.build(kind, body, &opts)
	if err != nil {
		return 0, err
	}

	var with []grammar.Option
	if opts.Optional {
		with = append(with, grammar.Optional())
	}
	if opts.AllowGaps != nil {
		with = append(with, grammar.AllowGaps(*opts.AllowGaps))
	}
	if opts.Mode != "" {
		mode, ok := grammar.ParseMode(opts.Mode)
		if !ok {
			return 0, l.errorf(n, "unknown mode %q", opts.Mode)
		}
		with = append(with, grammar.WithMode(mode))
	}
	if len(opts.Terminators) > 0 {
		terms, err := l.list(opts.Terminators)
		if err != nil {
			return 0, err
		}
		with = append(with, grammar.Terminators(terms...))
	}
	if opts.Reset {
		with = append(with, grammar.ResetTerminators())
	}
	if opts.Min > 0 {
		with = append(with, grammar.Min(opts.Min))
	}
	if opts.Max > 0 {
		with = append(with, grammar.Max(opts.Max))
	}
	if opts.MaxPer > 0 {
		with = append(with, grammar.MaxPerElement(opts.MaxPer))
	}
	if opts.AllowTrailing {
		with = append(with, grammar.AllowTrailing())
	}
	if opts.MinDelimiters > 0 {
		with = append(with, grammar.MinDelimiters(opts.MinDelimiters))
	}
	if len(with) == 0 {
		return id, nil
	}
	if opts.Max > 0 && opts.Min > opts.Max {
		return 0, l.errorf(n, "min (%d) > max (%d)", opts.Min, opts.Max)
	}
	return l.set.Clone(id, with...), nil
}

func (l *loader) build(kind grammar.Kind, body *yaml.Node, opts *options) (grammar.ID, error) {
	outType := func(def string) string {
		if opts.Type != nil {
			return *opts.Type
		}
		return def
	}

	switch kind {
	case grammar.KindString, grammar.KindMultiString, grammar.KindTyped, grammar.KindRegex:
	default:
		if opts.Type != nil {
			return 0, l.errorf(body, "%v does not take a type", kind)
		}
	}
	if opts.Anti != "" && kind != grammar.KindRegex {
		return 0, l.errorf(body, "only regex takes an anti-pattern")
	}

	switch kind {
	case grammar.KindToken, grammar.KindSymbol, grammar.KindString,
		grammar.KindTyped, grammar.KindRegex, grammar.KindRef, grammar.KindMeta:
		if body.Kind != yaml.ScalarNode || body.Value == "" {
			return 0, l.errorf(body, "%v needs a non-empty string", kind)
		}
	}

	switch kind {
	case grammar.KindToken:
		return l.set.Token(body.Value), nil
	case grammar.KindSymbol:
		return l.set.Symbol(body.Value), nil
	case grammar.KindString:
		return l.set.StringParser(body.Value, outType("keyword")), nil
	case grammar.KindTyped:
		return l.set.TypedParser(body.Value, outType(body.Value)), nil
	case grammar.KindRegex:
		id, err := l.set.RegexParser(body.Value, opts.Anti, outType(""))
		if err != nil {
			return 0, l.errorf(body, "%v", err)
		}
		return id, nil
	case grammar.KindRef:
		return l.set.Ref(body.Value), nil
	case grammar.KindMeta:
		meta, ok := grammar.ParseMetaKind(body.Value)
		if !ok {
			return 0, l.errorf(body, "unknown meta kind %q", body.Value)
		}
		return l.set.Meta(meta), nil

	case grammar.KindMultiString:
		var templates []string
		if err := body.Decode(&templates); err != nil || len(templates) == 0 {
			return 0, l.errorf(body, "multi_string needs a list of strings")
		}
		return l.set.MultiStringParser(templates, outType("keyword")), nil

	case grammar.KindAnything:
		return l.set.Anything(), nil
	case grammar.KindEmpty:
		return l.set.Empty(), nil
	case grammar.KindNothing:
		return l.set.Nothing(), nil
	case grammar.KindMissing:
		return l.set.Missing(), nil
	}

	if body.Kind != yaml.SequenceNode {
		return 0, l.errorf(body, "%v needs a list of grammars", kind)
	}
	elems, err := l.list(body.Content)
	if err != nil {
		return 0, err
	}
	if len(elems) == 0 && kind != grammar.KindSequence && kind != grammar.KindBracketed {
		return 0, l.errorf(body, "%v needs at least one element", kind)
	}

	switch kind {
	case grammar.KindSequence:
		return l.set.Sequence(elems...), nil
	case grammar.KindOneOf:
		return l.set.OneOf(elems...), nil
	case grammar.KindAnyNumberOf:
		return l.set.AnyNumberOf(elems...), nil
	case grammar.KindAnySetOf:
		return l.set.AnySetOf(elems...), nil

	case grammar.KindDelimited:
		delim := l.set.Symbol(",")
		if opts.Delimiter != nil {
			if delim, err = l.grammar(opts.Delimiter); err != nil {
				return 0, err
			}
		}
		return l.set.Delimited(delim, elems...), nil

	case grammar.KindBracketed:
		open, close := l.set.Symbol("("), l.set.Symbol(")")
		if opts.Open != nil {
			if open, err = l.grammar(opts.Open); err != nil {
				return 0, err
			}
		}
		if opts.Close != nil {
			if close, err = l.grammar(opts.Close); err != nil {
				return 0, err
			}
		}
		return l.set.Bracketed(open, close, elems...), nil
	}

	return 0, l.errorf(body, "unsupported grammar kind %v", kind)
}

func (l *loader) list(nodes []*yaml.Node) ([]grammar.ID, error) {
	ids := make([]grammar.ID, 0, len(nodes))
	for _, n := range nodes {
		id, err := l.grammar(n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return slices.Clip(ids), nil
}

func (l *loader) errorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

func hasKey(n *yaml.Node, key string) bool {
	if n.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}
