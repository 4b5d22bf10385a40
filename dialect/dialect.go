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

// Package dialect maps SQL rule names to grammars.
//
// The parser resolves every [grammar.Set.Ref] through a [Dialect] at parse
// time, which is what lets grammars refer to each other recursively. A
// [Table] is the usual implementation; [Load] builds one from YAML, and
// [ANSI] returns a small built-in dialect.
package dialect

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bufbuild/sqlparse/grammar"
)

// Dialect resolves rule names to grammars.
type Dialect interface {
	// Grammars returns the set every grammar of this dialect lives in.
	Grammars() *grammar.Set

	// Lookup returns the grammar for the rule with the given name, along
	// with the segment type used to label parse trees for it, which may be
	// empty.
	Lookup(name string) (id grammar.ID, segmentType string, ok bool)
}

// Table is a [Dialect] backed by a table of rules.
type Table struct {
	name  string
	set   *grammar.Set
	rules map[string]Rule
	order []string
}

// Rule is one entry in a [Table].
type Rule struct {
	Name        string
	SegmentType string
	Grammar     grammar.ID
}

var _ Dialect = (*Table)(nil)

// New returns an empty table whose grammars live in set.
func New(name string, set *grammar.Set) *Table {
	return &Table{name: name, set: set, rules: make(map[string]Rule)}
}

// Name returns the name of this dialect.
func (t *Table) Name() string { return t.name }

// Grammars implements [Dialect].
func (t *Table) Grammars() *grammar.Set { return t.set }

// Lookup implements [Dialect].
func (t *Table) Lookup(name string) (grammar.ID, string, bool) {
	r, ok := t.rules[name]
	return r.Grammar, r.SegmentType, ok
}

// Define adds a rule. It is an error to define the same rule twice.
func (t *Table) Define(name, segmentType string, id grammar.ID) error {
	if _, ok := t.rules[name]; ok {
		return fmt.Errorf("dialect %s: rule %s defined twice", t.name, name)
	}
	t.set.Get(id) // Bounds check.
	t.rules[name] = Rule{Name: name, SegmentType: segmentType, Grammar: id}
	t.order = append(t.order, name)
	return nil
}

// Replace redefines an existing rule, keeping its position.
func (t *Table) Replace(name, segmentType string, id grammar.ID) error {
	if _, ok := t.rules[name]; !ok {
		return fmt.Errorf("dialect %s: no rule %s to replace", t.name, name)
	}
	t.set.Get(id)
	t.rules[name] = Rule{Name: name, SegmentType: segmentType, Grammar: id}
	return nil
}

// Rules returns an iterator over the rules of this table, in definition
// order.
func (t *Table) Rules() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for _, name := range t.order {
			if !yield(t.rules[name]) {
				return
			}
		}
	}
}

// Names returns the sorted names of every rule.
func (t *Table) Names() []string {
	names := slices.Clone(t.order)
	slices.Sort(names)
	return names
}
