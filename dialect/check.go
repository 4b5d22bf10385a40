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
	"errors"
	"fmt"

	"github.com/bufbuild/sqlparse/grammar"
)

// CheckError is a structural problem found by [Table.Check].
type CheckError struct {
	Rule string // The rule whose grammar has the problem.

	// Exactly one of these is set.
	Unresolved string // A reference to a rule that does not exist.
	Missing    bool   // A [grammar.KindMissing] placeholder is reachable.
}

// Error implements [error].
func (e *CheckError) Error() string {
	if e.Missing {
		return fmt.Sprintf("rule %s: reaches a missing grammar", e.Rule)
	}
	return fmt.Sprintf("rule %s: reference to undefined rule %s", e.Rule, e.Unresolved)
}

// Check verifies that every reference in every rule resolves, and that no
// rule can reach a missing grammar.
//
// The returned error, if any, joins one [*CheckError] per problem.
func (t *Table) Check() error {
	var errs []error
	for r := range t.Rules() {
		seen := make(map[grammar.ID]bool)
		missing := false
		unresolved := make(map[string]bool)

		var visit func(grammar.ID)
		visit = func(id grammar.ID) {
			if id.Nil() || seen[id] {
				return
			}
			seen[id] = true

			g := t.set.Get(id)
			switch g.Kind() {
			case grammar.KindMissing:
				missing = true
			case grammar.KindRef:
				if _, _, ok := t.Lookup(g.Name()); !ok && !unresolved[g.Name()] {
					unresolved[g.Name()] = true
					errs = append(errs, &CheckError{Rule: r.Name, Unresolved: g.Name()})
				}
			}

			for _, e := range g.Elements() {
				visit(e)
			}
			for _, term := range g.Terminators() {
				visit(term)
			}
			open, close := g.Brackets()
			visit(open)
			visit(close)
			visit(g.Delimiter())
		}
		visit(r.Grammar)

		if missing {
			errs = append(errs, &CheckError{Rule: r.Name, Missing: true})
		}
	}
	return errors.Join(errs...)
}
