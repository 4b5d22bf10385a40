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

package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/internal/corpora"
	"github.com/bufbuild/sqlparse/parser"
	"github.com/bufbuild/sqlparse/token"
)

// TestCorpus parses every case under testdata with every engine
// configuration.
//
// Each case produces three outputs. The .check output lists violated
// invariants: engines that disagree, leaves that are duplicated, and text
// that does not round-trip. It is expected to be empty. The .unparsable
// output lists the text of each unparsable node in the tree, and the .tree
// output is the dump of the whole tree.
//
// Set SQLPARSE_REFRESH to a glob of case names to rewrite their outputs.
func TestCorpus(t *testing.T) {
	t.Parallel()

	d := dialect.ANSI()
	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "SQLPARSE_REFRESH",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "check"},
			{Extension: "unparsable"},
			{Extension: "tree"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var c struct {
				Rule string `yaml:"rule"`
				SQL  string `yaml:"sql"`
			}
			if err := yaml.Unmarshal([]byte(text), &c); err != nil {
				t.Fatalf("%s: %v", path, err)
			}
			tokens := token.Scan(c.SQL)

			var (
				check lineWriter
				first cst.Node
				end   int
			)
			for i, config := range configs {
				p := parser.New(d, tokens, config.opts...)
				node, err := p.Parse(c.Rule)
				if err != nil {
					check.printf("%s: %v", config.name, err)
					continue
				}
				if i == 0 {
					first, end = node, p.Pos()
					continue
				}
				if diff := cmp.Diff(first.Dump(), node.Dump()); diff != "" {
					check.printf("%s disagrees with %s:\n%s", config.name, configs[0].name, diff)
				}
				if p.Pos() != end {
					check.printf("%s stopped at %d, %s at %d", config.name, p.Pos(), configs[0].name, end)
				}
			}

			last := -1
			for l := range first.Leaves() {
				if l.Pos <= last {
					check.printf("leaf %v out of order or duplicated", l)
				}
				last = l.Pos
			}
			if got, want := first.Text(), tokens[:end].Text(); got != want {
				check.printf("tree text %q, want %q", got, want)
			}
			if tokens.HasCode(end, len(tokens)) {
				check.printf("stopped at token %d of %d", end, len(tokens))
			}

			var leftover lineWriter
			for n := range first.All() {
				if n.Kind == cst.Unparsable {
					leftover.printf("%s", n.Text())
				}
			}
			return []string{check.String(), leftover.String(), first.Dump()}
		},
	}
	corpus.Run(t)
}

type lineWriter struct {
	strings.Builder
}

func (w *lineWriter) printf(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
}
