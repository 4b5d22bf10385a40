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

package sqlparse

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/parser"
	"github.com/bufbuild/sqlparse/report"
	"github.com/bufbuild/sqlparse/token"
)

// Input is one token stream to parse.
type Input struct {
	// The path reported in diagnostics. It need not name a real file.
	Path   string
	Tokens token.Stream
}

// Result is the outcome of parsing one [Input].
type Result struct {
	Input

	Tree cst.Node
	// The token position the parse stopped at.
	End   int
	Stats parser.Stats

	// Why the parse failed, if it did. Parser errors can be rendered with
	// [Result.Report].
	Err error
}

// Complete returns whether the parse succeeded and accounted for every code
// token of the input. Under the greedy modes, a complete parse may still
// contain [cst.Unparsable] nodes.
func (r Result) Complete() bool {
	return r.Err == nil && !r.Tokens.HasCode(r.End, len(r.Tokens))
}

// Report returns the diagnostics for this result, which is empty on
// success.
func (r Result) Report() report.Report {
	var rep report.Report
	if r.Err == nil {
		return rep
	}
	rep.Add(r.Err, report.Error)
	return rep
}

// Parse parses tokens against the rule named rule.
//
// The result's tree is a Ref node for rule. A parse that stops before the
// end of tokens is not an error; use [Result.Complete] to check for that.
func Parse(d dialect.Dialect, rule string, in Input, opts ...parser.Option) Result {
	opts = append(opts[:len(opts):len(opts)], parser.WithPath(in.Path))
	p := parser.New(d, in.Tokens, opts...)
	tree, err := p.Parse(rule)
	return Result{
		Input: in,
		Tree:  tree,
		End:   p.Pos(),
		Stats: p.Stats(),
		Err:   err,
	}
}

// Batch parses many independent inputs against the same rule.
//
// Each input gets a parser of its own; the only thing they share is the
// dialect, which must not be modified while a batch runs.
type Batch struct {
	Dialect dialect.Dialect
	// The rule every input is parsed as. Required.
	Rule string
	// Options for every parser in the batch.
	Options []parser.Option

	// The maximum number of inputs to parse at once. If unspecified or set
	// to a non-positive value, min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
}

// ParseAll parses every input, returning one result per input in the same
// order.
//
// A failed parse is reported in its [Result], and does not stop the others.
// An error is returned only if ctx ends before every input is parsed, in
// which case the results are discarded.
func (b *Batch) ParseAll(ctx context.Context, inputs ...Input) ([]Result, error) {
	if b.Rule == "" {
		return nil, errors.New("sqlparse: batch has no rule")
	}
	if len(inputs) == 0 {
		return nil, nil
	}

	par := b.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))

	results := make([]Result, len(inputs))
	grp, ctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Already-started parses still finish; wait for them so that
			// none outlive this call.
			_ = grp.Wait()
			return nil, err
		}
		grp.Go(func() error {
			defer sem.Release(1)
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Parse(b.Dialect, b.Rule, in, b.Options...)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
