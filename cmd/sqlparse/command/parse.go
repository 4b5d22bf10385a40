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

package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/sqlparse"
	"github.com/bufbuild/sqlparse/cst"
	"github.com/bufbuild/sqlparse/report"
	"github.com/bufbuild/sqlparse/token"
)

// stdinPath is the path reported for input read from stdin.
const stdinPath = "<stdin>"

func parseCommand(c *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse SQL files and print their syntax trees",
		Long: `Parse each file as the rule given by --rule, and print its syntax tree.
With no files, or a file named -, SQL is read from stdin.

Files are parsed in parallel. Files that fail to parse, or that parse only
partially, are reported as diagnostics on stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.String("rule", "FileSegment", "rule to parse each file as")
	flags.String("engine", "", "evaluator to use: iterative or recursive")
	flags.String("format", "tree", "output format: tree, yaml or none")
	flags.Bool("tokens", false, "read files as YAML token streams rather than SQL text")
	flags.Int("max-iterations", 0, "frame step limit of the iterative engine")
	flags.Int("max-depth", 0, "nesting limit of the recursive engine")
	flags.Bool("no-cache", false, "disable the parse cache")
	flags.Bool("trace", false, "trace parser progress to stderr")
	flags.Int("parallelism", 0, "maximum number of files to parse at once")
	flags.Bool("compact", false, "render each diagnostic on a single line")
	flags.Bool("color", false, "colorize diagnostics")
	return cmd
}

func (c *config) runParse(cmd *cobra.Command, args []string) error {
	v := c.v
	format := v.GetString("format")
	switch format {
	case "tree", "yaml", "none":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	d, err := c.dialect()
	if err != nil {
		return err
	}
	opts, err := c.parserOptions(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([]sqlparse.Input, 0, len(args))
	for _, path := range args {
		in, err := readInput(cmd.InOrStdin(), path, v.GetBool("tokens"))
		if err != nil {
			return err
		}
		inputs = append(inputs, in)
	}

	batch := &sqlparse.Batch{
		Dialect:        d,
		Rule:           v.GetString("rule"),
		Options:        opts,
		MaxParallelism: v.GetInt("parallelism"),
	}
	results, err := batch.ParseAll(cmd.Context(), inputs...)
	if err != nil {
		return err
	}

	var (
		rep    report.Report
		failed int
	)
	pr := &printer{out: cmd.OutOrStdout(), format: format, header: len(results) > 1}
	for _, res := range results {
		switch {
		case res.Err != nil:
			rep = append(rep, res.Report()...)
			failed++
			continue
		case !res.Complete():
			rep.Errorf("%s: parse stopped at token %d of %d", res.Path, res.End, len(res.Tokens))
			failed++
		}
		if err := pr.print(res); err != nil {
			return err
		}
	}
	if err := pr.close(); err != nil {
		return err
	}

	r := report.Renderer{Compact: v.GetBool("compact"), Colorize: v.GetBool("color")}
	if _, _, err := r.Render(rep, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs did not parse", failed, len(results))
	}
	return nil
}

func readInput(stdin io.Reader, path string, tokens bool) (sqlparse.Input, error) {
	in := sqlparse.Input{Path: path}

	r := stdin
	if path == "-" {
		in.Path = stdinPath
	} else {
		f, err := os.Open(path)
		if err != nil {
			return in, err
		}
		defer f.Close()
		r = f
	}

	if tokens {
		stream, err := token.Load(r)
		if err != nil {
			return in, fmt.Errorf("%s: %w", in.Path, err)
		}
		in.Tokens = stream
		return in, nil
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return in, fmt.Errorf("%s: %w", in.Path, err)
	}
	in.Tokens = token.Scan(string(text))
	return in, nil
}

// printer writes trees in one of the output formats. YAML trees are
// written as a stream of documents, one per input.
type printer struct {
	out    io.Writer
	format string
	header bool
	enc    *yaml.Encoder
}

func (p *printer) print(res sqlparse.Result) error {
	switch p.format {
	case "tree":
		var b strings.Builder
		if p.header {
			fmt.Fprintf(&b, "# %s\n", res.Path)
		}
		b.WriteString(res.Tree.Dump())
		_, err := io.WriteString(p.out, b.String())
		return err

	case "yaml":
		if p.enc == nil {
			p.enc = yaml.NewEncoder(p.out)
			p.enc.SetIndent(2)
		}
		return p.enc.Encode(struct {
			Path string   `yaml:"path"`
			Tree cst.Node `yaml:"tree"`
		}{res.Path, res.Tree})
	}
	return nil
}

func (p *printer) close() error {
	if p.enc == nil {
		return nil
	}
	return p.enc.Close()
}
