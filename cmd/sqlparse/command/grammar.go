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
	"strings"

	"github.com/spf13/cobra"

	"github.com/bufbuild/sqlparse/dialect"
)

func grammarCommand(c *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Inspect a dialect grammar",
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Verify that a dialect is well formed",
		Long: `Verify that every rule reference in the dialect resolves, and that no
rule can reach a missing grammar.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := c.dialect()
			if err != nil {
				return err
			}
			if err := d.Check(); err != nil {
				var problems []string
				for _, e := range unjoin(err) {
					problems = append(problems, e.Error())
				}
				fmt.Fprintln(cmd.ErrOrStderr(), strings.Join(problems, "\n"))
				return fmt.Errorf("dialect %s has %d problem(s)", d.Name(), len(problems))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dialect %s: %d rules ok\n", d.Name(), len(d.Names()))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show [rule...]",
		Short: "Print the grammar of dialect rules",
		Long:  "Print the grammar of each named rule, or of every rule if none are named.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.dialect()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = d.Names()
			}
			for _, name := range args {
				line, err := describe(d, name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.AddCommand(check, show)
	return cmd
}

func describe(d *dialect.Table, name string) (string, error) {
	id, segType, ok := d.Lookup(name)
	if !ok {
		return "", fmt.Errorf("dialect %s has no rule %s", d.Name(), name)
	}
	if segType != "" {
		name += " (" + segType + ")"
	}
	return name + " = " + d.Grammars().Get(id).String(), nil
}

// unjoin splits an error made by [errors.Join].
func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

