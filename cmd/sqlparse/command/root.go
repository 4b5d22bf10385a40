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

// Package command implements the sqlparse command line.
package command

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bufbuild/sqlparse/dialect"
	"github.com/bufbuild/sqlparse/parser"
)

// EnvPrefix is the prefix of environment variables that set flags: for
// example, SQLPARSE_ENGINE sets --engine.
const EnvPrefix = "SQLPARSE"

// config is the configuration shared by every subcommand. Flags,
// environment variables and the config file are merged by v.
type config struct {
	v *viper.Viper
}

// Root returns the root command, with every subcommand attached.
func Root() *cobra.Command {
	c := &config{v: viper.New()}

	root := &cobra.Command{
		Use:   "sqlparse",
		Short: "Parse SQL into concrete syntax trees",
		Long: `sqlparse matches SQL against a dialect grammar and prints the resulting
concrete syntax tree.

Configuration:
  Every flag may also be set by an environment variable named after it,
  such as SQLPARSE_ENGINE for --engine, or by a key of the same name in a
  config file. The config file is the one named by --config, or else
  sqlparse.yaml in the current directory, if it exists.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flag errors have been reported by now; anything else is not a
			// usage problem.
			cmd.SilenceUsage = true
			return c.load(cmd.Flags())
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to a config file")
	flags.String("dialect", "", "path to a YAML dialect; the built-in ANSI dialect if unset")

	root.AddCommand(parseCommand(c), grammarCommand(c))
	root.SetErrPrefix("sqlparse:")
	return root
}

// load merges flags, environment and config file.
func (c *config) load(flags *pflag.FlagSet) error {
	v := c.v
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}

	v.SetConfigName("sqlparse")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// dialect loads the configured dialect.
func (c *config) dialect() (*dialect.Table, error) {
	path := c.v.GetString("dialect")
	if path == "" {
		return dialect.ANSI(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := dialect.Load(f, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// parserOptions returns the parser options the configuration selects.
// Trace output, if enabled, goes to stderr.
func (c *config) parserOptions(stderr io.Writer) ([]parser.Option, error) {
	v := c.v
	var opts []parser.Option

	if name := v.GetString("engine"); name != "" {
		engine, ok := parser.ParseEngine(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown engine %q", name)
		}
		opts = append(opts, parser.WithEngine(engine))
	}
	if n := v.GetInt("max-iterations"); n > 0 {
		opts = append(opts, parser.WithMaxIterations(n))
	}
	if n := v.GetInt("max-depth"); n > 0 {
		opts = append(opts, parser.WithMaxDepth(n))
	}
	if v.GetBool("no-cache") {
		opts = append(opts, parser.WithoutCache())
	}
	if v.GetBool("trace") {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, parser.WithLogger(logger))
	}
	return opts, nil
}
