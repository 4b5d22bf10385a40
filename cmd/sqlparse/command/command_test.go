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

package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/sqlparse/cmd/sqlparse/command"
)

// run executes the command line args with stdin as input.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := command.Root()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestParseFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.sql", "SELECT a FROM t;")
	b := writeFile(t, dir, "b.sql", "DELETE FROM t WHERE x = 1;")

	out, _, err := run(t, "", "parse", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "# "+a+"\n")
	assert.Contains(t, out, "# "+b+"\n")
	assert.Contains(t, out, "ref FileSegment (file)")
	assert.Contains(t, out, "ref DeleteStatementSegment")

	// A single input gets no header.
	out, _, err = run(t, "", "parse", "--engine", "recursive", a)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ref FileSegment (file)\n"), out)
}

func TestParseStdinYAML(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "SELECT 1;", "parse", "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Path string `yaml:"path"`
		Tree struct {
			Kind string `yaml:"kind"`
			Name string `yaml:"name"`
		} `yaml:"tree"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "<stdin>", doc.Path)
	assert.Equal(t, "ref", doc.Tree.Kind)
	assert.Equal(t, "FileSegment", doc.Tree.Name)
}

func TestParseTokens(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "q.yaml", `
- {raw: SELECT, type: word, code: true}
- {raw: " ", type: whitespace}
- {raw: x, type: word, code: true}
`)
	out, _, err := run(t, "", "parse", "--tokens", "--rule", "SelectClauseSegment", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ref SelectClauseSegment")
	assert.Contains(t, out, `"x" @2`)
}

func TestParseFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "bad.sql", "FROM t;")

	out, errOut, err := run(t, "", "parse", "--compact", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 inputs did not parse")
	assert.Empty(t, out)
	assert.Contains(t, errOut, "error: "+path+":1:1: ")
}

func TestParseBadFlags(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "SELECT 1;", "parse", "--engine", "quantum")
	require.ErrorContains(t, err, `unknown engine "quantum"`)

	_, _, err = run(t, "SELECT 1;", "parse", "--format", "xml")
	require.ErrorContains(t, err, `unknown format "xml"`)

	_, _, err = run(t, "", "parse", filepath.Join(t.TempDir(), "missing.sql"))
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := writeFile(t, dir, "sqlparse.yaml", "format: none\nengine: recursive\nno-cache: true\n")
	out, _, err := run(t, "SELECT a FROM t;", "parse", "--config", config)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, _, err = run(t, "", "parse", "--config", filepath.Join(dir, "nope.yaml"))
	require.ErrorContains(t, err, "reading config")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("SQLPARSE_RULE", "StatementSegment")
	t.Setenv("SQLPARSE_MAX_ITERATIONS", "100000")

	out, _, err := run(t, "SELECT a", "parse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ref StatementSegment (statement)\n"), out)
}

func TestTrace(t *testing.T) {
	t.Parallel()

	_, errOut, err := run(t, "SELECT 1;", "parse", "--format", "none", "--trace", "--engine", "iterative")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "frame=")
}

const badDialect = `
name: broken
rules:
  FileSegment:
    sequence: [{symbol: x}, NoSuchSegment]
`

func TestGrammarCheck(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "grammar", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "dialect ansi: ")
	assert.Contains(t, out, " rules ok\n")

	path := writeFile(t, t.TempDir(), "broken.yaml", badDialect)
	_, errOut, err := run(t, "", "grammar", "check", "--dialect", path)
	require.ErrorContains(t, err, "dialect broken has 1 problem(s)")
	assert.Contains(t, errOut, "rule FileSegment: reference to undefined rule NoSuchSegment")
}

func TestGrammarShow(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "grammar", "show", "SelectStatementSegment")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "SelectStatementSegment (select_statement) = "), out)

	_, _, err = run(t, "", "grammar", "show", "NoSuchSegment")
	require.ErrorContains(t, err, "has no rule NoSuchSegment")
}
