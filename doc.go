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

// Package sqlparse parses SQL token streams into concrete syntax trees,
// following the grammar of a SQL dialect.
//
// The work is split across sub-packages, leaves first:
//
//   - [token] holds lexed input.
//   - [grammar] builds the rules a dialect is written in.
//   - [dialect] names those rules, and loads them from YAML.
//   - [parser] matches token streams against rules.
//   - [cst] is the resulting tree.
//   - [report] renders parse failures as diagnostics.
//
// This package ties them together for the common cases: parsing a single
// stream with [Parse], and parsing many independent streams in parallel
// with [Batch.ParseAll].
//
// [token]: https://pkg.go.dev/github.com/bufbuild/sqlparse/token
// [grammar]: https://pkg.go.dev/github.com/bufbuild/sqlparse/grammar
// [dialect]: https://pkg.go.dev/github.com/bufbuild/sqlparse/dialect
// [parser]: https://pkg.go.dev/github.com/bufbuild/sqlparse/parser
// [cst]: https://pkg.go.dev/github.com/bufbuild/sqlparse/cst
// [report]: https://pkg.go.dev/github.com/bufbuild/sqlparse/report
package sqlparse
