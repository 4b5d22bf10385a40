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

// Package parser matches token streams against dialect grammars, producing
// concrete syntax trees.
//
// There are two engines. [Recursive] is plain recursive descent. [Iterative]
// evaluates the same grammar with an explicit frame stack, so its depth is
// bounded only by memory. Both drive the same matchers over the same cache,
// so their results always agree.
//
// Matching is longest-match among alternatives, with backtracking.
// Under the greedy modes, code a grammar cannot account for before its
// terminators is kept in the tree as an [cst.Unparsable] node rather than
// failing the parse.
package parser

//go:generate go run github.com/bufbuild/sqlparse/internal/enum kind.yaml
