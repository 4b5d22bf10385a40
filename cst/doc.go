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

// Package cst defines the concrete syntax tree produced by the parser.
//
// A tree is made of plain [Node] values. Leaves correspond to exactly one
// token and remember its index in the token stream; interior nodes only have
// children. Every token the parser consumed appears in the tree exactly once,
// so [Node.Text] of a root reproduces the text it was parsed from, minus any
// leading or trailing non-code the root did not claim.
package cst

//go:generate go run github.com/bufbuild/sqlparse/internal/enum kind.yaml
