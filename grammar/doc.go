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

// Package grammar provides the declarative grammar representation consumed
// by the SQL parser.
//
// Grammars are stored in a [Set] and addressed by [ID]. A Set is
// hash-consed: building a structurally identical grammar twice yields the
// same ID, so an ID doubles as the grammar's structural identity. Rule cycles
// are broken with references by name ([Set.Ref]), which the parser resolves
// through a dialect.
//
// Sets are built once and then only read. Reads are safe from multiple
// goroutines; construction is not.
package grammar

//go:generate go run github.com/bufbuild/sqlparse/internal/enum kind.yaml
