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

// Package report provides a diagnostics framework for the SQL parser.
//
// Errors that know where in a file they happened implement [Diagnose]. A
// [Report] collects them, and a [Renderer] turns a Report into text for a
// user, either one line per diagnostic or with annotated source snippets.
//
// Diagnostics look roughly like this:
//
//	error: expected FROM
//	 --> query.sql:1:10
//	  |
//	1 | SELECT a FORM t
//	  |          ^^^^ found "FORM"
//	  = note: while parsing SelectStatementSegment
package report
