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

package dialect

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed ansi.yaml
var ansiYAML []byte

// ANSI returns a new copy of the built-in ANSI dialect, in a grammar set of
// its own.
//
// Its root rule is FileSegment, a list of statements separated by
// semicolons.
func ANSI() *Table {
	t, err := Load(bytes.NewReader(ansiYAML), nil)
	if err != nil {
		panic(fmt.Sprintf("dialect: built-in ansi dialect is invalid: %v", err))
	}
	return t
}
