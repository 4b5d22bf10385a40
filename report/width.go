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

package report

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// stringWidth calculates the rendered width of text if placed at the given
// column, accounting for tabstops.
func stringWidth(column int, text string) int {
	// uniseg.StringWidth alone does not respect tabstops.
	for text != "" {
		chunk, rest, tab := strings.Cut(text, "\t")
		column += uniseg.StringWidth(chunk)
		if tab {
			column += TabstopWidth - (column % TabstopWidth)
		}
		text = rest
	}
	return column
}

// expandTabs replaces tabs in text with spaces, using the same stops as
// stringWidth, so that carets line up under the rendered text.
func expandTabs(text string) string {
	if !strings.Contains(text, "\t") {
		return text
	}
	var b strings.Builder
	column := 0
	for text != "" {
		chunk, rest, tab := strings.Cut(text, "\t")
		b.WriteString(chunk)
		column += uniseg.StringWidth(chunk)
		if tab {
			n := TabstopWidth - (column % TabstopWidth)
			b.WriteString(strings.Repeat(" ", n))
			column += n
		}
		text = rest
	}
	return b.String()
}
