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
	"slices"
	"strings"
	"sync"
)

// File is a source file that diagnostics can point into.
type File struct {
	Path string
	Text string

	once  sync.Once
	lines []int // Byte offset of the start of each line.
}

// NewFile returns a new file.
func NewFile(path, text string) *File {
	return &File{Path: path, Text: text}
}

// Location is a user-displayable position in a file.
type Location struct {
	// The byte offset of this location.
	Offset int

	// The 1-indexed line and column. The column is measured in terminal
	// cells, with tabs expanded to [TabstopWidth].
	Line, Column int
}

// Span is a range of bytes in a [File].
type Span struct {
	File       *File
	Start, End int
}

// Nil returns whether this span has no file.
func (s Span) Nil() bool {
	return s.File == nil
}

// Text returns the text of this span.
func (s Span) Text() string {
	return s.File.Text[s.Start:s.End]
}

// StartLoc returns the location of the start of this span.
func (s Span) StartLoc() Location {
	return s.File.Location(s.Start)
}

// EndLoc returns the location of the end of this span.
func (s Span) EndLoc() Location {
	return s.File.Location(s.End)
}

// Location converts a byte offset into a [Location].
func (f *File) Location(offset int) Location {
	offset = min(max(offset, 0), len(f.Text))
	f.once.Do(f.index)

	// The line containing offset is the last line starting at or before it.
	line, found := slices.BinarySearch(f.lines, offset)
	if !found {
		line--
	}
	start := f.lines[line]
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: stringWidth(0, f.Text[start:offset]) + 1,
	}
}

// Line returns the text of the given 1-indexed line, without its line
// ending.
func (f *File) Line(line int) string {
	f.once.Do(f.index)
	start := f.lines[line-1]
	end := len(f.Text)
	if line < len(f.lines) {
		end = f.lines[line]
	}
	return strings.TrimRight(f.Text[start:end], "\r\n")
}

func (f *File) index() {
	f.lines = []int{0}
	for i := range len(f.Text) {
		if f.Text[i] == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
}
