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

import "fmt"

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Internal error. Indicates a defect in the parser or in a grammar,
	// never a problem with the input.
	ICE Level = 1 + iota
	// Red. The input could not be parsed.
	Error
	// Yellow. Something that should probably not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case ICE:
		return "internal error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The kind of diagnostic this is, which affects how and whether it is
	// shown to users.
	Level Level

	// The file this diagnostic occurs in, if it has no associated
	// annotations.
	InFile string

	// Annotated source code spans in the diagnostic. The first is the
	// primary annotation.
	Annotations []Annotation

	// Notes and help messages to include at the end of the diagnostic,
	// after the annotations.
	Notes, Help []string
}

// Annotation marks a span of a file, with an optional message.
type Annotation struct {
	Span
	Message string
	Primary bool
}

// Primary returns this diagnostic's primary annotation, if it has one.
//
// If it doesn't have one, it returns a dummy annotation referring to InFile.
func (d *Diagnostic) Primary() Annotation {
	for _, a := range d.Annotations {
		if a.Primary {
			return a
		}
	}
	return Annotation{Span: Span{File: &File{Path: d.InFile}}, Primary: true}
}

// With applies the given options to this diagnostic.
func (d *Diagnostic) With(options ...DiagnosticOption) {
	for _, option := range options {
		option(d)
	}
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// InFile returns a DiagnosticOption that causes a diagnostic without a
// primary span to mention the given file.
func InFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.InFile = path }
}

// Snippet adds an annotated span to a diagnostic. The first annotation
// added is the primary one.
func Snippet(span Span) DiagnosticOption {
	return Snippetf(span, "")
}

// Snippetf is like [Snippet], with a message under the span.
func Snippetf(span Span, format string, args ...any) DiagnosticOption {
	a := Annotation{Span: span, Message: fmt.Sprintf(format, args...)}
	return func(d *Diagnostic) {
		if span.File == nil {
			return
		}
		a.Primary = len(d.Annotations) == 0
		d.Annotations = append(d.Annotations, a)
	}
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful
// prose suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Help = append(d.Help, fmt.Sprintf(format, args...))
	}
}
