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
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are intended for a terminal, and ANSI color
	// codes are used.
	Colorize bool
}

// Render renders a diagnostic report.
//
// Returns the number of errors (including internal errors) and warnings in
// the report.
func (r Renderer) Render(report Report, out io.Writer) (errorCount, warningCount int, err error) {
	for i, d := range report {
		switch d.Level {
		case Error, ICE:
			errorCount++
		case Warning:
			warningCount++
		}

		text := r.Diagnostic(d)
		if !r.Compact && i > 0 {
			text = "\n" + text
		}
		if _, err := io.WriteString(out, text); err != nil {
			return errorCount, warningCount, err
		}
	}
	return errorCount, warningCount, nil
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(report Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	errorCount, warningCount, _ = r.Render(report, &buf)
	return buf.String(), errorCount, warningCount
}

// Diagnostic renders a single diagnostic, including its trailing newline.
func (r Renderer) Diagnostic(d Diagnostic) string {
	c := r.colors()
	var out strings.Builder

	message := ""
	if d.Err != nil {
		message = d.Err.Error()
	}
	primary := d.Primary()

	if r.Compact {
		fmt.Fprintf(&out, "%s%s:%s ", c.level(d.Level), d.Level, c.reset)
		if loc := locator(primary); loc != "" {
			out.WriteString(loc + ": ")
		}
		out.WriteString(message)
		out.WriteByte('\n')
		return out.String()
	}

	fmt.Fprintf(&out, "%s%s: %s%s\n", c.level(d.Level), d.Level, message, c.reset)

	// The gutter is wide enough for the largest line number shown.
	gutter := 1
	for _, a := range d.Annotations {
		gutter = max(gutter, len(strconv.Itoa(a.EndLoc().Line)))
	}
	pad := strings.Repeat(" ", gutter)

	if loc := locator(primary); loc != "" {
		fmt.Fprintf(&out, "%s%s--> %s%s\n", pad, c.bar, c.reset, loc)
	}

	for _, a := range d.Annotations {
		start, end := a.StartLoc(), a.EndLoc()
		text := a.File.Line(start.Line)

		// Spans running past the end of their first line are underlined to
		// the end of that line.
		endCol := end.Column
		if end.Line != start.Line {
			endCol = stringWidth(0, text) + 1
		}
		width := max(endCol-start.Column, 1)

		mark := "-"
		color := c.bar
		if a.Primary {
			mark = "^"
			color = c.level(d.Level)
		}

		fmt.Fprintf(&out, "%s %s|%s\n", pad, c.bar, c.reset)
		fmt.Fprintf(&out, "%*d %s|%s %s\n", gutter, start.Line, c.bar, c.reset, expandTabs(text))
		fmt.Fprintf(&out, "%s %s|%s %s%s%s", pad, c.bar, c.reset,
			strings.Repeat(" ", start.Column-1), color, strings.Repeat(mark, width))
		if a.Message != "" {
			out.WriteString(" " + a.Message)
		}
		out.WriteString(c.reset + "\n")
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&out, "%s %s=%s note: %s\n", pad, c.bar, c.reset, note)
	}
	for _, help := range d.Help {
		fmt.Fprintf(&out, "%s %s=%s help: %s\n", pad, c.bar, c.reset, help)
	}
	return out.String()
}

// locator renders path:line:col for an annotation, or just the path if it
// has no span.
func locator(a Annotation) string {
	switch {
	case a.File == nil:
		return ""
	case a.File.Text == "":
		return a.File.Path
	}
	loc := a.StartLoc()
	return fmt.Sprintf("%s:%d:%d", a.File.Path, loc.Line, loc.Column)
}

type stylesheet struct {
	reset, bar string

	ice, err, warning, remark string
}

func (r Renderer) colors() stylesheet {
	if !r.Colorize {
		return stylesheet{}
	}
	return stylesheet{
		reset:   "\033[0m",
		bar:     "\033[1;94m",
		ice:     "\033[1;95m",
		err:     "\033[1;91m",
		warning: "\033[1;93m",
		remark:  "\033[1;96m",
	}
}

func (c stylesheet) level(l Level) string {
	switch l {
	case ICE:
		return c.ice
	case Error:
		return c.err
	case Warning:
		return c.warning
	case Remark:
		return c.remark
	default:
		return ""
	}
}
