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
	"errors"
	"fmt"
)

// Report is a collection of diagnostics.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) {
	err.Diagnose(r.push(err, Error))
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) {
	err.Diagnose(r.push(err, Warning))
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err Diagnose) {
	err.Diagnose(r.push(err, Remark))
}

// ICE pushes an internal error diagnostic onto this report.
func (r *Report) ICE(err Diagnose) {
	err.Diagnose(r.push(err, ICE))
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Error)
}

// Add pushes an arbitrary error. Errors implementing [Diagnose] describe
// themselves; others become a bare error diagnostic. level is used unless
// the error asks for a different one with a Level() method.
func (r *Report) Add(err error, level Level) {
	if l, ok := err.(interface{ Level() Level }); ok {
		level = l.Level()
	}
	var diag Diagnose
	if errors.As(err, &diag) {
		diag.Diagnose(r.push(err, level))
		return
	}
	r.push(err, level)
}

// Count returns the number of diagnostics at each level.
func (r Report) Count() map[Level]int {
	counts := make(map[Level]int)
	for _, d := range r {
		counts[d.Level]++
	}
	return counts
}

func (r *Report) push(err error, level Level) *Diagnostic {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	return &(*r)[len(*r)-1]
}

// AsError wraps a [Report] as an [error].
type AsError struct {
	Report Report
}

// Error implements [error].
func (e *AsError) Error() string {
	text, _, _ := Renderer{Compact: true}.RenderString(e.Report)
	return text
}
