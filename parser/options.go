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

package parser

import (
	"log/slog"
	"os"
	"strings"
)

const (
	// DefaultMaxIterations bounds the number of frame steps the iterative
	// engine takes in one top-level parse.
	DefaultMaxIterations = 4_000_000

	// DefaultMaxDepth bounds the nesting of grammar evaluations in the
	// recursive engine.
	DefaultMaxDepth = 10_000

	// EngineEnv names the environment variable that selects the default
	// [Engine], by its string form.
	EngineEnv = "SQLPARSE_ENGINE"
)

// BracketPair is a pair of raw token texts that nest.
type BracketPair struct {
	Open, Close string
}

// DefaultBrackets are the pairs skipped over when scanning for terminators.
var DefaultBrackets = []BracketPair{{"(", ")"}, {"[", "]"}, {"{", "}"}}

// Options configures a [Parser]. The zero value of every field means its
// default.
type Options struct {
	Engine Engine

	MaxIterations int
	MaxDepth      int

	// Brackets nest when scanning ahead for terminators and closing
	// brackets.
	Brackets []BracketPair

	// If set, and enabled at debug level, parser progress is traced here.
	Logger *slog.Logger

	// Disables the parse cache. Results are unchanged.
	NoCache bool

	// The path reported in diagnostics.
	Path string

	engineSet bool
}

// Option is an option for [New].
type Option func(*Options)

// WithOptions replaces every option with o. A non-zero o.Engine counts as
// selecting an engine explicitly.
func WithOptions(o Options) Option {
	return func(opts *Options) {
		set := opts.engineSet || o.engineSet || o.Engine != Iterative
		*opts = o
		opts.engineSet = set
	}
}

// WithEngine selects the evaluator. Without this option, the engine named by
// [EngineEnv] is used, or [Iterative] if it is unset.
func WithEngine(engine Engine) Option {
	return func(opts *Options) {
		opts.Engine = engine
		opts.engineSet = true
	}
}

// WithMaxIterations sets the frame step limit of the iterative engine.
func WithMaxIterations(n int) Option {
	return func(opts *Options) { opts.MaxIterations = n }
}

// WithMaxDepth sets the nesting limit of the recursive engine, and of
// terminator lookahead under either engine.
func WithMaxDepth(n int) Option {
	return func(opts *Options) { opts.MaxDepth = n }
}

// WithBrackets sets the bracket pairs that nest.
func WithBrackets(pairs ...BracketPair) Option {
	return func(opts *Options) { opts.Brackets = pairs }
}

// WithLogger sets the trace logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) { opts.Logger = logger }
}

// WithoutCache disables the parse cache.
func WithoutCache() Option {
	return func(opts *Options) { opts.NoCache = true }
}

// WithPath sets the path reported in diagnostics.
func WithPath(path string) Option {
	return func(opts *Options) { opts.Path = path }
}

func (o *Options) fill() {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Brackets == nil {
		o.Brackets = DefaultBrackets
	}
	if !o.engineSet {
		if e, ok := ParseEngine(strings.ToLower(strings.TrimSpace(os.Getenv(EngineEnv)))); ok {
			o.Engine = e
		}
	}
}
