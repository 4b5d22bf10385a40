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

package grammar

// Option configures a grammar as it is built, or as it is cloned with
// [Set.Clone].
type Option func(*node)

// Optional marks a grammar as optional. An optional grammar that does not
// match produces no error.
func Optional() Option {
	return func(n *node) { n.optional = true }
}

// Required undoes [Optional].
func Required() Option {
	return func(n *node) { n.optional = false }
}

// AllowGaps sets whether a combinator may skip non-code tokens between its
// elements. Combinators allow gaps by default.
func AllowGaps(allow bool) Option {
	return func(n *node) { n.allowGaps = allow }
}

// WithMode sets the parse mode of a combinator.
func WithMode(mode Mode) Option {
	return func(n *node) { n.mode = mode }
}

// Terminators adds terminators to a grammar. Terminators are inherited by
// every grammar nested inside it.
func Terminators(terms ...ID) Option {
	return func(n *node) { n.terms = append(n.terms[:len(n.terms):len(n.terms)], terms...) }
}

// ResetTerminators makes a grammar discard the terminators it would
// otherwise inherit from its parents.
func ResetTerminators() Option {
	return func(n *node) { n.reset = true }
}

// Min sets the minimum number of matches for [Set.AnyNumberOf] and
// [Set.AnySetOf].
func Min(n int) Option {
	return func(nd *node) { nd.min = n }
}

// Max sets the maximum number of matches for [Set.AnyNumberOf] and
// [Set.AnySetOf]. Zero means unbounded.
func Max(n int) Option {
	return func(nd *node) { nd.max = n }
}

// MaxPerElement bounds how many times any one element of
// [Set.AnyNumberOf] may match. Zero means unbounded.
func MaxPerElement(n int) Option {
	return func(nd *node) { nd.maxPer = n }
}

// AllowTrailing permits a trailing delimiter in [Set.Delimited].
func AllowTrailing() Option {
	return func(n *node) { n.allowTrailing = true }
}

// MinDelimiters sets the minimum number of delimiters [Set.Delimited]
// must match.
func MinDelimiters(n int) Option {
	return func(nd *node) { nd.minDelims = n }
}
