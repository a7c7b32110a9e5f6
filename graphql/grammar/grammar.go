/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package grammar builds the GraphQL query language grammar from the combinators in package
// combinator. The parsers it produces yield CST nodes (see package cst) tagged with the name of the
// rule that matched them.
package grammar

import (
	. "github.com/mattfenwick/graphqllint/graphql/combinator"
)

// Options controls the grammar variant to build.
type Options struct {
	// If enabled, the grammar accepts variable definitions on fragments:
	//
	//	fragment A($var: Boolean = false) on T  {
	//		...
	//	}
	//
	// Note: this feature is experimental and may change or be removed in the future.
	FragmentVariables bool
}

// Grammar holds the entry parsers of a built grammar. Each of them skips leading trivia and
// requires the construct to extend to the end of input. A Grammar is immutable and may be used
// from multiple goroutines.
type Grammar struct {
	options Options

	// Document parses an executable document into a CST node tagged "document".
	Document Parser

	// Value parses a single input value (e.g., `[1, 2]` or `{ a: $b }`).
	Value Parser

	// Type parses a single type reference (e.g., `[String!]!`).
	Type Parser
}

// New builds the grammar for the given options.
func New(options Options) *Grammar {
	rules := newRules(options)
	return &Grammar{
		options:  options,
		Document: rules.entry(rules.document),
		Value:    rules.entry(rules.value.Parse),
		Type:     rules.entry(rules.typ.Parse),
	}
}

// Options returns the options the grammar was built with.
func (g *Grammar) Options() Options {
	return g.options
}
