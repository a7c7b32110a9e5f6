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

// Package parser provides the entry points that turn GraphQL source text into a CST or an AST.
package parser

import (
	"fmt"

	"github.com/mattfenwick/graphqllint/graphql"
	"github.com/mattfenwick/graphqllint/graphql/ast"
	"github.com/mattfenwick/graphqllint/graphql/astbuilder"
	"github.com/mattfenwick/graphqllint/graphql/combinator"
	"github.com/mattfenwick/graphqllint/graphql/cst"
	"github.com/mattfenwick/graphqllint/graphql/grammar"
	"github.com/mattfenwick/graphqllint/graphql/token"
	"github.com/mattfenwick/graphqllint/internal/util"
)

// ParseOptions contains configuration options to control parser behavior.
type ParseOptions struct {
	// EXPERIMENTAL:
	//
	// If enabled, the parser will understand and parse variable definitions contained in a fragment
	// definition. They'll be represented in the `VariableDefinitions` field of the
	// FragmentDefinition.
	//
	// The syntax is identical to normal, query-defined variables. For example:
	//
	//   fragment A($var: Boolean = false) on T  {
	//     ...
	//   }
	//
	// Note: this feature is experimental and may change or be removed in the future.
	//
	// See https://github.com/facebook/graphql/issues/204.
	ExperimentalFragmentVariables bool
}

// Grammars are immutable once built and are shared by all parse calls.
var (
	defaultGrammar           = grammar.New(grammar.Options{})
	fragmentVariablesGrammar = grammar.New(grammar.Options{FragmentVariables: true})
)

func (options ParseOptions) grammar() *grammar.Grammar {
	if options.ExperimentalFragmentVariables {
		return fragmentVariablesGrammar
	}
	return defaultGrammar
}

func newNilSourceError() error {
	return graphql.NewError("Must provide Source. Received: nil")
}

// ParseCST parses the given GraphQL source into a "document" CST node. The returned Result is
// always filled: on success its Value is the *cst.Node, and on failure its Err carries the
// diagnostic. The error is non-nil if and only if the parse didn't succeed, in which case it is a
// *graphql.Error of kind ErrKindSyntax, or of kind ErrKindOther when source is nil.
func ParseCST(source *token.Source, options ParseOptions) (combinator.Result, error) {
	if source == nil {
		return combinator.Result{}, newNilSourceError()
	}
	return run(options.grammar().Document, source)
}

// Parse parses the given GraphQL source into a Document.
func Parse(source *token.Source, options ParseOptions) (ast.Document, error) {
	result, err := ParseCST(source, options)
	if err != nil {
		return ast.Document{}, err
	}
	return astbuilder.BuildDocument(result.Value.(*cst.Node))
}

// ParseValue parses the AST for string containing a GraphQL value (e.g., `[42]`).
func ParseValue(source *token.Source) (ast.Value, error) {
	if source == nil {
		return nil, newNilSourceError()
	}

	result, err := run(defaultGrammar.Value, source)
	if err != nil {
		return nil, err
	}
	return astbuilder.BuildValue(result.Value.(*cst.Node))
}

// ParseType parses the AST for string containing a GraphQL Type (e.g., `[Int!]`).
func ParseType(source *token.Source) (ast.Type, error) {
	if source == nil {
		return nil, newNilSourceError()
	}

	result, err := run(defaultGrammar.Type, source)
	if err != nil {
		return nil, err
	}
	return astbuilder.BuildType(result.Value.(*cst.Node))
}

func run(p combinator.Parser, source *token.Source) (combinator.Result, error) {
	result := p.Parse(source)
	if result.Succeeded() {
		return result, nil
	}
	return result, newSyntaxError(source, result.Err)
}

// newSyntaxError describes a parse failure in the form of "Expected <labels>, found <char>". A
// commitment made at the start of a construct (such as "1 or more definitions") is reported only
// when none of the failures it wraps got further into the source; otherwise the furthest one is.
func newSyntaxError(source *token.Source, diagnostic *combinator.Error) error {
	if diagnostic == nil {
		return graphql.NewSyntaxError(source.StartPosition(), "Unexpected input", nil)
	}

	for cause := diagnostic.Cause; cause != nil; cause = cause.Cause {
		if diagnostic.Position.Before(cause.Position) {
			diagnostic = cause
		}
	}

	pos := diagnostic.Position
	found := source.Describe(pos)

	var description string
	if len(diagnostic.Expected) == 0 {
		description = fmt.Sprintf("Unexpected %s", found)
	} else {
		description = fmt.Sprintf("Expected %s, found %s", util.OrList(diagnostic.Expected, 0, false), found)
	}

	return graphql.NewSyntaxError(pos, description, diagnostic)
}
