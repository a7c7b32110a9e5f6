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

package combinator

import (
	"github.com/mattfenwick/graphqllint/graphql/token"
)

// Rule is a named, late-bound parser. It allows recursive grammars to refer to a rule before the
// rule's body can be constructed.
//
//	value := combinator.NewRule("value")
//	list := combinator.Node("list", ..., combinator.Field("values", combinator.Many0(value.Parse)), ...)
//	value.Define(combinator.Alt(..., list))
type Rule struct {
	name   string
	parser Parser
}

// NewRule creates a rule with no definition. Until Define is called the rule fails recoverably.
func NewRule(name string) *Rule {
	return &Rule{name: name}
}

// Name of the rule
func (rule *Rule) Name() string {
	return rule.name
}

// Define sets the parser the rule delegates to. It must be called before the grammar is used
// concurrently.
func (rule *Rule) Define(parser Parser) {
	rule.parser = parser
}

// Parse runs the rule's definition. It has the signature of a Parser.
func (rule *Rule) Parse(in Input) Result {
	if rule.parser == nil {
		return failure(NewError(in.pos, rule.name))
	}
	return rule.parser(in)
}

// Parse applies p to the beginning of source.
func (p Parser) Parse(source *token.Source) Result {
	return p(NewInput(source))
}
