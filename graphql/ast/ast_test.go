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

package ast_test

import (
	"github.com/mattfenwick/graphqllint/graphql/ast"
	"github.com/mattfenwick/graphqllint/graphql/parser"
	"github.com/mattfenwick/graphqllint/graphql/token"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func parseValue(s string) ast.Value {
	value, err := parser.ParseValue(token.NewSourceFromString(s))
	ExpectWithOffset(1, err).ShouldNot(HaveOccurred())
	return value
}

var _ = Describe("Value", func() {
	table.DescribeTable("Interface",
		func(literal string, expected interface{}) {
			Expect(parseValue(literal).Interface()).Should(Equal(expected))
		},
		table.Entry("int", "-12", int64(-12)),
		table.Entry("float", "0.25", float64(0.25)),
		table.Entry("exponent without fraction", "1e3", float64(1000)),
		table.Entry("string", `"x"`, "x"),
		table.Entry("boolean", "true", true),
		table.Entry("enum", "SOUTH", "SOUTH"),
		table.Entry("list", "[1, [null]]", []interface{}{int64(1), []interface{}{nil}}),
		table.Entry("object", `{a: "b"}`, map[string]interface{}{"a": "b"}),
		table.Entry("variable", "$v", "v"),
	)

	It("distinguishes IntValue from FloatValue", func() {
		Expect(parseValue("10").(ast.NumberValue).IsInt()).Should(BeTrue())
		Expect(parseValue("10.0").(ast.NumberValue).IsInt()).Should(BeFalse())
		Expect(parseValue("10e0").(ast.NumberValue).IsInt()).Should(BeFalse())
	})

	It("parses the literal of a number into float", func() {
		f, err := parseValue("-0").(ast.NumberValue).FloatValue()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(f).Should(BeZero())
		Expect(parseValue("-0").(ast.NumberValue).Negative).Should(BeTrue())
	})
})

var _ = Describe("Document", func() {
	It("resolves operation type of a query shorthand", func() {
		operation := parse("{ a }").Definitions[0].(*ast.OperationDefinition)
		Expect(operation.IsQueryShorthand()).Should(BeTrue())
		Expect(operation.OperationType()).Should(Equal(ast.OperationTypeQuery))
	})

	It("provides response key of fields", func() {
		operation := parse("{ a b: c }").Definitions[0].(*ast.OperationDefinition)
		selections := operation.GetSelectionSet().Selections
		Expect(selections[0].(*ast.Field).ResponseKey()).Should(Equal("a"))
		Expect(selections[1].(*ast.Field).ResponseKey()).Should(Equal("b"))
	})

	It("reports ranges of nodes", func() {
		document := parse("fragment F on T @d { a }")
		fragment := document.Definitions[0].(*ast.FragmentDefinition)
		Expect(fragment.Range()).Should(Equal(document.Range()))
		Expect(fragment.TypeCondition.Range()).Should(Equal(fragment.TypeCondition.Name.Loc))
		Expect(fragment.GetDirectives()).Should(HaveLen(1))
		Expect(fragment.GetDirectives()[0].Range().Start.Column).Should(Equal(uint(17)))
		Expect(fragment.GetSelectionSet().Range().End.Column).Should(Equal(uint(25)))
	})
})
