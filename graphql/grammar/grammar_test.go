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

package grammar_test

import (
	"github.com/mattfenwick/graphqllint/graphql/combinator"
	"github.com/mattfenwick/graphqllint/graphql/cst"
	"github.com/mattfenwick/graphqllint/graphql/grammar"
	"github.com/mattfenwick/graphqllint/graphql/token"
	"github.com/mattfenwick/graphqllint/internal/testutil"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

func parse(p combinator.Parser, body string) combinator.Result {
	return p.Parse(token.NewSourceFromString(body))
}

// MatchFailure matches a failed Result whose error is at the given line and column.
func MatchFailure(fatal bool, line, column uint, expected types.GomegaMatcher) types.GomegaMatcher {
	status := combinator.StatusFailure
	if fatal {
		status = combinator.StatusFatal
	}
	return gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
		"Status": Equal(status),
		"Err": gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
			"Position": gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
				"Line":   Equal(line),
				"Column": Equal(column),
			}),
			"Expected": expected,
		})),
	})
}

func mustParse(p combinator.Parser, body string) *cst.Node {
	result := parse(p, body)
	ExpectWithOffset(1, result.Succeeded()).Should(BeTrue(), "parse %q: %v", body, result.Err)
	return result.Value.(*cst.Node)
}

var _ = Describe("Grammar", func() {
	g := grammar.New(grammar.Options{})

	Describe("Document", func() {
		It("rejects an empty document", func() {
			Expect(parse(g.Document, "")).Should(MatchFailure(true, 1, 1,
				Equal([]string{"1 or more definitions"})))
			Expect(parse(g.Document, "  # nothing\n")).Should(MatchFailure(true, 2, 1,
				Equal([]string{"1 or more definitions"})))
		})

		It("parses a query shorthand", func() {
			document := mustParse(g.Document, "\uFEFF# comment\r\n,{ a,, b # trailing\r c\n}\n")
			Expect(document.Start).Should(Equal(token.Position{Offset: 15, Line: 2, Column: 2}))
			Expect(document.End).Should(Equal(token.Position{Offset: 38, Line: 4, Column: 2}))

			selections := document.Children("definitions")[0].Child("value").Children("selections")
			Expect(selections).Should(HaveLen(3))
			Expect(selections[2].Child("value").Child("name").Text()).Should(Equal("c"))
			Expect(selections[2].Start).Should(Equal(token.Position{Offset: 35, Line: 3, Column: 2}))
		})

		It("parses an operation with variables", func() {
			document := mustParse(g.Document, "query Q($x: Int = 1) { field(arg: $x) }")
			definitions := document.Children("definitions")
			Expect(definitions).Should(HaveLen(1))

			operation := definitions[0].Child("value")
			Expect(operation.Tag).Should(Equal(cst.TagOperationDefinition))
			Expect(operation.Child("operationType").Text()).Should(Equal("query"))
			Expect(operation.Child("name").Text()).Should(Equal("Q"))
			Expect(operation.Get("directives")).Should(BeEmpty())

			variables := operation.Child("variableDefinitions").Children("definitions")
			Expect(variables).Should(HaveLen(1))
			Expect(variables[0].Child("variable").Child("name").Text()).Should(Equal("x"))
			Expect(variables[0].Child("type").Child("baseType").Text()).Should(Equal("Int"))
			Expect(variables[0].Child("type").Get("bang")).Should(BeNil())
			defaultValue := variables[0].Child("defaultValue").Child("value")
			Expect(defaultValue.Tag).Should(Equal(cst.TagNumber))
			Expect(defaultValue.Text()).Should(Equal("1"))

			selections := operation.Child("selectionSet").Children("selections")
			Expect(selections).Should(HaveLen(1))
			field := selections[0].Child("value")
			Expect(field.Tag).Should(Equal(cst.TagField))
			Expect(field.Get("alias")).Should(BeNil())
			Expect(field.Child("name").Text()).Should(Equal("field"))
			Expect(field.Get("directives")).Should(BeEmpty())
			Expect(field.Get("selectionSet")).Should(BeNil())

			arguments := field.Child("arguments").Children("arguments")
			Expect(arguments).Should(HaveLen(1))
			Expect(arguments[0].Child("name").Text()).Should(Equal("arg"))
			Expect(arguments[0].Child("value").Tag).Should(Equal(cst.TagVariable))
			Expect(arguments[0].Child("value").Child("name").Text()).Should(Equal("x"))
		})

		It("excludes trailing trivia from node ranges", func() {
			document := mustParse(g.Document, "{ abc   }")
			field := document.Children("definitions")[0].Child("value").Children("selections")[0]
			Expect(field.Start.Column).Should(Equal(uint(3)))
			Expect(field.End.Column).Should(Equal(uint(6)))
		})

		Context("with fragment variables", func() {
			query := "fragment F($a: Int = 1) on T { x(a: $a) }"

			It("rejects fragment variables by default", func() {
				Expect(parse(g.Document, query)).Should(MatchFailure(true, 1, 11,
					Equal([]string{"type condition"})))
			})

			It("accepts fragment variables when enabled", func() {
				g := grammar.New(grammar.Options{FragmentVariables: true})
				Expect(g.Options().FragmentVariables).Should(BeTrue())

				document := mustParse(g.Document, query)
				fragment := document.Children("definitions")[0].Child("value")
				Expect(fragment.Child("variableDefinitions").Children("definitions")).Should(HaveLen(1))
			})
		})
	})

	Describe("Value", func() {
		table.DescribeTable("accepts numbers",
			func(text string) {
				value := mustParse(g.Value, text)
				Expect(value.Tag).Should(Equal(cst.TagNumber))
				Expect(value.Text()).Should(Equal(text))
			},
			table.Entry("zero", "0"),
			table.Entry("negative zero", "-0"),
			table.Entry("integer", "123"),
			table.Entry("negative float", "-1.5"),
			table.Entry("exponent", "1e10"),
			table.Entry("fraction and signed exponent", "1.5E-3"),
		)

		It("rejects leading zeros", func() {
			Expect(parse(g.Value, "01")).Should(MatchFailure(false, 1, 2, ContainElement("end of number")))
			Expect(parse(g.Value, "1.5.")).Should(MatchFailure(false, 1, 4, ContainElement("end of number")))
		})

		It("requires digits after the decimal point", func() {
			Expect(parse(g.Value, "1.")).Should(MatchFailure(true, 1, 3, Equal([]string{"digits"})))
		})

		It("requires digits in the exponent", func() {
			Expect(parse(g.Value, "1e+")).Should(MatchFailure(true, 1, 4, Equal([]string{"digits"})))
		})

		It("parses keywords as booleans and null", func() {
			Expect(mustParse(g.Value, "true").Tag).Should(Equal(cst.TagBoolean))
			Expect(mustParse(g.Value, "false").Tag).Should(Equal(cst.TagBoolean))
			Expect(mustParse(g.Value, "null").Tag).Should(Equal(cst.TagNull))
		})

		It("parses other names as enums", func() {
			for _, text := range []string{"JEDI", "trueish", "nullable", "on"} {
				value := mustParse(g.Value, text)
				Expect(value.Tag).Should(Equal(cst.TagEnum))
				Expect(value.Text()).Should(Equal(text))
			}
		})

		It("parses strings", func() {
			value := mustParse(g.Value, `"a\"\u00e9\n"`)
			Expect(value.Tag).Should(Equal(cst.TagString))
			Expect(value.Text()).Should(Equal(`"a\"\u00e9\n"`))

			body := value.Children("body")
			Expect(body).Should(HaveLen(4))
			Expect(body[0].Tag).Should(Equal(cst.TagPlainChar))
			Expect(body[1].Tag).Should(Equal(cst.TagSimpleEscape))
			Expect(body[2].Tag).Should(Equal(cst.TagUnicodeEscape))
			Expect(body[3].Tag).Should(Equal(cst.TagSimpleEscape))
		})

		It("rejects unknown escapes", func() {
			Expect(parse(g.Value, `"\x"`)).Should(MatchFailure(true, 1, 3, Equal([]string{"escape character"})))
		})

		It("parses lists and objects", func() {
			value := mustParse(g.Value, `[1, "two", { three: [$four] }, []]`)
			Expect(value.Tag).Should(Equal(cst.TagList))
			values := value.Children("values")
			Expect(values).Should(HaveLen(4))
			Expect(values[2].Tag).Should(Equal(cst.TagObject))
			Expect(values[2].Children("fields")[0].Child("name").Text()).Should(Equal("three"))
			Expect(values[3].Children("values")).Should(BeEmpty())
		})

		It("requires a name after $", func() {
			Expect(parse(g.Value, "$1")).Should(MatchFailure(true, 1, 2, Equal([]string{"name"})))
		})
	})

	Describe("Type", func() {
		It("parses nested types", func() {
			typ := mustParse(g.Type, "[String!]!")
			Expect(typ.Tag).Should(Equal(cst.TagType))
			Expect(typ.Get("bang")).Should(Equal("!"))

			list := typ.Child("baseType")
			Expect(list.Tag).Should(Equal(cst.TagListType))
			Expect(list.Child("type").Get("bang")).Should(Equal("!"))
			Expect(list.Child("type").Child("baseType").Text()).Should(Equal("String"))
		})

		It("requires closing bracket", func() {
			Expect(parse(g.Type, "[String")).Should(MatchFailure(true, 1, 8, Equal([]string{`"]"`})))
		})
	})

	Describe("Diagnostics", func() {
		It("commits to arguments after an opening parenthesis", func() {
			Expect(parse(g.Document, "{ field(")).Should(MatchFailure(true, 1, 9,
				Equal([]string{"1 or more arguments"})))
		})

		It("reports a malformed unicode escape at the escape", func() {
			Expect(parse(g.Document, `{ field(a: "\u00) }`)).Should(MatchFailure(true, 1, 15,
				Equal([]string{"4 hex digits"})))
		})

		It("reports an unterminated string at the end of input", func() {
			Expect(parse(g.Document, `{ field(a: "abc) }`)).Should(MatchFailure(true, 1, 19,
				Equal([]string{"closing quote"})))
		})

		It("reports an unclosed selection set", func() {
			Expect(parse(g.Document, "{ a { b }")).Should(MatchFailure(true, 1, 10,
				Equal([]string{`"}"`})))
		})

		It("reports incomplete fragment definitions", func() {
			Expect(parse(g.Document, "fragment on on T { a }")).Should(MatchFailure(true, 1, 10,
				Equal([]string{"fragment name"})))
			Expect(parse(g.Document, "fragment F T { a }")).Should(MatchFailure(true, 1, 12,
				Equal([]string{"type condition"})))
			Expect(parse(g.Document, "fragment F on T")).Should(MatchFailure(true, 1, 16,
				Equal([]string{"selection set"})))
		})

		It("fails without commitment on trailing input", func() {
			Expect(parse(g.Document, "{ a } }")).Should(MatchFailure(false, 1, 7,
				ContainElements("<EOF>", `"{"`)))
		})

		It("allows keywords as field names", func() {
			document := mustParse(g.Document, "{ query mutation fragment on true null }")
			selections := document.Children("definitions")[0].Child("value").Children("selections")
			Expect(selections).Should(HaveLen(6))
			Expect(selections[3].Child("value").Child("name").Text()).Should(Equal("on"))
		})

		It("does not split names at keywords", func() {
			Expect(parse(g.Document, "queryX { a }")).Should(MatchFailure(true, 1, 1,
				Equal([]string{"1 or more definitions"})))
			Expect(mustParse(g.Value, "nullX").Tag).Should(Equal(cst.TagEnum))
			Expect(mustParse(g.Document, "query{a}").Children("definitions")).Should(HaveLen(1))
		})
	})

	It("renders documents that parse to the same shape", func() {
		document := mustParse(g.Document, `
			query Q($id: ID!, $list: [Int!] = [1, 2]) @dir(a: true) {
				alias: hero(id: $id, obj: {name: "R2\né", n: null, e: JEDI, f: -1.5e3}) {
					...HeroFields @include(if: $flag)
					... on Droid { primaryFunction }
					... @skip(if: false) { id }
				}
			}
			mutation { like(story: 123) { likes } }
			{ shorthand }
			fragment HeroFields on Character { name }
		`)

		rendered := cst.Render(document)
		Expect(mustParse(g.Document, rendered)).Should(testutil.MatchCSTShape(document))
	})
})
