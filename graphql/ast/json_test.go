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

	"github.com/json-iterator/go"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSON", func() {
	json := jsoniter.ConfigCompatibleWithStandardLibrary

	It("encodes a document", func() {
		data, err := json.Marshal(parse("{ a(x: 1) }"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(data).Should(MatchJSON(`{
			"kind": "Document",
			"loc": {"start": {"line": 1, "column": 1}, "end": {"line": 1, "column": 12}},
			"definitions": [{
				"kind": "OperationDefinition",
				"loc": {"start": {"line": 1, "column": 1}, "end": {"line": 1, "column": 12}},
				"operation": "query",
				"name": null,
				"variableDefinitions": [],
				"directives": [],
				"selectionSet": {
					"kind": "SelectionSet",
					"loc": {"start": {"line": 1, "column": 1}, "end": {"line": 1, "column": 12}},
					"selections": [{
						"kind": "Field",
						"loc": {"start": {"line": 1, "column": 3}, "end": {"line": 1, "column": 10}},
						"alias": null,
						"name": {
							"kind": "Name",
							"loc": {"start": {"line": 1, "column": 3}, "end": {"line": 1, "column": 4}},
							"value": "a"
						},
						"arguments": [{
							"kind": "Argument",
							"loc": {"start": {"line": 1, "column": 5}, "end": {"line": 1, "column": 9}},
							"name": {
								"kind": "Name",
								"loc": {"start": {"line": 1, "column": 5}, "end": {"line": 1, "column": 6}},
								"value": "x"
							},
							"value": {
								"kind": "IntValue",
								"loc": {"start": {"line": 1, "column": 8}, "end": {"line": 1, "column": 9}},
								"value": "1"
							}
						}],
						"directives": [],
						"selectionSet": null
					}]
				}
			}]
		}`))
	})

	It("encodes fragments and types", func() {
		data, err := json.Marshal(parse("fragment F on T { ... on U { x } }\nquery ($v: [Int]! = null) { ...F }"))
		Expect(err).ShouldNot(HaveOccurred())

		var decoded struct {
			Definitions []struct {
				Kind          string
				TypeCondition struct {
					Kind string
					Name struct{ Value string }
				}
				VariableDefinitions []struct {
					Type struct {
						Kind string
						Type struct{ Kind string }
					}
					DefaultValue struct{ Kind string }
				}
				SelectionSet struct {
					Selections []struct {
						Kind          string
						TypeCondition *struct{ Kind string }
					}
				}
			}
		}
		Expect(json.Unmarshal(data, &decoded)).Should(Succeed())
		Expect(decoded.Definitions).Should(HaveLen(2))

		fragment := decoded.Definitions[0]
		Expect(fragment.Kind).Should(Equal("FragmentDefinition"))
		Expect(fragment.TypeCondition.Kind).Should(Equal("NamedType"))
		Expect(fragment.TypeCondition.Name.Value).Should(Equal("T"))
		Expect(fragment.SelectionSet.Selections[0].Kind).Should(Equal("InlineFragment"))
		Expect(fragment.SelectionSet.Selections[0].TypeCondition.Kind).Should(Equal("NamedType"))

		operation := decoded.Definitions[1]
		Expect(operation.Kind).Should(Equal("OperationDefinition"))
		Expect(operation.VariableDefinitions[0].Type.Kind).Should(Equal("NonNullType"))
		Expect(operation.VariableDefinitions[0].Type.Type.Kind).Should(Equal("ListType"))
		Expect(operation.VariableDefinitions[0].DefaultValue.Kind).Should(Equal("NullValue"))
		Expect(operation.SelectionSet.Selections[0].Kind).Should(Equal("FragmentSpread"))
	})

	It("writes a single node to a stream", func() {
		value, err := parser.ParseValue(token.NewSourceFromString(`[1.5, "s", {k: V}, true, $v]`))
		Expect(err).ShouldNot(HaveOccurred())

		stream := jsoniter.NewStream(jsoniter.ConfigDefault, nil, 64)
		ast.WriteJSON(stream, value)
		Expect(stream.Error).ShouldNot(HaveOccurred())

		var decoded struct {
			Kind   string
			Values []struct {
				Kind   string
				Value  interface{}
				Fields []struct{ Kind string }
				Name   struct{ Value string }
			}
		}
		Expect(json.Unmarshal(stream.Buffer(), &decoded)).Should(Succeed())
		Expect(decoded.Kind).Should(Equal("ListValue"))
		Expect(decoded.Values).Should(HaveLen(5))
		Expect(decoded.Values[0].Kind).Should(Equal("FloatValue"))
		Expect(decoded.Values[0].Value).Should(Equal("1.5"))
		Expect(decoded.Values[1].Kind).Should(Equal("StringValue"))
		Expect(decoded.Values[2].Kind).Should(Equal("ObjectValue"))
		Expect(decoded.Values[2].Fields[0].Kind).Should(Equal("ObjectField"))
		Expect(decoded.Values[3].Value).Should(Equal(true))
		Expect(decoded.Values[4].Kind).Should(Equal("Variable"))
		Expect(decoded.Values[4].Name.Value).Should(Equal("v"))
	})
})
