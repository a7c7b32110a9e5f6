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

package ast

import (
	"fmt"
	"unsafe"

	"github.com/mattfenwick/graphqllint/graphql/token"

	"github.com/json-iterator/go"
)

// MarshalJSON implements json.Marshaler. Nodes are encoded as objects with a "kind" member naming
// the node type (as in graphql-js) and a "loc" member with the source range.
func (node Document) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(node)
}

// documentMarshaller implements jsoniter.ValEncoder to encode Document to JSON.
type documentMarshaller struct{}

var _ jsoniter.ValEncoder = documentMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (documentMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

// Encode implements jsoniter.ValEncoder.
func (documentMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	WriteJSON(stream, *(*Document)(ptr))
}

func init() {
	jsoniter.RegisterTypeEncoder("ast.Document", documentMarshaller{})
}

// WriteJSON writes the JSON encoding of node to stream.
func WriteJSON(stream *jsoniter.Stream, node Node) {
	w := jsonWriter{stream}
	w.node(node)
}

type jsonWriter struct {
	*jsoniter.Stream
}

// begin opens an object for a node of given kind. Calls to member add the other members.
func (w jsonWriter) begin(kind string, loc token.Range) {
	w.WriteObjectStart()
	w.WriteObjectField("kind")
	w.WriteString(kind)
	w.WriteMore()
	w.WriteObjectField("loc")
	w.loc(loc)
}

func (w jsonWriter) member(name string) {
	w.WriteMore()
	w.WriteObjectField(name)
}

func (w jsonWriter) end() {
	w.WriteObjectEnd()
}

func (w jsonWriter) loc(loc token.Range) {
	w.WriteObjectStart()
	w.WriteObjectField("start")
	w.position(loc.Start)
	w.WriteMore()
	w.WriteObjectField("end")
	w.position(loc.End)
	w.WriteObjectEnd()
}

func (w jsonWriter) position(pos token.Position) {
	w.WriteObjectStart()
	w.WriteObjectField("line")
	w.WriteUint(pos.Line)
	w.WriteMore()
	w.WriteObjectField("column")
	w.WriteUint(pos.Column)
	w.WriteObjectEnd()
}

func (w jsonWriter) name(name Name) {
	if name.IsNil() {
		w.WriteNil()
		return
	}
	w.begin("Name", name.Loc)
	w.member("value")
	w.WriteString(name.Value)
	w.end()
}

// list writes n items produced by item as an array.
func (w jsonWriter) list(n int, item func(i int)) {
	w.WriteArrayStart()
	for i := 0; i < n; i++ {
		if i > 0 {
			w.WriteMore()
		}
		item(i)
	}
	w.WriteArrayEnd()
}

func (w jsonWriter) node(node Node) {
	switch node := node.(type) {
	case Document:
		w.begin("Document", node.Loc)
		w.member("definitions")
		w.list(len(node.Definitions), func(i int) { w.node(node.Definitions[i]) })
		w.end()

	case *OperationDefinition:
		w.begin("OperationDefinition", node.Loc)
		w.member("operation")
		w.WriteString(string(node.OperationType()))
		w.member("name")
		w.name(node.Name)
		w.member("variableDefinitions")
		w.variableDefinitions(node.VariableDefinitions)
		w.member("directives")
		w.directives(node.Directives)
		w.member("selectionSet")
		w.node(node.SelectionSet)
		w.end()

	case *FragmentDefinition:
		w.begin("FragmentDefinition", node.Loc)
		w.member("name")
		w.name(node.Name)
		if len(node.VariableDefinitions) > 0 {
			w.member("variableDefinitions")
			w.variableDefinitions(node.VariableDefinitions)
		}
		w.member("typeCondition")
		w.node(node.TypeCondition)
		w.member("directives")
		w.directives(node.Directives)
		w.member("selectionSet")
		w.node(node.SelectionSet)
		w.end()

	case SelectionSet:
		if node.IsEmpty() {
			w.WriteNil()
			return
		}
		w.begin("SelectionSet", node.Loc)
		w.member("selections")
		w.list(len(node.Selections), func(i int) { w.node(node.Selections[i]) })
		w.end()

	case *Field:
		w.begin("Field", node.Loc)
		w.member("alias")
		w.name(node.Alias)
		w.member("name")
		w.name(node.Name)
		w.member("arguments")
		w.arguments(node.Arguments)
		w.member("directives")
		w.directives(node.Directives)
		w.member("selectionSet")
		w.node(node.SelectionSet)
		w.end()

	case *FragmentSpread:
		w.begin("FragmentSpread", node.Loc)
		w.member("name")
		w.name(node.Name)
		w.member("directives")
		w.directives(node.Directives)
		w.end()

	case *InlineFragment:
		w.begin("InlineFragment", node.Loc)
		w.member("typeCondition")
		if node.HasTypeCondition() {
			w.node(node.TypeCondition)
		} else {
			w.WriteNil()
		}
		w.member("directives")
		w.directives(node.Directives)
		w.member("selectionSet")
		w.node(node.SelectionSet)
		w.end()

	case *Argument:
		w.begin("Argument", node.Loc)
		w.member("name")
		w.name(node.Name)
		w.member("value")
		w.node(node.Value)
		w.end()

	case *Directive:
		w.begin("Directive", node.Loc)
		w.member("name")
		w.name(node.Name)
		w.member("arguments")
		w.arguments(node.Arguments)
		w.end()

	case *VariableDefinition:
		w.begin("VariableDefinition", node.Loc)
		w.member("variable")
		w.node(node.Variable)
		w.member("type")
		w.node(node.Type)
		w.member("defaultValue")
		if node.DefaultValue != nil {
			w.node(node.DefaultValue)
		} else {
			w.WriteNil()
		}
		w.end()

	case Variable:
		w.begin("Variable", node.Loc)
		w.member("name")
		w.name(node.Name)
		w.end()

	case NumberValue:
		if node.IsInt() {
			w.begin("IntValue", node.Loc)
		} else {
			w.begin("FloatValue", node.Loc)
		}
		w.member("value")
		w.WriteString(node.Raw)
		w.end()

	case StringValue:
		w.begin("StringValue", node.Loc)
		w.member("value")
		w.WriteString(node.Value)
		w.end()

	case BooleanValue:
		w.begin("BooleanValue", node.Loc)
		w.member("value")
		w.WriteBool(node.Value)
		w.end()

	case NullValue:
		w.begin("NullValue", node.Loc)
		w.end()

	case EnumValue:
		w.begin("EnumValue", node.Loc)
		w.member("value")
		w.WriteString(node.Value)
		w.end()

	case ListValue:
		w.begin("ListValue", node.Loc)
		w.member("values")
		w.list(len(node.Values), func(i int) { w.node(node.Values[i]) })
		w.end()

	case ObjectValue:
		w.begin("ObjectValue", node.Loc)
		w.member("fields")
		w.list(len(node.Fields), func(i int) { w.node(node.Fields[i]) })
		w.end()

	case *ObjectField:
		w.begin("ObjectField", node.Loc)
		w.member("name")
		w.name(node.Name)
		w.member("value")
		w.node(node.Value)
		w.end()

	case NamedType:
		w.begin("NamedType", node.Range())
		w.member("name")
		w.name(node.Name)
		w.end()

	case ListType:
		w.begin("ListType", node.Loc)
		w.member("type")
		w.node(node.ItemType)
		w.end()

	case NonNullType:
		w.begin("NonNullType", node.Loc)
		w.member("type")
		w.node(node.Type)
		w.end()

	case Name:
		w.name(node)

	default:
		w.Error = fmt.Errorf("unsupported node type %T to encode", node)
	}
}

func (w jsonWriter) arguments(args Arguments) {
	w.list(len(args), func(i int) { w.node(args[i]) })
}

func (w jsonWriter) directives(directives Directives) {
	w.list(len(directives), func(i int) { w.node(directives[i]) })
}

func (w jsonWriter) variableDefinitions(varDefs VariableDefinitions) {
	w.list(len(varDefs), func(i int) { w.node(varDefs[i]) })
}
