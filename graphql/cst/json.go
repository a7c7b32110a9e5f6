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

package cst

import (
	"fmt"
	"unsafe"

	"github.com/mattfenwick/graphqllint/graphql/token"

	"github.com/json-iterator/go"
)

// MarshalJSON implements json.Marshaler.
func (node *Node) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(node)
}

// nodeMarshaller implements jsoniter.ValEncoder to encode Node to JSON. The fields of a node are
// written as an object in the order they were matched.
type nodeMarshaller struct{}

var _ jsoniter.ValEncoder = nodeMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (nodeMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Node)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (nodeMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	writeNode(stream, (*Node)(ptr))
}

// WritePosition writes a position as {"line": ..., "column": ...}.
func WritePosition(stream *jsoniter.Stream, pos token.Position) {
	stream.WriteObjectStart()
	stream.WriteObjectField("line")
	stream.WriteUint(pos.Line)
	stream.WriteMore()
	stream.WriteObjectField("column")
	stream.WriteUint(pos.Column)
	stream.WriteObjectEnd()
}

func writeNode(stream *jsoniter.Stream, node *Node) {
	if node == nil {
		stream.WriteNil()
		return
	}

	stream.WriteObjectStart()
	stream.WriteObjectField("tag")
	stream.WriteString(node.Tag)
	stream.WriteMore()
	stream.WriteObjectField("start")
	WritePosition(stream, node.Start)
	stream.WriteMore()
	stream.WriteObjectField("end")
	WritePosition(stream, node.End)
	stream.WriteMore()
	stream.WriteObjectField("fields")
	stream.WriteObjectStart()
	for i, field := range node.Fields {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(field.Name)
		writeValue(stream, field.Value)
	}
	stream.WriteObjectEnd()
	stream.WriteObjectEnd()
}

func writeValue(stream *jsoniter.Stream, value interface{}) {
	switch value := value.(type) {
	case nil:
		stream.WriteNil()
	case string:
		stream.WriteString(value)
	case *Node:
		writeNode(stream, value)
	case []interface{}:
		stream.WriteArrayStart()
		for i, item := range value {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, item)
		}
		stream.WriteArrayEnd()
	default:
		stream.Error = fmt.Errorf(`unsupported type "%T" of value in CST node`, value)
	}
}

func init() {
	jsoniter.RegisterTypeEncoder("cst.Node", nodeMarshaller{})
}
