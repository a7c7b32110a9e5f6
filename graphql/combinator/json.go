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
	"unsafe"

	"github.com/mattfenwick/graphqllint/graphql/cst"

	"github.com/json-iterator/go"
)

// MarshalJSON implements json.Marshaler.
func (result Result) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(result)
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// resultMarshaller implements jsoniter.ValEncoder to encode Result to JSON as
//
//	{"status": "success", "value": ..., "error": ...}
//
// where "value" is omitted for failures and "error" is null when none was recorded.
type resultMarshaller struct{}

var _ jsoniter.ValEncoder = resultMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (resultMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

// Encode implements jsoniter.ValEncoder.
func (resultMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	result := (*Result)(ptr)

	stream.WriteObjectStart()
	stream.WriteObjectField("status")
	stream.WriteString(result.Status.String())
	if result.Status == StatusSuccess {
		stream.WriteMore()
		stream.WriteObjectField("value")
		stream.WriteVal(result.Value)
	}
	stream.WriteMore()
	stream.WriteObjectField("error")
	writeError(stream, result.Err)
	stream.WriteObjectEnd()
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	writeError(stream, (*Error)(ptr))
}

func writeError(stream *jsoniter.Stream, e *Error) {
	if e == nil {
		stream.WriteNil()
		return
	}

	stream.WriteObjectStart()
	stream.WriteObjectField("position")
	cst.WritePosition(stream, e.Position)
	stream.WriteMore()
	stream.WriteObjectField("expected")
	stream.WriteArrayStart()
	for i, label := range e.Expected {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(label)
	}
	stream.WriteArrayEnd()
	if e.Cause != nil {
		stream.WriteMore()
		stream.WriteObjectField("cause")
		writeError(stream, e.Cause)
	}
	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("combinator.Result", resultMarshaller{})
	jsoniter.RegisterTypeEncoder("combinator.Error", errorMarshaller{})
}
