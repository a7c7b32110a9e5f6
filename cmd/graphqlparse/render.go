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

package main

import (
	"errors"

	"github.com/mattfenwick/graphqllint/graphql"
	"github.com/mattfenwick/graphqllint/graphql/ast"
	"github.com/mattfenwick/graphqllint/graphql/parser"
	"github.com/mattfenwick/graphqllint/graphql/token"

	"github.com/json-iterator/go"
)

// renderCST writes a line of {"source": ..., "result": ...} where result is the combinator.Result
// for the document.
func renderCST(stream *jsoniter.Stream, source *token.Source, options parser.ParseOptions) error {
	result, err := parser.ParseCST(source, options)

	stream.WriteObjectStart()
	stream.WriteObjectField("source")
	stream.WriteString(source.Name())
	stream.WriteMore()
	stream.WriteObjectField("result")
	stream.WriteVal(result)
	stream.WriteObjectEnd()
	stream.WriteRaw("\n")

	return err
}

// renderAST writes a line of {"source": ..., "document": ...} on success or
// {"source": ..., "errors": [...]} on failure.
func renderAST(stream *jsoniter.Stream, source *token.Source, options parser.ParseOptions) error {
	document, err := parser.Parse(source, options)

	stream.WriteObjectStart()
	stream.WriteObjectField("source")
	stream.WriteString(source.Name())
	stream.WriteMore()
	if err == nil {
		stream.WriteObjectField("document")
		ast.WriteJSON(stream, document)
	} else {
		stream.WriteObjectField("errors")
		stream.WriteArrayStart()
		writeError(stream, err)
		stream.WriteArrayEnd()
	}
	stream.WriteObjectEnd()
	stream.WriteRaw("\n")

	return err
}

// renderText prints the document in canonical format. Nothing is written on failure.
func renderText(stream *jsoniter.Stream, source *token.Source, options parser.ParseOptions) error {
	document, err := parser.Parse(source, options)
	if err != nil {
		return err
	}
	stream.WriteRaw(ast.Print(document))
	return nil
}

func writeError(stream *jsoniter.Stream, err error) {
	var e *graphql.Error
	if errors.As(err, &e) {
		stream.WriteVal(e)
		return
	}
	stream.WriteObjectStart()
	stream.WriteObjectField("message")
	stream.WriteString(err.Error())
	stream.WriteObjectEnd()
}
