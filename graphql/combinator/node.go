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
	"github.com/mattfenwick/graphqllint/graphql/cst"
)

// FieldParser pairs a parser with the name under which its value is stored in a cst.Node.
type FieldParser struct {
	name   string
	parser Parser
}

// Field creates a FieldParser.
func Field(name string, parser Parser) FieldParser {
	return FieldParser{name, parser}
}

// Node runs the field parsers in order and yields a *cst.Node tagged with tag that holds their
// values in the same order. The node starts at the cursor before its first field and ends right
// after the last significant character consumed, so trailing trivia is not part of it.
func Node(tag string, fields ...FieldParser) Parser {
	return func(in Input) Result {
		var (
			values = make([]cst.Field, 0, len(fields))
			err    *Error
			cur    = in
		)

		for _, field := range fields {
			result := field.parser(cur)
			switch result.Status {
			case StatusFatal:
				return result
			case StatusFailure:
				return failure(Merge(err, result.Err))
			}
			values = append(values, cst.Field{
				Name:  field.name,
				Value: result.Value,
			})
			err = Merge(err, result.Err)
			cur = result.Rest
		}

		end := cur.mark
		if end.Before(in.pos) {
			// Nothing significant was consumed.
			end = in.pos
		}

		return success(&cst.Node{
			Tag:    tag,
			Start:  in.pos,
			End:    end,
			Fields: values,
		}, cur, err)
	}
}
