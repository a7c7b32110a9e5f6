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
	"strings"
)

// Render writes the tokens of a CST back to query text, separated by a single space. Parsing the
// output yields a tree with the same tags and fields as node; only positions differ.
func Render(node *Node) string {
	var (
		b     strings.Builder
		first = true
	)
	emit := func(tok string) {
		if len(tok) == 0 {
			return
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(tok)
	}

	var walk func(value interface{})
	walk = func(value interface{}) {
		switch value := value.(type) {
		case string:
			emit(value)
		case *Node:
			if value == nil {
				return
			}
			if IsLexical(value.Tag) {
				emit(value.Text())
				return
			}
			for _, field := range value.Fields {
				walk(field.Value)
			}
		case []interface{}:
			for _, item := range value {
				walk(item)
			}
		}
	}
	walk(node)

	return b.String()
}
