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

package token_test

import (
	"github.com/mattfenwick/graphqllint/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// advanceAll walks s from the start position and returns the position after the last rune.
func advanceAll(source *token.Source) token.Position {
	var (
		body = source.Body()
		pos  = source.StartPosition()
	)
	for pos.Offset < body.Size() {
		r, size := body.RuneAt(pos.Offset)
		next, _ := body.RuneAt(pos.Offset + size)
		pos = pos.Advance(r, size, next)
	}
	return pos
}

var _ = Describe("Position", func() {
	It("starts at line 1, column 1", func() {
		Expect(token.NewSourceFromString("").StartPosition()).Should(Equal(token.Position{
			Offset: 0,
			Line:   1,
			Column: 1,
		}))
	})

	It("applies line and column offsets", func() {
		source := token.NewSource(&token.SourceConfig{
			Body:         token.SourceBody("{ a }"),
			Name:         "Foo.graphql",
			LineOffset:   39,
			ColumnOffset: 4,
		})
		Expect(source.Name()).Should(Equal("Foo.graphql"))
		Expect(source.StartPosition()).Should(Equal(token.Position{Line: 40, Column: 5}))
	})

	It("names unnamed sources", func() {
		Expect(token.NewSourceFromString("{ a }").Name()).Should(Equal("GraphQL request"))
	})

	It("counts columns in runes", func() {
		Expect(advanceAll(token.NewSourceFromString("abé"))).Should(Equal(token.Position{
			Offset: 4,
			Line:   1,
			Column: 4,
		}))
	})

	It("treats \\n, \\r\\n and \\r as one line break each", func() {
		Expect(advanceAll(token.NewSourceFromString("a\nb\r\nc\rd"))).Should(Equal(token.Position{
			Offset: 8,
			Line:   4,
			Column: 2,
		}))
	})

	It("orders positions by offset", func() {
		a := token.Position{Offset: 1, Line: 1, Column: 2}
		b := token.Position{Offset: 5, Line: 2, Column: 1}
		Expect(a.Before(b)).Should(BeTrue())
		Expect(b.Before(a)).Should(BeFalse())
		Expect(b.String()).Should(Equal("2:1"))
		Expect(token.Range{Start: a, End: b}.Len()).Should(Equal(uint(4)))
	})
})

var _ = Describe("Source", func() {
	It("describes characters for diagnostics", func() {
		source := token.NewSourceFromString("a\u0007")
		Expect(source.Describe(token.Position{Offset: 0})).Should(Equal(`'a'`))
		Expect(source.Describe(token.Position{Offset: 1})).Should(Equal(`"\u0007"`))
		Expect(source.Describe(token.Position{Offset: 2})).Should(Equal("<EOF>"))
	})
})
