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

package token

import (
	"fmt"
	"unicode/utf8"
)

// SourceBody contains contents of a GraphQL document in a byte sequence.
type SourceBody []byte

// RuneAt decodes a rune at given pos. It also returns the number of bytes occupied by the
// rune.
func (body SourceBody) RuneAt(pos uint) (rune, uint) {
	if uint(len(body)) <= pos {
		// Return -1 to indicate an <EOF>.
		return -1, 0
	}

	// Fast path: characters below Runeself are represented as themselves in a single byte.
	c := body[pos]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}

	r, n := utf8.DecodeRune(body[pos:])
	return r, uint(n)
}

// Size returns the body size in bytes.
func (body SourceBody) Size() uint {
	return uint(len(body))
}

// SourceConfig specifies configuration of a Source.
type SourceConfig struct {
	Body SourceBody

	// `Name`, `LineOffset` and `ColumnOffset` are optional. They are useful for clients who store
	// GraphQL documents in source files. For example, if the GraphQL input starts at line 40 in a
	// file named Foo.graphql, it might be useful for `Name` to be "Foo.graphql" with location
	// information `LineOffset: 39` and `ColumnOffset: 0`. `LineOffset` and `ColumnOffset` are both
	// 0-indexed and are both 0 if they're not provided (which also means no offset).
	Name         string
	LineOffset   uint
	ColumnOffset uint
}

// Source represent a GraphQL source text.
type Source struct {
	config SourceConfig
}

// NewSource initializes a Source instance from given config.
func NewSource(config *SourceConfig) *Source {
	source := &Source{
		config: *config,
	}
	if len(config.Name) == 0 {
		source.config.Name = "GraphQL request"
	}
	return source
}

// NewSourceFromString is a shorthand for creating an unnamed Source from a string.
func NewSourceFromString(body string) *Source {
	return NewSource(&SourceConfig{
		Body: SourceBody(body),
	})
}

// Body returns source.config.Body.
func (source *Source) Body() SourceBody {
	return source.config.Body
}

// Name returns source.config.Name.
func (source *Source) Name() string {
	return source.config.Name
}

// StartPosition returns the position of the first character in the body with line and column
// offsets applied.
func (source *Source) StartPosition() Position {
	return Position{
		Offset: 0,
		Line:   source.config.LineOffset + 1,
		Column: source.config.ColumnOffset + 1,
	}
}

// Describe returns a short description of the character at the given position for use in error
// messages. It returns "<EOF>" when the position is at or past the end of the body.
func (source *Source) Describe(pos Position) string {
	r, _ := source.Body().RuneAt(pos.Offset)
	switch {
	case r < 0:
		return "<EOF>"
	case r < 0x0020 && r != '\t' && r != '\n' && r != '\r':
		return fmt.Sprintf(`"\u%04X"`, r)
	default:
		return fmt.Sprintf("%q", r)
	}
}
