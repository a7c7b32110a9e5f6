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
	"github.com/mattfenwick/graphqllint/graphql/token"
)

// Input is an immutable cursor into a Source. Parsers never modify an Input; they return the
// advanced one in their Result.
type Input struct {
	source *token.Source

	// Position of the next character to be read
	pos token.Position

	// Position right after the last significant (non-trivia) character consumed
	mark token.Position
}

// NewInput creates an Input at the beginning of the source.
func NewInput(source *token.Source) Input {
	start := source.StartPosition()
	return Input{
		source: source,
		pos:    start,
		mark:   start,
	}
}

// Source returns the source being read.
func (in Input) Source() *token.Source {
	return in.source
}

// Position returns the position of the next character.
func (in Input) Position() token.Position {
	return in.pos
}

// Mark returns the position right after the last significant character consumed. It equals
// Position unless trivia has been skipped since.
func (in Input) Mark() token.Position {
	return in.mark
}

// AtEnd returns true if all characters have been consumed.
func (in Input) AtEnd() bool {
	return in.pos.Offset >= in.source.Body().Size()
}

// next reads one character. ok is false at the end of input.
func (in Input) next() (r rune, rest Input, ok bool) {
	body := in.source.Body()
	r, size := body.RuneAt(in.pos.Offset)
	if size == 0 {
		return -1, in, false
	}
	following, _ := body.RuneAt(in.pos.Offset + size)
	in.pos = in.pos.Advance(r, size, following)
	in.mark = in.pos
	return r, in, true
}
