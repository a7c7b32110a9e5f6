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
)

// Position identifies a point in a Source. Offset is a 0-based byte offset into the source body.
// Line and Column are 1-based; Column counts runes, not bytes.
type Position struct {
	Offset uint
	Line   uint
	Column uint
}

var _ fmt.Stringer = Position{}

// String formats the position as "line:column".
func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Before returns true if pos comes before other in the source.
func (pos Position) Before(other Position) bool {
	return pos.Offset < other.Offset
}

// Advance returns the position after consuming r. next is the rune that follows r in the source (or
// -1 at the end). Both "\n" and a bare "\r" start a new line; the "\r" in "\r\n" is an ordinary
// character so that the pair counts as one line break.
func (pos Position) Advance(r rune, size uint, next rune) Position {
	pos.Offset += size
	if r == '\n' || (r == '\r' && next != '\n') {
		pos.Line++
		pos.Column = 1
	} else {
		pos.Column++
	}
	return pos
}

// Range is the region between two positions. End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() uint {
	if r.End.Offset < r.Start.Offset {
		return 0
	}
	return r.End.Offset - r.Start.Offset
}
