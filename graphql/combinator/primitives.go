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
	"fmt"
	"strconv"
	"strings"
)

// Parser recognizes a prefix of its Input.
type Parser func(in Input) Result

// Item consumes any single character and yields it as a string.
func Item() Parser {
	return Satisfy("any character", func(rune) bool { return true })
}

// Satisfy consumes a single character for which predicate returns true and yields it as a string.
// label names what is expected in error reports.
func Satisfy(label string, predicate func(r rune) bool) Parser {
	return func(in Input) Result {
		r, rest, ok := in.next()
		if !ok || !predicate(r) {
			return failure(NewError(in.pos, label))
		}
		return success(string(r), rest, nil)
	}
}

// OneOf consumes a single character from chars.
func OneOf(chars string) Parser {
	return Satisfy(fmt.Sprintf("one of %q", chars), func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// Not1 consumes a single character at which excluded does not match.
func Not1(label string, excluded Parser) Parser {
	return func(in Input) Result {
		result := excluded(in)
		switch result.Status {
		case StatusSuccess:
			return failure(NewError(in.pos, label))
		case StatusFatal:
			return result
		}

		r, rest, ok := in.next()
		if !ok {
			return failure(NewError(in.pos, label))
		}
		return success(string(r), rest, nil)
	}
}

// Literal matches text exactly and yields it. On mismatch the error is reported at the first
// character that differs.
func Literal(text string) Parser {
	label := strconv.Quote(text)
	return func(in Input) Result {
		cur := in
		for _, expected := range text {
			r, rest, ok := cur.next()
			if !ok || r != expected {
				return failure(NewError(cur.pos, label))
			}
			cur = rest
		}
		return success(text, cur, nil)
	}
}

// End succeeds without consuming anything when there is no more input.
func End() Parser {
	return func(in Input) Result {
		if !in.AtEnd() {
			return failure(NewError(in.pos, "<EOF>"))
		}
		return success(nil, in, nil)
	}
}

// Pure succeeds with value without consuming anything.
func Pure(value interface{}) Parser {
	return func(in Input) Result {
		return success(value, in, nil)
	}
}

// Fail always fails recoverably, expecting label.
func Fail(label string) Parser {
	return func(in Input) Result {
		return failure(NewError(in.pos, label))
	}
}

// Check runs p and rejects its value when predicate returns false. The rejection is recoverable
// and reported at the start of the match.
func Check(label string, predicate func(value interface{}) bool, p Parser) Parser {
	return func(in Input) Result {
		result := p(in)
		if result.Status != StatusSuccess {
			return result
		}
		if !predicate(result.Value) {
			return failure(NewError(in.pos, label))
		}
		return result
	}
}

// NotFollowedBy succeeds without consuming anything when p does not match at the cursor.
func NotFollowedBy(label string, p Parser) Parser {
	return func(in Input) Result {
		result := p(in)
		switch result.Status {
		case StatusSuccess:
			return failure(NewError(in.pos, label))
		case StatusFatal:
			return result
		}
		return success(nil, in, nil)
	}
}
