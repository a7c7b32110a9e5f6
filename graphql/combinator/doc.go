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

// Package combinator provides an ordered-choice parser combinator algebra over GraphQL source text.
//
// A Parser is a pure function from an Input cursor to a Result. Results are values, not panics: a
// Failure may be swallowed by an enclosing Alt, which then rewinds and tries its next alternative,
// while a Fatal failure (produced by Cut) propagates to the top. Grammars use Cut right after they
// have recognized enough input to be certain about the construct they are in, so that a later syntax
// error is reported where it happens instead of being turned into "try something else".
//
// Every Result carries the furthest Error seen so far, even on success. Errors at the same
// position merge their expected labels; errors further into the source win. This is what makes the
// final diagnostic point at the deepest failure rather than the first one.
//
// No parser keeps state between calls, so the same Parser can be used from several goroutines at
// once.
package combinator
