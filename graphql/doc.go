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

// Package graphql provides the error model shared by the GraphQL language packages.
//
// Errors are built with NewError from a message and any of ErrorLocation, []ErrorLocation,
// ErrorExtensions, Op, ErrKind and an underlying error. Locations, extensions and kind that are not
// given are pulled from the underlying error, so a syntax error created by NewSyntaxError keeps its
// position after being wrapped.
//
// The language itself lives in subpackages: token (source positions), combinator (parser
// combinators), grammar and cst (concrete syntax tree), ast and astbuilder (typed syntax tree) and
// parser (entry points).
package graphql
