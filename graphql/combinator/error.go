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
	"sort"

	"github.com/mattfenwick/graphqllint/graphql/token"
	"github.com/mattfenwick/graphqllint/internal/util"
)

// Error describes what a parser expected to find at a position.
type Error struct {
	// Position at which the parser failed
	Position token.Position

	// Expected contains the labels of the things that would have been accepted at Position, sorted
	// and without duplicates.
	Expected []string

	// Cause is the failure that a Cut turned into this error, if any. It usually points further
	// into the source than Position.
	Cause *Error
}

var _ error = (*Error)(nil)

// NewError creates an Error at pos expecting the given labels.
func NewError(pos token.Position, labels ...string) *Error {
	return &Error{
		Position: pos,
		Expected: normalizeLabels(labels),
	}
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: unexpected input", e.Position)
	}
	return fmt.Sprintf("%s: expected %s", e.Position, util.OrList(e.Expected, 0, false))
}

// Merge returns the error that is further into the source. Errors at the same position are
// combined into one expecting the labels of both.
func Merge(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Position.Before(a.Position):
		return a
	case a.Position.Before(b.Position):
		return b
	}

	if sameLabels(a.Expected, b.Expected) {
		return a
	}

	cause := a.Cause
	if cause == nil {
		cause = b.Cause
	}

	labels := make([]string, 0, len(a.Expected)+len(b.Expected))
	labels = append(labels, a.Expected...)
	labels = append(labels, b.Expected...)
	return &Error{
		Position: a.Position,
		Expected: normalizeLabels(labels),
		Cause:    cause,
	}
}

func normalizeLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)

	// Remove duplicates in place.
	n := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[n-1] {
			sorted[n] = sorted[i]
			n++
		}
	}
	return sorted[:n]
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
