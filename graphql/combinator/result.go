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

// Status indicates the outcome of running a Parser.
type Status uint8

// Enumeration of Status
const (
	// StatusSuccess indicates that the parser matched and produced a value.
	StatusSuccess Status = iota

	// StatusFailure indicates a recoverable failure. Alt tries its next alternative and Optional
	// and Many0 stop and succeed.
	StatusFailure

	// StatusFatal indicates a committed failure. It propagates through every combinator unchanged.
	StatusFatal
)

// String implements fmt.Stringer.
func (status Status) String() string {
	switch status {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusFatal:
		return "fatal"
	}
	return "unknown"
}

// Result is the outcome of running a Parser on an Input.
type Result struct {
	Status Status

	// Value produced by the parser; only meaningful on success
	Value interface{}

	// Rest is the remaining input after the match; only meaningful on success
	Rest Input

	// Err is the furthest error encountered. It is always set on failure and may be set on success
	// to report how far the parser looked ahead before it stopped.
	Err *Error
}

// Succeeded returns true if the parser matched.
func (result Result) Succeeded() bool {
	return result.Status == StatusSuccess
}

// Failed returns true for both recoverable and fatal failures.
func (result Result) Failed() bool {
	return result.Status != StatusSuccess
}

// Fatal returns true if the failure must not be recovered from.
func (result Result) Fatal() bool {
	return result.Status == StatusFatal
}

func success(value interface{}, rest Input, err *Error) Result {
	return Result{
		Status: StatusSuccess,
		Value:  value,
		Rest:   rest,
		Err:    err,
	}
}

func failure(err *Error) Result {
	return Result{
		Status: StatusFailure,
		Err:    err,
	}
}

func fatal(err *Error) Result {
	return Result{
		Status: StatusFatal,
		Err:    err,
	}
}
