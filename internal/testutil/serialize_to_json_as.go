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

package testutil

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/json-iterator/go"
	"github.com/onsi/gomega/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type serializeToJSONAsMatcher struct {
	expected interface{}
	diff     string
}

// SerializeToJSONAs encodes both actual and expected into JSON, decodes each back into a value of
// expected's type and matches when the two decoded values are equal. Map key order and the concrete
// Go types behind actual do not matter.
func SerializeToJSONAs(expected interface{}) types.GomegaMatcher {
	return &serializeToJSONAsMatcher{
		expected: expected,
	}
}

func (matcher *serializeToJSONAsMatcher) roundTrip(what string, value interface{}) (interface{}, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("SerializeToJSONAs cannot encode %s: %s", what, err)
	}

	decoded := reflect.New(reflect.TypeOf(matcher.expected))
	if err := json.Unmarshal(data, decoded.Interface()); err != nil {
		return nil, fmt.Errorf("SerializeToJSONAs cannot decode %s into %s: %s", what, decoded.Type().Elem(), err)
	}
	return decoded.Elem().Interface(), nil
}

// Match implements types.GomegaMatcher.
func (matcher *serializeToJSONAsMatcher) Match(actual interface{}) (success bool, err error) {
	decodedActual, err := matcher.roundTrip("actual", actual)
	if err != nil {
		return false, err
	}

	decodedExpected, err := matcher.roundTrip("expected", matcher.expected)
	if err != nil {
		return false, err
	}

	matcher.diff = cmp.Diff(decodedExpected, decodedActual)
	return len(matcher.diff) == 0, nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *serializeToJSONAsMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nto serialize to JSON value as\n\t%#v\ndiff (-expected +actual):\n%s",
		actual, matcher.expected, matcher.diff)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *serializeToJSONAsMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nnot to serialize to JSON value as\n\t%#v", actual, matcher.expected)
}
