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
	"strings"

	"github.com/mattfenwick/graphqllint/graphql/cst"

	"github.com/google/go-cmp/cmp"
	"github.com/onsi/gomega/types"
)

type matchCSTShapeMatcher struct {
	expected *cst.Node
}

// MatchCSTShape returns a Gomega matcher that succeeds when actual is a *cst.Node with the same tags
// and field values as expected at every level. Positions are ignored.
//
//		Expect(parser.ParseCST(cst.Render(node)).Value).Should(MatchCSTShape(node))
func MatchCSTShape(expected *cst.Node) types.GomegaMatcher {
	return &matchCSTShapeMatcher{
		expected: expected,
	}
}

// Match implements types.GomegaMatcher.
func (matcher *matchCSTShapeMatcher) Match(actual interface{}) (success bool, err error) {
	node, ok := actual.(*cst.Node)
	if !ok {
		return false, fmt.Errorf("MatchCSTShape matcher expects a *cst.Node, got %T", actual)
	}
	return sameShape(matcher.expected, node), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *matchCSTShapeMatcher) FailureMessage(actual interface{}) (message string) {
	node, _ := actual.(*cst.Node)
	diff := cmp.Diff(shapeLines(matcher.expected), shapeLines(node))
	return fmt.Sprintf("Expected CST to have the same shape as expected (-expected +actual):\n%s", diff)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *matchCSTShapeMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return "Expected CST not to have the same shape as expected"
}

func sameShape(a, b interface{}) bool {
	switch a := a.(type) {
	case *cst.Node:
		b, ok := b.(*cst.Node)
		if !ok || (a == nil) != (b == nil) {
			return false
		}
		if a == nil {
			return true
		}
		if a.Tag != b.Tag || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !sameShape(a.Fields[i].Value, b.Fields[i].Value) {
				return false
			}
		}
		return true

	case []interface{}:
		b, ok := b.([]interface{})
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !sameShape(a[i], b[i]) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}

// shapeLines prints one line per node, field and value, indented by depth.
func shapeLines(node *cst.Node) []string {
	var lines []string
	var walk func(depth int, label string, value interface{})
	walk = func(depth int, label string, value interface{}) {
		indent := strings.Repeat("  ", depth)
		switch value := value.(type) {
		case *cst.Node:
			if value == nil {
				lines = append(lines, indent+label+"<nil node>")
				return
			}
			lines = append(lines, indent+label+value.Tag)
			for _, field := range value.Fields {
				walk(depth+1, field.Name+": ", field.Value)
			}
		case []interface{}:
			lines = append(lines, fmt.Sprintf("%s%s[%d]", indent, label, len(value)))
			for _, item := range value {
				walk(depth+1, "- ", item)
			}
		default:
			lines = append(lines, fmt.Sprintf("%s%s%#v", indent, label, value))
		}
	}
	walk(0, "", node)
	return lines
}
