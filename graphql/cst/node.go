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

package cst

import (
	"strings"

	"github.com/mattfenwick/graphqllint/graphql/token"
)

// Node is a concrete syntax tree node. Tag is the name of the grammar rule that produced it. Start
// is the position of the rule's first significant character and End the position right after its
// last one.
//
// Field values are one of:
//
//	*Node          a nested rule
//	string         raw matched text (a character, punctuator or keyword)
//	[]interface{}  the results of a sequence or repetition
//	nil            an optional part that was absent
type Node struct {
	Tag    string
	Start  token.Position
	End    token.Position
	Fields []Field
}

// Field binds a value to a name in a Node. Fields keep the order in which the grammar rule
// matched them.
type Field struct {
	Name  string
	Value interface{}
}

// Range returns the source range covered by the node.
func (node *Node) Range() token.Range {
	return token.Range{
		Start: node.Start,
		End:   node.End,
	}
}

// Lookup returns the value bound to name and whether the node has such field.
func (node *Node) Lookup(name string) (interface{}, bool) {
	for i := range node.Fields {
		if node.Fields[i].Name == name {
			return node.Fields[i].Value, true
		}
	}
	return nil, false
}

// Get returns the value bound to name or nil.
func (node *Node) Get(name string) interface{} {
	value, _ := node.Lookup(name)
	return value
}

// Child returns the node bound to name. It returns nil if the field is absent or doesn't hold a
// node.
func (node *Node) Child(name string) *Node {
	child, _ := node.Get(name).(*Node)
	return child
}

// Children returns the nodes in the list bound to name. Non-node items are skipped.
func (node *Node) Children(name string) []*Node {
	items, _ := node.Get(name).([]interface{})
	if len(items) == 0 {
		return nil
	}
	children := make([]*Node, 0, len(items))
	for _, item := range items {
		if child, ok := item.(*Node); ok {
			children = append(children, child)
		}
	}
	return children
}

// Text returns the source text matched by the node, without trivia.
func (node *Node) Text() string {
	var b strings.Builder
	writeText(&b, node)
	return b.String()
}

// Text concatenates the raw text in a field value.
func Text(value interface{}) string {
	var b strings.Builder
	writeText(&b, value)
	return b.String()
}

func writeText(b *strings.Builder, value interface{}) {
	switch value := value.(type) {
	case string:
		b.WriteString(value)
	case *Node:
		if value == nil {
			return
		}
		for _, field := range value.Fields {
			writeText(b, field.Value)
		}
	case []interface{}:
		for _, item := range value {
			writeText(b, item)
		}
	}
}
