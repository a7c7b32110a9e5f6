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

// Package astbuilder turns the CST produced by package grammar into the typed AST of package ast.
//
// Building dispatches on the tag of each CST node. A tag without a builder, or a node that lacks a
// field its builder needs, means the grammar and the builder disagree. Such failures are reported
// as graphql.ErrKindInternal errors wrapping ErrUnrecognizedNode or ErrMissingField, never as
// syntax errors.
package astbuilder

import (
	"errors"
	"fmt"

	"github.com/mattfenwick/graphqllint/graphql"
	"github.com/mattfenwick/graphqllint/graphql/ast"
	"github.com/mattfenwick/graphqllint/graphql/cst"
)

// Sentinel causes of builder inconsistency errors
var (
	ErrUnrecognizedNode = errors.New("unrecognized CST node")
	ErrMissingField     = errors.New("missing field in CST node")
)

const op = graphql.Op("astbuilder.Build")

// buildFunc builds the AST for a CST node with a particular tag.
type buildFunc func(node *cst.Node) (interface{}, error)

// builders maps CST tags to their build functions. It is populated in init to break the
// initialization cycle between Build and the build functions.
var builders map[string]buildFunc

func init() {
	builders = map[string]buildFunc{
		cst.TagName:                buildName,
		cst.TagNumber:              buildNumber,
		cst.TagString:              buildString,
		cst.TagBoolean:             buildBoolean,
		cst.TagNull:                buildNull,
		cst.TagEnum:                buildEnum,
		cst.TagVariable:            buildVariable,
		cst.TagNamedType:           buildNamedType,
		cst.TagListType:            buildListType,
		cst.TagType:                buildType,
		cst.TagArgument:            buildArgument,
		cst.TagArguments:           buildArguments,
		cst.TagDirective:           buildDirective,
		cst.TagList:                buildList,
		cst.TagObject:              buildObject,
		cst.TagFragmentName:        buildWrappedName,
		cst.TagAlias:               buildWrappedName,
		cst.TagTypeCondition:       buildTypeCondition,
		cst.TagField:               buildField,
		cst.TagFragmentSpread:      buildFragmentSpread,
		cst.TagInlineFragment:      buildInlineFragment,
		cst.TagSelection:           buildSelection,
		cst.TagSelectionSet:        buildSelectionSet,
		cst.TagOperationType:       buildOperationType,
		cst.TagDefaultValue:        buildDefaultValue,
		cst.TagVariableDefinition:  buildVariableDefinition,
		cst.TagVariableDefinitions: buildVariableDefinitions,
		cst.TagOperationDefinition: buildOperationDefinition,
		cst.TagFragmentDefinition:  buildFragmentDefinition,
		cst.TagDefinition:          buildDefinition,
		cst.TagDocument:            buildDocument,
	}
}

// Supports returns true if nodes with the given tag can be built.
func Supports(tag string) bool {
	_, ok := builders[tag]
	return ok
}

// Build builds the AST for node. The type of the result depends on the tag of node: e.g., an
// ast.Document for "document", an ast.Value for any of the value tags and ast.Arguments for
// "arguments".
func Build(node *cst.Node) (interface{}, error) {
	if node == nil {
		return nil, graphql.NewError("cannot build AST from a nil CST node", graphql.ErrKindInternal,
			op, ErrMissingField)
	}

	build, exists := builders[node.Tag]
	if !exists {
		return nil, graphql.NewError(fmt.Sprintf(`no builder for CST node "%s"`, node.Tag),
			graphql.ErrKindInternal, op, graphql.ErrorLocationOf(node.Start), ErrUnrecognizedNode)
	}

	return build(node)
}

// BuildDocument builds an ast.Document from a "document" node.
func BuildDocument(node *cst.Node) (ast.Document, error) {
	return buildAs[ast.Document](node)
}

// BuildValue builds an ast.Value from one of the value nodes.
func BuildValue(node *cst.Node) (ast.Value, error) {
	return buildAs[ast.Value](node)
}

// BuildType builds an ast.Type from a "type" node.
func BuildType(node *cst.Node) (ast.Type, error) {
	return buildAs[ast.Type](node)
}

// buildAs builds node and requires the result to be a T.
func buildAs[T any](node *cst.Node) (T, error) {
	var zero T

	result, err := Build(node)
	if err != nil {
		return zero, err
	}

	value, ok := result.(T)
	if !ok {
		return zero, graphql.NewError(
			fmt.Sprintf(`CST node "%s" builds %T, not %T`, node.Tag, result, zero),
			graphql.ErrKindInternal, op, graphql.ErrorLocationOf(node.Start), ErrUnrecognizedNode)
	}

	return value, nil
}

// lookup returns the value of a field that node is required to have.
func lookup(node *cst.Node, name string) (interface{}, error) {
	value, exists := node.Lookup(name)
	if !exists {
		return nil, graphql.NewError(fmt.Sprintf(`CST node "%s" has no field "%s"`, node.Tag, name),
			graphql.ErrKindInternal, op, graphql.ErrorLocationOf(node.Start), ErrMissingField)
	}
	return value, nil
}

// child returns the node in a field. It returns nil without error when the field is present but
// empty, which is how the grammar represents an absent optional part.
func child(node *cst.Node, name string) (*cst.Node, error) {
	value, err := lookup(node, name)
	if err != nil || value == nil {
		return nil, err
	}

	c, ok := value.(*cst.Node)
	if !ok {
		return nil, graphql.NewError(
			fmt.Sprintf(`field "%s" of CST node "%s" holds %T, not a node`, name, node.Tag, value),
			graphql.ErrKindInternal, op, graphql.ErrorLocationOf(node.Start), ErrMissingField)
	}
	return c, nil
}

// requiredChild is like child but fails when the field is empty.
func requiredChild(node *cst.Node, name string) (*cst.Node, error) {
	c, err := child(node, name)
	if err == nil && c == nil {
		err = graphql.NewError(fmt.Sprintf(`field "%s" of CST node "%s" is empty`, name, node.Tag),
			graphql.ErrKindInternal, op, graphql.ErrorLocationOf(node.Start), ErrMissingField)
	}
	return c, err
}

// children returns the nodes in a list field. An empty field yields no node.
func children(node *cst.Node, name string) ([]*cst.Node, error) {
	value, err := lookup(node, name)
	if err != nil || value == nil {
		return nil, err
	}

	items, ok := value.([]interface{})
	if !ok {
		return nil, graphql.NewError(
			fmt.Sprintf(`field "%s" of CST node "%s" holds %T, not a list`, name, node.Tag, value),
			graphql.ErrKindInternal, op, graphql.ErrorLocationOf(node.Start), ErrMissingField)
	}

	result := make([]*cst.Node, 0, len(items))
	for _, item := range items {
		c, ok := item.(*cst.Node)
		if !ok {
			return nil, graphql.NewError(
				fmt.Sprintf(`list "%s" of CST node "%s" holds %T, not a node`, name, node.Tag, item),
				graphql.ErrKindInternal, op, graphql.ErrorLocationOf(node.Start), ErrMissingField)
		}
		result = append(result, c)
	}
	return result, nil
}

// buildChild builds the required node in a field.
func buildChild[T any](node *cst.Node, name string) (T, error) {
	c, err := requiredChild(node, name)
	if err != nil {
		var zero T
		return zero, err
	}
	return buildAs[T](c)
}

// buildOptionalChild builds the node in a field if there's one. It returns zero T otherwise.
func buildOptionalChild[T any](node *cst.Node, name string) (T, error) {
	c, err := child(node, name)
	if err != nil || c == nil {
		var zero T
		return zero, err
	}
	return buildAs[T](c)
}

// buildChildren builds every node in a list field.
func buildChildren[T any](node *cst.Node, name string) ([]T, error) {
	nodes, err := children(node, name)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}

	result := make([]T, len(nodes))
	for i, c := range nodes {
		if result[i], err = buildAs[T](c); err != nil {
			return nil, err
		}
	}
	return result, nil
}
