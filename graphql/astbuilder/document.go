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

package astbuilder

import (
	"fmt"

	"github.com/mattfenwick/graphqllint/graphql"
	"github.com/mattfenwick/graphqllint/graphql/ast"
	"github.com/mattfenwick/graphqllint/graphql/cst"
)

//===----------------------------------------------------------------------------------------====//
// Selection Sets
//===----------------------------------------------------------------------------------------====//

func buildSelectionSet(node *cst.Node) (interface{}, error) {
	selections, err := buildChildren[ast.Selection](node, "selections")
	if err != nil {
		return nil, err
	}
	return ast.SelectionSet{
		Selections: selections,
		Loc:        node.Range(),
	}, nil
}

func buildOptionalSelectionSet(node *cst.Node) (ast.SelectionSet, error) {
	return buildOptionalChild[ast.SelectionSet](node, "selectionSet")
}

// buildSelection unwraps the field, fragment spread or inline fragment in a "selection" node.
func buildSelection(node *cst.Node) (interface{}, error) {
	return buildChild[ast.Selection](node, "value")
}

func buildField(node *cst.Node) (interface{}, error) {
	alias, err := buildOptionalChild[ast.Name](node, "alias")
	if err != nil {
		return nil, err
	}

	name, err := buildChild[ast.Name](node, "name")
	if err != nil {
		return nil, err
	}

	args, err := buildOptionalArguments(node, "arguments")
	if err != nil {
		return nil, err
	}

	directives, err := buildDirectives(node)
	if err != nil {
		return nil, err
	}

	selectionSet, err := buildOptionalSelectionSet(node)
	if err != nil {
		return nil, err
	}

	return &ast.Field{
		Alias:        alias,
		Name:         name,
		Arguments:    args,
		Directives:   directives,
		SelectionSet: selectionSet,
		Loc:          node.Range(),
	}, nil
}

func buildFragmentSpread(node *cst.Node) (interface{}, error) {
	name, err := buildChild[ast.Name](node, "name")
	if err != nil {
		return nil, err
	}

	directives, err := buildDirectives(node)
	if err != nil {
		return nil, err
	}

	return &ast.FragmentSpread{
		Name:       name,
		Directives: directives,
		Loc:        node.Range(),
	}, nil
}

func buildInlineFragment(node *cst.Node) (interface{}, error) {
	typeCondition, err := buildOptionalChild[ast.NamedType](node, "typeCondition")
	if err != nil {
		return nil, err
	}

	directives, err := buildDirectives(node)
	if err != nil {
		return nil, err
	}

	selectionSet, err := buildChild[ast.SelectionSet](node, "selectionSet")
	if err != nil {
		return nil, err
	}

	return &ast.InlineFragment{
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           node.Range(),
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// Variables
//===----------------------------------------------------------------------------------------====//

func buildVariableDefinition(node *cst.Node) (interface{}, error) {
	variable, err := buildChild[ast.Variable](node, "variable")
	if err != nil {
		return nil, err
	}

	t, err := buildChild[ast.Type](node, "type")
	if err != nil {
		return nil, err
	}

	defaultValue, err := buildOptionalChild[ast.Value](node, "defaultValue")
	if err != nil {
		return nil, err
	}

	return &ast.VariableDefinition{
		Variable:     variable,
		Type:         t,
		DefaultValue: defaultValue,
		Loc:          node.Range(),
	}, nil
}

func buildVariableDefinitions(node *cst.Node) (interface{}, error) {
	definitions, err := buildChildren[*ast.VariableDefinition](node, "definitions")
	if err != nil {
		return nil, err
	}
	return ast.VariableDefinitions(definitions), nil
}

//===----------------------------------------------------------------------------------------====//
// Definitions
//===----------------------------------------------------------------------------------------====//

func buildOperationType(node *cst.Node) (interface{}, error) {
	value, err := lookup(node, "value")
	if err != nil {
		return nil, err
	}

	switch t := ast.OperationType(cst.Text(value)); t {
	case ast.OperationTypeQuery, ast.OperationTypeMutation:
		return t, nil
	default:
		return nil, graphql.NewError(fmt.Sprintf(`unknown operation type "%s"`, t),
			graphql.ErrKindInternal, op, graphql.ErrorLocationOf(node.Start), ErrUnrecognizedNode)
	}
}

func buildOperationDefinition(node *cst.Node) (interface{}, error) {
	operationType, err := buildChild[ast.OperationType](node, "operationType")
	if err != nil {
		return nil, err
	}

	name, err := buildOptionalChild[ast.Name](node, "name")
	if err != nil {
		return nil, err
	}

	variableDefinitions, err := buildOptionalChild[ast.VariableDefinitions](node, "variableDefinitions")
	if err != nil {
		return nil, err
	}

	directives, err := buildDirectives(node)
	if err != nil {
		return nil, err
	}

	selectionSet, err := buildChild[ast.SelectionSet](node, "selectionSet")
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		DefinitionBase: ast.DefinitionBase{
			Directives: directives,
		},
		Type:                operationType,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		SelectionSet:        selectionSet,
		Loc:                 node.Range(),
	}, nil
}

func buildFragmentDefinition(node *cst.Node) (interface{}, error) {
	name, err := buildChild[ast.Name](node, "name")
	if err != nil {
		return nil, err
	}

	// Variable definitions are only parsed when fragment variables are enabled.
	var variableDefinitions ast.VariableDefinitions
	if _, exists := node.Lookup("variableDefinitions"); exists {
		variableDefinitions, err = buildOptionalChild[ast.VariableDefinitions](node, "variableDefinitions")
		if err != nil {
			return nil, err
		}
	}

	typeCondition, err := buildChild[ast.NamedType](node, "typeCondition")
	if err != nil {
		return nil, err
	}

	directives, err := buildDirectives(node)
	if err != nil {
		return nil, err
	}

	selectionSet, err := buildChild[ast.SelectionSet](node, "selectionSet")
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition{
		DefinitionBase: ast.DefinitionBase{
			Directives: directives,
		},
		Name:                name,
		VariableDefinitions: variableDefinitions,
		TypeCondition:       typeCondition,
		SelectionSet:        selectionSet,
		Loc:                 node.Range(),
	}, nil
}

// buildDefinition unwraps the definition in a "definition" node. A bare selection set is the query
// shorthand and builds an operation without type.
func buildDefinition(node *cst.Node) (interface{}, error) {
	value, err := requiredChild(node, "value")
	if err != nil {
		return nil, err
	}

	if value.Tag == cst.TagSelectionSet {
		selectionSet, err := buildAs[ast.SelectionSet](value)
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			SelectionSet: selectionSet,
			Loc:          node.Range(),
		}, nil
	}

	return buildAs[ast.Definition](value)
}

func buildDocument(node *cst.Node) (interface{}, error) {
	definitions, err := buildChildren[ast.Definition](node, "definitions")
	if err != nil {
		return nil, err
	}
	return ast.Document{
		Definitions: definitions,
		Loc:         node.Range(),
	}, nil
}
