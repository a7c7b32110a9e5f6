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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/mattfenwick/graphqllint/graphql"
	"github.com/mattfenwick/graphqllint/graphql/ast"
	"github.com/mattfenwick/graphqllint/graphql/cst"
)

func buildName(node *cst.Node) (interface{}, error) {
	return ast.Name{
		Value: node.Text(),
		Loc:   node.Range(),
	}, nil
}

// buildWrappedName builds the name in the "name" field of node (e.g., an alias or a fragment name).
func buildWrappedName(node *cst.Node) (interface{}, error) {
	return buildChild[ast.Name](node, "name")
}

func buildNumber(node *cst.Node) (interface{}, error) {
	value := ast.NumberValue{
		Raw: node.Text(),
		Loc: node.Range(),
	}

	sign, err := lookup(node, "sign")
	if err != nil {
		return nil, err
	}
	value.Negative = sign != nil

	integer, err := requiredChild(node, "integer")
	if err != nil {
		return nil, err
	}
	value.Integer, value.IntegerOverflow = parseInt(cst.Text(sign)+integer.Text(), 64)

	fraction, err := child(node, "fraction")
	if err != nil {
		return nil, err
	}
	if fraction != nil {
		digits, err := lookup(fraction, "digits")
		if err != nil {
			return nil, err
		}
		value.Fraction = cst.Text(digits)
	}

	exponent, err := child(node, "exponent")
	if err != nil {
		return nil, err
	}
	if exponent != nil {
		sign, err := lookup(exponent, "sign")
		if err != nil {
			return nil, err
		}
		digits, err := lookup(exponent, "digits")
		if err != nil {
			return nil, err
		}
		var e int64
		e, value.ExponentOverflow = parseInt(cst.Text(sign)+cst.Text(digits), strconv.IntSize)
		value.HasExponent = true
		value.Exponent = int(e)
	}

	return value, nil
}

// parseInt parses a decimal literal the grammar has already validated. A literal out of range yields
// the closest representable value and overflow set.
func parseInt(literal string, bitSize int) (n int64, overflow bool) {
	n, err := strconv.ParseInt(literal, 10, bitSize)
	return n, errors.Is(err, strconv.ErrRange)
}

// escapedCharacters maps the character after "\" to the one it stands for.
var escapedCharacters = map[string]rune{
	`"`: '"',
	`\`: '\\',
	`/`: '/',
	`b`: '\b',
	`f`: '\f',
	`n`: '\n',
	`r`: '\r',
	`t`: '\t',
}

func buildString(node *cst.Node) (interface{}, error) {
	chars, err := children(node, "body")
	if err != nil {
		return nil, err
	}

	var (
		b         strings.Builder
		surrogate rune = -1 // pending high surrogate
	)
	flushSurrogate := func() {
		if surrogate >= 0 {
			b.WriteRune(utf16.DecodeRune(surrogate, 0))
			surrogate = -1
		}
	}

	for _, char := range chars {
		switch char.Tag {
		case cst.TagPlainChar:
			flushSurrogate()
			value, err := lookup(char, "value")
			if err != nil {
				return nil, err
			}
			b.WriteString(cst.Text(value))

		case cst.TagSimpleEscape:
			flushSurrogate()
			value, err := lookup(char, "value")
			if err != nil {
				return nil, err
			}
			r, ok := escapedCharacters[cst.Text(value)]
			if !ok {
				return nil, graphql.NewError(fmt.Sprintf(`unknown escape sequence "\%s"`, cst.Text(value)),
					graphql.ErrKindInternal, op, graphql.ErrorLocationOf(char.Start), ErrUnrecognizedNode)
			}
			b.WriteRune(r)

		case cst.TagUnicodeEscape:
			digits, err := lookup(char, "digits")
			if err != nil {
				return nil, err
			}
			code, err := strconv.ParseUint(cst.Text(digits), 16, 32)
			if err != nil {
				return nil, graphql.NewError("malformed unicode escape", graphql.ErrKindInternal, op,
					graphql.ErrorLocationOf(char.Start), err)
			}
			r := rune(code)

			switch {
			case surrogate >= 0 && r >= 0xDC00 && r <= 0xDFFF:
				// Complete the pair.
				b.WriteRune(utf16.DecodeRune(surrogate, r))
				surrogate = -1
			case r >= 0xD800 && r <= 0xDBFF:
				flushSurrogate()
				surrogate = r
			default:
				flushSurrogate()
				b.WriteRune(r)
			}

		default:
			return nil, graphql.NewError(fmt.Sprintf(`unexpected CST node "%s" in string`, char.Tag),
				graphql.ErrKindInternal, op, graphql.ErrorLocationOf(char.Start), ErrUnrecognizedNode)
		}
	}
	flushSurrogate()

	return ast.StringValue{
		Value: b.String(),
		Loc:   node.Range(),
	}, nil
}

func buildBoolean(node *cst.Node) (interface{}, error) {
	value, err := lookup(node, "value")
	if err != nil {
		return nil, err
	}
	return ast.BooleanValue{
		Value: cst.Text(value) == "true",
		Loc:   node.Range(),
	}, nil
}

func buildNull(node *cst.Node) (interface{}, error) {
	return ast.NullValue{
		Loc: node.Range(),
	}, nil
}

func buildEnum(node *cst.Node) (interface{}, error) {
	name, err := buildChild[ast.Name](node, "value")
	if err != nil {
		return nil, err
	}
	return ast.EnumValue{
		Value: name.Value,
		Loc:   node.Range(),
	}, nil
}

func buildVariable(node *cst.Node) (interface{}, error) {
	name, err := buildChild[ast.Name](node, "name")
	if err != nil {
		return nil, err
	}
	return ast.Variable{
		Name: name,
		Loc:  node.Range(),
	}, nil
}

func buildList(node *cst.Node) (interface{}, error) {
	values, err := buildChildren[ast.Value](node, "values")
	if err != nil {
		return nil, err
	}
	return ast.ListValue{
		Values: values,
		Loc:    node.Range(),
	}, nil
}

func buildObject(node *cst.Node) (interface{}, error) {
	args, err := buildChildren[*ast.Argument](node, "fields")
	if err != nil {
		return nil, err
	}

	var fields []*ast.ObjectField
	if len(args) > 0 {
		fields = make([]*ast.ObjectField, len(args))
		for i, arg := range args {
			fields[i] = &ast.ObjectField{
				Name:  arg.Name,
				Value: arg.Value,
				Loc:   arg.Loc,
			}
		}
	}

	return ast.ObjectValue{
		Fields: fields,
		Loc:    node.Range(),
	}, nil
}

func buildArgument(node *cst.Node) (interface{}, error) {
	name, err := buildChild[ast.Name](node, "name")
	if err != nil {
		return nil, err
	}
	value, err := buildChild[ast.Value](node, "value")
	if err != nil {
		return nil, err
	}
	return &ast.Argument{
		Name:  name,
		Value: value,
		Loc:   node.Range(),
	}, nil
}

func buildArguments(node *cst.Node) (interface{}, error) {
	args, err := buildChildren[*ast.Argument](node, "arguments")
	if err != nil {
		return nil, err
	}
	return ast.Arguments(args), nil
}

// buildOptionalArguments builds the "arguments" node in the field of given name.
func buildOptionalArguments(node *cst.Node, name string) (ast.Arguments, error) {
	return buildOptionalChild[ast.Arguments](node, name)
}

func buildDirective(node *cst.Node) (interface{}, error) {
	name, err := buildChild[ast.Name](node, "name")
	if err != nil {
		return nil, err
	}
	args, err := buildOptionalArguments(node, "arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Directive{
		Name:      name,
		Arguments: args,
		Loc:       node.Range(),
	}, nil
}

func buildDirectives(node *cst.Node) (ast.Directives, error) {
	directives, err := buildChildren[*ast.Directive](node, "directives")
	if err != nil {
		return nil, err
	}
	return ast.Directives(directives), nil
}

func buildDefaultValue(node *cst.Node) (interface{}, error) {
	return buildChild[ast.Value](node, "value")
}

//===----------------------------------------------------------------------------------------====//
// Types
//===----------------------------------------------------------------------------------------====//

func buildNamedType(node *cst.Node) (interface{}, error) {
	name, err := buildChild[ast.Name](node, "name")
	if err != nil {
		return nil, err
	}
	return ast.NamedType{
		Name: name,
	}, nil
}

func buildListType(node *cst.Node) (interface{}, error) {
	itemType, err := buildChild[ast.Type](node, "type")
	if err != nil {
		return nil, err
	}
	return ast.ListType{
		ItemType: itemType,
		Loc:      node.Range(),
	}, nil
}

func buildType(node *cst.Node) (interface{}, error) {
	baseType, err := buildChild[ast.NullableType](node, "baseType")
	if err != nil {
		return nil, err
	}

	bang, err := lookup(node, "bang")
	if err != nil {
		return nil, err
	}
	if bang == nil {
		return baseType, nil
	}

	return ast.NonNullType{
		Type: baseType,
		Loc:  node.Range(),
	}, nil
}

func buildTypeCondition(node *cst.Node) (interface{}, error) {
	return buildChild[ast.NamedType](node, "type")
}
