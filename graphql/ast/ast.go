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

package ast

import (
	"math/big"
	"strconv"

	"github.com/mattfenwick/graphqllint/graphql/token"
)

// Node represents a node in an AST tree from parsing GraphQL language.
type Node interface {
	// Range indicates the region of the Node in the source.
	Range() token.Range
}

// Name represents a name.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
type Name struct {
	Value string
	Loc   token.Range
}

var _ Node = Name{}

// Range implements Node.
func (node Name) Range() token.Range {
	return node.Loc
}

// IsNil returns true if the name is absent (e.g., a field without alias.)
func (node Name) IsNil() bool {
	return len(node.Value) == 0
}

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//
// A GraphQL Document describes a complete file or request string operated on by a GraphQL service
// or client. A document contains multiple definitions, either executable or representative of a
// GraphQL type system.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Document

// Document represents a GraphQL Document.
//
// Reference: https://facebook.github.io/graphql/June2018/#Document
type Document struct {
	// Definitions defined in the document.
	Definitions Definitions
	Loc         token.Range
}

var _ Node = Document{}

// Range implements Node.
func (node Document) Range() token.Range {
	return node.Loc
}

// Definitions specifies a list of Definition.
type Definitions []Definition

// Definition represents a GraphQL Definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#Definition
type Definition interface {
	Node

	// Directives applied to the definition to provide alternate runtime and validation behaviors.
	// (Prepend "Get" to avoid name collision with the fields in derived class.)
	GetDirectives() Directives

	// definitionNode is a special mark to indicate a Definition node. It makes sure that only
	// definition node can be assigned to Definition.
	definitionNode()
}

// DefinitionBase is a common base that is embedded in Definition implementation.
type DefinitionBase struct {
	// Directives that are applied to the definition
	Directives Directives
}

// GetDirectives provides implementation for Definition.GetDirectives.
func (base DefinitionBase) GetDirectives() Directives {
	return base.Directives
}

// definitionNode marks the embedding node as a Definition.
func (DefinitionBase) definitionNode() {}

// ExecutableDefinition represents an executable definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#ExecutableDefinition
type ExecutableDefinition interface {
	Definition

	// GetSelectionSet specifies the sets of fields to fetch. (Prepend "Get" to avoid name collision
	// with the fields in derived class.)
	GetSelectionSet() SelectionSet
}

var (
	_ ExecutableDefinition = (*OperationDefinition)(nil)
	_ ExecutableDefinition = (*FragmentDefinition)(nil)
)

//===----------------------------------------------------------------------------------------====//
// 2.3 Operations
//===----------------------------------------------------------------------------------------====//
// There are two types of operations that the query grammar models:
//
//	* query – a read‐only fetch.
//	* mutation – a write followed by a fetch.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Operations

// OperationType specifies the type of operation model.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationType
type OperationType string

// Enumeration of OperationType
const (
	OperationTypeQuery    OperationType = "query"
	OperationTypeMutation OperationType = "mutation"
)

// OperationDefinition represents a GraphQL operation.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationDefinition
type OperationDefinition struct {
	DefinitionBase

	// Type of the operation; It is empty for a query shorthand.
	Type OperationType

	// Name of the operation
	Name Name

	// VariableDefinitions contains variables given to the operation
	VariableDefinitions VariableDefinitions

	// SelectionSet specifies the sets of fields to fetch.
	SelectionSet SelectionSet

	Loc token.Range
}

var _ Node = (*OperationDefinition)(nil)

// Range implements Node.
func (definition *OperationDefinition) Range() token.Range {
	return definition.Loc
}

// GetSelectionSet implements ExecutableDefinition.
func (definition *OperationDefinition) GetSelectionSet() SelectionSet {
	return definition.SelectionSet
}

// IsQueryShorthand returns true if this is a short form of query operation such as "{ field }"
// (this is a valid GraphQL Document). Query shorthand doesn't specify operation type. It is
// implicit a query.
func (definition *OperationDefinition) IsQueryShorthand() bool {
	return len(definition.Type) == 0
}

// OperationType returns the type of operation.
func (definition *OperationDefinition) OperationType() OperationType {
	if definition.IsQueryShorthand() {
		return OperationTypeQuery
	}
	return definition.Type
}

//===----------------------------------------------------------------------------------------====//
// 2.4 Selection Sets
//===----------------------------------------------------------------------------------------====//
// An operation selects the set of information it needs, and will receive exactly that information
// and nothing more, avoiding over‐fetching and under‐fetching data.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Selection-Sets

// SelectionSet specifies the information to be fetched. The zero value is an absent selection set
// (e.g., of a leaf field.)
//
// Reference: https://facebook.github.io/graphql/June2018/#SelectionSet
type SelectionSet struct {
	Selections []Selection
	Loc        token.Range
}

var _ Node = SelectionSet{}

// Range implements Node.
func (set SelectionSet) Range() token.Range {
	return set.Loc
}

// IsEmpty returns true if the set contains no selection.
func (set SelectionSet) IsEmpty() bool {
	return len(set.Selections) == 0
}

// Selection represents a field or a set of fields.
//
//	Selection ::
//		Field
//		FragmentSpread
//		InlineFragment
//
// Reference: https://facebook.github.io/graphql/June2018/#Selection
type Selection interface {
	Node

	// selectionNode is a special mark to indicate a Selection node. It makes sure that only selection
	// node can be assigned to Selection.
	selectionNode()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

//===----------------------------------------------------------------------------------------====//
// 2.5 Field
//===----------------------------------------------------------------------------------------====//
// A selection set is primarily composed of fields. A field describes one discrete piece of
// information available to request within a selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Fields

// Field describes a field selection.
//
// Reference: https://facebook.github.io/graphql/June2018/#Field
type Field struct {
	// Alias specifies a different name of the key to be used in response object for returning the
	// field value.
	//
	// Reference: https://facebook.github.io/graphql/June2018/#sec-Field-Alias
	Alias Name

	// Name of the field
	Name Name

	// Arguments taken by the field
	Arguments Arguments

	// Directives applied to the field
	Directives Directives

	// Set of information to be fetched that is nested in the field.
	SelectionSet SelectionSet

	Loc token.Range
}

// Range implements Node.
func (node *Field) Range() token.Range {
	return node.Loc
}

// ResponseKey returns the key of the field in the response: the alias if given, or the name.
func (node *Field) ResponseKey() string {
	if !node.Alias.IsNil() {
		return node.Alias.Value
	}
	return node.Name.Value
}

// selectionNode implements Selection.
func (*Field) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.6 Argument
//===----------------------------------------------------------------------------------------====//
// Fields are conceptually functions which return values, and occasionally accept arguments which
// alter their behavior.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Arguments

// Arguments specifies a list of Arguments
type Arguments []*Argument

// An Argument is an argument taken by a field.
//
// Reference: https://facebook.github.io/graphql/June2018/#Argument
type Argument struct {
	// Name of the argument
	Name Name

	// Value given to the argument
	Value Value

	Loc token.Range
}

var _ Node = (*Argument)(nil)

// Range implements Node.
func (node *Argument) Range() token.Range {
	return node.Loc
}

//===----------------------------------------------------------------------------------------====//
// 2.8 Fragments
//===----------------------------------------------------------------------------------------====//
// Fragments allow for the reuse of common repeated selections of fields, reducing duplicated text
// in the document.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Fragments

// FragmentDefinition represents a reusable selections of fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentDefinition
type FragmentDefinition struct {
	DefinitionBase

	// Name of the fragment
	Name Name

	// VariableDefinitions contains variables given to the fragment; This is an experimental feature
	// and may be subject to change. See RFC in https://github.com/facebook/graphql/issues/204.
	VariableDefinitions VariableDefinitions

	// TypeCondition specifies the type this fragment applies to.
	TypeCondition NamedType

	// SelectionSet describes set of fields to be requested by the fragment
	SelectionSet SelectionSet

	Loc token.Range
}

// Range implements Node.
func (definition *FragmentDefinition) Range() token.Range {
	return definition.Loc
}

// GetSelectionSet implements ExecutableDefinition.
func (definition *FragmentDefinition) GetSelectionSet() SelectionSet {
	return definition.SelectionSet
}

// FragmentSpread uses the spread operator (...) on a fragment to adds a set of fields defined by
// the fragment to selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentSpread
type FragmentSpread struct {
	// Name of the fragment to be consumed by the selection set
	Name Name

	// Directives applied to the fragment
	Directives Directives

	Loc token.Range
}

// Range implements Node.
func (node *FragmentSpread) Range() token.Range {
	return node.Loc
}

// selectionNode implements Selection.
func (*FragmentSpread) selectionNode() {}

// InlineFragment defines a fragment inline within a selection set.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Inline-Fragments
type InlineFragment struct {
	// TypeCondition specifies the type this inline fragment applies to.
	TypeCondition NamedType

	// Directives applied to the inline fragment
	Directives Directives

	// SelectionSet describes the set of fields to be added into current selection set
	SelectionSet SelectionSet

	Loc token.Range
}

// Range implements Node.
func (node *InlineFragment) Range() token.Range {
	return node.Loc
}

// HasTypeCondition returns true if the inline fragment specifies a type condition.
func (node *InlineFragment) HasTypeCondition() bool {
	return !node.TypeCondition.Name.IsNil()
}

// selectionNode implements Selection.
func (*InlineFragment) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//
// Field and directive arguments accept input values of various literal primitives; input values can
// be scalars, enumeration values, lists, or input objects.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Values

// Value represents a node containing a value.
//
// Reference: https://facebook.github.io/graphql/June2018/#Value
type Value interface {
	Node

	// Interface returns the value as an interface{}.
	Interface() interface{}

	// valueNode is a special mark to indicate a Value node. It makes sure that only value node can be
	// assigned to Value.
	valueNode()
}

// The following implement Value interface.
var (
	_ Value = Variable{}
	_ Value = NumberValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// NumberValue represents a value node containing an integer or a float. The literal is kept in Raw
// and its components are decoded into the other fields.
//
// Reference: https://facebook.github.io/graphql/June2018/#IntValue
// Reference: https://facebook.github.io/graphql/June2018/#FloatValue
type NumberValue struct {
	// Raw is the literal as it appears in the source.
	Raw string

	// Integer is the integer part with the sign applied. When IntegerOverflow is set it holds the
	// closest int64 instead.
	Integer         int64
	IntegerOverflow bool

	// Negative is true if the literal starts with "-". It distinguishes "-0" from "0".
	Negative bool

	// Fraction contains the digits after the decimal point; Empty if the literal has no fractional
	// part.
	Fraction string

	// Exponent is the signed exponent; Only meaningful if HasExponent is true. When
	// ExponentOverflow is set it holds the closest int instead.
	Exponent         int
	HasExponent      bool
	ExponentOverflow bool

	Loc token.Range
}

// Range implements Node.
func (value NumberValue) Range() token.Range {
	return value.Loc
}

// IsInt returns true if the literal is an IntValue (i.e., it has neither fraction nor exponent.)
func (value NumberValue) IsInt() bool {
	return len(value.Fraction) == 0 && !value.HasExponent
}

// Interface implements Value. It returns an int64 for an integer literal, a *big.Int for an integer
// literal out of the int64 range and a float64 otherwise. Floats too large for float64 become
// infinities.
func (value NumberValue) Interface() interface{} {
	if value.IsInt() {
		if value.IntegerOverflow {
			i, _ := new(big.Int).SetString(value.Raw, 10)
			return i
		}
		return value.Integer
	}
	f, _ := value.FloatValue()
	return f
}

// FloatValue parses literal into a float64.
func (value NumberValue) FloatValue() (float64, error) {
	return strconv.ParseFloat(value.Raw, 64)
}

// String returns the literal.
func (value NumberValue) String() string {
	return value.Raw
}

// valueNode implements Value.
func (NumberValue) valueNode() {}

// StringValue represents a value node containing a string.
//
// Reference: https://facebook.github.io/graphql/June2018/#StringValue
type StringValue struct {
	// Value is the string with escape sequences decoded.
	Value string
	Loc   token.Range
}

// Range implements Node.
func (value StringValue) Range() token.Range {
	return value.Loc
}

// Interface implements Value.
func (value StringValue) Interface() interface{} {
	return value.Value
}

// valueNode implements Value.
func (StringValue) valueNode() {}

// BooleanValue represents a value node containing a boolean.
//
// Reference: https://facebook.github.io/graphql/June2018/#BooleanValue
type BooleanValue struct {
	Value bool
	Loc   token.Range
}

// Range implements Node.
func (value BooleanValue) Range() token.Range {
	return value.Loc
}

// Interface implements Value.
func (value BooleanValue) Interface() interface{} {
	return value.Value
}

// valueNode implements Value.
func (BooleanValue) valueNode() {}

// NullValue represents the keyword "null".
//
// Reference: https://facebook.github.io/graphql/June2018/#NullValue
type NullValue struct {
	Loc token.Range
}

// Range implements Node.
func (value NullValue) Range() token.Range {
	return value.Loc
}

// Interface implements Value.
func (value NullValue) Interface() interface{} {
	return nil
}

// valueNode implements Value.
func (NullValue) valueNode() {}

// EnumValue represents a value node containing an enum value.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	Value string
	Loc   token.Range
}

// Range implements Node.
func (value EnumValue) Range() token.Range {
	return value.Loc
}

// Interface implements Value.
func (value EnumValue) Interface() interface{} {
	return value.Value
}

// valueNode implements Value.
func (EnumValue) valueNode() {}

// ListValue represents a value node containing list of values.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListValue
type ListValue struct {
	Values []Value
	Loc    token.Range
}

// Range implements Node.
func (value ListValue) Range() token.Range {
	return value.Loc
}

// Interface implements Value.
func (value ListValue) Interface() interface{} {
	// Return an array containing the values returning from calling Interface() on each item.
	result := make([]interface{}, len(value.Values))
	for i := range value.Values {
		result[i] = value.Values[i].Interface()
	}
	return result
}

// valueNode implements Value.
func (ListValue) valueNode() {}

// ObjectValue represents a value node containing list of values
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectValue
type ObjectValue struct {
	Fields []*ObjectField
	Loc    token.Range
}

// Range implements Node.
func (value ObjectValue) Range() token.Range {
	return value.Loc
}

// Interface implements Value.
func (value ObjectValue) Interface() interface{} {
	// Return a map that maps field name to its assigned value.
	values := make(map[string]interface{}, len(value.Fields))
	for _, field := range value.Fields {
		values[field.Name.Value] = field.Value.Interface()
	}
	return values
}

// valueNode implements Value.
func (ObjectValue) valueNode() {}

// ObjectField represent a node that assigns a value to an object field.
//
// https://facebook.github.io/graphql/June2018/#ObjectField
type ObjectField struct {
	// Name of the field being assigned
	Name Name

	// Value that is assigned to the field
	Value Value

	Loc token.Range
}

// Range implements Node.
func (field *ObjectField) Range() token.Range {
	return field.Loc
}

//===----------------------------------------------------------------------------------------====//
// 2.10 Variables
//===----------------------------------------------------------------------------------------====//
// A GraphQL query can be parameterized with variables, maximizing query reuse, and avoiding costly
// string building in clients at runtime.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Variables

// Variable refers to a variable with a name.
//
// Reference: https://facebook.github.io/graphql/June2018/#Variable
type Variable struct {
	// Name of the reference
	Name Name
	Loc  token.Range
}

// Range implements Node.
func (value Variable) Range() token.Range {
	return value.Loc
}

// Interface implements Value.
func (value Variable) Interface() interface{} {
	// Return the name of variable.
	return value.Name.Value
}

// valueNode implements Value.
func (Variable) valueNode() {}

// VariableDefinitions specifies a list of VariableDefinition.
type VariableDefinitions []*VariableDefinition

// VariableDefinition defines a variable.
//
// Reference: https://facebook.github.io/graphql/June2018/#VariableDefinition
type VariableDefinition struct {
	// Variable that is defined by this node
	Variable Variable

	// Type of the variable value
	Type Type

	// DefaultValue describes the value to be used when no input value is supplied to the variable.
	DefaultValue Value

	Loc token.Range
}

// Range implements Node.
func (definition *VariableDefinition) Range() token.Range {
	return definition.Loc
}

//===----------------------------------------------------------------------------------------====//
// 2.11 Type Reference
//===----------------------------------------------------------------------------------------====//
// GraphQL describes the types of data expected by query variables. Input types may be lists of
// another input type, or a non‐null variant of any other input type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-References

// Type describes a type of data.
//
//	Type
//		NamedType
//		ListType
//		NonNullType
//
// Reference: https://facebook.github.io/graphql/June2018/#Type
type Type interface {
	Node

	// typeNode is a special mark to indicate a Type node. It makes sure that only type node can be
	// assigned to Type.
	typeNode()
}

var (
	_ Type = NamedType{}
	_ Type = ListType{}
	_ Type = NonNullType{}
)

// NullableType is a Type that can be wrapped in NonNullType. More specifically, NamedType and
// ListType.
type NullableType interface {
	Type
	nullableTypeNode()
}

var (
	_ NullableType = NamedType{}
	_ NullableType = ListType{}
)

// NamedType refers to a named type.
type NamedType struct {
	// Name of the type referred by this node
	Name Name
}

// Range implements Node.
func (t NamedType) Range() token.Range {
	return t.Name.Range()
}

// typeNode implements Type.
func (NamedType) typeNode() {}

// nullableTypeNode implements NullableType.
func (NamedType) nullableTypeNode() {}

// ListType referes to a list type of an item type.
type ListType struct {
	// ItemType specifies the type of item in the list.
	ItemType Type
	Loc      token.Range
}

// Range implements Node.
func (t ListType) Range() token.Range {
	return t.Loc
}

// typeNode implements Type
func (ListType) typeNode() {}

// nullableTypeNode implements NullableType.
func (ListType) nullableTypeNode() {}

// NonNullType refers to a type that doesn't accept null value.
type NonNullType struct {
	// Type wrapped in this non-null type; Can only be an NamedType or an ListType.
	Type NullableType
	Loc  token.Range
}

// Range implements Node.
func (t NonNullType) Range() token.Range {
	return t.Loc
}

// typeNode implements Type.
func (NonNullType) typeNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.12 Directives
//===----------------------------------------------------------------------------------------====//
// Directives provide a way to describe alternate runtime execution and type validation behavior in
// a GraphQL document.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Directives

// Directives specifies a list of directives
type Directives []*Directive

// Directive applies a GraphQL directive.
type Directive struct {
	// Name of the directive
	Name Name

	// Arguments taken by the directive
	Arguments Arguments

	Loc token.Range
}

var _ Node = (*Directive)(nil)

// Range implements Node.
func (node *Directive) Range() token.Range {
	return node.Loc
}
