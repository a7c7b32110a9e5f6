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

package grammar

import (
	"github.com/mattfenwick/graphqllint/graphql/cst"

	. "github.com/mattfenwick/graphqllint/graphql/combinator"
)

// rules holds the syntactic rules of the grammar.
type rules struct {
	*lexer
	options Options

	// Recursive rules are defined after the rules that refer to them.
	typ          *Rule
	value        *Rule
	selectionSet *Rule

	arguments  Parser
	directives Parser
	document   Parser
}

func newRules(options Options) *rules {
	r := &rules{
		lexer:        newLexer(),
		options:      options,
		typ:          NewRule(cst.TagType),
		value:        NewRule("value"),
		selectionSet: NewRule(cst.TagSelectionSet),
	}

	r.defineType()
	r.defineValue()
	r.defineDirectives()
	r.defineSelectionSet()
	r.defineDocument()

	return r
}

// entry frames p to skip leading trivia and to require the end of input after it.
func (r *rules) entry(p Parser) Parser {
	return Seq2L(Seq2R(Skip(r.ignored), p), End())
}

//	Type ::
//		NamedType
//		ListType
//		NonNullType
//
//	NamedType ::
//		Name
//
//	ListType ::
//		[ Type ]
//
//	NonNullType ::
//		NamedType !
//		ListType !
func (r *rules) defineType() {
	namedType := r.namedType()

	listType := Node(cst.TagListType,
		Field("open", r.punctuator("[")),
		Field("type", Cut("type", r.typ.Parse)),
		Field("close", Cut(`"]"`, r.punctuator("]"))),
	)

	r.typ.Define(Node(cst.TagType,
		Field("baseType", Alt(namedType, listType)),
		Field("bang", Optional(r.punctuator("!"))),
	))
}

func (r *rules) namedType() Parser {
	return Node(cst.TagNamedType,
		Field("name", r.name),
	)
}

//	Value ::
//		Variable
//		IntValue
//		FloatValue
//		StringValue
//		BooleanValue
//		NullValue
//		EnumValue
//		ListValue
//		ObjectValue
//
//	ListValue ::
//		[ ]
//		[ Value+ ]
//
//	ObjectValue ::
//		{ }
//		{ ObjectField+ }
//
//	ObjectField ::
//		Name : Value
func (r *rules) defineValue() {
	list := Node(cst.TagList,
		Field("open", r.punctuator("[")),
		Field("values", Many0(r.value.Parse)),
		Field("close", Cut(`"]"`, r.punctuator("]"))),
	)

	object := Node(cst.TagObject,
		Field("open", r.punctuator("{")),
		Field("fields", Many0(r.argument())),
		Field("close", Cut(`"}"`, r.punctuator("}"))),
	)

	r.value.Define(Alt(
		r.number,
		r.str,
		r.boolean,
		r.null,
		r.enum,
		list,
		object,
		r.variable,
	))
}

//	Argument ::
//		Name : Value
func (r *rules) argument() Parser {
	return Node(cst.TagArgument,
		Field("name", r.name),
		Field("colon", r.punctuator(":")),
		Field("value", r.value.Parse),
	)
}

//	Arguments ::
//		( Argument+ )
//
//	Directives ::
//		Directive+
//
//	Directive ::
//		@ Name Arguments?
func (r *rules) defineDirectives() {
	r.arguments = Node(cst.TagArguments,
		Field("open", r.punctuator("(")),
		Field("arguments", Cut("1 or more arguments", Many1(r.argument()))),
		Field("close", Cut(`")"`, r.punctuator(")"))),
	)

	directive := Node(cst.TagDirective,
		Field("at", r.punctuator("@")),
		Field("name", Cut("name", r.name)),
		Field("arguments", Optional(r.arguments)),
	)

	r.directives = Many0(directive)
}

//	SelectionSet ::
//		{ Selection+ }
//
//	Selection ::
//		Field
//		FragmentSpread
//		InlineFragment
//
//	Field ::
//		Alias? Name Arguments? Directives? SelectionSet?
//
//	Alias ::
//		Name :
//
//	FragmentSpread ::
//		... FragmentName Directives?
//
//	InlineFragment ::
//		... TypeCondition? Directives? SelectionSet
func (r *rules) defineSelectionSet() {
	alias := Node(cst.TagAlias,
		Field("name", r.name),
		Field("colon", r.punctuator(":")),
	)

	field := Node(cst.TagField,
		Field("alias", Optional(alias)),
		Field("name", r.name),
		Field("arguments", Optional(r.arguments)),
		Field("directives", r.directives),
		Field("selectionSet", Optional(r.selectionSet.Parse)),
	)

	fragmentSpread := Node(cst.TagFragmentSpread,
		Field("spread", r.punctuator("...")),
		Field("name", r.fragmentName()),
		Field("directives", r.directives),
	)

	inlineFragment := Node(cst.TagInlineFragment,
		Field("spread", r.punctuator("...")),
		Field("typeCondition", Optional(r.typeCondition())),
		Field("directives", r.directives),
		Field("selectionSet", r.selectionSet.Parse),
	)

	selection := Node(cst.TagSelection,
		Field("value", Alt(field, fragmentSpread, inlineFragment)),
	)

	r.selectionSet.Define(Node(cst.TagSelectionSet,
		Field("open", r.punctuator("{")),
		Field("selections", Cut("1 or more selections", Many1(selection))),
		Field("close", Cut(`"}"`, r.punctuator("}"))),
	))
}

//	FragmentName ::
//		Name but not `on`
func (r *rules) fragmentName() Parser {
	return Node(cst.TagFragmentName,
		Field("name", Check("fragment name", func(value interface{}) bool {
			return value.(*cst.Node).Text() != "on"
		}, r.name)),
	)
}

//	TypeCondition ::
//		on NamedType
func (r *rules) typeCondition() Parser {
	return Node(cst.TagTypeCondition,
		Field("on", r.keyword("on")),
		Field("type", r.namedType()),
	)
}

//	VariableDefinitions ::
//		( VariableDefinition+ )
//
//	VariableDefinition ::
//		Variable : Type DefaultValue?
//
//	DefaultValue ::
//		= Value
func (r *rules) variableDefinitions() Parser {
	defaultValue := Node(cst.TagDefaultValue,
		Field("equals", r.punctuator("=")),
		Field("value", Cut("value", r.value.Parse)),
	)

	variableDefinition := Node(cst.TagVariableDefinition,
		Field("variable", r.variable),
		Field("colon", r.punctuator(":")),
		Field("type", Cut("type", r.typ.Parse)),
		Field("defaultValue", Optional(defaultValue)),
	)

	return Node(cst.TagVariableDefinitions,
		Field("open", r.punctuator("(")),
		Field("definitions", Cut("1 or more variable definitions", Many1(variableDefinition))),
		Field("close", Cut(`")"`, r.punctuator(")"))),
	)
}

//	Document ::
//		Definition+
//
//	Definition ::
//		SelectionSet
//		OperationDefinition
//		FragmentDefinition
//
//	OperationDefinition ::
//		OperationType Name? VariableDefinitions? Directives? SelectionSet
//
//	OperationType ::
//		one of query mutation
//
//	FragmentDefinition ::
//		fragment FragmentName TypeCondition Directives? SelectionSet
//
// With Options.FragmentVariables, FragmentDefinition becomes
//
//	FragmentDefinition ::
//		fragment FragmentName VariableDefinitions? TypeCondition Directives? SelectionSet
func (r *rules) defineDocument() {
	variableDefinitions := r.variableDefinitions()

	operationType := Node(cst.TagOperationType,
		Field("value", Alt(r.keyword("query"), r.keyword("mutation"))),
	)

	operationDefinition := Node(cst.TagOperationDefinition,
		Field("operationType", operationType),
		Field("name", Optional(r.name)),
		Field("variableDefinitions", Optional(variableDefinitions)),
		Field("directives", r.directives),
		Field("selectionSet", r.selectionSet.Parse),
	)

	fragmentFields := []FieldParser{
		Field("fragment", r.keyword("fragment")),
		Field("name", Cut("fragment name", r.fragmentName())),
	}
	if r.options.FragmentVariables {
		fragmentFields = append(fragmentFields,
			Field("variableDefinitions", Optional(variableDefinitions)))
	}
	fragmentFields = append(fragmentFields,
		Field("typeCondition", Cut("type condition", r.typeCondition())),
		Field("directives", r.directives),
		Field("selectionSet", Cut("selection set", r.selectionSet.Parse)),
	)
	fragmentDefinition := Node(cst.TagFragmentDefinition, fragmentFields...)

	definition := Node(cst.TagDefinition,
		Field("value", Alt(r.selectionSet.Parse, operationDefinition, fragmentDefinition)),
	)

	r.document = Node(cst.TagDocument,
		Field("definitions", Cut("1 or more definitions", Many1(definition))),
	)
}
