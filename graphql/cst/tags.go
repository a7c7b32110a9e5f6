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

// Tags of the nodes produced by the query grammar.
const (
	// Ignored tokens
	TagComment = "comment"

	// Lexical tokens
	TagName          = "name"
	TagZero          = "zero"
	TagInteger       = "integer"
	TagFraction      = "fraction"
	TagExponent      = "exponent"
	TagNumber        = "number"
	TagPlainChar     = "plainChar"
	TagUnicodeEscape = "unicodeEscape"
	TagSimpleEscape  = "simpleEscape"
	TagString        = "string"
	TagBoolean       = "boolean"
	TagNull          = "null"
	TagEnum          = "enum"
	TagVariable      = "variable"

	// Types
	TagNamedType = "namedType"
	TagListType  = "listType"
	TagType      = "type"

	// Values, arguments and directives
	TagArgument  = "argument"
	TagArguments = "arguments"
	TagDirective = "directive"
	TagList      = "list"
	TagObject    = "object"

	// Query document
	TagFragmentName        = "fragmentName"
	TagTypeCondition       = "typeCondition"
	TagAlias               = "alias"
	TagField               = "field"
	TagFragmentSpread      = "fragmentSpread"
	TagInlineFragment      = "inlineFragment"
	TagSelection           = "selection"
	TagSelectionSet        = "selectionSet"
	TagOperationType       = "operationType"
	TagDefaultValue        = "defaultValue"
	TagVariableDefinition  = "variableDefinition"
	TagVariableDefinitions = "variableDefinitions"
	TagOperationDefinition = "operationDefinition"
	TagFragmentDefinition  = "fragmentDefinition"
	TagDefinition          = "definition"
	TagDocument            = "document"
)

// IsLexical returns true if nodes with the tag are matched character by character and render as a
// single token.
func IsLexical(tag string) bool {
	switch tag {
	case TagComment, TagName, TagZero, TagInteger, TagFraction, TagExponent, TagNumber,
		TagPlainChar, TagUnicodeEscape, TagSimpleEscape, TagString:
		return true
	}
	return false
}
