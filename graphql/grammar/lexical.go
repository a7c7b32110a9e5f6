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
	"strconv"

	"github.com/mattfenwick/graphqllint/graphql/cst"

	. "github.com/mattfenwick/graphqllint/graphql/combinator"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNonZeroDigit(r rune) bool {
	return r >= '1' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || isDigit(r)
}

// lexer holds the token rules.
type lexer struct {
	ignored Parser

	name     Parser
	number   Parser
	str      Parser
	boolean  Parser
	null     Parser
	enum     Parser
	variable Parser
}

func newLexer() *lexer {
	lex := &lexer{}

	//	Comment ::
	//		# CommentChar*
	comment := Node(cst.TagComment,
		Field("open", Literal("#")),
		Field("body", Many0(Not1("comment character", OneOf("\n\r")))),
	)

	//	Ignored ::
	//		UnicodeBOM
	//		WhiteSpace
	//		LineTerminator
	//		Comment
	//		Comma
	lex.ignored = Many0(Alt(
		OneOf("\t "),
		Literal("\n"),
		Literal("\r\n"),
		Literal("\r"),
		comment,
		Literal(","),
		Literal("\uFEFF"),
	))

	//	Name ::
	//		/[_A-Za-z][_0-9A-Za-z]*/
	lex.name = lex.munch(Node(cst.TagName,
		Field("first", Satisfy("name", isNameStart)),
		Field("rest", Many0(Satisfy("name character", isNameContinue))),
	))

	lex.number = lex.munch(Seq2L(lex.numberNode(), NotFollowedBy("end of number",
		Satisfy("name character or '.'", func(r rune) bool {
			return isNameContinue(r) || r == '.'
		}))))

	lex.str = lex.munch(lex.stringNode())

	//	BooleanValue ::
	//		true
	//		false
	lex.boolean = Node(cst.TagBoolean,
		Field("value", Alt(lex.keyword("true"), lex.keyword("false"))),
	)

	//	NullValue ::
	//		null
	lex.null = Node(cst.TagNull,
		Field("value", lex.keyword("null")),
	)

	//	EnumValue ::
	//		Name but not `true`, `false` or `null`
	lex.enum = Node(cst.TagEnum,
		Field("value", Check("enum value", func(value interface{}) bool {
			switch value.(*cst.Node).Text() {
			case "true", "false", "null":
				return false
			}
			return true
		}, lex.name)),
	)

	//	Variable ::
	//		$ Name
	lex.variable = Node(cst.TagVariable,
		Field("dollar", lex.punctuator("$")),
		Field("name", Cut("name", lex.name)),
	)

	return lex
}

// munch makes p consume the trivia that follows it.
func (lex *lexer) munch(p Parser) Parser {
	return Munch(p, lex.ignored)
}

// punctuator matches the given punctuator text.
func (lex *lexer) punctuator(text string) Parser {
	return lex.munch(Literal(text))
}

// keyword matches word when it is not merely the prefix of a longer name.
func (lex *lexer) keyword(word string) Parser {
	return lex.munch(Label(strconv.Quote(word), Seq2L(
		Literal(word),
		NotFollowedBy("end of keyword", Satisfy("name character", isNameContinue)),
	)))
}

//	IntValue ::
//		IntegerPart
//
//	FloatValue ::
//		IntegerPart FractionalPart
//		IntegerPart ExponentPart
//		IntegerPart FractionalPart ExponentPart
//
//	IntegerPart ::
//		NegativeSign? 0
//		NegativeSign? NonZeroDigit Digit*
//
//	FractionalPart ::
//		. Digit+
//
//	ExponentPart ::
//		ExponentIndicator Sign? Digit+
//
// The digits after "." and after the exponent indicator are required once the indicator has been
// seen.
func (lex *lexer) numberNode() Parser {
	digit := Satisfy("digit", isDigit)

	zero := Node(cst.TagZero,
		Field("value", Satisfy("digit", func(r rune) bool { return r == '0' })),
	)

	integer := Node(cst.TagInteger,
		Field("first", Satisfy("digit", isNonZeroDigit)),
		Field("rest", Many0(digit)),
	)

	fraction := Node(cst.TagFraction,
		Field("dot", Literal(".")),
		Field("digits", Cut("digits", Many1(digit))),
	)

	exponent := Node(cst.TagExponent,
		Field("indicator", OneOf("eE")),
		Field("sign", Optional(OneOf("+-"))),
		Field("digits", Cut("digits", Many1(digit))),
	)

	return Node(cst.TagNumber,
		Field("sign", Optional(Literal("-"))),
		Field("integer", Alt(zero, integer)),
		Field("fraction", Optional(fraction)),
		Field("exponent", Optional(exponent)),
	)
}

//	StringValue ::
//		" StringCharacter* "
//
//	StringCharacter ::
//		SourceCharacter but not " or \
//		\u EscapedUnicode
//		\ EscapedCharacter
//
//	EscapedUnicode ::
//		/[0-9A-Fa-f]{4}/
//
//	EscapedCharacter ::
//		one of " \ / b f n r t
func (lex *lexer) stringNode() Parser {
	hexDigit := Satisfy("hex digit", isHexDigit)

	plainChar := Node(cst.TagPlainChar,
		Field("value", Not1("string character", OneOf(`"\`))),
	)

	unicodeEscape := Node(cst.TagUnicodeEscape,
		Field("open", Literal(`\u`)),
		Field("digits", Cut("4 hex digits", Seq(hexDigit, hexDigit, hexDigit, hexDigit))),
	)

	simpleEscape := Node(cst.TagSimpleEscape,
		Field("backslash", Literal(`\`)),
		Field("value", Cut("escape character", OneOf(`"\/bfnrt`))),
	)

	return Node(cst.TagString,
		Field("open", Literal(`"`)),
		Field("body", Many0(Alt(plainChar, unicodeEscape, simpleEscape))),
		Field("close", Cut("closing quote", Literal(`"`))),
	)
}
