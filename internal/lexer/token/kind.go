package token

import (
	"log"
)

type Kind int

const (
	// (
	OPEN_PAREN Kind = iota
	// )
	CLOSE_PAREN

	// [
	OPEN_BRACKET
	// ]
	CLOSE_BRACKET

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// =
	EQUAL
	// ==
	EQUAL_EQUAL
	// !=
	BANG_EQUAL

	// >
	GREATER
	// >=
	GREATER_EQ
	// <
	LESS
	// <=
	LESS_EQ

	// +
	PLUS
	// -
	MINUS
	// *
	STAR
	// /
	SLASH
	// %
	PERCENT
	// **
	STAR_STAR
	// //
	SLASH_SLASH

	// +=
	PLUS_EQUAL
	// -=
	MINUS_EQUAL
	// *=
	STAR_EQUAL
	// /=
	SLASH_EQUAL
	// %=
	PERCENT_EQUAL

	// ->
	ARROW
	// |
	PIPE

	// :
	COLON
	// :=
	COLON_EQUAL

	// .
	DOT
	// ,
	COMMA

	// Variable-content kinds. All of these carry a literal, except
	// INDENT, which always stands for exactly one 4-space unit.
	KEYWORD
	STRING
	NUMBER
	NAME
	COMMENT
	INDENT
)

var KEYWORDS map[string]bool = map[string]bool{
	"if":          true,
	"else":        true,
	"elif":        true,
	"match":       true,
	"case":        true,
	"for":         true,
	"while":       true,
	"is":          true,
	"as":          true,
	"def":         true,
	"class":       true,
	"return":      true,
	"from":        true,
	"import":      true,
	"None":        true,
	"True":        true,
	"False":       true,
	"print":       true,
	"with":        true,
	"open":        true,
	"int":         true,
	"float":       true,
	"str":         true,
	"repr":        true,
	"len":         true,
	"range":       true,
	"enumerate":   true,
	"max":         true,
	"min":         true,
	"self":        true,
	"assert":      true,
	"raise":       true,
	"Exception":   true,
	"SyntaxError": true,
	"__name__":    true,
}

// HasLiteral tells whether tokens of this kind carry a literal payload.
func (kind Kind) HasLiteral() bool {
	switch kind {
	case KEYWORD, STRING, NUMBER, NAME, COMMENT:
		return true
	default:
		return false
	}
}

func (kind Kind) String() string {
	switch kind {
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_BRACKET:
		return "["
	case CLOSE_BRACKET:
		return "]"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case EQUAL:
		return "="
	case EQUAL_EQUAL:
		return "=="
	case BANG_EQUAL:
		return "!="
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case STAR_STAR:
		return "**"
	case SLASH_SLASH:
		return "//"
	case PLUS_EQUAL:
		return "+="
	case MINUS_EQUAL:
		return "-="
	case STAR_EQUAL:
		return "*="
	case SLASH_EQUAL:
		return "/="
	case PERCENT_EQUAL:
		return "%="
	case ARROW:
		return "->"
	case PIPE:
		return "|"
	case COLON:
		return ":"
	case COLON_EQUAL:
		return ":="
	case DOT:
		return "."
	case COMMA:
		return ","
	case KEYWORD:
		return "keyword"
	case STRING:
		return "string"
	case NUMBER:
		return "number"
	case NAME:
		return "name"
	case COMMENT:
		return "comment"
	case INDENT:
		return "indent"
	default:
		log.Fatalf("String() method not defined for the following token kind '%d'", kind)
	}
	return ""
}
