package token

import "fmt"

type Token struct {
	Literal string
	Kind    Kind
	Pos     Pos
}

func New(literal string, kind Kind, position Pos) *Token {
	return &Token{Literal: literal, Kind: kind, Pos: position}
}

// String is the per-line dump form: "indent" for indentation units,
// "kind(literal)" for literal-carrying kinds and the symbol text for
// everything else.
func (token *Token) String() string {
	if token.Kind.HasLiteral() {
		return fmt.Sprintf("%s(%s)", token.Kind, token.Literal)
	}
	return token.Kind.String()
}

// Text is the exact source text the token stands for, as written back
// during reconstruction.
func (token *Token) Text() string {
	switch token.Kind {
	case COMMENT:
		return "#" + token.Literal
	case INDENT:
		return "    "
	default:
		if token.Kind.HasLiteral() {
			return token.Literal
		}
		return token.Kind.String()
	}
}
