package lexer

import (
	"fmt"
	"unicode"

	"github.com/pytlang/pyt/internal/diagnostics"
	"github.com/pytlang/pyt/internal/lexer/token"
)

type Lexer struct {
	Collector *diagnostics.Collector

	filename string
	cursor   *cursor
	tokens   []*token.Token
}

func New(filename string, src []byte, collector *diagnostics.Collector) *Lexer {
	return &Lexer{
		Collector: collector,
		filename:  filename,
		cursor:    newCursor(filename, src),
	}
}

// Tokenize scans the whole input eagerly in a single pass. Any lexical
// fault aborts the scan: no partial stream is returned.
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	for {
		lex.cursor.markTokenStart()
		ch, ok := lex.cursor.peek()
		if !ok {
			break
		}
		err := lex.getToken(ch)
		if err != nil {
			return nil, err
		}
	}
	return lex.tokens, nil
}

func (lex *Lexer) getToken(ch rune) error {
	switch ch {
	case '\n':
		lex.cursor.skip()
		return lex.getIndentation()
	case ' ':
		lex.cursor.skip()
	case '(':
		lex.pushToken(token.OPEN_PAREN)
		lex.cursor.skip()
	case ')':
		lex.pushToken(token.CLOSE_PAREN)
		lex.cursor.skip()
	case '[':
		lex.pushToken(token.OPEN_BRACKET)
		lex.cursor.skip()
	case ']':
		lex.pushToken(token.CLOSE_BRACKET)
		lex.cursor.skip()
	case '{':
		lex.pushToken(token.OPEN_CURLY)
		lex.cursor.skip()
	case '}':
		lex.pushToken(token.CLOSE_CURLY)
		lex.cursor.skip()
	case '|':
		lex.pushToken(token.PIPE)
		lex.cursor.skip()
	case '.':
		lex.pushToken(token.DOT)
		lex.cursor.skip()
	case ',':
		lex.pushToken(token.COMMA)
		lex.cursor.skip()
	case '=':
		if next, ok := lex.cursor.peekNext(); ok && next == '=' {
			lex.pushToken(token.EQUAL_EQUAL)
			lex.cursor.skipExpecting('=')
			lex.cursor.skipExpecting('=')
		} else {
			lex.pushToken(token.EQUAL)
			lex.cursor.skip()
		}
	case '%':
		if next, ok := lex.cursor.peekNext(); ok && next == '=' {
			lex.pushToken(token.PERCENT_EQUAL)
			lex.cursor.skipExpecting('%')
			lex.cursor.skipExpecting('=')
		} else {
			lex.pushToken(token.PERCENT)
			lex.cursor.skip()
		}
	case '+':
		if next, ok := lex.cursor.peekNext(); ok && next == '=' {
			lex.pushToken(token.PLUS_EQUAL)
			lex.cursor.skipExpecting('+')
			lex.cursor.skipExpecting('=')
		} else {
			lex.pushToken(token.PLUS)
			lex.cursor.skip()
		}
	case '*':
		next, _ := lex.cursor.peekNext()
		switch next {
		case '*':
			lex.pushToken(token.STAR_STAR)
			lex.cursor.skipExpecting('*')
			lex.cursor.skipExpecting('*')
		case '=':
			lex.pushToken(token.STAR_EQUAL)
			lex.cursor.skipExpecting('*')
			lex.cursor.skipExpecting('=')
		default:
			lex.pushToken(token.STAR)
			lex.cursor.skip()
		}
	case '/':
		next, _ := lex.cursor.peekNext()
		switch next {
		case '/':
			lex.pushToken(token.SLASH_SLASH)
			lex.cursor.skipExpecting('/')
			lex.cursor.skipExpecting('/')
		case '=':
			lex.pushToken(token.SLASH_EQUAL)
			lex.cursor.skipExpecting('/')
			lex.cursor.skipExpecting('=')
		default:
			lex.pushToken(token.SLASH)
			lex.cursor.skip()
		}
	case '-':
		next, _ := lex.cursor.peekNext()
		switch next {
		case '>':
			lex.pushToken(token.ARROW)
			lex.cursor.skipExpecting('-')
			lex.cursor.skipExpecting('>')
		case '=':
			lex.pushToken(token.MINUS_EQUAL)
			lex.cursor.skipExpecting('-')
			lex.cursor.skipExpecting('=')
		default:
			lex.pushToken(token.MINUS)
			lex.cursor.skip()
		}
	case '>':
		if next, ok := lex.cursor.peekNext(); ok && next == '=' {
			lex.pushToken(token.GREATER_EQ)
			lex.cursor.skipExpecting('>')
			lex.cursor.skipExpecting('=')
		} else {
			lex.pushToken(token.GREATER)
			lex.cursor.skip()
		}
	case '<':
		if next, ok := lex.cursor.peekNext(); ok && next == '=' {
			lex.pushToken(token.LESS_EQ)
			lex.cursor.skipExpecting('<')
			lex.cursor.skipExpecting('=')
		} else {
			lex.pushToken(token.LESS)
			lex.cursor.skip()
		}
	case ':':
		if next, ok := lex.cursor.peekNext(); ok && next == '=' {
			lex.pushToken(token.COLON_EQUAL)
			lex.cursor.skipExpecting(':')
			lex.cursor.skipExpecting('=')
		} else {
			lex.pushToken(token.COLON)
			lex.cursor.skip()
		}
	case '!':
		// There is no bare '!' token
		if next, ok := lex.cursor.peekNext(); ok && next == '=' {
			lex.pushToken(token.BANG_EQUAL)
			lex.cursor.skipExpecting('!')
			lex.cursor.skipExpecting('=')
		} else {
			return lex.reportInvalidContinuation()
		}
	case '\'', '"':
		return lex.getStringLiteral(ch)
	case '#':
		lex.getComment()
	default:
		if unicode.IsLetter(ch) || ch == '_' {
			lex.getNameOrKeyword()
		} else if ch >= '0' && ch <= '9' {
			lex.getNumberLiteral()
		} else {
			return lex.reportUnexpectedChar(ch)
		}
	}
	return nil
}

// getStringLiteral consumes a quote-delimited run verbatim. No escape
// sequences: the closing quote is the first recurrence of the opening
// one. The literal keeps its quotes so reconstruction can write it back
// unchanged.
func (lex *Lexer) getStringLiteral(quote rune) error {
	pos := lex.cursor.tokenStart()
	lex.cursor.skipExpecting(quote)

	content := lex.cursor.readWhile(func(ch rune) bool { return ch != quote })

	if _, ok := lex.cursor.peek(); !ok {
		unterminatedStringLiteral := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: unterminated string literal",
				pos.Filename,
				pos.Line,
				pos.Column,
			),
		}
		lex.Collector.ReportAndSave(unterminatedStringLiteral)
		return diagnostics.TOKENIZER_ERROR_FOUND
	}
	lex.cursor.skipExpecting(quote)

	literal := string(quote) + content + string(quote)
	lex.tokens = append(lex.tokens, token.New(literal, token.STRING, pos))
	return nil
}

func (lex *Lexer) getNameOrKeyword() {
	pos := lex.cursor.tokenStart()
	literal := lex.cursor.readWhile(
		func(chr rune) bool { return unicode.IsNumber(chr) || unicode.IsLetter(chr) || chr == '_' },
	)
	kind := token.NAME
	if token.KEYWORDS[literal] {
		kind = token.KEYWORD
	}
	lex.tokens = append(lex.tokens, token.New(literal, kind, pos))
}

func (lex *Lexer) getNumberLiteral() {
	pos := lex.cursor.tokenStart()
	// Dot placement is not validated, "1.2.3" is a single literal
	literal := lex.cursor.readWhile(
		func(chr rune) bool { return (chr >= '0' && chr <= '9') || chr == '.' },
	)
	lex.tokens = append(lex.tokens, token.New(literal, token.NUMBER, pos))
}

func (lex *Lexer) getComment() {
	pos := lex.cursor.tokenStart()
	lex.cursor.skipExpecting('#')
	literal := lex.cursor.readWhile(func(chr rune) bool { return chr != '\n' })
	lex.tokens = append(lex.tokens, token.New(literal, token.COMMENT, pos))
}

// getIndentation runs right after a newline was consumed. The leading
// space run must be a whole number of 4-space units; each unit becomes
// one INDENT token at the column where it begins.
func (lex *Lexer) getIndentation() error {
	linePos := lex.cursor.position()
	numSpaces := len(lex.cursor.readWhile(func(chr rune) bool { return chr == ' ' }))

	if numSpaces%4 != 0 {
		malformedIndentation := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: malformed indentation, %d leading spaces is not a multiple of 4",
				linePos.Filename,
				linePos.Line,
				linePos.Column,
				numSpaces,
			),
		}
		lex.Collector.ReportAndSave(malformedIndentation)
		return diagnostics.TOKENIZER_ERROR_FOUND
	}

	for i := 0; i < numSpaces/4; i++ {
		pos := linePos
		pos.Column = 1 + 4*i
		lex.tokens = append(lex.tokens, token.New("", token.INDENT, pos))
	}
	return nil
}

func (lex *Lexer) pushToken(kind token.Kind) {
	lex.tokens = append(lex.tokens, token.New("", kind, lex.cursor.tokenStart()))
}

func (lex *Lexer) reportUnexpectedChar(ch rune) error {
	pos := lex.cursor.position()
	unexpectedCharacter := diagnostics.Diag{
		Message: fmt.Sprintf("%s:%d:%d: unexpected character %q", pos.Filename, pos.Line, pos.Column, ch),
	}
	lex.Collector.ReportAndSave(unexpectedCharacter)
	return diagnostics.TOKENIZER_ERROR_FOUND
}

func (lex *Lexer) reportInvalidContinuation() error {
	pos := lex.cursor.position()
	invalidContinuation := diagnostics.Diag{
		Message: fmt.Sprintf(
			"%s:%d:%d: invalid operator: no '!' token exists without a following '='",
			pos.Filename,
			pos.Line,
			pos.Column,
		),
	}
	lex.Collector.ReportAndSave(invalidContinuation)
	return diagnostics.TOKENIZER_ERROR_FOUND
}
