package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/pytlang/pyt/internal/lexer/token"
)

// cursor walks the source one rune at a time. It tracks two positions:
// the live one and a snapshot of where the pending token started, so a
// token keeps its first character's position even after lookahead
// consumed further characters. Columns count runes, not bytes.
type cursor struct {
	src    []byte
	offset int
	pos    token.Pos
	start  token.Pos
}

func newCursor(filename string, src []byte) *cursor {
	pos := token.NewPosition(filename, 1, 1)
	return &cursor{src: src, pos: pos, start: pos}
}

// peek returns the current rune without consuming it. ok is false only
// at end of input, never for any byte value.
func (c *cursor) peek() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	ch, _ := utf8.DecodeRune(c.src[c.offset:])
	return ch, true
}

// peekNext returns the rune one past the current one without consuming
// anything.
func (c *cursor) peekNext() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	_, size := utf8.DecodeRune(c.src[c.offset:])
	if c.offset+size >= len(c.src) {
		return 0, false
	}
	ch, _ := utf8.DecodeRune(c.src[c.offset+size:])
	return ch, true
}

// skip consumes the current rune. Consuming a newline also resets the
// token-start snapshot: the next token begins fresh on the new line.
func (c *cursor) skip() {
	if c.offset >= len(c.src) {
		return
	}
	ch, size := utf8.DecodeRune(c.src[c.offset:])
	c.offset += size
	c.pos.Move(ch)
	if ch == '\n' {
		c.start = c.pos
	}
}

// skipExpecting consumes the current rune, which must be the expected
// one. A mismatch means a scanner bug, not malformed input.
func (c *cursor) skipExpecting(expected rune) {
	ch, ok := c.peek()
	if !ok || ch != expected {
		panic(fmt.Sprintf("cursor: expected %q at %s, found %q", expected, c.pos, ch))
	}
	c.skip()
}

func (c *cursor) readWhile(isValid func(rune) bool) string {
	start := c.offset
	for {
		ch, ok := c.peek()
		if !ok || !isValid(ch) {
			break
		}
		c.skip()
	}
	return string(c.src[start:c.offset])
}

func (c *cursor) markTokenStart() {
	c.start = c.pos
}

func (c *cursor) tokenStart() token.Pos {
	return c.start
}

func (c *cursor) position() token.Pos {
	return c.pos
}
