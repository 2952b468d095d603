// Package printer renders a token stream back into text: either as a
// per-line debug dump or as reconstructed source laid out at the exact
// positions the tokens were scanned from.
package printer

import (
	"strings"

	"github.com/pytlang/pyt/internal/lexer/token"
)

// Dump groups tokens by source line and renders every line from 1 up to
// the last tokenized one, each as the space-separated forms of its
// tokens. Lines without tokens render empty.
func Dump(tokens []*token.Token) string {
	totalLines := 0
	for _, tok := range tokens {
		if tok.Pos.Line > totalLines {
			totalLines = tok.Pos.Line
		}
	}

	var sb strings.Builder
	for line := 1; line <= totalLines; line++ {
		if line > 1 {
			sb.WriteByte('\n')
		}
		first := true
		for _, tok := range tokens {
			if tok.Pos.Line != line {
				continue
			}
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteString(tok.String())
			first = false
		}
	}
	return sb.String()
}

// Source rebuilds source text from a token stream by writing each
// token's text at its recorded position. Cells no token covers stay
// spaces, so blank runs the scanner collapsed come back as spaces and
// everything else round-trips exactly.
func Source(tokens []*token.Token) string {
	buff := growingLineBuffer{}
	for _, tok := range tokens {
		buff.insert(tok.Pos.Line, tok.Pos.Column, tok.Text())
	}
	return buff.String()
}
