package printer

import "strings"

// growingLineBuffer is a sparse 2-D character grid addressed by 1-based
// (line, column). One cell holds one rune, matching the scanner's
// rune-counted columns. Writes may arrive for any cell in any order:
// the grid grows on demand in both dimensions and fresh cells default
// to spaces.
type growingLineBuffer struct {
	rows [][]rune
}

func (buff *growingLineBuffer) insert(line, col int, text string) {
	for len(buff.rows) < line {
		buff.rows = append(buff.rows, nil)
	}
	chars := []rune(text)
	row := buff.rows[line-1]
	for len(row) < col-1+len(chars) {
		row = append(row, ' ')
	}
	copy(row[col-1:], chars)
	buff.rows[line-1] = row
}

func (buff *growingLineBuffer) String() string {
	var sb strings.Builder
	for i, row := range buff.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
