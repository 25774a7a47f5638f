package state

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ParseBoard parses a board diagram: 8 non-blank lines, from rank 8 to rank 1, each with
// 8 piece characters (see ParsePiece), optionally separated by spaces. Example:
//
//	. . . . R . . k
//	. . . . R . . .
//	. . . . . . . .
//	. . . . . . . .
//	. . . . . . . .
//	. . . . . . . .
//	. . . . . . . .
//	. . . . . . . K
func ParseBoard(diagram string) (*Board, error) {
	b := NewBoard()
	row := 0
	for lineNum, line := range strings.Split(diagram, "\n") {
		chars := []rune(strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, line))
		if len(chars) == 0 {
			continue
		}
		if row >= BoardSize {
			return nil, errors.Errorf("board diagram line %d: more than %d rows", lineNum+1, BoardSize)
		}
		if len(chars) != BoardSize {
			return nil, errors.Errorf("board diagram line %d: found %d squares in %q, expected %d",
				lineNum+1, len(chars), strings.TrimSpace(line), BoardSize)
		}
		for col, c := range chars {
			p, err := ParsePiece(c)
			if err != nil {
				return nil, errors.WithMessagef(err, "board diagram line %d, column %d", lineNum+1, col+1)
			}
			b.squares[Pos{int8(row), int8(col)}.index()] = p
		}
		row++
	}
	if row != BoardSize {
		return nil, errors.Errorf("board diagram has %d rows, expected %d", row, BoardSize)
	}
	return b, nil
}

// String returns the board diagram in the format accepted by ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		for col := range BoardSize {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.At(Pos{int8(row), int8(col)}).Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
