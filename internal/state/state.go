// Package state holds the game state of the chess-like game played by the engines:
// colors, piece marks, positions, moves and the Board.
//
// A Board is never modified after it is built: Board.Act returns a new one. This makes
// boards safe to share among goroutines without synchronization.
package state

import (
	"fmt"

	"github.com/pkg/errors"
)

// Color of a player: either White or Black.
type Color uint8

const (
	White Color = iota
	Black

	// NoColor is returned as the color of empty squares.
	NoColor
)

const (
	// NumColors is the number of players.
	NumColors = 2

	// BoardSize is the number of rows and columns of the board.
	BoardSize = 8

	// NumSquares in the board.
	NumSquares = BoardSize * BoardSize
)

var colorNames = [...]string{"White", "Black", "NoColor"}

// String returns the name of the color.
func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", c)
	}
	return colorNames[c]
}

// Opposite returns the other player. NoColor is its own opposite.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// Sign is +1 for White, -1 for Black and 0 for NoColor.
// Piece values are stored from White's perspective, and multiplied by the sign to get
// the value from the perspective of a player.
func (c Color) Sign() int {
	switch c {
	case White:
		return 1
	case Black:
		return -1
	}
	return 0
}

// Piece is the content of a square: Empty or one of the 12 colored pieces.
// All information about a piece is looked up from tables indexed by its ordinal.
type Piece uint8

const (
	Empty Piece = iota

	WPawn
	WRook
	WKnight
	WBishop
	WQueen
	WKing

	BPawn
	BRook
	BKnight
	BBishop
	BQueen
	BKing

	// NumPieces includes Empty.
	NumPieces
)

// Kind of piece, regardless of the color.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

var (
	// AllPieces lists the 12 non-empty pieces.
	AllPieces = [NumPieces - 1]Piece{
		WPawn, WRook, WKnight, WBishop, WQueen, WKing,
		BPawn, BRook, BKnight, BBishop, BQueen, BKing,
	}

	// PieceChars follow https://en.wikipedia.org/wiki/Forsyth%E2%80%93Edwards_Notation, with '.' for Empty.
	PieceChars = [NumPieces]rune{'.', 'P', 'R', 'N', 'B', 'Q', 'K', 'p', 'r', 'n', 'b', 'q', 'k'}

	// PieceUnicode glyphs, with a space for Empty.
	PieceUnicode = [NumPieces]rune{' ', '♙', '♖', '♘', '♗', '♕', '♔', '♟', '♜', '♞', '♝', '♛', '♚'}

	// PieceValues from White's perspective, see https://en.wikipedia.org/wiki/Chess_piece_relative_value.
	// Kings are worth 0: losing the king is handled by the search as a terminal state.
	PieceValues = [NumPieces]int{0, 1, 5, 3, 3, 9, 0, -1, -5, -3, -3, -9, 0}

	pieceColors = [NumPieces]Color{
		NoColor,
		White, White, White, White, White, White,
		Black, Black, Black, Black, Black, Black,
	}
	pieceKinds = [NumPieces]Kind{
		NoKind,
		Pawn, Rook, Knight, Bishop, Queen, King,
		Pawn, Rook, Knight, Bishop, Queen, King,
	}
	charToPiece = func() map[rune]Piece {
		m := make(map[rune]Piece, NumPieces)
		for p, c := range PieceChars {
			m[c] = Piece(p)
		}
		return m
	}()
)

// ParsePiece converts a FEN-like character to a Piece. '.' is Empty.
func ParsePiece(c rune) (Piece, error) {
	p, found := charToPiece[c]
	if !found {
		return Empty, errors.Errorf("invalid piece: %q", c)
	}
	return p, nil
}

// MakePiece returns the piece of the given color and kind.
// It returns Empty for NoColor or NoKind.
func MakePiece(color Color, kind Kind) Piece {
	if color > Black || kind == NoKind || kind > King {
		return Empty
	}
	return Piece(uint8(color)*6 + uint8(kind))
}

// Char returns the ASCII (FEN) representation of the piece.
func (p Piece) Char() rune { return PieceChars[p] }

// Unicode returns the chess glyph of the piece.
func (p Piece) Unicode() rune { return PieceUnicode[p] }

// Value returns the material value of the piece, positive for White pieces and negative for Black ones.
func (p Piece) Value() int { return PieceValues[p] }

// Color returns the owner of the piece, or NoColor if Empty.
func (p Piece) Color() Color { return pieceColors[p] }

// Kind returns the kind of the piece, or NoKind if Empty.
func (p Piece) Kind() Kind { return pieceKinds[p] }

// IsEmpty returns whether p is the Empty square.
func (p Piece) IsEmpty() bool { return p == Empty }

// IsKing returns whether p is a king of any color.
func (p Piece) IsKing() bool { return pieceKinds[p] == King }

// String implements fmt.Stringer.
func (p Piece) String() string { return string(PieceChars[p]) }

// Pos is a position on the board: row and column, both from 0 to 7.
// Row 0 is the top of a diagram (rank 8), and column 0 is file "a".
type Pos [2]int8

// Row of the position, 0 is rank 8.
func (pos Pos) Row() int8 { return pos[0] }

// Col of the position, 0 is file "a".
func (pos Pos) Col() int8 { return pos[1] }

// Valid returns whether the position is inside the board.
func (pos Pos) Valid() bool {
	return pos[0] >= 0 && pos[0] < BoardSize && pos[1] >= 0 && pos[1] < BoardSize
}

// Add returns pos shifted by delta.
func (pos Pos) Add(delta Pos) Pos {
	return Pos{pos[0] + delta[0], pos[1] + delta[1]}
}

func (pos Pos) index() int {
	return int(pos[0])*BoardSize + int(pos[1])
}

func posFromIndex(idx int) Pos {
	return Pos{int8(idx / BoardSize), int8(idx % BoardSize)}
}

// String returns the algebraic name of the square, e.g. "e4".
func (pos Pos) String() string {
	if !pos.Valid() {
		return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
	}
	return fmt.Sprintf("%c%c", 'a'+pos[1], '8'-pos[0])
}

// ParsePos parses an algebraic square name like "e4".
func ParsePos(s string) (Pos, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Pos{}, errors.Errorf("invalid square %q", s)
	}
	return Pos{int8('8' - s[1]), int8(s[0] - 'a')}, nil
}

// Move from one square to another. Promotion is set (to a piece of the moving color) only
// when a pawn reaches the last row.
type Move struct {
	From, To  Pos
	Promotion Piece
}

// NoMove represents the absence of a move: it is returned by searches when there are no
// legal moves available.
var NoMove = Move{}

// IsNone returns whether m represents NoMove. No real move has the same origin and destination.
func (m Move) IsNone() bool {
	return m.From == m.To
}

// String returns the move in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(MakePiece(Black, m.Promotion.Kind()).Char())
	}
	return s
}

// ParseMove parses a move in long algebraic notation, as returned by Move.String.
// The color of the promotion piece is taken from player.
func ParseMove(s string, player Color) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, errors.Errorf("invalid move %q, expected something like \"e2e4\"", s)
	}
	var m Move
	var err error
	m.From, err = ParsePos(s[0:2])
	if err != nil {
		return NoMove, errors.WithMessagef(err, "invalid move %q", s)
	}
	m.To, err = ParsePos(s[2:4])
	if err != nil {
		return NoMove, errors.WithMessagef(err, "invalid move %q", s)
	}
	if len(s) == 5 {
		p, err := ParsePiece(rune(s[4]))
		if err != nil || p == Empty || p.IsKing() || p.Kind() == Pawn {
			return NoMove, errors.Errorf("invalid promotion in move %q", s)
		}
		m.Promotion = MakePiece(player, p.Kind())
	}
	return m, nil
}
