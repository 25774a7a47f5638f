package state

import (
	"iter"

	"github.com/gomlx/exceptions"
)

// Board is the placement of the pieces on all squares.
//
// Boards are values: Act returns a new Board, and no exported method changes the receiver,
// so a *Board can be shared among goroutines.
type Board struct {
	squares [NumSquares]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InitialDiagram is the standard starting position.
const InitialDiagram = `
	r n b q k b n r
	p p p p p p p p
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	. . . . . . . .
	P P P P P P P P
	R N B Q K B N R
`

// NewInitialBoard returns the standard starting position.
func NewInitialBoard() *Board {
	b, err := ParseBoard(InitialDiagram)
	if err != nil {
		exceptions.Panicf("failed to parse initial board: %+v", err)
	}
	return b
}

// At returns the piece at the given position. Positions outside the board are Empty.
func (b *Board) At(pos Pos) Piece {
	if !pos.Valid() {
		return Empty
	}
	return b.squares[pos.index()]
}

// With returns a copy of the board with the piece at pos replaced.
func (b *Board) With(pos Pos, piece Piece) *Board {
	if !pos.Valid() {
		exceptions.Panicf("Board.With(%s, %s): position outside of the board", pos, piece)
	}
	newB := &Board{}
	*newB = *b
	newB.squares[pos.index()] = piece
	return newB
}

// Act returns a new board with the move applied. The receiver is not changed.
//
// The move is not checked for legality, but moving from an empty square is a programming
// error and panics.
func (b *Board) Act(m Move) *Board {
	piece := b.At(m.From)
	if piece == Empty {
		exceptions.Panicf("Board.Act(%s): no piece at %s", m, m.From)
	}
	newB := &Board{}
	*newB = *b
	newB.squares[m.From.index()] = Empty
	if m.Promotion != Empty {
		piece = m.Promotion
	}
	newB.squares[m.To.index()] = piece
	return newB
}

// HasKing returns whether the player still has a king on the board.
func (b *Board) HasKing(player Color) bool {
	king := MakePiece(player, King)
	for _, p := range b.squares {
		if p == king {
			return true
		}
	}
	return false
}

// Pieces iterates over all occupied squares, in row-major order.
func (b *Board) Pieces() iter.Seq2[Pos, Piece] {
	return func(yield func(Pos, Piece) bool) {
		for idx, p := range b.squares {
			if p == Empty {
				continue
			}
			if !yield(posFromIndex(idx), p) {
				return
			}
		}
	}
}

// CountPieces returns the number of pieces of the given player.
func (b *Board) CountPieces(player Color) (count int) {
	for _, p := range b.Pieces() {
		if p.Color() == player {
			count++
		}
	}
	return
}

// Material returns the sum of the piece values, from White's perspective.
func (b *Board) Material() (value int) {
	for _, p := range b.squares {
		value += p.Value()
	}
	return
}

// Mirror returns the board flipped vertically with the colors of all pieces swapped.
// A search for a player on b yields the same score as a search for the opposite player on
// b.Mirror().
func (b *Board) Mirror() *Board {
	newB := &Board{}
	for pos, p := range b.Pieces() {
		mirrored := Pos{BoardSize - 1 - pos[0], pos[1]}
		newB.squares[mirrored.index()] = MakePiece(p.Color().Opposite(), p.Kind())
	}
	return newB
}

// Equal returns whether both boards have the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares
}
