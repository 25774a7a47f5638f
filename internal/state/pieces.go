package state

import "iter"

var (
	rookDirections   = []Pos{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	bishopDirections = []Pos{{-1, -1}, {-1, 1}, {1, 1}, {1, -1}}
	queenDirections  = []Pos{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	knightJumps      = []Pos{{-2, -1}, {-2, 1}, {-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}}

	promotionKinds = []Kind{Queen, Rook, Bishop, Knight}
)

// pawnDirection is the row increment of a pawn move: White moves up the diagram (towards row 0).
func pawnDirection(player Color) int8 {
	if player == White {
		return -1
	}
	return 1
}

// pawnStartRow is the row from where a pawn can advance two squares.
func pawnStartRow(player Color) int8 {
	if player == White {
		return BoardSize - 2
	}
	return 1
}

// lastRow is where pawns of player get promoted.
func lastRow(player Color) int8 {
	if player == White {
		return 0
	}
	return BoardSize - 1
}

// Moves enumerates the pseudo-legal moves of player: it includes moves that leave the player's
// own king in check, and captures of the opponent's king. Filtering illegal moves is up to the
// caller (see Board.IsCheck).
//
// The iteration is lazy, deterministic (row-major order of the pieces) and can be restarted.
// There is no castling nor en passant, since boards don't hold the history of the match.
func (b *Board) Moves(player Color) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for from, piece := range b.Pieces() {
			if piece.Color() != player {
				continue
			}
			var ok bool
			switch piece.Kind() {
			case Pawn:
				ok = b.pawnMoves(player, from, yield)
			case Knight:
				ok = b.stepMoves(player, from, knightJumps, yield)
			case King:
				ok = b.stepMoves(player, from, queenDirections, yield)
			case Bishop:
				ok = b.slidingMoves(player, from, bishopDirections, yield)
			case Rook:
				ok = b.slidingMoves(player, from, rookDirections, yield)
			case Queen:
				ok = b.slidingMoves(player, from, queenDirections, yield)
			}
			if !ok {
				return
			}
		}
	}
}

// CollectMoves returns all pseudo-legal moves of player in a slice.
func (b *Board) CollectMoves(player Color) []Move {
	var moves []Move
	for m := range b.Moves(player) {
		moves = append(moves, m)
	}
	return moves
}

// canLand returns whether a piece of player can move to pos: it must be on the board and not
// occupied by one of player's own pieces.
func (b *Board) canLand(player Color, pos Pos) bool {
	return pos.Valid() && b.At(pos).Color() != player
}

// stepMoves enumerates the moves of the non-sliding pieces (knight and king).
func (b *Board) stepMoves(player Color, from Pos, deltas []Pos, yield func(Move) bool) bool {
	for _, delta := range deltas {
		to := from.Add(delta)
		if b.canLand(player, to) {
			if !yield(Move{From: from, To: to}) {
				return false
			}
		}
	}
	return true
}

// slidingMoves enumerates the moves of the sliding pieces (bishop, rook and queen), stopping in
// each direction at the first occupied square, which is included if it is a capture.
func (b *Board) slidingMoves(player Color, from Pos, directions []Pos, yield func(Move) bool) bool {
	for _, delta := range directions {
		for to := from.Add(delta); to.Valid(); to = to.Add(delta) {
			target := b.At(to)
			if target.Color() == player {
				break
			}
			if !yield(Move{From: from, To: to}) {
				return false
			}
			if target != Empty {
				break
			}
		}
	}
	return true
}

// pawnMoves enumerates pushes (one or two squares), diagonal captures and promotions.
func (b *Board) pawnMoves(player Color, from Pos, yield func(Move) bool) bool {
	dir := pawnDirection(player)
	emit := func(to Pos) bool {
		if to[0] != lastRow(player) {
			return yield(Move{From: from, To: to})
		}
		for _, kind := range promotionKinds {
			if !yield(Move{From: from, To: to, Promotion: MakePiece(player, kind)}) {
				return false
			}
		}
		return true
	}

	// Pushes.
	oneStep := from.Add(Pos{dir, 0})
	if oneStep.Valid() && b.At(oneStep) == Empty {
		if !emit(oneStep) {
			return false
		}
		twoSteps := oneStep.Add(Pos{dir, 0})
		if from[0] == pawnStartRow(player) && b.At(twoSteps) == Empty {
			if !emit(twoSteps) {
				return false
			}
		}
	}

	// Captures.
	for _, side := range [2]int8{-1, 1} {
		to := from.Add(Pos{dir, side})
		if to.Valid() && b.At(to).Color() == player.Opposite() {
			if !emit(to) {
				return false
			}
		}
	}
	return true
}
