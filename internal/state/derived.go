package state

// This file holds information derived from the placement of the pieces: attacks and checks.

// IsAttacked returns whether any piece of the attacker color could capture on pos, if pos
// held a piece of the other color.
func (b *Board) IsAttacked(pos Pos, attacker Color) bool {
	// Pawns: look backwards from pos along the attacker's pawn direction.
	pawn := MakePiece(attacker, Pawn)
	dir := pawnDirection(attacker)
	for _, side := range [2]int8{-1, 1} {
		if b.At(pos.Add(Pos{-dir, side})) == pawn {
			return true
		}
	}

	knight := MakePiece(attacker, Knight)
	for _, delta := range knightJumps {
		if b.At(pos.Add(delta)) == knight {
			return true
		}
	}

	king := MakePiece(attacker, King)
	for _, delta := range queenDirections {
		if b.At(pos.Add(delta)) == king {
			return true
		}
	}

	queen := MakePiece(attacker, Queen)
	if b.slidingAttack(pos, rookDirections, MakePiece(attacker, Rook), queen) {
		return true
	}
	return b.slidingAttack(pos, bishopDirections, MakePiece(attacker, Bishop), queen)
}

// slidingAttack returns whether the first piece found from pos in any of the directions is
// one of the two given sliders.
func (b *Board) slidingAttack(pos Pos, directions []Pos, slider, queen Piece) bool {
	for _, delta := range directions {
		for sq := pos.Add(delta); sq.Valid(); sq = sq.Add(delta) {
			p := b.At(sq)
			if p == Empty {
				continue
			}
			if p == slider || p == queen {
				return true
			}
			break
		}
	}
	return false
}

// IsCheck returns whether any of the player's kings is attacked by the opponent.
// A player without a king is not in check.
func (b *Board) IsCheck(player Color) bool {
	king := MakePiece(player, King)
	opponent := player.Opposite()
	for pos, p := range b.Pieces() {
		if p == king && b.IsAttacked(pos, opponent) {
			return true
		}
	}
	return false
}
