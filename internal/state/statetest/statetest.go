// Package statetest provides helper functions and board fixtures to create tests using the game state.
package statetest

import (
	"fmt"

	"github.com/janpfeifer/chessGo/internal/state"
	"github.com/janpfeifer/must"
)

// Board fixtures used across the tests of the searchers.
const (
	// RookMate: White can capture the black king, Black has no legal move.
	RookMate = `
		. . . . R . . k
		. . . . R . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . K
	`

	// QueenVsTwoPawns: the pawn on e6 can be taken by the queen, but it is defended by f7.
	QueenVsTwoPawns = `
		. . . . . . . .
		. . . . . p . .
		. . . . p . . .
		. . . . . . . .
		. . . . . . . .
		. . . . Q . . .
		. . . . . . . .
		k . . . . . . K
	`

	// QueenVsThreePawns: the queen eats the black pawns one at a time.
	QueenVsThreePawns = `
		Q . . p p p . k
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . K
	`

	// ThreePawnsVsQueen is QueenVsThreePawns mirrored, with colors swapped.
	ThreePawnsVsQueen = `
		. . . . . . . k
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		q . . P P P . K
	`

	// Stalemate: Black is not in check, but every king move walks into check.
	Stalemate = `
		k . . . . . . .
		. . Q . . . . .
		. K . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
	`
)

// MustParse parses the board diagram or panics.
func MustParse(diagram string) *state.Board {
	return must.M1(state.ParseBoard(diagram))
}

// PrintBoard prints the board diagram to stdout, for debugging tests.
func PrintBoard(b *state.Board) {
	fmt.Println(b.String())
}

// MovesStrings returns the moves in long algebraic notation.
func MovesStrings(moves []state.Move) []string {
	strs := make([]string, len(moves))
	for ii, m := range moves {
		strs[ii] = m.String()
	}
	return strs
}
