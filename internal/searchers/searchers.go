// Package searchers defines the interface of the move selection engines, and the helpers they share:
// the legal moves filter and the selection among the best scoring moves.
package searchers

import (
	"math/rand/v2"

	. "github.com/janpfeifer/chessGo/internal/state"
)

// Searcher is the interface that any of the move selection engines must adhere to be valid.
type Searcher interface {
	// Search returns the move to play for player on the given board, and its expected score.
	// If player has no legal move, ok is false: this is the end of the match, not an error.
	//
	// rng is used to break ties among equally scored moves. It is owned by the caller and is never
	// used concurrently by the Searcher.
	Search(rng *rand.Rand, board *Board, player Color) (move Move, score int, ok bool)

	// String returns a short description of the engine and its configuration.
	String() string
}

// MovesScorer is implemented by searchers that can score every legal move, as opposed to only
// returning the best one. The randomized searcher uses it to sample among the moves.
type MovesScorer interface {
	// ScoreMoves returns one ScoredMove per legal move of player, in move generation order.
	ScoreMoves(board *Board, player Color) []ScoredMove
}

// ScoredMove is a move and the score (from the mover's perspective) of playing it.
type ScoredMove struct {
	Move  Move
	Score int
}

// Child is a legal move and the board after it is played.
type Child struct {
	Move  Move
	Board *Board
}

// LegalChildren applies every pseudo-legal move of player, and drops the ones that leave the
// player's own king in check.
func LegalChildren(board *Board, player Color) []Child {
	var children []Child
	for m := range board.Moves(player) {
		child := board.Act(m)
		if child.IsCheck(player) {
			continue
		}
		children = append(children, Child{Move: m, Board: child})
	}
	return children
}

// HasLegalMove returns whether player has at least one move that doesn't leave its king in check.
func HasLegalMove(board *Board, player Color) bool {
	for m := range board.Moves(player) {
		if !board.Act(m).IsCheck(player) {
			return true
		}
	}
	return false
}

// ScoreChildren scores the legal moves of player with valueFn, called with the board after the
// move and player.
func ScoreChildren(board *Board, player Color, valueFn func(child *Board, player Color) int) []ScoredMove {
	children := LegalChildren(board, player)
	scored := make([]ScoredMove, len(children))
	for ii, child := range children {
		scored[ii] = ScoredMove{Move: child.Move, Score: valueFn(child.Board, player)}
	}
	return scored
}

// SelectBest keeps only the moves with the maximum score, and picks one of them uniformly at
// random using rng. It returns ok=false if scored is empty.
func SelectBest(rng *rand.Rand, scored []ScoredMove) (best ScoredMove, ok bool) {
	if len(scored) == 0 {
		return ScoredMove{Move: NoMove}, false
	}
	bestScore := scored[0].Score
	for _, sm := range scored[1:] {
		bestScore = max(bestScore, sm.Score)
	}
	ties := make([]ScoredMove, 0, len(scored))
	for _, sm := range scored {
		if sm.Score == bestScore {
			ties = append(ties, sm)
		}
	}
	return ties[rng.IntN(len(ties))], true
}

// SearchWithScorer implements Searcher.Search for a MovesScorer: it scores all moves and
// selects among the best ones.
func SearchWithScorer(scorer MovesScorer, rng *rand.Rand, board *Board, player Color) (move Move, score int, ok bool) {
	best, ok := SelectBest(rng, scorer.ScoreMoves(board, player))
	return best.Move, best.Score, ok
}
