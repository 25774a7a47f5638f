// Package lookahead implements searchers that look zero or one ply ahead, using an arbitrary
// leaf evaluator.
package lookahead

import (
	"fmt"
	"math/rand/v2"

	"github.com/janpfeifer/chessGo/internal/ai"
	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
)

// Searcher scores each legal move with the value of the resulting board, and picks one of
// the best at random.
type Searcher struct {
	plies int
	eval  ai.Evaluator
}

// Assert Searcher implements searchers.ScoringSearcher.
var _ searchers.ScoringSearcher = (*Searcher)(nil)

// NewL0 returns a searcher that scores moves with eval applied to the board after the move.
func NewL0(eval ai.Evaluator) *Searcher {
	return &Searcher{plies: 0, eval: eval}
}

// NewL1 returns a searcher that also considers the best reply of the opponent, as scored by eval.
func NewL1(eval ai.Evaluator) *Searcher {
	return &Searcher{plies: 1, eval: eval}
}

// String implements searchers.Searcher.
func (s *Searcher) String() string {
	return fmt.Sprintf("l%d,eval=%s", s.plies, s.eval)
}

// OnePlyValue is the value of board for player, assuming the opponent (who moves next) takes
// their best reply according to eval: the negated maximum of eval over the opponent's legal replies.
//
// If the opponent has no legal reply the value is +ai.InfScore.
func OnePlyValue(eval ai.Evaluator, board *Board, player Color) int {
	opponent := player.Opposite()
	best := -ai.InfScore
	for _, reply := range searchers.LegalChildren(board, opponent) {
		best = max(best, eval.Evaluate(reply.Board, opponent))
	}
	return -best
}

// value of the board after player's move.
func (s *Searcher) value(board *Board, player Color) int {
	if s.plies == 0 {
		return s.eval.Evaluate(board, player)
	}
	return OnePlyValue(s.eval, board, player)
}

// ScoreMoves implements searchers.MovesScorer.
func (s *Searcher) ScoreMoves(board *Board, player Color) []searchers.ScoredMove {
	return searchers.ScoreChildren(board, player, s.value)
}

// Search implements searchers.Searcher.
func (s *Searcher) Search(rng *rand.Rand, board *Board, player Color) (move Move, score int, ok bool) {
	return searchers.SearchWithScorer(s, rng, board, player)
}
