// Package greedy implements a searcher that greedily takes material, with no lookahead.
package greedy

import (
	"math/rand/v2"

	"github.com/janpfeifer/chessGo/internal/ai"
	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
)

// Searcher scores each legal move by the material left on the board after it, and picks one
// of the best at random.
type Searcher struct{}

// Assert Searcher implements searchers.ScoringSearcher.
var _ searchers.ScoringSearcher = Searcher{}

// New returns a greedy searcher.
func New() Searcher { return Searcher{} }

// String implements searchers.Searcher.
func (Searcher) String() string { return "greedy" }

// ScoreMoves implements searchers.MovesScorer.
func (Searcher) ScoreMoves(board *Board, player Color) []searchers.ScoredMove {
	return searchers.ScoreChildren(board, player, ai.Material.Evaluate)
}

// Search implements searchers.Searcher.
func (s Searcher) Search(rng *rand.Rand, board *Board, player Color) (move Move, score int, ok bool) {
	return searchers.SearchWithScorer(s, rng, board, player)
}
