// Package random implements a searcher that plays uniformly random legal moves.
package random

import (
	"math/rand/v2"

	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
)

// Searcher picks any legal move, all with the same probability. The score is always 0.
type Searcher struct{}

// Assert Searcher implements searchers.Searcher.
var _ searchers.Searcher = Searcher{}

// New returns a random searcher.
func New() Searcher { return Searcher{} }

// String implements searchers.Searcher.
func (Searcher) String() string { return "random" }

// Search implements searchers.Searcher.
func (Searcher) Search(rng *rand.Rand, board *Board, player Color) (move Move, score int, ok bool) {
	children := searchers.LegalChildren(board, player)
	if len(children) == 0 {
		return NoMove, 0, false
	}
	return children[rng.IntN(len(children))].Move, 0, true
}
