package searchers_test

import (
	"math/rand/v2"
	"testing"

	"github.com/janpfeifer/chessGo/internal/searchers"
	"github.com/janpfeifer/chessGo/internal/searchers/greedy"
	. "github.com/janpfeifer/chessGo/internal/state"
	. "github.com/janpfeifer/chessGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalChildren(t *testing.T) {
	// Black is in check and every king move stays in check.
	board := MustParse(RookMate)
	assert.NotEmpty(t, board.CollectMoves(Black))
	assert.Empty(t, searchers.LegalChildren(board, Black))
	assert.False(t, searchers.HasLegalMove(board, Black))
	assert.True(t, searchers.HasLegalMove(board, White))

	// White can't move its king next to the black one.
	board = MustParse(`
		. . . . . . . .
		. . . . . . . .
		. . . k . . . .
		. . . . . . . .
		. . . K . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
	`)
	children := searchers.LegalChildren(board, White)
	assert.Len(t, board.CollectMoves(White), 8)
	assert.Len(t, children, 5)
	for _, child := range children {
		assert.False(t, child.Board.IsCheck(White))
		assert.True(t, child.Board.Equal(board.Act(child.Move)))
	}
}

func TestSelectBest(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	_, ok := searchers.SelectBest(rng, nil)
	assert.False(t, ok)

	m := func(s string) Move {
		move, err := ParseMove(s, White)
		require.NoError(t, err)
		return move
	}
	scored := []searchers.ScoredMove{
		{m("a2a3"), 1}, {m("b2b3"), 5}, {m("c2c3"), 5}, {m("d2d3"), -2},
	}
	seen := make(map[string]int)
	for range 200 {
		best, ok := searchers.SelectBest(rng, scored)
		require.True(t, ok)
		assert.Equal(t, 5, best.Score)
		seen[best.Move.String()]++
	}
	assert.Len(t, seen, 2, "ties are broken at random: %v", seen)

	// Same seed, same choices.
	rng1, rng2 := rand.New(rand.NewPCG(7, 7)), rand.New(rand.NewPCG(7, 7))
	for range 20 {
		b1, _ := searchers.SelectBest(rng1, scored)
		b2, _ := searchers.SelectBest(rng2, scored)
		assert.Equal(t, b1, b2)
	}
}

func TestRandomizedSearcher(t *testing.T) {
	board := MustParse(QueenVsTwoPawns)
	rng := rand.New(rand.NewPCG(3, 0))
	base := greedy.New()
	assert.Equal(t, searchers.Searcher(base), searchers.NewRandomizedSearcher(base, 0))

	// Little randomness: the capture always wins.
	cold := searchers.NewRandomizedSearcher(base, 0.01)
	for range 20 {
		move, score, ok := cold.Search(rng, board, White)
		require.True(t, ok)
		assert.Equal(t, "e3e6", move.String())
		assert.Equal(t, 8, score)
	}

	// A lot of randomness: many different moves.
	hot := searchers.NewRandomizedSearcher(base, 1000)
	seen := make(map[string]bool)
	for range 100 {
		move, _, ok := hot.Search(rng, board, White)
		require.True(t, ok)
		seen[move.String()] = true
	}
	assert.Greater(t, len(seen), 5)
	assert.Equal(t, "greedy,randomness=1000", hot.String())

	// No legal moves.
	_, _, ok := hot.Search(rng, MustParse(RookMate), Black)
	assert.False(t, ok)
}
