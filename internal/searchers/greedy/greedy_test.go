package greedy

import (
	"math/rand/v2"
	"testing"

	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
	. "github.com/janpfeifer/chessGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedy(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	s := New()
	assert.Equal(t, "greedy", s.String())

	board := MustParse(QueenVsTwoPawns)
	for range 10 {
		move, score, ok := s.Search(rng, board, White)
		require.True(t, ok)
		assert.Equal(t, "e3e6", move.String())
		assert.Equal(t, 8, score)
	}

	scored := s.ScoreMoves(board, White)
	require.Len(t, scored, len(searchers.LegalChildren(board, White)))
	for _, sm := range scored {
		if sm.Move.String() == "e3e6" {
			assert.Equal(t, 8, sm.Score)
		} else {
			assert.Equal(t, 7, sm.Score)
		}
	}

	_, _, ok := s.Search(rng, MustParse(RookMate), Black)
	assert.False(t, ok)
}

func TestGreedyBreaksTies(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 0))
	board := NewInitialBoard()
	seen := make(map[string]bool)
	for range 100 {
		move, score, ok := New().Search(rng, board, Black)
		require.True(t, ok)
		assert.Equal(t, 0, score)
		seen[move.String()] = true
	}
	assert.Greater(t, len(seen), 1)
}
