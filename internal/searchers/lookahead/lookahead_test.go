package lookahead

import (
	"math/rand/v2"
	"testing"

	"github.com/janpfeifer/chessGo/internal/ai"
	. "github.com/janpfeifer/chessGo/internal/state"
	. "github.com/janpfeifer/chessGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL0(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 0))
	s := NewL0(ai.Material)
	assert.Equal(t, "l0,eval=mat", s.String())
	move, score, ok := s.Search(rng, MustParse(QueenVsTwoPawns), White)
	require.True(t, ok)
	assert.Equal(t, "e3e6", move.String())
	assert.Equal(t, 8, score)
}

func TestL1(t *testing.T) {
	rng := rand.New(rand.NewPCG(22, 0))
	s := NewL1(ai.Material)
	assert.Equal(t, "l1,eval=mat", s.String())
	board := MustParse(QueenVsTwoPawns)
	for range 10 {
		move, score, ok := s.Search(rng, board, White)
		require.True(t, ok)
		assert.NotEqual(t, "e3e6", move.String(), "the pawn on e6 is defended")
		assert.Equal(t, 7, score)
	}
	for _, sm := range s.ScoreMoves(board, White) {
		if sm.Move.String() == "e3e6" {
			assert.Equal(t, -1, sm.Score)
		}
	}

	_, _, ok := s.Search(rng, MustParse(RookMate), Black)
	assert.False(t, ok)

	// Capturing the king, or keeping the mate, leaves Black with no reply.
	_, score, ok := s.Search(rng, MustParse(RookMate), White)
	require.True(t, ok)
	assert.Equal(t, ai.InfScore, score)
}

func TestOnePlyValue(t *testing.T) {
	// Black, to move, has no legal reply.
	assert.Equal(t, ai.InfScore, OnePlyValue(ai.Material, MustParse(RookMate), White))

	// Black, to move, takes the queen with the f7 pawn.
	board := MustParse(QueenVsTwoPawns)
	afterCapture := board.Act(Move{From: Pos{5, 4}, To: Pos{2, 4}, Promotion: Empty})
	assert.Equal(t, -1, OnePlyValue(ai.Material, afterCapture, White))
}
