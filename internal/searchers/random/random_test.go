package random

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
	. "github.com/janpfeifer/chessGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 0))
	s := New()
	assert.Equal(t, "random", s.String())

	board := MustParse(QueenVsTwoPawns)
	var legal []Move
	for _, child := range searchers.LegalChildren(board, Black) {
		legal = append(legal, child.Move)
	}
	seen := make(map[Move]bool)
	for range 100 {
		move, score, ok := s.Search(rng, board, Black)
		require.True(t, ok)
		assert.Zero(t, score)
		assert.True(t, slices.Contains(legal, move), "move %s is not legal", move)
		seen[move] = true
	}
	assert.Len(t, seen, len(legal))

	_, _, ok := s.Search(rng, MustParse(RookMate), Black)
	assert.False(t, ok)
}
