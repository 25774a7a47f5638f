package match

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/janpfeifer/chessGo/internal/ai"
	"github.com/janpfeifer/chessGo/internal/searchers"
	"github.com/janpfeifer/chessGo/internal/searchers/alphabeta"
	"github.com/janpfeifer/chessGo/internal/searchers/greedy"
	"github.com/janpfeifer/chessGo/internal/searchers/random"
	. "github.com/janpfeifer/chessGo/internal/state"
	"github.com/janpfeifer/chessGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted plays the given moves in order, and then reports no moves.
type scripted struct {
	moves []string
	next  int
}

func (s *scripted) String() string { return "scripted" }

func (s *scripted) Search(_ *rand.Rand, _ *Board, player Color) (Move, int, bool) {
	if s.next >= len(s.moves) {
		return NoMove, 0, false
	}
	m, err := ParseMove(s.moves[s.next], player)
	if err != nil {
		panic(err)
	}
	s.next++
	return m, 0, true
}

func TestEndings(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(1, 0))
	ab := alphabeta.New(ai.Material).WithMaxDepth(1)
	engines := [NumColors]searchers.Searcher{ab, ab}

	result, err := Run(ctx, engines, statetest.MustParse(statetest.RookMate), White, rng, Options{})
	require.NoError(t, err)
	assert.Equal(t, White, result.Winner)
	assert.Equal(t, KingCaptured, result.Reason)
	require.Len(t, result.Moves, 1)
	assert.Equal(t, "e8h8", result.Moves[0].String())
	assert.False(t, result.Board.HasKing(Black))

	result, err = Run(ctx, engines, statetest.MustParse(statetest.RookMate), Black, rng, Options{})
	require.NoError(t, err)
	assert.Equal(t, White, result.Winner)
	assert.Equal(t, Checkmate, result.Reason)
	assert.Empty(t, result.Moves)

	result, err = Run(ctx, engines, statetest.MustParse(statetest.Stalemate), Black, rng, Options{})
	require.NoError(t, err)
	assert.True(t, result.IsDraw())
	assert.Equal(t, Stalemate, result.Reason)
	assert.Equal(t, "stalemate", result.Reason.String())
}

func TestMoveLimitAndDeterminism(t *testing.T) {
	engines := [NumColors]searchers.Searcher{greedy.New(), random.New()}
	play := func(seed uint64) Result {
		var numCalls int
		opts := Options{
			MaxMoves: 40,
			Name:     "test",
			OnMove: func(_ Color, _ Move, _ int, _ *Board) {
				numCalls++
			},
		}
		result, err := Run(context.Background(), engines, NewInitialBoard(), White, rand.New(rand.NewPCG(seed, 0)), opts)
		require.NoError(t, err)
		assert.Equal(t, len(result.Moves), numCalls)
		assert.LessOrEqual(t, len(result.Moves), 40)
		if result.Reason == MoveLimit {
			assert.Len(t, result.Moves, 40)
			assert.True(t, result.IsDraw())
		}

		// Replay: all moves must be legal.
		board, player := NewInitialBoard(), White
		for _, move := range result.Moves {
			var legal bool
			for _, child := range searchers.LegalChildren(board, player) {
				if child.Move == move {
					legal = true
					break
				}
			}
			require.Truef(t, legal, "move %s by %s is not legal in:\n%s", move, player, board)
			board, player = board.Act(move), player.Opposite()
		}
		assert.True(t, board.Equal(result.Board))
		return result
	}
	for seed := range uint64(5) {
		assert.Equal(t, play(seed), play(seed))
	}
}

func TestRepetition(t *testing.T) {
	engines := [NumColors]searchers.Searcher{
		&scripted{moves: []string{"g1f3", "f3g1", "g1f3", "f3g1", "g1f3"}},
		&scripted{moves: []string{"g8f6", "f6g8", "g8f6", "f6g8", "g8f6"}},
	}
	result, err := Run(context.Background(), engines, NewInitialBoard(), White, rand.New(rand.NewPCG(0, 0)),
		Options{MaxRepeats: 3})
	require.NoError(t, err)
	assert.Equal(t, Repetition, result.Reason)
	assert.Len(t, result.Moves, 8)
	assert.True(t, result.IsDraw())
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	engines := [NumColors]searchers.Searcher{random.New(), random.New()}
	result, err := Run(ctx, engines, NewInitialBoard(), White, rand.New(rand.NewPCG(0, 0)), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Cancelled, result.Reason)
	assert.Equal(t, NoColor, result.Winner)
	assert.False(t, result.IsDraw())
}
