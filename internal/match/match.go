// Package match plays matches between two engines.
package match

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Reason why a match finished.
type Reason int

const (
	// Checkmate: the player to move is in check and has no legal move.
	Checkmate Reason = iota

	// Stalemate: the player to move is not in check but has no legal move. It is a draw.
	Stalemate

	// KingCaptured: the player to move has no king. Only possible if the match starts from such a position.
	KingCaptured

	// MoveLimit reached: it is a draw.
	MoveLimit

	// Repetition: the same position happened Options.MaxRepeats times. It is a draw.
	Repetition

	// Cancelled: the context was cancelled before the end of the match.
	Cancelled
)

var reasonNames = [...]string{"checkmate", "stalemate", "king captured", "move limit", "repetition", "cancelled"}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// Result of a match.
type Result struct {
	// Winner is NoColor for draws or cancelled matches.
	Winner Color
	Reason Reason

	// Moves played, alternating players, starting with the first player.
	Moves []Move

	// Final position.
	Board *Board
}

// IsDraw returns whether the match finished without a winner.
func (r Result) IsDraw() bool { return r.Winner == NoColor && r.Reason != Cancelled }

// DefaultMaxMoves is the default move limit of a match, counting the moves of both players.
const DefaultMaxMoves = 200

// Options of a match.
type Options struct {
	// MaxMoves is the maximum number of moves (plies) of the match, after which it is a draw.
	// If 0, DefaultMaxMoves is used.
	MaxMoves int

	// MaxRepeats is the number of times a position can happen before the match is declared a draw.
	// If 0, repetitions are not checked.
	MaxRepeats int

	// Name of the match, used for logging.
	Name string

	// OnMove is called after each move, with the player who moved, the move, its score and the
	// new board. Optional.
	OnMove func(player Color, move Move, score int, board *Board)
}

// Run plays a match between engines[White] and engines[Black], starting from board with the first player
// to move. rng is used by the engines to break ties, and must not be used concurrently by the caller.
//
// It returns an error only if ctx is cancelled, together with the partial result.
func Run(ctx context.Context, engines [NumColors]searchers.Searcher, board *Board, first Color, rng *rand.Rand, opts Options) (Result, error) {
	maxMoves := opts.MaxMoves
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	if klog.V(1).Enabled() {
		klog.Infof("%s: starting, White=%s, Black=%s, first=%s", opts.Name, engines[White], engines[Black], first)
	}
	result := Result{Winner: NoColor}
	player := first
	var history *HashNode
	history = history.Push(board.Hash(player))
	for {
		if err := ctx.Err(); err != nil {
			result.Reason = Cancelled
			result.Board = board
			return result, errors.Wrapf(err, "%s cancelled after %d moves", opts.Name, len(result.Moves))
		}
		if !board.HasKing(player) {
			result.Winner, result.Reason = player.Opposite(), KingCaptured
			break
		}
		if len(result.Moves) >= maxMoves {
			result.Reason = MoveLimit
			break
		}
		move, score, ok := engines[player].Search(rng, board, player)
		if !ok {
			if board.IsCheck(player) {
				result.Winner, result.Reason = player.Opposite(), Checkmate
			} else {
				result.Reason = Stalemate
			}
			break
		}
		board = board.Act(move)
		result.Moves = append(result.Moves, move)
		if klog.V(2).Enabled() {
			klog.Infof("%s: move #%d %s (%s) plays %s, score=%d", opts.Name, len(result.Moves), player, engines[player], move, score)
		}
		if opts.OnMove != nil {
			opts.OnMove(player, move, score, board)
		}
		player = player.Opposite()
		if opts.MaxRepeats > 0 {
			hash := board.Hash(player)
			history = history.Push(hash)
			if history.CountRepeats(hash) >= opts.MaxRepeats {
				result.Reason = Repetition
				break
			}
		}
	}
	result.Board = board
	if klog.V(1).Enabled() {
		klog.Infof("%s: finished after %d moves, winner=%s, reason=%s", opts.Name, len(result.Moves), result.Winner, result.Reason)
	}
	return result, nil
}
