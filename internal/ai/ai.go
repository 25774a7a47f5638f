// Package ai (Artificial Intelligence) defines the leaf evaluators used by the searchers,
// and the score conventions shared by all of them.
package ai

import (
	"sort"
	"strings"

	. "github.com/janpfeifer/chessGo/internal/state"
	"github.com/pkg/errors"
)

// InfScore is the magnitude of the terminal scores. Terminal sentinels are offset by the
// remaining search depth (see alphabeta.Search), so they stay far from the int limits.
const InfScore = 1_000_000_000

// Evaluator scores a board from the perspective of player: positive values favor player.
//
// Implementations must be pure and safe for concurrent use: the parallel searchers call the
// same Evaluator from many goroutines at once, with no synchronization.
//
// Evaluators are expected to be zero-sum: Evaluate(b, White) == -Evaluate(b, Black).
type Evaluator interface {
	Evaluate(board *Board, player Color) int
	String() string
}

// EvaluatorFunc converts a function to a named Evaluator.
type EvaluatorFunc struct {
	Name string
	Fn   func(board *Board, player Color) int
}

// Assert EvaluatorFunc is an Evaluator.
var _ Evaluator = EvaluatorFunc{}

// Evaluate implements Evaluator.
func (e EvaluatorFunc) Evaluate(board *Board, player Color) int {
	return e.Fn(board, player)
}

// String implements Evaluator.
func (e EvaluatorFunc) String() string {
	return e.Name
}

var (
	// Material counts the value of the pieces on the board (kings excluded).
	Material Evaluator = EvaluatorFunc{Name: "mat", Fn: materialValue}

	// MaterialAndMobility is Material scaled by MobilityScale, plus the difference in the number
	// of pseudo-legal moves of each player. Material always dominates mobility.
	MaterialAndMobility Evaluator = EvaluatorFunc{Name: "mob", Fn: materialAndMobilityValue}
)

// MobilityScale is the weight of one point of material in MaterialAndMobility.
const MobilityScale = 1000

func materialValue(board *Board, player Color) int {
	return board.Material() * player.Sign()
}

func materialAndMobilityValue(board *Board, player Color) int {
	mobility := 0
	for range board.Moves(player) {
		mobility++
	}
	for range board.Moves(player.Opposite()) {
		mobility--
	}
	return MobilityScale*materialValue(board, player) + mobility
}

var registeredEvaluators = map[string]Evaluator{
	Material.String():            Material,
	MaterialAndMobility.String(): MaterialAndMobility,
}

// EvaluatorByName returns one of the registered evaluators ("mat" or "mob").
func EvaluatorByName(name string) (Evaluator, error) {
	e, found := registeredEvaluators[name]
	if !found {
		names := make([]string, 0, len(registeredEvaluators))
		for n := range registeredEvaluators {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, errors.Errorf("unknown evaluator %q, valid values are %q", name, strings.Join(names, ", "))
	}
	return e, nil
}
