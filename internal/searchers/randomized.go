package searchers

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/chewxy/math32"
	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/chessGo/internal/state"
	"k8s.io/klog/v2"
)

// ScoringSearcher is a Searcher that can also score all its moves.
type ScoringSearcher interface {
	Searcher
	MovesScorer
}

// NewRandomizedSearcher adds randomness to the move taken by an existing Searcher.
// Args:
//
//   - searcher: Baseline Searcher, it must be able to score all moves.
//   - randomness (>=0): Amount of randomness to use: it is applied as a divisor to the scores
//     returned by the Searcher, and the move is sampled from the softmax of the results.
//     The larger the value the more it leads to randomness (exploration), and lower values
//     lead to "pick the best scoring move" (exploitation), with zero meaning no randomness.
//
// Winning moves (scores beyond ai.InfScore/2) dominate the softmax, so they are still always taken.
func NewRandomizedSearcher(searcher ScoringSearcher, randomness float32) Searcher {
	if randomness <= 0 {
		// Without randomness, simply return the original Searcher.
		return searcher
	}
	return &randomizedSearcher{searcher: searcher, randomness: randomness}
}

// randomizedSearcher is a meta Searcher, that introduces randomness to its scorer.
type randomizedSearcher struct {
	searcher   ScoringSearcher
	randomness float32
}

// Assert randomizedSearcher is a Searcher.
var _ Searcher = &randomizedSearcher{}

// String implements Searcher.
func (rs *randomizedSearcher) String() string {
	return fmt.Sprintf("%s,randomness=%g", rs.searcher, rs.randomness)
}

// Search implements the Searcher interface.
func (rs *randomizedSearcher) Search(rng *rand.Rand, board *Board, player Color) (move Move, score int, ok bool) {
	scored := rs.searcher.ScoreMoves(board, player)
	if len(scored) <= 1 {
		best, ok := SelectBest(rng, scored)
		return best.Move, best.Score, ok
	}

	// Calculate probability for each move.
	logits := make([]float32, len(scored))
	for ii, sm := range scored {
		logits[ii] = float32(sm.Score) / rs.randomness
	}
	probabilities := softmax(logits)

	// Select from probabilities.
	chance := rng.Float32()
	for moveIdx, value := range probabilities {
		if chance > value && moveIdx < len(probabilities)-1 {
			chance -= value
			continue
		}
		if klog.V(2).Enabled() {
			klog.Infof("randomizedSearcher selection: move=%s, score=%d, probability=%.3f",
				scored[moveIdx].Move, scored[moveIdx].Score, value)
		}
		return scored[moveIdx].Move, scored[moveIdx].Score, true
	}
	// It should not reach here.
	exceptions.Panicf("Nothing selected!? remaining chance=%f, probabilities=%v", chance, probabilities)
	return
}

func softmax(values []float32) (probs []float32) {
	probs = make([]float32, len(values))
	var sum float32

	// Subtract maxValue from all values keep the probability the same, but makes for more numerically stable
	// values.
	maxValue := slices.Max(values)
	for ii, value := range values {
		probs[ii] = math32.Exp(value - maxValue)
		sum += probs[ii]
	}
	for ii := range probs {
		probs[ii] /= sum
	}
	return
}
