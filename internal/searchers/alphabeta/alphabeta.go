// Package alphabeta implements the negamax alpha-beta pruning search, and a Searcher built on
// top of it that scores the root moves in parallel.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package alphabeta

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/chessGo/internal/ai"
	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Searcher implements the searchers.Searcher interface: it scores every legal root move with
// an alpha-beta search of the remaining depth, and picks one of the best at random.
//
// A Searcher holds only configuration, and can be used concurrently.
type Searcher struct {
	maxDepth    int
	parallel    bool
	parallelism int
	opts        Options
	eval        ai.Evaluator
}

// Assert that Searcher implements searchers.ScoringSearcher.
var _ searchers.ScoringSearcher = (*Searcher)(nil)

// DefaultMaxDepth for search.
const DefaultMaxDepth = 3

// New returns an Alpha-Beta Pruning based searchers.Searcher implementation.
// There are many other optional configurations, see methods Searcher.With...
//
// The one obligatory parameter is the leaf evaluator used for the search.
func New(eval ai.Evaluator) *Searcher {
	return &Searcher{
		eval:     eval,
		maxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth sets the depth of search: the unit here are plies (ply singular), and it includes
// the root move. Each player playing counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// It must be at least 1. The default is 3 (DefaultMaxDepth).
func (ab *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	if maxDepth < 1 {
		exceptions.Panicf("alphabeta.WithMaxDepth(%d): depth must be at least 1", maxDepth)
	}
	ab.maxDepth = maxDepth
	return ab
}

// WithParallel sets whether the root moves are searched in parallel. Default is false.
// Either way, the scores of the moves are the same.
func (ab *Searcher) WithParallel(parallel bool) *Searcher {
	ab.parallel = parallel
	return ab
}

// WithParallelism limits the number of root moves searched at the same time, if parallel.
// If <= 0 (the default) it uses runtime.GOMAXPROCS.
func (ab *Searcher) WithParallelism(parallelism int) *Searcher {
	ab.parallelism = parallelism
	return ab
}

// WithOrdering sets the ordering of the moves before the recursion. Default is OrderAscending.
func (ab *Searcher) WithOrdering(ordering Ordering) *Searcher {
	ab.opts.Ordering = ordering
	return ab
}

// WithStalemateIsDraw sets whether a player without legal moves but not in check scores 0.
// Default is false: it scores like a checkmate.
func (ab *Searcher) WithStalemateIsDraw(stalemateIsDraw bool) *Searcher {
	ab.opts.StalemateIsDraw = stalemateIsDraw
	return ab
}

// MaxDepth returns the configured depth of search.
func (ab *Searcher) MaxDepth() int { return ab.maxDepth }

// String implements searchers.Searcher.
func (ab *Searcher) String() string {
	s := fmt.Sprintf("ab,max_depth=%d,eval=%s", ab.maxDepth, ab.eval)
	if ab.parallel {
		s += ",parallel"
	}
	if ab.opts.Ordering != OrderAscending {
		s += ",ordering=" + ab.opts.Ordering.String()
	}
	if ab.opts.StalemateIsDraw {
		s += ",stalemate_draw"
	}
	return s
}

// Search implements searchers.Searcher.
func (ab *Searcher) Search(rng *rand.Rand, board *Board, player Color) (move Move, score int, ok bool) {
	start := time.Now()
	scored, stats := ab.ScoreMovesWithStats(board, player)
	best, ok := searchers.SelectBest(rng, scored)
	if klog.V(2).Enabled() {
		elapsedTime := time.Since(start).Seconds()
		klog.Infof("%s: best move %s (αβ-score=%d) out of %d", ab, best.Move, best.Score, len(scored))
		klog.Infof("  Counts: %+v", stats)
		klog.Infof("  nodes/s=%.1f", float64(stats.Nodes)/elapsedTime)
	}
	return best.Move, best.Score, ok
}

// ScoreMoves implements searchers.MovesScorer.
func (ab *Searcher) ScoreMoves(board *Board, player Color) []searchers.ScoredMove {
	scored, _ := ab.ScoreMovesWithStats(board, player)
	return scored
}

// ScoreMovesWithStats scores every legal root move of player: the score of a move is the negated
// score of the opponent on the resulting board, searched with the full window at depth maxDepth-1.
//
// If parallel, each root move is searched in its own goroutine. Boards are immutable and the
// evaluator is pure, so the goroutines share nothing mutable: each one writes only its own slot
// of the results and of the per-move Stats. The results are in move generation order, regardless
// of scheduling.
func (ab *Searcher) ScoreMovesWithStats(board *Board, player Color) (scored []searchers.ScoredMove, stats Stats) {
	children := searchers.LegalChildren(board, player)
	scored = make([]searchers.ScoredMove, len(children))
	perMoveStats := make([]Stats, len(children))
	opponent := player.Opposite()
	scoreChild := func(idx int) {
		child := children[idx]
		_, score := SearchWithStats(child.Board, opponent, ab.eval, -ai.InfScore, ai.InfScore, ab.maxDepth-1,
			ab.opts, &perMoveStats[idx])
		scored[idx] = searchers.ScoredMove{Move: child.Move, Score: -score}
	}

	if ab.parallel && len(children) > 1 {
		var wg errgroup.Group
		wg.SetLimit(ab.getParallelism())
		for idx := range children {
			wg.Go(func() error {
				scoreChild(idx)
				return nil
			})
		}
		// Root searches don't fail.
		_ = wg.Wait()
	} else {
		for idx := range children {
			scoreChild(idx)
		}
	}

	for _, s := range perMoveStats {
		stats.Add(s)
	}
	return
}

// getParallelism returns the parallelism.
func (ab *Searcher) getParallelism() int {
	if ab.parallelism > 0 {
		return ab.parallelism
	}
	return runtime.GOMAXPROCS(0)
}
