// Package _default registers the default engines that can be included in any
// front-end for chessGo.
//
// Currently, it includes the random, greedy, lookahead (l0 and l1) and alpha-beta (ab) engines.
package _default

import (
	"github.com/janpfeifer/chessGo/internal/ai"
	"github.com/janpfeifer/chessGo/internal/parameters"
	"github.com/janpfeifer/chessGo/internal/players"
	"github.com/janpfeifer/chessGo/internal/searchers"
	"github.com/janpfeifer/chessGo/internal/searchers/alphabeta"
	"github.com/janpfeifer/chessGo/internal/searchers/greedy"
	"github.com/janpfeifer/chessGo/internal/searchers/lookahead"
	"github.com/janpfeifer/chessGo/internal/searchers/random"
	"github.com/pkg/errors"
)

func init() {
	players.RegisterModule("random", func(parameters.Params) (searchers.Searcher, error) {
		return random.New(), nil
	})
	players.RegisterModule("greedy", func(parameters.Params) (searchers.Searcher, error) {
		return greedy.New(), nil
	})
	players.RegisterModule("l0", newLookahead(lookahead.NewL0))
	players.RegisterModule("l1", newLookahead(lookahead.NewL1))
	players.RegisterModule("ab", newAlphaBeta)
}

// popEvaluator takes the "eval" parameter, "mat" by default.
func popEvaluator(params parameters.Params) (ai.Evaluator, error) {
	name, err := parameters.PopParamOr(params, "eval", ai.Material.String())
	if err != nil {
		return nil, err
	}
	return ai.EvaluatorByName(name)
}

func newLookahead(ctor func(ai.Evaluator) *lookahead.Searcher) players.Builder {
	return func(params parameters.Params) (searchers.Searcher, error) {
		eval, err := popEvaluator(params)
		if err != nil {
			return nil, err
		}
		return ctor(eval), nil
	}
}

// newAlphaBeta creates an alpha-beta searcher. Parameters:
//
//   - eval (string): "mat" (default) or "mob".
//   - max_depth (int): search depth, >= 1. Default is alphabeta.DefaultMaxDepth.
//   - parallel (bool): search the root moves in parallel.
//   - parallelism (int): max number of goroutines, if parallel. Default (0) is GOMAXPROCS.
//   - ordering (string): "ascending" (default), "descending" or "none".
//   - stalemate_draw (bool): score stalemates as 0.
func newAlphaBeta(params parameters.Params) (searchers.Searcher, error) {
	eval, err := popEvaluator(params)
	if err != nil {
		return nil, err
	}
	maxDepth, err := parameters.PopParamOr(params, "max_depth", alphabeta.DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	if maxDepth < 1 {
		return nil, errors.Errorf("max_depth must be >= 1, got %d", maxDepth)
	}
	parallel, err := parameters.PopParamOr(params, "parallel", false)
	if err != nil {
		return nil, err
	}
	parallelism, err := parameters.PopParamOr(params, "parallelism", 0)
	if err != nil {
		return nil, err
	}
	if parallelism < 0 {
		return nil, errors.Errorf("parallelism must be >= 0, got %d", parallelism)
	}
	orderingName, err := parameters.PopParamOr(params, "ordering", alphabeta.OrderAscending.String())
	if err != nil {
		return nil, err
	}
	ordering, ok := alphabeta.ParseOrdering(orderingName)
	if !ok {
		return nil, errors.Errorf("unknown ordering %q, valid values are \"ascending\", \"descending\" or \"none\"", orderingName)
	}
	stalemateIsDraw, err := parameters.PopParamOr(params, "stalemate_draw", false)
	if err != nil {
		return nil, err
	}
	return alphabeta.New(eval).
		WithMaxDepth(maxDepth).
		WithParallel(parallel).
		WithParallelism(parallelism).
		WithOrdering(ordering).
		WithStalemateIsDraw(stalemateIsDraw), nil
}
