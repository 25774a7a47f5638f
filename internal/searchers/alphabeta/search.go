package alphabeta

import (
	"fmt"

	"github.com/janpfeifer/chessGo/internal/ai"
	"github.com/janpfeifer/chessGo/internal/generics"
	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
)

// Ordering of the moves before recursing in the search. It only changes how much is pruned,
// never the score returned.
type Ordering int

const (
	// OrderAscending sorts moves by increasing shallow score of the resulting board.
	OrderAscending Ordering = iota

	// OrderDescending sorts moves by decreasing shallow score, the most promising first.
	OrderDescending

	// OrderNone keeps the move generation order.
	OrderNone
)

var orderingNames = []string{"ascending", "descending", "none"}

// String implements fmt.Stringer.
func (o Ordering) String() string {
	if o < 0 || int(o) >= len(orderingNames) {
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
	return orderingNames[o]
}

// ParseOrdering converts the name returned by Ordering.String back to an Ordering.
func ParseOrdering(name string) (Ordering, bool) {
	for ii, n := range orderingNames {
		if n == name {
			return Ordering(ii), true
		}
	}
	return OrderAscending, false
}

// Options of the alpha-beta recursion. The zero value is the default configuration.
type Options struct {
	// Ordering of the moves at nodes with depth > 1.
	Ordering Ordering

	// StalemateIsDraw makes a player without legal moves, but not in check, score 0 instead of
	// the "no legal moves" sentinel.
	StalemateIsDraw bool
}

// Stats stores counts collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes visited: every call of the recursion, including leaves and terminal positions.
	Nodes int

	// LeafEvals is the number of calls to the evaluator at depth 0.
	LeafEvals int

	// OrderingEvals is the number of calls to the evaluator used to order moves.
	OrderingEvals int

	// Prunes is the number of beta cutoffs.
	Prunes int
}

// Add other to s.
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.LeafEvals += other.LeafEvals
	s.OrderingEvals += other.OrderingEvals
	s.Prunes += other.Prunes
}

// Search runs the negamax alpha-beta pruning search with the default Options.
//
// It returns the best move for player (NoMove if there are no legal moves or depth is 0) and its
// score from player's perspective. Terminal positions are scored with sentinels offset by
// the remaining depth:
//
//   - player has no king: -ai.InfScore + depth. Losing the king later (with less depth left)
//     is worse, so when every line loses the search delays the loss.
//   - player has no legal move: -ai.InfScore - depth. Checkmate and stalemate are not
//     distinguished (see Options.StalemateIsDraw).
//
// The recursion goes depth levels deep. It is safe to call concurrently, as long as eval is.
func Search(board *Board, player Color, eval ai.Evaluator, alpha, beta, depth int) (Move, int) {
	return SearchWithStats(board, player, eval, alpha, beta, depth, Options{}, nil)
}

// SearchWithStats is like Search, but with the given Options, and collecting Stats if stats is not nil.
// stats is owned by the caller: don't share it among concurrent searches.
func SearchWithStats(board *Board, player Color, eval ai.Evaluator, alpha, beta, depth int,
	opts Options, stats *Stats) (Move, int) {
	if stats == nil {
		stats = &Stats{}
	}
	r := &recursion{eval: eval, opts: opts, stats: stats}
	return r.search(board, player, alpha, beta, depth)
}

// recursion holds what is constant during one search.
type recursion struct {
	eval  ai.Evaluator
	opts  Options
	stats *Stats
}

func (r *recursion) search(board *Board, player Color, alpha, beta, depth int) (bestMove Move, bestScore int) {
	r.stats.Nodes++

	// Must stop here, so a king is never traded for a king.
	if !board.HasKing(player) {
		return NoMove, -ai.InfScore + depth
	}
	if depth == 0 {
		r.stats.LeafEvals++
		return NoMove, r.eval.Evaluate(board, player)
	}

	children := searchers.LegalChildren(board, player)
	if len(children) == 0 {
		if r.opts.StalemateIsDraw && !board.IsCheck(player) {
			return NoMove, 0
		}
		return NoMove, -ai.InfScore - depth
	}

	// Ordering is only worth its cost at least two levels above the leaves.
	if depth > 1 && r.opts.Ordering != OrderNone {
		children = r.order(children, player)
	}

	bestMove, bestScore = NoMove, -ai.InfScore-depth
	opponent := player.Opposite()
	for _, child := range children {
		// The opponent's window is the negated and swapped one.
		_, score := r.search(child.Board, opponent, -beta, -alpha, depth-1)
		score = -score

		// Ties are taken by the later move.
		if score >= bestScore {
			bestScore, bestMove = score, child.Move
		}
		alpha = max(alpha, score)
		if alpha >= beta {
			r.stats.Prunes++
			break
		}
	}
	return
}

// order sorts the children by their shallow score for player, using a stable sort.
func (r *recursion) order(children []searchers.Child, player Color) []searchers.Child {
	scores := make([]int, len(children))
	for ii, child := range children {
		scores[ii] = r.eval.Evaluate(child.Board, player)
	}
	r.stats.OrderingEvals += len(children)
	ordering := generics.SliceOrdering(scores, r.opts.Ordering == OrderDescending)
	return generics.SliceMap(ordering, func(idx int) searchers.Child { return children[idx] })
}
