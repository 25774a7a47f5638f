// compare plays many matches between two engines, alternating who plays White, and prints
// the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/janpfeifer/chessGo/internal/match"
	"github.com/janpfeifer/chessGo/internal/players"
	_ "github.com/janpfeifer/chessGo/internal/players/default"
	"github.com/janpfeifer/chessGo/internal/profilers"
	"github.com/janpfeifer/chessGo/internal/searchers"
	"github.com/janpfeifer/chessGo/internal/state"
	"github.com/janpfeifer/chessGo/internal/ui/cli"
	"github.com/janpfeifer/chessGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	flagEngine1     = flag.String("engine1", "", "1st engine configuration, e.g. \"ab3.mat\".")
	flagEngine2     = flag.String("engine2", "", "2nd engine configuration, e.g. \"greedy\".")
	flagNumMatches  = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print board at each step. "+
		"Very verbose, and you probably want to set --parallelism to 1.")
	flagMaxMoves = flag.Int(
		"max_moves", match.DefaultMaxMoves, "Max moves before game is assumed to be a draw.")
	flagRepeats = flag.Int("repeats", 3, "Number of repeated positions before the match is considered a draw. 0 disables it.")
	flagSeed    = flag.Uint64("seed", 1, "Seed for the matches: match i uses the random source (seed, i).")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagEngine1 == "" || *flagEngine2 == "" {
		klog.Fatal("You must configure both engines to compare with flags --engine1 and --engine2")
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	engines := must.M1(createEngines())
	must.M(runMatches(globalCtx, engines))
}

func createEngines() (engines [2]searchers.Searcher, err error) {
	for engineIdx, config := range [2]string{*flagEngine1, *flagEngine2} {
		klog.V(1).Infof("Creating engine #%d from %q", engineIdx+1, config)
		engines[engineIdx], err = players.Resolve(config)
		if err != nil {
			return
		}
	}
	return
}

type Results struct {
	mu                     sync.Mutex
	start                  time.Time
	winsAsWhite, winsAsBlk [2]int
	draws                  [2]int
	played, total          int
	numMoves               int
}

func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.played, r.total))
	for engineIdx := range 2 {
		parts = append(parts,
			fmt.Sprintf("Engine-%d: %d Wins (White: %d, Black: %d) / ",
				engineIdx+1, r.winsAsWhite[engineIdx]+r.winsAsBlk[engineIdx],
				r.winsAsWhite[engineIdx], r.winsAsBlk[engineIdx]))
	}
	parts = append(parts, fmt.Sprintf("%d draws (%d Engine-1 as White, %d Engine-2 as White) - ",
		r.draws[0]+r.draws[1], r.draws[0], r.draws[1]))
	if r.played > 0 {
		parts = append(parts, fmt.Sprintf("%.1f moves/match - ", float64(r.numMoves)/float64(r.played)))
	}
	parts = append(parts, time.Since(r.start).Round(time.Millisecond).String())
	parts = append(parts, "\033[0K")
	return strings.Join(parts, "")
}

// record the result of a match where the engine engineAsWhite played White.
func (r *Results) record(engineAsWhite int, result match.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch result.Winner {
	case state.NoColor:
		r.draws[engineAsWhite]++
	case state.White:
		r.winsAsWhite[engineAsWhite]++
	case state.Black:
		r.winsAsBlk[1-engineAsWhite]++
	}
	r.played++
	r.numMoves += len(result.Moves)
	fmt.Printf("\r%s", r)
}

func runMatches(ctx context.Context, engines [2]searchers.Searcher) error {
	r := &Results{
		start: time.Now(),
		total: *flagNumMatches,
	}
	var wg errgroup.Group
	parallelism := getParallelism()
	wg.SetLimit(parallelism)
	fmt.Printf("\r%s", r)

	for matchIdx := range r.total {
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			matchEngines := engines
			engineAsWhite := matchIdx % 2
			if engineAsWhite == 1 {
				matchEngines[0], matchEngines[1] = matchEngines[1], matchEngines[0]
			}
			result, err := runMatch(ctx, matchIdx, matchEngines)
			if err != nil || ctx.Err() != nil {
				// Interruptions are not errors.
				return nil
			}
			r.record(engineAsWhite, result)
			return nil
		})
	}
	err := wg.Wait()
	fmt.Printf("\r%s", r)
	fmt.Println()
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return nil
	}
	return err
}

var (
	stepUI   = cli.New(true, false)
	muStepUI sync.Mutex
)

func runMatch(ctx context.Context, matchIdx int, engines [2]searchers.Searcher) (match.Result, error) {
	matchName := fmt.Sprintf("Match-%05d", matchIdx)
	opts := match.Options{
		MaxMoves:   *flagMaxMoves,
		MaxRepeats: *flagRepeats,
		Name:       matchName,
	}
	if *flagPrintSteps {
		opts.OnMove = func(player state.Color, move state.Move, score int, board *state.Board) {
			muStepUI.Lock()
			defer muStepUI.Unlock()
			fmt.Printf("%s, %s (%s) plays %s, score=%d\n\n", matchName, player, engines[player], move, score)
			stepUI.PrintBoard(board)
			fmt.Println()
			fmt.Println("------------------")
		}
	}
	// Each match owns its random source.
	rng := rand.New(rand.NewPCG(*flagSeed, uint64(matchIdx)))
	return match.Run(ctx, engines, state.NewInitialBoard(), state.White, rng, opts)
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
