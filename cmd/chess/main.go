// chess plays a match in the terminal: human vs engine, human vs human (--hotseat) or
// engine vs engine (--watch).
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/janpfeifer/chessGo/internal/match"
	"github.com/janpfeifer/chessGo/internal/players"
	_ "github.com/janpfeifer/chessGo/internal/players/default"
	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
	"github.com/janpfeifer/chessGo/internal/ui/cli"
	"github.com/janpfeifer/chessGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagHotseat = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch   = flag.Bool("watch", false, "Watch mode: engine vs engine playing")
	flagFirst   = flag.String("first", "", "Who plays White (and hence first): human or engine. Default is random.")
	flagEngine  = flag.String("engine", "ab3.mat",
		"Engine against which to play: one of the presets (see --list) or a module configuration like \"ab:max_depth=4,eval=mob\"")
	flagEngine2  = flag.String("engine2", "greedy", "Second engine, if playing engine vs engine with --watch")
	flagList     = flag.Bool("list", false, "List the engine presets and exit.")
	flagBoard    = flag.String("board", "", "File with the initial board diagram. Default is the standard initial position.")
	flagMaxMoves = flag.Int("max_moves", match.DefaultMaxMoves, "Max moves (of both players) before the match is considered a draw.")
	flagRepeats  = flag.Int("repeats", 3, "Number of repeated positions before the match is considered a draw. 0 disables it.")
	flagSeed     = flag.Uint64("seed", 0, "Seed used by the engines to break ties. If 0, a random one is used.")
	flagQuiet    = flag.Bool("quiet", false, "Quiet mode for when watching engines play, only the moves and the last board position is printed.")
	flagNoColor  = flag.Bool("no_color", false, "Disable colors.")

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagList {
		for _, name := range players.PresetNames() {
			fmt.Printf("%-12s %s\n", name, players.Presets[name])
		}
		return
	}
	if *flagMaxMoves <= 0 {
		klog.Fatalf("Invalid --max_moves=%d", *flagMaxMoves)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	ui := cli.New(!*flagNoColor, false)
	engines := createEngines(ui)
	board := NewInitialBoard()
	if *flagBoard != "" {
		board = must.M1(ParseBoard(string(must.M1(os.ReadFile(*flagBoard)))))
	}
	seed := *flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	klog.V(1).Infof("Seed: %d", seed)

	ui.PrintBoard(board)
	opts := match.Options{
		MaxMoves:   *flagMaxMoves,
		MaxRepeats: *flagRepeats,
		Name:       "The Match",
		OnMove: func(player Color, move Move, score int, board *Board) {
			ui.PrintMove(player, move, score)
			if !*flagWatch || !*flagQuiet {
				ui.PrintBoard(board)
			}
		},
	}
	result, err := match.Run(globalCtx, engines, board, White, rand.New(rand.NewPCG(seed, 0)), opts)
	if err != nil {
		klog.Errorf("%+v", err)
	}
	if *flagWatch && *flagQuiet {
		ui.PrintBoard(result.Board)
	}
	ui.PrintResult(result)
}

// createEngines returns the searchers for White and Black. Human players are searchers that read their
// moves from the terminal.
func createEngines(ui *cli.UI) (engines [NumColors]searchers.Searcher) {
	if *flagHotseat && *flagWatch {
		klog.Fatalf("--hotseat and --watch cannot be used together")
	}
	human := &humanPlayer{ui: ui}
	if *flagHotseat {
		return [NumColors]searchers.Searcher{human, human}
	}

	var enginePlayer Color
	switch strings.ToLower(*flagFirst) {
	case "human":
		enginePlayer = Black
	case "engine", "ai":
		enginePlayer = White
	case "":
		enginePlayer = Color(rand.IntN(NumColors))
	default:
		klog.Exitf("invalid --first=%q, only valid values are \"human\" or \"engine\"", *flagFirst)
	}
	engines[enginePlayer] = &spinningEngine{Searcher: must.M1(players.Resolve(*flagEngine))}
	if *flagWatch {
		engines[enginePlayer.Opposite()] = &spinningEngine{Searcher: must.M1(players.Resolve(*flagEngine2))}
	} else {
		engines[enginePlayer.Opposite()] = human
	}
	for _, player := range []Color{White, Black} {
		fmt.Printf("%s: %s\n", ui.PlayerString(player), engines[player])
	}
	return
}

// humanPlayer reads the moves from the terminal.
type humanPlayer struct {
	ui *cli.UI
}

func (h *humanPlayer) String() string { return "human" }

func (h *humanPlayer) Search(_ *rand.Rand, board *Board, player Color) (move Move, score int, ok bool) {
	if !searchers.HasLegalMove(board, player) {
		return NoMove, 0, false
	}
	move, err := h.ui.ReadMove(board, player)
	if err != nil {
		klog.Exitf("Failed to read move: %+v", err)
	}
	return move, 0, true
}

// spinningEngine shows a spinning symbol while the engine searches.
type spinningEngine struct {
	searchers.Searcher
}

func (s *spinningEngine) Search(rng *rand.Rand, board *Board, player Color) (move Move, score int, ok bool) {
	spinner := spinning.New(globalCtx)
	defer spinner.Done()
	return s.Searcher.Search(rng, board, player)
}
