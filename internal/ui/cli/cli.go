// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/chessGo/internal/match"
	"github.com/janpfeifer/chessGo/internal/searchers"
	. "github.com/janpfeifer/chessGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// CharsPerColumn is the width of each square when printed.
const CharsPerColumn = 3

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the number of runes left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		terminalWidth = 0
	}
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((terminalWidth-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// UI reads the moves of a human player and prints boards and results.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

var (
	lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("180"))
	darkSquare  = lipgloss.NewStyle().Background(lipgloss.Color("94"))
	whitePiece  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	blackPiece  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// ErrTooManyErrors is returned by ReadMove if the user fails to enter a valid move 3 times in a row.
	ErrTooManyErrors = errors.New("failed to read move 3 times")
)

// New creates a UI that reads from stdin and writes to stdout.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO creates a UI that reads from r and writes to w.
func NewWithIO(r io.Reader, w io.Writer, color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(r),
		out:         w,
	}
}

// RenderBoard returns the board drawn with Unicode pieces, with files and ranks labels.
func (ui *UI) RenderBoard(board *Board) string {
	var sb strings.Builder
	files := "  "
	for col := range BoardSize {
		files += centerString(string(rune('a'+col)), CharsPerColumn)
	}
	sb.WriteString(ui.label(files) + "\n")
	for row := range BoardSize {
		rank := fmt.Sprintf("%d ", BoardSize-row)
		sb.WriteString(ui.label(rank))
		for col := range BoardSize {
			pos := Pos{int8(row), int8(col)}
			sb.WriteString(ui.square(pos, board.At(pos)))
		}
		sb.WriteString(ui.label(" "+strings.TrimSpace(rank)) + "\n")
	}
	sb.WriteString(ui.label(files))
	return sb.String()
}

func (ui *UI) label(s string) string {
	if !ui.color {
		return s
	}
	return labelStyle.Render(s)
}

func (ui *UI) square(pos Pos, piece Piece) string {
	symbol := "."
	if !piece.IsEmpty() {
		symbol = string(piece.Unicode())
	}
	text := centerString(symbol, CharsPerColumn)
	if !ui.color {
		if piece.IsEmpty() {
			return text
		}
		return centerString(string(piece.Char()), CharsPerColumn)
	}
	if piece.IsEmpty() {
		text = strings.Repeat(" ", CharsPerColumn)
	}
	style := lightSquare
	if (pos.Row()+pos.Col())%2 == 1 {
		style = darkSquare
	}
	if piece.Color() == White {
		style = style.Inherit(whitePiece)
	} else {
		style = style.Inherit(blackPiece)
	}
	return style.Render(text)
}

func centerString(s string, fit int) string {
	width := len([]rune(s))
	if width >= fit {
		return s
	}
	marginLeft := (fit - width) / 2
	marginRight := fit - width - marginLeft
	return strings.Repeat(" ", marginLeft) + s + strings.Repeat(" ", marginRight)
}

// PrintBoard prints the board centered in the terminal.
func (ui *UI) PrintBoard(board *Board) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033c")
	}
	ui.printCentered(ui.RenderBoard(board))
}

// PlayerString returns the name of the player, colored if the UI uses colors.
func (ui *UI) PlayerString(player Color) string {
	s := fmt.Sprintf("%s Player", player)
	if !ui.color {
		return s
	}
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if player == White {
		style = style.Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0"))
	} else {
		style = style.Background(lipgloss.Color("0")).Foreground(lipgloss.Color("15"))
	}
	return style.Render(s)
}

// PrintMove prints the move just played by player.
func (ui *UI) PrintMove(player Color, move Move, score int) {
	_, _ = fmt.Fprintf(ui.out, "\n%s played %s (score %d)\n\n", ui.PlayerString(player), move, score)
}

// PrintResult prints the winner and why the match finished.
func (ui *UI) PrintResult(result match.Result) {
	_, _ = fmt.Fprintln(ui.out)
	var msg string
	switch {
	case result.Reason == match.Cancelled:
		msg = fmt.Sprintf("*** Match interrupted after %d moves ***", len(result.Moves))
	case result.IsDraw():
		msg = fmt.Sprintf("*** DRAW: %s! ***", result.Reason)
	default:
		msg = fmt.Sprintf("*** %s PLAYER WINS by %s!! ***", strings.ToUpper(result.Winner.String()), result.Reason)
	}
	if ui.color {
		msg = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2).
			Render(msg)
	}
	ui.printCentered(msg)
	_, _ = fmt.Fprintln(ui.out)
}

// ReadMove reads a move of player in long algebraic notation (e.g. "e2e4", or "e7e8q" for promotions),
// and checks that it is legal. Typing "?" lists the legal moves.
//
// It returns ErrTooManyErrors after 3 invalid inputs, or the reading error (io.EOF if the input ended).
func (ui *UI) ReadMove(board *Board, player Color) (Move, error) {
	children := searchers.LegalChildren(board, player)
	legal := make([]string, len(children))
	for ii, child := range children {
		legal[ii] = child.Move.String()
	}
	for numErrs := 0; numErrs < 3; {
		_, _ = fmt.Fprintf(ui.out, "    %s move > ", ui.PlayerString(player))
		text, err := ui.reader.ReadString('\n')
		text = strings.ToLower(strings.TrimSpace(text))
		if err != nil && (!errors.Is(err, io.EOF) || text == "") {
			return NoMove, err
		}
		if text == "?" {
			_, _ = fmt.Fprintf(ui.out, "    - Legal moves: %s\n", strings.Join(legal, ", "))
			continue
		}
		move, err := ParseMove(text, player)
		if err != nil {
			_, _ = fmt.Fprintf(ui.out, "    * %v, please try again (\"?\" lists the legal moves).\n", err)
			numErrs++
			continue
		}
		if !slices.Contains(legal, move.String()) {
			_, _ = fmt.Fprintf(ui.out, "    * Move %s is not legal, please try again (\"?\" lists the legal moves).\n", move)
			numErrs++
			continue
		}
		return move, nil
	}
	return NoMove, ErrTooManyErrors
}
