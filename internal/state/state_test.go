package state_test

import (
	"testing"

	. "github.com/janpfeifer/chessGo/internal/state"
	. "github.com/janpfeifer/chessGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceRoundTrip(t *testing.T) {
	for _, c := range "PRNBQKprnbqk." {
		p, err := ParsePiece(c)
		require.NoError(t, err)
		assert.Equal(t, c, p.Char(), "round trip of %q", c)
	}
}

func TestParsePieceInvalid(t *testing.T) {
	_, err := ParsePiece('x')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid piece")
	assert.Contains(t, err.Error(), "'x'")
}

func TestPieceTables(t *testing.T) {
	for _, p := range AllPieces {
		assert.NotEqual(t, NoColor, p.Color(), "piece %s", p)
		assert.Equal(t, p, MakePiece(p.Color(), p.Kind()))
		// Values are symmetric between colors.
		other := MakePiece(p.Color().Opposite(), p.Kind())
		assert.Equal(t, -p.Value(), other.Value(), "piece %s", p)
	}
	assert.Equal(t, NoColor, Empty.Color())
	assert.True(t, WKing.IsKing())
	assert.True(t, BKing.IsKing())
	assert.False(t, WQueen.IsKing())
	assert.Equal(t, 9, WQueen.Value())
	assert.Equal(t, -5, BRook.Value())
	assert.Equal(t, '♞', BKnight.Unicode())
	assert.Equal(t, Black, White.Opposite())
	assert.Equal(t, White, Black.Opposite())
	assert.Equal(t, "Black", Black.String())
}

func TestPosAndMoveNotation(t *testing.T) {
	pos, err := ParsePos("e4")
	require.NoError(t, err)
	assert.Equal(t, Pos{4, 4}, pos)
	assert.Equal(t, "e4", pos.String())
	assert.Equal(t, "a8", Pos{0, 0}.String())

	m, err := ParseMove("e7e8q", White)
	require.NoError(t, err)
	assert.Equal(t, Move{From: Pos{1, 4}, To: Pos{0, 4}, Promotion: WQueen}, m)
	assert.Equal(t, "e7e8q", m.String())

	_, err = ParseMove("e7e9", White)
	require.Error(t, err)
	_, err = ParseMove("e7e8k", White)
	require.Error(t, err)

	assert.True(t, NoMove.IsNone())
	assert.False(t, m.IsNone())
}

func TestParseBoard(t *testing.T) {
	b := MustParse(QueenVsTwoPawns)
	assert.Equal(t, WQueen, b.At(Pos{5, 4}))
	assert.Equal(t, BPawn, b.At(Pos{2, 4}))
	assert.Equal(t, BKing, b.At(Pos{7, 0}))
	assert.Equal(t, Empty, b.At(Pos{0, 0}))
	assert.Equal(t, 7, b.Material())

	// String is accepted back by ParseBoard.
	b2, err := ParseBoard(b.String())
	require.NoError(t, err)
	assert.True(t, b.Equal(b2))

	_, err = ParseBoard(". . .\n")
	require.Error(t, err)
	_, err = ParseBoard(". . . . . . . .\n")
	require.Error(t, err)
	_, err = ParseBoard(QueenVsTwoPawns + ". . . . . . . .\n")
	require.Error(t, err)
	_, err = ParseBoard(`
		. . . . . . . x
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'x'")
}

func TestActIsPure(t *testing.T) {
	b := MustParse(QueenVsTwoPawns)
	before := b.String()
	m, err := ParseMove("e3e6", White)
	require.NoError(t, err)
	b2 := b.Act(m)
	assert.Equal(t, before, b.String(), "Act must not change the receiver")
	assert.Equal(t, WQueen, b2.At(Pos{2, 4}))
	assert.Equal(t, Empty, b2.At(Pos{5, 4}))
	assert.Equal(t, 8, b2.Material())
	assert.Panics(t, func() { b.Act(Move{From: Pos{0, 0}, To: Pos{1, 1}}) })
}

func TestKingAndCheck(t *testing.T) {
	b := MustParse(RookMate)
	assert.True(t, b.HasKing(White))
	assert.True(t, b.HasKing(Black))
	assert.True(t, b.IsCheck(Black))
	assert.False(t, b.IsCheck(White))

	m, err := ParseMove("e8h8", White)
	require.NoError(t, err)
	b2 := b.Act(m)
	assert.False(t, b2.HasKing(Black))
	assert.False(t, b2.IsCheck(Black), "a player without king is not in check")

	// Stalemate: not in check.
	assert.False(t, MustParse(Stalemate).IsCheck(Black))
}

func TestMirror(t *testing.T) {
	b := MustParse(QueenVsThreePawns)
	want := MustParse(ThreePawnsVsQueen)
	assert.True(t, want.Equal(b.Mirror()), "got:\n%s", b.Mirror())
	assert.True(t, b.Equal(b.Mirror().Mirror()))
}
