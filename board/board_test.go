package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockshrimp/shrimpcore/board"
)

func TestParseFENRoundTrip(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	assert.Equal(t, board.StartFEN, b.FEN())
}

func TestParseFENBadInput(t *testing.T) {
	_, err := board.ParseFEN("not a fen")
	assert.Error(t, err)
}

func TestStartingPositionPerft(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	assert.EqualValues(t, 20, b.Perft(1))
	assert.EqualValues(t, 400, b.Perft(2))
	assert.EqualValues(t, 8902, b.Perft(3))
}

func TestKingInCheck(t *testing.T) {
	b, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.IsKingInCheck(board.White))

	m, err := b.ParseUCIMove("a1a8")
	require.NoError(t, err)
	b.DoMove(m)
	assert.True(t, b.IsKingInCheck(board.Black))
}

func TestCastlingMovesGeneratedWithFullRights(t *testing.T) {
	b, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	moves := b.GenerateLegalMoves(false)
	var hasOO, hasOOO bool
	for _, m := range moves {
		if m.IsCastle && m.To == board.Square(6) {
			hasOO = true
		}
		if m.IsCastle && m.To == board.Square(2) {
			hasOOO = true
		}
	}
	assert.True(t, hasOO)
	assert.True(t, hasOOO)
}

func TestEnPassantCapture(t *testing.T) {
	b, err := board.ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	require.NoError(t, err)
	sq, ok := b.EnPassant()
	require.True(t, ok)
	assert.Equal(t, "e3", sq.String())

	m, err := b.ParseUCIMove("d4e3")
	require.NoError(t, err)
	assert.True(t, m.IsEnPassant)
	b.DoMove(m)
	assert.Equal(t, board.NoPiece, b.PieceAt(mustSquare(t, "e4")))
}

func mustSquare(t *testing.T, s string) board.Square {
	t.Helper()
	sq, err := board.SquareFromString(s)
	require.NoError(t, err)
	return sq
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	c := b.Clone()
	m, err := c.ParseUCIMove("e2e4")
	require.NoError(t, err)
	c.DoMove(m)
	assert.NotEqual(t, b.Zobrist(), c.Zobrist())
	assert.Equal(t, board.White, b.SideToMove())
	assert.Equal(t, board.Black, c.SideToMove())
}

func TestGetNullChildFlipsSideClearsEP(t *testing.T) {
	b, err := board.ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	require.NoError(t, err)
	n := b.GetNullChild()
	assert.Equal(t, board.White, n.SideToMove())
	_, ok := n.EnPassant()
	assert.False(t, ok)
}
