package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/search"
)

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	moves := b.GenerateLegalMoves(false)

	tt, err := b.ParseUCIMove("g1f3")
	require.NoError(t, err)

	ordered := search.OrderMoves(b, moves, tt, true, 0, search.NewKillers(), search.NewHistory())
	require.NotEmpty(t, ordered)
	assert.Equal(t, tt, ordered[0])
	assert.Len(t, ordered, len(moves))
}

func TestOrderMovesSortsCapturesBeforeQuiets(t *testing.T) {
	fen := "rnbqkbnr/pppp1ppp/8/4p3/5P2/8/PPPPP1PP/RNBQKBNR w KQkq - 0 2"
	b, err := board.ParseFEN(fen)
	require.NoError(t, err)
	moves := b.GenerateLegalMoves(false)

	capture, err := b.ParseUCIMove("f4e5")
	require.NoError(t, err)

	ordered := search.OrderMoves(b, moves, board.Move{}, false, 0, search.NewKillers(), search.NewHistory())
	idx := -1
	for i, m := range ordered {
		if m.Equal(capture) {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	for i, m := range ordered {
		if i > idx {
			break
		}
		if !m.Equal(capture) {
			assert.False(t, m.IsQuiet(), "no quiet move should precede the only capture")
		}
	}
}

func TestOrderMovesSkipsIllegalKiller(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	moves := b.GenerateLegalMoves(false)

	killers := search.NewKillers()
	killers.Expand(1)
	blocked, err := b.ParseUCIMove("a1a1")
	if err != nil {
		// a1a1 is never a generated move; build an impossible jump by hand.
		blocked = board.Move{From: board.Square(0), To: board.Square(63), Piece: board.Rook}
	}
	killers.Add(0, blocked)

	ordered := search.OrderMoves(b, moves, board.Move{}, false, 0, killers, search.NewHistory())
	assert.Len(t, ordered, len(moves), "a killer not among legal moves must not be inserted")
}
