package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/search"
)

func TestTTTrustsOnlySufficientDepth(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	w := search.Window{Alpha: -100, Beta: 100}
	tt.Store(b, 5, 3, w, 42, board.Move{})

	_, ok := tt.GetScore(b, 8, 3, w)
	assert.False(t, ok, "probe at deeper depth than stored must miss")

	score, ok := tt.GetScore(b, 5, 3, w)
	assert.True(t, ok)
	assert.EqualValues(t, 42, score)

	score, ok = tt.GetScore(b, 3, 3, w)
	assert.True(t, ok, "probe at shallower depth than stored must hit")
	assert.EqualValues(t, 42, score)
}

func TestTTFlagsRespectWindow(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	w := search.Window{Alpha: 0, Beta: 100}
	tt.Store(b, 5, 3, w, 100, board.Move{}) // fails high -> Lower bound

	_, ok := tt.GetScore(b, 5, 3, search.Window{Alpha: 0, Beta: 50})
	assert.True(t, ok, "lower bound usable when stored score >= new beta")

	_, ok = tt.GetScore(b, 5, 3, search.Window{Alpha: 0, Beta: 200})
	assert.False(t, ok, "lower bound not usable against a wider beta")
}

func TestTTGetBestMove(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)

	m, err := b.ParseUCIMove("e2e4")
	require.NoError(t, err)

	w := search.Window{Alpha: -10, Beta: 10}
	tt.Store(b, 4, 0, w, 0, m)

	got, ok := tt.GetBestMove(b)
	require.True(t, ok)
	assert.Equal(t, m, got)
}
