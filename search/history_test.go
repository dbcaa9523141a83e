package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/search"
)

func TestHistoryGetRepIsInvertedRelativeHistory(t *testing.T) {
	h := search.NewHistory()
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	m, err := b.ParseUCIMove("g1f3")
	require.NoError(t, err)

	assert.EqualValues(t, 0, h.GetRep(b, m), "no visits yet scores zero")

	h.IncreaseQRep(b, m, 4)
	first := h.GetRep(b, m)
	assert.Greater(t, first, int32(0))

	h.DecreaseQRep(b, m, 4)
	assert.Less(t, h.GetRep(b, m), first)
}

func TestHistoryShrinkHalvesAndCapsButterfly(t *testing.T) {
	h := search.NewHistory()
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	m, err := b.ParseUCIMove("g1f3")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		h.IncreaseQRep(b, m, 6)
	}
	before := h.GetRep(b, m)
	require.NotZero(t, before)

	h.Shrink()
	after := h.GetRep(b, m)
	assert.NotEqual(t, before, after, "shrink must change the ordering weight")
}

func TestHistoryClearZeroesEverything(t *testing.T) {
	h := search.NewHistory()
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	m, err := b.ParseUCIMove("g1f3")
	require.NoError(t, err)

	h.IncreaseQRep(b, m, 6)
	h.UpdatePawnCorrHist(b, 120, 40, 6)
	require.NotZero(t, h.GetRep(b, m))

	h.Clear()
	assert.EqualValues(t, 0, h.GetRep(b, m))
	assert.EqualValues(t, 0, h.GetPawnCorrection(b))
}

func TestKillersAddAndDedupe(t *testing.T) {
	k := search.NewKillers()
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	m1, err := b.ParseUCIMove("g1f3")
	require.NoError(t, err)
	m2, err := b.ParseUCIMove("b1c3")
	require.NoError(t, err)

	k.Expand(4)
	k.Add(2, m1)
	assert.True(t, k.IsKiller(2, m1))

	k.Add(2, m2)
	assert.True(t, k.IsKiller(2, m1))
	assert.True(t, k.IsKiller(2, m2))

	k.Add(2, m1)
	ks := k.Get(2)
	assert.Equal(t, m1, ks[0], "re-adding an existing killer keeps it at the front without duplicating")
}
