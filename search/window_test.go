package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/search"
)

func TestWindowFailsLowHighSymmetry(t *testing.T) {
	w1 := search.Window{Alpha: -10, Beta: 10}
	w2 := search.Window{Alpha: -10, Beta: 10}

	for _, s := range []int16{-20, -10, -5, 0, 5, 10, 20} {
		assert.Equal(t, w1.FailsLow(s, board.White), w2.FailsHigh(s, board.Black))
	}
}

func TestTryCutoffWhite(t *testing.T) {
	w := search.Window{Alpha: 0, Beta: 10}
	assert.False(t, w.TryCutoff(5, board.White))
	assert.EqualValues(t, 5, w.Alpha)
	assert.True(t, w.TryCutoff(12, board.White))
}

func TestTryCutoffBlack(t *testing.T) {
	w := search.Window{Alpha: 0, Beta: 10}
	assert.False(t, w.TryCutoff(5, board.Black))
	assert.EqualValues(t, 5, w.Beta)
	assert.True(t, w.TryCutoff(-3, board.Black))
}

func TestBoundWindows(t *testing.T) {
	w := search.Window{Alpha: 4, Beta: 9}
	lb := w.LowerBound()
	assert.EqualValues(t, 4, lb.Alpha)
	assert.EqualValues(t, 5, lb.Beta)

	ub := w.UpperBound()
	assert.EqualValues(t, 8, ub.Alpha)
	assert.EqualValues(t, 9, ub.Beta)
}

func TestGetBoundScore(t *testing.T) {
	w := search.Window{Alpha: 4, Beta: 9}
	assert.EqualValues(t, 4, w.GetBoundScore(board.White))
	assert.EqualValues(t, 9, w.GetBoundScore(board.Black))
}
