package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/eval"
)

func TestEvaluateIsDeterministic(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	first := eval.Evaluate(b)
	second := eval.Evaluate(b)
	assert.Equal(t, first, second)
}

func TestStartingPositionIsSideToMoveBonus(t *testing.T) {
	b, err := board.ParseFEN(board.StartFEN)
	require.NoError(t, err)
	assert.EqualValues(t, 5, eval.Evaluate(b))
}

func TestMirroringNegatesScore(t *testing.T) {
	white, err := board.ParseFEN("4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	require.NoError(t, err)
	black, err := board.ParseFEN("4k3/8/4p3/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, eval.Evaluate(white), -eval.Evaluate(black))
}
