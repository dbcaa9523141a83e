package uci_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockshrimp/shrimpcore/uci"
)

func TestUCIHandshake(t *testing.T) {
	var out bytes.Buffer
	e := uci.NewEngine(&out)

	require.NoError(t, e.Execute("uci"))
	require.NoError(t, e.Execute("isready"))

	s := out.String()
	assert.Contains(t, s, "id name shrimpcore")
	assert.Contains(t, s, "uciok")
	assert.Contains(t, s, "readyok")
}

func TestUCIPositionStartposMoves(t *testing.T) {
	var out bytes.Buffer
	e := uci.NewEngine(&out)

	require.NoError(t, e.Execute("position startpos moves e2e4 e7e5"))
	require.NoError(t, e.Execute("print"))

	fen := strings.TrimSpace(out.String())
	assert.Contains(t, fen, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR")
}

func TestUCIPositionFEN(t *testing.T) {
	var out bytes.Buffer
	e := uci.NewEngine(&out)

	fen := "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"
	require.NoError(t, e.Execute("position fen "+fen))
	require.NoError(t, e.Execute("ischeck"))
	assert.Contains(t, out.String(), "false")
}

func TestUCIGoDepthReturnsBestMove(t *testing.T) {
	var out bytes.Buffer
	e := uci.NewEngine(&out)

	require.NoError(t, e.Execute("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))
	require.NoError(t, e.Execute("go depth 3"))

	assert.Contains(t, out.String(), "bestmove a1a8")
}

func TestUCIQuitReturnsErrQuit(t *testing.T) {
	var out bytes.Buffer
	e := uci.NewEngine(&out)
	err := e.Execute("quit")
	assert.ErrorIs(t, err, uci.ErrQuit)
}

func TestUCIPerftCountsStartingPositionDivide(t *testing.T) {
	var out bytes.Buffer
	e := uci.NewEngine(&out)
	require.NoError(t, e.Execute("perft 2"))
	assert.Contains(t, out.String(), "nodes searched: 400")
}
