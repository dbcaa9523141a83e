package search_test

import (
	"strings"
	"testing"

	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/repetition"
	"github.com/stockshrimp/shrimpcore/search"
)

// A handful of well-known opening sequences, replayed move by move so
// the benchmark exercises a variety of middlegame structures rather
// than just the starting position. Grounded on the teacher's own
// game-replay node-count benchmark; the exact node counts it asserted
// as a regression gate aren't reused here since they were tuned against
// a different move-ordering and pruning catalog and would no longer
// mean anything.
var benchGames = [][]string{
	strings.Fields("e2e4 d7d6 d2d4 g8f6 b1c3 g7g6 c1e3 f8g7 d1d2 c7c6 f2f3 b7b5"),
	strings.Fields("g1f3 d7d5 d2d4 c8f5 c2c4 e7e6 b1c3 c7c6 d1b3 d8b6 c4c5 b6c7"),
	strings.Fields("c2c4 g8f6 b1c3 e7e6 d2d4 c7c5 d4d5 e6d5 c4d5 g7g6 g1f3 f8g7"),
}

func BenchmarkSearchGameReplay(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, moves := range benchGames {
			pos, err := board.ParseFEN(board.StartFEN)
			if err != nil {
				b.Fatal(err)
			}
			ctx := search.NewContext(8)
			ctx.Draws = repetition.New()
			ctrl := search.NewController(ctx)
			ctrl.MaxDepth = 4

			for _, s := range moves {
				m, err := pos.ParseUCIMove(s)
				if err != nil {
					b.Fatal(err)
				}
				pos.DoMove(m)
				ctx.Draws.Push(pos.Zobrist())
				ctrl.Run(pos, 0, 0)
			}
		}
	}
}
