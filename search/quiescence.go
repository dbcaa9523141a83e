package search

import (
	"sort"

	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/eval"
)

// QSearch extends the search with captures (and check evasions) past
// the horizon depth, to avoid evaluating positions in the middle of a
// capture sequence. Grounded on the teacher's own searchQuiescence but
// restructured around Window instead of negated negamax.
func (ctx *Context) QSearch(b *board.Board, ply int, w *Window) int16 {
	if ctx.Abort() {
		return 0
	}
	ctx.TotalNodes++
	if ply > ctx.AchievedDepth {
		ctx.AchievedDepth = ply
	}

	if ply >= ctx.MaxQDepth {
		return eval.Evaluate(b)
	}

	color := b.SideToMove()
	inCheck := b.IsKingInCheck(color)

	var standPat int16
	if !inCheck {
		standPat = eval.Evaluate(b)
		if w.TryCutoff(standPat, color) {
			return w.GetBoundScore(color)
		}
	}

	onlyCaptures := !inCheck || ply >= ctx.MaxQDepth-3
	moves := b.GenerateLegalMoves(onlyCaptures)

	if len(moves) == 0 {
		if !inCheck {
			// Stand-pat without verifying this isn't a stalemate,
			// preserved as specified.
			return standPat
		}
		if onlyCaptures {
			all := b.GenerateLegalMoves(false)
			if len(all) == 0 {
				return GetMateScore(color, ply)
			}
			return standPat - 100*signOf(color)
		}
		return GetMateScore(color, ply)
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return mvvLvaKey(moves[i]) > mvvLvaKey(moves[j])
	})

	for _, m := range moves {
		if onlyCaptures && ply >= ctx.CurDepth+4 {
			deltaMargin := int16(ctx.MaxQDepth-ply) * 81 * signOf(color)
			if w.FailsLow(standPat+pieceCentipawnValue(m.Captured)+deltaMargin, color) {
				continue
			}
		}

		child := b.Clone()
		child.DoMove(m)
		cw := *w
		score := ctx.QSearch(child, ply+1, &cw)
		if w.TryCutoff(score, color) {
			break
		}
	}

	return w.GetBoundScore(color)
}
