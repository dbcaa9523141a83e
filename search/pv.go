package search

import (
	"github.com/stockshrimp/shrimpcore/board"
	"github.com/stockshrimp/shrimpcore/eval"
)

// Pruning-catalog tunings. Reference values; an implementation may
// expose these as configuration.
const (
	fpMinPly   = 3
	fpMaxDepth = 3

	rfpMinPly   = 3
	rfpMaxDepth = 3

	lmrMinPly      = 3
	lmrMinDepth    = 3
	lmrMinExpanded = 4

	nmpMinDepth = 0
	nmpMinPly   = 2
)

func marginMagnitude(depth int) int16 {
	return int16(80 + 60*depth)
}

func fpMargin(depth int, c board.Color) int16 {
	return signOf(c) * marginMagnitude(depth)
}

func rfpMargin(depth int, c board.Color) int16 {
	return signOf(c) * marginMagnitude(depth)
}

// Search is the principal-variation alpha-beta driver. It returns the
// proven score for board at (ply, depth) against window, plus the
// line of moves starting at this node.
func (ctx *Context) Search(b *board.Board, ply, depth int, w *Window) (int16, []board.Move) {
	if ctx.Abort() && ctx.CurDepth > 1 {
		return 0, nil
	}
	if depth <= 0 {
		return ctx.QSearch(b, ply, w), nil
	}
	if ply == 1 || ply == 2 {
		if ctx.Draws != nil && ctx.Draws.Seen(b.Zobrist()) {
			return 0, nil
		}
	}
	ctx.TotalNodes++

	color := b.SideToMove()
	inCheck := b.IsKingInCheck(color)

	// Razoring: mutates depth/ply in place rather than returning a
	// cutoff, an unusual choice preserved exactly as designed.
	if !inCheck && ply >= 3 && depth == 4 {
		qw := w.GetLowerBound(color)
		margin := int16(165*depth) * signOf(color)
		qscore := ctx.QSearch(b, ply, &qw)
		if qw.FailsLow(qscore+margin, color) {
			depth -= 2
			ply += 2
		}
	}

	// Null-move pruning. The zugzwang guard (at least two non-pawn
	// pieces for the side to move) folds in the older source variant's
	// precondition alongside the newer ply/mate/headroom rule, since it
	// only ever restricts, never contradicts, the newer rule.
	if depth >= nmpMinDepth && ply >= nmpMinPly && !inCheck &&
		!IsMateScore(ctx.PrevPVScore) && w.CanFailHigh(color) &&
		nonPawnPieceCount(b, color) >= 2 {
		r := 2
		if ply > 4 {
			r = 3
		}
		child := b.GetNullChild()
		nullWindow := w.GetUpperBound(color)
		score, _ := ctx.Search(child, ply+1, depth-r-1, &nullWindow)
		if w.FailsHigh(score, color) {
			return score, nil
		}
	}

	ttMove, hasTT := ctx.TT.GetBestMove(b)
	moves := b.GenerateLegalMoves(false)
	ordered := OrderMoves(b, moves, ttMove, hasTT, ply, ctx.Killers, ctx.Hist)

	expanded := 0
	var bestPV []board.Move

	for _, m := range ordered {
		expanded++
		child := b.Clone()
		child.DoMove(m)

		childGivesCheck := child.IsKingInCheck(child.SideToMove())
		interesting := expanded == 1 || inCheck || childGivesCheck
		sEval := eval.Evaluate(child)

		if ply >= fpMinPly && depth <= fpMaxDepth && !interesting {
			if w.FailsLow(sEval+fpMargin(depth, color), color) {
				continue
			}
		}
		if ply >= rfpMinPly && depth <= rfpMaxDepth && !interesting {
			if w.FailsHigh(sEval-rfpMargin(depth, color), color) {
				continue
			}
		}

		if ply >= lmrMinPly && depth >= lmrMinDepth && expanded >= lmrMinExpanded && !interesting {
			r := 3
			if ctx.Hist.GetRep(b, m) < -1320 {
				r = 4
			}
			lmrWindow := w.GetLowerBound(color)
			score, _ := ctx.Search(child, ply+1, depth-1-r, &lmrWindow)
			if lmrWindow.FailsLow(score, color) {
				if m.IsQuiet() {
					ctx.Hist.DecreaseQRep(b, m, depth)
				}
				continue
			}
		}

		cw := *w
		score, childPV := ctx.ProbeTT(child, ply+1, depth-1, &cw)

		if w.FailsLow(score, color) {
			if m.IsQuiet() {
				ctx.Hist.DecreaseQRep(b, m, depth)
			}
			continue
		}

		ctx.TT.Store(b, depth, ply, *w, score, m)
		pv := append([]board.Move{m}, childPV...)

		if w.TryCutoff(score, color) {
			if m.IsQuiet() {
				ctx.Hist.IncreaseQRep(b, m, depth)
				ctx.Killers.Add(ply, m)
			}
			return score, pv
		}
		bestPV = pv
	}

	if expanded == 0 {
		if inCheck {
			return GetMateScore(color, ply), nil
		}
		return 0, nil
	}

	return w.GetBoundScore(color), bestPV
}

// ProbeTT returns a usable transposition-table score when one exists
// at sufficient depth, otherwise recurses into Search and stores the
// result.
func (ctx *Context) ProbeTT(b *board.Board, ply, depth int, w *Window) (int16, []board.Move) {
	if ply >= MinPly {
		if score, ok := ctx.TT.GetScore(b, depth, ply, *w); ok {
			return score, nil
		}
	}
	orig := *w
	score, pv := ctx.Search(b, ply, depth, w)
	var best board.Move
	if len(pv) > 0 {
		best = pv[0]
	}
	ctx.TT.Store(b, depth, ply, orig, score, best)
	return score, pv
}
