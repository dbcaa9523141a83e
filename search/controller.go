package search

import (
	"time"

	"github.com/stockshrimp/shrimpcore/board"
)

// DefaultMaxDepth bounds iterative deepening; recursion depth stays
// well inside native stack limits at this bound.
const DefaultMaxDepth = 64

// Controller drives iterative deepening on top of a Context, grounded
// on the teacher's Engine.Play / TimeControl loop shape.
type Controller struct {
	Ctx      *Context
	MaxDepth int
}

// NewController returns a Controller bound to ctx.
func NewController(ctx *Context) *Controller {
	return &Controller{Ctx: ctx, MaxDepth: DefaultMaxDepth}
}

// Run repeatedly deepens the search on root until the time/node budget
// is exhausted or MaxDepth is reached, and returns the best line found.
// Depth 1 always completes, guaranteeing a legal move to play even
// under an impossibly small budget.
func (c *Controller) Run(root *board.Board, timeBudget time.Duration, maxNodes uint64) (int16, []board.Move) {
	ctx := c.Ctx
	ctx.Reset()
	ctx.TimeBudget = timeBudget
	ctx.MaxNodes = maxNodes
	ctx.StartTime = time.Now()

	var pvScore int16
	var pv []board.Move

	ctx.Log.BeginSearch()
	for depth := 1; depth <= c.MaxDepth; depth++ {
		ctx.CurDepth = depth
		ctx.MaxQDepth = depth + MaxQSearchDepth
		ctx.TotalNodes = 0
		ctx.Killers.Expand(depth)
		ctx.Hist.Shrink()
		replayPVIntoTT(ctx, root, pv, depth)

		w := InfiniteWindow()
		score, newPV := ctx.Search(root, 0, depth, &w)

		if ctx.Abort() && depth > 1 {
			break
		}
		pvScore, pv = score, newPV
		ctx.PrevPVScore = pvScore
		ctx.Log.PrintPV(depth, ctx.AchievedDepth, ctx.TotalNodes, time.Since(ctx.StartTime), pvScore, moveStrings(pv))

		if ctx.Abort() {
			break
		}
	}
	ctx.Log.EndSearch()

	if len(pv) == 0 {
		if legal := root.GenerateLegalMoves(false); len(legal) > 0 {
			pv = legal[:1]
		}
	}
	return pvScore, pv
}

// replayPVIntoTT stores the previous iteration's PV as exact entries
// at decreasing depth, so the new iteration's move ordering finds them
// first without having to re-derive them from scratch.
func replayPVIntoTT(ctx *Context, root *board.Board, pv []board.Move, depth int) {
	b := root.Clone()
	w := InfiniteWindow()
	for i, m := range pv {
		d := depth - i
		if d <= 0 {
			break
		}
		ctx.TT.Store(b, d, i, w, ctx.PrevPVScore, m)
		b.DoMove(m)
	}
}

func moveStrings(pv []board.Move) []string {
	out := make([]string, len(pv))
	for i, m := range pv {
		out[i] = m.String()
	}
	return out
}
