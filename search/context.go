package search

import (
	"time"

	"github.com/stockshrimp/shrimpcore/repetition"
)

// MaxQSearchDepth bounds how many plies quiescence search can extend
// past the horizon depth.
const MaxQSearchDepth = 10

// Logger reports search progress, mirroring the teacher's own
// three-method progress interface.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(depth, seldepth int, nodes uint64, elapsed time.Duration, score int16, pv []string)
}

// NulLogger discards all progress reports.
type NulLogger struct{}

func (NulLogger) BeginSearch() {}
func (NulLogger) EndSearch()   {}
func (NulLogger) PrintPV(depth, seldepth int, nodes uint64, elapsed time.Duration, score int16, pv []string) {
}

// Context bundles the transposition table, heuristic tables and
// search-budget bookkeeping that would otherwise be package-level
// globals, per the design note that this state should be owned by the
// controller and threaded through search frames rather than kept as
// legacy single-instance globals.
type Context struct {
	TT      *TranspositionTable
	Hist    *History
	Killers *Killers
	Draws   *repetition.Set
	Log     Logger

	TotalNodes    uint64
	MaxNodes      uint64
	CurDepth      int
	MaxQDepth     int
	AchievedDepth int
	PrevPVScore   int16

	StartTime  time.Time
	TimeBudget time.Duration
	aborted    bool
}

// NewContext builds a Context with a fresh TT/history/killer set.
func NewContext(ttSizeMB int) *Context {
	return &Context{
		TT:      NewTranspositionTable(ttSizeMB),
		Hist:    NewHistory(),
		Killers: NewKillers(),
		Log:     NulLogger{},
	}
}

// Reset zeroes every heuristic table, called once at the start of a
// root search.
func (ctx *Context) Reset() {
	ctx.TT.Clear()
	ctx.Hist.Clear()
	ctx.Killers.Clear()
	ctx.TotalNodes = 0
	ctx.AchievedDepth = 0
	ctx.PrevPVScore = 0
	ctx.aborted = false
}

// Abort reports whether the node or time budget has been exceeded.
// Once it reports true it keeps doing so until Reset. Search ignores
// it while CurDepth == 1 so that depth 1 always completes; QSearch
// checks it at every depth.
func (ctx *Context) Abort() bool {
	if ctx.aborted {
		return true
	}
	if ctx.MaxNodes > 0 && ctx.TotalNodes >= ctx.MaxNodes {
		ctx.aborted = true
		return true
	}
	if ctx.TimeBudget > 0 && time.Since(ctx.StartTime) >= ctx.TimeBudget {
		ctx.aborted = true
		return true
	}
	return false
}
