// Package search implements the principal-variation alpha-beta search:
// the transposition table, move ordering, history/killer heuristics,
// quiescence search, the pruning catalog and the iterative deepening
// controller built on top of them.
package search

import "github.com/stockshrimp/shrimpcore/board"

// Infinity bounds the representable score range; mate scores are
// encoded above MateBase but below Infinity.
const Infinity int16 = 32000

// Window is a mutable, color-polymorphic alpha/beta pair. White
// maximizes alpha directly; Black minimizes beta directly. Writing
// search code once against Window instead of branching on color
// everywhere, or negating scores negamax-style, is the whole point of
// this type.
type Window struct {
	Alpha, Beta int16
}

// InfiniteWindow returns the widest possible window, used at the root
// of each iterative-deepening iteration.
func InfiniteWindow() Window {
	return Window{Alpha: -Infinity, Beta: Infinity}
}

// TryCutoff updates the window with score and reports whether a
// cutoff (alpha >= beta) has occurred.
func (w *Window) TryCutoff(score int16, c board.Color) bool {
	if c == board.White {
		if score > w.Alpha {
			w.Alpha = score
		}
		return w.Alpha >= w.Beta
	}
	if score < w.Beta {
		w.Beta = score
	}
	return w.Beta <= w.Alpha
}

// FailsLow reports whether score is no improvement for the side to
// move's side of the window.
func (w *Window) FailsLow(score int16, c board.Color) bool {
	if c == board.White {
		return score <= w.Alpha
	}
	return score >= w.Beta
}

// FailsHigh reports whether score already exceeds what the opponent
// would allow.
func (w *Window) FailsHigh(score int16, c board.Color) bool {
	if c == board.White {
		return score >= w.Beta
	}
	return score <= w.Alpha
}

// LowerBound returns the null window (alpha, alpha+1).
func (w *Window) LowerBound() Window {
	return Window{Alpha: w.Alpha, Beta: w.Alpha + 1}
}

// UpperBound returns the null window (beta-1, beta).
func (w *Window) UpperBound() Window {
	return Window{Alpha: w.Beta - 1, Beta: w.Beta}
}

// GetLowerBound returns the color-appropriate null window for probing
// a "does this fail low" scout search.
func (w *Window) GetLowerBound(c board.Color) Window {
	if c == board.White {
		return w.LowerBound()
	}
	return w.UpperBound()
}

// GetUpperBound returns the color-appropriate null window for probing
// a "does this fail high" scout search.
func (w *Window) GetUpperBound(c board.Color) Window {
	if c == board.White {
		return w.UpperBound()
	}
	return w.LowerBound()
}

// GetBoundScore returns the score this window currently proves for c:
// alpha for White, beta for Black.
func (w *Window) GetBoundScore(c board.Color) int16 {
	if c == board.White {
		return w.Alpha
	}
	return w.Beta
}

// CanFailHigh reports whether there is numerical headroom left to
// raise a bound without overflowing the mate-score encoding range.
func (w *Window) CanFailHigh(c board.Color) bool {
	const margin = 256
	if c == board.White {
		return w.Beta < Infinity-margin
	}
	return w.Alpha > -Infinity+margin
}
