package search

import (
	"sort"

	"github.com/stockshrimp/shrimpcore/board"
)

// mvvLvaKey scores a capture by Most Valuable Victim / Least Valuable
// Aggressor: higher-valued victims sort first, cheaper aggressors
// break ties in the attacker's favor.
func mvvLvaKey(m board.Move) int {
	return m.Captured.Value()*1000 - m.Piece.Value()
}

// OrderMoves produces the four-bucket ordering: the TT move, captures
// by MVV-LVA, registered killers, then remaining quiets by history
// score. Ported from the teacher's bucketed move generator, collapsed
// from its six-state machine into the specified four buckets.
func OrderMoves(b *board.Board, moves []board.Move, ttMove board.Move, hasTT bool, ply int, killers *Killers, hist *History) []board.Move {
	used := make(map[board.Move]bool, len(moves))
	ordered := make([]board.Move, 0, len(moves))

	if hasTT {
		for _, m := range moves {
			if m.Equal(ttMove) {
				ordered = append(ordered, m)
				used[m] = true
				break
			}
		}
	}

	captures := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if !used[m] && !m.IsQuiet() {
			captures = append(captures, m)
		}
	}
	sort.SliceStable(captures, func(i, j int) bool {
		return mvvLvaKey(captures[i]) > mvvLvaKey(captures[j])
	})
	for _, m := range captures {
		ordered = append(ordered, m)
		used[m] = true
	}

	for _, k := range killers.Get(ply) {
		if k.IsZero() || used[k] {
			continue
		}
		for _, m := range moves {
			if !used[m] && m.Equal(k) && m.IsQuiet() {
				ordered = append(ordered, m)
				used[m] = true
				break
			}
		}
	}

	quiets := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if !used[m] {
			quiets = append(quiets, m)
		}
	}
	sort.SliceStable(quiets, func(i, j int) bool {
		return hist.GetRep(b, quiets[i]) > hist.GetRep(b, quiets[j])
	})
	ordered = append(ordered, quiets...)

	return ordered
}
