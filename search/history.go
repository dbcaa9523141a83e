package search

import "github.com/stockshrimp/shrimpcore/board"

const pawnCorrSize = 1 << 20

// pieceColorIndex maps a moving piece's (type, color) onto the dense
// 0..11 index the history tables are keyed by.
func pieceColorIndex(pt board.PieceType, c board.Color) int {
	return (int(pt)-1)*2 + int(c)
}

// History holds the quiet-move history/butterfly tables and the
// pawn-correction history that nudge static evaluation towards what
// deep search has observed for a given pawn structure. The storage
// shape (dense [64]x[12] arrays) follows the data model directly;
// zurichess's own historyTable is a hashed, evicting structure sized
// for a much larger move space and isn't reused verbatim here.
type History struct {
	QuietScores     [64][12]int32
	ButterflyScores [64][12]int32
	pawnCorr        [board.ColorCount][pawnCorrSize]int32
}

// NewHistory returns a zeroed History.
func NewHistory() *History {
	return &History{}
}

func shift(depth int) int32 {
	v := int32(depth*depth - 5)
	if v > 84 {
		return 84
	}
	return v
}

// IncreaseQRep rewards a quiet move that caused a beta cutoff.
func (h *History) IncreaseQRep(b *board.Board, m board.Move, depth int) {
	idx := pieceColorIndex(m.Piece, b.SideToMove())
	h.QuietScores[m.To][idx] += shift(depth)
	h.ButterflyScores[m.To][idx]++
}

// DecreaseQRep penalizes a quiet move that failed low after a full
// search at this depth.
func (h *History) DecreaseQRep(b *board.Board, m board.Move, depth int) {
	idx := pieceColorIndex(m.Piece, b.SideToMove())
	h.QuietScores[m.To][idx] -= shift(depth)
	h.ButterflyScores[m.To][idx]++
}

// GetRep returns the move-ordering score for a quiet move:
// 12 * quiet / butterfly, or 0 while the move has no butterfly count.
// The formula is kept as designed and must not be "corrected".
func (h *History) GetRep(b *board.Board, m board.Move) int32 {
	idx := pieceColorIndex(m.Piece, b.SideToMove())
	butterfly := h.ButterflyScores[m.To][idx]
	if butterfly == 0 {
		return 0
	}
	quiet := h.QuietScores[m.To][idx]
	return 12 * quiet / butterfly
}

// Shrink is called between iterative-deepening iterations: quiet
// scores halve and butterfly counters saturate to at most 1, so
// ordering bias persists but visit counts don't dominate forever.
func (h *History) Shrink() {
	for sq := range h.QuietScores {
		for i := range h.QuietScores[sq] {
			h.QuietScores[sq][i] /= 2
			if h.ButterflyScores[sq][i] > 1 {
				h.ButterflyScores[sq][i] = 1
			}
		}
	}
	h.pawnCorr = [board.ColorCount][pawnCorrSize]int32{}
}

// Clear zeroes every table, called at the start of each root search.
func (h *History) Clear() {
	h.QuietScores = [64][12]int32{}
	h.ButterflyScores = [64][12]int32{}
	h.pawnCorr = [board.ColorCount][pawnCorrSize]int32{}
}

func clampCorr(v int32) int32 {
	if v > 2048 {
		return 2048
	}
	if v < -2048 {
		return -2048
	}
	return v
}

func pawnCorrIndex(b *board.Board, c board.Color) uint64 {
	return b.PawnHash(c) & (pawnCorrSize - 1)
}

// UpdatePawnCorrHist biases future static evaluation towards what a
// deep search found for this pawn structure, when the two disagree.
func (h *History) UpdatePawnCorrHist(b *board.Board, score, staticEval int16, depth int) {
	if depth <= 2 {
		return
	}
	diff := int32(score - staticEval)
	if diff < 0 {
		diff = -diff
	}
	sh := diff * int32(depth-2) / 256
	if sh > 12 {
		sh = 12
	}
	wi := pawnCorrIndex(b, board.White)
	bi := pawnCorrIndex(b, board.Black)
	if score > staticEval {
		h.pawnCorr[board.White][wi] = clampCorr(h.pawnCorr[board.White][wi] + sh)
		h.pawnCorr[board.Black][bi] = clampCorr(h.pawnCorr[board.Black][bi] - sh)
	} else {
		h.pawnCorr[board.White][wi] = clampCorr(h.pawnCorr[board.White][wi] - sh)
		h.pawnCorr[board.Black][bi] = clampCorr(h.pawnCorr[board.Black][bi] + sh)
	}
}

// GetPawnCorrection returns the evaluator nudge for the board's
// current pawn structure.
func (h *History) GetPawnCorrection(b *board.Board) int32 {
	wi := pawnCorrIndex(b, board.White)
	bi := pawnCorrIndex(b, board.Black)
	return (h.pawnCorr[board.White][wi] + h.pawnCorr[board.Black][bi]) / 128
}

// Killers holds up to two non-capture killer moves per search ply.
type Killers struct {
	slots [][2]board.Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers { return &Killers{} }

// Expand grows the ply-indexed killer table to cover the given depth.
func (k *Killers) Expand(depth int) {
	for len(k.slots) <= depth+1 {
		k.slots = append(k.slots, [2]board.Move{})
	}
}

// Get returns the killer pair for ply.
func (k *Killers) Get(ply int) [2]board.Move {
	if ply < 0 || ply >= len(k.slots) {
		return [2]board.Move{}
	}
	return k.slots[ply]
}

// IsKiller reports whether m is registered as a killer at ply.
func (k *Killers) IsKiller(ply int, m board.Move) bool {
	ks := k.Get(ply)
	return ks[0].Equal(m) || ks[1].Equal(m)
}

// Add registers m as a killer at ply, moving it to the front and
// dropping the oldest slot.
func (k *Killers) Add(ply int, m board.Move) {
	k.Expand(ply)
	if k.slots[ply][0].Equal(m) {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

// Clear empties the killer table.
func (k *Killers) Clear() {
	k.slots = k.slots[:0]
}
