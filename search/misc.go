package search

import "github.com/stockshrimp/shrimpcore/board"

// MateScore and MateBase define the mate-score encoding: any score
// with absolute value above MateBase encodes "mated in N plies".
const (
	MateScore int16 = 9999
	MateBase  int16 = 9000
)

// IsMateScore reports whether s encodes a mate distance rather than a
// material/positional evaluation.
func IsMateScore(s int16) bool {
	if s < 0 {
		s = -s
	}
	return s > MateBase
}

func signOf(c board.Color) int16 {
	if c == board.White {
		return 1
	}
	return -1
}

// GetMateScore returns the score for "the side to move is mated in
// ply plies", signed so it always favors whichever color delivers the
// mate.
func GetMateScore(c board.Color, ply int) int16 {
	return -signOf(c) * (MateScore - int16(ply))
}

// pieceCentipawnValue gives the quiescence delta-pruning margin a
// material scale comparable to the static evaluator's output, as
// opposed to OrderMoves' compact 1..9 MVV-LVA table.
func pieceCentipawnValue(pt board.PieceType) int16 {
	switch pt {
	case board.Pawn:
		return 100
	case board.Knight, board.Bishop:
		return 320
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	}
	return 0
}

func nonPawnPieceCount(b *board.Board, c board.Color) int {
	n := 0
	for _, pt := range [4]board.PieceType{board.Knight, board.Bishop, board.Rook, board.Queen} {
		n += popcountMove(b.Pieces(c, pt))
	}
	return n
}

func popcountMove(bb board.Bitboard) int {
	count := 0
	for bb != 0 {
		bb &= bb - 1
		count++
	}
	return count
}
