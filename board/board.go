package board

import "math/bits"

// noEnPassant is a square value outside 0..63 marking "no en-passant
// target this move".
const noEnPassant Square = 64

// Board is a complete, value-typed chess position. Because it holds no
// pointers or slices, Clone is a cheap struct copy; search clones a
// board at every node instead of making and unmaking moves.
type Board struct {
	squares  [64]Piece
	pieces   [ColorCount][PieceTypeCount]Bitboard
	occ      [ColorCount]Bitboard
	side     Color
	castle   Castle
	epSquare Square
	halfmove int
	fullmove int
	hash     uint64
	pawnHash [ColorCount]uint64
}

// NewEmpty returns an empty board with White to move.
func NewEmpty() *Board {
	b := &Board{epSquare: noEnPassant, fullmove: 1}
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// SideToMove returns the color on move.
func (b *Board) SideToMove() Color { return b.side }

// CastleRights returns the current castling rights.
func (b *Board) CastleRights() Castle { return b.castle }

// EnPassant returns the current en-passant target square and whether
// one is set.
func (b *Board) EnPassant() (Square, bool) {
	return b.epSquare, b.epSquare != noEnPassant
}

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// Pieces returns the bitboard of pieces of the given color and type.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard { return b.pieces[c][pt] }

// WOccupied returns the set of squares occupied by White.
func (b *Board) WOccupied() Bitboard { return b.occ[White] }

// BOccupied returns the set of squares occupied by Black.
func (b *Board) BOccupied() Bitboard { return b.occ[Black] }

func (b *Board) occupied() Bitboard { return b.occ[White] | b.occ[Black] }

// Zobrist returns the incremental position hash.
func (b *Board) Zobrist() uint64 { return b.hash }

// PawnHash returns the incremental pawn-only hash for one color.
func (b *Board) PawnHash(c Color) uint64 { return b.pawnHash[c] }

// HalfmoveClock returns the halfmove clock (for fifty-move tracking).
func (b *Board) HalfmoveClock() int { return b.halfmove }

func (b *Board) put(sq Square, p Piece) {
	b.squares[sq] = p
	bb := sq.Bitboard()
	b.pieces[p.Color][p.Type] |= bb
	b.occ[p.Color] |= bb
	b.hash ^= zobristPiece[p.Color][p.Type][sq]
	if p.Type == Pawn {
		b.pawnHash[p.Color] ^= pawnZobristPiece[p.Color][sq]
	}
}

func (b *Board) remove(sq Square) Piece {
	p := b.squares[sq]
	if p.Type == NoPieceType {
		return p
	}
	bb := sq.Bitboard()
	b.squares[sq] = NoPiece
	b.pieces[p.Color][p.Type] &^= bb
	b.occ[p.Color] &^= bb
	b.hash ^= zobristPiece[p.Color][p.Type][sq]
	if p.Type == Pawn {
		b.pawnHash[p.Color] ^= pawnZobristPiece[p.Color][sq]
	}
	return p
}

func (b *Board) setCastle(ca Castle) {
	b.hash ^= zobristCastle[b.castle]
	b.castle = ca
	b.hash ^= zobristCastle[b.castle]
}

func (b *Board) setEnPassant(sq Square) {
	if b.epSquare != noEnPassant {
		b.hash ^= zobristEnPassant[b.epSquare]
	}
	b.epSquare = sq
	if b.epSquare != noEnPassant {
		b.hash ^= zobristEnPassant[b.epSquare]
	}
}

// IsKingInCheck reports whether the given color's king is attacked.
func (b *Board) IsKingInCheck(c Color) bool {
	kb := b.pieces[c][King]
	if kb == 0 {
		return false
	}
	sq := Square(bits.TrailingZeros64(uint64(kb)))
	return b.isAttackedBy(sq, c.Other())
}

// isAttackedBy reports whether sq is attacked by any piece of color by.
func (b *Board) isAttackedBy(sq Square, by Color) bool {
	occ := b.occupied()
	if PawnAttacks(by.Other(), sq)&b.pieces[by][Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&b.pieces[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&b.pieces[by][King] != 0 {
		return true
	}
	diag := BishopAttacks(sq, occ)
	if diag&(b.pieces[by][Bishop]|b.pieces[by][Queen]) != 0 {
		return true
	}
	ortho := RookAttacks(sq, occ)
	if ortho&(b.pieces[by][Rook]|b.pieces[by][Queen]) != 0 {
		return true
	}
	return false
}

// GetNullChild returns a clone with the side to move flipped and the
// en-passant square cleared, used by null-move pruning. It does not
// touch the halfmove clock since no piece moved.
func (b *Board) GetNullChild() *Board {
	cp := b.Clone()
	cp.setEnPassant(noEnPassant)
	cp.side = cp.side.Other()
	cp.hash ^= zobristColor
	return cp
}

// DoMove applies m to the board in place. The caller is expected to
// have cloned the board first (Clone then DoMove), mirroring the
// external collaborator contract the search core is written against.
func (b *Board) DoMove(m Move) {
	us := b.side

	b.remove(m.From)

	if m.Captured != NoPieceType {
		if m.IsEnPassant {
			capSq := RankFile(m.From.Rank(), m.To.File())
			b.remove(capSq)
		} else {
			b.remove(m.To)
		}
	}

	placed := m.Piece
	if m.Promotion != NoPieceType {
		placed = m.Promotion
	}
	b.put(m.To, Piece{Color: us, Type: placed})

	if m.IsCastle {
		var rookFrom, rookTo Square
		switch m.To {
		case SquareG1:
			rookFrom, rookTo = SquareH1, SquareF1
		case SquareC1:
			rookFrom, rookTo = SquareA1, SquareD1
		case SquareG8:
			rookFrom, rookTo = SquareH8, SquareF8
		case SquareC8:
			rookFrom, rookTo = SquareA8, SquareD8
		}
		rook := b.remove(rookFrom)
		b.put(rookTo, rook)
	}

	newCastle := b.castle
	switch m.From {
	case SquareE1:
		newCastle &^= WhiteOO | WhiteOOO
	case SquareE8:
		newCastle &^= BlackOO | BlackOOO
	case SquareA1:
		newCastle &^= WhiteOOO
	case SquareH1:
		newCastle &^= WhiteOO
	case SquareA8:
		newCastle &^= BlackOOO
	case SquareH8:
		newCastle &^= BlackOO
	}
	switch m.To {
	case SquareA1:
		newCastle &^= WhiteOOO
	case SquareH1:
		newCastle &^= WhiteOO
	case SquareA8:
		newCastle &^= BlackOOO
	case SquareH8:
		newCastle &^= BlackOO
	}
	if newCastle != b.castle {
		b.setCastle(newCastle)
	}

	if m.Piece == Pawn && absInt(m.To.Rank()-m.From.Rank()) == 2 {
		b.setEnPassant(RankFile((m.From.Rank()+m.To.Rank())/2, m.From.File()))
	} else {
		b.setEnPassant(noEnPassant)
	}

	if m.Piece == Pawn || m.Captured != NoPieceType {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}

	b.side = us.Other()
	b.hash ^= zobristColor
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
