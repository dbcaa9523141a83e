package board

import "math/bits"

// GenerateLegalMoves returns every legal move for the side to move.
// When onlyCaptures is true, only captures and promotions are
// generated, matching the captures-only mode quiescence search asks
// for. Illegal pseudo-moves (those leaving the mover's own king in
// check) are filtered by playing them on a scratch clone.
func (b *Board) GenerateLegalMoves(onlyCaptures bool) []Move {
	pseudo := b.generatePseudoLegal(onlyCaptures)
	us := b.side
	legal := pseudo[:0]
	for _, m := range pseudo {
		child := b.Clone()
		child.DoMove(m)
		if !child.IsKingInCheck(us) {
			legal = append(legal, m)
		}
	}
	return legal
}

func (b *Board) generatePseudoLegal(onlyCaptures bool) []Move {
	moves := make([]Move, 0, 48)
	us := b.side
	them := us.Other()
	occ := b.occupied()
	own := b.occ[us]
	enemy := b.occ[them]

	moves = b.genPawnMoves(moves, us, occ, enemy, onlyCaptures)
	moves = b.genPieceMoves(moves, us, Knight, own, enemy, func(sq Square, _ Bitboard) Bitboard {
		return KnightAttacks(sq)
	}, onlyCaptures)
	moves = b.genPieceMoves(moves, us, Bishop, own, enemy, func(sq Square, occ Bitboard) Bitboard {
		return BishopAttacks(sq, occ)
	}, onlyCaptures)
	moves = b.genPieceMoves(moves, us, Rook, own, enemy, func(sq Square, occ Bitboard) Bitboard {
		return RookAttacks(sq, occ)
	}, onlyCaptures)
	moves = b.genPieceMoves(moves, us, Queen, own, enemy, func(sq Square, occ Bitboard) Bitboard {
		return QueenAttacks(sq, occ)
	}, onlyCaptures)
	moves = b.genPieceMoves(moves, us, King, own, enemy, func(sq Square, _ Bitboard) Bitboard {
		return KingAttacks(sq)
	}, onlyCaptures)
	if !onlyCaptures {
		moves = b.genCastles(moves, us, occ)
	}
	return moves
}

func (b *Board) genPieceMoves(moves []Move, us Color, pt PieceType, own, enemy Bitboard, attacksFn func(Square, Bitboard) Bitboard, onlyCaptures bool) []Move {
	occ := b.occupied()
	bb := b.pieces[us][pt]
	for bb != 0 {
		from := Square(bits.TrailingZeros64(uint64(bb)))
		bb &= bb - 1
		targets := attacksFn(from, occ) &^ own
		captures := targets & enemy
		quiets := targets &^ enemy
		moves = appendTargets(moves, us, pt, from, captures, b, true)
		if !onlyCaptures {
			moves = appendTargets(moves, us, pt, from, quiets, b, false)
		}
	}
	return moves
}

func appendTargets(moves []Move, us Color, pt PieceType, from Square, targets Bitboard, b *Board, capture bool) []Move {
	for targets != 0 {
		to := Square(bits.TrailingZeros64(uint64(targets)))
		targets &= targets - 1
		captured := NoPieceType
		if capture {
			captured = b.squares[to].Type
		}
		moves = append(moves, Move{From: from, To: to, Piece: pt, Captured: captured})
	}
	return moves
}

func (b *Board) genPawnMoves(moves []Move, us Color, occ, enemy Bitboard, onlyCaptures bool) []Move {
	bb := b.pieces[us][Pawn]
	dir := 1
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -1
		startRank, promoRank = 6, 0
	}
	epSq, hasEP := b.EnPassant()

	for bb != 0 {
		from := Square(bits.TrailingZeros64(uint64(bb)))
		bb &= bb - 1

		if !onlyCaptures {
			one := RankFile(from.Rank()+dir, from.File())
			if occ&one.Bitboard() == 0 {
				moves = addPawnMove(moves, us, from, one, NoPieceType, promoRank)
				if from.Rank() == startRank {
					two := RankFile(from.Rank()+2*dir, from.File())
					if occ&two.Bitboard() == 0 {
						moves = append(moves, Move{From: from, To: two, Piece: Pawn})
					}
				}
			}
		}

		atk := PawnAttacks(us, from)
		caps := atk & enemy
		for caps != 0 {
			to := Square(bits.TrailingZeros64(uint64(caps)))
			caps &= caps - 1
			moves = addPawnMove(moves, us, from, to, b.squares[to].Type, promoRank)
		}
		if hasEP && atk&epSq.Bitboard() != 0 {
			moves = append(moves, Move{From: from, To: epSq, Piece: Pawn, Captured: Pawn, IsEnPassant: true})
		}
	}
	return moves
}

func addPawnMove(moves []Move, us Color, from, to Square, captured PieceType, promoRank int) []Move {
	if to.Rank() == promoRank {
		for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			moves = append(moves, Move{From: from, To: to, Piece: Pawn, Captured: captured, Promotion: pt})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Piece: Pawn, Captured: captured})
}

func (b *Board) genCastles(moves []Move, us Color, occ Bitboard) []Move {
	them := us.Other()
	if us == White {
		if b.castle&WhiteOO != 0 && occ&(Square(5).Bitboard()|Square(6).Bitboard()) == 0 {
			if !b.isAttackedBy(SquareE1, them) && !b.isAttackedBy(Square(5), them) && !b.isAttackedBy(Square(6), them) {
				moves = append(moves, Move{From: SquareE1, To: Square(6), Piece: King, IsCastle: true})
			}
		}
		if b.castle&WhiteOOO != 0 && occ&(Square(1).Bitboard()|Square(2).Bitboard()|Square(3).Bitboard()) == 0 {
			if !b.isAttackedBy(SquareE1, them) && !b.isAttackedBy(Square(3), them) && !b.isAttackedBy(Square(2), them) {
				moves = append(moves, Move{From: SquareE1, To: Square(2), Piece: King, IsCastle: true})
			}
		}
	} else {
		if b.castle&BlackOO != 0 && occ&(Square(61).Bitboard()|Square(62).Bitboard()) == 0 {
			if !b.isAttackedBy(SquareE8, them) && !b.isAttackedBy(Square(61), them) && !b.isAttackedBy(Square(62), them) {
				moves = append(moves, Move{From: SquareE8, To: Square(62), Piece: King, IsCastle: true})
			}
		}
		if b.castle&BlackOOO != 0 && occ&(Square(57).Bitboard()|Square(58).Bitboard()|Square(59).Bitboard()) == 0 {
			if !b.isAttackedBy(SquareE8, them) && !b.isAttackedBy(Square(59), them) && !b.isAttackedBy(Square(58), them) {
				moves = append(moves, Move{From: SquareE8, To: Square(58), Piece: King, IsCastle: true})
			}
		}
	}
	return moves
}
