package board

import "math/rand"

// Zobrist key tables, built with the same per-feature random-key
// technique the teacher uses: fixed-seed RNGs (one for the main tables,
// a second for the pawn-only tables) so hashes are reproducible across
// runs.
var (
	zobristPiece     [ColorCount][PieceTypeCount][64]uint64
	zobristCastle    [AnyCastle + 1]uint64
	zobristEnPassant [64]uint64
	zobristColor     uint64

	pawnZobristPiece [ColorCount][64]uint64
)

func init() {
	rnd := rand.New(rand.NewSource(1))
	for c := Color(0); c < ColorCount; c++ {
		for pt := PieceType(1); pt < PieceTypeCount; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rnd.Uint64()
	}
	zobristColor = rnd.Uint64()

	pawnRnd := rand.New(rand.NewSource(2))
	for c := Color(0); c < ColorCount; c++ {
		for sq := 0; sq < 64; sq++ {
			pawnZobristPiece[c][sq] = pawnRnd.Uint64()
		}
	}
}
