package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceSymbol = map[byte]Piece{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop},
	'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop},
	'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

// ParseFEN parses Forsyth-Edwards Notation into a Board. Unlike the
// reference FEN reader this is ported from, it also parses the
// halfmove clock and fullmove number fields instead of leaving them at
// zero.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: malformed FEN %q", fen)
	}

	b := NewEmpty()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: FEN must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, ok := fenPieceSymbol[c]
			if !ok {
				return nil, fmt.Errorf("board: unknown piece symbol %q", string(c))
			}
			if file > 7 {
				return nil, fmt.Errorf("board: rank %d overflows", rank)
			}
			b.put(RankFile(rank, file), p)
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
		b.hash ^= zobristColor
	default:
		return nil, fmt.Errorf("board: bad side to move %q", fields[1])
	}

	var castle Castle
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				castle |= WhiteOO
			case 'Q':
				castle |= WhiteOOO
			case 'k':
				castle |= BlackOO
			case 'q':
				castle |= BlackOOO
			default:
				return nil, fmt.Errorf("board: bad castle rights %q", fields[2])
			}
		}
	}
	b.setCastle(castle)

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: bad en-passant square: %w", err)
		}
		b.setEnPassant(sq)
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmove = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmove = n
		}
	}

	return b, nil
}

// FEN serializes the board back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[RankFile(rank, file)]
			if p.Type == NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.castle.String())
	sb.WriteByte(' ')
	if sq, ok := b.EnPassant(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}

// ParseUCIMove resolves a UCI move string (e.g. "e2e4", "h7h8q")
// against the board's current legal moves.
func (b *Board) ParseUCIMove(s string) (Move, error) {
	if len(s) < 4 {
		return Move{}, fmt.Errorf("board: malformed UCI move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return Move{}, err
	}
	var promo PieceType
	if len(s) >= 5 {
		switch s[4] {
		case 'q', 'Q':
			promo = Queen
		case 'r', 'R':
			promo = Rook
		case 'b', 'B':
			promo = Bishop
		case 'n', 'N':
			promo = Knight
		}
	}
	for _, m := range b.GenerateLegalMoves(false) {
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("board: %q is not a legal move", s)
}
