package bitchess

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN builds a Position from a Forsyth-Edwards Notation string
// string. Trailing fields may be omitted; missing fields default
// to white to move, no castling rights, no en-passant target, a
// halfmove clock of 0, and a fullmove counter of 1.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 1 {
		return nil, fmt.Errorf("chess: invalid FEN %q: missing piece placement", fen)
	}

	p := &Position{enPassant: NoSquare, fullmoves: 1}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, fmt.Errorf("chess: invalid FEN %q: %w", fen, err)
	}

	p.turn = White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.turn = White
		case "b":
			p.turn = Black
		default:
			return nil, fmt.Errorf("chess: invalid FEN %q: bad side to move %q", fen, fields[1])
		}
	}

	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights[White] |= bbSquare(H1)
			case 'Q':
				p.castlingRights[White] |= bbSquare(A1)
			case 'k':
				p.castlingRights[Black] |= bbSquare(H8)
			case 'q':
				p.castlingRights[Black] |= bbSquare(A8)
			default:
				return nil, fmt.Errorf("chess: invalid FEN %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("chess: invalid FEN %q: bad en-passant field: %w", fen, err)
		}
		p.enPassant = sq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("chess: invalid FEN %q: bad halfmove clock %q", fen, fields[4])
		}
		p.halfmoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("chess: invalid FEN %q: bad fullmove counter %q", fen, fields[5])
		}
		p.fullmoves = n
	}

	if p.pieces[White][King].popcount() != 1 || p.pieces[Black][King].popcount() != 1 {
		return nil, fmt.Errorf("chess: invalid FEN %q: must have exactly one king per side", fen)
	}

	return p, nil
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement must have 8 ranks, got %d", len(ranks))
	}
	pieceCount := 0
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file > 7 {
				return fmt.Errorf("rank %d overflows the board", rank+1)
			}
			kind := pieceKindFromChar(byte(c))
			if kind == NoPieceKind {
				return fmt.Errorf("unrecognized piece character %q", c)
			}
			color := White
			if c >= 'a' && c <= 'z' {
				color = Black
			}
			p.put(color, kind, NewSquare(file, rank))
			pieceCount++
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d does not account for all 8 files", rank+1)
		}
	}
	if pieceCount < 2 {
		return fmt.Errorf("fewer than two pieces on the board")
	}
	return nil
}

func (p *Position) placementFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			kind, color := p.PieceAt(sq)
			if kind == NoPieceKind {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(fenChar(kind, color))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func (p *Position) castlingFEN() string {
	var sb strings.Builder
	if p.castlingRights[White].has(H1) {
		sb.WriteByte('K')
	}
	if p.castlingRights[White].has(A1) {
		sb.WriteByte('Q')
	}
	if p.castlingRights[Black].has(H8) {
		sb.WriteByte('k')
	}
	if p.castlingRights[Black].has(A8) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
