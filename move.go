package bitchess

import "fmt"

// Move is a single ply: a source and destination square, an optional
// promotion piece, and a castling flag.
type Move struct {
	From       Square
	To         Square
	Promotion  PieceKind // NoPieceKind if this isn't a promotion
	IsCastling bool
}

// Eq reports whether m and other share the same From/To squares.
// Promotion is intentionally excluded: callers that must tell
// promotion choices apart should compare Promotion directly.
func (m Move) Eq(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// UCI returns the move in UCI long-algebraic form, e.g. "e2e4" or "g7g8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceKind {
		s += m.Promotion.String()
	}
	return s
}

// String implements fmt.Stringer as the move's UCI form.
func (m Move) String() string {
	return m.UCI()
}

// ParseMove parses a move in UCI long-algebraic form ("e2e4", "g7g8q").
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("chess: invalid move string %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("chess: invalid move string %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("chess: invalid move string %q: %w", s, err)
	}
	promo := NoPieceKind
	if len(s) == 5 {
		promo = pieceKindFromChar(s[4])
		if promo == NoPieceKind || promo == King {
			return Move{}, fmt.Errorf("chess: invalid promotion piece in move string %q", s)
		}
	}
	isCastling := false
	if from == E1 && (to == G1 || to == C1) {
		isCastling = true
	} else if from == E8 && (to == G8 || to == C8) {
		isCastling = true
	}
	return Move{From: from, To: to, Promotion: promo, IsCastling: isCastling}, nil
}
