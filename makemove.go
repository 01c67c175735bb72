package bitchess

import "fmt"

// MakeMove applies m to the position in place, pushing a snapshot onto
// the history stack so UnmakeMove can restore it later. m
// is trusted to be at least pseudo-legal; callers that need a legality
// check should use MakeSafeMove instead.
func (p *Position) MakeMove(m Move) error {
	kind, color := p.PieceAt(m.From)
	if kind == NoPieceKind {
		return fmt.Errorf("chess: no piece on %s", m.From)
	}

	snap := positionSnapshot{
		pieces:         p.pieces,
		occupied:       p.occupied,
		occupiedAll:    p.occupiedAll,
		turn:           p.turn,
		castlingRights: p.castlingRights,
		enPassant:      p.enPassant,
		halfmoveClock:  p.halfmoveClock,
		fullmoves:      p.fullmoves,
	}

	enemy := color.Other()
	isCapture := false

	switch {
	case m.IsCastling:
		p.remove(color, King, m.From)
		p.put(color, King, m.To)
		rookFrom := queensideRookSquare(color)
		rookTo := Square(m.To + 1)
		if m.To == kingsideCastleDest(color) {
			rookFrom = kingsideRookSquare(color)
			rookTo = Square(m.To - 1)
		}
		p.remove(color, Rook, rookFrom)
		p.put(color, Rook, rookTo)

	case kind == Pawn && m.To == p.enPassant && p.enPassant != NoSquare:
		capturedSq := m.To - 8
		if color == Black {
			capturedSq = m.To + 8
		}
		p.remove(enemy, Pawn, capturedSq)
		p.remove(color, Pawn, m.From)
		p.put(color, Pawn, m.To)
		isCapture = true

	default:
		if capturedKind, capturedColor := p.PieceAt(m.To); capturedKind != NoPieceKind {
			p.remove(capturedColor, capturedKind, m.To)
			isCapture = true
		}
		p.remove(color, kind, m.From)
		if m.Promotion != NoPieceKind {
			p.put(color, m.Promotion, m.To)
		} else {
			p.put(color, kind, m.To)
		}
	}

	// Castling-rights maintenance, including the redesign-flagged rule
	// that capturing an untouched enemy rook on its home square revokes
	// that side's corresponding right even though the enemy never moved.
	if kind == King {
		p.castlingRights[color] = 0
	}
	if kind == Rook {
		p.castlingRights[color] &^= bbSquare(m.From)
	}
	if isCapture {
		p.castlingRights[enemy] &^= bbSquare(m.To)
	}

	p.enPassant = NoSquare
	if kind == Pawn {
		fromRank, toRank := m.From.Rank(), m.To.Rank()
		if (toRank-fromRank == 2) || (fromRank-toRank == 2) {
			epRank := (fromRank + toRank) / 2
			p.enPassant = NewSquare(m.From.File(), epRank)
		}
	}

	if isCapture || kind == Pawn {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if color == Black {
		p.fullmoves++
	}

	p.turn = enemy

	if p.trackRepetitions {
		fp := p.shortFEN()
		p.repetitions[fp]++
		snap.repFingerprint = fp
	}

	p.history = append(p.history, snap)
	return nil
}

// UnmakeMove restores the position to its state before the most recent
// MakeMove call. It panics if there is no move to unmake, mirroring the
// stack-discipline contract (callers must not unmake past
// the position's creation).
func (p *Position) UnmakeMove() {
	n := len(p.history)
	if n == 0 {
		panic("bitchess: UnmakeMove called with empty history")
	}
	snap := p.history[n-1]
	p.history = p.history[:n-1]

	if p.trackRepetitions && snap.repFingerprint != "" {
		p.repetitions[snap.repFingerprint]--
		if p.repetitions[snap.repFingerprint] <= 0 {
			delete(p.repetitions, snap.repFingerprint)
		}
	}

	p.pieces = snap.pieces
	p.occupied = snap.occupied
	p.occupiedAll = snap.occupiedAll
	p.turn = snap.turn
	p.castlingRights = snap.castlingRights
	p.enPassant = snap.enPassant
	p.halfmoveClock = snap.halfmoveClock
	p.fullmoves = snap.fullmoves
}

// MakeSafeMove verifies that m is a member of LegalMoves before applying
// it, returning IllegalMove if not.
func (p *Position) MakeSafeMove(m Move) error {
	for _, legal := range p.LegalMoves() {
		if legal.Eq(m) && legal.Promotion == m.Promotion {
			return p.MakeMove(legal)
		}
	}
	return &IllegalMoveError{Move: m, FEN: p.FEN()}
}

func kingsideRookSquare(color Color) Square {
	return rookSquareForSide(color, true)
}

func queensideRookSquare(color Color) Square {
	return rookSquareForSide(color, false)
}
