package bitchess

// Piece-square tables, indexed from Black's perspective (rank 8 is
// index 0..7); White's lookups go through Square.Mirror. Values in
// centipawns, adapted from the classical tables used throughout the
// open-source engine ecosystem.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidgamePST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgamePST = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// pstFor returns the table for kind (excluding King, which is handled
// separately because it depends on the late-game flag).
func pstFor(kind PieceKind) [64]int {
	switch kind {
	case Pawn:
		return pawnPST
	case Knight:
		return knightPST
	case Bishop:
		return bishopPST
	case Rook:
		return rookPST
	case Queen:
		return queenPST
	}
	return [64]int{}
}

// Value returns the raw material balance in centipawns, positive when
// White has more material.
func (p *Position) Value() int {
	score := 0
	for kind := Pawn; kind < King; kind++ {
		score += p.pieces[White][kind].popcount() * baseValue[kind]
		score -= p.pieces[Black][kind].popcount() * baseValue[kind]
	}
	return score
}

// isLateGame reports whether the king piece-square table should switch
// to its endgame variant: neither side holds a queen, or the total
// non-pawn, non-king material on the board is four pieces or fewer.
func (p *Position) isLateGame() bool {
	if p.pieces[White][Queen]|p.pieces[Black][Queen] != 0 {
		nonPawnNonKing := p.pieces[White][Knight].popcount() + p.pieces[White][Bishop].popcount() +
			p.pieces[White][Rook].popcount() + p.pieces[White][Queen].popcount() +
			p.pieces[Black][Knight].popcount() + p.pieces[Black][Bishop].popcount() +
			p.pieces[Black][Rook].popcount() + p.pieces[Black][Queen].popcount()
		return nonPawnNonKing <= 4
	}
	return true
}

// WeightedValue returns the material balance plus a piece-square table
// bonus per piece, with the king table switched to its endgame variant
// in late-game positions.
func (p *Position) WeightedValue() int {
	score := 0
	lateGame := p.isLateGame()
	kingTable := kingMidgamePST
	if lateGame {
		kingTable = kingEndgamePST
	}

	for kind := Pawn; kind <= King; kind++ {
		for bb := p.pieces[White][kind]; bb != 0; {
			var sq Square
			sq, bb = bb.popLSB()
			score += baseValue[kind]
			if kind == King {
				score += kingTable[sq.Mirror()]
			} else {
				score += pstFor(kind)[sq.Mirror()]
			}
		}
		for bb := p.pieces[Black][kind]; bb != 0; {
			var sq Square
			sq, bb = bb.popLSB()
			score -= baseValue[kind]
			if kind == King {
				score -= kingTable[sq]
			} else {
				score -= pstFor(kind)[sq]
			}
		}
	}
	return score
}

// RelativeValue returns Value from the perspective of the side to
// move: positive means the side to move holds more material.
func (p *Position) RelativeValue() int {
	v := p.Value()
	if p.turn == Black {
		return -v
	}
	return v
}

// RelativeWeightedValue returns WeightedValue from the perspective of
// the side to move. It is the default leaf evaluator passed to the
// search package's Evaluator-parameterized functions.
func (p *Position) RelativeWeightedValue() int {
	v := p.WeightedValue()
	if p.turn == Black {
		return -v
	}
	return v
}
