package bitchess

// promotionKinds are the four pieces a pawn may promote to, in the
// order moves are emitted for a promoting pawn push or capture.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// pseudoLegalMoves appends every pseudo-legal move for the side to
// move to dst and returns the extended slice. Pseudo-legal moves obey
// piece geometry and occupancy but may leave the mover's own king in
// check; legality is filtered by LegalMoves (legal.go).
func pseudoLegalMoves(pos *Position, dst []Move) []Move {
	side := pos.turn
	ownPieces := pos.occupied[side]
	occ := pos.occupiedAll

	dst = genPawnMoves(pos, side, dst)

	for _, kind := range []PieceKind{Knight, Bishop, Rook, Queen, King} {
		for bb := pos.pieces[side][kind]; bb != 0; {
			var from Square
			from, bb = bb.popLSB()
			targets := pieceAttacks(kind, side, from, occ) &^ ownPieces
			for t := targets; t != 0; {
				var to Square
				to, t = t.popLSB()
				dst = append(dst, Move{From: from, To: to, Promotion: NoPieceKind})
			}
		}
	}

	dst = genCastlingMoves(pos, side, dst)
	return dst
}

func genPawnMoves(pos *Position, side Color, dst []Move) []Move {
	occ := pos.occupiedAll
	notOcc := ^occ
	enemies := pos.occupied[side.Other()]
	var epBit bitboard
	if pos.enPassant != NoSquare {
		epBit = bbSquare(pos.enPassant)
	}
	promoRank := 7
	if side == Black {
		promoRank = 0
	}

	for bb := pos.pieces[side][Pawn]; bb != 0; {
		var from Square
		from, bb = bb.popLSB()

		single := pawnSinglePush[side][from] & notOcc
		dst = emitPawnTargets(dst, from, single, promoRank)
		if single != 0 {
			double := pawnDoublePush[side][from] & notOcc
			dst = emitPawnTargets(dst, from, double, promoRank)
		}

		captures := pawnAttacks[side][from] & (enemies | epBit)
		dst = emitPawnTargets(dst, from, captures, promoRank)
	}
	return dst
}

func emitPawnTargets(dst []Move, from Square, targets bitboard, promoRank int) []Move {
	for targets != 0 {
		var to Square
		to, targets = targets.popLSB()
		if to.Rank() == promoRank {
			for _, promo := range promotionKinds {
				dst = append(dst, Move{From: from, To: to, Promotion: promo})
			}
		} else {
			dst = append(dst, Move{From: from, To: to, Promotion: NoPieceKind})
		}
	}
	return dst
}

func genCastlingMoves(pos *Position, side Color, dst []Move) []Move {
	king := homeKingSquare[side]
	if pos.pieces[side][King].lsb() != king {
		return dst
	}
	rooks := pos.castlingRights[side]
	if rooks == 0 {
		return dst
	}
	occ := pos.occupiedAll

	if rooks.has(rookSquareForSide(side, true)) { // kingside
		rookSq := rookSquareForSide(side, true)
		if between(king, rookSq)&occ == 0 {
			dst = append(dst, Move{From: king, To: kingsideCastleDest(side), IsCastling: true, Promotion: NoPieceKind})
		}
	}
	if rooks.has(rookSquareForSide(side, false)) { // queenside
		rookSq := rookSquareForSide(side, false)
		if between(king, rookSq)&occ == 0 {
			dst = append(dst, Move{From: king, To: queensideCastleDest(side), IsCastling: true, Promotion: NoPieceKind})
		}
	}
	return dst
}

func rookSquareForSide(color Color, kingside bool) Square {
	if color == White {
		if kingside {
			return H1
		}
		return A1
	}
	if kingside {
		return H8
	}
	return A8
}

func kingsideCastleDest(color Color) Square {
	if color == White {
		return G1
	}
	return G8
}

func queensideCastleDest(color Color) Square {
	if color == White {
		return C1
	}
	return C8
}
