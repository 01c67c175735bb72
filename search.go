package bitchess

import "math"

// mateScore is the magnitude used to represent "checkmate against the
// side to move"; the actual returned value is adjusted by depth so that
// faster mates score higher than slower ones.
const mateScore = 1_000_000

// DrawScore is returned for stalemated nodes; no other draw rule is
// checked during search.
// It is a package variable rather than a constant so callers tuning for
// contempt can override it before calling Negamax/AlphaBeta.
var DrawScore = 0

// Evaluator scores a leaf position from the perspective of the side to
// move: positive means the side to move is better off. Negamax,
// AlphaBeta, BestMove and ParallelBestMove all take one as a
// parameter rather than hardcoding a single leaf evaluation, mirroring
// the board_eval argument of the engine this search is ported from.
type Evaluator func(*Position) int

// DefaultEvaluator scores leaves with material plus piece-square table
// placement. Pass (*Position).RelativeValue instead for a raw-material
// evaluator.
var DefaultEvaluator Evaluator = (*Position).RelativeWeightedValue

// Negamax evaluates pos to depth plies using the plain negamax
// recursion, with no pruning. At depth 0 or below it returns eval(pos).
func Negamax(pos *Position, depth int, eval Evaluator) int {
	if depth <= 0 {
		return eval(pos)
	}
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsInCheck() {
			return -mateScore + (1000 - depth)
		}
		return DrawScore
	}
	best := math.MinInt32
	for _, m := range moves {
		if err := pos.MakeMove(m); err != nil {
			continue
		}
		score := -Negamax(pos, depth-1, eval)
		pos.UnmakeMove()
		if score > best {
			best = score
		}
	}
	return best
}

// AlphaBeta evaluates pos to depth plies using negamax-framed
// alpha-beta pruning. At depth 0 or below it returns eval(pos).
func AlphaBeta(pos *Position, depth, alpha, beta int, eval Evaluator) int {
	if depth <= 0 {
		return eval(pos)
	}
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsInCheck() {
			return -mateScore + (1000 - depth)
		}
		return DrawScore
	}
	for _, m := range moves {
		if err := pos.MakeMove(m); err != nil {
			continue
		}
		score := -AlphaBeta(pos, depth-1, -beta, -alpha, eval)
		pos.UnmakeMove()
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// BestMove runs alpha-beta search over every root legal move using
// DefaultEvaluator at the leaves and returns the move with the
// highest score along with that score. It panics if pos has no legal
// moves; callers should check IsCheckmate or IsStalemate first.
func BestMove(pos *Position, depth int) (Move, int) {
	return BestMoveWithEvaluator(pos, depth, DefaultEvaluator)
}

// BestMoveWithEvaluator is BestMove with an explicit leaf evaluator.
func BestMoveWithEvaluator(pos *Position, depth int, eval Evaluator) (Move, int) {
	if depth < 1 {
		depth = 1
	}
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		panic("bitchess: BestMove called with no legal moves")
	}

	best := moves[0]
	bestScore := math.MinInt32
	alpha, beta := -mateScore*2, mateScore*2

	for _, m := range moves {
		if err := pos.MakeMove(m); err != nil {
			continue
		}
		score := -AlphaBeta(pos, depth-1, -beta, -alpha, eval)
		pos.UnmakeMove()
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, bestScore
}
