package bitchess

import "testing"

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	// White to move: black king boxed in on the back rank, with Ra1-a8
	// delivering immediate mate.
	pos := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	best, score := BestMove(pos, 2)
	if err := pos.MakeMove(best); err != nil {
		t.Fatalf("MakeMove(%s): %v", best, err)
	}
	if !pos.IsCheckmate() {
		t.Fatalf("BestMove chose %s (score %d), which is not checkmate; FEN now %s", best, score, pos.FEN())
	}
}

func TestNegamaxAndAlphaBetaAgreeOnLeafDepth(t *testing.T) {
	pos := NewPosition()
	if got, want := Negamax(pos, 0, DefaultEvaluator), pos.RelativeWeightedValue(); got != want {
		t.Errorf("Negamax(pos, 0) = %d, want %d", got, want)
	}
	if got, want := AlphaBeta(pos, 0, -mateScore*2, mateScore*2, DefaultEvaluator), pos.RelativeWeightedValue(); got != want {
		t.Errorf("AlphaBeta(pos, 0, ...) = %d, want %d", got, want)
	}
}

func TestAlphaBetaMatchesNegamaxAtShallowDepth(t *testing.T) {
	pos := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	if got, want := AlphaBeta(pos, 2, -mateScore*2, mateScore*2, DefaultEvaluator), Negamax(pos, 2, DefaultEvaluator); got != want {
		t.Errorf("AlphaBeta(depth=2) = %d, Negamax(depth=2) = %d; pruning changed the result", got, want)
	}
}

func TestSearchDoesNotMutatePosition(t *testing.T) {
	pos := NewPosition()
	before := pos.FEN()
	BestMove(pos, 3)
	if pos.FEN() != before {
		t.Fatalf("BestMove mutated the caller's position: now %q, was %q", pos.FEN(), before)
	}
}

func TestBestMovePanicsWithoutLegalMoves(t *testing.T) {
	pos := mustFEN(t, "5k2/5P2/5K2/8/8/8/8/8 b - - 0 1")
	defer func() {
		if recover() == nil {
			t.Fatal("expected BestMove to panic with no legal moves")
		}
	}()
	BestMove(pos, 2)
}
