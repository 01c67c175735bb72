package bitchess

import (
	"context"
	"testing"
)

func TestParallelBestMoveFindsMateInOne(t *testing.T) {
	pos := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	best, _ := ParallelBestMove(context.Background(), pos, 2, 0)
	if err := pos.MakeMove(best); err != nil {
		t.Fatalf("MakeMove(%s): %v", best, err)
	}
	if !pos.IsCheckmate() {
		t.Fatalf("ParallelBestMove chose %s, which is not checkmate; FEN now %s", best, pos.FEN())
	}
}

func TestParallelBestMoveDoesNotMutateRoot(t *testing.T) {
	pos := NewPosition()
	before := pos.FEN()
	ParallelBestMove(context.Background(), pos, 2, 0)
	if pos.FEN() != before {
		t.Fatalf("ParallelBestMove mutated the root position: now %q, was %q", pos.FEN(), before)
	}
}

func TestParallelBestMoveHonorsExplicitWorkerCount(t *testing.T) {
	pos := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	best, _ := ParallelBestMove(context.Background(), pos, 2, 1)
	if err := pos.MakeMove(best); err != nil {
		t.Fatalf("MakeMove(%s): %v", best, err)
	}
	if !pos.IsCheckmate() {
		t.Fatalf("ParallelBestMove with workers=1 chose %s, which is not checkmate; FEN now %s", best, pos.FEN())
	}
}

func TestParallelBestMoveAgreesWithSerialOnScore(t *testing.T) {
	pos := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	_, serialScore := BestMove(pos.Clone(), 2)
	_, parallelScore := ParallelBestMove(context.Background(), pos, 2, 0)
	if serialScore != parallelScore {
		t.Errorf("serial BestMove score = %d, ParallelBestMove score = %d; root-parallel search should agree on the best score",
			serialScore, parallelScore)
	}
}
