package bitchess

import "testing"

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestParseFENRoundTrip(t *testing.T) {
	tests := []string{
		startFEN,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"3q1bRk/5p2/5N1p/8/8/8/2r2PPP/6K1 b - - 0 1",
		"5k2/5P2/5K2/8/8/8/8/8 b - - 0 1",
		"8/8/3K4/8/1k6/8/8/8 w - - 0 1",
	}
	for _, fen := range tests {
		pos := mustFEN(t, fen)
		if got := pos.FEN(); got != fen {
			t.Errorf("FEN round-trip: ParseFEN(%q).FEN() = %q", fen, got)
		}
	}
}

func TestParseFENDefaultsTrailingFields(t *testing.T) {
	pos := mustFEN(t, "8/8/8/8/8/8/8/4K2k")
	if pos.Turn() != White {
		t.Errorf("side to move default = %v, want White", pos.Turn())
	}
	if pos.CanCastle(White, H1) || pos.CanCastle(White, A1) {
		t.Errorf("castling default should be none")
	}
	if pos.EnPassant() != NoSquare {
		t.Errorf("en-passant default = %v, want NoSquare", pos.EnPassant())
	}
	if pos.HalfmoveClock() != 0 {
		t.Errorf("halfmove clock default = %d, want 0", pos.HalfmoveClock())
	}
	if pos.Fullmoves() != 1 {
		t.Errorf("fullmove default = %d, want 1", pos.Fullmoves())
	}
}

func TestParseFENRejectsMissingKing(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	if err == nil {
		t.Fatal("expected error for a position missing the black king")
	}
}

func TestParseFENRejectsTooFewRanks(t *testing.T) {
	_, err := ParseFEN("8/8/8 w - - 0 1")
	if err == nil {
		t.Fatal("expected error for malformed piece placement")
	}
}

// TestInvariantsAlongEveryLegalLine walks every legal move a fixed
// number of plies deep from the starting position and checks the
// quantified invariants hold at every reached position.
func TestInvariantsAlongEveryLegalLine(t *testing.T) {
	pos := NewPosition()
	var walk func(depth int)
	walk = func(depth int) {
		checkInvariants(t, pos)
		if depth == 0 {
			return
		}
		for _, m := range pos.LegalMoves() {
			if err := pos.MakeMove(m); err != nil {
				t.Fatalf("MakeMove(%s): %v", m, err)
			}
			walk(depth - 1)
			pos.UnmakeMove()
		}
	}
	walk(3)
}

func checkInvariants(t *testing.T, pos *Position) {
	t.Helper()
	if n := pos.Pieces(White, King).popcount(); n != 1 {
		t.Fatalf("white king count = %d, want 1 (fen %s)", n, pos.FEN())
	}
	if n := pos.Pieces(Black, King).popcount(); n != 1 {
		t.Fatalf("black king count = %d, want 1 (fen %s)", n, pos.FEN())
	}
	for _, c := range []Color{White, Black} {
		if pos.Pieces(c, Pawn)&(bbRank1|bbRank8) != 0 {
			t.Fatalf("%v pawn on rank 1 or 8 (fen %s)", c, pos.FEN())
		}
		if pos.castlingRights[c]&^originalRookSquares[c] != 0 {
			t.Fatalf("%v castling rights not a subset of original rook squares (fen %s)", c, pos.FEN())
		}
		if pos.kingSquare(c) != homeKingSquare[c] && pos.castlingRights[c] != 0 {
			t.Fatalf("%v castling rights nonzero with king off its home square (fen %s)", c, pos.FEN())
		}
	}
	if ep := pos.EnPassant(); ep != NoSquare {
		if ep.Rank() != 2 && ep.Rank() != 5 {
			t.Fatalf("en-passant square %v not on rank 3 or 6 (fen %s)", ep, pos.FEN())
		}
	}
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{"8/8/3K4/8/1k6/8/8/8 w - - 0 1", false},
		{"8/8/3bb3/8/1k6/8/3K4/8 b - - 0 1", true},
		{startFEN, true},
	}
	for _, test := range tests {
		pos := mustFEN(t, test.fen)
		if got := pos.hasSufficientMaterial(); got != test.want {
			t.Errorf("hasSufficientMaterial(%q) = %v, want %v", test.fen, got, test.want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	pos := NewPosition()
	clone := pos.Clone()
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if err := pos.MakeMove(m); err != nil {
		t.Fatal(err)
	}
	if clone.FEN() == pos.FEN() {
		t.Fatal("Clone shares mutable state with its source")
	}
	if clone.FEN() != startFEN {
		t.Fatalf("clone.FEN() = %q, want unchanged starting FEN", clone.FEN())
	}
}
