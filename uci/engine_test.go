package uci

import (
	"bytes"
	"strings"
	"testing"
)

func runLoop(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	e := NewEngine(&out)
	if err := e.Loop(strings.NewReader(input)); err != nil {
		t.Fatalf("Loop: %v", err)
	}
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	out := runLoop(t, "uci\nisready\nquit\n")
	if !strings.Contains(out, "id name bitchess") {
		t.Errorf("missing id name line in output: %q", out)
	}
	if !strings.Contains(out, "uciok") {
		t.Errorf("missing uciok in output: %q", out)
	}
	if !strings.Contains(out, "readyok") {
		t.Errorf("missing readyok in output: %q", out)
	}
}

func TestPositionAndGoEmitsBestMove(t *testing.T) {
	out := runLoop(t, "position startpos moves e2e4 e7e5\ngo depth 1\nquit\n")
	if !strings.Contains(out, "bestmove ") {
		t.Fatalf("expected a bestmove line, got %q", out)
	}
}

func TestPositionFEN(t *testing.T) {
	out := runLoop(t, "position fen 5k2/5P2/5K2/8/8/8/8/8 b - - 0 1\ngo depth 1\nquit\n")
	if !strings.Contains(out, "bestmove 0000") {
		t.Fatalf("expected bestmove 0000 for a stalemated position, got %q", out)
	}
}

func TestSetOptionDepth(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out)
	if err := e.Loop(strings.NewReader("setoption name Depth value 1\nquit\n")); err != nil {
		t.Fatal(err)
	}
	if e.depth != 1 {
		t.Errorf("depth after setoption = %d, want 1", e.depth)
	}
}

func TestSetOptionWorkers(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out)
	if err := e.Loop(strings.NewReader("setoption name Workers value 4\nquit\n")); err != nil {
		t.Fatal(err)
	}
	if e.workers != 4 {
		t.Errorf("workers after setoption = %d, want 4", e.workers)
	}
}

func TestEngineWithOptionsUsesParallelSearchWhenWorkersExceedOne(t *testing.T) {
	var out bytes.Buffer
	e := NewEngineWithOptions(&out, 1, 2)
	if err := e.Loop(strings.NewReader("position startpos\ngo depth 1\nquit\n")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "bestmove ") {
		t.Fatalf("expected a bestmove line from root-parallel search, got %q", out.String())
	}
}
