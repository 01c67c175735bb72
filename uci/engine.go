package uci

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/solovyev/bitchess"
)

const (
	engineName   = "bitchess"
	engineAuthor = "bitchess contributors"

	defaultDepth = 4
)

// Engine holds the UCI server's mutable state: the current position,
// the configured search depth (the engine's "skill level" option), and
// the number of goroutines to search root moves with in parallel.
type Engine struct {
	pos     *bitchess.Position
	depth   int
	workers int
	out     io.Writer
	quit    bool
}

// NewEngine returns an Engine at the standard starting position,
// searching to defaultDepth until changed by setoption ("go depth N"
// overrides it for that one search only), with root-parallel search
// disabled.
func NewEngine(out io.Writer) *Engine {
	return &Engine{pos: bitchess.NewPosition(), depth: defaultDepth, workers: 1, out: out}
}

// NewEngineWithDepth is like NewEngine but starts with the given
// default search depth.
func NewEngineWithDepth(out io.Writer, depth int) *Engine {
	return NewEngineWithOptions(out, depth, 1)
}

// NewEngineWithOptions is like NewEngine but starts with the given
// default search depth and root-parallel worker count. workers <= 1
// runs BestMove's single-goroutine search; workers > 1 searches root
// moves across that many goroutines via ParallelBestMove.
func NewEngineWithOptions(out io.Writer, depth, workers int) *Engine {
	e := NewEngine(out)
	if depth >= 1 {
		e.depth = depth
	}
	if workers >= 1 {
		e.workers = workers
	}
	return e
}

// Loop reads UCI commands from r, one per line, dispatching each to its
// handler and writing replies to the Engine's configured output. It
// returns when a "quit" command is processed or r reaches EOF.
func (e *Engine) Loop(r io.Reader) error {
	schema := e.schema()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := schema.Dispatch(scanner.Text()); err != nil {
			return err
		}
		if e.quit {
			return nil
		}
	}
	return scanner.Err()
}

func (e *Engine) schema() Schema {
	s := NewSchema(e.out)
	s.Add(Command{Name: "uci", Run: e.cmdUCI})
	s.Add(Command{Name: "isready", Run: e.cmdIsReady})
	s.Add(Command{Name: "ucinewgame", Run: e.cmdNewGame})
	s.Add(Command{Name: "position", Run: e.cmdPosition})
	s.Add(Command{Name: "go", Run: e.cmdGo})
	s.Add(Command{Name: "setoption", Run: e.cmdSetOption})
	s.Add(Command{Name: "d", Run: e.cmdDebug})
	s.Add(Command{Name: "quit", Run: e.cmdQuit})
	return s
}

func (e *Engine) cmdUCI(i *Interaction, _ []string) error {
	i.Replyf("id name %s", engineName)
	i.Replyf("id author %s", engineAuthor)
	i.Reply("option name Depth type spin default", defaultDepth, "min 1 max 64")
	i.Reply("option name Workers type spin default 1 min 1 max", runtime.NumCPU())
	i.Reply("uciok")
	return nil
}

func (e *Engine) cmdIsReady(i *Interaction, _ []string) error {
	i.Reply("readyok")
	return nil
}

func (e *Engine) cmdNewGame(_ *Interaction, _ []string) error {
	e.pos = bitchess.NewPosition()
	return nil
}

// cmdPosition implements "position startpos [moves ...]" and
// "position fen <FEN> [moves ...]".
func (e *Engine) cmdPosition(i *Interaction, args []string) error {
	if len(args) == 0 {
		return nil
	}

	movesIdx := -1
	for idx, tok := range args {
		if tok == "moves" {
			movesIdx = idx
			break
		}
	}

	var fenTokens []string
	if movesIdx >= 0 {
		fenTokens = args[:movesIdx]
	} else {
		fenTokens = args
	}

	var pos *bitchess.Position
	var err error
	switch {
	case len(fenTokens) > 0 && fenTokens[0] == "startpos":
		pos = bitchess.NewPosition()
	case len(fenTokens) > 0 && fenTokens[0] == "fen":
		pos, err = bitchess.ParseFEN(strings.Join(fenTokens[1:], " "))
	default:
		pos, err = bitchess.ParseFEN(strings.Join(fenTokens, " "))
	}
	if err != nil {
		i.Replyf("info string %v", err)
		return nil
	}
	e.pos = pos

	if movesIdx >= 0 {
		for _, tok := range args[movesIdx+1:] {
			m, err := bitchess.ParseMove(tok)
			if err != nil {
				i.Replyf("info string %v", err)
				return nil
			}
			if err := e.pos.MakeSafeMove(m); err != nil {
				i.Replyf("info string %v", err)
				return nil
			}
		}
	}
	return nil
}

func (e *Engine) cmdGo(i *Interaction, args []string) error {
	depth := e.depth
	for idx, tok := range args {
		if tok == "depth" && idx+1 < len(args) {
			if n, err := strconv.Atoi(args[idx+1]); err == nil && n >= 1 {
				depth = n
			}
		}
	}

	if e.pos.IsCheckmate() || e.pos.IsStalemate() {
		i.Reply("bestmove 0000")
		return nil
	}

	var best bitchess.Move
	if e.workers > 1 {
		best, _ = bitchess.ParallelBestMove(context.Background(), e.pos, depth, e.workers)
	} else {
		best, _ = bitchess.BestMove(e.pos, depth)
	}
	i.Replyf("bestmove %s", best.UCI())
	return nil
}

func (e *Engine) cmdSetOption(_ *Interaction, args []string) error {
	var name, value string
	for idx := 0; idx < len(args); idx++ {
		switch args[idx] {
		case "name":
			if idx+1 < len(args) {
				name = args[idx+1]
			}
		case "value":
			if idx+1 < len(args) {
				value = args[idx+1]
			}
		}
	}
	if strings.EqualFold(name, "Depth") {
		if n, err := strconv.Atoi(value); err == nil && n >= 1 {
			e.depth = n
		}
	}
	if strings.EqualFold(name, "Workers") {
		if n, err := strconv.Atoi(value); err == nil && n >= 1 {
			e.workers = n
		}
	}
	return nil
}

func (e *Engine) cmdDebug(i *Interaction, _ []string) error {
	i.Reply(e.pos.String())
	return nil
}

func (e *Engine) cmdQuit(_ *Interaction, _ []string) error {
	e.quit = true
	return nil
}
