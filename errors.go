package bitchess

import (
	"fmt"
	"math/bits"
)

// InvalidMoveError reports that a move string or UCI token could not be
// parsed into a Move.
type InvalidMoveError struct {
	Text string
	Err  error
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("chess: invalid move %q: %v", e.Text, e.Err)
}

func (e *InvalidMoveError) Unwrap() error { return e.Err }

// IllegalMoveError reports that a move, while perhaps well-formed, is
// not a member of the position's legal move set.
type IllegalMoveError struct {
	Move Move
	FEN  string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("chess: illegal move %s in position %q", e.Move, e.FEN)
}

// Outcome is the terminal result of a game, following the classic
// three-way scoring string used in PGN-adjacent tooling.
type Outcome string

const (
	NoOutcome Outcome = "*"
	WhiteWon  Outcome = "1-0"
	BlackWon  Outcome = "0-1"
	Draw      Outcome = "1/2-1/2"
)

// Method names the rule that produced a game's Outcome.
type Method uint8

const (
	NoMethod Method = iota
	Checkmate
	Stalemate
	ThreefoldRepetition
	FiftyMoveRule
	InsufficientMaterial
)

func (m Method) String() string {
	switch m {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "in progress"
	}
}

// GameOverError is returned by RaiseIfGameOver to signal that the game
// has already concluded; it is a signal for callers to end a game
// cleanly, not a bug report.
type GameOverError struct {
	Outcome Outcome
	Method  Method
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("chess: game over (%s) by %s", e.Outcome, e.Method)
}

// HasThreefoldRepetition reports whether the current position's short
// FEN fingerprint has occurred three or more times. It always returns
// false unless EnableRepetitionTracking was called.
func (p *Position) HasThreefoldRepetition() bool {
	return p.trackRepetitions && p.repetitions[p.shortFEN()] >= 3
}

// RaiseIfGameOver returns a *GameOverError describing the game's
// conclusion if Result reports anything other than NoOutcome, and nil
// if the game is still in progress.
func (p *Position) RaiseIfGameOver() error {
	outcome, method := p.Result()
	if outcome == NoOutcome {
		return nil
	}
	return &GameOverError{Outcome: outcome, Method: method}
}

// Result inspects the position and reports whether the game has ended.
// Checkmate and stalemate take priority, then the fifty-move rule,
// then insufficient material, then threefold repetition (which
// requires EnableRepetitionTracking to have been called; otherwise it
// is never reported).
func (p *Position) Result() (Outcome, Method) {
	legal := p.LegalMoves()
	if len(legal) == 0 {
		if p.IsInCheck() {
			if p.turn == White {
				return BlackWon, Checkmate
			}
			return WhiteWon, Checkmate
		}
		return Draw, Stalemate
	}
	if p.halfmoveClock >= 100 {
		return Draw, FiftyMoveRule
	}
	if !p.hasSufficientMaterial() {
		return Draw, InsufficientMaterial
	}
	if p.trackRepetitions && p.repetitions[p.shortFEN()] >= 3 {
		return Draw, ThreefoldRepetition
	}
	return NoOutcome, NoMethod
}

// hasSufficientMaterial reports whether the position has enough force
// remaining to be checkmated by any sequence of legal moves. A queen,
// rook, or pawn on the board is always sufficient; otherwise the
// classic five-clause minor-piece table applies.
func (p *Position) hasSufficientMaterial() bool {
	if p.pieces[White][Queen]|p.pieces[White][Rook]|p.pieces[White][Pawn]|
		p.pieces[Black][Queen]|p.pieces[Black][Rook]|p.pieces[Black][Pawn] != 0 {
		return true
	}

	whiteBishops := p.pieces[White][Bishop].popcount()
	blackBishops := p.pieces[Black][Bishop].popcount()
	whiteKnights := p.pieces[White][Knight].popcount()
	blackKnights := p.pieces[Black][Knight].popcount()
	bishops := whiteBishops + blackBishops
	knights := whiteKnights + blackKnights

	// king versus king
	if bishops == 0 && knights == 0 {
		return false
	}
	// five or more pieces in total (kings included)
	if 2+bishops+knights >= 5 {
		return true
	}
	// king and bishop versus king
	if bishops == 1 && knights == 0 {
		return false
	}
	// king and knight versus king
	if bishops == 0 && knights == 1 {
		return false
	}
	// king and bishop(s) versus king and bishop(s), all bishops on the same square color
	if knights == 0 {
		allBishops := uint64(p.pieces[White][Bishop] | p.pieces[Black][Bishop])
		lightCount := bits.OnesCount64(allBishops & uint64(bbLightSquares))
		darkCount := bits.OnesCount64(allBishops & uint64(bbDarkSquares))
		if lightCount == 0 || darkCount == 0 {
			return false
		}
	}
	return true
}
