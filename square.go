package bitchess

import "fmt"

// Square is a board position encoded 0..63, rank-major: a1=0, h1=7,
// a8=56, h8=63.
type Square int8

// NoSquare represents the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

const numSquares = 64

// NewSquare builds a Square from a zero-based file (a=0..h=7) and rank (1=0..8=7).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the square's file, 0 (a) through 7 (h).
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() int {
	return int(s) / 8
}

// Mirror returns the square reflected across the board's horizontal
// midline (rank 1 <-> rank 8), used to index piece-square tables from
// White's perspective.
func (s Square) Mirror() Square {
	return s ^ 56
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 != 0
}

var fileNames = "abcdefgh"

// String returns the square in algebraic notation, e.g. "e4", or "-"
// for NoSquare.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileNames[s.File()], s.Rank()+1)
}

// ParseSquare parses algebraic notation, e.g. "e4", into a Square.
func ParseSquare(str string) (Square, error) {
	if str == "-" {
		return NoSquare, nil
	}
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("chess: invalid square %q", str)
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("chess: invalid square %q", str)
	}
	return NewSquare(file, rank), nil
}

// Named squares used by castling and en-passant logic.
const (
	A1 = Square(iota)
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Color is one side of the board.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String returns the FEN-compatible "w"/"b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	if c == Black {
		return "b"
	}
	return "-"
}
