package bitchess

// PieceKind is one of the six chess piece kinds.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind
)

var pieceKinds = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the lowercase algebraic letter for the kind ("p", "n", ...).
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return ""
}

func pieceKindFromChar(c byte) PieceKind {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoPieceKind
}

// baseValue is the material value of a piece kind, in centipawns.
// Indexed by PieceKind.
var baseValue = [6]int{100, 320, 330, 500, 900, 20000}

func fenChar(kind PieceKind, color Color) byte {
	c := kind.String()[0]
	if color == White {
		return c - ('a' - 'A')
	}
	return c
}
