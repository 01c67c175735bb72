package httpapi

import (
	"net/http"

	svg "github.com/ajstarks/svgo"

	"github.com/solovyev/bitchess"
)

const squareSize = 64

var pieceGlyph = map[bitchess.PieceKind]map[bitchess.Color]string{
	bitchess.Pawn:   {bitchess.White: "♙", bitchess.Black: "♟"},
	bitchess.Knight: {bitchess.White: "♘", bitchess.Black: "♞"},
	bitchess.Bishop: {bitchess.White: "♗", bitchess.Black: "♝"},
	bitchess.Rook:   {bitchess.White: "♖", bitchess.Black: "♜"},
	bitchess.Queen:  {bitchess.White: "♕", bitchess.Black: "♛"},
	bitchess.King:   {bitchess.White: "♔", bitchess.Black: "♚"},
}

// GET /board.svg renders the current position as an 8x8 SVG diagram
// using ajstarks/svgo. The core package itself has no SVG rendering.
func (s *Server) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	pos := s.pos
	s.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	canvas := svg.New(w)
	dim := squareSize * 8
	canvas.Start(dim, dim)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			fill := "#f0d9b5"
			if (file+rank)%2 == 0 {
				fill = "#b58863"
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			sq := bitchess.NewSquare(file, rank)
			kind, color := pos.PieceAt(sq)
			if kind == bitchess.NoPieceKind {
				continue
			}
			glyph := pieceGlyph[kind][color]
			canvas.Text(x+squareSize/2, y+squareSize/2+squareSize/6, glyph,
				"text-anchor:middle;font-size:40px")
		}
	}

	canvas.End()
}
