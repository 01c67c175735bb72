// Package httpapi is a peripheral HTTP/JSON wrapper around package
// bitchess. It exposes the core's legal-move generation,
// move application, FEN serialization, and search as a small JSON API;
// the core itself has no knowledge of HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/solovyev/bitchess"
)

// Server wraps a single *bitchess.Position behind a mutex, since
// Position is not safe for concurrent use by multiple goroutines.
type Server struct {
	mu  sync.Mutex
	pos *bitchess.Position
}

// NewServer returns a Server at the standard starting position with
// repetition tracking enabled.
func NewServer() *Server {
	pos := bitchess.NewPosition()
	pos.EnableRepetitionTracking()
	return &Server{pos: pos}
}

// Routes registers the server's handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/position", s.handlePosition)
	mux.HandleFunc("/moves", s.handleMoves)
	mux.HandleFunc("/undo", s.handleUndo)
	mux.HandleFunc("/board.svg", s.handleBoardSVG)
	mux.HandleFunc("/bestmove", s.handleBestMove)
}

type positionResponse struct {
	FEN         string   `json:"fen"`
	Turn        string   `json:"turn"`
	LegalMoves  []string `json:"legal_moves"`
	InCheck     bool     `json:"in_check"`
	Checkmate   bool     `json:"checkmate"`
	Stalemate   bool     `json:"stalemate"`
	GameOverMsg string   `json:"game_over,omitempty"`
}

func (s *Server) snapshot() positionResponse {
	moves := s.pos.LegalMoves()
	ucis := make([]string, len(moves))
	for i, m := range moves {
		ucis[i] = m.UCI()
	}
	resp := positionResponse{
		FEN:        s.pos.FEN(),
		Turn:       s.pos.Turn().String(),
		LegalMoves: ucis,
		InCheck:    s.pos.IsInCheck(),
		Checkmate:  s.pos.IsCheckmate(),
		Stalemate:  s.pos.IsStalemate(),
	}
	if err := s.pos.RaiseIfGameOver(); err != nil {
		resp.GameOverMsg = err.Error()
	}
	return resp
}

// GET /position
func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.snapshot())
}

type moveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// POST /moves applies a move via make_safe_move, rejecting it if it is
// not a member of legal_moves.
func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	uci := req.From + req.To + req.Promotion
	m, err := bitchess.ParseMove(uci)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.pos.MakeSafeMove(m); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, s.snapshot())
}

// POST /undo reverts the most recently applied move.
func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos.UnmakeMove()
	writeJSON(w, http.StatusOK, s.snapshot())
}

type bestMoveResponse struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
}

// GET /bestmove?depth=N runs the AI's search and reports the move it
// picked, without applying it.
func (s *Server) handleBestMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	depth := parseDepth(r.URL.Query().Get("depth"), 4)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.pos.RaiseIfGameOver(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	move, score := bitchess.BestMove(s.pos, depth)
	writeJSON(w, http.StatusOK, bestMoveResponse{Move: move.UCI(), Score: score})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseDepth(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		return fallback
	}
	return n
}
