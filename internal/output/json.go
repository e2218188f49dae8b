package output

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/match"
)

// JSONMatch represents a match in JSON format.
type JSONMatch struct {
	Name          string   `json:"name,omitempty"`
	FEN           string   `json:"fen"`
	Turn          int      `json:"turn"`
	CurrentPlayer string   `json:"currentPlayer"`
	State         string   `json:"state"`
	Check         bool     `json:"check"`
	Checkmate     bool     `json:"checkmate"`
	Stalemate     bool     `json:"stalemate"`
	Board         []string `json:"board"` // rank 8 first, '.' for empty
	Captured      []string `json:"captured,omitempty"`
	LastMove      string   `json:"lastMove,omitempty"`
}

// MatchToJSON converts a match to its JSON representation.
func MatchToJSON(m *match.Match) *JSONMatch {
	snap := m.Pieces()
	board := make([]string, 0, chess.BoardSize)
	for row := range snap {
		var rank [chess.BoardSize]byte
		for col := range snap[row] {
			rank[col] = snap[row][col].Letter()
		}
		board = append(board, string(rank[:]))
	}

	jm := &JSONMatch{
		Name:          m.Name(),
		FEN:           m.FEN(),
		Turn:          m.Turn(),
		CurrentPlayer: m.CurrentPlayer().String(),
		State:         m.State().String(),
		Check:         m.Check(),
		Checkmate:     m.Checkmate(),
		Stalemate:     m.Stalemate(),
		Board:         board,
	}
	for _, p := range m.CapturedPieces() {
		jm.Captured = append(jm.Captured, string(p.Letter()))
	}
	if last, ok := m.LastMove(); ok {
		jm.LastMove = last.String()
	}
	return jm
}
