package match

import (
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Snapshot is an immutable copy of the board for rendering, indexed
// [row][col] with row 0 at rank 8.
type Snapshot [chess.BoardSize][chess.BoardSize]chess.Occupant

// Pieces returns a snapshot of the board.
func (m *Match) Pieces() Snapshot {
	return Snapshot(m.pos.Board.Occupants())
}

// At returns the occupant of sq; off-board squares are empty.
func (s Snapshot) At(sq chess.Square) chess.Occupant {
	if !sq.InBounds() {
		return chess.Occupant{}
	}
	return s[sq.Row][sq.Col]
}

// String renders the snapshot as eight lines of piece letters, rank 8
// first, with '.' for empty squares.
func (s Snapshot) String() string {
	var sb strings.Builder
	for row := range s {
		for col := range s[row] {
			sb.WriteByte(s[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
