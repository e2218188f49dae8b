package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// MoveGrid is an 8x8 boolean grid indexed [row][col]; true marks a
// destination square.
type MoveGrid [chess.BoardSize][chess.BoardSize]bool

// Has reports whether sq is marked. Off-board squares are never marked.
func (g *MoveGrid) Has(sq chess.Square) bool {
	return sq.InBounds() && g[sq.Row][sq.Col]
}

// Add marks sq. Off-board squares are ignored.
func (g *MoveGrid) Add(sq chess.Square) {
	if sq.InBounds() {
		g[sq.Row][sq.Col] = true
	}
}

// Len returns the number of marked squares.
func (g *MoveGrid) Len() int {
	n := 0
	for row := range g {
		for col := range g[row] {
			if g[row][col] {
				n++
			}
		}
	}
	return n
}

// Squares returns the marked squares in row-major order.
func (g *MoveGrid) Squares() []chess.Square {
	var out []chess.Square
	for row := range g {
		for col := range g[row] {
			if g[row][col] {
				out = append(out, chess.Square{Row: row, Col: col})
			}
		}
	}
	return out
}
