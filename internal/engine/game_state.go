package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Status describes the position from the point of view of the side to move.
// Checkmate and Stalemate are mutually exclusive.
type Status struct {
	Check     bool
	Checkmate bool
	Stalemate bool
}

// Terminal reports whether the side to move has no legal move.
func (s Status) Terminal() bool {
	return s.Checkmate || s.Stalemate
}

// Evaluate returns the status of pos with colour to move. Legal moves are
// searched once, and only until the first one is found.
func Evaluate(pos *Position, colour chess.Colour) Status {
	s := Status{Check: IsInCheck(pos.Board, colour)}
	if !HasLegalMoves(pos, colour) {
		s.Checkmate = s.Check
		s.Stalemate = !s.Check
	}
	return s
}
