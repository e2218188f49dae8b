package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// pawnCandidates adds forward pushes, the double step, diagonal captures and
// the en passant capture for the pawn on from.
func pawnCandidates(pos *Position, pawn *chess.Piece, from chess.Square, grid *MoveGrid) {
	board := pos.Board
	dir := pawn.Colour().Forward()

	one := from.Offset(dir, 0)
	if one.InBounds() && !board.IsOccupied(one) {
		grid.Add(one)

		if canDoubleStep(pawn, from) {
			two := from.Offset(2*dir, 0)
			if two.InBounds() && !board.IsOccupied(two) {
				grid.Add(two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		target := from.Offset(dir, dc)
		if !target.InBounds() {
			continue
		}
		if occupant := board.PieceAt(target); occupant != nil {
			if occupant.Colour() != pawn.Colour() {
				grid.Add(target)
			}
			continue
		}
		if isEnPassantCapture(pos, pawn, from, target) {
			grid.Add(target)
		}
	}
}

// canDoubleStep reports whether the pawn stands on its starting rank and has
// never moved.
func canDoubleStep(pawn *chess.Piece, from chess.Square) bool {
	return from.Row == chess.PawnRow(pawn.Colour()) && !pawn.HasMoved()
}

// isEnPassantCapture reports whether a diagonal pawn move from from to the
// empty square target captures the vulnerable pawn beside it.
func isEnPassantCapture(pos *Position, pawn *chess.Piece, from, target chess.Square) bool {
	victim := pos.EnPassant
	if victim == nil || victim.Kind() != chess.Pawn || victim.Colour() == pawn.Colour() {
		return false
	}
	victimSq, ok := victim.Square()
	if !ok {
		return false
	}
	return victimSq.Row == from.Row && victimSq.Col == target.Col && abs(victimSq.Col-from.Col) == 1
}
