package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A board
// without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq. Only
// capturing geometry counts: pawn pushes and castling never attack.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one row back from sq.
	pawnRow := -byColour.Forward()
	for _, dc := range []int{-1, 1} {
		if isPieceAt(board, sq.Offset(pawnRow, dc), chess.Pawn, byColour) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if isPieceAt(board, sq.Offset(off[0], off[1]), chess.Knight, byColour) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if isPieceAt(board, sq.Offset(off[0], off[1]), chess.King, byColour) {
			return true
		}
	}

	if rayHits(board, sq, diagonalDirs, byColour, chess.Bishop) {
		return true
	}
	return rayHits(board, sq, orthogonalDirs, byColour, chess.Rook)
}

// rayHits scans outward from sq and reports whether the first piece met in
// any direction is a slider of byColour (the given kind or a queen).
func rayHits(board *chess.Board, sq chess.Square, dirs [][2]int, byColour chess.Colour, slider chess.Kind) bool {
	for _, dir := range dirs {
		target := sq.Offset(dir[0], dir[1])
		for target.InBounds() {
			piece := board.PieceAt(target)
			if piece != nil {
				if piece.Colour() == byColour && (piece.Kind() == slider || piece.Kind() == chess.Queen) {
					return true
				}
				break // Blocked
			}
			target = target.Offset(dir[0], dir[1])
		}
	}
	return false
}

func isPieceAt(board *chess.Board, sq chess.Square, kind chess.Kind, colour chess.Colour) bool {
	p := board.PieceAt(sq)
	return p != nil && p.Kind() == kind && p.Colour() == colour
}
