package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirections  = append(append([][2]int{}, diagonalDirs...), orthogonalDirs...)
)

// CandidateMoves returns the squares the piece on sq could move to, ignoring
// whether the move would leave its own king in check. An empty square yields
// an empty grid.
func CandidateMoves(pos *Position, sq chess.Square) MoveGrid {
	var grid MoveGrid
	piece := pos.Board.PieceAt(sq)
	if piece == nil {
		return grid
	}

	switch piece.Kind() {
	case chess.Pawn:
		pawnCandidates(pos, piece, sq, &grid)
	case chess.Knight:
		stepCandidates(pos.Board, piece, sq, knightOffsets, &grid)
	case chess.Bishop:
		slideCandidates(pos.Board, piece, sq, diagonalDirs, &grid)
	case chess.Rook:
		slideCandidates(pos.Board, piece, sq, orthogonalDirs, &grid)
	case chess.Queen:
		slideCandidates(pos.Board, piece, sq, allDirections, &grid)
	case chess.King:
		stepCandidates(pos.Board, piece, sq, kingOffsets, &grid)
		castleCandidates(pos.Board, piece, sq, &grid)
	}
	return grid
}

// canLand reports whether piece may end on target: on the board and not
// occupied by a piece of its own colour.
func canLand(board *chess.Board, piece *chess.Piece, target chess.Square) bool {
	if !target.InBounds() {
		return false
	}
	occupant := board.PieceAt(target)
	return occupant == nil || occupant.Colour() != piece.Colour()
}

// stepCandidates adds each single-step offset the piece can land on.
func stepCandidates(board *chess.Board, piece *chess.Piece, from chess.Square, offsets [][2]int, grid *MoveGrid) {
	for _, off := range offsets {
		target := from.Offset(off[0], off[1])
		if canLand(board, piece, target) {
			grid.Add(target)
		}
	}
}

// slideCandidates walks each direction until the edge or a blocker. An
// opposing blocker is a candidate, an own blocker is not.
func slideCandidates(board *chess.Board, piece *chess.Piece, from chess.Square, dirs [][2]int, grid *MoveGrid) {
	for _, dir := range dirs {
		target := from.Offset(dir[0], dir[1])
		for target.InBounds() {
			occupant := board.PieceAt(target)
			if occupant != nil {
				if occupant.Colour() != piece.Colour() {
					grid.Add(target)
				}
				break // Blocked
			}
			grid.Add(target)
			target = target.Offset(dir[0], dir[1])
		}
	}
}
