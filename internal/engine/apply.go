package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// MoveResult describes what ApplyMove did to the position.
type MoveResult struct {
	Moved      *chess.Piece // The piece that left the source square
	Captured   *chess.Piece // Captured piece, nil if none
	EnPassant  bool         // Captured pawn was beside the target, not on it
	Castle     chess.CastleSide
	Promoted   *chess.Piece // Replacement piece when a pawn reached the last rank
	DoubleStep bool         // Pawn advanced two squares
}

// IsPromotion reports whether moving the piece on move.From to move.To
// would promote it.
func IsPromotion(board *chess.Board, move chess.Move) bool {
	piece := board.PieceAt(move.From)
	return piece != nil && piece.Kind() == chess.Pawn && move.To.Row == chess.PromotionRow(piece.Colour())
}

// ApplyMove executes move on pos without checking legality. It performs the
// capture (including en passant), relocates the rook when castling, replaces
// a promoting pawn with move.Promotion, increments the mover's counter and
// updates pos.EnPassant. The position is unchanged when an error is returned.
func ApplyMove(pos *Position, move chess.Move) (MoveResult, error) {
	board := pos.Board
	piece := board.PieceAt(move.From)
	if piece == nil {
		return MoveResult{}, fmt.Errorf("apply %s: %w", move, errors.ErrNoPieceAtSource)
	}
	if !move.To.InBounds() {
		return MoveResult{}, fmt.Errorf("apply %s: %w", move, errors.ErrOutOfBounds)
	}

	promotes := IsPromotion(board, move)
	if promotes && !move.Promotion.IsPromotionChoice() {
		return MoveResult{}, fmt.Errorf("apply %s: promote to %v: %w", move, move.Promotion, errors.ErrInvalidPromotionChoice)
	}

	result := MoveResult{Moved: piece, Castle: castleSideOf(piece, move)}

	if piece.Kind() == chess.Pawn && move.From.Col != move.To.Col && !board.IsOccupied(move.To) {
		victimSq := chess.Square{Row: move.From.Row, Col: move.To.Col}
		if victim := board.PieceAt(victimSq); victim != nil && victim.Kind() == chess.Pawn && victim.Colour() != piece.Colour() {
			result.Captured = board.Remove(victimSq)
			result.EnPassant = true
		}
	} else {
		result.Captured = board.Remove(move.To)
	}

	board.Remove(move.From)
	piece.RecordMove()

	placed := piece
	if promotes {
		placed = piece.Promote(move.Promotion)
		result.Promoted = placed
	}
	if err := board.Place(placed, move.To); err != nil {
		// Unreachable: the target was emptied above.
		return result, err
	}

	if result.Castle != chess.NoCastle {
		squares := chess.Castling(piece.Colour(), result.Castle)
		rook := board.Remove(squares.RookFrom)
		if rook != nil {
			rook.RecordMove()
			if err := board.Place(rook, squares.RookTo); err != nil {
				return result, err
			}
		}
	}

	result.DoubleStep = piece.Kind() == chess.Pawn && abs(move.To.Row-move.From.Row) == 2
	if result.DoubleStep {
		pos.EnPassant = piece
	} else {
		pos.EnPassant = nil
	}

	return result, nil
}
