package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// castleCandidates adds the king's two-square castling destinations. A side
// is available when the king and that rook have never moved and stand on
// their home squares, the squares between them are empty, and the king's
// start, transit and landing squares are not attacked.
func castleCandidates(board *chess.Board, king *chess.Piece, from chess.Square, grid *MoveGrid) {
	for _, side := range []chess.CastleSide{chess.KingSide, chess.QueenSide} {
		if canCastle(board, king, from, side) {
			grid.Add(chess.Castling(king.Colour(), side).KingTo)
		}
	}
}

func canCastle(board *chess.Board, king *chess.Piece, from chess.Square, side chess.CastleSide) bool {
	colour := king.Colour()
	squares := chess.Castling(colour, side)

	if king.HasMoved() || from != squares.KingFrom {
		return false
	}

	rook := board.PieceAt(squares.RookFrom)
	if rook == nil || rook.Kind() != chess.Rook || rook.Colour() != colour || rook.HasMoved() {
		return false
	}

	step := sign(squares.RookFrom.Col - from.Col)
	for col := from.Col + step; col != squares.RookFrom.Col; col += step {
		if board.IsOccupied(chess.Square{Row: from.Row, Col: col}) {
			return false
		}
	}

	enemy := colour.Opposite()
	for col := from.Col; ; col += step {
		if IsSquareAttacked(board, chess.Square{Row: from.Row, Col: col}, enemy) {
			return false
		}
		if col == squares.KingTo.Col {
			break
		}
	}
	return true
}

// castleSideOf classifies a king move: a two-column step is castling.
func castleSideOf(king *chess.Piece, move chess.Move) chess.CastleSide {
	if king.Kind() != chess.King || move.From.Row != move.To.Row || abs(move.To.Col-move.From.Col) != 2 {
		return chess.NoCastle
	}
	if move.To.Col > move.From.Col {
		return chess.KingSide
	}
	return chess.QueenSide
}

// HasCastlingRight reports whether colour can still castle on side at some
// point: king and rook on their home squares, both unmoved.
func HasCastlingRight(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	squares := chess.Castling(colour, side)
	king := board.PieceAt(squares.KingFrom)
	rook := board.PieceAt(squares.RookFrom)
	return king != nil && king.Kind() == chess.King && king.Colour() == colour && !king.HasMoved() &&
		rook != nil && rook.Kind() == chess.Rook && rook.Colour() == colour && !rook.HasMoved()
}
