package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// PromotionKinds lists the promotion choices in the order moves are
// generated.
var PromotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns the candidate moves of the piece on sq minus those that
// would leave its own king attacked. Each candidate is tried on a scratch
// copy; pos is never modified.
func LegalMoves(pos *Position, sq chess.Square) MoveGrid {
	var legal MoveGrid
	piece := pos.Board.PieceAt(sq)
	if piece == nil {
		return legal
	}

	candidates := CandidateMoves(pos, sq)
	for _, target := range candidates.Squares() {
		if tryMove(pos, chess.Move{From: sq, To: target}, piece.Colour()) {
			legal.Add(target)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *Position, colour chess.Colour) bool {
	for _, piece := range pos.Board.Pieces(colour) {
		sq, _ := piece.Square()
		candidates := CandidateMoves(pos, sq)
		for _, target := range candidates.Squares() {
			if tryMove(pos, chess.Move{From: sq, To: target}, colour) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves lists every legal move for colour. A promoting pawn move is
// expanded into one move per PromotionKinds entry.
func AllLegalMoves(pos *Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, piece := range pos.Board.Pieces(colour) {
		sq, _ := piece.Square()
		grid := LegalMoves(pos, sq)
		for _, target := range grid.Squares() {
			move := chess.Move{From: sq, To: target}
			if IsPromotion(pos.Board, move) {
				for _, kind := range PromotionKinds {
					move.Promotion = kind
					moves = append(moves, move)
				}
				continue
			}
			moves = append(moves, move)
		}
	}
	return moves
}

// tryMove makes the move on a copied position and checks if it leaves the
// mover's king in check. The promotion kind cannot affect king safety, so a
// queen stands in for any choice.
func tryMove(pos *Position, move chess.Move, colour chess.Colour) bool {
	scratch := pos.Clone()
	if IsPromotion(scratch.Board, move) {
		move.Promotion = chess.Queen
	}
	if _, err := ApplyMove(scratch, move); err != nil {
		return false
	}
	return !IsInCheck(scratch.Board, colour)
}
