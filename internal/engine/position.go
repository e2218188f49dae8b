// Package engine implements the chess rules on top of the chess package:
// candidate move generation per piece kind, attack and check detection, the
// self-check legality filter, move execution and FEN encoding.
package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Position is a board plus the per-ply state the rules need beyond piece
// placement. Castling eligibility is derived from piece move counters, so the
// only extra state is the pawn that may be captured en passant.
type Position struct {
	Board *chess.Board

	// EnPassant is the pawn that made a two-square advance on the previous
	// ply, or nil.
	EnPassant *chess.Piece
}

// NewPosition wraps board with no en passant pawn.
func NewPosition(board *chess.Board) *Position {
	return &Position{Board: board}
}

// NewStandardPosition returns the standard starting position.
func NewStandardPosition() *Position {
	return NewPosition(chess.NewStandardBoard())
}

// Clone returns a deep copy. The en passant reference is remapped to the
// corresponding pawn on the copied board.
func (p *Position) Clone() *Position {
	clone := &Position{Board: p.Board.Copy()}
	if p.EnPassant != nil {
		if sq, ok := p.EnPassant.Square(); ok {
			clone.EnPassant = clone.Board.PieceAt(sq)
		}
	}
	return clone
}

// EnPassantTarget returns the square a capturing pawn would land on, i.e.
// the square the vulnerable pawn skipped over.
func (p *Position) EnPassantTarget() (chess.Square, bool) {
	if p.EnPassant == nil {
		return chess.Square{}, false
	}
	sq, ok := p.EnPassant.Square()
	if !ok {
		return chess.Square{}, false
	}
	return sq.Offset(-p.EnPassant.Colour().Forward(), 0), true
}
