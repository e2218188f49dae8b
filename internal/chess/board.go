package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Board is an 8x8 grid of optional pieces. It owns the pieces placed on it
// and keeps each piece's stored square in sync with its slot. Board knows
// nothing about chess rules.
type Board struct {
	// squares[row][col]; row 0 is rank 8.
	squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard creates a board holding the standard starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank is the standard piece order from file a to file h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition clears the board and sets up the standard chess
// starting position with fresh pieces.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]*Piece{}

	for col := 0; col < BoardSize; col++ {
		for _, colour := range []Colour{White, Black} {
			b.put(NewPiece(backRank[col], colour), Square{HomeRow(colour), col})
			b.put(NewPiece(Pawn, colour), Square{PawnRow(colour), col})
		}
	}
}

// InBounds reports whether sq lies on the board.
func (b *Board) InBounds(sq Square) bool {
	return sq.InBounds()
}

// Place puts piece on sq and records the square on the piece.
// It fails if sq is off the board or already occupied.
func (b *Board) Place(piece *Piece, sq Square) error {
	if !sq.InBounds() {
		return fmt.Errorf("place on %d,%d: %w", sq.Row, sq.Col, errors.ErrOutOfBounds)
	}
	if b.squares[sq.Row][sq.Col] != nil {
		return fmt.Errorf("place on %s: %w", sq, errors.ErrSquareOccupied)
	}
	b.put(piece, sq)
	return nil
}

// put places without checks; callers guarantee sq is valid and empty.
func (b *Board) put(piece *Piece, sq Square) {
	b.squares[sq.Row][sq.Col] = piece
	piece.square = sq
	piece.placed = true
}

// Remove takes the piece off sq and returns it, or nil if sq is empty or
// off the board. The removed piece no longer has a square.
func (b *Board) Remove(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	piece := b.squares[sq.Row][sq.Col]
	if piece == nil {
		return nil
	}
	b.squares[sq.Row][sq.Col] = nil
	piece.placed = false
	return piece
}

// PieceAt returns the piece on sq, or nil if sq is empty or off the board.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.squares[sq.Row][sq.Col]
}

// IsOccupied reports whether a piece stands on sq.
func (b *Board) IsOccupied(sq Square) bool {
	return b.PieceAt(sq) != nil
}

// Pieces returns the pieces of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var pieces []*Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.squares[row][col] != nil {
				n++
			}
		}
	}
	return n
}

// FindKing returns the square of colour's king and whether one was found.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.kind == King && p.colour == colour {
				return Square{row, col}, true
			}
		}
	}
	return Square{}, false
}

// Occupants returns an immutable snapshot of the board indexed [row][col].
func (b *Board) Occupants() [BoardSize][BoardSize]Occupant {
	var out [BoardSize][BoardSize]Occupant
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				out[row][col] = p.Occupant()
			}
		}
	}
	return out
}

// Copy creates a deep copy of the board. The copy owns fresh pieces with the
// same kinds, colours, squares and move counts.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				newBoard.squares[row][col] = p.clone()
			}
		}
	}
	return newBoard
}
