package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Square is a zero-based grid coordinate. Row 0 is rank 8 and column 0 is
// file a, so "a8" is {0, 0} and "h1" is {7, 7}.
type Square struct {
	Row int
	Col int
}

// NewSquare returns the square at row, col or ErrOutOfBounds.
func NewSquare(row, col int) (Square, error) {
	sq := Square{Row: row, Col: col}
	if !sq.InBounds() {
		return Square{}, fmt.Errorf("row %d, column %d: %w", row, col, errors.ErrOutOfBounds)
	}
	return sq, nil
}

// ParseSquare converts algebraic notation such as "e4" to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrOutOfBounds,
			Input:    s,
			Expected: "file letter and rank digit",
		}
	}
	file, rank := s[0], s[1]
	if file < FirstCol || file > LastCol || rank < FirstRank || rank > LastRank {
		return Square{}, &errors.ParseError{
			Err:   errors.ErrOutOfBounds,
			Input: s,
			Got:   s,
		}
	}
	return Square{Row: BoardSize - int(rank-'0'), Col: int(file - FirstCol)}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// InBounds reports whether the square lies on the board.
func (sq Square) InBounds() bool {
	return sq.Row >= 0 && sq.Row < BoardSize && sq.Col >= 0 && sq.Col < BoardSize
}

// File returns the file letter 'a'..'h'.
func (sq Square) File() byte {
	return byte(FirstCol + sq.Col)
}

// RankNumber returns the rank number 1..8.
func (sq Square) RankNumber() int {
	return BoardSize - sq.Row
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board; check InBounds.
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

// String returns the algebraic name, or "-" for an off-board square.
func (sq Square) String() string {
	if !sq.InBounds() {
		return "-"
	}
	return string([]byte{sq.File(), byte('0' + sq.RankNumber())})
}
