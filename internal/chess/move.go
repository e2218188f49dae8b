package chess

import "strings"

// Move is a request to move the piece on From to To. Promotion is only
// meaningful for a pawn reaching the farthest rank; NoKind leaves the choice
// to the caller's default.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != NoKind {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// CastleSide identifies the two castling directions.
type CastleSide int

const (
	NoCastle CastleSide = iota
	KingSide
	QueenSide
)

// String returns the conventional notation for the side.
func (s CastleSide) String() string {
	switch s {
	case KingSide:
		return "O-O"
	case QueenSide:
		return "O-O-O"
	default:
		return ""
	}
}

// CastleSquares describes the squares involved in castling on one side.
type CastleSquares struct {
	KingFrom Square
	KingTo   Square
	RookFrom Square
	RookTo   Square
}

// Castling returns the king and rook squares for colour castling on side.
func Castling(colour Colour, side CastleSide) CastleSquares {
	row := HomeRow(colour)
	if side == KingSide {
		return CastleSquares{
			KingFrom: Square{row, 4},
			KingTo:   Square{row, 6},
			RookFrom: Square{row, 7},
			RookTo:   Square{row, 5},
		}
	}
	return CastleSquares{
		KingFrom: Square{row, 4},
		KingTo:   Square{row, 2},
		RookFrom: Square{row, 0},
		RookTo:   Square{row, 3},
	}
}
