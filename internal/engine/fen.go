package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenClocks are written verbatim; the core does not track the halfmove clock
// or the fullmove number.
const fenClocks = "0 1"

// EncodeFEN renders the position with toMove as the active colour.
func EncodeFEN(pos *Position, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.Board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(fenClocks)

	return sb.String()
}

// writePiecePositions writes the piece placement, rank 8 first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.PieceAt(chess.Square{Row: row, Col: col})
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes KQkq for each king and rook pair still on its
// home squares with zero moves, or '-'.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	rights := []struct {
		colour chess.Colour
		side   chess.CastleSide
		letter byte
	}{
		{chess.White, chess.KingSide, 'K'},
		{chess.White, chess.QueenSide, 'Q'},
		{chess.Black, chess.KingSide, 'k'},
		{chess.Black, chess.QueenSide, 'q'},
	}

	hasCastling := false
	for _, r := range rights {
		if HasCastlingRight(board, r.colour, r.side) {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind the vulnerable pawn, or '-'.
func writeEnPassant(sb *strings.Builder, pos *Position) {
	if target, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
}

// DecodeFEN builds a position from a FEN string for setting up scenarios.
// Only the placement field is required. Castling rights absent from the
// castling field are expressed by marking the home king or rook as moved,
// and an en passant target marks the pawn in front of it as vulnerable.
// Clock fields are ignored.
func DecodeFEN(fen string) (*Position, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := DecodePlacement(parts[0])
	if err != nil {
		return nil, chess.White, err
	}
	pos := NewPosition(board)

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, chess.White, err
	}
	return pos, toMove, nil
}

// DecodePlacement parses the piece placement field of a FEN string into a
// board of unmoved pieces.
func DecodePlacement(placement string) (*chess.Board, error) {
	board := chess.NewBoard()
	row, col := 0, 0

	for _, c := range placement {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return nil, fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if err := board.Place(chess.NewPiece(kind, colour), chess.Square{Row: row, Col: col}); err != nil {
				return nil, fmt.Errorf("piece %c: %w: %w", c, err, errors.ErrInvalidFEN)
			}
			col++
		}
		if col > chess.BoardSize {
			return nil, fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
		}
	}
	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return nil, fmt.Errorf("placement %q is incomplete: %w", placement, errors.ErrInvalidFEN)
	}
	return board, nil
}

func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights marks home kings and rooks as moved when the matching
// right is missing. A missing field leaves every right implied by placement.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 {
		return nil
	}
	field := parts[2]
	if field != "-" {
		for _, c := range field {
			if !strings.ContainsRune("KQkq", c) {
				return fmt.Errorf("invalid castling field: %s: %w", field, errors.ErrInvalidFEN)
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kingSide := rightLetter(colour, chess.KingSide)
		queenSide := rightLetter(colour, chess.QueenSide)
		hasKing := strings.ContainsRune(field, kingSide)
		hasQueen := strings.ContainsRune(field, queenSide)

		if !hasKing {
			markMoved(board, chess.Castling(colour, chess.KingSide).RookFrom, chess.Rook, colour)
		}
		if !hasQueen {
			markMoved(board, chess.Castling(colour, chess.QueenSide).RookFrom, chess.Rook, colour)
		}
		if !hasKing && !hasQueen {
			markMoved(board, chess.Castling(colour, chess.KingSide).KingFrom, chess.King, colour)
		}
	}
	return nil
}

func rightLetter(colour chess.Colour, side chess.CastleSide) rune {
	letter := 'K'
	if side == chess.QueenSide {
		letter = 'Q'
	}
	if colour == chess.Black {
		letter = unicode.ToLower(letter)
	}
	return letter
}

func markMoved(board *chess.Board, sq chess.Square, kind chess.Kind, colour chess.Colour) {
	if p := board.PieceAt(sq); p != nil && p.Kind() == kind && p.Colour() == colour && !p.HasMoved() {
		p.RecordMove()
	}
}

// parseEnPassant sets the vulnerable pawn from the en passant target field.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square: %w: %w", err, errors.ErrInvalidFEN)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		pawnSq := target.Offset(colour.Forward(), 0)
		if pawn := pos.Board.PieceAt(pawnSq); pawn != nil && pawn.Kind() == chess.Pawn && pawn.Colour() == colour &&
			target.Row == chess.PawnRow(colour)+colour.Forward() {
			pawn.RecordMove()
			pos.EnPassant = pawn
			return nil
		}
	}
	return fmt.Errorf("no pawn behind en passant square %s: %w", parts[3], errors.ErrInvalidFEN)
}
