package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a8", Square{0, 0}},
		{"h8", Square{0, 7}},
		{"a1", Square{7, 0}},
		{"h1", Square{7, 7}},
		{"e2", Square{6, 4}},
		{"e4", Square{4, 4}},
		{"d5", Square{3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
			if s := got.String(); s != tt.in {
				t.Errorf("String() = %q; want %q", s, tt.in)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, in := range []string{"", "e", "e22", "i1", "a0", "a9", "E2", "2e", "  "} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSquare(in)
			if !errors.Is(err, chesserrors.ErrOutOfBounds) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrOutOfBounds", in, err)
			}
			var pe *chesserrors.ParseError
			if !errors.As(err, &pe) {
				t.Errorf("ParseSquare(%q) error is not a ParseError", in)
			}
		})
	}
}

func TestNewSquare(t *testing.T) {
	if _, err := NewSquare(7, 7); err != nil {
		t.Errorf("NewSquare(7, 7) error = %v", err)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, err := NewSquare(rc[0], rc[1]); !errors.Is(err, chesserrors.ErrOutOfBounds) {
			t.Errorf("NewSquare(%d, %d) error = %v; want ErrOutOfBounds", rc[0], rc[1], err)
		}
	}
}

// TestSquareBijection checks every coordinate round-trips through algebraic notation.
func TestSquareBijection(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := Square{row, col}
			back, err := ParseSquare(sq.String())
			if err != nil || back != sq {
				t.Errorf("ParseSquare(%q) = %+v, %v; want %+v", sq.String(), back, err, sq)
			}
			if sq.RankNumber() != 8-row {
				t.Errorf("RankNumber(%+v) = %d; want %d", sq, sq.RankNumber(), 8-row)
			}
		}
	}
}

func TestSquareOffset(t *testing.T) {
	e4 := MustParseSquare("e4")
	if got := e4.Offset(-1, 1); got != MustParseSquare("f5") {
		t.Errorf("e4.Offset(-1, 1) = %s; want f5", got)
	}
	if got := MustParseSquare("h1").Offset(0, 1); got.InBounds() {
		t.Errorf("h1.Offset(0, 1) = %+v; want off board", got)
	}
	if got := (Square{9, 9}).String(); got != "-" {
		t.Errorf("off-board String() = %q; want -", got)
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q, %q", White.String(), Black.String())
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d, %d; want -1, 1", White.Forward(), Black.Forward())
	}
	if PawnRow(White) != 6 || PawnRow(Black) != 1 {
		t.Errorf("PawnRow() = %d, %d; want 6, 1", PawnRow(White), PawnRow(Black))
	}
	if PromotionRow(White) != 0 || PromotionRow(Black) != 7 {
		t.Errorf("PromotionRow() = %d, %d; want 0, 7", PromotionRow(White), PromotionRow(Black))
	}
}

func TestKindLetters(t *testing.T) {
	for k := Pawn; k < NumKinds; k++ {
		if got := KindFromLetter(k.Letter()); got != k {
			t.Errorf("KindFromLetter(%c) = %v; want %v", k.Letter(), got, k)
		}
		lower := k.Letter() + ('a' - 'A')
		if got := KindFromLetter(lower); got != k {
			t.Errorf("KindFromLetter(%c) = %v; want %v", lower, got, k)
		}
	}
	if KindFromLetter('x') != NoKind {
		t.Error("KindFromLetter('x') != NoKind")
	}
	if Kind(42).String() != "Unknown" || Kind(42).Letter() != '?' {
		t.Error("out-of-range kind not reported as unknown")
	}
}

func TestIsPromotionChoice(t *testing.T) {
	want := map[Kind]bool{Queen: true, Rook: true, Bishop: true, Knight: true}
	for k := NoKind; k < NumKinds; k++ {
		if got := k.IsPromotionChoice(); got != want[k] {
			t.Errorf("%v.IsPromotionChoice() = %v; want %v", k, got, want[k])
		}
	}
}

func TestPieceLetterAndPromote(t *testing.T) {
	p := NewPiece(Pawn, Black)
	if p.String() != "p" {
		t.Errorf("String() = %q; want p", p.String())
	}
	p.RecordMove()
	p.RecordMove()
	q := p.Promote(Queen)
	if q.Kind() != Queen || q.Colour() != Black || q.MoveCount() != 2 {
		t.Errorf("Promote() = %v %v count %d; want Black Queen count 2", q.Colour(), q.Kind(), q.MoveCount())
	}
	if _, ok := q.Square(); ok {
		t.Error("promoted piece should start unplaced")
	}
	if NewPiece(Knight, White).Letter() != 'N' {
		t.Error("white knight letter != N")
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: MustParseSquare("e2"), To: MustParseSquare("e4")}, "e2e4"},
		{Move{From: MustParseSquare("e7"), To: MustParseSquare("e8"), Promotion: Queen}, "e7e8q"},
		{Move{From: MustParseSquare("b2"), To: MustParseSquare("a1"), Promotion: Knight}, "b2a1n"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestCastling(t *testing.T) {
	ks := Castling(White, KingSide)
	if ks.KingFrom.String() != "e1" || ks.KingTo.String() != "g1" || ks.RookFrom.String() != "h1" || ks.RookTo.String() != "f1" {
		t.Errorf("Castling(White, KingSide) = %+v", ks)
	}
	qs := Castling(Black, QueenSide)
	if qs.KingFrom.String() != "e8" || qs.KingTo.String() != "c8" || qs.RookFrom.String() != "a8" || qs.RookTo.String() != "d8" {
		t.Errorf("Castling(Black, QueenSide) = %+v", qs)
	}
	if KingSide.String() != "O-O" || QueenSide.String() != "O-O-O" || NoCastle.String() != "" {
		t.Error("CastleSide.String() mismatch")
	}
}
