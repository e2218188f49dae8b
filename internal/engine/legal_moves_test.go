package engine

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func legalNames(t *testing.T, pos *Position, sq string) []string {
	t.Helper()
	grid := LegalMoves(pos, testutil.Square(t, sq))
	return testutil.Names(grid.Squares())
}

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   string
	}{
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", ""},
		{"pinned rook slides along pin", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", "e2", "e3 e4 e5 e6 e7"},
		{"king avoids attacked rank", "4k3/8/8/8/8/8/r7/4K3 w - - 0 1", "e1", "d1 f1"},
		{"king escapes along checking line", "4k3/8/8/8/8/8/8/r3K2R w K - 0 1", "e1", "d2 e2 f2"},
		{"rook cannot resolve check", "4k3/8/8/8/8/8/8/r3K2R w K - 0 1", "h1", ""},
		{"knight blocks check", "4k3/8/8/8/8/8/3N4/r3K3 w - - 0 1", "d2", "b1"},
		{"en passant exposing king", "8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 1", "e5", "e6"},
		{"king captures checking queen", "4k3/8/8/8/8/8/3q4/4KP2 w - - 0 1", "e1", "d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _ := mustDecode(t, tt.fen)
			testutil.AssertEqual(t, legalNames(t, pos, tt.square), testutil.SplitNames(tt.want))
		})
	}
}

func TestLegalMoves_DoesNotMutate(t *testing.T) {
	pos, _ := mustDecode(t, "r3k2r/8/8/8/4pP2/8/8/R3K2R b KQkq f3 0 1")
	before := EncodeFEN(pos, chess.Black)

	for _, piece := range pos.Board.Pieces(chess.Black) {
		sq, _ := piece.Square()
		first := LegalMoves(pos, sq)
		second := LegalMoves(pos, sq)
		if first != second {
			t.Errorf("LegalMoves(%s) changed between calls", sq)
		}
	}
	if after := EncodeFEN(pos, chess.Black); after != before {
		t.Errorf("position changed: %s -> %s", before, after)
	}
}

func TestCastlingCandidates(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		setup func(pos *Position)
		want  string
	}{
		{
			name: "both sides available",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			want: "c1 d1 d2 e2 f1 f2 g1",
		},
		{
			name: "transit square attacked",
			fen:  "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			want: "c1 d1 d2 e2",
		},
		{
			name: "landing square attacked",
			fen:  "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			want: "c1 d1 d2 e2 f1 f2",
		},
		{
			name: "queen side b-file attack does not matter",
			fen:  "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			want: "c1 d1 d2 e2 f1 f2 g1",
		},
		{
			name: "in check",
			fen:  "4r1k1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			want: "d1 d2 f1 f2",
		},
		{
			name: "pieces in between",
			fen:  "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1",
			want: "d1 d2 e2 f1 f2",
		},
		{
			name: "king has moved",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			setup: func(pos *Position) {
				pos.Board.PieceAt(chess.Square{Row: 7, Col: 4}).RecordMove()
			},
			want: "d1 d2 e2 f1 f2",
		},
		{
			name: "king-side rook has moved",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			setup: func(pos *Position) {
				pos.Board.PieceAt(chess.Square{Row: 7, Col: 7}).RecordMove()
			},
			want: "c1 d1 d2 e2 f1 f2",
		},
		{
			name: "rights removed by FEN",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w Q - 0 1",
			want: "c1 d1 d2 e2 f1 f2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _ := mustDecode(t, tt.fen)
			if tt.setup != nil {
				tt.setup(pos)
			}
			testutil.AssertEqual(t, legalNames(t, pos, "e1"), testutil.SplitNames(tt.want))
		})
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		colour    chess.Colour
		want      bool
		checkmate bool
		stalemate bool
	}{
		{"initial position", InitialFEN, chess.White, true, false, false},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.Black, false, true, false},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, false, false, true},
		{"check with escape square", "R5k1/5pp1/8/8/8/8/8/6K1 b - - 0 1", chess.Black, true, false, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1", chess.White, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _ := mustDecode(t, tt.fen)
			if got := HasLegalMoves(pos, tt.colour); got != tt.want {
				t.Errorf("HasLegalMoves() = %v; want %v", got, tt.want)
			}
			got := Evaluate(pos, tt.colour)
			if got.Checkmate != tt.checkmate || got.Stalemate != tt.stalemate {
				t.Errorf("Evaluate() = %+v; want checkmate=%v stalemate=%v", got, tt.checkmate, tt.stalemate)
			}
			testutil.AssertEqual(t, got.Terminal(), !tt.want)
		})
	}
}

func TestAllLegalMoves_Promotion(t *testing.T) {
	pos, _ := mustDecode(t, "3r3k/4P3/8/8/8/8/8/K7 w - - 0 1")

	var got []string
	for _, m := range AllLegalMoves(pos, chess.White) {
		if m.From == testutil.Square(t, "e7") {
			got = append(got, m.String())
		}
	}
	want := []string{
		"e7d8q", "e7d8r", "e7d8b", "e7d8n",
		"e7e8q", "e7e8r", "e7e8b", "e7e8n",
	}
	testutil.AssertEqual(t, got, want)
}

func TestAllLegalMoves_InitialPosition(t *testing.T) {
	moves := AllLegalMoves(NewStandardPosition(), chess.White)
	if len(moves) != 20 {
		t.Errorf("len(AllLegalMoves()) = %d; want 20", len(moves))
	}
}
