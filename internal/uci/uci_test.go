package uci

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want string
		kind chess.Kind
	}{
		{"e2e4", "e2e4", chess.NoKind},
		{"a7a8q", "a7a8q", chess.Queen},
		{"h2h1n", "h2h1n", chess.Knight},
		{"b7c8R", "b7c8r", chess.Rook},
		{" g1f3\n", "g1f3", chess.NoKind},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.String(), tt.want)
			testutil.AssertEqual(t, got.Promotion, tt.kind)
		})
	}
}

func TestParseMove_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "e2e"},
		{"too long", "e2e4qq"},
		{"bad source", "z2e4"},
		{"bad target", "e2e9"},
		{"king promotion", "e7e8k"},
		{"pawn promotion", "e7e8p"},
		{"not a letter", "e7e81"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMove(tt.in)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMoveString)

			var pe *chesserrors.ParseError
			testutil.AssertTrue(t, errors.As(err, &pe), "error should be a ParseError")
		})
	}
}

func TestParseBestMove(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		move      string
		ponder    string
		hasPonder bool
	}{
		{"with ponder", "bestmove e7e6 ponder b2b3", "e7e6", "b2b3", true},
		{"without ponder", "bestmove e2e4", "e2e4", "", false},
		{"promotion", "bestmove a2a1q ponder h7h8n", "a2a1q", "h7h8n", true},
		{"malformed ponder ignored", "bestmove d2d4 ponder xyz", "d2d4", "", false},
		{"extra whitespace", "  bestmove   g8f6 ", "g8f6", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBestMove(tt.line)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.Move.String(), tt.move)
			testutil.AssertEqual(t, got.HasPonder, tt.hasPonder)
			if tt.hasPonder {
				testutil.AssertEqual(t, got.Ponder.String(), tt.ponder)
			}
		})
	}
}

func TestParseBestMove_Invalid(t *testing.T) {
	for _, line := range []string{"", "bestmove", "bestmove (none)", "info depth 10", "e2e4"} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseBestMove(line)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMoveString)
		})
	}
}

func TestParseAnalysisResponse(t *testing.T) {
	body := []byte(`{"success":true,"evaluation":0.24,"mate":null,"bestmove":"bestmove e7e6 ponder b2b3","continuation":"e7e6 b2b3"}`)

	got, err := ParseAnalysisResponse(body)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Move.String(), "e7e6")
	testutil.AssertTrue(t, got.HasPonder)
	testutil.AssertEqual(t, got.Ponder.String(), "b2b3")
}

func TestParseAnalysisResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `bestmove e2e4`},
		{"failure", `{"success":false,"data":"Invalid fen"}`},
		{"missing move", `{"success":true}`},
		{"bad move", `{"success":true,"bestmove":"bestmove e9e4"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnalysisResponse([]byte(tt.body))
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMoveString)
		})
	}
}
