// Package uci parses move strings supplied by external analysis services:
// coordinate moves ("e2e4", "e7e8q"), engine "bestmove" lines and the JSON
// body returned by an HTTP analysis endpoint.
package uci

import (
	"encoding/json"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ParseMove parses a coordinate move: source square, target square and an
// optional promotion letter (q, r, b or n).
func ParseMove(s string) (chess.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveString,
			Input:    s,
			Expected: "4 or 5 characters",
		}
	}

	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return chess.Move{}, moveParseError(s, "source square", s[0:2])
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.Move{}, moveParseError(s, "target square", s[2:4])
	}

	move := chess.Move{From: from, To: to}
	if len(s) == 5 {
		kind := chess.KindFromLetter(s[4])
		if !kind.IsPromotionChoice() {
			return chess.Move{}, moveParseError(s, "promotion letter q, r, b or n", s[4:])
		}
		move.Promotion = kind
	}
	return move, nil
}

func moveParseError(input, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidMoveString,
		Input:    input,
		Expected: expected,
		Got:      got,
	}
}

// BestMove is a suggested move with the engine's expected reply, if any.
type BestMove struct {
	Move      chess.Move
	Ponder    chess.Move
	HasPonder bool
}

// ParseBestMove parses an engine line such as "bestmove e7e6 ponder b2b3".
// A malformed ponder move is ignored; a malformed best move is an error.
func ParseBestMove(line string) (BestMove, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 || parts[0] != "bestmove" {
		return BestMove{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveString,
			Input:    line,
			Expected: "bestmove <move>",
		}
	}

	move, err := ParseMove(parts[1])
	if err != nil {
		return BestMove{}, err
	}
	best := BestMove{Move: move}

	if len(parts) >= 4 && parts[2] == "ponder" {
		if ponder, err := ParseMove(parts[3]); err == nil {
			best.Ponder = ponder
			best.HasPonder = true
		}
	}
	return best, nil
}

// AnalysisResponse is the JSON body of a stockfish.online style analysis
// endpoint, e.g. {"success":true,"bestmove":"bestmove e7e6 ponder b2b3"}.
type AnalysisResponse struct {
	Success      bool     `json:"success"`
	BestMove     string   `json:"bestmove"`
	Evaluation   *float64 `json:"evaluation,omitempty"`
	Mate         *int     `json:"mate,omitempty"`
	Continuation string   `json:"continuation,omitempty"`
	Data         string   `json:"data,omitempty"`
}

// ParseAnalysisResponse decodes body and extracts the suggested move.
func ParseAnalysisResponse(body []byte) (BestMove, error) {
	var resp AnalysisResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return BestMove{}, &errors.ParseError{
			Err:      errors.Wrap(errors.ErrInvalidMoveString, err.Error()),
			Input:    string(body),
			Expected: "JSON object",
		}
	}
	if !resp.Success {
		return BestMove{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveString,
			Input:    string(body),
			Expected: "success",
			Got:      resp.Data,
		}
	}
	return ParseBestMove(resp.BestMove)
}
