package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/match"
)

// MatchWriter is the interface for writing matches to output.
type MatchWriter interface {
	// WriteMatch writes the current state of a match.
	WriteMatch(m *match.Match) error

	// Close releases the writer. Nothing may be written afterwards.
	Close() error
}

// TextWriter draws the board followed by a one-line status.
type TextWriter struct {
	w        io.Writer
	renderer *BoardRenderer
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer, renderer *BoardRenderer) *TextWriter {
	return &TextWriter{w: w, renderer: renderer}
}

// WriteMatch writes the board and status line.
func (tw *TextWriter) WriteMatch(m *match.Match) error {
	return tw.WriteMatchWithTargets(m, HighlightFor(m, engine.MoveGrid{}))
}

// WriteMatchWithTargets writes the board with h highlighted, as shown after
// the player selects a piece.
func (tw *TextWriter) WriteMatchWithTargets(m *match.Match, h Highlight) error {
	if err := tw.renderer.Render(tw.w, m.Pieces(), h); err != nil {
		return err
	}
	_, err := io.WriteString(tw.w, StatusLine(m)+"\n")
	return err
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// StatusLine summarizes whose turn it is and the match state.
func StatusLine(m *match.Match) string {
	switch m.State() {
	case match.Checkmate:
		return fmt.Sprintf("checkmate: %s wins", m.CurrentPlayer())
	case match.Stalemate:
		return "stalemate"
	case match.Check:
		return fmt.Sprintf("turn %d: %s to move, in check", m.Turn(), m.CurrentPlayer())
	default:
		return fmt.Sprintf("turn %d: %s to move", m.Turn(), m.CurrentPlayer())
	}
}

// JSONWriter writes one indented JSON document per match.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteMatch converts and writes the match as it stands now.
func (jw *JSONWriter) WriteMatch(m *match.Match) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(MatchToJSON(m))
}

// Close closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return nil
}
