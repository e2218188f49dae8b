// Package output renders matches for people and programs: a coloured text
// board for terminals and a JSON document for tooling.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/match"
)

// ColorMode selects whether the board is drawn with ANSI colours.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a mode name from configuration.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(s)); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

// enabled resolves auto against fatih/color's terminal detection.
func (m ColorMode) enabled() bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

// Theme holds the attributes used for each part of the board.
type Theme struct {
	SquareLight color.Attribute
	SquareDark  color.Attribute
	SquareHint  color.Attribute
	SquareCheck color.Attribute
	White       color.Attribute
	Black       color.Attribute
	Label       color.Attribute
}

// DefaultTheme is a terminal-safe palette.
var DefaultTheme = Theme{
	SquareLight: color.BgWhite,
	SquareDark:  color.BgHiBlack,
	SquareHint:  color.BgGreen,
	SquareCheck: color.BgRed,
	White:       color.FgHiWhite,
	Black:       color.FgBlack,
	Label:       color.FgCyan,
}

// BoardRenderer draws a snapshot as eight ranks with file and rank labels.
// Without colour, each square is its FEN letter ('.' when empty) followed
// by a marker: '*' for a highlighted target, '+' for a king in check.
type BoardRenderer struct {
	theme   Theme
	colored bool
}

// NewBoardRenderer creates a renderer.
func NewBoardRenderer(theme Theme, mode ColorMode) *BoardRenderer {
	return &BoardRenderer{theme: theme, colored: mode.enabled()}
}

// Highlight marks squares on the board.
type Highlight struct {
	Targets engine.MoveGrid
	Check   *chess.Square
}

// HighlightFor builds the highlight for m: the king of the side to move
// when it is in check, plus targets.
func HighlightFor(m *match.Match, targets engine.MoveGrid) Highlight {
	h := Highlight{Targets: targets}
	if !m.Check() {
		return h
	}
	side := m.SideToMove()
	snap := m.Pieces()
	for row := range snap {
		for col := range snap[row] {
			if occ := snap[row][col]; occ.Kind == chess.King && occ.Colour == side {
				sq := chess.Square{Row: row, Col: col}
				h.Check = &sq
			}
		}
	}
	return h
}

// Render writes the board to w.
func (r *BoardRenderer) Render(w io.Writer, snap match.Snapshot, h Highlight) error {
	var sb strings.Builder
	label := r.style(r.theme.Label)

	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteString(label.Sprintf("%d ", chess.BoardSize-row))
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Square{Row: row, Col: col}
			sb.WriteString(r.square(sq, snap.At(sq), h))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		sb.WriteString(label.Sprintf("%c ", 'a'+col))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *BoardRenderer) square(sq chess.Square, occ chess.Occupant, h Highlight) string {
	isCheck := h.Check != nil && *h.Check == sq
	isHint := h.Targets.Has(sq)

	if !r.colored {
		marker := " "
		switch {
		case isCheck:
			marker = "+"
		case isHint:
			marker = "*"
		}
		return string(occ.Letter()) + marker
	}

	bg := r.theme.SquareLight
	if (sq.Row+sq.Col)%2 == 1 {
		bg = r.theme.SquareDark
	}
	switch {
	case isCheck:
		bg = r.theme.SquareCheck
	case isHint:
		bg = r.theme.SquareHint
	}

	if occ.Empty() {
		return r.style(bg).Sprint("  ")
	}
	fg := r.theme.White
	if occ.Colour == chess.Black {
		fg = r.theme.Black
	}
	return r.style(bg, fg).Sprintf("%c ", occ.Letter())
}

func (r *BoardRenderer) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
