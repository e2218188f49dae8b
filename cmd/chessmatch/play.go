package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/match"
	"github.com/lgbarn/chessmatch-go/internal/output"
	"github.com/lgbarn/chessmatch-go/internal/uci"
)

const playHelp = `Commands:
  <from><to>[q|r|b|n]   make a move, e.g. e2e4 or e7e8n
  moves <square>        show where the piece on square can go
  legal                 list every legal move
  bestmove <m> [ponder <m>]
                        make the move from an engine reply
  analysis <json>       make the move from an analysis service response
  board                 draw the board
  fen                   print the position as FEN
  json                  print the match as JSON
  captured              list captured pieces
  help                  show this help
  quit                  leave
`

// session is one interactive match.
type session struct {
	m      *match.Match
	out    io.Writer
	text   *output.TextWriter
	views  map[string]output.MatchWriter // keyed by command
	logger *slog.Logger
}

func runPlay(cfg *config.Config, logger *slog.Logger, fen string, in io.Reader, out io.Writer) error {
	m, err := newMatch(cfg, logger, fen)
	if err != nil {
		return err
	}
	text := output.NewTextWriter(out, output.NewBoardRenderer(output.DefaultTheme, cfg.ColorMode()))
	s := &session{
		m:    m,
		out:  out,
		text: text,
		views: map[string]output.MatchWriter{
			"board": text,
			"json":  output.NewJSONWriter(out),
		},
		logger: logger.With("match", m.Name()),
	}
	defer s.close()
	s.logger.Info("match started", "fen", m.FEN())

	if err := s.text.WriteMatch(m); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, err := s.handle(line)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	s.logger.Info("match finished", "state", m.State().String(), "turn", m.Turn())
	return nil
}

// handle runs one command line. Move errors are reported to the player;
// only output failures are returned.
func (s *session) handle(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err = io.WriteString(s.out, playHelp)
	case "board", "json":
		err = s.views[fields[0]].WriteMatch(s.m)
	case "fen":
		_, err = fmt.Fprintln(s.out, s.m.FEN())
	case "captured":
		err = s.captured()
	case "legal":
		err = s.legal()
	case "moves":
		if len(fields) != 2 {
			return false, s.report(fmt.Errorf("usage: moves <square>"))
		}
		err = s.moves(fields[1])
	case "bestmove":
		best, perr := uci.ParseBestMove(line)
		if perr != nil {
			return false, s.report(perr)
		}
		err = s.play(best.Move)
	case "analysis":
		best, perr := uci.ParseAnalysisResponse([]byte(strings.TrimSpace(strings.TrimPrefix(line, "analysis"))))
		if perr != nil {
			return false, s.report(perr)
		}
		err = s.play(best.Move)
	default:
		move, perr := uci.ParseMove(fields[0])
		if perr != nil {
			return false, s.report(perr)
		}
		err = s.play(move)
	}
	return false, err
}

func (s *session) play(move chess.Move) error {
	captured, err := s.m.PerformMoveWithPromotion(move.From, move.To, move.Promotion)
	if err != nil {
		return s.report(err)
	}
	if captured != nil {
		if _, err := fmt.Fprintf(s.out, "captured %s %s\n", captured.Colour(), captured.Kind()); err != nil {
			return err
		}
	}
	return s.text.WriteMatch(s.m)
}

func (s *session) moves(name string) error {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return s.report(err)
	}
	grid, err := s.m.PossibleMoves(sq)
	if err != nil {
		return s.report(err)
	}
	if err := s.text.WriteMatchWithTargets(s.m, output.HighlightFor(s.m, grid)); err != nil {
		return err
	}

	targets := grid.Squares()
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.String())
	}
	if len(names) == 0 {
		_, err = fmt.Fprintf(s.out, "%s has no moves\n", name)
		return err
	}
	_, err = fmt.Fprintf(s.out, "%s: %s\n", name, strings.Join(names, " "))
	return err
}

func (s *session) legal() error {
	moves := s.m.LegalMoves()
	names := make([]string, 0, len(moves))
	for _, mv := range moves {
		names = append(names, mv.String())
	}
	_, err := fmt.Fprintf(s.out, "%d legal moves: %s\n", len(names), strings.Join(names, " "))
	return err
}

func (s *session) captured() error {
	pieces := s.m.CapturedPieces()
	if len(pieces) == 0 {
		_, err := fmt.Fprintln(s.out, "no captures")
		return err
	}
	letters := make([]string, 0, len(pieces))
	for i := range pieces {
		letters = append(letters, string(pieces[i].Letter()))
	}
	_, err := fmt.Fprintf(s.out, "captured: %s\n", strings.Join(letters, " "))
	return err
}

func (s *session) close() {
	for name, w := range s.views {
		if err := w.Close(); err != nil {
			s.logger.Warn("closing output", "view", name, "err", err)
		}
	}
}

// report tells the player why a command failed.
func (s *session) report(err error) error {
	s.logger.Debug("command rejected", "err", err)
	_, werr := fmt.Fprintf(s.out, "error: %v\n", err)
	return werr
}
