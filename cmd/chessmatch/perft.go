package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/perft"
)

// runPerft prints the divide table in the usual "move: nodes" form. An
// optional first argument overrides --perft.depth; the rest is a FEN.
func runPerft(cfg *config.Config, logger *slog.Logger, args []string, out io.Writer) error {
	depth := cfg.Perft.Depth
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			if n < 1 {
				return fmt.Errorf("perft depth %d: %w", n, errors.ErrInvalidConfig)
			}
			depth = n
			args = args[1:]
		}
	}

	m, err := newMatch(cfg, logger, strings.Join(args, " "))
	if err != nil {
		return err
	}

	opts := []perft.Option{
		perft.WithWorkers(cfg.Perft.Workers),
		perft.WithLogger(logger.With("package", "perft")),
	}
	var table *hashing.Table
	if cfg.Perft.TableSize > 0 {
		table = hashing.NewTable(cfg.Perft.TableSize)
		opts = append(opts, perft.WithTable(table))
	}

	start := time.Now()
	counts, err := perft.Divide(context.Background(), m, depth, opts...)
	if err != nil {
		return err
	}
	total := perft.Total(counts)
	attrs := []any{"fen", m.FEN(), "depth", depth, "nodes", total, "elapsed", time.Since(start)}
	if table != nil {
		hits, misses := table.Stats()
		attrs = append(attrs, "table_hits", hits, "table_misses", misses,
			"table_entries", table.Len(), "table_full", table.IsFull())
	}
	logger.Info("perft finished", attrs...)

	for _, c := range counts {
		if _, err := fmt.Fprintf(out, "%s: %d\n", c.Move, c.Nodes); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "\nNodes searched: %d\n", total)
	return err
}
