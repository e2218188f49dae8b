// Package perft counts the leaf nodes of the legal move tree. The counts
// are well known for standard test positions, which makes perft the usual
// end-to-end check of a move generator.
package perft

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/match"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// Option configures Divide.
type Option func(*settings)

type settings struct {
	workers int
	logger  *slog.Logger
	table   *hashing.Table
}

// WithWorkers sets how many root moves are searched in parallel.
func WithWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

// WithLogger sets the logger for per-move progress.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTable shares a transposition table between searches. Subtrees of
// positions already counted at the same depth are not searched again.
func WithTable(table *hashing.Table) Option {
	return func(s *settings) {
		s.table = table
	}
}

// Count returns the number of leaf nodes depth plies below m. m itself is
// not modified. Only WithTable applies; Count is always sequential.
func Count(m *match.Match, depth int, opts ...Option) (uint64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("perft depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return count(m, depth, s.table)
}

func count(m *match.Match, depth int, table *hashing.Table) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	moves := m.LegalMoves()
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var hash uint64
	if table != nil {
		hash = m.Hash()
		if n, ok := table.Get(hash, depth); ok {
			return n, nil
		}
	}

	var nodes uint64
	for _, mv := range moves {
		child := m.Clone()
		if _, err := child.PerformMoveWithPromotion(mv.From, mv.To, mv.Promotion); err != nil {
			return 0, fmt.Errorf("perft %s: %w", mv, err)
		}
		n, err := count(child, depth-1, table)
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	if table != nil {
		table.Put(hash, depth, nodes)
	}
	return nodes, nil
}

type rootItem struct {
	move  chess.Move
	match *match.Match
	depth int
}

type rootResult struct {
	MoveCount
	err error
}

// Divide counts the nodes below each legal root move, sorted by move. Root
// moves are spread over a worker pool; each item owns its own clone of m.
func Divide(ctx context.Context, m *match.Match, depth int, opts ...Option) ([]MoveCount, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft divide depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	s := settings{workers: 1, logger: slog.Default().With("package", "perft")}
	for _, opt := range opts {
		opt(&s)
	}

	moves := m.LegalMoves()
	pool := worker.NewPool(func(item rootItem) rootResult {
		res := rootResult{MoveCount: MoveCount{Move: item.move}}
		if _, err := item.match.PerformMoveWithPromotion(item.move.From, item.move.To, item.move.Promotion); err != nil {
			res.err = fmt.Errorf("perft %s: %w", item.move, err)
			return res
		}
		res.Nodes, res.err = count(item.match, item.depth-1, s.table)
		return res
	}, worker.WithWorkers(s.workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()
	s.logger.Debug("divide started", "depth", depth, "root_moves", len(moves), "workers", pool.NumWorkers())

	go func() {
		for _, mv := range moves {
			pool.Submit(rootItem{move: mv, match: m.Clone(), depth: depth})
		}
		pool.Close()
	}()

	counts := make([]MoveCount, 0, len(moves))
	var firstErr error
	for res := range pool.Results() {
		if ctx.Err() != nil {
			pool.Stop()
			continue
		}
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			pool.Stop()
			continue
		}
		s.logger.Debug("root move counted", "move", res.Move.String(), "nodes", res.Nodes)
		counts = append(counts, res.MoveCount)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Move.String() < counts[j].Move.String()
	})
	return counts, nil
}

// Total sums the counts returned by Divide.
func Total(counts []MoveCount) uint64 {
	var total uint64
	for _, c := range counts {
		total += c.Nodes
	}
	return total
}
