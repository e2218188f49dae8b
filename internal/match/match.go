// Package match implements the match orchestrator: it owns the board and
// turn state, validates and executes moves, and tracks check, checkmate and
// stalemate. It is the only mutating entry point into a game.
//
// A Match is not safe for concurrent use; callers serialize PerformMove.
package match

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/uci"
)

// DefaultPromotion is the piece a pawn becomes when the caller does not
// choose one.
const DefaultPromotion = chess.Queen

// DefaultMoveCacheSize is the number of legality grids memoized per match.
const DefaultMoveCacheSize = 32

// State is the match state machine. Check is a sub-state of a game in
// progress; Checkmate and Stalemate are terminal.
type State int

const (
	InProgress State = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s State) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// Match holds one game.
type Match struct {
	pos *engine.Position

	turn    int
	current chess.Colour
	// toMove differs from current only after a terminal move, where the
	// player flag stays with the side that delivered mate or stalemate.
	toMove chess.Colour

	check     bool
	checkmate bool
	stalemate bool

	captured []*chess.Piece
	lastMove *chess.Move

	name             string
	logger           *slog.Logger
	cacheSize        int
	grids            *lru.Cache[chess.Square, engine.MoveGrid]
	defaultPromotion chess.Kind
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger for accepted moves and state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Match) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMoveCacheSize sets how many PossibleMoves grids are memoized.
// Zero disables the cache.
func WithMoveCacheSize(n int) Option {
	return func(m *Match) {
		m.cacheSize = n
	}
}

// WithDefaultPromotion sets the promotion used when a move names none.
func WithDefaultPromotion(kind chess.Kind) Option {
	return func(m *Match) {
		m.defaultPromotion = kind
	}
}

// WithName labels the match in log output.
func WithName(name string) Option {
	return func(m *Match) {
		m.name = name
	}
}

// New creates a match in the standard starting position with White to move.
func New(opts ...Option) (*Match, error) {
	return NewFromPosition(engine.NewStandardPosition(), chess.White, opts...)
}

// NewFromBoard creates a match from a caller-built board with toMove to
// play. Check and terminal flags are computed for toMove.
func NewFromBoard(board *chess.Board, toMove chess.Colour, opts ...Option) (*Match, error) {
	return NewFromPosition(engine.NewPosition(board), toMove, opts...)
}

// NewFromFEN creates a match from a FEN string.
func NewFromFEN(fen string, opts ...Option) (*Match, error) {
	pos, toMove, err := engine.DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewFromPosition(pos, toMove, opts...)
}

// NewFromPosition creates a match that takes ownership of pos.
func NewFromPosition(pos *engine.Position, toMove chess.Colour, opts ...Option) (*Match, error) {
	m := &Match{
		pos:              pos,
		turn:             1,
		current:          toMove,
		toMove:           toMove,
		logger:           slog.Default().With("package", "match"),
		cacheSize:        DefaultMoveCacheSize,
		defaultPromotion: DefaultPromotion,
	}
	for _, opt := range opts {
		opt(m)
	}

	if !m.defaultPromotion.IsPromotionChoice() {
		return nil, fmt.Errorf("default promotion %v: %w", m.defaultPromotion, errors.ErrInvalidPromotionChoice)
	}
	if m.cacheSize < 0 {
		return nil, fmt.Errorf("move cache size %d: %w", m.cacheSize, errors.ErrInvalidConfig)
	}
	grids, err := newGridCache(m.cacheSize)
	if err != nil {
		return nil, err
	}
	m.grids = grids
	if m.name != "" {
		m.logger = m.logger.With("match", m.name)
	}

	m.updateStatus(toMove)
	if m.State().Terminal() {
		// The side that cannot move did not make the final move.
		m.current = toMove.Opposite()
	}
	m.logger.Debug("match created", "fen", m.FEN(), "pieces", pos.Board.Count(), "state", m.State().String())
	return m, nil
}

// newGridCache returns nil when size is zero, which disables memoization.
func newGridCache(size int) (*lru.Cache[chess.Square, engine.MoveGrid], error) {
	if size == 0 {
		return nil, nil
	}
	cache, err := lru.New[chess.Square, engine.MoveGrid](size)
	if err != nil {
		return nil, fmt.Errorf("move cache: %w", err)
	}
	return cache, nil
}

// updateStatus recomputes the check and terminal flags for colour, the side
// about to move.
func (m *Match) updateStatus(colour chess.Colour) {
	status := engine.Evaluate(m.pos, colour)
	m.check = status.Check
	m.checkmate = status.Checkmate
	m.stalemate = status.Stalemate
}

// Name returns the match label, possibly empty.
func (m *Match) Name() string {
	return m.name
}

// Turn returns the ply counter, starting at 1.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentPlayer returns the colour whose move it is. After checkmate or
// stalemate it stays with the side that made the final move.
func (m *Match) CurrentPlayer() chess.Colour {
	return m.current
}

// SideToMove returns the colour that would move next on the board. It
// differs from CurrentPlayer only once the match is over.
func (m *Match) SideToMove() chess.Colour {
	return m.toMove
}

// Check reports whether the side to move is in check.
func (m *Match) Check() bool {
	return m.check
}

// Checkmate reports whether the match ended in checkmate.
func (m *Match) Checkmate() bool {
	return m.checkmate
}

// Stalemate reports whether the match ended in stalemate.
func (m *Match) Stalemate() bool {
	return m.stalemate
}

// State returns the state machine position.
func (m *Match) State() State {
	switch {
	case m.checkmate:
		return Checkmate
	case m.stalemate:
		return Stalemate
	case m.check:
		return Check
	default:
		return InProgress
	}
}

// CapturedPieces returns copies of the captured pieces in capture order.
func (m *Match) CapturedPieces() []chess.Piece {
	out := make([]chess.Piece, 0, len(m.captured))
	for _, p := range m.captured {
		out = append(out, *p)
	}
	return out
}

// LastMove returns the most recent accepted move.
func (m *Match) LastMove() (chess.Move, bool) {
	if m.lastMove == nil {
		return chess.Move{}, false
	}
	return *m.lastMove, true
}

// FEN encodes the current position for an external analysis service.
func (m *Match) FEN() string {
	return engine.EncodeFEN(m.pos, m.toMove)
}

// Hash returns the Zobrist key of the board and side to move.
func (m *Match) Hash() uint64 {
	return hashing.Key(m.pos, m.toMove)
}

// PossibleMoves returns the legality grid for the piece on source. The
// piece must belong to the current player. Repeated calls without an
// intervening move return identical grids.
func (m *Match) PossibleMoves(source chess.Square) (engine.MoveGrid, error) {
	if err := m.validateSource(source); err != nil {
		return engine.MoveGrid{}, err
	}
	return m.legalGrid(source), nil
}

// LegalMoves lists every legal move of the current player, promotions
// expanded to each choice. It is empty once the match is over.
func (m *Match) LegalMoves() []chess.Move {
	if m.State().Terminal() {
		return nil
	}
	return engine.AllLegalMoves(m.pos, m.current)
}

func (m *Match) legalGrid(source chess.Square) engine.MoveGrid {
	if m.grids != nil {
		if grid, ok := m.grids.Get(source); ok {
			return grid
		}
	}
	grid := engine.LegalMoves(m.pos, source)
	if m.grids != nil {
		m.grids.Add(source, grid)
	}
	return grid
}

func (m *Match) validateSource(source chess.Square) error {
	if !source.InBounds() {
		return m.moveError(errors.ErrOutOfBounds, source, nil)
	}
	piece := m.pos.Board.PieceAt(source)
	if piece == nil {
		return m.moveError(errors.ErrNoPieceAtSource, source, nil)
	}
	if piece.Colour() != m.current {
		return m.moveError(errors.ErrWrongPieceColour, source, nil)
	}
	return nil
}

func (m *Match) moveError(err error, source chess.Square, target *chess.Square) error {
	me := &errors.MoveError{
		Err:    err,
		Turn:   m.turn,
		Player: m.current.String(),
		Source: source.String(),
	}
	if target != nil {
		me.Target = target.String()
	}
	return me
}

// PerformMove moves the piece on source to target, promoting with the
// default kind if a pawn reaches the last rank. It returns the captured
// piece, if any.
func (m *Match) PerformMove(source, target chess.Square) (*chess.Piece, error) {
	return m.PerformMoveWithPromotion(source, target, chess.NoKind)
}

// PerformUCIMove parses a coordinate move such as "e2e4" or "e7e8q" and
// performs it.
func (m *Match) PerformUCIMove(s string) (*chess.Piece, error) {
	move, err := uci.ParseMove(s)
	if err != nil {
		return nil, err
	}
	return m.PerformMoveWithPromotion(move.From, move.To, move.Promotion)
}

// PerformMoveWithPromotion is PerformMove with an explicit promotion
// choice. NoKind selects the match default. Any validation failure leaves
// the match unchanged.
func (m *Match) PerformMoveWithPromotion(source, target chess.Square, promotion chess.Kind) (*chess.Piece, error) {
	if m.State().Terminal() {
		return nil, m.moveError(errors.ErrMatchAlreadyTerminal, source, &target)
	}
	if err := m.validateSource(source); err != nil {
		return nil, err
	}
	if !target.InBounds() {
		return nil, m.moveError(errors.ErrOutOfBounds, source, &target)
	}

	grid := m.legalGrid(source)
	if grid.Len() == 0 {
		return nil, m.moveError(errors.ErrPieceHasNoMoves, source, &target)
	}
	if !grid.Has(target) {
		return nil, m.moveError(errors.ErrIllegalTargetSquare, source, &target)
	}

	move := chess.Move{From: source, To: target}
	if promotion != chess.NoKind && !promotion.IsPromotionChoice() {
		return nil, m.moveError(fmt.Errorf("%v: %w", promotion, errors.ErrInvalidPromotionChoice), source, &target)
	}
	if engine.IsPromotion(m.pos.Board, move) {
		move.Promotion = promotion
		if move.Promotion == chess.NoKind {
			move.Promotion = m.defaultPromotion
		}
	}

	// Execute on a scratch copy and commit only if the mover's king is safe.
	mover := m.current
	scratch := m.pos.Clone()
	result, err := engine.ApplyMove(scratch, move)
	if err != nil {
		return nil, m.moveError(err, source, &target)
	}
	if engine.IsInCheck(scratch.Board, mover) {
		return nil, m.moveError(errors.ErrMoveExposesOwnKing, source, &target)
	}

	m.pos = scratch
	m.lastMove = &move
	if result.Captured != nil {
		m.captured = append(m.captured, result.Captured)
	}
	if m.grids != nil {
		m.grids.Purge()
	}

	opponent := mover.Opposite()
	m.toMove = opponent
	m.updateStatus(opponent)
	if !m.State().Terminal() {
		m.current = opponent
		m.turn++
	}

	m.logMove(mover, move, result)
	if result.Captured == nil {
		return nil, nil
	}
	captured := *result.Captured
	return &captured, nil
}

func (m *Match) logMove(mover chess.Colour, move chess.Move, result engine.MoveResult) {
	attrs := []any{"player", mover.String(), "move", move.String(), "turn", m.turn}
	if result.Captured != nil {
		attrs = append(attrs, "captured", result.Captured.Kind().String())
	}
	if result.Castle != chess.NoCastle {
		attrs = append(attrs, "castle", result.Castle.String())
	}
	if result.EnPassant {
		attrs = append(attrs, "en_passant", true)
	}
	m.logger.Debug("move performed", attrs...)

	if state := m.State(); state != InProgress {
		m.logger.Debug("match state changed", "state", state.String(), "to_move", m.toMove.String())
	}
}

// Clone returns an independent copy of the match sharing only the logger.
func (m *Match) Clone() *Match {
	c := &Match{
		pos:              m.pos.Clone(),
		turn:             m.turn,
		current:          m.current,
		toMove:           m.toMove,
		check:            m.check,
		checkmate:        m.checkmate,
		stalemate:        m.stalemate,
		name:             m.name,
		logger:           m.logger,
		cacheSize:        m.cacheSize,
		defaultPromotion: m.defaultPromotion,
	}
	c.captured = make([]*chess.Piece, 0, len(m.captured))
	for _, p := range m.captured {
		cp := *p
		c.captured = append(c.captured, &cp)
	}
	if m.lastMove != nil {
		last := *m.lastMove
		c.lastMove = &last
	}
	grids, err := newGridCache(c.cacheSize)
	if err != nil {
		c.logger.Warn("move cache disabled for clone", "err", err)
	}
	c.grids = grids
	return c
}
