// Package errors provides sentinel errors and error types for the chess engine.
// It defines the rule violations a caller can trigger and structured error types
// that preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrSquareOccupied indicates a placement onto an occupied square.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrNoPieceAtSource indicates a move or query from an empty square.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrWrongPieceColour indicates the source piece belongs to the side not on move.
	ErrWrongPieceColour = errors.New("piece belongs to the other player")

	// ErrPieceHasNoMoves indicates the source piece has no legal move.
	ErrPieceHasNoMoves = errors.New("piece has no legal moves")

	// ErrIllegalTargetSquare indicates the target is not a legal destination.
	ErrIllegalTargetSquare = errors.New("illegal target square")

	// ErrMoveExposesOwnKing indicates a move would leave the mover in check.
	ErrMoveExposesOwnKing = errors.New("move leaves own king in check")

	// ErrInvalidPromotionChoice indicates a promotion kind other than Q, R, B or N.
	ErrInvalidPromotionChoice = errors.New("invalid promotion choice")

	// ErrMatchAlreadyTerminal indicates a move attempted after checkmate or stalemate.
	ErrMatchAlreadyTerminal = errors.New("match already finished")

	// ErrInvalidMoveString indicates a malformed externally supplied move string.
	ErrInvalidMoveString = errors.New("invalid move string")

	// ErrInvalidFEN indicates a malformed position string used to set up a board.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rule violation with the match context it happened in.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel
	Turn   int    // Match turn when the move was attempted
	Player string // Side that attempted the move
	Source string // Source square in algebraic notation (if known)
	Target string // Target square in algebraic notation (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}

	switch {
	case e.Source != "" && e.Target != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.Source, e.Target))
	case e.Source != "":
		parts = append(parts, fmt.Sprintf("square %s", e.Source))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error for externally supplied text such as
// square names and move strings.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text that failed to parse
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with input and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers importing this package
// do not need both.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
