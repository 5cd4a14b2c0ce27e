// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrPieceNotOnBoard indicates a position lookup for a piece that was never
	// placed or has been captured. It signals a programming error in the caller.
	ErrPieceNotOnBoard = errors.New("piece is not on the board")

	// ErrInvalidPromotion indicates a promotion to King or Pawn, or a
	// promotion on an empty square.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrEmptySquare indicates a move requested from a square with no piece.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrSquareOccupied indicates a setup placement onto a square that already
	// holds a piece, or a second king of one colour.
	ErrSquareOccupied = errors.New("square is occupied")

	// ErrNotYourTurn indicates a move requested for the side not on move.
	ErrNotYourTurn = errors.New("not this side's turn")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError wraps errors raised for a specific square.
type SquareError struct {
	Err    error  // The underlying error
	Square string // The square the operation targeted
	Detail string // Extra context, e.g. the requested piece kind
}

// Error returns a formatted error message including the square.
func (e *SquareError) Error() string {
	var parts []string
	if e.Square != "" {
		parts = append(parts, "square "+e.Square)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ", "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return "square error"
}

// Unwrap returns the underlying error.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with game context: the game id, the ply the move
// was attempted at and the squares involved. It supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	GameID string // Game identifier (if known)
	Ply    int    // 1-based ply the move would have been (0 if not applicable)
	From   string // Origin square
	To     string // Destination square
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s->%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
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
