// Package errors provides sentinel errors and error types for the chess engine.
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
	// ErrInvalidSelection indicates a move index outside the current legal move list.
	ErrInvalidSelection = errors.New("invalid move selection")

	// ErrIllegalTrialState indicates a trial move was started while another
	// was still outstanding. It is an engine bug, not a user error.
	ErrIllegalTrialState = errors.New("illegal trial state")

	// ErrGameOver indicates a move was requested after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context: the game id, the ply at which
// the error occurred and the move index that was selected.
type GameError struct {
	Err    error  // The underlying error
	GameID string // Game identifier (if known)
	Ply    int    // Plies played before the error
	Index  int    // Selected move index (-1 if not applicable)
	Moves  int    // Length of the move list the index was checked against (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	parts = append(parts, fmt.Sprintf("ply %d", e.Ply))

	if e.Index >= 0 || e.Moves > 0 {
		parts = append(parts, fmt.Sprintf("move %d of %d", e.Index, e.Moves))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
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
