package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveNotation selects how moves are written in the move list.
type MoveNotation int

const (
	Descriptive MoveNotation = iota // Knight g1-f3
	LALG                            // Long algebraic (g1f3)
)

// String returns the flag spelling of the notation.
func (n MoveNotation) String() string {
	switch n {
	case Descriptive:
		return "descriptive"
	case LALG:
		return "lalg"
	}
	return "unknown"
}

// ParseMoveNotation maps a flag value to a notation.
func ParseMoveNotation(s string) (MoveNotation, error) {
	switch s {
	case "descriptive":
		return Descriptive, nil
	case "lalg", "uci":
		return LALG, nil
	}
	return 0, fmt.Errorf("unknown move notation %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to board and move list output.
type OutputConfig struct {
	// Notation for the numbered move list
	Notation MoveNotation

	// ShowCoordinates prints file letters and rank numbers around the board
	ShowCoordinates bool

	// ShowFEN prints the FEN of the position under the board
	ShowFEN bool

	// JSONFormat writes the finished game or perft results as JSON
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:        Descriptive,
		ShowCoordinates: true,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.Notation != Descriptive && o.Notation != LALG {
		return fmt.Errorf("unknown move notation %d: %w", int(o.Notation), errors.ErrInvalidConfig)
	}
	return nil
}
