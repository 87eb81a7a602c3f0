package chess

import "fmt"

// Move represents a single legal move generated for the side to move.
type Move struct {
	// The piece being moved.
	Piece  PieceID
	Kind   PieceKind
	Colour Colour

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured (NoPiece if no capture).
	Captured PieceID
}

// IsCapture reports whether the move takes a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// UCI returns the move in long algebraic form, e.g. "e2e4".
func (m Move) UCI() string {
	return m.From.String() + m.To.String()
}

// String returns a readable form such as "Knight g1-f3" or "Queen h5xf7".
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("%s %s%s%s", m.Kind, m.From, sep, m.To)
}
