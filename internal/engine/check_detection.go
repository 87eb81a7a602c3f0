package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsAttacking(board, colour.Opposite(), colour)
}

// IsAttacking returns true if any piece of colour by attacks the king of
// colour target. Each attack vector is walked from the attacker's square
// and stops at the first occupied square, friend or foe.
func IsAttacking(board *chess.Board, by, target chess.Colour) bool {
	forward := by.Forward()
	for _, id := range board.Roster(by) {
		piece := board.Piece(id)
		ranged := piece.Kind.Ranged()
		for _, v := range piece.Kind.Attacks() {
			sq := piece.Square.Offset(v, forward)
			for sq.OnBoard() {
				if hit, ok := board.Get(sq); ok {
					victim := board.Piece(hit)
					if victim.Colour == target && victim.Kind == chess.King {
						return true
					}
					break // Blocked
				}
				if !ranged {
					break
				}
				sq = sq.Offset(v, forward)
			}
		}
	}
	return false
}
