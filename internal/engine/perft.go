package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth,
// starting with colour to move. Each child position is played on a copy of
// the board, so the only trial moves in flight are the generator's own.
func Perft(board *chess.Board, colour chess.Colour, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	set, err := GenerateMoves(board, colour)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(set.List)), nil
	}

	var nodes uint64
	for _, move := range set.List {
		child := board.Copy()
		child.ApplyMove(move.Piece, move.To)
		n, err := Perft(child, colour.Opposite(), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Perft counts the leaf nodes of the game's move tree from the current
// position.
func (g *Game) Perft(depth int) (uint64, error) {
	if g.fatal != nil {
		return 0, g.fatal
	}
	return Perft(g.board, g.turn, depth)
}
