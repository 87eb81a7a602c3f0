package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveSet is the full set of legal moves for one side.
type MoveSet struct {
	// Destinations per piece, in generation order. Pieces with no legal
	// move are absent.
	ByPiece map[chess.PieceID][]chess.Square

	// Every move, flattened in roster order.
	List []chess.Move
}

// GenerateMoves returns every legal move for colour. A move is legal if,
// once tried on the board, it does not leave colour's own king attacked.
func GenerateMoves(board *chess.Board, colour chess.Colour) (MoveSet, error) {
	gen := &moveGenerator{
		board:  board,
		colour: colour,
		set:    MoveSet{ByPiece: make(map[chess.PieceID][]chess.Square)},
	}
	for _, id := range board.Roster(colour) {
		if err := gen.pieceMoves(id); err != nil {
			return MoveSet{}, err
		}
	}
	return gen.set, nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) (bool, error) {
	set, err := GenerateMoves(board, colour)
	if err != nil {
		return false, err
	}
	return len(set.List) > 0, nil
}

type moveGenerator struct {
	board  *chess.Board
	colour chess.Colour
	set    MoveSet
}

// pieceMoves generates the legal moves of a single piece.
func (g *moveGenerator) pieceMoves(id chess.PieceID) error {
	piece := g.board.Piece(id)
	forward := g.colour.Forward()
	ranged := piece.Kind.Ranged()

	for _, v := range piece.Kind.Moves() {
		to := piece.Square.Offset(v, forward)
		for to.OnBoard() {
			if occupant, ok := g.board.Get(to); ok {
				// Pawns never capture along their move vector.
				if piece.Kind != chess.Pawn && g.board.Piece(occupant).Colour != g.colour {
					if err := g.try(id, piece, to, occupant); err != nil {
						return err
					}
				}
				break // Blocked
			}

			if err := g.try(id, piece, to, chess.NoPiece); err != nil {
				return err
			}

			if piece.Kind == chess.Pawn && piece.Square.Rank == g.colour.PawnRank() {
				double := to.Offset(v, forward)
				if _, occupied := g.board.Get(double); double.OnBoard() && !occupied {
					if err := g.try(id, piece, double, chess.NoPiece); err != nil {
						return err
					}
				}
			}

			if !ranged {
				break
			}
			to = to.Offset(v, forward)
		}
	}

	if piece.Kind != chess.Pawn {
		return nil
	}

	// Pawn captures: diagonal-forward onto an opponent piece only.
	for _, v := range piece.Kind.Attacks() {
		to := piece.Square.Offset(v, forward)
		occupant, ok := g.board.Get(to)
		if !ok || g.board.Piece(occupant).Colour == g.colour {
			continue
		}
		if err := g.try(id, piece, to, occupant); err != nil {
			return err
		}
	}
	return nil
}

// try records the move if it does not leave the mover's king attacked.
func (g *moveGenerator) try(id chess.PieceID, piece chess.Piece, to chess.Square, captured chess.PieceID) error {
	legal, err := g.board.Trial(id, to, func(b *chess.Board) bool {
		return !IsInCheck(b, g.colour)
	})
	if err != nil || !legal {
		return err
	}
	g.set.ByPiece[id] = append(g.set.ByPiece[id], to)
	g.set.List = append(g.set.List, chess.Move{
		Piece:    id,
		Kind:     piece.Kind,
		Colour:   piece.Colour,
		From:     piece.Square,
		To:       to,
		Captured: captured,
	})
	return nil
}
