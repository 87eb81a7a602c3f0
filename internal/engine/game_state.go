package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StatusKind classifies the state of a game after a move.
type StatusKind int

const (
	Continue StatusKind = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	switch k {
	case Continue:
		return "Continue"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// Status is the state of a game. Loser is only meaningful for Checkmate.
type Status struct {
	Kind  StatusKind
	Loser chess.Colour
}

// IsTerminal reports whether no further moves can be played.
func (s Status) IsTerminal() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate
}

// Winner returns the winning colour of a checkmate.
func (s Status) Winner() (chess.Colour, bool) {
	if s.Kind != Checkmate {
		return chess.White, false
	}
	return s.Loser.Opposite(), true
}

func (s Status) String() string {
	if s.Kind == Checkmate {
		return fmt.Sprintf("Checkmate(%s)", s.Loser)
	}
	return s.Kind.String()
}

// Side is one player's view of the game: whether it is in check and the
// moves it may play. The pieces themselves live on the board.
type Side struct {
	Colour     chess.Colour
	InCheck    bool
	LegalMoves map[chess.PieceID][]chess.Square
	MoveList   []chess.Move
}

func (s *Side) clearMoves() {
	s.LegalMoves = make(map[chess.PieceID][]chess.Square)
	s.MoveList = nil
}

func (s *Side) copy() *Side {
	c := &Side{Colour: s.Colour, InCheck: s.InCheck, LegalMoves: make(map[chess.PieceID][]chess.Square, len(s.LegalMoves))}
	for id, squares := range s.LegalMoves {
		c.LegalMoves[id] = append([]chess.Square(nil), squares...)
	}
	c.MoveList = append([]chess.Move(nil), s.MoveList...)
	return c
}

// Game drives a match turn by turn. Each call to ApplyMove plays one ply;
// the move list for the next side is computed before it returns.
type Game struct {
	id      string
	board   *chess.Board
	sides   [2]*Side
	turn    chess.Colour
	status  Status
	ply     int
	history []chess.Move

	// Set when the engine detects an internal fault. The game is
	// unusable afterwards.
	fatal error
}

// NewStandardGame creates a game from the standard starting position with
// White to move.
func NewStandardGame() *Game {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return newGame(board, chess.White)
}

// NewGameFromFEN creates a game from the piece placement and side to move
// of a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	board, toMove, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(board, toMove), nil
}

func newGame(board *chess.Board, toMove chess.Colour) *Game {
	g := &Game{
		id:    uuid.New().String(),
		board: board,
		turn:  toMove,
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		g.sides[colour] = &Side{Colour: colour}
		g.sides[colour].clearMoves()
	}
	g.sides[toMove].InCheck = IsInCheck(board, toMove)
	g.refresh()
	return g
}

// refresh regenerates the move list of the side to move and derives the
// game status from it.
func (g *Game) refresh() {
	side := g.sides[g.turn]
	set, err := GenerateMoves(g.board, g.turn)
	if err != nil {
		side.clearMoves()
		g.fatal = g.wrap(err, -1)
		return
	}
	side.LegalMoves = set.ByPiece
	side.MoveList = set.List

	switch {
	case len(set.List) == 0 && side.InCheck:
		g.status = Status{Kind: Checkmate, Loser: g.turn}
	case len(set.List) == 0:
		g.status = Status{Kind: Stalemate}
	case side.InCheck:
		g.status = Status{Kind: Check}
	default:
		g.status = Status{Kind: Continue}
	}
}

// LegalMoves returns the move list of the side to move. The index of a move
// in this list is what ApplyMove expects.
func (g *Game) LegalMoves() ([]chess.Move, error) {
	if g.fatal != nil {
		return nil, g.fatal
	}
	return append([]chess.Move(nil), g.sides[g.turn].MoveList...), nil
}

// ApplyMove plays the move at index in the current move list, hands the turn
// to the opponent and reports the resulting status.
func (g *Game) ApplyMove(index int) (Status, error) {
	if g.fatal != nil {
		return g.status, g.fatal
	}
	if g.status.IsTerminal() {
		return g.status, g.wrap(errors.ErrGameOver, index)
	}

	mover := g.sides[g.turn]
	if index < 0 || index >= len(mover.MoveList) {
		return g.status, g.wrap(errors.ErrInvalidSelection, index)
	}

	move := mover.MoveList[index]
	g.board.ApplyMove(move.Piece, move.To)
	g.history = append(g.history, move)
	g.ply++

	mover.clearMoves()
	mover.InCheck = false

	g.turn = g.turn.Opposite()
	g.sides[g.turn].InCheck = IsInCheck(g.board, g.turn)
	g.refresh()

	return g.status, g.fatal
}

func (g *Game) wrap(err error, index int) error {
	return &errors.GameError{
		Err:    err,
		GameID: g.id,
		Ply:    g.ply,
		Index:  index,
		Moves:  len(g.sides[g.turn].MoveList),
	}
}

// ID returns the unique identifier of the game.
func (g *Game) ID() string { return g.id }

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour { return g.turn }

// Status returns the current status of the game.
func (g *Game) Status() Status { return g.status }

// Ply returns the number of half-moves played.
func (g *Game) Ply() int { return g.ply }

// Err returns the fatal error that stopped the game, if any.
func (g *Game) Err() error { return g.fatal }

// Side returns the state of the given colour.
func (g *Game) Side(colour chess.Colour) *Side { return g.sides[colour] }

// History returns the moves played so far.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// Board returns the underlying board. Callers must not modify it.
func (g *Game) Board() *chess.Board { return g.board }

// BoardSnapshot returns a read-only view of the board for rendering.
func (g *Game) BoardSnapshot() chess.Snapshot {
	return g.board.Snapshot()
}

// FEN returns the piece placement and side to move as a FEN string.
func (g *Game) FEN() string {
	return BoardToFEN(g.board, g.turn)
}

// Clone returns an independent copy of the game. The copy keeps the ID.
func (g *Game) Clone() *Game {
	c := &Game{
		id:      g.id,
		board:   g.board.Copy(),
		turn:    g.turn,
		status:  g.status,
		ply:     g.ply,
		history: append([]chess.Move(nil), g.history...),
		fatal:   g.fatal,
	}
	for i, s := range g.sides {
		c.sides[i] = s.copy()
	}
	return c
}
