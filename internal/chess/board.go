package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PieceID identifies a piece by its index in the board's piece arena.
// It stays valid for the life of the board, including across capture and undo.
type PieceID int

// NoPiece marks an empty square.
const NoPiece PieceID = -1

// Piece is a single chess piece. Pieces are owned by the board's arena;
// squares refer to them by PieceID.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	Square   Square
	Captured bool // tombstone: removed from its roster
}

// Board holds the 8x8 grid and the arena of every piece placed on it.
type Board struct {
	// squares[file][rank]
	squares [BoardSize][BoardSize]PieceID

	// Arena of pieces, both colours, in placement order.
	pieces []Piece

	// Set while a Trial move is outstanding.
	inTrial bool
}

// UndoRecord captures the two squares touched by ApplyMove so that Undo can
// restore them exactly.
type UndoRecord struct {
	Piece     PieceID
	From      Square
	To        Square
	PriorFrom PieceID
	PriorTo   PieceID
}

// Captured returns the piece taken by the move, or NoPiece.
func (u UndoRecord) Captured() PieceID {
	return u.PriorTo
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.squares[file][rank] = NoPiece
		}
	}
	return b
}

// backRank is the standard piece order along the first and last ranks.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition places the standard starting position on an empty board:
// the back rank and then the pawn rank, each white piece followed by its
// black mirror image.
func (b *Board) SetupInitialPosition() {
	layout := [2][BoardSize]PieceKind{backRank}
	for file := range layout[1] {
		layout[1][file] = Pawn
	}
	for row, kinds := range layout {
		for file, kind := range kinds {
			b.AddPiece(kind, White, Sq(file, row))
			b.AddPiece(kind, Black, Sq(file, BoardSize-1-row))
		}
	}
}

// AddPiece creates a new piece in the arena and places it on sq.
func (b *Board) AddPiece(kind PieceKind, colour Colour, sq Square) PieceID {
	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{Kind: kind, Colour: colour, Square: sq})
	b.Place(id, sq)
	return id
}

// Get returns the piece on sq, if any.
func (b *Board) Get(sq Square) (PieceID, bool) {
	if !sq.OnBoard() {
		return NoPiece, false
	}
	id := b.squares[sq.File][sq.Rank]
	return id, id != NoPiece
}

// Piece returns a copy of the piece with the given id.
func (b *Board) Piece(id PieceID) Piece {
	return b.pieces[id]
}

// NumPieces returns the size of the arena, captured pieces included.
func (b *Board) NumPieces() int {
	return len(b.pieces)
}

// Place puts the piece on sq, overwriting whatever was there, and updates the
// piece's coordinates. A piece displaced from sq is removed from its roster.
func (b *Board) Place(id PieceID, sq Square) {
	p := &b.pieces[id]
	if old := p.Square; old.OnBoard() && b.squares[old.File][old.Rank] == id {
		b.squares[old.File][old.Rank] = NoPiece
	}
	if prev := b.squares[sq.File][sq.Rank]; prev != NoPiece && prev != id {
		b.pieces[prev].Captured = true
	}
	b.squares[sq.File][sq.Rank] = id
	p.Square = sq
	p.Captured = false
}

// Clear empties sq. The piece on it, if any, is removed from its roster.
func (b *Board) Clear(sq Square) {
	if id, ok := b.Get(sq); ok {
		b.pieces[id].Captured = true
		b.squares[sq.File][sq.Rank] = NoPiece
	}
}

// ApplyMove moves the piece to sq, capturing any occupant, and returns the
// record needed to reverse it.
func (b *Board) ApplyMove(id PieceID, to Square) UndoRecord {
	from := b.pieces[id].Square
	rec := UndoRecord{
		Piece:     id,
		From:      from,
		To:        to,
		PriorFrom: b.squares[from.File][from.Rank],
		PriorTo:   b.squares[to.File][to.Rank],
	}
	if rec.PriorTo != NoPiece {
		b.pieces[rec.PriorTo].Captured = true
	}
	b.squares[from.File][from.Rank] = NoPiece
	b.squares[to.File][to.Rank] = id
	b.pieces[id].Square = to
	return rec
}

// Undo reverses the ApplyMove that produced rec. It must be the most recent
// move applied to the board.
func (b *Board) Undo(rec UndoRecord) {
	b.restore(rec.From, rec.PriorFrom)
	b.restore(rec.To, rec.PriorTo)
}

func (b *Board) restore(sq Square, id PieceID) {
	b.squares[sq.File][sq.Rank] = id
	if id == NoPiece {
		return
	}
	p := &b.pieces[id]
	p.Captured = false
	p.Square = sq
}

// Trial applies a move, evaluates probe against the resulting position and
// undoes the move again on every exit path. Only one trial may be
// outstanding at a time.
func (b *Board) Trial(id PieceID, to Square, probe func(*Board) bool) (bool, error) {
	if b.inTrial {
		return false, fmt.Errorf("trial %s %s-%s while another is outstanding: %w",
			b.pieces[id].Kind, b.pieces[id].Square, to, errors.ErrIllegalTrialState)
	}
	b.inTrial = true
	rec := b.ApplyMove(id, to)
	defer func() {
		b.Undo(rec)
		b.inTrial = false
	}()
	return probe(b), nil
}

// Roster returns the pieces of the given colour still on the board, in
// placement order.
func (b *Board) Roster(colour Colour) []PieceID {
	roster := make([]PieceID, 0, 16)
	for i := range b.pieces {
		if b.pieces[i].Colour == colour && !b.pieces[i].Captured {
			roster = append(roster, PieceID(i))
		}
	}
	return roster
}

// King returns the king of the given colour.
func (b *Board) King(colour Colour) (PieceID, bool) {
	for i := range b.pieces {
		p := &b.pieces[i]
		if p.Kind == King && p.Colour == colour && !p.Captured {
			return PieceID(i), true
		}
	}
	return NoPiece, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.pieces = append([]Piece(nil), b.pieces...)
	newBoard.inTrial = false
	return newBoard
}

// SquareView is the read-only content of one square.
type SquareView struct {
	Occupied bool
	Kind     PieceKind
	Colour   Colour
}

// Snapshot is a read-only copy of the grid, indexed [file][rank].
type Snapshot [BoardSize][BoardSize]SquareView

// At returns the view of sq.
func (s *Snapshot) At(sq Square) SquareView {
	return s[sq.File][sq.Rank]
}

// Snapshot returns a read-only view of the board for rendering.
func (b *Board) Snapshot() Snapshot {
	var snap Snapshot
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if id := b.squares[file][rank]; id != NoPiece {
				p := b.pieces[id]
				snap[file][rank] = SquareView{Occupied: true, Kind: p.Kind, Colour: p.Colour}
			}
		}
	}
	return snap
}
