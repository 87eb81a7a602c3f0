package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 0; rank < BoardSize; rank++ {
				if id, ok := b.Get(Sq(file, rank)); ok {
					t.Errorf("Get(%v) = %d; want empty", Sq(file, rank), id)
				}
			}
		}
	})

	t.Run("off board", func(t *testing.T) {
		if _, ok := b.Get(Sq(-1, 0)); ok {
			t.Error("Get(-1,0) reported a piece")
		}
		if _, ok := b.Get(Sq(0, BoardSize)); ok {
			t.Error("Get(0,8) reported a piece")
		}
	})

	t.Run("empty rosters", func(t *testing.T) {
		if got := len(b.Roster(White)); got != 0 {
			t.Errorf("len(Roster(White)) = %d; want 0", got)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name   string
		square string
		kind   PieceKind
		colour Colour
		empty  bool
	}{
		{name: "white rook a1", square: "a1", kind: Rook, colour: White},
		{name: "white knight b1", square: "b1", kind: Knight, colour: White},
		{name: "white bishop c1", square: "c1", kind: Bishop, colour: White},
		{name: "white queen d1", square: "d1", kind: Queen, colour: White},
		{name: "white king e1", square: "e1", kind: King, colour: White},
		{name: "white rook h1", square: "h1", kind: Rook, colour: White},
		{name: "white pawn a2", square: "a2", kind: Pawn, colour: White},
		{name: "white pawn h2", square: "h2", kind: Pawn, colour: White},
		{name: "black pawn e7", square: "e7", kind: Pawn, colour: Black},
		{name: "black queen d8", square: "d8", kind: Queen, colour: Black},
		{name: "black king e8", square: "e8", kind: King, colour: Black},
		{name: "black knight g8", square: "g8", kind: Knight, colour: Black},
		{name: "empty e3", square: "e3", empty: true},
		{name: "empty d4", square: "d4", empty: true},
		{name: "empty c6", square: "c6", empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, ok := ParseSquare(tt.square)
			if !ok {
				t.Fatalf("ParseSquare(%q) failed", tt.square)
			}
			id, occupied := b.Get(sq)
			if tt.empty {
				if occupied {
					t.Errorf("Get(%s) = %v; want empty", tt.square, b.Piece(id).Kind)
				}
				return
			}
			if !occupied {
				t.Fatalf("Get(%s) = empty; want %v %v", tt.square, tt.colour, tt.kind)
			}
			p := b.Piece(id)
			if p.Kind != tt.kind || p.Colour != tt.colour {
				t.Errorf("Get(%s) = %v %v; want %v %v", tt.square, p.Colour, p.Kind, tt.colour, tt.kind)
			}
			if p.Square != sq {
				t.Errorf("piece on %s thinks it is on %v", tt.square, p.Square)
			}
		})
	}

	t.Run("roster sizes", func(t *testing.T) {
		if got := len(b.Roster(White)); got != 16 {
			t.Errorf("len(Roster(White)) = %d; want 16", got)
		}
		if got := len(b.Roster(Black)); got != 16 {
			t.Errorf("len(Roster(Black)) = %d; want 16", got)
		}
	})

	t.Run("roster order", func(t *testing.T) {
		roster := b.Roster(White)
		want := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
		for i, kind := range want {
			if got := b.Piece(roster[i]).Kind; got != kind {
				t.Errorf("Roster(White)[%d] = %v; want %v", i, got, kind)
			}
		}
		if got := b.Piece(roster[8]).Kind; got != Pawn {
			t.Errorf("Roster(White)[8] = %v; want Pawn", got)
		}
	})

	t.Run("kings", func(t *testing.T) {
		id, ok := b.King(Black)
		if !ok {
			t.Fatal("King(Black) not found")
		}
		if got := b.Piece(id).Square.String(); got != "e8" {
			t.Errorf("King(Black) on %s; want e8", got)
		}
	})
}

// boardState captures everything ApplyMove/Undo may touch.
type boardState struct {
	squares [BoardSize][BoardSize]PieceID
	pieces  []Piece
}

func stateOf(b *Board) boardState {
	return boardState{squares: b.squares, pieces: append([]Piece(nil), b.pieces...)}
}

func (s boardState) equal(o boardState) bool {
	if s.squares != o.squares || len(s.pieces) != len(o.pieces) {
		return false
	}
	for i := range s.pieces {
		if s.pieces[i] != o.pieces[i] {
			return false
		}
	}
	return true
}

func TestApplyMoveUndo_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		from    Square
		to      Square
		capture bool
	}{
		{name: "quiet pawn push", from: Sq(4, 1), to: Sq(4, 3)},
		{name: "knight jump", from: Sq(6, 0), to: Sq(5, 2)},
		{name: "capture own-file pawn", from: Sq(3, 0), to: Sq(3, 6), capture: true},
		{name: "capture back rank", from: Sq(0, 0), to: Sq(0, 7), capture: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.SetupInitialPosition()
			before := stateOf(b)

			id, ok := b.Get(tt.from)
			if !ok {
				t.Fatalf("no piece on %v", tt.from)
			}
			victim, _ := b.Get(tt.to)

			rec := b.ApplyMove(id, tt.to)

			if got, _ := b.Get(tt.to); got != id {
				t.Errorf("after ApplyMove, Get(%v) = %d; want %d", tt.to, got, id)
			}
			if _, ok := b.Get(tt.from); ok {
				t.Errorf("after ApplyMove, %v still occupied", tt.from)
			}
			if b.Piece(id).Square != tt.to {
				t.Errorf("moved piece square = %v; want %v", b.Piece(id).Square, tt.to)
			}
			if tt.capture {
				if rec.Captured() != victim {
					t.Errorf("rec.Captured() = %d; want %d", rec.Captured(), victim)
				}
				if !b.Piece(victim).Captured {
					t.Error("captured piece still in roster")
				}
				if got := len(b.Roster(b.Piece(victim).Colour)); got != 15 {
					t.Errorf("victim roster size = %d; want 15", got)
				}
			} else if rec.Captured() != NoPiece {
				t.Errorf("rec.Captured() = %d; want NoPiece", rec.Captured())
			}

			b.Undo(rec)
			if !stateOf(b).equal(before) {
				t.Error("Undo did not restore the board exactly")
			}
		})
	}
}

func TestTrial(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	before := stateOf(b)
	pawn, _ := b.Get(Sq(4, 1))

	t.Run("probe sees the moved position", func(t *testing.T) {
		got, err := b.Trial(pawn, Sq(4, 3), func(tb *Board) bool {
			id, ok := tb.Get(Sq(4, 3))
			return ok && id == pawn
		})
		if err != nil {
			t.Fatalf("Trial() error: %v", err)
		}
		if !got {
			t.Error("Trial() probe did not see the pawn on e4")
		}
		if !stateOf(b).equal(before) {
			t.Error("Trial() left the board modified")
		}
	})

	t.Run("nested trial is rejected", func(t *testing.T) {
		knight, _ := b.Get(Sq(6, 0))
		var nestedErr error
		_, err := b.Trial(pawn, Sq(4, 3), func(tb *Board) bool {
			_, nestedErr = tb.Trial(knight, Sq(5, 2), func(*Board) bool { return true })
			return true
		})
		if err != nil {
			t.Fatalf("outer Trial() error: %v", err)
		}
		if !errors.Is(nestedErr, chesserrors.ErrIllegalTrialState) {
			t.Errorf("nested Trial() error = %v; want ErrIllegalTrialState", nestedErr)
		}
		if !stateOf(b).equal(before) {
			t.Error("board modified after rejected nested trial")
		}
	})

	t.Run("undo runs when probe panics", func(t *testing.T) {
		func() {
			defer func() { _ = recover() }()
			_, _ = b.Trial(pawn, Sq(4, 2), func(*Board) bool { panic("probe failed") })
		}()
		if !stateOf(b).equal(before) {
			t.Error("board modified after panicking probe")
		}
		if _, err := b.Trial(pawn, Sq(4, 2), func(*Board) bool { return true }); err != nil {
			t.Errorf("Trial() after panic error: %v", err)
		}
	})
}

func TestPlace(t *testing.T) {
	b := NewBoard()
	king := b.AddPiece(King, White, Sq(4, 0))
	rook := b.AddPiece(Rook, Black, Sq(4, 5))

	b.Place(king, Sq(4, 1))
	if _, ok := b.Get(Sq(4, 0)); ok {
		t.Error("Place left the old square occupied")
	}
	if got := b.Piece(king).Square; got != Sq(4, 1) {
		t.Errorf("king square = %v; want e2", got)
	}

	b.Place(king, Sq(4, 5))
	if !b.Piece(rook).Captured {
		t.Error("Place over an occupant should remove it from its roster")
	}
	if got := len(b.Roster(Black)); got != 0 {
		t.Errorf("len(Roster(Black)) = %d; want 0", got)
	}

	b.Clear(Sq(4, 5))
	if _, ok := b.King(White); ok {
		t.Error("King(White) found after Clear")
	}
}

func TestCopy(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	c := b.Copy()

	pawn, _ := c.Get(Sq(4, 1))
	c.ApplyMove(pawn, Sq(4, 3))

	if _, ok := b.Get(Sq(4, 3)); ok {
		t.Error("moving on the copy changed the original")
	}
	if b.Piece(pawn).Square != Sq(4, 1) {
		t.Error("original piece coordinates changed")
	}
}

func TestSnapshot(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	snap := b.Snapshot()

	if v := snap.At(Sq(3, 7)); !v.Occupied || v.Kind != Queen || v.Colour != Black {
		t.Errorf("snap d8 = %+v; want black queen", v)
	}
	if v := snap.At(Sq(3, 3)); v.Occupied {
		t.Errorf("snap d4 = %+v; want empty", v)
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		want Square
	}{
		{"a1", true, Sq(0, 0)},
		{"e4", true, Sq(4, 3)},
		{"h8", true, Sq(7, 7)},
		{"i1", false, Square{}},
		{"a9", false, Square{}},
		{"e", false, Square{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSquare(tt.name)
			if ok != tt.ok {
				t.Fatalf("ParseSquare(%q) ok = %v; want %v", tt.name, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.name, got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("Square.String() = %q; want %q", got.String(), tt.name)
			}
		})
	}

	if got := Sq(4, 3).Offset(Vector{1, 1}, Black.Forward()); got != Sq(5, 2) {
		t.Errorf("Offset for Black = %v; want f3", got)
	}
}

func TestCatalog(t *testing.T) {
	for kind := Pawn; kind < NumPieceKinds; kind++ {
		info := kind.Info()
		if kind == Pawn {
			if len(info.Attacks) != 2 || info.Ranged {
				t.Errorf("Pawn info = %+v", info)
			}
			continue
		}
		if len(info.Moves) != len(info.Attacks) {
			t.Errorf("%v: moves and attacks differ", kind)
		}
	}
	ranged := map[PieceKind]bool{Rook: true, Bishop: true, Queen: true}
	for kind := Pawn; kind < NumPieceKinds; kind++ {
		if kind.Ranged() != ranged[kind] {
			t.Errorf("%v.Ranged() = %v; want %v", kind, kind.Ranged(), ranged[kind])
		}
	}
}
