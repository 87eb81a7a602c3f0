package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPerft_InitialPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tt := range tests {
		board := chess.NewBoard()
		board.SetupInitialPosition()
		got, err := Perft(board, chess.White, tt.depth)
		testutil.AssertNoError(t, err)
		if got != tt.want {
			t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

// Position 3 of the standard perft suite reaches no special move within two
// plies, so its published counts apply directly.
func TestPerft_EndgamePosition(t *testing.T) {
	board, toMove := mustParseFEN(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	tests := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
	}
	for _, tt := range tests {
		got, err := Perft(board, toMove, tt.depth)
		testutil.AssertNoError(t, err)
		if got != tt.want {
			t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestGame_Perft(t *testing.T) {
	g := NewStandardGame()
	before := g.FEN()

	got, err := g.Perft(2)
	testutil.AssertNoError(t, err)
	if got != 400 {
		t.Errorf("Perft(2) = %d, want 400", got)
	}
	testutil.AssertEqual(t, g.FEN(), before)
}
