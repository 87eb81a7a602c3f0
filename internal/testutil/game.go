package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// UCIMoves returns the moves in long algebraic form, sorted.
// Sorting makes move sets from different generators comparable.
func UCIMoves(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	sort.Strings(out)
	return out
}

// FindMove returns the index of the move with the given long algebraic form,
// or -1 if the list does not contain it.
func FindMove(moves []chess.Move, uci string) int {
	for i, m := range moves {
		if m.UCI() == uci {
			return i
		}
	}
	return -1
}

// MustFindMove is FindMove that calls t.Fatal when the move is missing.
func MustFindMove(t *testing.T, moves []chess.Move, uci string) int {
	t.Helper()
	i := FindMove(moves, uci)
	if i < 0 {
		t.Fatalf("move %s not in list %v", uci, UCIMoves(moves))
	}
	return i
}

// MustSquare parses an algebraic square name and calls t.Fatal on failure.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return sq
}
