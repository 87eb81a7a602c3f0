// Package chess provides core chess types and the board state container.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black.
// Rank deltas of every direction vector are multiplied by it.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank a pawn of this colour starts on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Vector is a (file, rank) direction, expressed from White's point of view.
type Vector struct {
	File int
	Rank int
}

var (
	orthogonals = []Vector{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonals   = []Vector{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allAround   = []Vector{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightJumps = []Vector{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// KindInfo is the movement geometry of one piece kind.
type KindInfo struct {
	Moves   []Vector // used when the destination is empty (and for non-pawn captures)
	Attacks []Vector // used for captures
	Ranged  bool     // vectors repeat until blocked
}

var catalog = [NumPieceKinds]KindInfo{
	Pawn:   {Moves: []Vector{{0, 1}}, Attacks: []Vector{{-1, 1}, {1, 1}}},
	Rook:   {Moves: orthogonals, Attacks: orthogonals, Ranged: true},
	Knight: {Moves: knightJumps, Attacks: knightJumps},
	Bishop: {Moves: diagonals, Attacks: diagonals, Ranged: true},
	Queen:  {Moves: allAround, Attacks: allAround, Ranged: true},
	King:   {Moves: allAround, Attacks: allAround},
}

// Info returns the catalog entry for the kind.
func (k PieceKind) Info() KindInfo {
	return catalog[k]
}

// Moves returns the kind's movement vectors.
func (k PieceKind) Moves() []Vector { return catalog[k].Moves }

// Attacks returns the kind's capture vectors.
func (k PieceKind) Attacks() []Vector { return catalog[k].Attacks }

// Ranged reports whether the kind slides.
func (k PieceKind) Ranged() bool { return catalog[k].Ranged }

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square one step along v, with the rank delta
// scaled by forward.
func (s Square) Offset(v Vector, forward int) Square {
	return Square{File: s.File + v.File, Rank: s.Rank + v.Rank*forward}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	s := Square{File: int(name[0] - 'a'), Rank: int(name[1] - '1')}
	return s, s.OnBoard()
}
