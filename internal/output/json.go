package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Status     string     `json:"status"`
	Winner     string     `json:"winner,omitempty"`
	PlyCount   int        `json:"plyCount"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Color    string `json:"color"` // "white" or "black"
	Piece    string `json:"piece"`
	From     string `json:"from"`
	To       string `json:"to"`
	UCI      string `json:"uci"`
	Captured string `json:"captured,omitempty"`
}

// JSONDivide is the JSON form of a perft divide.
type JSONDivide struct {
	FEN   string          `json:"fen"`
	Depth int             `json:"depth"`
	Moves []JSONMoveCount `json:"moves"`
	Nodes uint64          `json:"nodes"`
}

// JSONMoveCount is the node count below one root move.
type JSONMoveCount struct {
	UCI   string `json:"uci"`
	Nodes uint64 `json:"nodes"`
}

// GameToJSON converts a game to its JSON form. initialFEN is the position
// the game started from.
func GameToJSON(g *engine.Game, initialFEN string) *JSONGame {
	status := g.Status()
	out := &JSONGame{
		ID:         g.ID(),
		InitialFEN: initialFEN,
		FinalFEN:   g.FEN(),
		Status:     status.Kind.String(),
		PlyCount:   g.Ply(),
	}
	if winner, ok := status.Winner(); ok {
		out.Winner = colorName(winner)
	}

	board := g.Board()
	for i, m := range g.History() {
		out.Moves = append(out.Moves, convertMove(i+1, m, board))
	}
	return out
}

func convertMove(ply int, m chess.Move, board *chess.Board) JSONMove {
	jm := JSONMove{
		Ply:   ply,
		Color: colorName(m.Colour),
		Piece: strings.ToLower(m.Kind.String()),
		From:  m.From.String(),
		To:    m.To.String(),
		UCI:   m.UCI(),
	}
	// Captured pieces stay in the board's arena, so the kind is still known.
	if m.IsCapture() {
		jm.Captured = strings.ToLower(board.Piece(m.Captured).Kind.String())
	}
	return jm
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// WriteGameJSON writes a single game as indented JSON.
func WriteGameJSON(w io.Writer, g *engine.Game, initialFEN string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g, initialFEN))
}

// WriteDivideJSON writes perft divide results as indented JSON.
func WriteDivideJSON(w io.Writer, fen string, depth int, results []perft.Result, total uint64) error {
	out := &JSONDivide{
		FEN:   fen,
		Depth: depth,
		Moves: make([]JSONMoveCount, 0, len(results)),
		Nodes: total,
	}
	for _, r := range results {
		out.Moves = append(out.Moves, JSONMoveCount{UCI: r.Move.UCI(), Nodes: r.Nodes})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
