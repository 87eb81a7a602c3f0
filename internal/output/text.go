// Package output renders boards, move lists and game results for the
// driver.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// squareText is the two-letter name of an occupied square, kind then colour
// (Nw, pb), or "." when empty.
func squareText(v chess.SquareView) string {
	if !v.Occupied {
		return "."
	}
	return string(v.Kind.Letter()) + colourLetter(v.Colour)
}

func colourLetter(c chess.Colour) string {
	if c == chess.White {
		return "w"
	}
	return "b"
}

// WriteBoard prints the board from the eighth rank down, one tab-separated
// rank per line.
func WriteBoard(w io.Writer, snap chess.Snapshot, cfg *config.OutputConfig) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		cells := make([]string, 0, chess.BoardSize+1)
		if cfg.ShowCoordinates {
			cells = append(cells, fmt.Sprintf("%d", rank+1))
		}
		for file := 0; file < chess.BoardSize; file++ {
			cells = append(cells, squareText(snap.At(chess.Sq(file, rank))))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if cfg.ShowCoordinates {
		files := []string{""}
		for file := 0; file < chess.BoardSize; file++ {
			files = append(files, string(rune('a'+file)))
		}
		fmt.Fprintln(w, strings.Join(files, "\t"))
	}
}

// FormatMove writes a move in the configured notation.
func FormatMove(m chess.Move, notation config.MoveNotation) string {
	if notation == config.LALG {
		return m.UCI()
	}
	return m.String()
}

// WriteMoveList prints the moves numbered from 1, which is the number the
// player types to choose one.
func WriteMoveList(w io.Writer, moves []chess.Move, notation config.MoveNotation) {
	fmt.Fprintln(w, "Possible moves:")
	for i, m := range moves {
		fmt.Fprintf(w, "%d. %s\n", i+1, FormatMove(m, notation))
	}
}

// WriteTurn prints the check notice and whose move it is.
func WriteTurn(w io.Writer, status engine.Status, turn chess.Colour) {
	if status.Kind == engine.Check {
		fmt.Fprintln(w, "Check!")
	}
	fmt.Fprintf(w, "%s to move.\n", turn)
}

// WriteResult prints the outcome of a finished game. It prints nothing for a
// game still in progress.
func WriteResult(w io.Writer, status engine.Status) {
	switch status.Kind {
	case engine.Checkmate:
		winner, _ := status.Winner()
		fmt.Fprintf(w, "Checkmate! %s wins!\n", winner)
	case engine.Stalemate:
		fmt.Fprintln(w, "Stalemate! It's a draw!")
	}
}

// WritePosition prints everything the player needs before choosing a move.
func WritePosition(w io.Writer, g *engine.Game, cfg *config.OutputConfig) error {
	WriteBoard(w, g.BoardSnapshot(), cfg)
	if cfg.ShowFEN {
		fmt.Fprintln(w, g.FEN())
	}
	if g.Status().IsTerminal() {
		return nil
	}
	moves, err := g.LegalMoves()
	if err != nil {
		return err
	}
	WriteTurn(w, g.Status(), g.Turn())
	WriteMoveList(w, moves, cfg.Notation)
	return nil
}

// WriteDivide prints per-move perft counts followed by the total.
func WriteDivide(w io.Writer, results []perft.Result, total uint64, notation config.MoveNotation) {
	for _, r := range results {
		fmt.Fprintf(w, "%s: %d\n", FormatMove(r.Move, notation), r.Nodes)
	}
	fmt.Fprintf(w, "\nMoves: %d\nNodes searched: %d\n", len(results), total)
}
