package output

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// GameWriter is the interface for writing finished games and perft results.
// Different implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes the outcome of a game.
	WriteGame(g *engine.Game, initialFEN string) error

	// WriteDivide writes per-move perft counts.
	WriteDivide(fen string, depth int, results []perft.Result, total uint64) error
}

// NewGameWriter returns the writer selected by the output settings.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg.JSONFormat {
		return &JSONWriter{w: w}
	}
	return &TextWriter{w: w, cfg: cfg}
}

// TextWriter writes results as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// WriteGame prints the final board and the result line.
func (tw *TextWriter) WriteGame(g *engine.Game, _ string) error {
	if g.Status().IsTerminal() {
		WriteBoard(tw.w, g.BoardSnapshot(), tw.cfg)
	}
	if err := g.Err(); err != nil {
		return err
	}
	WriteResult(tw.w, g.Status())
	return nil
}

// WriteDivide prints the per-move counts and the total.
func (tw *TextWriter) WriteDivide(_ string, _ int, results []perft.Result, total uint64) error {
	WriteDivide(tw.w, results, total, tw.cfg.Notation)
	return nil
}

// JSONWriter writes results as indented JSON documents.
type JSONWriter struct {
	w io.Writer
}

// WriteGame writes the game record.
func (jw *JSONWriter) WriteGame(g *engine.Game, initialFEN string) error {
	return WriteGameJSON(jw.w, g, initialFEN)
}

// WriteDivide writes the divide record.
func (jw *JSONWriter) WriteDivide(fen string, depth int, results []perft.Result, total uint64) error {
	return WriteDivideJSON(jw.w, fen, depth, results, total)
}
