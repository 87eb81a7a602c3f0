package main

import (
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// runPerft runs a divide at cfg.PerftDepth and writes the counts.
func runPerft(g *engine.Game, cfg *config.Config, writer output.GameWriter) error {
	start := time.Now()
	results, total, err := perft.Divide(g, cfg.PerftDepth, cfg.Workers)
	if err != nil {
		return err
	}
	cfg.Logf(1, "game %s: perft %d with %d workers took %v", g.ID(), cfg.PerftDepth, cfg.Workers, time.Since(start))
	return writer.WriteDivide(g.FEN(), cfg.PerftDepth, results, total)
}
