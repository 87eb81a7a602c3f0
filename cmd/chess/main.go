// chess plays a two-player game of chess at the terminal, or counts move
// trees with -perft.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Logf(1, "game %s from %s", g.ID(), g.FEN())

	writer := output.NewGameWriter(cfg.OutputFile, cfg.Output)
	if cfg.PerftDepth > 0 {
		err = runPerft(g, cfg, writer)
	} else {
		err = runGame(g, cfg, writer)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newGame creates the game from the configured start position.
func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.StartFEN == "" {
		return engine.NewStandardGame(), nil
	}
	return engine.NewGameFromFEN(cfg.StartFEN)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two-player chess at the terminal. Moves are chosen by number.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notations (-W):\n")
	fmt.Fprintf(os.Stderr, "  descriptive  Piece and squares (Knight g1-f3), the default\n")
	fmt.Fprintf(os.Stderr, "  lalg         Long algebraic (g1f3)\n")
	fmt.Fprintf(os.Stderr, "  uci          Same as lalg\n")
}
