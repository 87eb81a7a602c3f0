// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Starting position
	startFEN = flag.String("fen", "", "Start from this FEN position (default: standard initial position)")

	// Perft mode
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to depth N per root move and exit")
	numWorkers = flag.Int("workers", 0, "Number of perft workers (default: number of CPUs)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	notation   = flag.String("W", "descriptive", "Move list notation: descriptive, lalg, uci")
	jsonOutput = flag.Bool("J", false, "Write the finished game or perft results as JSON")
	showFEN    = flag.Bool("showfen", false, "Print the FEN under the board")
	noCoords   = flag.Bool("nocoords", false, "Don't print file and rank labels around the board")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=nothing, 1=game summary, 2=running commentary")
	quiet     = flag.Bool("s", false, "Silent mode: no diagnostics")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.StartFEN = *startFEN
	cfg.PerftDepth = *perftDepth
	if *numWorkers != 0 {
		cfg.Workers = *numWorkers
	}

	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyOutputFlags configures board and move list output.
func applyOutputFlags(cfg *config.Config) error {
	n, err := config.ParseMoveNotation(*notation)
	if err != nil {
		return err
	}
	cfg.Output.Notation = n
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ShowCoordinates = !*noCoords
	return nil
}
