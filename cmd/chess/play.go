package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// runGame plays g to the end, reading move numbers from cfg.Input. It
// returns early without error if the input runs out.
func runGame(g *engine.Game, cfg *config.Config, writer output.GameWriter) error {
	initialFEN := g.FEN()
	in := bufio.NewScanner(cfg.Input)
	w := cfg.OutputFile

	for !g.Status().IsTerminal() {
		if err := output.WritePosition(w, g, cfg.Output); err != nil {
			return err
		}

		moves, err := g.LegalMoves()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Enter the number of the move you choose.")
		for {
			number, ok, err := readSelection(in)
			if err != nil {
				return err
			}
			if !ok {
				cfg.Logf(1, "game %s: input closed after %d plies", g.ID(), g.Ply())
				return writer.WriteGame(g, initialFEN)
			}

			status, err := g.ApplyMove(number - 1)
			if errors.Is(err, chesserrors.ErrInvalidSelection) {
				fmt.Fprintf(w, "Enter a number between 1 and %d.\n", len(moves))
				continue
			}
			if err != nil {
				return err
			}
			cfg.Logf(2, "game %s ply %d: %s -> %s", g.ID(), g.Ply(), moves[number-1], status)
			break
		}
	}

	cfg.Logf(1, "game %s finished after %d plies: %s", g.ID(), g.Ply(), g.Status())
	return writer.WriteGame(g, initialFEN)
}

// readSelection reads lines until one holds a number. ok is false at end of
// input. Numbers are not range checked here; the engine rejects them.
func readSelection(in *bufio.Scanner) (number int, ok bool, err error) {
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			return 0, true, nil // never a valid selection
		}
		return n, true, nil
	}
	return 0, false, in.Err()
}
