// Package config provides configuration for the chess driver.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summary, 2=running commentary

	// Starting position. Empty means the standard initial position.
	StartFEN string

	// Perft mode. PerftDepth of 0 means play interactively.
	PerftDepth int
	Workers    int

	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
	Input      io.Reader
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Input:      os.Stdin,
	}
}

// Validate checks the configuration for values the driver cannot use.
func (c *Config) Validate() error {
	switch {
	case c.Verbosity < 0:
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	case c.PerftDepth < 0:
		return fmt.Errorf("perft depth %d is negative: %w", c.PerftDepth, errors.ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("need at least one worker, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	case c.Output == nil:
		return fmt.Errorf("missing output settings: %w", errors.ErrInvalidConfig)
	}
	return c.Output.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
