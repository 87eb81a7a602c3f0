package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.PerftDepth != 0 {
		t.Errorf("PerftDepth = %d, want 0", cfg.PerftDepth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.Output.Notation != Descriptive {
		t.Errorf("Notation = %v, want descriptive", cfg.Output.Notation)
	}
	if !cfg.Output.ShowCoordinates {
		t.Error("ShowCoordinates should be true by default")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"perft mode", func(c *Config) { c.PerftDepth = 4; c.Workers = 2 }, false},
		{"quiet", func(c *Config) { c.Verbosity = 0 }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"negative depth", func(c *Config) { c.PerftDepth = -2 }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"missing output", func(c *Config) { c.Output = nil }, true},
		{"bad notation", func(c *Config) { c.Output.Notation = MoveNotation(9) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

func TestParseMoveNotation(t *testing.T) {
	tests := []struct {
		in      string
		want    MoveNotation
		wantErr bool
	}{
		{"descriptive", Descriptive, false},
		{"lalg", LALG, false},
		{"uci", LALG, false},
		{"san", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoveNotation(tt.in)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("ParseMoveNotation(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != tt.in && tt.in != "uci" {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		level     int
		want      string
	}{
		{"at level", 1, 1, "game abc\n"},
		{"above level", 2, 1, "game abc\n"},
		{"below level", 0, 1, ""},
		{"commentary suppressed", 1, 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(tt.verbosity).Build()
			cfg.Logf(tt.level, "game %s", "abc")
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	in := strings.NewReader("0\n")
	cfg := NewConfigBuilder().
		WithStartFEN("8/8/8/3k4/8/8/8/3K4 w - - 0 1").
		WithPerft(3, 4).
		WithNotation(LALG).
		WithFEN(true).
		WithJSONOutput(true).
		WithOutput(out).
		WithInput(in).
		WithVerbosity(2).
		Build()

	if cfg.StartFEN != "8/8/8/3k4/8/8/8/3K4 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.PerftDepth != 3 || cfg.Workers != 4 {
		t.Errorf("PerftDepth/Workers = %d/%d, want 3/4", cfg.PerftDepth, cfg.Workers)
	}
	if cfg.Output.Notation != LALG || !cfg.Output.ShowFEN || !cfg.Output.JSONFormat {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.OutputFile != out || cfg.Input != in {
		t.Error("builder did not set the streams")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
