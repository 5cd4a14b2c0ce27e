// Package config provides configuration for the rules engine and its drivers.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Board rules
	Rules *RulesConfig

	// Move-tree enumeration
	Perft *PerftConfig

	// LogLevel is parsed with log.ParseLevel ("debug", "info", "warn", ...).
	LogLevel string

	// Output stream for driver results
	OutputFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Perft:      NewPerftConfig(),
		LogLevel:   "info",
		OutputFile: os.Stdout,
	}
}

// Validate reports the first invalid setting, wrapped around
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Rules.validate(); err != nil {
		return err
	}
	if err := c.Perft.validate(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// BoardOptions threads the rule settings into chess.NewBoard.
func (c *Config) BoardOptions() []chess.BoardOption {
	return []chess.BoardOption{
		chess.WithStartingPlayer(c.Rules.StartingPlayer),
		chess.WithPromotion(c.Rules.PromoteTo),
	}
}

// NewBoard creates an empty board configured from c.
func (c *Config) NewBoard() *chess.Board {
	return chess.NewBoard(c.BoardOptions()...)
}

// String summarises the settings for logs.
func (c *Config) String() string {
	return fmt.Sprintf("start=%s promote=%s depth=%d workers=%d hash=%d level=%s",
		c.Rules.StartingPlayer, c.Rules.PromoteTo, c.Perft.Depth, c.Perft.Workers, c.Perft.HashEntries, c.LogLevel)
}
