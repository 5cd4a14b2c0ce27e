package config

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartingPlayer sets the side that moves first.
func (b *ConfigBuilder) WithStartingPlayer(colour chess.Colour) *ConfigBuilder {
	b.cfg.Rules.StartingPlayer = colour
	return b
}

// WithPromotion sets the promotion kind.
func (b *ConfigBuilder) WithPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.PromoteTo = kind
	return b
}

// WithDepth sets the enumeration depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of enumeration workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Perft.JSONFormat = enabled
	return b
}

// WithStats enables the subtree size summary.
func (b *ConfigBuilder) WithStats(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Stats = enabled
	return b
}

// WithHash enables the transposition table with room for n entries.
func (b *ConfigBuilder) WithHash(n int) *ConfigBuilder {
	b.cfg.Perft.HashEntries = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
