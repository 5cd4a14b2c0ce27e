package config

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds enumeration; the tree grows roughly thirtyfold per ply.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-tree enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate
	Depth int

	// Workers is the number of goroutines dividing the root moves
	Workers int

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// Stats adds a summary of the per-move subtree sizes
	Stats bool

	// HashEntries caps the shared transposition table; 0 disables it
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   3,
		Workers: 1,
	}
}

func (p *PerftConfig) validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d outside 0..%d", p.Depth, MaxPerftDepth)
	}
	if p.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", p.Workers)
	}
	if p.HashEntries < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "hash entries %d", p.HashEntries)
	}
	return nil
}
